// Package scoring converts a set of exam questions and a student's answers
// into a total score and a per-skill breakdown. It is pure: no store access,
// no randomness, deterministic for a given input.
package scoring

import (
	"math"

	"exam-service/internal/models"
)

type Result struct {
	Score          int                          `json:"score"`
	TotalQuestions int                          `json:"total"`
	Percentage     float64                      `json:"percentage"`
	SkillBreakdown map[string]models.SkillScore `json:"skill_breakdown"`
}

// Score walks the exam's question set once. A question with no entry in the
// answers map never matches, but still counts toward its skill's total. Skill
// buckets are created lazily, so skills absent from the exam do not appear.
func Score(questions []models.Question, answers map[string]string) Result {
	correctCount := 0
	skillCorrect := map[string]int{}
	skillTotal := map[string]int{}

	for _, q := range questions {
		skill := string(q.Skill)
		skillTotal[skill]++

		if ans, ok := answers[q.ID]; ok && ans == q.CorrectAnswer {
			correctCount++
			skillCorrect[skill]++
		}
	}

	breakdown := make(map[string]models.SkillScore, len(skillTotal))
	for skill, total := range skillTotal {
		correct := skillCorrect[skill]
		breakdown[skill] = models.SkillScore{
			Correct:    correct,
			Total:      total,
			Percentage: Round1(percent(correct, total)),
		}
	}

	total := len(questions)
	return Result{
		Score:          correctCount,
		TotalQuestions: total,
		Percentage:     Round1(percent(correctCount, total)),
		SkillBreakdown: breakdown,
	}
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

// Round1 rounds to one decimal place, the precision every percentage in the
// system is stored and reported at.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
