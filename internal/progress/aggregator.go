// Package progress rolls a student's submitted attempts up into an overall
// average and per-skill historical averages. Like scoring, it is a pure
// computation over values the caller has already loaded.
package progress

import (
	"exam-service/internal/models"
	"exam-service/internal/scoring"
)

// Aggregate expects attempts ordered by submission time ascending and returns
// a zero-valued summary for an empty history, never an error.
//
// The overall average is weighted by question count: sum of scores over sum of
// totals. The per-skill average is the unweighted mean of each attempt's
// already-rounded skill percentage. The asymmetry is intentional; the two
// figures answer different questions and must not be unified.
func Aggregate(studentID string, attempts []models.ExamAttempt) models.ProgressSummary {
	summary := models.ProgressSummary{
		StudentID:    studentID,
		SkillSummary: map[string]models.SkillSummary{},
		Attempts:     []models.ExamAttempt{},
	}

	if len(attempts) == 0 {
		return summary
	}

	totalScore := 0
	totalQuestions := 0
	skillCorrect := map[string]int{}
	skillTotal := map[string]int{}
	skillPercentages := map[string][]float64{}

	for _, attempt := range attempts {
		totalScore += attempt.Score
		totalQuestions += attempt.TotalQuestions

		for skill, data := range attempt.SkillBreakdown {
			skillCorrect[skill] += data.Correct
			skillTotal[skill] += data.Total
			skillPercentages[skill] = append(skillPercentages[skill], data.Percentage)
		}
	}

	for skill, percentages := range skillPercentages {
		sum := 0.0
		for _, p := range percentages {
			sum += p
		}
		summary.SkillSummary[skill] = models.SkillSummary{
			AveragePercentage: scoring.Round1(sum / float64(len(percentages))),
			Correct:           skillCorrect[skill],
			Total:             skillTotal[skill],
		}
	}

	average := 0.0
	if totalQuestions > 0 {
		average = float64(totalScore) / float64(totalQuestions) * 100
	}

	summary.TotalExams = len(attempts)
	summary.AverageScore = scoring.Round1(average)
	summary.Attempts = attempts
	return summary
}
