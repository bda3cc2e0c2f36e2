package scoring

import (
	"testing"

	"exam-service/internal/models"
)

func fourQuestionExam() []models.Question {
	return []models.Question{
		{ID: "q1", CorrectAnswer: "A", Skill: models.SkillMathematicalReasoning},
		{ID: "q2", CorrectAnswer: "B", Skill: models.SkillMathematicalReasoning},
		{ID: "q3", CorrectAnswer: "C", Skill: models.SkillLanguageProficiency},
		{ID: "q4", CorrectAnswer: "D", Skill: models.SkillLanguageProficiency},
	}
}

func TestScoreCountsOnlyExactMatches(t *testing.T) {
	answers := map[string]string{
		"q1": "A", // correct
		"q2": "X", // wrong
		"q3": "C", // correct
		// q4 unanswered
	}

	result := Score(fourQuestionExam(), answers)

	if result.Score != 2 {
		t.Errorf("Expected score 2, got %d", result.Score)
	}
	if result.TotalQuestions != 4 {
		t.Errorf("Expected total 4, got %d", result.TotalQuestions)
	}
	if result.Percentage != 50.0 {
		t.Errorf("Expected percentage 50.0, got %f", result.Percentage)
	}
}

func TestScoreSkillBuckets(t *testing.T) {
	questions := []models.Question{
		{ID: "q1", CorrectAnswer: "A", Skill: models.SkillMathematicalReasoning},
		{ID: "q2", CorrectAnswer: "B", Skill: models.SkillMathematicalReasoning},
		{ID: "q3", CorrectAnswer: "C", Skill: models.SkillLanguageProficiency},
	}
	answers := map[string]string{"q1": "A", "q2": "wrong", "q3": "C"}

	result := Score(questions, answers)

	math := result.SkillBreakdown[string(models.SkillMathematicalReasoning)]
	if math.Correct != 1 || math.Total != 2 || math.Percentage != 50.0 {
		t.Errorf("Math bucket wrong: %+v", math)
	}

	lang := result.SkillBreakdown[string(models.SkillLanguageProficiency)]
	if lang.Correct != 1 || lang.Total != 1 || lang.Percentage != 100.0 {
		t.Errorf("Language bucket wrong: %+v", lang)
	}

	if len(result.SkillBreakdown) != 2 {
		t.Errorf("Expected 2 skill buckets, got %d", len(result.SkillBreakdown))
	}
}

func TestScoreUnansweredStillCountsInSkillTotal(t *testing.T) {
	result := Score(fourQuestionExam(), map[string]string{"q1": "A"})

	lang := result.SkillBreakdown[string(models.SkillLanguageProficiency)]
	if lang.Total != 2 || lang.Correct != 0 {
		t.Errorf("Unanswered questions must count toward skill total: %+v", lang)
	}
}

func TestScoreUnknownQuestionIDsIgnored(t *testing.T) {
	answers := map[string]string{"q1": "A", "ghost": "Z"}

	result := Score(fourQuestionExam(), answers)

	if result.Score != 1 {
		t.Errorf("Expected score 1, got %d", result.Score)
	}
}

func TestScoreEmptyExam(t *testing.T) {
	result := Score(nil, map[string]string{"q1": "A"})

	if result.Score != 0 || result.TotalQuestions != 0 {
		t.Errorf("Expected zero score and total, got %d/%d", result.Score, result.TotalQuestions)
	}
	if result.Percentage != 0.0 {
		t.Errorf("Zero-question exam must yield 0.0, got %f", result.Percentage)
	}
	if len(result.SkillBreakdown) != 0 {
		t.Errorf("Expected empty breakdown, got %v", result.SkillBreakdown)
	}
}

func TestScoreDeterministic(t *testing.T) {
	answers := map[string]string{"q1": "A", "q2": "B", "q3": "C", "q4": "D"}

	first := Score(fourQuestionExam(), answers)
	second := Score(fourQuestionExam(), answers)

	if first.Score != second.Score || first.Percentage != second.Percentage {
		t.Errorf("Scoring must be deterministic: %+v vs %+v", first, second)
	}
	if first.Score != 4 || first.Percentage != 100.0 {
		t.Errorf("Expected perfect score, got %+v", first)
	}
}

func TestRound1(t *testing.T) {
	cases := []struct {
		in       float64
		expected float64
	}{
		{76.666666, 76.7},
		{66.666666, 66.7},
		{33.333333, 33.3},
		{50.0, 50.0},
		{0.05, 0.1},
	}

	for _, tc := range cases {
		if got := Round1(tc.in); got != tc.expected {
			t.Errorf("Round1(%f) expected %f, got %f", tc.in, tc.expected, got)
		}
	}
}
