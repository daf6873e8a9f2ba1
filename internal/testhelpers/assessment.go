package testhelpers

import (
	"testing"

	"github.com/myrjola/wellcheck/internal/assessment"
	"github.com/stretchr/testify/require"
)

// DefaultBank returns the built-in question bank and fails the test if it is misconfigured.
func DefaultBank(t testing.TB) *assessment.Bank {
	t.Helper()
	bank, err := assessment.DefaultBank()
	require.NoError(t, err)
	return bank
}

// Answers returns one answer per question of bank, valued by pick.
func Answers(bank *assessment.Bank, pick func(q assessment.Question) assessment.Severity) []assessment.Answer {
	questions := bank.Questions()
	answers := make([]assessment.Answer, 0, len(questions))
	for _, q := range questions {
		answers = append(answers, assessment.Answer{QuestionID: q.ID, Value: pick(q)})
	}
	return answers
}

// Crisis answers the self-harm question with the highest severity and everything else with none.
func Crisis(q assessment.Question) assessment.Severity {
	if q.Category == assessment.Crisis {
		return assessment.SeveritySevere
	}
	return assessment.SeverityNone
}

// Wellness answers every question with none.
func Wellness(assessment.Question) assessment.Severity {
	return assessment.SeverityNone
}
