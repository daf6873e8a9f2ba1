package assess

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/myrjola/wellcheck/internal/assessment"
	"github.com/stretchr/testify/require"
)

func Test_parseAnswers(t *testing.T) {
	answers, err := parseAnswers([]string{"sleep_quality=3", " mood = 1 "})
	require.NoError(t, err)
	require.Equal(t, []assessment.Answer{
		{QuestionID: "sleep_quality", Value: assessment.SeveritySevere},
		{QuestionID: "mood", Value: assessment.SeverityMild},
	}, answers)

	for _, raw := range []string{"sleep_quality", "=2", "mood=often"} {
		_, err = parseAnswers([]string{raw})
		require.ErrorIs(t, err, ErrMalformedAnswer, raw)
	}
}

func Test_writeReport(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, writeReport(&out, nil, formatText))
		require.Contains(t, out.String(), "you appear to be managing your mental health relatively well")
	})

	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		answers := []assessment.Answer{{QuestionID: "self_harm", Value: assessment.SeveritySevere}}
		require.NoError(t, writeReport(&out, answers, formatJSON))

		var got struct {
			Scores    map[string]int `json:"scores"`
			Crisis    bool           `json:"crisis"`
			Wellness  bool           `json:"wellness"`
			Text      string         `json:"text"`
			Triggered []struct {
				Score int `json:"score"`
			} `json:"triggered"`
		}
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		require.Equal(t, map[string]int{"crisis": 3}, got.Scores)
		require.True(t, got.Crisis)
		require.False(t, got.Wellness)
		require.Contains(t, got.Text, assessment.CrisisNotice)
		require.Len(t, got.Triggered, 1)
	})

	t.Run("invalid answers", func(t *testing.T) {
		var out bytes.Buffer
		err := writeReport(&out, []assessment.Answer{{QuestionID: "mood", Value: 9}}, formatText)
		require.ErrorIs(t, err, assessment.ErrInvalidOption)

		err = writeReport(&out, []assessment.Answer{{QuestionID: "unknown", Value: 1}}, formatText)
		require.ErrorIs(t, err, assessment.ErrNotFound)

		err = writeReport(&out, []assessment.Answer{
			{QuestionID: "mood", Value: 1},
			{QuestionID: "mood", Value: 2},
		}, formatText)
		require.ErrorIs(t, err, assessment.ErrDuplicateAnswer)
		require.Empty(t, out.String())
	})

	t.Run("unknown format", func(t *testing.T) {
		var out bytes.Buffer
		require.ErrorIs(t, writeReport(&out, nil, "pdf"), ErrUnknownFormat)
	})
}

func TestNewReport(t *testing.T) {
	var out bytes.Buffer
	cmd := NewReport()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--answer", "self_harm=3", "-f", "text"})
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "Your safety comes first.")
}
