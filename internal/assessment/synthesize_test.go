package assessment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestBank(t *testing.T) *Bank {
	t.Helper()
	bank, err := DefaultBank()
	require.NoError(t, err)
	return bank
}

func triggeredCategories(r Result) []Category {
	var out []Category
	for _, f := range r.Triggered {
		out = append(out, f.Condition.Category)
	}
	return out
}

func TestSynthesize_AllLowestIsWellness(t *testing.T) {
	bank := newTestBank(t)
	acc := NewAccumulator(bank)
	require.NoError(t, acc.Start())
	for range bank.Len() {
		require.NoError(t, acc.RecordAnswer(SeverityNone))
	}

	result := bank.Synthesize(acc.Snapshot())
	require.False(t, result.Crisis)
	require.True(t, result.Wellness)
	require.Empty(t, result.Triggered)
	require.Contains(t, result.Text, wellnessTemplate)
	require.NotContains(t, result.Text, findingsIntro)
	require.NotContains(t, result.Text, CrisisNotice)
}

func TestSynthesize_SelfHarmOnly(t *testing.T) {
	bank := newTestBank(t)
	scores, err := bank.Score([]Answer{{QuestionID: "self_harm", Value: 3}})
	require.NoError(t, err)
	require.Equal(t, ScoreMap{Crisis: 3}, scores)

	result := bank.Synthesize(scores)
	require.True(t, result.Crisis)
	require.False(t, result.Wellness)
	require.True(t, strings.HasPrefix(result.Text, CrisisNotice))
	require.Equal(t, []Category{Crisis}, triggeredCategories(result))
	require.Equal(t, 3, result.Triggered[0].Score)
}

func TestSynthesize_ThresholdIsPerCategorySum(t *testing.T) {
	bank := newTestBank(t)
	scores, err := bank.Score([]Answer{
		{QuestionID: "mood", Value: 3},
		{QuestionID: "self_talk", Value: 3},
	})
	require.NoError(t, err)
	require.Equal(t, ScoreMap{EmotionalRegulation: 3, CognitivePatterns: 3}, scores)

	result := bank.Synthesize(scores)
	require.Empty(t, result.Triggered)
	require.False(t, result.Crisis)
	require.True(t, result.Wellness)
	// Observations belong to the findings branch only.
	require.NotContains(t, result.Text, "Overall Patterns Observed")
}

func TestSynthesize_ThresholdIsInclusive(t *testing.T) {
	bank := newTestBank(t)

	result := bank.Synthesize(ScoreMap{Anxiety: 4})
	require.Equal(t, []Category{Anxiety}, triggeredCategories(result))

	result = bank.Synthesize(ScoreMap{Anxiety: 3})
	require.Empty(t, result.Triggered)

	result = bank.Synthesize(ScoreMap{Crisis: 1})
	require.True(t, result.Crisis)
	require.Equal(t, []Category{Crisis}, triggeredCategories(result))

	result = bank.Synthesize(ScoreMap{Crisis: 0})
	require.False(t, result.Crisis)
	require.True(t, result.Wellness)
}

func TestSynthesize_Ordering(t *testing.T) {
	bank := newTestBank(t)
	result := bank.Synthesize(ScoreMap{
		Anxiety:             5,
		Trauma:              5,
		Sleep:               6,
		EmotionalRegulation: 4,
		Crisis:              2,
		Social:              1,
	})
	// Descending score; anxiety and trauma tie and trauma appears first in the catalog.
	require.Equal(t, []Category{Sleep, Trauma, Anxiety, EmotionalRegulation, Crisis}, triggeredCategories(result))

	var last int
	for _, f := range result.Triggered {
		idx := strings.Index(result.Text, "**"+f.Condition.Name+"**")
		require.Greater(t, idx, last, "%s rendered out of order", f.Condition.Name)
		last = idx
	}
}

func TestSynthesize_ConditionBlock(t *testing.T) {
	bank := newTestBank(t)
	result := bank.Synthesize(ScoreMap{Sleep: 4})
	condition, ok := bank.Condition(Sleep)
	require.True(t, ok)

	require.Contains(t, result.Text, findingsIntro)
	require.Contains(t, result.Text, condition.Description)
	require.Contains(t, result.Text, condition.Explanation)
	require.Contains(t, result.Text, condition.ProfessionalHelp)

	last := 0
	for _, tip := range condition.SelfHelp {
		idx := strings.Index(result.Text, "- "+tip+"\n")
		require.Greater(t, idx, last, "tip %q missing or out of order", tip)
		last = idx
	}
	require.Contains(t, result.Text, findingsOutro)
}

func TestSynthesize_Observations(t *testing.T) {
	bank := newTestBank(t)
	tests := []struct {
		name   string
		scores ScoreMap
		want   []string
	}{
		{
			name:   "none apply",
			scores: ScoreMap{Crisis: 1},
			want:   nil,
		},
		{
			name:   "emotions and thoughts",
			scores: ScoreMap{Crisis: 1, EmotionalRegulation: 1, CognitivePatterns: 2},
			want:   []string{observations[0].text},
		},
		{
			name:   "zero score does not count",
			scores: ScoreMap{Crisis: 1, EmotionalRegulation: 0, CognitivePatterns: 2},
			want:   nil,
		},
		{
			name: "all three",
			scores: ScoreMap{
				Crisis: 1, EmotionalRegulation: 1, CognitivePatterns: 1, Trauma: 1, Anxiety: 1, Sleep: 1,
			},
			want: []string{observations[0].text, observations[1].text, observations[2].text},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := bank.Synthesize(tt.scores)
			if len(tt.want) == 0 {
				require.NotContains(t, result.Text, "Overall Patterns Observed")
				return
			}
			require.Contains(t, result.Text, "**Overall Patterns Observed:**")
			for _, text := range tt.want {
				require.Contains(t, result.Text, "- "+text)
			}
			require.Equal(t, len(tt.want), strings.Count(result.Text, "- Your")+
				strings.Count(result.Text, "- There appears"))
		})
	}
}

func TestSynthesize_CrisisComesFirst(t *testing.T) {
	bank := newTestBank(t)
	for _, scores := range []ScoreMap{
		{Crisis: 1},
		{Crisis: 3, Sleep: 9, Anxiety: 9, Trauma: 9},
		{Crisis: 2, EmotionalRegulation: 0},
		{Crisis: 1, Identity: 100},
	} {
		result := bank.Synthesize(scores)
		require.True(t, result.Crisis, scores.String())
		require.True(t, strings.HasPrefix(result.Text, CrisisNotice), scores.String())
		require.Equal(t, 1, strings.Count(result.Text, CrisisNotice))
		require.Contains(t, triggeredCategories(result), Crisis)
	}
}

func TestSynthesize_DisclaimerAlwaysLast(t *testing.T) {
	bank := newTestBank(t)
	for _, scores := range []ScoreMap{
		nil,
		{},
		{Crisis: 3},
		{Sleep: 4},
		{Sleep: 1},
	} {
		result := bank.Synthesize(scores)
		require.True(t, strings.HasSuffix(result.Text, disclaimer+"\n"), scores.String())
	}
}

func TestSynthesize_Deterministic(t *testing.T) {
	bank := newTestBank(t)
	acc := NewAccumulator(bank)

	run := func() string {
		require.NoError(t, acc.Start())
		for i := range bank.Len() {
			require.NoError(t, acc.RecordAnswer(Severity(i%4)))
		}
		return bank.Synthesize(acc.Snapshot()).Text
	}

	first := run()
	acc.Reset()
	second := run()
	require.Equal(t, first, second)

	// Map iteration order must not leak into the output.
	scores := ScoreMap{Anxiety: 5, Trauma: 5, Sleep: 5, Identity: 5, Crisis: 1}
	want := bank.Synthesize(scores).Text
	for range 20 {
		require.Equal(t, want, bank.Synthesize(scores.Clone()).Text)
	}
}
