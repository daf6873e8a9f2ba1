package chat_test

import (
	"io"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/myrjola/wellcheck/internal/assessment"
	"github.com/myrjola/wellcheck/internal/chat"
	"github.com/myrjola/wellcheck/internal/models"
	"github.com/myrjola/wellcheck/internal/testhelpers"
	"github.com/stretchr/testify/require"
)

func newConversation(t *testing.T, delays chat.Delays) *chat.Conversation {
	t.Helper()
	c := chat.NewConversation("test", testhelpers.DefaultBank(t), delays, testhelpers.NewLogger(io.Discard))
	t.Cleanup(c.Close)
	return c
}

func optionValues(options []models.Option) []string {
	values := make([]string, 0, len(options))
	for _, o := range options {
		values = append(values, o.Value)
	}
	return values
}

// answerAll answers every open question with pick and returns once no question is left.
func answerAll(t *testing.T, c *chat.Conversation, pick func(q assessment.Question) assessment.Severity) {
	t.Helper()
	for {
		v := c.View()
		if v.Question == nil {
			return
		}
		require.NoError(t, c.Choose(strconv.Itoa(int(pick(*v.Question)))))
	}
}

func TestConversation_Greeting(t *testing.T) {
	c := newConversation(t, chat.Delays{})
	v := c.View()
	require.Equal(t, chat.PhaseGreeting, v.Phase)
	require.False(t, v.Pending)
	require.Len(t, v.Messages, 1)
	require.True(t, v.Messages[0].FromAssistant())
	require.Equal(t, []string{chat.ChoiceStart, chat.ChoiceInfo}, optionValues(v.Options))
	require.Nil(t, v.Question)

	require.NoError(t, c.Choose(chat.ChoiceInfo))
	v = c.View()
	require.Len(t, v.Messages, 3)
	require.Equal(t, models.RoleUser, v.Messages[1].Role)
	require.Contains(t, v.Messages[2].Content, "consists of 15 questions")
	require.Equal(t, []string{chat.ChoiceStart, chat.ChoiceDecline}, optionValues(v.Options))

	err := c.Choose(chat.ChoiceRestart)
	require.ErrorIs(t, err, chat.ErrUnknownChoice)
}

func TestConversation_Decline(t *testing.T) {
	c := newConversation(t, chat.Delays{})
	require.NoError(t, c.Choose(chat.ChoiceDecline))
	v := c.View()
	require.Equal(t, chat.PhaseGreeting, v.Phase)
	require.Contains(t, v.Messages[len(v.Messages)-1].Content, "seeking help is a sign of strength")
	require.Empty(t, v.Options)
}

func TestConversation_FullAssessment(t *testing.T) {
	c := newConversation(t, chat.Delays{})
	require.NoError(t, c.Choose(chat.ChoiceStart))

	v := c.View()
	require.Equal(t, chat.PhaseInProgress, v.Phase)
	require.NotNil(t, v.Question)
	require.Equal(t, "mood", v.Question.ID)
	require.Equal(t, 0, v.Answered)
	require.Equal(t, 15, v.Total)
	require.Empty(t, v.Options, "question options are rendered from the question")
	require.True(t, strings.HasPrefix(v.Messages[len(v.Messages)-1].Content, "Question 1 of 15:"))

	answerAll(t, c, testhelpers.Wellness)

	v = c.View()
	require.Equal(t, chat.PhaseReported, v.Phase)
	require.Equal(t, 15, v.Answered)
	require.NotNil(t, v.Result)
	require.True(t, v.Result.Wellness)
	require.False(t, v.Result.Crisis)
	last := v.Messages[len(v.Messages)-1]
	require.True(t, last.Report)
	require.Equal(t, v.Result.Text, last.Content)
	require.Equal(t, []string{chat.ChoiceRestart, chat.ChoiceResources}, optionValues(v.Options))

	require.NoError(t, c.Choose(chat.ChoiceResources))
	v = c.View()
	require.Contains(t, v.Messages[len(v.Messages)-1].Content, "Text HOME to 741741")
	require.Equal(t, []string{chat.ChoiceRestart, chat.ChoiceDecline}, optionValues(v.Options))

	require.NoError(t, c.Choose(chat.ChoiceRestart))
	v = c.View()
	require.Equal(t, chat.PhaseInProgress, v.Phase)
	require.Equal(t, 0, v.Answered)
	require.Nil(t, v.Result)
	require.Empty(t, v.Scores)
}

func TestConversation_CrisisReport(t *testing.T) {
	c := newConversation(t, chat.Delays{})
	require.NoError(t, c.Choose(chat.ChoiceStart))
	answerAll(t, c, testhelpers.Crisis)

	v := c.View()
	require.NotNil(t, v.Result)
	require.True(t, v.Result.Crisis)
	require.True(t, strings.HasPrefix(v.Messages[len(v.Messages)-1].Content, assessment.CrisisNotice))
	require.Equal(t, 3, v.Scores[assessment.Crisis])
	require.Len(t, v.Result.Triggered, 1)
}

func TestConversation_InvalidAnswerHasNoEffect(t *testing.T) {
	c := newConversation(t, chat.Delays{})
	require.NoError(t, c.Choose(chat.ChoiceStart))
	require.NoError(t, c.Choose("2"))
	before := c.View()

	for _, choice := range []string{"4", "-1", "often", "", chat.ChoiceRestart} {
		err := c.Choose(choice)
		require.ErrorIs(t, err, assessment.ErrInvalidOption, "choice %q", choice)
	}

	after := c.View()
	require.Equal(t, before.Answered, after.Answered)
	require.Equal(t, before.Scores, after.Scores)
	require.Equal(t, before.Messages, after.Messages)
}

func TestConversation_Say(t *testing.T) {
	c := newConversation(t, chat.Delays{})

	require.ErrorIs(t, c.Say("   "), chat.ErrEmptyMessage)

	require.NoError(t, c.Say("how are you?"))
	v := c.View()
	require.Len(t, v.Messages, 3)
	require.Equal(t, "how are you?", v.Messages[1].Content)
	require.Equal(t, chat.PhaseGreeting, v.Phase)
	require.Equal(t, []string{chat.ChoiceStart, chat.ChoiceInfo}, optionValues(v.Options))

	require.NoError(t, c.Choose(chat.ChoiceStart))
	require.NoError(t, c.Say("I'd rather talk"))
	v = c.View()
	require.Equal(t, chat.PhaseInProgress, v.Phase)
	require.NotNil(t, v.Question, "free text does not skip the open question")
	require.Equal(t, "mood", v.Question.ID)
}

func TestConversation_PacedQuestions(t *testing.T) {
	c := newConversation(t, chat.Delays{Advance: 20 * time.Millisecond})
	require.NoError(t, c.Choose(chat.ChoiceStart))
	require.NoError(t, c.Choose("1"))

	v := c.View()
	require.True(t, v.Pending)
	require.Nil(t, v.Question)
	require.ErrorIs(t, c.Choose("1"), chat.ErrBusy)
	require.ErrorIs(t, c.Say("hello?"), chat.ErrBusy)

	require.Eventually(t, func() bool {
		v = c.View()
		return !v.Pending && v.Question != nil
	}, time.Second, 5*time.Millisecond)
	require.Equal(t, "emotional_awareness", v.Question.ID)
	require.Equal(t, 1, v.Answered)
}

func TestConversation_ResetDuringRevealNeverShowsReport(t *testing.T) {
	c := newConversation(t, chat.Delays{Reveal: 30 * time.Millisecond})
	require.NoError(t, c.Choose(chat.ChoiceStart))
	answerAll(t, c, testhelpers.Crisis)

	v := c.View()
	require.Equal(t, chat.PhaseAnalysing, v.Phase)
	require.True(t, v.Pending)
	require.Nil(t, v.Result)
	require.ErrorIs(t, c.Choose(chat.ChoiceRestart), chat.ErrBusy)

	c.Reset()
	time.Sleep(80 * time.Millisecond)

	v = c.View()
	require.Equal(t, chat.PhaseGreeting, v.Phase)
	require.False(t, v.Pending)
	require.Nil(t, v.Result)
	require.Len(t, v.Messages, 1)
	require.Empty(t, v.Scores)
}

func TestConversation_ResetIsIdempotent(t *testing.T) {
	c := newConversation(t, chat.Delays{})
	require.NoError(t, c.Choose(chat.ChoiceStart))
	require.NoError(t, c.Choose("3"))

	c.Reset()
	once := c.View()
	c.Reset()
	twice := c.View()
	require.Equal(t, once, twice)
	require.Equal(t, chat.PhaseGreeting, twice.Phase)
}

func TestPhase_MarshalText(t *testing.T) {
	for phase, want := range map[chat.Phase]string{
		chat.PhaseGreeting:   "greeting",
		chat.PhaseInProgress: "in_progress",
		chat.PhaseAnalysing:  "analysing",
		chat.PhaseReported:   "reported",
		chat.Phase(42):       "unknown",
	} {
		text, err := phase.MarshalText()
		require.NoError(t, err)
		require.Equal(t, want, string(text))
	}
}

func TestPhase_UnmarshalText(t *testing.T) {
	var phase chat.Phase
	require.NoError(t, phase.UnmarshalText([]byte("analysing")))
	require.Equal(t, chat.PhaseAnalysing, phase)
	require.Error(t, phase.UnmarshalText([]byte("unknown")))
}
