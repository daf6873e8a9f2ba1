// Package chat drives a guided assessment as a paced conversation between the user and an assistant.
package chat

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/myrjola/wellcheck/internal/assessment"
	"github.com/myrjola/wellcheck/internal/errors"
	"github.com/myrjola/wellcheck/internal/models"
)

var (
	// ErrBusy is returned while the assistant has a step pending.
	ErrBusy = errors.NewSentinel("assistant is busy")
	// ErrUnknownChoice is returned for a choice not offered in the current phase.
	ErrUnknownChoice = errors.NewSentinel("unknown choice")
	// ErrEmptyMessage is returned for a blank free-text message.
	ErrEmptyMessage = errors.NewSentinel("empty message")
)

// Phase of a [Conversation].
type Phase int

const (
	PhaseGreeting Phase = iota
	PhaseInProgress
	PhaseAnalysing
	PhaseReported
)

func (p Phase) String() string {
	switch p {
	case PhaseGreeting:
		return "greeting"
	case PhaseInProgress:
		return "in_progress"
	case PhaseAnalysing:
		return "analysing"
	case PhaseReported:
		return "reported"
	default:
		return "unknown"
	}
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	for candidate := PhaseGreeting; candidate <= PhaseReported; candidate++ {
		if candidate.String() == string(text) {
			*p = candidate
			return nil
		}
	}
	return errors.New("unknown phase", slog.String("phase", string(text)))
}

// Delays pace the assistant's replies. Zero runs a step immediately.
type Delays struct {
	// Advance is the pause before the next question is asked.
	Advance time.Duration
	// Reveal is the pause between the last answer and the report.
	Reveal time.Duration
	// Reply is the pause before answering free text.
	Reply time.Duration
}

// View is a consistent snapshot of a conversation for rendering.
type View struct {
	ID       string           `json:"id"`
	Phase    Phase            `json:"phase"`
	Pending  bool             `json:"pending"`
	Messages []models.Message `json:"messages"`
	// Options the user can pick right now. Empty while pending or while a question is open.
	Options []models.Option `json:"options,omitempty"`
	// Question awaiting an answer, if any.
	Question *assessment.Question `json:"question,omitempty"`
	Answered int                  `json:"answered"`
	Total    int                  `json:"total"`
	Scores   assessment.ScoreMap  `json:"scores"`
	Result   *assessment.Result   `json:"result,omitempty"`
}

// Conversation is safe for concurrent use.
type Conversation struct {
	id     string
	bank   *assessment.Bank
	delays Delays
	logger *slog.Logger
	now    func() time.Time

	mu         sync.Mutex
	pacer      *Pacer
	acc        *assessment.Accumulator
	phase      Phase
	messages   []models.Message
	result     *assessment.Result
	lastActive time.Time
}

func NewConversation(id string, bank *assessment.Bank, delays Delays, logger *slog.Logger) *Conversation {
	c := &Conversation{
		id:         id,
		bank:       bank,
		delays:     delays,
		logger:     logger.With(slog.String("conversation_id", id)),
		now:        time.Now,
		mu:         sync.Mutex{},
		pacer:      nil,
		acc:        assessment.NewAccumulator(bank),
		phase:      PhaseGreeting,
		messages:   []models.Message{greeting()},
		result:     nil,
		lastActive: time.Now(),
	}
	c.pacer = NewPacer(&c.mu)
	return c
}

func (c *Conversation) ID() string {
	return c.id
}

// Choose submits one of the offered options or, while a question is open, an option value.
func (c *Conversation) Choose(choice string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastActive = c.now()

	if c.pacer.Pending() {
		return errors.Wrap(ErrBusy, "choose", slog.String("phase", c.phase.String()))
	}
	choice = strings.TrimSpace(choice)

	switch c.phase {
	case PhaseGreeting:
		switch choice {
		case ChoiceStart:
			c.begin(optionStart.Label)
			return nil
		case ChoiceInfo:
			c.messages = append(c.messages,
				userSaid(optionInfo.Label),
				assistantSaid(fmt.Sprintf(infoText, c.bank.Len()), optionStart, optionLater))
			return nil
		case ChoiceDecline:
			c.farewell(optionLater.Label)
			return nil
		}
	case PhaseInProgress:
		return c.answer(choice)
	case PhaseAnalysing:
		return errors.Wrap(ErrBusy, "choose", slog.String("phase", c.phase.String()))
	case PhaseReported:
		switch choice {
		case ChoiceRestart:
			c.restart()
			return nil
		case ChoiceResources:
			c.messages = append(c.messages,
				userSaid(optionResources.Label),
				assistantSaid(resourcesText, optionRestart, optionNoThanks))
			return nil
		case ChoiceDecline:
			c.farewell(optionNoThanks.Label)
			return nil
		}
	}
	return errors.Wrap(ErrUnknownChoice, "choose",
		slog.String("phase", c.phase.String()), slog.String("choice", choice))
}

// Say submits free text. The assistant replies after the reply delay without changing the phase.
func (c *Conversation) Say(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastActive = c.now()

	text = strings.TrimSpace(text)
	if text == "" {
		return errors.Wrap(ErrEmptyMessage, "say")
	}
	if c.pacer.Pending() {
		return errors.Wrap(ErrBusy, "say", slog.String("phase", c.phase.String()))
	}

	c.messages = append(c.messages, userSaid(text))
	c.pacer.Schedule(c.delays.Reply, func() {
		switch c.phase {
		case PhaseGreeting:
			c.messages = append(c.messages, assistantSaid(freeTextBeforeText, optionStart, optionInfo))
		case PhaseInProgress:
			c.messages = append(c.messages, assistantSaid(freeTextDuringText))
		case PhaseAnalysing, PhaseReported:
			c.messages = append(c.messages, assistantSaid(freeTextAfterText, optionRestart, optionResources))
		}
	})
	return nil
}

// Reset drops pending steps, scores, and transcript and greets the user again.
func (c *Conversation) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastActive = c.now()
	c.resetLocked()
	c.logger.Debug("conversation reset")
}

// Close drops pending steps. The conversation stays readable.
func (c *Conversation) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pacer.Cancel()
}

func (c *Conversation) LastActive() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastActive
}

func (c *Conversation) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	answered, total := c.acc.Progress()
	v := View{
		ID:       c.id,
		Phase:    c.phase,
		Pending:  c.pacer.Pending(),
		Messages: slices.Clone(c.messages),
		Options:  nil,
		Question: nil,
		Answered: answered,
		Total:    total,
		Scores:   c.acc.Snapshot(),
		Result:   nil,
	}
	if c.result != nil {
		result := *c.result
		v.Result = &result
	}
	if v.Pending {
		return v
	}
	if c.phase == PhaseInProgress {
		if q, err := c.acc.CurrentQuestion(); err == nil {
			v.Question = &q
		}
		return v
	}
	if n := len(c.messages); n > 0 && c.messages[n-1].FromAssistant() {
		v.Options = slices.Clone(c.messages[n-1].Options)
	}
	return v
}

func (c *Conversation) resetLocked() {
	c.pacer.Cancel()
	c.acc.Reset()
	c.phase = PhaseGreeting
	c.result = nil
	c.messages = []models.Message{greeting()}
}

func (c *Conversation) begin(label string) {
	c.messages = append(c.messages, userSaid(label))
	if c.acc.State() != assessment.NotStarted {
		c.acc.Reset()
	}
	if err := c.acc.Start(); err != nil {
		// Unreachable after the reset above.
		c.logger.Error("start assessment", errors.SlogError(err))
		return
	}
	c.phase = PhaseInProgress
	c.result = nil
	c.messages = append(c.messages, assistantSaid(introText))
	c.ask()
	c.logger.Debug("assessment started")
}

// ask appends the current question to the transcript.
func (c *Conversation) ask() {
	q, err := c.acc.CurrentQuestion()
	if err != nil {
		c.logger.Error("ask question", errors.SlogError(err))
		return
	}
	answered, total := c.acc.Progress()
	c.messages = append(c.messages, models.Message{
		Role:    models.RoleAssistant,
		Content: fmt.Sprintf("Question %d of %d: %s", answered+1, total, q.Prompt),
		Options: nil,
		Hint:    q.Explanation,
		Report:  false,
	})
}

func (c *Conversation) answer(choice string) error {
	value, err := strconv.Atoi(choice)
	if err != nil {
		return errors.Wrap(assessment.ErrInvalidOption, "parse answer", slog.String("choice", choice))
	}
	q, err := c.acc.CurrentQuestion()
	if err != nil {
		return errors.Wrap(err, "answer")
	}
	option, ok := q.Option(assessment.Severity(value))
	if !ok {
		return errors.Wrap(assessment.ErrInvalidOption, "answer",
			slog.String("question_id", q.ID), slog.Int("value", value))
	}
	if err = c.acc.RecordAnswer(option.Value); err != nil {
		return errors.Wrap(err, "answer")
	}
	c.messages = append(c.messages, userSaid(option.Label))

	if c.acc.State() != assessment.Completed {
		c.pacer.Schedule(c.delays.Advance, c.ask)
		return nil
	}
	c.phase = PhaseAnalysing
	c.messages = append(c.messages, assistantSaid(analysingText))
	c.pacer.Schedule(c.delays.Reveal, c.reveal)
	return nil
}

func (c *Conversation) reveal() {
	result := c.bank.Synthesize(c.acc.Snapshot())
	c.result = &result
	c.phase = PhaseReported
	c.messages = append(c.messages, models.Message{
		Role:    models.RoleAssistant,
		Content: result.Text,
		Options: []models.Option{optionRestart, optionResources},
		Hint:    "",
		Report:  true,
	})
	c.logger.Info("assessment report revealed")
}

func (c *Conversation) restart() {
	c.resetLocked()
	c.pacer.Schedule(c.delays.Advance, func() {
		c.begin(optionRestart.Label)
	})
}

func (c *Conversation) farewell(label string) {
	c.messages = append(c.messages, userSaid(label), assistantSaid(farewellText))
}
