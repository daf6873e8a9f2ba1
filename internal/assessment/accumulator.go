package assessment

import (
	"log/slog"

	"github.com/myrjola/wellcheck/internal/errors"
)

// State of an [Accumulator].
type State int

const (
	NotStarted State = iota
	InProgress
	Completed
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case InProgress:
		return "in_progress"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// Accumulator walks the bank in order and sums the selected severities per category.
//
// It is not safe for concurrent use; the owner serialises access.
type Accumulator struct {
	bank   *Bank
	state  State
	cursor int
	scores ScoreMap
}

func NewAccumulator(bank *Bank) *Accumulator {
	return &Accumulator{
		bank:   bank,
		state:  NotStarted,
		cursor: 0,
		scores: ScoreMap{},
	}
}

// Start moves NotStarted to InProgress with empty scores and the cursor at the first question.
func (a *Accumulator) Start() error {
	if a.state != NotStarted {
		return errors.Wrap(ErrInvalidState, "start", slog.String("state", a.state.String()))
	}
	a.scores = ScoreMap{}
	a.cursor = 0
	a.state = InProgress
	return nil
}

// CurrentQuestion returns the question awaiting an answer.
func (a *Accumulator) CurrentQuestion() (Question, error) {
	if err := a.requireInProgress("current question"); err != nil {
		return Question{}, err
	}
	q, err := a.bank.QuestionAt(a.cursor)
	if err != nil {
		return Question{}, errors.Wrap(err, "current question")
	}
	return q, nil
}

// RecordAnswer adds value to the current question's category and advances the cursor. After the last
// question the accumulator is Completed. On error nothing changes.
func (a *Accumulator) RecordAnswer(value Severity) error {
	q, err := a.CurrentQuestion()
	if err != nil {
		return errors.Wrap(err, "record answer")
	}
	if !q.HasOption(value) {
		return errors.Wrap(ErrInvalidOption, "record answer",
			slog.String("question_id", q.ID), slog.Int("value", int(value)))
	}

	a.scores[q.Category] += int(value)
	a.cursor++
	if a.cursor == a.bank.Len() {
		a.state = Completed
	}
	return nil
}

// Snapshot returns a copy of the scores recorded so far. It is valid in every state.
func (a *Accumulator) Snapshot() ScoreMap {
	return a.scores.Clone()
}

// Reset discards the scores and cursor and returns to NotStarted.
func (a *Accumulator) Reset() {
	a.state = NotStarted
	a.cursor = 0
	a.scores = ScoreMap{}
}

func (a *Accumulator) State() State {
	return a.state
}

// Position is the index of the current question, or Len() once completed.
func (a *Accumulator) Position() int {
	return a.cursor
}

// Progress returns how many questions have been answered out of the total.
func (a *Accumulator) Progress() (answered, total int) {
	return a.cursor, a.bank.Len()
}

func (a *Accumulator) requireInProgress(op string) error {
	switch a.state {
	case InProgress:
		return nil
	case Completed:
		return errors.Wrap(ErrFinished, op)
	case NotStarted:
		return errors.Wrap(ErrNotInProgress, op)
	default:
		return errors.Wrap(ErrInvalidState, op, slog.Int("state", int(a.state)))
	}
}
