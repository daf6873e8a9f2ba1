package assessment

import "github.com/myrjola/wellcheck/internal/errors"

var (
	// ErrOutOfRange is returned for question indexes outside the catalog.
	ErrOutOfRange = errors.NewSentinel("question index out of range")
	// ErrNotFound is returned for unknown question ids.
	ErrNotFound = errors.NewSentinel("not found")
	// ErrConfiguration means the static dataset is inconsistent. It is fatal at startup.
	ErrConfiguration = errors.NewSentinel("invalid assessment configuration")
	// ErrInvalidOption is returned when a value is not among the question's options. The caller should re-prompt.
	ErrInvalidOption = errors.NewSentinel("invalid option")
	// ErrDuplicateAnswer is returned by [Bank.Score] when a question is answered more than once.
	ErrDuplicateAnswer = errors.NewSentinel("duplicate answer")
	// ErrInvalidState is the parent of the state machine errors below.
	ErrInvalidState = errors.NewSentinel("invalid state")

	ErrNotInProgress = errors.Wrap(ErrInvalidState, "assessment not in progress")
	ErrFinished      = errors.Wrap(ErrInvalidState, "assessment finished")
)
