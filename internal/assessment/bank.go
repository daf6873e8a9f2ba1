// Package assessment implements the question bank, the per-category score accumulator and the report
// synthesizer of the wellbeing assessment. Everything here is pure and deterministic.
package assessment

import (
	"log/slog"
	"slices"

	"github.com/myrjola/wellcheck/internal/errors"
)

// Option is one selectable answer of a [Question].
type Option struct {
	Value Severity `json:"value" yaml:"value"`
	Label string   `json:"label" yaml:"label"`
}

// Question is an immutable assessment item.
type Question struct {
	ID       string   `json:"id"       yaml:"id"`
	Prompt   string   `json:"prompt"   yaml:"prompt"`
	Category Category `json:"category" yaml:"category"`
	Options  []Option `json:"options"  yaml:"options"`
	// Explanation tells the user why the question is asked.
	Explanation string `json:"explanation" yaml:"explanation"`
}

// HasOption reports whether value is one of the question's option values.
func (q Question) HasOption(value Severity) bool {
	_, ok := q.Option(value)
	return ok
}

// Option returns the option with the given value.
func (q Question) Option(value Severity) (Option, bool) {
	for _, o := range q.Options {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}

// Condition describes what a category score means once it reaches Threshold.
type Condition struct {
	Category Category `json:"category" yaml:"category"`
	// Threshold is the inclusive minimum score that triggers the condition.
	Threshold        int      `json:"threshold"         yaml:"threshold"`
	Name             string   `json:"name"              yaml:"name"`
	Description      string   `json:"description"       yaml:"description"`
	Explanation      string   `json:"explanation"       yaml:"explanation"`
	SelfHelp         []string `json:"self_help"         yaml:"self_help"`
	ProfessionalHelp string   `json:"professional_help" yaml:"professional_help"`
}

// Answer pairs a question id with the selected severity.
type Answer struct {
	QuestionID string   `json:"question_id"`
	Value      Severity `json:"value"`
}

// Bank is the immutable, validated catalog of questions and conditions.
type Bank struct {
	questions  []Question
	conditions map[Category]Condition
	byID       map[string]int
	// categoryRank is the index of the first question of each category.
	categoryRank map[Category]int
	categories   []Category
}

// NewBank validates the dataset and builds a Bank.
//
// Every category referenced by a question must have a condition, otherwise the category could never
// surface in a report. All violations are reported together, each wrapping [ErrConfiguration].
func NewBank(questions []Question, conditions map[Category]Condition) (*Bank, error) {
	var errs []error
	configErr := func(msg string, attrs ...slog.Attr) {
		errs = append(errs, errors.Wrap(ErrConfiguration, msg, attrs...))
	}

	if len(questions) == 0 {
		configErr("empty question bank")
	}

	for key, c := range conditions {
		if key != c.Category {
			configErr("condition keyed by another category",
				slog.String("key", string(key)), slog.String("category", string(c.Category)))
		}
		if !key.Valid() {
			configErr("unknown condition category", slog.String("category", string(key)))
		}
		if c.Threshold < 1 {
			configErr("condition threshold must be positive",
				slog.String("category", string(key)), slog.Int("threshold", c.Threshold))
		}
	}

	b := &Bank{
		questions:    slices.Clone(questions),
		conditions:   make(map[Category]Condition, len(conditions)),
		byID:         make(map[string]int, len(questions)),
		categoryRank: make(map[Category]int),
		categories:   nil,
	}
	for key, c := range conditions {
		c.SelfHelp = slices.Clone(c.SelfHelp)
		b.conditions[key] = c
	}

	for i, q := range questions {
		id := slog.String("question_id", q.ID)
		if q.ID == "" {
			configErr("question without id", slog.Int("index", i))
		} else if _, dup := b.byID[q.ID]; dup {
			configErr("duplicate question id", id)
		} else {
			b.byID[q.ID] = i
		}

		if !q.Category.Valid() {
			configErr("unknown question category", id, slog.String("category", string(q.Category)))
		}
		if _, ok := conditions[q.Category]; !ok {
			configErr("category has no condition", id, slog.String("category", string(q.Category)))
		}
		if _, seen := b.categoryRank[q.Category]; !seen {
			b.categoryRank[q.Category] = len(b.categories)
			b.categories = append(b.categories, q.Category)
		}

		if len(q.Options) == 0 {
			configErr("question without options", id)
		}
		values := make(map[Severity]bool, len(q.Options))
		for _, o := range q.Options {
			if !o.Value.Valid() {
				configErr("option value out of range", id, slog.Int("value", int(o.Value)))
			}
			if values[o.Value] {
				configErr("duplicate option value", id, slog.Int("value", int(o.Value)))
			}
			values[o.Value] = true
		}
		b.questions[i].Options = slices.Clone(q.Options)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return b, nil
}

// Len returns the fixed number of questions.
func (b *Bank) Len() int {
	return len(b.questions)
}

// QuestionAt returns the question at index in presentation order.
func (b *Bank) QuestionAt(index int) (Question, error) {
	if index < 0 || index >= len(b.questions) {
		return Question{}, errors.Wrap(ErrOutOfRange, "question at",
			slog.Int("index", index), slog.Int("len", len(b.questions)))
	}
	return b.questions[index], nil
}

// Question looks up a question by id.
func (b *Bank) Question(id string) (Question, error) {
	i, ok := b.byID[id]
	if !ok {
		return Question{}, errors.Wrap(ErrNotFound, "question", slog.String("question_id", id))
	}
	return b.questions[i], nil
}

// CategoryOf returns the category of the question with the given id.
func (b *Bank) CategoryOf(questionID string) (Category, error) {
	q, err := b.Question(questionID)
	if err != nil {
		return "", errors.Wrap(err, "category of")
	}
	return q.Category, nil
}

// Condition returns the condition definition of category.
func (b *Bank) Condition(category Category) (Condition, bool) {
	c, ok := b.conditions[category]
	return c, ok
}

// Conditions returns all condition definitions ordered by category rank, then by name for
// categories without questions.
func (b *Bank) Conditions() []Condition {
	out := make([]Condition, 0, len(b.conditions))
	for _, c := range b.conditions {
		out = append(out, c)
	}
	slices.SortFunc(out, func(x, y Condition) int {
		return compareCategories(b, x.Category, y.Category)
	})
	return out
}

// Questions returns a copy of the questions in presentation order.
func (b *Bank) Questions() []Question {
	return slices.Clone(b.questions)
}

// Categories lists the categories that have questions, in order of first appearance.
func (b *Bank) Categories() []Category {
	return slices.Clone(b.categories)
}

// CategoryRank returns the position of category in [Bank.Categories]. Categories without questions rank last.
func (b *Bank) CategoryRank(category Category) int {
	if r, ok := b.categoryRank[category]; ok {
		return r
	}
	return len(b.categories)
}

func compareCategories(b *Bank, x, y Category) int {
	rx, ry := b.CategoryRank(x), b.CategoryRank(y)
	if rx != ry {
		return rx - ry
	}
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// Score sums the answers into a [ScoreMap]. Answers may come in any order and may skip questions.
func (b *Bank) Score(answers []Answer) (ScoreMap, error) {
	scores := ScoreMap{}
	answered := make(map[string]bool, len(answers))
	for _, a := range answers {
		attrs := []slog.Attr{slog.String("question_id", a.QuestionID), slog.Int("value", int(a.Value))}
		q, err := b.Question(a.QuestionID)
		if err != nil {
			return nil, errors.Wrap(err, "score answer", attrs...)
		}
		if answered[a.QuestionID] {
			return nil, errors.Wrap(ErrDuplicateAnswer, "score answer", attrs...)
		}
		if !q.HasOption(a.Value) {
			return nil, errors.Wrap(ErrInvalidOption, "score answer", attrs...)
		}
		answered[a.QuestionID] = true
		scores[q.Category] += int(a.Value)
	}
	return scores, nil
}
