package assess

import (
	"encoding/json"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/myrjola/wellcheck/internal/assessment"
	"github.com/myrjola/wellcheck/internal/errors"
	"github.com/spf13/cobra"
)

var (
	ErrMalformedAnswer = errors.NewSentinel("answer must look like question_id=value")
	ErrUnknownFormat   = errors.NewSentinel("unknown output format")
)

const (
	formatText = "text"
	formatJSON = "json"
)

func NewReport() *cobra.Command {
	var (
		answers []string
		format  string
	)
	cmd := &cobra.Command{
		Use:     "report",
		GroupID: Group.ID,
		Short:   "Render a report from explicit answers",
		Long: "Scores the given answers and renders the report without a conversation. Questions without an " +
			"answer do not contribute to any score. Use the catalog command to list question ids.",
		Example: "  wellcheck report --answer sleep_quality=3 --answer physical_anxiety=2 --format json",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := parseAnswers(answers)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), parsed, format)
		},
	}
	cmd.Flags().StringArrayVarP(&answers, "answer", "a", nil, "answer as question_id=value, repeatable")
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text or json")
	return cmd
}

func parseAnswers(raw []string) ([]assessment.Answer, error) {
	answers := make([]assessment.Answer, 0, len(raw))
	for _, r := range raw {
		id, value, ok := strings.Cut(r, "=")
		id = strings.TrimSpace(id)
		if !ok || id == "" {
			return nil, errors.Wrap(ErrMalformedAnswer, "parse answer", slog.String("answer", r))
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, errors.Wrap(ErrMalformedAnswer, "parse answer value", slog.String("answer", r))
		}
		answers = append(answers, assessment.Answer{QuestionID: id, Value: assessment.Severity(n)})
	}
	return answers, nil
}

func writeReport(w io.Writer, answers []assessment.Answer, format string) error {
	if format != formatText && format != formatJSON {
		return errors.Wrap(ErrUnknownFormat, "write report", slog.String("format", format))
	}
	bank, err := assessment.DefaultBank()
	if err != nil {
		return errors.Wrap(err, "load question bank")
	}
	scores, err := bank.Score(answers)
	if err != nil {
		return errors.Wrap(err, "score answers")
	}
	result := bank.Synthesize(scores)

	if format == formatText {
		if _, err = io.WriteString(w, result.Text); err != nil {
			return errors.Wrap(err, "write report")
		}
		return nil
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err = enc.Encode(struct {
		Scores assessment.ScoreMap `json:"scores"`
		assessment.Result
	}{Scores: scores, Result: result}); err != nil {
		return errors.Wrap(err, "encode report")
	}
	return nil
}
