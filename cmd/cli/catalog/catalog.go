// Package catalog prints the question bank the assessment is built from.
package catalog

import (
	"io"
	"log/slog"

	"github.com/myrjola/wellcheck/internal/assessment"
	"github.com/myrjola/wellcheck/internal/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var Group = &cobra.Group{
	ID:    "catalog",
	Title: "Catalog",
}

var ErrUnknownCategory = errors.NewSentinel("unknown category")

// Document is the YAML shape of the printed catalog.
type Document struct {
	Questions  []assessment.Question  `yaml:"questions"`
	Conditions []assessment.Condition `yaml:"conditions"`
}

func NewCatalog() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:     "catalog",
		GroupID: Group.ID,
		Short:   "Print the questions and conditions as YAML",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeCatalog(cmd.OutOrStdout(), assessment.Category(category))
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "only print the given category")
	return cmd
}

// writeCatalog encodes the default bank to w, filtered to category unless it is empty.
func writeCatalog(w io.Writer, category assessment.Category) error {
	if category != "" && !category.Valid() {
		return errors.Wrap(ErrUnknownCategory, "write catalog", slog.String("category", string(category)))
	}
	bank, err := assessment.DefaultBank()
	if err != nil {
		return errors.Wrap(err, "load question bank")
	}

	doc := Document{Questions: []assessment.Question{}, Conditions: []assessment.Condition{}}
	for _, q := range bank.Questions() {
		if category == "" || q.Category == category {
			doc.Questions = append(doc.Questions, q)
		}
	}
	for _, c := range bank.Conditions() {
		if category == "" || c.Category == category {
			doc.Conditions = append(doc.Conditions, c)
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2) //nolint:mnd // two spaces
	if err = enc.Encode(doc); err != nil {
		return errors.Wrap(err, "encode catalog")
	}
	if err = enc.Close(); err != nil {
		return errors.Wrap(err, "close catalog encoder")
	}
	return nil
}
