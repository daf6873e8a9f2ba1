package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/myrjola/wellcheck/cmd/cli/assess"
	"github.com/myrjola/wellcheck/cmd/cli/catalog"
	"github.com/myrjola/wellcheck/internal/errors"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wellcheck",
		Short:         "Guided mental health self-assessment",
		Long:          `Command line utilities for wellcheck, a guided mental health self-assessment that never stores answers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddGroup(assess.Group)
	rootCmd.AddCommand(assess.NewChat(), assess.NewReport())
	rootCmd.AddGroup(catalog.Group)
	rootCmd.AddCommand(catalog.NewCatalog())
	return rootCmd
}

func Execute() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
