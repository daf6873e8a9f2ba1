// Package assess provides the commands that run or score an assessment.
package assess

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/myrjola/wellcheck/internal/assessment"
	"github.com/myrjola/wellcheck/internal/chat"
	"github.com/myrjola/wellcheck/internal/errors"
	"github.com/myrjola/wellcheck/internal/logging"
	"github.com/spf13/cobra"
)

var Group = &cobra.Group{
	ID:    "assess",
	Title: "Assessment",
}

// pollInterval is how often the terminal checks whether the assistant finished typing.
const pollInterval = 50 * time.Millisecond

const (
	quitCommand  = "/quit"
	resetCommand = "/reset"
)

func NewChat() *cobra.Command {
	var delays chat.Delays
	cmd := &cobra.Command{
		Use:     "chat",
		GroupID: Group.ID,
		Short:   "Take the assessment in the terminal",
		Long: "Runs the guided assessment as a chat. Answer questions with the number shown next to an option. " +
			"Type " + resetCommand + " to start over and " + quitCommand + " to leave. Nothing is stored.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := logging.NewLogger(cmd.ErrOrStderr(), slog.LevelWarn)
			out := cmd.OutOrStdout()
			return runChat(cmd.Context(), cmd.InOrStdin(), out, colorEnabled(out), delays, logger)
		},
	}
	cmd.Flags().DurationVar(&delays.Advance, "advance-delay", 500*time.Millisecond, //nolint:mnd // 500ms
		"pause before the next question")
	cmd.Flags().DurationVar(&delays.Reveal, "reveal-delay", 2*time.Second, //nolint:mnd // 2s
		"pause before the report is shown")
	cmd.Flags().DurationVar(&delays.Reply, "reply-delay", time.Second, "pause before replying to free text")
	return cmd
}

// runChat drives one conversation from in to out until EOF or the quit command.
func runChat(
	ctx context.Context,
	in io.Reader,
	out io.Writer,
	colorize bool,
	delays chat.Delays,
	logger *slog.Logger,
) error {
	bank, err := assessment.DefaultBank()
	if err != nil {
		return errors.Wrap(err, "load question bank")
	}
	c := chat.NewConversation("terminal", bank, delays, logger)
	defer c.Close()

	p := newPrinter(out, colorize)
	scanner := bufio.NewScanner(in)
	shown := 0
	for {
		var view chat.View
		if view, err = waitIdle(ctx, c); err != nil {
			return err
		}
		for _, m := range view.Messages[min(shown, len(view.Messages)):] {
			if m.FromAssistant() {
				p.message(m)
			}
		}
		shown = len(view.Messages)
		if view.Question != nil {
			p.question(*view.Question)
		} else if len(view.Options) > 0 {
			p.options(view.Options)
		}

		p.prompt()
		if !scanner.Scan() {
			if err = scanner.Err(); err != nil {
				return errors.Wrap(err, "read input")
			}
			return nil
		}
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			continue
		case line == quitCommand:
			return nil
		case line == resetCommand:
			c.Reset()
			shown = 0
			continue
		case view.Question != nil:
			err = c.Choose(line)
		default:
			if choice, ok := pickOption(view, line); ok {
				err = c.Choose(choice)
				if choice == chat.ChoiceRestart {
					shown = 0
				}
			} else {
				err = c.Say(line)
			}
		}

		switch {
		case err == nil:
		case errors.Is(err, assessment.ErrInvalidOption), errors.Is(err, chat.ErrUnknownChoice):
			p.error("Please choose one of the options offered.")
		case errors.Is(err, chat.ErrBusy):
			p.error("Please wait a moment, the assistant is still responding.")
		default:
			return errors.Wrap(err, "chat")
		}
	}
}

// pickOption maps a 1-based position or an option value to the option's value.
func pickOption(view chat.View, line string) (string, bool) {
	if i, err := strconv.Atoi(line); err == nil && i >= 1 && i <= len(view.Options) {
		return view.Options[i-1].Value, true
	}
	for _, o := range view.Options {
		if strings.EqualFold(o.Value, line) {
			return o.Value, true
		}
	}
	return "", false
}

// waitIdle returns the first view without a pending step.
func waitIdle(ctx context.Context, c *chat.Conversation) (chat.View, error) {
	for {
		view := c.View()
		if !view.Pending {
			return view, nil
		}
		select {
		case <-ctx.Done():
			return chat.View{}, errors.Wrap(ctx.Err(), "wait for assistant")
		case <-time.After(pollInterval):
		}
	}
}
