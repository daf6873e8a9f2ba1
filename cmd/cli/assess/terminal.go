package assess

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/myrjola/wellcheck/internal/assessment"
	"github.com/myrjola/wellcheck/internal/models"
)

// colorEnabled reports whether w is an interactive terminal.
func colorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// printer writes chat bubbles to a terminal.
type printer struct {
	w         io.Writer
	assistant *color.Color
	heading   *color.Color
	hint      *color.Color
	option    *color.Color
	problem   *color.Color
}

func newPrinter(w io.Writer, colorize bool) *printer {
	newColor := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return &printer{
		w:         w,
		assistant: newColor(color.FgCyan),
		heading:   newColor(color.FgCyan, color.Bold),
		hint:      newColor(color.Faint, color.Italic),
		option:    newColor(color.FgYellow),
		problem:   newColor(color.FgRed),
	}
}

// message prints an assistant message. Paragraphs that are entirely bold are printed as headings.
func (p *printer) message(m models.Message) {
	for _, line := range strings.Split(m.Content, "\n") {
		if heading, ok := boldLine(line); ok {
			_, _ = p.heading.Fprintln(p.w, heading)
			continue
		}
		_, _ = p.assistant.Fprintln(p.w, line)
	}
	if m.Hint != "" {
		_, _ = p.hint.Fprintln(p.w, "  ("+m.Hint+")")
	}
	_, _ = fmt.Fprintln(p.w)
}

func boldLine(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 5 || !strings.HasPrefix(trimmed, "**") || !strings.HasSuffix(trimmed, "**") { //nolint:mnd // **x**
		return "", false
	}
	inner := trimmed[2 : len(trimmed)-2]
	if strings.Contains(inner, "**") {
		return "", false
	}
	return inner, true
}

// question prints the answer options of q keyed by their value.
func (p *printer) question(q assessment.Question) {
	for _, o := range q.Options {
		_, _ = p.option.Fprintf(p.w, "  [%d] %s\n", o.Value, o.Label)
	}
}

// options prints reply options keyed by their position, starting at 1.
func (p *printer) options(options []models.Option) {
	for i, o := range options {
		_, _ = p.option.Fprintf(p.w, "  [%d] %s\n", i+1, o.Label)
	}
}

func (p *printer) prompt() {
	_, _ = fmt.Fprint(p.w, "> ")
}

func (p *printer) error(msg string) {
	_, _ = p.problem.Fprintln(p.w, msg)
}
