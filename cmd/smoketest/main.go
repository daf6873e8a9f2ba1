package main

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/myrjola/wellcheck/internal/e2etest"
	"github.com/myrjola/wellcheck/internal/errors"
	"github.com/myrjola/wellcheck/internal/logging"
)

const pollInterval = 250 * time.Millisecond

// waitIdle reloads the chat page until the assistant is done typing.
func waitIdle(ctx context.Context, client *e2etest.Client) (*goquery.Document, error) {
	for {
		doc, err := client.GetDoc(ctx, "/")
		if err != nil {
			return nil, errors.Wrap(err, "get chat page")
		}
		if doc.Find(".typing").Length() == 0 {
			return doc, nil
		}
		select {
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), "wait for assistant")
		case <-time.After(pollInterval):
		}
	}
}

// TestAssessment walks through the whole assessment answering "none" and expects the wellness report.
func TestAssessment(client *e2etest.Client) error {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	doc, err := waitIdle(ctx, client)
	if err != nil {
		return err
	}
	if _, err = client.Choose(ctx, "yes"); err != nil {
		return errors.Wrap(err, "start assessment")
	}
	for {
		if doc, err = waitIdle(ctx, client); err != nil {
			return err
		}
		if doc.Find("section.question").Length() == 0 {
			break
		}
		if _, err = client.Choose(ctx, "0"); err != nil {
			return errors.Wrap(err, "answer question")
		}
	}

	report := doc.Find(".report").Text()
	if !strings.Contains(report, "managing your mental health relatively well") {
		return errors.New("wellness report missing", slog.String("report", report))
	}
	if _, err = client.Reset(ctx); err != nil {
		return errors.Wrap(err, "reset conversation")
	}
	return nil
}

func main() {
	logger := logging.NewLogger(os.Stdout, slog.LevelDebug)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		url      = "https://" + hostname
		client   *e2etest.Client
		err      error
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", url))

	if client, err = e2etest.NewClient(url); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", errors.SlogError(err))
		os.Exit(1)
	}
	if err = TestAssessment(client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing assessment", errors.SlogError(err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌")
	os.Exit(0)
}
