package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/myrjola/wellcheck/internal/logging"
	"github.com/stretchr/testify/require"
)

func TestContextHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(&buf, slog.LevelDebug)

	ctx := logging.WithAttrs(context.Background(), slog.String("conversation_id", "c1"))
	ctx = logging.WithAttrs(ctx, slog.Int("question", 3))
	logger.LogAttrs(ctx, slog.LevelInfo, "answer recorded")

	out := buf.String()
	require.Contains(t, out, "answer recorded")
	require.Contains(t, out, "conversation_id=c1")
	require.Contains(t, out, "question=3")
}

func TestContextHandler_WithAttrsKeepsContext(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(&buf, slog.LevelDebug).With("source", "test")

	ctx := logging.WithAttrs(context.Background(), slog.String("uri", "/chat/choose"))
	logger.InfoContext(ctx, "hello")

	out := buf.String()
	require.Contains(t, out, "source=test")
	require.Contains(t, out, "uri=/chat/choose")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := logging.ParseLevel(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, logging.ErrUnknownLevel)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
