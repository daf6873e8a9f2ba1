package chat_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/myrjola/wellcheck/internal/chat"
	"github.com/myrjola/wellcheck/internal/testhelpers"
	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T) *chat.Registry {
	t.Helper()
	return chat.NewRegistry(testhelpers.DefaultBank(t), chat.Delays{}, testhelpers.NewLogger(io.Discard))
}

func TestRegistry(t *testing.T) {
	r := newRegistry(t)
	first := r.Create()
	second := r.Create()
	require.NotEqual(t, first.ID(), second.ID())
	require.Equal(t, 2, r.Len())

	got, ok := r.Get(first.ID())
	require.True(t, ok)
	require.Same(t, first, got)

	r.Delete(first.ID())
	_, ok = r.Get(first.ID())
	require.False(t, ok)
	require.Equal(t, 1, r.Len())

	// Deleting twice is harmless.
	r.Delete(first.ID())
	_, ok = r.Get("unknown")
	require.False(t, ok)
}

func TestRegistry_Sweep(t *testing.T) {
	r := newRegistry(t)
	c := r.Create()

	require.Equal(t, 0, r.Sweep(c.LastActive().Add(-time.Minute)))
	require.Equal(t, 1, r.Len())

	require.Equal(t, 1, r.Sweep(time.Now().Add(time.Minute)))
	require.Equal(t, 0, r.Len())
}

func TestRegistry_StartSweeper(t *testing.T) {
	r := newRegistry(t)
	r.Create()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.StartSweeper(ctx, 5*time.Millisecond, 0)
		close(done)
	}()

	require.Eventually(t, func() bool { return r.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}

func TestRegistry_Close(t *testing.T) {
	r := chat.NewRegistry(testhelpers.DefaultBank(t), chat.Delays{Reveal: time.Hour}, testhelpers.NewLogger(io.Discard))
	c := r.Create()
	require.NoError(t, c.Choose(chat.ChoiceStart))
	for {
		v := c.View()
		if v.Question == nil {
			break
		}
		require.NoError(t, c.Choose("0"))
	}
	require.True(t, c.View().Pending)

	r.Close()
	require.Equal(t, 0, r.Len())
	require.False(t, c.View().Pending)
}
