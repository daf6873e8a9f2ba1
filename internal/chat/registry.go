package chat

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/myrjola/wellcheck/internal/assessment"
)

// Registry keeps the live conversations in memory, keyed by a random ID.
type Registry struct {
	bank   *assessment.Bank
	delays Delays
	logger *slog.Logger

	mu            sync.Mutex
	conversations map[string]*Conversation
}

func NewRegistry(bank *assessment.Bank, delays Delays, logger *slog.Logger) *Registry {
	return &Registry{
		bank:          bank,
		delays:        delays,
		logger:        logger,
		mu:            sync.Mutex{},
		conversations: make(map[string]*Conversation),
	}
}

func (r *Registry) Create() *Conversation {
	id := uuid.NewString()
	c := NewConversation(id, r.bank, r.delays, r.logger)
	r.mu.Lock()
	r.conversations[id] = c
	r.mu.Unlock()
	return c
}

func (r *Registry) Get(id string) (*Conversation, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.conversations[id]
	return c, ok
}

// Delete forgets the conversation and drops its pending steps.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	c, ok := r.conversations[id]
	delete(r.conversations, id)
	r.mu.Unlock()
	if ok {
		c.Close()
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.conversations)
}

// Sweep deletes conversations inactive since before cutoff and returns how many were deleted.
func (r *Registry) Sweep(cutoff time.Time) int {
	var stale []*Conversation
	r.mu.Lock()
	for id, c := range r.conversations {
		if c.LastActive().Before(cutoff) {
			stale = append(stale, c)
			delete(r.conversations, id)
		}
	}
	r.mu.Unlock()
	for _, c := range stale {
		c.Close()
	}
	return len(stale)
}

// StartSweeper sweeps conversations idle for longer than idle every interval until ctx is done.
func (r *Registry) StartSweeper(ctx context.Context, interval time.Duration, idle time.Duration) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(interval):
		}
		if n := r.Sweep(time.Now().Add(-idle)); n > 0 {
			r.logger.LogAttrs(ctx, slog.LevelInfo, "swept idle conversations",
				slog.Int("swept", n), slog.Int("remaining", r.Len()))
		}
	}
}

// Close drops every conversation and its pending steps.
func (r *Registry) Close() {
	r.mu.Lock()
	conversations := r.conversations
	r.conversations = make(map[string]*Conversation)
	r.mu.Unlock()
	for _, c := range conversations {
		c.Close()
	}
}
