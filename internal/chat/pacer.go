package chat

import (
	"sync"
	"time"
)

// Pacer defers conversation steps so that the assistant appears to take its time.
//
// All methods must be called with mu held. Deferred steps run with mu held as well. Cancel invalidates
// every step scheduled before it, including a step whose timer already fired and is waiting for mu.
type Pacer struct {
	mu         sync.Locker
	generation uint64
	seq        uint64
	timers     map[uint64]*time.Timer
}

func NewPacer(mu sync.Locker) *Pacer {
	return &Pacer{
		mu:         mu,
		generation: 0,
		seq:        0,
		timers:     make(map[uint64]*time.Timer),
	}
}

// Schedule runs step after delay. A non-positive delay runs step immediately on the caller's goroutine.
func (p *Pacer) Schedule(delay time.Duration, step func()) {
	if delay <= 0 {
		step()
		return
	}
	generation := p.generation
	p.seq++
	id := p.seq
	// The callback blocks on mu until the caller releases it, so the timer is registered before it runs.
	p.timers[id] = time.AfterFunc(delay, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.generation != generation {
			return
		}
		delete(p.timers, id)
		step()
	})
}

// Pending reports whether a deferred step has yet to run.
func (p *Pacer) Pending() bool {
	return len(p.timers) > 0
}

// Cancel drops every pending step.
func (p *Pacer) Cancel() {
	for id, t := range p.timers {
		t.Stop()
		delete(p.timers, id)
	}
	p.generation++
}
