package zone

import (
	"sync"
	"time"

	"github.com/ayaan-qadri/wagtail/internal/state"
)

// delayTimer is a single-slot cancellable scheduler: at most one pending
// transition exists at a time, and scheduling a new one supersedes and
// cancels the previous one regardless of its remaining delay. A superseded
// timer's eventual firing has no observable effect.
type delayTimer struct {
	mu      sync.Mutex
	pending *time.Timer
	gen     uint64
	commit  func(state.Mode)
}

func newDelayTimer(commit func(state.Mode)) *delayTimer {
	return &delayTimer{commit: commit}
}

// Schedule cancels any pending transition and arms a new one committing
// the target mode after the given delay. A zero delay still defers to a
// separate scheduling turn, never committing synchronously, so ordering
// relative to immediate effects at the call site stays deterministic.
func (t *delayTimer) Schedule(target state.Mode, delay time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.pending != nil {
		t.pending.Stop()
	}

	t.gen++
	gen := t.gen

	t.pending = time.AfterFunc(delay, func() {
		t.mu.Lock()
		// A Stop can lose the race with an already-fired AfterFunc; the
		// generation check makes the stale firing a no-op.
		if t.gen != gen {
			t.mu.Unlock()
			return
		}
		t.pending = nil
		t.mu.Unlock()

		t.commit(target)
	})
}

// CancelPending clears any outstanding transition with no side effect.
// Safe to call when nothing is pending.
func (t *delayTimer) CancelPending() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.gen++
	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}
}
