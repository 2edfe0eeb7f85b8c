package tweens

import (
	"context"
	"sync"
)

// Wait is a handle that becomes ready when a playable reaches a state
// (completed, paused or stopped). The core never blocks: a cooperative
// scheduler polls Ready each frame, goroutine code selects on Done.
type Wait struct {
	done     chan struct{}
	once     sync.Once
	mu       sync.Mutex
	canceled bool
}

func newWait() *Wait {
	return &Wait{done: make(chan struct{})}
}

func readyWait() *Wait {
	w := newWait()
	w.resolve()
	return w
}

// Done returns a channel that is closed once the handle is ready.
// A canceled handle's channel is never closed.
func (w *Wait) Done() <-chan struct{} {
	return w.done
}

// Ready reports whether the awaited state has been reached.
func (w *Wait) Ready() bool {
	select {
	case <-w.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the handle is ready or ctx ends. It must not be called
// from the goroutine that drives Update, which would deadlock.
func (w *Wait) Wait(ctx context.Context) error {
	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Cancel detaches the handle; it will not become ready afterwards.
func (w *Wait) Cancel() {
	w.mu.Lock()
	w.canceled = true
	w.mu.Unlock()
}

// Canceled reports whether Cancel was called.
func (w *Wait) Canceled() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.canceled
}

func (w *Wait) resolve() {
	if w.Canceled() {
		return
	}
	w.once.Do(func() { close(w.done) })
}

type waitKind uint8

const (
	waitComplete waitKind = iota
	waitPause
	waitStop
	waitKinds
)

// waitList holds the pending handles of one kind.
type waitList []*Wait

func (l *waitList) add(w *Wait) {
	// Drop canceled handles so long-lived playables do not accumulate them.
	kept := (*l)[:0]
	for _, old := range *l {
		if !old.Canceled() {
			kept = append(kept, old)
		}
	}
	*l = append(kept, w)
}

func (l *waitList) resolveAll() {
	pending := *l
	*l = nil
	for _, w := range pending {
		w.resolve()
	}
}
