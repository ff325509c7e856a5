package bridge

import (
	"context"
	"sync"
)

// Promise is the settle-once future returned by every invocation. It has two
// terminal states: resolved, holding exactly the value the host passed to
// the success callback, and rejected, holding exactly the value passed to
// the fail callback. The first settlement wins; every later settlement
// attempt is a no-op.
//
// A Promise carries no cancellation: once the invocation has been issued
// there is no way to abort the underlying host operation. The context given
// to Await only abandons the wait.
type Promise struct {
	done     chan struct{}
	once     sync.Once
	value    any
	reason   any
	rejected bool
}

func newPromise() *Promise {
	return &Promise{done: make(chan struct{})}
}

// resolvedPromise builds an already-settled promise for the bare calling
// convention, where the host operation's return value is the result.
func resolvedPromise(v any) *Promise {
	p := newPromise()
	p.settle(v, false)
	return p
}

// settle transitions the promise to its terminal state. It reports whether
// this call won the settlement.
func (p *Promise) settle(v any, rejected bool) bool {
	won := false
	p.once.Do(func() {
		if rejected {
			p.reason = v
			p.rejected = true
		} else {
			p.value = v
		}
		close(p.done)
		won = true
	})
	return won
}

// Done returns a channel that is closed once the promise settles.
func (p *Promise) Done() <-chan struct{} {
	return p.done
}

// Settled reports whether the promise has settled.
func (p *Promise) Settled() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// Await blocks until the promise settles or ctx is done. On resolution it
// returns the success value; on rejection it returns a *HostError carrying
// the raw fail payload. A context error means the wait was abandoned, not
// that the operation failed: the promise may still settle later.
func (p *Promise) Await(ctx context.Context) (any, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-p.done:
	}
	if p.rejected {
		return nil, &HostError{Payload: p.reason}
	}
	return p.value, nil
}

// Value returns the resolution value. The second result is false until the
// promise has resolved.
func (p *Promise) Value() (any, bool) {
	if !p.Settled() || p.rejected {
		return nil, false
	}
	return p.value, true
}

// Rejection returns the raw fail payload. The second result is false until
// the promise has rejected.
func (p *Promise) Rejection() (any, bool) {
	if !p.Settled() || !p.rejected {
		return nil, false
	}
	return p.reason, true
}
