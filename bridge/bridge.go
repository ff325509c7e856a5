package bridge

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Invoker is the promise-returning form of a named host operation, produced
// by Bridge.Convert. Calling it forwards the options value (after callback
// injection) and any extra positional arguments to the underlying host
// operation.
type Invoker func(options any, extra ...any) (*Promise, error)

// InvokeFunc is the downstream handler signature middleware wraps.
type InvokeFunc func(inv *Invocation) (*Promise, error)

// Middleware wraps an invocation. It receives the invocation and a next
// function that calls the downstream handler, and returns the promise.
// Middleware observes invocations; it must not alter options or payloads.
type Middleware func(inv *Invocation, next InvokeFunc) (*Promise, error)

// Bridge converts named callback-convention operations on a capability
// object into promise-returning invocations. It holds no state beyond the
// capability reference and its observation hooks; concurrent invocations
// are independent and need no coordination here.
type Bridge struct {
	capability Capability
	middleware []Middleware
	logger     zerolog.Logger
	emitter    *EventEmitter
	rawLookup  bool
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithLogger sets the logger used for invocation diagnostics. The default
// logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(b *Bridge) {
		b.logger = logger
	}
}

// WithMiddleware appends invocation middleware. Middleware runs in
// registration order.
func WithMiddleware(mw ...Middleware) Option {
	return func(b *Bridge) {
		b.middleware = append(b.middleware, mw...)
	}
}

// WithEventBuffer enables the invocation event stream with the given channel
// buffer size. Events are readable from Bridge.Events.
func WithEventBuffer(size int) Option {
	return func(b *Bridge) {
		b.emitter = NewEventEmitter(size)
	}
}

// WithRawLookupFailure makes lookups of unknown operations panic the way a
// raw call of a non-function would, instead of returning an
// UnsupportedOperationError. Intended for strict compatibility testing
// against the reference behavior.
func WithRawLookupFailure() Option {
	return func(b *Bridge) {
		b.rawLookup = true
	}
}

// New creates a Bridge over the given capability object. The capability may
// be nil; by contract presence is validated lazily, so construction always
// succeeds and every subsequent invocation fails with a
// MissingCapabilityError until a bridge with a real capability is built.
func New(cap Capability, opts ...Option) *Bridge {
	b := &Bridge{
		capability: cap,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Convert produces the promise-returning invoker for a named operation.
// Resolution of the name against the capability object happens at each
// invocation, not here, so a single invoker stays valid across capability
// lifecycle quirks and reports errors per call.
func (b *Bridge) Convert(name string) Invoker {
	return func(options any, extra ...any) (*Promise, error) {
		return b.run(name, options, extra)
	}
}

// Invoke converts and invokes a named operation in one step. It is exactly
// Convert(name)(options, extra...).
func (b *Bridge) Invoke(name string, options any, extra ...any) (*Promise, error) {
	return b.run(name, options, extra)
}

// Events returns the invocation event stream, or nil when events were not
// enabled with WithEventBuffer.
func (b *Bridge) Events() <-chan Event {
	if b.emitter == nil {
		return nil
	}
	return b.emitter.Events()
}

// Close releases observation resources and, if the capability implements
// Closer, forwards to it. The bridge itself owns nothing else.
func (b *Bridge) Close() error {
	if b.emitter != nil {
		b.emitter.Close()
	}
	if c, ok := b.capability.(Closer); ok {
		return c.Close()
	}
	return nil
}

func (b *Bridge) run(name string, options any, extra []any) (*Promise, error) {
	inv := &Invocation{
		ID:        uuid.New().String(),
		Op:        name,
		Options:   options,
		Extra:     extra,
		StartedAt: time.Now(),
	}

	handler := b.dispatch
	// Apply middleware in reverse order so first registered runs first.
	for i := len(b.middleware) - 1; i >= 0; i-- {
		mw := b.middleware[i]
		next := handler
		handler = func(inv *Invocation) (*Promise, error) {
			return mw(inv, next)
		}
	}

	return handler(inv)
}

// dispatch is the conversion core: it resolves the operation, selects the
// calling-convention branch, and wires the callback pair to a fresh promise.
func (b *Bridge) dispatch(inv *Invocation) (*Promise, error) {
	if b.capability == nil {
		err := newMissingCapability()
		b.emit(EventLookupFailed, inv, map[string]any{"error": err.Error()})
		return nil, err
	}

	fn, ok := b.capability.Lookup(inv.Op)
	if !ok || fn == nil {
		b.emit(EventLookupFailed, inv, map[string]any{"error": "not a function"})
		if b.rawLookup {
			panic(fmt.Sprintf("%s is not a function", inv.Op))
		}
		return nil, newUnsupportedOperation(inv.Op)
	}

	if isInvocable(inv.Options) {
		// Bare convention: the options value is the completion handler.
		// It is forwarded as the sole argument and the promise resolves
		// with the operation's return value, with no callback injection.
		inv.Convention = ConventionBare
		b.emit(EventInvocationStart, inv, nil)
		p := resolvedPromise(fn(inv.Options))
		b.emit(EventInvocationResolved, inv, nil)
		return p, nil
	}

	inv.Convention = ConventionStructured
	merged, err := cloneOptions(inv.Options)
	if err != nil {
		b.emit(EventLookupFailed, inv, map[string]any{"error": err.Error()})
		return nil, err
	}

	p := newPromise()
	merged[KeySuccess] = Callback(func(v any) {
		if p.settle(v, false) {
			b.emit(EventInvocationResolved, inv, nil)
			return
		}
		b.duplicateSettlement(inv, "success")
	})
	merged[KeyFail] = Callback(func(v any) {
		if p.settle(v, true) {
			b.emit(EventInvocationRejected, inv, nil)
			return
		}
		b.duplicateSettlement(inv, "fail")
	})

	b.emit(EventInvocationStart, inv, nil)

	args := make([]any, 0, len(inv.Extra)+1)
	args = append(args, merged)
	args = append(args, inv.Extra...)
	fn(args...)

	return p, nil
}

// duplicateSettlement records a host contract violation: both callbacks
// fired, or one fired twice. Promise semantics already make the extra call
// a no-op; this only surfaces it for diagnosis.
func (b *Bridge) duplicateSettlement(inv *Invocation, callback string) {
	b.logger.Debug().
		Str("invocation_id", inv.ID).
		Str("op", inv.Op).
		Str("callback", callback).
		Msg("duplicate settlement ignored")
	b.emit(EventDuplicateSettlement, inv, map[string]any{"callback": callback})
}

func (b *Bridge) emit(kind EventKind, inv *Invocation, data map[string]any) {
	if b.emitter == nil {
		return
	}
	b.emitter.Emit(kind, inv, data)
}
