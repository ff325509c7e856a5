package bridge

import (
	"reflect"
	"time"
)

// Reserved option keys the bridge injects before forwarding an options value
// to a host operation. These follow the host runtime's naming convention.
const (
	KeySuccess = "success"
	KeyFail    = "fail"
)

// Options is the caller-supplied structure of named fields for one host
// operation (URL, timeout, UI text, and so on). The bridge never interprets
// individual fields; it only shallow-copies the value and injects the
// completion callbacks under KeySuccess and KeyFail.
type Options map[string]any

// Callback is a single-argument completion handler. The bridge injects two
// of these into every structured invocation; hosts following the bare
// convention receive one as their sole argument.
type Callback func(v any)

// Convention is the discriminator tag for the two host calling conventions.
type Convention string

const (
	// ConventionStructured marks operations taking an options value with
	// injected success/fail callbacks.
	ConventionStructured Convention = "structured"
	// ConventionBare marks operations taking only a completion handler and
	// returning their result directly.
	ConventionBare Convention = "bare"
)

// Invocation describes one in-flight conversion of a named host operation.
// Middleware and events observe invocations; the bridge populates Convention
// once the calling-convention branch has been selected.
type Invocation struct {
	ID         string
	Op         string
	Options    any
	Extra      []any
	Convention Convention
	StartedAt  time.Time
}

// isInvocable reports whether v is a callable value. This is the explicit
// branch test for the bare calling convention: any function value supplied
// in place of structured options selects the bare branch.
func isInvocable(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Func
}

// cloneOptions shallow-copies a caller-supplied options value so callback
// injection never mutates caller state. A nil value yields an empty Options.
func cloneOptions(v any) (Options, error) {
	switch t := v.(type) {
	case nil:
		return Options{}, nil
	case Options:
		merged := make(Options, len(t)+2)
		for k, val := range t {
			merged[k] = val
		}
		return merged, nil
	case map[string]any:
		merged := make(Options, len(t)+2)
		for k, val := range t {
			merged[k] = val
		}
		return merged, nil
	default:
		return nil, newInvalidOptions(v)
	}
}
