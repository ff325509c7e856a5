// Package bridge converts the callback-pair calling convention of a mini-app
// host runtime into a promise-returning convention. The host exposes named
// operations that report completion through a success/fail callback pair
// buried in their options value; this package wraps any such surface so that
// callers issue an operation once and await a single settlement.
//
// # Architecture
//
// The package is organized in three layers:
//
//   - Layer 1 (Capability Specification): the Capability interface, HostFunc,
//     Options and Callback types describing the host surface being wrapped.
//   - Layer 2 (Conversion Core): the Bridge, its Convert/Invoke operations,
//     the settle-once Promise, and the error taxonomy.
//   - Layer 3 (Observation): invocation middleware (logging, metrics), the
//     event emitter, and the operation catalog. These observe invocations;
//     none of them alters options or payloads.
//
// # Quick Start
//
//	cap := bridge.CapabilityMap{
//	    "login": func(args ...any) any {
//	        opts := args[0].(bridge.Options)
//	        opts[bridge.KeySuccess].(bridge.Callback)(map[string]any{"errMsg": "login:ok"})
//	        return nil
//	    },
//	}
//
//	b := bridge.New(cap)
//	p, err := b.Invoke("login", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := p.Await(ctx)
//
// # Calling Conventions
//
// Most host operations follow the structured convention: they take a single
// options value into which the bridge injects success and fail callbacks. A
// small subset follows the bare convention, taking only a completion handler
// and returning a value directly. The bridge selects the branch with an
// explicit invocability test on the options argument: if the value is
// callable it is forwarded as the operation's sole argument and the promise
// resolves immediately with the operation's return value.
//
// # What the Bridge Does Not Do
//
// The bridge performs no retries, no caching, no cancellation of in-flight
// host operations, and no interpretation of option fields or payloads.
// Failures reported by the host pass through to the promise rejection
// exactly as the host delivered them.
package bridge
