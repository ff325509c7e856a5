package bridge

// HostFunc is a single named operation on the capability object. Arguments
// and return value follow whichever host calling convention the operation
// uses: structured operations receive an Options value (with injected
// callbacks) followed by any extra positional arguments and their return
// value is ignored; bare operations receive a Callback as their sole
// argument and their return value resolves the promise.
type HostFunc func(args ...any) any

// Capability is the externally supplied host surface: a mapping from
// operation names to host operations. The bridge holds a non-owning
// reference to it, fixed at construction, and never mutates it.
type Capability interface {
	// Lookup returns the host operation registered under name.
	Lookup(name string) (HostFunc, bool)
}

// CapabilityMap adapts a plain map to the Capability interface.
type CapabilityMap map[string]HostFunc

// Lookup implements Capability.
func (m CapabilityMap) Lookup(name string) (HostFunc, bool) {
	fn, ok := m[name]
	return fn, ok
}

// Optional capability interfaces.

// Closer is implemented by capabilities that hold resources, for example an
// embedded script runtime. Bridge.Close forwards to it.
type Closer interface {
	Close() error
}
