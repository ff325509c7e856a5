package bridge

import (
	"errors"
	"fmt"
)

// BridgeError is the base error type for all bridge errors.
type BridgeError struct {
	Message string
	Cause   error
}

func (e *BridgeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *BridgeError) Unwrap() error {
	return e.Cause
}

// MissingCapabilityError is returned whenever an operation is invoked while
// the bridge holds no capability object. It is a precondition failure,
// reported synchronously; no promise is created.
type MissingCapabilityError struct {
	BridgeError
}

func newMissingCapability() *MissingCapabilityError {
	return &MissingCapabilityError{BridgeError{Message: "capability object not present"}}
}

// UnsupportedOperationError is returned when the capability object has no
// callable registered under the requested name. WithRawLookupFailure
// replaces this with a panic mirroring the raw non-function call.
type UnsupportedOperationError struct {
	BridgeError
	Op string
}

func newUnsupportedOperation(op string) *UnsupportedOperationError {
	return &UnsupportedOperationError{
		BridgeError: BridgeError{Message: fmt.Sprintf("unsupported operation %q", op)},
		Op:          op,
	}
}

// InvalidOptionsError is returned when the options value is neither nil, a
// map, nor a callable, so the bridge has nothing to inject callbacks into.
type InvalidOptionsError struct {
	BridgeError
	Value any
}

func newInvalidOptions(v any) *InvalidOptionsError {
	return &InvalidOptionsError{
		BridgeError: BridgeError{Message: fmt.Sprintf("options value of type %T supports no callback injection", v)},
		Value:       v,
	}
}

// HostError carries a promise rejection out of Await. Payload is exactly the
// value the host operation passed to its fail callback; the bridge never
// reinterprets or wraps it further.
type HostError struct {
	Payload any
}

func (e *HostError) Error() string {
	if msg := ErrMsg(e.Payload); msg != "" {
		return "host operation failed: " + msg
	}
	return fmt.Sprintf("host operation failed: %v", e.Payload)
}

// IsMissingCapability reports whether err is a MissingCapabilityError.
func IsMissingCapability(err error) bool {
	var target *MissingCapabilityError
	return errors.As(err, &target)
}

// IsUnsupportedOperation reports whether err is an UnsupportedOperationError.
func IsUnsupportedOperation(err error) bool {
	var target *UnsupportedOperationError
	return errors.As(err, &target)
}

// RejectionPayload extracts the raw host fail payload from an error returned
// by Promise.Await. The second result is false when err did not originate
// from a promise rejection.
func RejectionPayload(err error) (any, bool) {
	var he *HostError
	if errors.As(err, &he) {
		return he.Payload, true
	}
	return nil, false
}
