// Package gojahost binds a JavaScript host object inside a goja runtime as
// a bridge.Capability. Mini-app hosts are JavaScript environments; this
// adapter lets the conversion layer drive a real (or test) host written in
// JS without implementing any host operation itself.
//
// A goja.Runtime is not safe for concurrent use. Everything reaching the
// wrapped capability, including the injected callbacks the host fires, must
// run on the goroutine that owns the runtime.
package gojahost

import (
	"fmt"

	"github.com/dop251/goja"

	"github.com/minihost/bridgekit/bridge"
)

// Capability adapts a JS object whose properties are host operations
// following the success/fail callback-pair convention (or the bare-callback
// convention) to the bridge.Capability interface.
type Capability struct {
	vm   *goja.Runtime
	root *goja.Object
}

// New binds the JS object stored under globalName in vm.
func New(vm *goja.Runtime, globalName string) (*Capability, error) {
	v := vm.Get(globalName)
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil, fmt.Errorf("global %q is not defined", globalName)
	}
	return FromObject(vm, v.ToObject(vm)), nil
}

// FromObject binds an existing JS object.
func FromObject(vm *goja.Runtime, obj *goja.Object) *Capability {
	return &Capability{vm: vm, root: obj}
}

// Lookup implements bridge.Capability. The returned HostFunc converts
// arguments to JS values (options maps become JS objects whose injected
// callbacks become JS functions) and exports the JS return value back to
// Go. A JS exception inside the host operation propagates as a panic, which
// matches the host convention of an uncaught synchronous throw.
func (c *Capability) Lookup(name string) (bridge.HostFunc, bool) {
	fn, ok := goja.AssertFunction(c.root.Get(name))
	if !ok {
		return nil, false
	}
	return func(args ...any) any {
		jsArgs := make([]goja.Value, len(args))
		for i, a := range args {
			jsArgs[i] = c.toValue(a)
		}
		ret, err := fn(c.root, jsArgs...)
		if err != nil {
			panic(err)
		}
		if ret == nil || goja.IsUndefined(ret) || goja.IsNull(ret) {
			return nil
		}
		return ret.Export()
	}, true
}

func (c *Capability) toValue(a any) goja.Value {
	switch t := a.(type) {
	case nil:
		return goja.Undefined()
	case bridge.Options:
		obj := c.vm.NewObject()
		for k, v := range t {
			_ = obj.Set(k, c.toValue(v))
		}
		return obj
	case bridge.Callback:
		// Export the value the host passes so callbacks see plain Go data.
		return c.vm.ToValue(func(call goja.FunctionCall) goja.Value {
			var v any
			if len(call.Arguments) > 0 {
				v = call.Arguments[0].Export()
			}
			t(v)
			return goja.Undefined()
		})
	default:
		return c.vm.ToValue(a)
	}
}
