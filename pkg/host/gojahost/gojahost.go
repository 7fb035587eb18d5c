// Package gojahost runs the widget bindings against an in-process
// JavaScript widget host.
//
// The host is a goja runtime loaded with a small shim that implements the
// construction, command and callback protocol of the modal, toast,
// checkbox and tablesort modules. It renders nothing. Tests and the
// fomantic CLI use it to play user interactions, such as approving a modal
// or clicking a toast action, and to read back the transcript of what the
// host saw.
//
// A Host is not safe for concurrent use, like the browser event loop it
// stands in for.
package gojahost

import (
	_ "embed"
	"fmt"

	"github.com/dop251/goja"
	"go.uber.org/zap"

	"github.com/go-drift/fomantic/pkg/errors"
	"github.com/go-drift/fomantic/pkg/host"
	"github.com/go-drift/fomantic/pkg/log"
)

//go:embed shim.js
var shim string

// Host is a host.Host backed by a goja runtime.
type Host struct {
	vm     *goja.Runtime
	dollar *goja.Object
	fui    *goja.Object
	funcs  []*Func
}

// New starts a runtime and loads the widget host shim.
func New() (*Host, error) {
	vm := goja.New()
	if _, err := vm.RunScript("shim.js", shim); err != nil {
		return nil, fmt.Errorf("gojahost: load shim: %w", err)
	}
	dollar := vm.Get("$").ToObject(vm)
	return &Host{
		vm:     vm,
		dollar: dollar,
		fui:    dollar.Get("fui").ToObject(vm),
	}, nil
}

// NewObject returns an empty JavaScript object.
func (h *Host) NewObject() host.Object {
	return &Object{h: h, obj: h.vm.NewObject()}
}

// FuncOf wraps fn as a JavaScript function. After Release the function
// stays callable from script but reports the call and returns undefined.
func (h *Host) FuncOf(fn func(args []host.Value) any) host.Func {
	f := &Func{}
	f.value = h.vm.ToValue(func(call goja.FunctionCall) goja.Value {
		if f.released {
			errors.Report(&errors.Error{Op: "gojahost.invoke", Kind: errors.KindHost, Err: host.ErrReleased})
			return goja.Undefined()
		}
		args := make([]host.Value, len(call.Arguments))
		for i, a := range call.Arguments {
			args[i] = h.fromJS(a)
		}
		return h.toJS(fn(args))
	})
	h.funcs = append(h.funcs, f)
	return f
}

// Construct calls $[kind](args...).
func (h *Host) Construct(kind string, args ...any) (host.Object, error) {
	fn, ok := goja.AssertFunction(h.dollar.Get(kind))
	if !ok {
		return nil, fmt.Errorf("gojahost: $.%s is not a function", kind)
	}
	res, err := fn(h.dollar, h.toJSArgs(args)...)
	if err != nil {
		return nil, fmt.Errorf("gojahost: $.%s: %w", kind, err)
	}
	log.Named("gojahost").Debug("constructed", zap.String("kind", kind))
	return &Object{h: h, obj: res.ToObject(h.vm)}, nil
}

// Query calls $(selector). An empty result is a *errors.LookupError.
func (h *Host) Query(selector string) (host.Object, error) {
	fn, _ := goja.AssertFunction(h.dollar)
	res, err := fn(goja.Undefined(), h.vm.ToValue(selector))
	if err != nil {
		return nil, &errors.LookupError{Selector: selector, Diagnostic: err.Error()}
	}
	obj := res.ToObject(h.vm)
	if obj.Get("length").ToInteger() == 0 {
		return nil, &errors.LookupError{Selector: selector, Diagnostic: "no element matches selector"}
	}
	return &Object{h: h, obj: obj}, nil
}

// Define adds an element that $(selector) finds.
func (h *Host) Define(selector string) {
	if err := h.Simulate("define", selector); err != nil {
		panic(err)
	}
}

// Simulate runs the named user interaction of the shim:
//
//	approve, deny        answer the visible modal or toast
//	clickAction(i)       click action i of the visible modal or toast
//	input(text)          type into the visible prompt
//	clickToast, expire   click the visible toast or let its time run out
//	change(selector)     toggle the checkbox at selector
func (h *Host) Simulate(name string, args ...any) error {
	fn, ok := goja.AssertFunction(h.fui.Get(name))
	if !ok {
		return fmt.Errorf("gojahost: unknown interaction %q", name)
	}
	if _, err := fn(h.fui, h.toJSArgs(args)...); err != nil {
		return fmt.Errorf("gojahost: %s: %w", name, err)
	}
	return nil
}

// Transcript returns every event the host recorded, such as
// "modal#1 show" or "toast#2 callback onRemove".
func (h *Host) Transcript() []string {
	fn, _ := goja.AssertFunction(h.fui.Get("transcript"))
	res, err := fn(h.fui)
	if err != nil {
		return nil
	}
	var out []string
	if err := h.vm.ExportTo(res, &out); err != nil {
		return nil
	}
	return out
}

// Eval runs src in the runtime and returns its exported result.
func (h *Host) Eval(src string) (host.Value, error) {
	res, err := h.vm.RunString(src)
	if err != nil {
		return nil, err
	}
	return h.fromJS(res), nil
}

// LiveFuncs returns how many functions have not been released.
func (h *Host) LiveFuncs() int {
	n := 0
	for _, f := range h.funcs {
		if !f.released {
			n++
		}
	}
	return n
}

func (h *Host) toJSArgs(args []any) []goja.Value {
	out := make([]goja.Value, len(args))
	for i, a := range args {
		out[i] = h.toJS(a)
	}
	return out
}

func (h *Host) toJS(v any) goja.Value {
	switch v := v.(type) {
	case nil:
		return goja.Undefined()
	case *Object:
		return v.obj
	case *Func:
		return v.value
	case []any:
		items := make([]any, len(v))
		for i, item := range v {
			items[i] = h.toJS(item)
		}
		return h.vm.NewArray(items...)
	case map[string]any:
		obj := h.vm.NewObject()
		for k, item := range v {
			_ = obj.Set(k, h.toJS(item))
		}
		return obj
	default:
		return h.vm.ToValue(v)
	}
}

func (h *Host) fromJS(v goja.Value) host.Value {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil
	}
	if obj, ok := v.(*goja.Object); ok {
		return &Object{h: h, obj: obj}
	}
	return v.Export()
}

// Object is a JavaScript object.
type Object struct {
	h   *Host
	obj *goja.Object
}

// Set assigns a property.
func (o *Object) Set(name string, value any) {
	if err := o.obj.Set(name, o.h.toJS(value)); err != nil {
		errors.Report(&errors.Error{Op: "gojahost.Set", Kind: errors.KindHost, Err: err})
	}
}

// Call invokes a method with the object as receiver. Script exceptions are
// reported and yield nil.
func (o *Object) Call(method string, args ...any) host.Value {
	fn, ok := goja.AssertFunction(o.obj.Get(method))
	if !ok {
		errors.Report(&errors.Error{Op: "gojahost.Call", Kind: errors.KindHost, Err: fmt.Errorf("%s is not a function", method)})
		return nil
	}
	res, err := fn(o.obj, o.h.toJSArgs(args)...)
	if err != nil {
		errors.Report(&errors.Error{Op: "gojahost.Call", Kind: errors.KindHost, Err: err})
		return nil
	}
	return o.h.fromJS(res)
}

// Get reads a property, exported like a callback argument.
func (o *Object) Get(name string) host.Value {
	return o.h.fromJS(o.obj.Get(name))
}

// Func is a Go function exposed to script.
type Func struct {
	value    goja.Value
	released bool
}

// Release makes later calls from script no-ops.
func (f *Func) Release() {
	f.released = true
}

// Released reports whether Release has been called.
func (f *Func) Released() bool {
	return f.released
}
