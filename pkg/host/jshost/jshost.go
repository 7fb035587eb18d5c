//go:build js && wasm

// Package jshost binds the widget host of the page the WebAssembly binary
// runs in, reached through the global jQuery object.
//
//	h, err := jshost.New()
//	if err != nil {
//	    return err
//	}
//	host.SetHost(h)
package jshost

import (
	"fmt"
	"syscall/js"

	"github.com/go-drift/fomantic/pkg/errors"
	"github.com/go-drift/fomantic/pkg/host"
)

// Host is a host.Host backed by the page's jQuery and its widget modules.
type Host struct {
	dollar js.Value
}

// New looks up the global $ function.
func New() (*Host, error) {
	dollar := js.Global().Get("$")
	if dollar.Type() != js.TypeFunction {
		return nil, fmt.Errorf("jshost: jQuery is not loaded: %w", host.ErrHostUnavailable)
	}
	return &Host{dollar: dollar}, nil
}

// NewObject returns an empty JavaScript object.
func (h *Host) NewObject() host.Object {
	return Object{v: js.Global().Get("Object").New()}
}

// FuncOf wraps fn in a js.Func. The page may call it until Release.
func (h *Host) FuncOf(fn func(args []host.Value) any) host.Func {
	return Func{f: js.FuncOf(func(this js.Value, args []js.Value) any {
		in := make([]host.Value, len(args))
		for i, a := range args {
			in[i] = fromJS(a)
		}
		return toJS(fn(in))
	})}
}

// Construct calls $[kind](args...). A thrown exception is returned as an
// error.
func (h *Host) Construct(kind string, args ...any) (obj host.Object, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("jshost: $.%s: %v", kind, r)
		}
	}()
	fn := h.dollar.Get(kind)
	if fn.Type() != js.TypeFunction {
		return nil, fmt.Errorf("jshost: $.%s is not a function", kind)
	}
	return Object{v: h.dollar.Call(kind, toJSArgs(args)...)}, nil
}

// Query calls $(selector). A malformed selector or an empty result is a
// *errors.LookupError.
func (h *Host) Query(selector string) (obj host.Object, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &errors.LookupError{Selector: selector, Diagnostic: fmt.Sprint(r)}
		}
	}()
	res := h.dollar.Invoke(selector)
	if res.Get("length").Int() == 0 {
		return nil, &errors.LookupError{Selector: selector, Diagnostic: "no element matches selector"}
	}
	return Object{v: res}, nil
}

// Object is a JavaScript object.
type Object struct {
	v js.Value
}

// Value returns the underlying js.Value.
func (o Object) Value() js.Value {
	return o.v
}

// Set assigns a property.
func (o Object) Set(name string, value any) {
	o.v.Set(name, toJS(value))
}

// Call invokes a method. A thrown exception is reported and yields nil.
func (o Object) Call(method string, args ...any) (res host.Value) {
	defer func() {
		if r := recover(); r != nil {
			errors.Report(&errors.Error{Op: "jshost.Call", Kind: errors.KindHost, Err: fmt.Errorf("%s: %v", method, r)})
			res = nil
		}
	}()
	return fromJS(o.v.Call(method, toJSArgs(args)...))
}

// Func is a released-on-demand js.Func.
type Func struct {
	f js.Func
}

// Release frees the js.Func. The page must not call it afterwards.
func (f Func) Release() {
	f.f.Release()
}

func toJSArgs(args []any) []any {
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = toJS(a)
	}
	return out
}

func toJS(v any) any {
	switch v := v.(type) {
	case Object:
		return v.v
	case Func:
		return v.f
	case []any:
		return toJSArgs(v)
	case map[string]any:
		obj := js.Global().Get("Object").New()
		for k, item := range v {
			obj.Set(k, toJS(item))
		}
		return obj
	default:
		return v
	}
}

func fromJS(v js.Value) host.Value {
	switch v.Type() {
	case js.TypeUndefined, js.TypeNull:
		return nil
	case js.TypeBoolean:
		return v.Bool()
	case js.TypeNumber:
		return v.Float()
	case js.TypeString:
		return v.String()
	default:
		return Object{v: v}
	}
}
