// Package hosttest provides a recording widget host for tests.
//
// The recording host keeps every property bag, constructor call and command
// in memory and lets a test play the host's part: invoking callback handles
// the way the page would after a click or a lifecycle transition.
//
//	h := hosttest.Setup(t.Cleanup)
//	m, _ := modal.New(modal.NewConfig().OnApprove(approve))
//	h.LastConstruction().Bag().Func("onApprove").Invoke(nil)
package hosttest

import (
	"errors"
	"fmt"

	fuierrors "github.com/go-drift/fomantic/pkg/errors"
	"github.com/go-drift/fomantic/pkg/host"
)

// Host is an in-memory host that records every interaction.
type Host struct {
	// Constructions lists constructor calls in order.
	Constructions []Construction

	// ConstructErr, when set, makes the next Construct call fail.
	ConstructErr error

	objects   []*Object
	funcs     []*Func
	selectors map[string]*Object
}

// Construction is one recorded constructor call.
type Construction struct {
	Kind   string
	Args   []any
	Result *Object
}

// Bag returns the property-bag argument of a settings-style constructor
// call, or nil for template constructors.
func (c Construction) Bag() *Object {
	if len(c.Args) == 0 {
		return nil
	}
	obj, _ := c.Args[0].(*Object)
	return obj
}

// Call is one recorded method call on an object.
type Call struct {
	Method string
	Args   []any
}

// New returns an empty recording host.
func New() *Host {
	return &Host{selectors: make(map[string]*Object)}
}

// Setup installs a new recording host as the current host and registers
// host.ResetForTest with cleanup.
//
//	h := hosttest.Setup(t.Cleanup)
func Setup(cleanup func(func())) *Host {
	h := New()
	host.SetHost(h)
	cleanup(host.ResetForTest)
	return h
}

// NewObject returns a fresh recorded property bag.
func (h *Host) NewObject() host.Object {
	return h.newObject()
}

func (h *Host) newObject() *Object {
	obj := &Object{ID: len(h.objects) + 1, Props: make(map[string]any), results: make(map[string]any)}
	h.objects = append(h.objects, obj)
	return obj
}

// FuncOf records a new invocable handle.
func (h *Host) FuncOf(fn func(args []host.Value) any) host.Func {
	f := &Func{fn: fn}
	h.funcs = append(h.funcs, f)
	return f
}

// Construct records the call and returns a new object standing for the
// widget the host would create.
func (h *Host) Construct(kind string, args ...any) (host.Object, error) {
	if err := h.ConstructErr; err != nil {
		h.ConstructErr = nil
		return nil, err
	}
	result := h.newObject()
	result.Kind = kind
	h.Constructions = append(h.Constructions, Construction{Kind: kind, Args: args, Result: result})
	return result, nil
}

// Query returns the object declared for selector with Define.
func (h *Host) Query(selector string) (host.Object, error) {
	obj, ok := h.selectors[selector]
	if !ok {
		return nil, &fuierrors.LookupError{Selector: selector, Diagnostic: "no element matches selector"}
	}
	return obj, nil
}

// Define declares an element that Query will find under selector.
func (h *Host) Define(selector string) *Object {
	obj := h.newObject()
	obj.Kind = "element"
	h.selectors[selector] = obj
	return obj
}

// Last returns the object produced by the most recent constructor call.
func (h *Host) Last() *Object {
	if len(h.Constructions) == 0 {
		return nil
	}
	return h.Constructions[len(h.Constructions)-1].Result
}

// LastConstruction returns the most recent constructor call.
func (h *Host) LastConstruction() Construction {
	if len(h.Constructions) == 0 {
		return Construction{}
	}
	return h.Constructions[len(h.Constructions)-1]
}

// LiveFuncs returns how many handles have not been released.
func (h *Host) LiveFuncs() int {
	n := 0
	for _, f := range h.funcs {
		if !f.released {
			n++
		}
	}
	return n
}

// Object is a recorded host object.
type Object struct {
	ID    int
	Kind  string
	Props map[string]any
	Calls []Call

	results map[string]any
}

// Set records a property assignment.
func (o *Object) Set(name string, value any) {
	o.Props[name] = value
}

// Call records the call and returns the value registered with SetResult
// for the method and its first string argument.
func (o *Object) Call(method string, args ...any) host.Value {
	o.Calls = append(o.Calls, Call{Method: method, Args: args})
	return o.results[resultKey(method, args)]
}

// SetResult registers the value Call returns for method(token).
func (o *Object) SetResult(method, token string, value any) {
	o.results[resultKey(method, []any{token})] = value
}

// Tokens returns the first argument of every call to method, in order.
func (o *Object) Tokens(method string) []string {
	var out []string
	for _, c := range o.Calls {
		if c.Method != method {
			continue
		}
		if len(c.Args) > 0 {
			out = append(out, fmt.Sprint(c.Args[0]))
		} else {
			out = append(out, "")
		}
	}
	return out
}

// Func returns the handle stored under name, or nil.
func (o *Object) Func(name string) *Func {
	f, _ := o.Props[name].(*Func)
	return f
}

// Array returns the array stored under name as recorded objects.
func (o *Object) Array(name string) []*Object {
	items, _ := o.Props[name].([]any)
	out := make([]*Object, 0, len(items))
	for _, item := range items {
		if obj, ok := item.(*Object); ok {
			out = append(out, obj)
		}
	}
	return out
}

func resultKey(method string, args []any) string {
	if len(args) > 0 {
		if token, ok := args[0].(string); ok {
			return method + "\x00" + token
		}
	}
	return method
}

// ErrReleased is returned by Invoke on a released handle, mirroring the
// browser's refusal to call a released js.Func.
var ErrReleased = errors.New("hosttest: call to released function")

// Func is a recorded callback handle.
type Func struct {
	fn       func(args []host.Value) any
	released bool

	// Invocations counts successful invocations.
	Invocations int
}

// Invoke calls the handle the way the host would.
func (f *Func) Invoke(args ...host.Value) (any, error) {
	if f.released {
		return nil, ErrReleased
	}
	f.Invocations++
	return f.fn(args), nil
}

// Release marks the handle released.
func (f *Func) Release() {
	f.released = true
}

// Released reports whether Release has been called.
func (f *Func) Released() bool {
	return f.released
}
