// Package host defines the boundary between typed Go configuration and the
// loosely typed, callback-driven widget host that lives in the page.
//
// A Host hands out property bags ([Object]), turns Go functions into
// host-invocable handles ([Func]) and runs the host's constructors and
// selector queries. Everything above this package (actions, modals, toasts,
// tables) talks to the host only through these interfaces, so the same
// bindings run against syscall/js in the browser, a goja runtime, or the
// recording host used in tests.
//
// Callback handles cross the boundary with a lifetime the host decides: the
// host may invoke a handle at any time after it has been written into a
// property bag. [Slot] and [Slots] make that lifetime explicit. A slot is
// released only by its owner, never by the garbage collector.
package host

import "sync"

// Value is a value received from the host: a Go primitive (string, bool,
// float64, nil) or an opaque [Object].
type Value = any

// Host is a live widget host.
type Host interface {
	// NewObject returns a fresh, empty property bag owned by the host.
	NewObject() Object

	// FuncOf wraps fn into a handle the host can invoke. Arguments arrive
	// exported to Go values where possible. The handle must be released by
	// its owner once the host can no longer call it.
	FuncOf(fn func(args []Value) any) Func

	// Construct calls the host constructor named kind (e.g. "modal" for
	// $.modal) with args and returns the object it produced.
	Construct(kind string, args ...any) (Object, error)

	// Query looks up an existing host object by DOM selector.
	// It returns a *errors.LookupError when nothing matches.
	Query(selector string) (Object, error)
}

// Object is a mutable object inside the host.
//
// Set and Call accept strings, bools, numbers, nil, Objects, Funcs, []any
// and map[string]any. Host-side exceptions raised by Call are reported
// through the errors package and yield a nil result.
type Object interface {
	// Set assigns a named property.
	Set(name string, value any)

	// Call invokes a named method on the object.
	Call(method string, args ...any) Value
}

// Func is a host-invocable handle to a Go function.
type Func interface {
	// Release frees the handle. The host must not invoke it afterwards.
	Release()
}

var (
	currentMu sync.RWMutex
	current   Host
)

// SetHost installs the process-wide host. Bindings created afterwards use it.
func SetHost(h Host) {
	currentMu.Lock()
	current = h
	currentMu.Unlock()
}

// Current returns the installed host. Without one it returns a detached
// host: property bags still work, but constructors and queries fail with
// ErrHostUnavailable.
func Current() Host {
	currentMu.RLock()
	h := current
	currentMu.RUnlock()
	if h == nil {
		return detachedHost{}
	}
	return h
}

// ResetForTest removes the installed host. This should only be called from tests.
func ResetForTest() {
	SetHost(nil)
}
