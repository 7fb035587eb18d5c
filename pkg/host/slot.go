package host

import "github.com/go-drift/fomantic/pkg/errors"

// Slot is one owned, host-invocable callback. The slot's handle may be
// written into any number of property bags; the owner keeps the slot until
// the host object holding those bags is gone, then calls Release.
//
// Each constructor fixes the Go signature the host call is adapted to.
// A panic inside the wrapped function is recovered and reported; the host
// then receives the zero result, or true for veto-style callbacks so a
// crashing handler never blocks the host's default behavior.
type Slot struct {
	op       string
	fn       Func
	released bool
}

func newSlot(h Host, call func(s *Slot, args []Value) any) *Slot {
	if h == nil {
		h = Current()
	}
	s := &Slot{op: "callback"}
	s.fn = h.FuncOf(func(args []Value) any {
		if s.released {
			errors.Report(&errors.Error{Op: s.op, Kind: errors.KindHost, Err: ErrReleased})
			return nil
		}
		return call(s, args)
	})
	return s
}

// BoolSlot wraps a callback that takes no arguments and answers with a bool,
// such as an action click handler. Returning false vetoes the host action.
func BoolSlot(h Host, fn func() bool) *Slot {
	return newSlot(h, func(s *Slot, _ []Value) (result any) {
		defer errors.RecoverWithCallback(s.op, func(any) { result = true })
		return fn()
	})
}

// ValueBoolSlot wraps a callback that receives one opaque host value and
// answers with a bool, such as a modal approve handler.
func ValueBoolSlot(h Host, fn func(Value) bool) *Slot {
	return newSlot(h, func(s *Slot, args []Value) (result any) {
		defer errors.RecoverWithCallback(s.op, func(any) { result = true })
		return fn(arg(args, 0))
	})
}

// ValueSlot wraps a callback that receives one opaque host value.
func ValueSlot(h Host, fn func(Value)) *Slot {
	return newSlot(h, func(s *Slot, args []Value) any {
		defer errors.Recover(s.op)
		fn(arg(args, 0))
		return nil
	})
}

// TextSlot wraps a callback that receives optional text. A missing or
// non-string argument arrives as nil.
func TextSlot(h Host, fn func(text *string)) *Slot {
	return newSlot(h, func(s *Slot, args []Value) any {
		defer errors.Recover(s.op)
		if text, ok := arg(args, 0).(string); ok {
			fn(&text)
		} else {
			fn(nil)
		}
		return nil
	})
}

// VoidSlot wraps a callback with no arguments and no result.
func VoidSlot(h Host, fn func()) *Slot {
	return newSlot(h, func(s *Slot, _ []Value) any {
		defer errors.Recover(s.op)
		fn()
		return nil
	})
}

// Handle returns the host-invocable handle to write into property bags.
func (s *Slot) Handle() Func {
	return s.fn
}

// Released reports whether Release has been called.
func (s *Slot) Released() bool {
	return s.released
}

// Release frees the host handle. Later host invocations are reported and
// ignored. Release is idempotent.
func (s *Slot) Release() {
	if s.released {
		return
	}
	s.released = true
	s.fn.Release()
}

// name labels the slot for error reports, e.g. "modal.onApprove".
func (s *Slot) name(op string) {
	s.op = op
}

func arg(args []Value, i int) Value {
	if i < len(args) {
		return args[i]
	}
	return nil
}
