package host

import (
	"fmt"

	"github.com/go-drift/fomantic/pkg/errors"
)

// Config accumulates configuration for one host constructor call. It writes
// each property into a host-side property bag as soon as it is set, and owns
// every callback slot whose handle it wrote.
//
// Action, modal and toast builders wrap a Config. A Config is finalized
// exactly once; Finalize hands the bag and the slots to the caller.
type Config struct {
	name      string
	host      Host
	bag       Object
	slots     Slots
	actions   []any
	err       error
	finalized bool
}

// NewConfig returns an empty builder. name prefixes error operations
// ("modal", "toast"). A nil host means Current().
func NewConfig(name string, h Host) *Config {
	if h == nil {
		h = Current()
	}
	return &Config{name: name, host: h, bag: h.NewObject()}
}

// Host returns the host the bag belongs to.
func (c *Config) Host() Host {
	return c.host
}

// Set writes one property. Later writes to the same name win.
func (c *Config) Set(name string, value any) {
	if c.misused("Set") {
		return
	}
	c.bag.Set(name, value)
}

// SetHandler makes slot the callback for role and writes its handle into
// the bag under the same name. The replaced slot stays owned.
func (c *Config) SetHandler(role string, slot *Slot) {
	if c.misused("SetHandler") {
		slot.Release()
		return
	}
	slot.name(c.name + "." + role)
	c.slots.Set(role, slot)
	c.bag.Set(role, slot.Handle())
}

// AppendActions takes ownership of the per-action slots and rewrites the
// "actions" array with every action bag attached so far, in order.
func (c *Config) AppendActions(bags []Object, slots []*Slot) {
	if c.misused("AppendActions") {
		for _, s := range slots {
			s.Release()
		}
		return
	}
	for i, s := range slots {
		s.name(fmt.Sprintf("%s.actions[%d].click", c.name, len(c.slots.actions)+i))
	}
	c.slots.AppendActions(slots...)
	for _, b := range bags {
		c.actions = append(c.actions, b)
	}
	arr := make([]any, len(c.actions))
	copy(arr, c.actions)
	c.bag.Set("actions", arr)
}

// Adopt takes ownership of extra slots, such as the click handlers an
// action replaced before it was attached.
func (c *Config) Adopt(slots *Slots) {
	if c.misused("Adopt") {
		slots.Release()
		return
	}
	c.slots.Adopt(slots)
}

// Fail records a deferred error that Finalize will return. Only the first
// error is kept.
func (c *Config) Fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

// Finalize consumes the builder. It returns the property bag and moves
// ownership of every slot to the caller. A second call fails with
// ErrFinalized; a recorded Fail error releases the slots and is returned.
func (c *Config) Finalize() (Object, *Slots, error) {
	if c.finalized {
		return nil, nil, &errors.Error{Op: c.name + ".Finalize", Kind: errors.KindBuild, Err: ErrFinalized}
	}
	c.finalized = true
	if c.err != nil {
		c.slots.Release()
		return nil, nil, c.err
	}
	owned := &Slots{}
	owned.Adopt(&c.slots)
	return c.bag, owned, nil
}

// Finalized reports whether Finalize has been called.
func (c *Config) Finalized() bool {
	return c.finalized
}

func (c *Config) misused(op string) bool {
	if !c.finalized {
		return false
	}
	errors.Report(&errors.Error{Op: c.name + "." + op, Kind: errors.KindBuild, Err: ErrFinalized})
	return true
}
