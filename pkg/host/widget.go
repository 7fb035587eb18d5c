package host

import (
	"go.uber.org/zap"

	"github.com/go-drift/fomantic/pkg/errors"
	"github.com/go-drift/fomantic/pkg/log"
)

// Widget is a live host object driven through one behavior method, plus
// every callback slot the host may still invoke on it.
//
// Commands sent after Destroy are undefined at the host level; Widget does
// not reject them. Dispose destroys the host object if that has not been
// done and then releases the slots, so a handler can never outlive the
// widget that installed it.
type Widget struct {
	name      string
	handle    Handle
	slots     *Slots
	destroyed bool
	disposed  bool
}

// NewWidget takes ownership of slots for the lifetime of obj.
func NewWidget(name string, obj Object, method string, slots *Slots) *Widget {
	if slots == nil {
		slots = &Slots{}
	}
	return &Widget{name: name, handle: NewHandle(obj, method), slots: slots}
}

// Build finalizes c and calls the host constructor kind with the property
// bag. The resulting widget owns every slot c held. If the host
// constructor fails, the slots are released.
func (c *Config) Build(kind, method string) (*Widget, error) {
	op := c.name + ".New"
	bag, slots, err := c.Finalize()
	if err != nil {
		return nil, err
	}
	obj, err := c.host.Construct(kind, bag)
	if err != nil {
		slots.Release()
		return nil, hostError(op, err)
	}
	log.Named(c.name).Debug("widget constructed", zap.Int("callbacks", slots.Len()))
	return NewWidget(c.name, obj, method, slots), nil
}

// Apply finalizes c and initializes method on the element matching
// selector with the property bag, as in $(selector).checkbox(settings).
// The resulting widget owns every slot c held.
func (c *Config) Apply(selector, method string) (*Widget, error) {
	op := c.name + ".Bind"
	bag, slots, err := c.Finalize()
	if err != nil {
		return nil, err
	}
	obj, err := c.host.Query(selector)
	if err != nil {
		slots.Release()
		return nil, &errors.Error{Op: op, Kind: errors.KindLookup, Selector: selector, Err: err}
	}
	obj.Call(method, bag)
	log.Named(c.name).Debug("behavior applied", zap.String("selector", selector), zap.Int("callbacks", slots.Len()))
	return NewWidget(c.name, obj, method, slots), nil
}

// Template calls a host template constructor such as
// $.modal('alert', title, content, handler). The widget's single callback
// is slot, whose handle is passed after args. Commands go through the kind
// method.
func Template(h Host, kind, template string, slot *Slot, args ...any) (*Widget, error) {
	if h == nil {
		h = Current()
	}
	slot.name(kind + "." + template)
	callArgs := make([]any, 0, len(args)+2)
	callArgs = append(callArgs, template)
	callArgs = append(callArgs, args...)
	callArgs = append(callArgs, slot.Handle())
	obj, err := h.Construct(kind, callArgs...)
	if err != nil {
		slot.Release()
		return nil, hostError(kind+"."+template, err)
	}
	slots := &Slots{}
	slots.Set("handler", slot)
	log.Named(kind).Debug("template widget constructed", zap.String("template", template))
	return NewWidget(kind, obj, kind, slots), nil
}

// Lookup wraps an existing host object found by selector. The widget owns
// no callbacks.
func Lookup(h Host, name, method, selector string) (*Widget, error) {
	if h == nil {
		h = Current()
	}
	obj, err := h.Query(selector)
	if err != nil {
		return nil, &errors.Error{Op: name + ".QueryFromSelector", Kind: errors.KindLookup, Selector: selector, Err: err}
	}
	return NewWidget(name, obj, method, nil), nil
}

// Handle returns the widget's host handle.
func (w *Widget) Handle() Handle {
	return w.handle
}

// Command forwards a command token to the host.
func (w *Widget) Command(token string) {
	w.handle.Command(token)
}

// Query forwards a boolean query token to the host.
func (w *Widget) Query(token string) bool {
	return w.handle.Query(token)
}

// Destroy sends the host's "destroy" command, which tears down the DOM
// state and events of the widget. The slots stay alive until Dispose.
func (w *Widget) Destroy() {
	w.destroyed = true
	w.handle.Command("destroy")
}

// Dispose destroys the host object unless Destroy was already called and
// releases every owned slot. It is idempotent.
func (w *Widget) Dispose() {
	if w.disposed {
		return
	}
	w.disposed = true
	if !w.destroyed {
		w.Destroy()
	}
	n := w.slots.Release()
	log.Named(w.name).Debug("widget disposed", zap.Int("released", n))
}

// Callbacks returns the number of callback slots the widget owns.
func (w *Widget) Callbacks() int {
	return w.slots.Len()
}

// Slots exposes the owned slots, e.g. to inspect per-action callbacks.
func (w *Widget) Slots() *Slots {
	return w.slots
}

func hostError(op string, err error) error {
	var fe *errors.Error
	if errors.As(err, &fe) {
		return err
	}
	return &errors.Error{Op: op, Kind: errors.KindHost, Err: err}
}
