// Package modal binds the host's modal dialog module.
//
// A modal is built from a Config, from declarative Settings, looked up by
// selector, or created by one of the alert/confirm/prompt templates:
//
//	m, err := modal.New(modal.NewConfig().
//	    WithTitle("Delete project").
//	    WithContent("This cannot be undone.").
//	    WithActions(
//	        action.New().WithText("Cancel").WithClass("deny"),
//	        action.New().WithText("Delete").WithClass("red approve"),
//	    ).
//	    OnApprove(func(host.Value) bool { deleteProject(); return true }))
//	if err != nil {
//	    return err
//	}
//	defer m.Dispose()
//	m.Show()
//
// The Modal owns every callback it was configured with. Keep it until the
// modal is no longer needed, then call Dispose.
package modal

import (
	"github.com/go-drift/fomantic/pkg/host"
)

// Command tokens understood by the host's modal behavior.
const (
	CmdShow       = "show"
	CmdHide       = "hide"
	CmdToggle     = "toggle"
	CmdRefresh    = "refresh"
	CmdShowDimmer = "show dimmer"
	CmdHideDimmer = "hide dimmer"
	CmdHideOthers = "hide others"
	CmdHideAll    = "hide all"
	CmdCacheSizes = "cache sizes"
	CmdSetActive  = "set active"
	CmdDestroy    = "destroy"

	QueryCanFit   = "can fit"
	QueryIsActive = "is active"
)

const behavior = "modal"

// Modal is a live modal dialog.
type Modal struct {
	w *host.Widget
}

// New creates the modal described by cfg. cfg is consumed; passing it to
// New again fails with host.ErrFinalized.
func New(cfg *Config) (*Modal, error) {
	w, err := cfg.cfg.Build("modal", behavior)
	if err != nil {
		return nil, err
	}
	return &Modal{w: w}, nil
}

// QueryFromSelector wraps the modal element matching selector. It fails
// with an error wrapping *errors.LookupError when nothing matches.
func QueryFromSelector(selector string) (*Modal, error) {
	w, err := host.Lookup(nil, "modal", behavior, selector)
	if err != nil {
		return nil, err
	}
	return &Modal{w: w}, nil
}

// NewAlert shows a one-button alert. handler runs when it is acknowledged.
func NewAlert(title, content string, handler func()) (*Modal, error) {
	if handler == nil {
		handler = func() {}
	}
	return template("alert", host.VoidSlot(nil, handler), title, content)
}

// NewConfirm asks a yes/no question. handler receives true on approve and
// false on deny.
func NewConfirm(title, content string, handler func(approved bool)) (*Modal, error) {
	if handler == nil {
		handler = func(bool) {}
	}
	return template("confirm", host.ValueSlot(nil, func(v host.Value) {
		approved, _ := v.(bool)
		handler(approved)
	}), title, content)
}

// NewPrompt asks for a line of text. handler receives the text, or nil
// when the prompt was cancelled.
func NewPrompt(title, content string, handler func(text *string)) (*Modal, error) {
	if handler == nil {
		handler = func(*string) {}
	}
	return template("prompt", host.TextSlot(nil, handler), title, content)
}

func template(name string, slot *host.Slot, title, content string) (*Modal, error) {
	w, err := host.Template(nil, behavior, name, slot, title, content)
	if err != nil {
		return nil, err
	}
	return &Modal{w: w}, nil
}

// Show shows the modal.
func (m *Modal) Show() { m.w.Command(CmdShow) }

// Hide hides the modal.
func (m *Modal) Hide() { m.w.Command(CmdHide) }

// Toggle toggles the modal.
func (m *Modal) Toggle() { m.w.Command(CmdToggle) }

// Refresh refreshes the centering of the modal on the page.
func (m *Modal) Refresh() { m.w.Command(CmdRefresh) }

// ShowDimmer shows the associated page dimmer.
func (m *Modal) ShowDimmer() { m.w.Command(CmdShowDimmer) }

// HideDimmer hides the associated page dimmer.
func (m *Modal) HideDimmer() { m.w.Command(CmdHideDimmer) }

// HideOthers hides all other modals in the same dimmer.
func (m *Modal) HideOthers() { m.w.Command(CmdHideOthers) }

// HideAll hides all visible modals in the same dimmer.
func (m *Modal) HideAll() { m.w.Command(CmdHideAll) }

// CacheSizes caches the current modal size.
func (m *Modal) CacheSizes() { m.w.Command(CmdCacheSizes) }

// SetActive marks the modal active.
func (m *Modal) SetActive() { m.w.Command(CmdSetActive) }

// Destroy removes the modal's events and DOM state on the host. Do not
// send further commands afterwards. Callbacks stay alive until Dispose.
func (m *Modal) Destroy() { m.w.Destroy() }

// CanFit reports whether the modal fits on the page.
func (m *Modal) CanFit() bool { return m.w.Query(QueryCanFit) }

// IsActive reports whether the modal is active.
func (m *Modal) IsActive() bool { return m.w.Query(QueryIsActive) }

// Dispose destroys the modal if needed and releases its callbacks.
func (m *Modal) Dispose() { m.w.Dispose() }

// Callbacks returns the number of callbacks the modal owns.
func (m *Modal) Callbacks() int { return m.w.Callbacks() }

// ActionCallbacks returns the number of per-action click callbacks the
// modal owns.
func (m *Modal) ActionCallbacks() int { return len(m.w.Slots().Actions()) }
