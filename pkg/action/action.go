// Package action builds the buttons shown in modal and toast action bars.
package action

import "github.com/go-drift/fomantic/pkg/host"

// Action is a button definition for a modal or toast. It owns its click
// callback until a modal or toast builder takes it over with Detach.
type Action struct {
	cfg      *host.Config
	hasClick bool
}

// New returns an empty action. Without OnClick, clicking the action answers
// true, which lets the host close the widget.
func New() *Action {
	return &Action{cfg: host.NewConfig("action", nil)}
}

// WithText sets the text shown on the action.
func (a *Action) WithText(text string) *Action {
	a.cfg.Set("text", text)
	return a
}

// WithClass sets the CSS class of the action element.
func (a *Action) WithClass(class string) *Action {
	a.cfg.Set("class", class)
	return a
}

// WithIcon sets the icon of the action.
func (a *Action) WithIcon(icon string) *Action {
	a.cfg.Set("icon", icon)
	return a
}

// OnClick sets the handler fired when the action is clicked. Returning
// false keeps the widget open. A nil fn is ignored.
func (a *Action) OnClick(fn func() bool) *Action {
	if fn == nil {
		return a
	}
	a.cfg.SetHandler("click", host.BoolSlot(a.cfg.Host(), fn))
	a.hasClick = true
	return a
}

// Detach consumes the action. It returns the property bag, the current
// click slot, and the click slots it replaced, which the caller must keep
// alive as long as the click slot. A second call fails with
// host.ErrFinalized.
func (a *Action) Detach() (host.Object, *host.Slot, *host.Slots, error) {
	if !a.hasClick && !a.cfg.Finalized() {
		a.OnClick(func() bool { return true })
	}
	bag, slots, err := a.cfg.Finalize()
	if err != nil {
		return nil, nil, nil, err
	}
	click := slots.Take("click")
	return bag, click, slots, nil
}

// Attach detaches each action and moves it into cfg: the bags are appended
// to cfg's "actions" array and the click slots to its per-action slots.
// An action that was already detached makes cfg fail at finalization.
func Attach(cfg *host.Config, actions ...*Action) {
	bags := make([]host.Object, 0, len(actions))
	clicks := make([]*host.Slot, 0, len(actions))
	for _, a := range actions {
		bag, click, replaced, err := a.Detach()
		if err != nil {
			cfg.Fail(err)
			continue
		}
		bags = append(bags, bag)
		clicks = append(clicks, click)
		cfg.Adopt(replaced)
	}
	cfg.AppendActions(bags, clicks)
}
