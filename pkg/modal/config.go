package modal

import (
	"time"

	"github.com/go-drift/fomantic/pkg/action"
	"github.com/go-drift/fomantic/pkg/host"
)

// DimmerSettings configures the page dimmer shown behind the modal.
type DimmerSettings struct {
	// Opacity of the dimmer, 0 to 1. Zero leaves the host default.
	Opacity float64
	// Variation is a dimmer variation class such as "inverted".
	Variation string
	// Closable lets a click on the dimmer close the modal.
	Closable bool
}

// Config accumulates the settings of a modal. Each method writes one
// setting into the host property bag; handler methods also take ownership
// of the callback and ignore a nil function. Pass the finished Config to New.
type Config struct {
	cfg *host.Config
}

// NewConfig returns an empty modal configuration bound to the current host.
func NewConfig() *Config {
	return &Config{cfg: host.NewConfig("modal", nil)}
}

// WithTitle sets the title of the modal.
func (c *Config) WithTitle(title string) *Config {
	c.cfg.Set("title", title)
	return c
}

// WithContent sets the content of the modal.
func (c *Config) WithContent(content string) *Config {
	c.cfg.Set("content", content)
	return c
}

// WithClass adds a class to the modal element.
func (c *Config) WithClass(class string) *Config {
	c.cfg.Set("class", class)
	return c
}

// WithCloseIcon sets whether a close icon is shown.
func (c *Config) WithCloseIcon(show bool) *Config {
	c.cfg.Set("closeIcon", show)
	return c
}

// Closable sets whether the modal closes on a dimmer click or Escape.
func (c *Config) Closable(closable bool) *Config {
	c.cfg.Set("closable", closable)
	return c
}

// Blurring sets whether the page behind the dimmer is blurred.
func (c *Config) Blurring(blurring bool) *Config {
	c.cfg.Set("blurring", blurring)
	return c
}

// Inverted sets whether the dimmer is inverted.
func (c *Config) Inverted(inverted bool) *Config {
	c.cfg.Set("inverted", inverted)
	return c
}

// Centered sets whether the modal is vertically centered.
func (c *Config) Centered(centered bool) *Config {
	c.cfg.Set("centered", centered)
	return c
}

// AllowMultiple sets whether other modals may stay open.
func (c *Config) AllowMultiple(allow bool) *Config {
	c.cfg.Set("allowMultiple", allow)
	return c
}

// Transition sets the show/hide transition name, e.g. "fade up".
func (c *Config) Transition(name string) *Config {
	c.cfg.Set("transition", name)
	return c
}

// Duration sets the transition duration.
func (c *Config) Duration(d time.Duration) *Config {
	c.cfg.Set("duration", d.Milliseconds())
	return c
}

// WithDimmerSettings sets the dimmer settings object.
func (c *Config) WithDimmerSettings(s DimmerSettings) *Config {
	dimmer := c.cfg.Host().NewObject()
	if s.Opacity > 0 {
		dimmer.Set("opacity", s.Opacity)
	}
	if s.Variation != "" {
		dimmer.Set("variation", s.Variation)
	}
	dimmer.Set("closable", s.Closable)
	c.cfg.Set("dimmerSettings", dimmer)
	return c
}

// WithActions appends actions to the modal's action bar. The modal takes
// over each action's click handler.
func (c *Config) WithActions(actions ...*action.Action) *Config {
	action.Attach(c.cfg, actions...)
	return c
}

// OnShow sets the handler called when the modal starts to show.
func (c *Config) OnShow(fn func()) *Config {
	if fn == nil {
		return c
	}
	c.cfg.SetHandler("onShow", host.VoidSlot(c.cfg.Host(), fn))
	return c
}

// OnVisible sets the handler called when the modal has finished showing.
func (c *Config) OnVisible(fn func()) *Config {
	if fn == nil {
		return c
	}
	c.cfg.SetHandler("onVisible", host.VoidSlot(c.cfg.Host(), fn))
	return c
}

// OnHide sets the handler called before the modal hides. It receives the
// host element; returning false keeps the modal open.
func (c *Config) OnHide(fn func(element host.Value) bool) *Config {
	if fn == nil {
		return c
	}
	c.cfg.SetHandler("onHide", host.ValueBoolSlot(c.cfg.Host(), fn))
	return c
}

// OnHidden sets the handler called when the modal has finished hiding.
func (c *Config) OnHidden(fn func()) *Config {
	if fn == nil {
		return c
	}
	c.cfg.SetHandler("onHidden", host.VoidSlot(c.cfg.Host(), fn))
	return c
}

// OnApprove sets the handler for positive actions. It receives the clicked
// element; returning false keeps the modal open.
func (c *Config) OnApprove(fn func(element host.Value) bool) *Config {
	if fn == nil {
		return c
	}
	c.cfg.SetHandler("onApprove", host.ValueBoolSlot(c.cfg.Host(), fn))
	return c
}

// OnDeny sets the handler for negative actions. It receives the clicked
// element; returning false keeps the modal open.
func (c *Config) OnDeny(fn func(element host.Value) bool) *Config {
	if fn == nil {
		return c
	}
	c.cfg.SetHandler("onDeny", host.ValueBoolSlot(c.cfg.Host(), fn))
	return c
}
