package toast

import (
	"github.com/go-drift/fomantic/pkg/action"
	"github.com/go-drift/fomantic/pkg/host"
)

// Config accumulates the settings of a toast. Pass the finished Config to
// New; it cannot be reused. Handler methods ignore a nil function.
type Config struct {
	cfg *host.Config
}

// NewConfig returns an empty toast configuration bound to the current host.
func NewConfig() *Config {
	return &Config{cfg: host.NewConfig("toast", nil)}
}

// WithMessage sets the message text.
func (c *Config) WithMessage(message string) *Config {
	c.cfg.Set("message", message)
	return c
}

// WithTitle sets the title shown above the message.
func (c *Config) WithTitle(title string) *Config {
	c.cfg.Set("title", title)
	return c
}

// WithClass sets the class of the toast element, e.g. "success".
func (c *Config) WithClass(class string) *Config {
	c.cfg.Set("class", class)
	return c
}

// WithVariant is WithClass for the predefined color variants.
func (c *Config) WithVariant(v Variant) *Config {
	return c.WithClass(string(v))
}

// WithProgressBar shows a countdown progress bar.
func (c *Config) WithProgressBar(pb ProgressBar) *Config {
	c.cfg.Set("showProgress", pb.Position.String())
	if pb.Class != "" {
		c.cfg.Set("classProgress", pb.Class)
	}
	c.cfg.Set("progressUp", pb.Increasing)
	return c
}

// Position sets where the toast appears.
func (c *Config) Position(p Position) *Config {
	c.cfg.Set("position", p.String())
	return c
}

// NewestOnTop stacks new toasts above older ones.
func (c *Config) NewestOnTop(onTop bool) *Config {
	c.cfg.Set("newestOnTop", onTop)
	return c
}

// Horizontal stacks toasts side by side.
func (c *Config) Horizontal(horizontal bool) *Config {
	c.cfg.Set("horizontal", horizontal)
	return c
}

// DisplayTime sets how long the toast stays visible.
func (c *Config) DisplayTime(d DisplayTime) *Config {
	c.cfg.Set("displayTime", d.String())
	return c
}

// WithIcon shows the named icon next to the message.
func (c *Config) WithIcon(icon string) *Config {
	c.cfg.Set("showIcon", icon)
	return c
}

// CloseIcon sets whether a close icon is shown.
func (c *Config) CloseIcon(show bool) *Config {
	c.cfg.Set("closeIcon", show)
	return c
}

// Compact sets whether the toast is only as wide as its content.
func (c *Config) Compact(compact bool) *Config {
	c.cfg.Set("compact", compact)
	return c
}

// ClassActions sets the class of the action bar, e.g. "basic left".
func (c *Config) ClassActions(class string) *Config {
	c.cfg.Set("classActions", class)
	return c
}

// WithActions appends actions to the toast. The toast takes over each
// action's click handler.
func (c *Config) WithActions(actions ...*action.Action) *Config {
	action.Attach(c.cfg, actions...)
	return c
}

// OnShow sets the handler called when the toast starts to show.
func (c *Config) OnShow(fn func()) *Config {
	return c.void("onShow", fn)
}

// OnVisible sets the handler called when the toast has finished showing.
func (c *Config) OnVisible(fn func()) *Config {
	return c.void("onVisible", fn)
}

// OnClick sets the handler fired when the toast body is clicked.
func (c *Config) OnClick(fn func()) *Config {
	return c.void("onClick", fn)
}

// OnRemove sets the handler fired once when the toast leaves the page.
func (c *Config) OnRemove(fn func()) *Config {
	return c.void("onRemove", fn)
}

// OnHidden sets the handler called when the toast has finished hiding.
func (c *Config) OnHidden(fn func()) *Config {
	return c.void("onHidden", fn)
}

// OnApprove sets the handler for positive actions. Returning false keeps
// the toast open.
func (c *Config) OnApprove(fn func() bool) *Config {
	if fn == nil {
		return c
	}
	c.cfg.SetHandler("onApprove", host.BoolSlot(c.cfg.Host(), fn))
	return c
}

// OnDeny sets the handler for negative actions. Returning false keeps the
// toast open.
func (c *Config) OnDeny(fn func() bool) *Config {
	if fn == nil {
		return c
	}
	c.cfg.SetHandler("onDeny", host.BoolSlot(c.cfg.Host(), fn))
	return c
}

func (c *Config) void(role string, fn func()) *Config {
	if fn == nil {
		return c
	}
	c.cfg.SetHandler(role, host.VoidSlot(c.cfg.Host(), fn))
	return c
}
