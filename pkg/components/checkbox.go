package components

import (
	"golang.org/x/net/html"

	"github.com/go-drift/fomantic/pkg/host"
	"github.com/go-drift/fomantic/pkg/models"
)

// Checkbox is a checkbox reflecting the selection state of Data.
type Checkbox[D models.Selectable] struct {
	Data D
	// Wrapper returns the element the input is placed in. Nil means <div>.
	Wrapper func() *html.Node
}

// Render returns the wrapper, with class "ui checkbox" added, around an
// <input type="checkbox"> that is checked when Data is selected.
func (c *Checkbox[D]) Render() *html.Node {
	var wrapper *html.Node
	if c.Wrapper != nil {
		wrapper = c.Wrapper()
	}
	if wrapper == nil {
		wrapper = Element("div", nil)
	}
	addClass(wrapper, "ui checkbox")

	attrs := []html.Attribute{Attr("type", "checkbox")}
	if c.Data.IsSelected() {
		attrs = append(attrs, Attr("checked", ""))
	}
	wrapper.AppendChild(Element("input", attrs))
	return wrapper
}

// Bind initializes the host checkbox behavior on the element matching
// selector, so that checking and unchecking select and deselect Data.
func (c *Checkbox[D]) Bind(selector string) (*CheckboxBinding, error) {
	cfg := host.NewConfig("checkbox", nil)
	cfg.SetHandler("onChecked", host.VoidSlot(cfg.Host(), c.Data.Select))
	cfg.SetHandler("onUnchecked", host.VoidSlot(cfg.Host(), c.Data.Deselect))
	w, err := cfg.Apply(selector, "checkbox")
	if err != nil {
		return nil, err
	}
	return &CheckboxBinding{w: w}, nil
}

// CheckboxBinding is a live host checkbox. It owns the change callbacks
// until Dispose.
type CheckboxBinding struct {
	w *host.Widget
}

// Check checks the box, which also selects the data.
func (b *CheckboxBinding) Check() { b.w.Command("check") }

// Uncheck unchecks the box.
func (b *CheckboxBinding) Uncheck() { b.w.Command("uncheck") }

// Toggle toggles the box.
func (b *CheckboxBinding) Toggle() { b.w.Command("toggle") }

// IsChecked asks the host whether the box is checked.
func (b *CheckboxBinding) IsChecked() bool { return b.w.Query("is checked") }

// Dispose tears down the host behavior and releases the callbacks.
func (b *CheckboxBinding) Dispose() { b.w.Dispose() }
