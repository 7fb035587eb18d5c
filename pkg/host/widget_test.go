package host_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/fomantic/pkg/errors"
	"github.com/go-drift/fomantic/pkg/host"
	"github.com/go-drift/fomantic/pkg/host/hosttest"
)

func TestBuildMovesSlotsToWidget(t *testing.T) {
	h := hosttest.New()

	cfg := host.NewConfig("modal", h)
	cfg.Set("title", "t")
	cfg.SetHandler("onShow", host.VoidSlot(h, func() {}))
	cfg.SetHandler("onShow", host.VoidSlot(h, func() {}))

	w, err := cfg.Build("modal", "modal")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if w.Callbacks() != 2 {
		t.Errorf("Callbacks() = %d, want 2", w.Callbacks())
	}
	w.Command("show")
	w.Dispose()
	w.Dispose()

	if diff := cmp.Diff([]string{"show", "destroy"}, h.Last().Tokens("modal")); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
	if h.LiveFuncs() != 0 {
		t.Errorf("live funcs = %d, want 0", h.LiveFuncs())
	}
	if w.Callbacks() != 0 {
		t.Errorf("Callbacks() after Dispose = %d, want 0", w.Callbacks())
	}
}

func TestDestroyThenDispose(t *testing.T) {
	h := hosttest.New()

	w, err := host.NewConfig("toast", h).Build("toast", "toast")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	w.Destroy()
	w.Dispose()
	if diff := cmp.Diff([]string{"destroy"}, h.Last().Tokens("toast")); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestTemplate(t *testing.T) {
	h := hosttest.New()

	fired := 0
	w, err := host.Template(h, "modal", "alert", host.VoidSlot(h, func() { fired++ }), "Title", "Body")
	if err != nil {
		t.Fatalf("Template: %v", err)
	}
	args := h.LastConstruction().Args
	if len(args) != 4 || args[0] != "alert" || args[1] != "Title" || args[2] != "Body" {
		t.Fatalf("args = %v", args)
	}
	if _, err := args[3].(*hosttest.Func).Invoke(); err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if fired != 1 || w.Slots().Role("handler") == nil {
		t.Errorf("fired = %d, handler slot = %v", fired, w.Slots().Role("handler"))
	}
}

func TestTemplateConstructorFailure(t *testing.T) {
	h := hosttest.New()
	h.ConstructErr = errors.New("boom")

	slot := host.VoidSlot(h, func() {})
	_, err := host.Template(h, "modal", "alert", slot, "t", "c")
	var fe *errors.Error
	if !errors.As(err, &fe) || fe.Kind != errors.KindHost || fe.Op != "modal.alert" {
		t.Fatalf("err = %v", err)
	}
	if !slot.Released() {
		t.Error("slot not released after constructor failure")
	}
}

func TestLookup(t *testing.T) {
	h := hosttest.New()
	el := h.Define(".ui.modal")

	w, err := host.Lookup(h, "modal", "modal", ".ui.modal")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	w.Command("show")
	if diff := cmp.Diff([]string{"show"}, el.Tokens("modal")); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}

	_, err = host.Lookup(h, "modal", "modal", "#nope")
	var fe *errors.Error
	if !errors.As(err, &fe) || fe.Kind != errors.KindLookup || fe.Selector != "#nope" {
		t.Fatalf("err = %v", err)
	}
}

func TestApply(t *testing.T) {
	h := hosttest.New()
	el := h.Define("#agree")

	checked := 0
	cfg := host.NewConfig("checkbox", h)
	cfg.SetHandler("onChecked", host.VoidSlot(h, func() { checked++ }))
	w, err := cfg.Apply("#agree", "checkbox")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(el.Calls) != 1 || el.Calls[0].Method != "checkbox" {
		t.Fatalf("calls = %+v", el.Calls)
	}
	bag := el.Calls[0].Args[0].(*hosttest.Object)
	if _, err := bag.Func("onChecked").Invoke(); err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if checked != 1 {
		t.Errorf("checked = %d, want 1", checked)
	}
	w.Dispose()
	if h.LiveFuncs() != 0 {
		t.Errorf("live funcs = %d, want 0", h.LiveFuncs())
	}
}

func TestApplyMissingElementReleasesSlots(t *testing.T) {
	h := hosttest.New()

	cfg := host.NewConfig("checkbox", h)
	cfg.SetHandler("onChecked", host.VoidSlot(h, func() {}))
	_, err := cfg.Apply("#missing", "checkbox")
	var le *errors.LookupError
	if !errors.As(err, &le) {
		t.Fatalf("err = %v, want LookupError", err)
	}
	if h.LiveFuncs() != 0 {
		t.Errorf("live funcs = %d, want 0", h.LiveFuncs())
	}
}
