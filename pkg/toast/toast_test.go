package toast_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/fomantic/pkg/action"
	"github.com/go-drift/fomantic/pkg/errors"
	"github.com/go-drift/fomantic/pkg/host"
	"github.com/go-drift/fomantic/pkg/host/hosttest"
	"github.com/go-drift/fomantic/pkg/toast"
)

func TestSavedScenario(t *testing.T) {
	h := hosttest.Setup(t.Cleanup)

	tst, err := toast.New(toast.NewConfig().
		WithMessage("Saved").
		WithTitle("Done").
		Position(toast.BottomRight))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer tst.Dispose()

	if len(h.Constructions) != 1 {
		t.Fatalf("constructions = %d, want 1", len(h.Constructions))
	}
	c := h.LastConstruction()
	if c.Kind != "toast" {
		t.Errorf("kind = %q, want toast", c.Kind)
	}
	want := map[string]any{
		"message":  "Saved",
		"title":    "Done",
		"position": "bottom right",
	}
	if diff := cmp.Diff(want, c.Bag().Props); diff != "" {
		t.Errorf("props mismatch (-want +got):\n%s", diff)
	}
	if _, ok := c.Bag().Props["actions"]; ok {
		t.Error("actions written without WithActions")
	}
}

func TestConfigProperties(t *testing.T) {
	h := hosttest.Setup(t.Cleanup)

	tst, err := toast.New(toast.NewConfig().
		WithVariant(toast.Warning).
		WithProgressBar(toast.ProgressBar{Position: toast.Top, Class: "red", Increasing: true}).
		Position(toast.TopAttached).
		NewestOnTop(true).
		Horizontal(false).
		DisplayTime(toast.Time(5 * time.Second)).
		WithIcon("info").
		CloseIcon(true).
		Compact(false).
		ClassActions("basic left"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer tst.Dispose()

	want := map[string]any{
		"class":         "warning",
		"showProgress":  "top",
		"classProgress": "red",
		"progressUp":    true,
		"position":      "top attached",
		"newestOnTop":   true,
		"horizontal":    false,
		"displayTime":   "5000",
		"showIcon":      "info",
		"closeIcon":     true,
		"compact":       false,
		"classActions":  "basic left",
	}
	if diff := cmp.Diff(want, h.LastConstruction().Bag().Props); diff != "" {
		t.Errorf("props mismatch (-want +got):\n%s", diff)
	}
}

func TestProgressBarWithoutClass(t *testing.T) {
	h := hosttest.Setup(t.Cleanup)

	tst, err := toast.New(toast.NewConfig().WithProgressBar(toast.ProgressBar{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer tst.Dispose()

	want := map[string]any{"showProgress": "bottom", "progressUp": false}
	if diff := cmp.Diff(want, h.LastConstruction().Bag().Props); diff != "" {
		t.Errorf("props mismatch (-want +got):\n%s", diff)
	}
}

func TestDisplayTimeTokens(t *testing.T) {
	tests := []struct {
		name string
		in   toast.DisplayTime
		want string
	}{
		{"millis", toast.Time(1500 * time.Millisecond), "1500"},
		{"until clicked", toast.UntilClicked, "0"},
		{"zero duration", toast.Time(0), "0"},
		{"negative duration", toast.Time(-time.Second), "0"},
		{"sub-millisecond", toast.Time(500 * time.Microsecond), "1"},
		{"truncated", toast.Time(1999 * time.Microsecond), "1"},
		{"word amount", toast.BasedOnWordAmount, "auto"},
		{"zero value", toast.DisplayTime{}, "auto"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseDisplayTime(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "auto", want: "auto"},
		{in: "0", want: "0"},
		{in: "3000", want: "3000"},
		{in: "2s", want: "2000"},
		{in: "0.5ms", want: "1"},
		{in: "1ns", want: "1"},
		{in: "soon", wantErr: true},
	}
	for _, tt := range tests {
		got, err := toast.ParseDisplayTime(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDisplayTime(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got.String() != tt.want {
			t.Errorf("ParseDisplayTime(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPositionTokens(t *testing.T) {
	want := map[toast.Position]string{
		toast.BottomRight:    "bottom right",
		toast.BottomLeft:     "bottom left",
		toast.TopRight:       "top right",
		toast.TopLeft:        "top left",
		toast.TopAttached:    "top attached",
		toast.BottomAttached: "bottom attached",
	}
	for p, token := range want {
		if p.String() != token {
			t.Errorf("%d.String() = %q, want %q", int(p), p.String(), token)
		}
		parsed, err := toast.ParsePosition(token)
		if err != nil || parsed != p {
			t.Errorf("ParsePosition(%q) = %v, %v", token, parsed, err)
		}
	}
	if _, err := toast.ParsePosition("middle"); err == nil {
		t.Error("ParsePosition(middle) succeeded")
	}
	var zero toast.Position
	if zero != toast.BottomRight {
		t.Error("zero Position is not BottomRight")
	}
}

func TestCommands(t *testing.T) {
	h := hosttest.Setup(t.Cleanup)

	tst, err := toast.NewMinimal("Copied", nil)
	if err != nil {
		t.Fatalf("NewMinimal: %v", err)
	}
	tst.AnimatePause()
	tst.AnimateContinue()
	tst.Close()
	tst.Dispose()
	tst.Dispose()

	want := []string{"animate pause", "animate continue", "close", "destroy"}
	if diff := cmp.Diff(want, h.Last().Tokens("toast")); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestTemplates(t *testing.T) {
	pb := toast.ProgressBar{Position: toast.Top}
	tests := []struct {
		name  string
		make  func(handler func()) (*toast.Toast, error)
		props map[string]any
	}{
		{
			name:  "minimal",
			make:  func(fn func()) (*toast.Toast, error) { return toast.NewMinimal("m", fn) },
			props: map[string]any{"message": "m"},
		},
		{
			name:  "titled",
			make:  func(fn func()) (*toast.Toast, error) { return toast.NewTitled("t", "m", fn) },
			props: map[string]any{"title": "t", "message": "m"},
		},
		{
			name:  "progress",
			make:  func(fn func()) (*toast.Toast, error) { return toast.NewWithProgress("m", pb, fn) },
			props: map[string]any{"message": "m", "showProgress": "top", "progressUp": false},
		},
		{
			name: "titled progress",
			make: func(fn func()) (*toast.Toast, error) { return toast.NewTitledWithProgress("t", "m", pb, fn) },
			props: map[string]any{
				"title": "t", "message": "m", "showProgress": "top", "progressUp": false,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := hosttest.Setup(t.Cleanup)

			removed := 0
			tst, err := tt.make(func() { removed++ })
			if err != nil {
				t.Fatalf("create: %v", err)
			}
			bag := h.LastConstruction().Bag()
			onRemove := bag.Func("onRemove")
			if onRemove == nil {
				t.Fatal("onRemove not installed")
			}
			delete(bag.Props, "onRemove")
			if diff := cmp.Diff(tt.props, bag.Props); diff != "" {
				t.Errorf("props mismatch (-want +got):\n%s", diff)
			}
			if tst.Callbacks() != 1 {
				t.Errorf("Callbacks() = %d, want 1", tst.Callbacks())
			}

			if _, err := onRemove.Invoke(); err != nil {
				t.Fatalf("Invoke: %v", err)
			}
			if removed != 1 {
				t.Errorf("removed = %d, want 1", removed)
			}
			tst.Dispose()
			if !onRemove.Released() {
				t.Error("onRemove not released by Dispose")
			}
		})
	}
}

func TestTemplateWithoutHandler(t *testing.T) {
	h := hosttest.Setup(t.Cleanup)

	tst, err := toast.NewTitled("Done", "Saved", nil)
	if err != nil {
		t.Fatalf("NewTitled: %v", err)
	}
	defer tst.Dispose()
	if tst.Callbacks() != 0 {
		t.Errorf("Callbacks() = %d, want 0", tst.Callbacks())
	}
	if h.LiveFuncs() != 0 {
		t.Errorf("live funcs = %d, want 0", h.LiveFuncs())
	}
}

func TestNilHandlersInstallNothing(t *testing.T) {
	h := hosttest.Setup(t.Cleanup)

	tst, err := toast.New(toast.NewConfig().
		WithMessage("Saved").
		OnShow(nil).
		OnVisible(nil).
		OnClick(nil).
		OnRemove(nil).
		OnHidden(nil).
		OnApprove(nil).
		OnDeny(nil))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer tst.Dispose()

	if tst.Callbacks() != 0 {
		t.Errorf("Callbacks() = %d, want 0", tst.Callbacks())
	}
	if h.LiveFuncs() != 0 {
		t.Errorf("live funcs = %d, want 0", h.LiveFuncs())
	}
}

func TestHandlersAndActions(t *testing.T) {
	h := hosttest.Setup(t.Cleanup)

	var fired []string
	record := func(name string) func() { return func() { fired = append(fired, name) } }
	tst, err := toast.New(toast.NewConfig().
		WithMessage("Undo delete?").
		OnShow(record("show")).
		OnVisible(record("visible")).
		OnClick(record("click")).
		OnHidden(record("hidden")).
		OnRemove(record("remove")).
		OnApprove(func() bool { fired = append(fired, "approve"); return false }).
		OnDeny(func() bool { fired = append(fired, "deny"); return true }).
		WithActions(
			action.New().WithText("Undo").WithClass("positive").OnClick(func() bool { fired = append(fired, "undo"); return true }),
			action.New().WithText("Dismiss"),
		))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	bag := h.LastConstruction().Bag()
	for _, role := range []string{"onShow", "onVisible", "onClick", "onHidden", "onRemove"} {
		if _, err := bag.Func(role).Invoke(); err != nil {
			t.Fatalf("%s: %v", role, err)
		}
	}
	if res, _ := bag.Func("onApprove").Invoke(); res != false {
		t.Errorf("onApprove = %v, want false", res)
	}
	if res, _ := bag.Func("onDeny").Invoke(); res != true {
		t.Errorf("onDeny = %v, want true", res)
	}
	items := bag.Array("actions")
	if len(items) != 2 {
		t.Fatalf("actions = %d, want 2", len(items))
	}
	if res, _ := items[0].Func("click").Invoke(); res != true {
		t.Errorf("undo click = %v, want true", res)
	}
	if res, _ := items[1].Func("click").Invoke(); res != true {
		t.Errorf("default click = %v, want true", res)
	}

	want := []string{"show", "visible", "click", "hidden", "remove", "approve", "deny", "undo"}
	if diff := cmp.Diff(want, fired); diff != "" {
		t.Errorf("fired mismatch (-want +got):\n%s", diff)
	}
	if tst.Callbacks() != 9 || tst.ActionCallbacks() != 2 {
		t.Errorf("Callbacks() = %d, ActionCallbacks() = %d, want 9 and 2", tst.Callbacks(), tst.ActionCallbacks())
	}

	tst.Dispose()
	if h.LiveFuncs() != 0 {
		t.Errorf("live funcs = %d, want 0", h.LiveFuncs())
	}
}

func TestReuseAfterNew(t *testing.T) {
	hosttest.Setup(t.Cleanup)

	cfg := toast.NewConfig().WithMessage("once")
	tst, err := toast.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer tst.Dispose()

	cfg.WithTitle("late")
	if _, err := toast.New(cfg); !errors.Is(err, host.ErrFinalized) {
		t.Errorf("second New err = %v, want ErrFinalized", err)
	}
}
