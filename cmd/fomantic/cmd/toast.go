package cmd

import (
	"fmt"

	"github.com/go-drift/fomantic/pkg/toast"
)

func init() {
	RegisterCommand(&Command{
		Name:  "toast",
		Short: "Play a toast scenario",
		Long: `Show a toast from a YAML scenario, play the listed steps and print
the host transcript and the handlers that fired.

Scenario keys:
  toast.title, toast.message, toast.class, toast.icon
  toast.variant      success, warning, error or info
  toast.position     e.g. "top right" (default from fomantic.yaml)
  toast.displayTime  auto, 0, milliseconds or a duration such as 5s
  toast.progress     {position: top|bottom, class, increasing}
  toast.approve, toast.deny   what onApprove/onDeny answer (default true)
  toast.actions      list of {text, class, icon, result}
  steps              click, click: N, expire, approve, deny, close,
                     pause, continue, destroy`,
		Usage: "fomantic toast -f scenario.yaml",
		Run:   runToast,
	})
}

type progressSpec struct {
	Position   string `yaml:"position"`
	Class      string `yaml:"class"`
	Increasing bool   `yaml:"increasing"`
}

type toastScenario struct {
	Toast struct {
		Title       string        `yaml:"title"`
		Message     string        `yaml:"message"`
		Class       string        `yaml:"class"`
		Variant     string        `yaml:"variant"`
		Icon        string        `yaml:"icon"`
		Position    string        `yaml:"position"`
		DisplayTime string        `yaml:"displayTime"`
		Progress    *progressSpec `yaml:"progress"`
		Compact     bool          `yaml:"compact"`
		Approve     *bool         `yaml:"approve"`
		Deny        *bool         `yaml:"deny"`
		Actions     []actionSpec  `yaml:"actions"`
	} `yaml:"toast"`
	Steps []step `yaml:"steps"`
}

func runToast(args []string) error {
	var sc toastScenario
	if err := loadScenario(args, &sc); err != nil {
		return err
	}
	resolved, err := resolveConfig()
	if err != nil {
		return err
	}

	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.close()

	cfg, err := buildToast(s, &sc, resolved.ToastPosition, resolved.DisplayTime)
	if err != nil {
		return err
	}
	t, err := toast.New(cfg)
	if err != nil {
		return err
	}
	defer t.Dispose()

	for _, st := range sc.Steps {
		if err := toastStep(s, t, st); err != nil {
			return fmt.Errorf("step %q: %w", st, err)
		}
	}
	t.Dispose()
	s.print()
	return nil
}

// buildToast must run after the session installed its host, since a
// config binds to the current host when it is created.
func buildToast(s *session, sc *toastScenario, position toast.Position, displayTime toast.DisplayTime) (*toast.Config, error) {
	spec := sc.Toast
	var err error
	if spec.Position != "" {
		if position, err = toast.ParsePosition(spec.Position); err != nil {
			return nil, err
		}
	}
	if spec.DisplayTime != "" {
		if displayTime, err = toast.ParseDisplayTime(spec.DisplayTime); err != nil {
			return nil, err
		}
	}

	variant := toast.Variant(spec.Variant)
	switch variant {
	case "", toast.Success, toast.Warning, toast.Error, toast.Info:
	default:
		return nil, fmt.Errorf("unknown toast variant %q", spec.Variant)
	}
	var pb *toast.ProgressBar
	if p := spec.Progress; p != nil {
		pb = &toast.ProgressBar{Class: p.Class, Increasing: p.Increasing}
		switch p.Position {
		case "", "bottom":
		case "top":
			pb.Position = toast.Top
		default:
			return nil, fmt.Errorf("unknown progress bar position %q", p.Position)
		}
	}

	r := &s.rec
	cfg := toast.NewConfig().
		WithMessage(spec.Message).
		Position(position).
		DisplayTime(displayTime).
		OnShow(r.void("onShow")).
		OnVisible(r.void("onVisible")).
		OnClick(r.void("onClick")).
		OnHidden(r.void("onHidden")).
		OnRemove(r.void("onRemove")).
		OnApprove(r.answer("onApprove", spec.Approve)).
		OnDeny(r.answer("onDeny", spec.Deny))
	if spec.Title != "" {
		cfg.WithTitle(spec.Title)
	}
	switch {
	case variant != "":
		cfg.WithVariant(variant)
	case spec.Class != "":
		cfg.WithClass(spec.Class)
	}
	if spec.Icon != "" {
		cfg.WithIcon(spec.Icon)
	}
	if spec.Compact {
		cfg.Compact(true)
	}
	if pb != nil {
		cfg.WithProgressBar(*pb)
	}
	if len(spec.Actions) > 0 {
		cfg.WithActions(r.actions(spec.Actions)...)
	}
	return cfg, nil
}

func toastStep(s *session, t *toast.Toast, st step) error {
	if ok, err := s.simulate(st); ok {
		return err
	}
	switch st.Name {
	case "close":
		t.Close()
	case "pause":
		t.AnimatePause()
	case "continue":
		t.AnimateContinue()
	case "destroy":
		t.Destroy()
	default:
		return fmt.Errorf("unknown toast step")
	}
	return nil
}
