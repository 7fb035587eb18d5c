package cmd

import (
	"fmt"
	"time"

	"github.com/go-drift/fomantic/pkg/modal"
)

func init() {
	RegisterCommand(&Command{
		Name:  "modal",
		Short: "Play a modal scenario",
		Long: `Build a modal from a YAML scenario, play the listed steps and print
the host transcript and the handlers that fired.

Scenario keys:
  modal.template     alert, confirm or prompt (omit for a configured modal)
  modal.title, modal.content, modal.class, modal.transition, modal.duration
  modal.closable, modal.blurring, modal.centered
  modal.approve, modal.deny   what onApprove/onDeny answer (default true)
  modal.actions      list of {text, class, icon, result}
  steps              show, hide, toggle, refresh, "show dimmer", "hide dimmer",
                     approve, deny, click: N, input: TEXT, "is active",
                     "can fit", destroy`,
		Usage: "fomantic modal -f scenario.yaml",
		Run:   runModal,
	})
}

type modalScenario struct {
	Modal struct {
		Template   string        `yaml:"template"`
		Title      string        `yaml:"title"`
		Content    string        `yaml:"content"`
		Class      string        `yaml:"class"`
		Transition string        `yaml:"transition"`
		Duration   time.Duration `yaml:"duration"`
		Closable   *bool         `yaml:"closable"`
		Blurring   bool          `yaml:"blurring"`
		Centered   bool          `yaml:"centered"`
		Approve    *bool         `yaml:"approve"`
		Deny       *bool         `yaml:"deny"`
		Actions    []actionSpec  `yaml:"actions"`
	} `yaml:"modal"`
	Steps []step `yaml:"steps"`
}

func runModal(args []string) error {
	var sc modalScenario
	if err := loadScenario(args, &sc); err != nil {
		return err
	}

	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.close()

	m, err := buildModal(s, &sc)
	if err != nil {
		return err
	}
	defer m.Dispose()

	for _, st := range sc.Steps {
		if err := modalStep(s, m, st); err != nil {
			return fmt.Errorf("step %q: %w", st, err)
		}
	}
	m.Dispose()
	s.print()
	return nil
}

func buildModal(s *session, sc *modalScenario) (*modal.Modal, error) {
	spec := sc.Modal
	r := &s.rec
	switch spec.Template {
	case "alert":
		return modal.NewAlert(spec.Title, spec.Content, r.void("handler"))
	case "confirm":
		return modal.NewConfirm(spec.Title, spec.Content, func(ok bool) {
			r.fired = append(r.fired, fmt.Sprintf("handler %t", ok))
		})
	case "prompt":
		return modal.NewPrompt(spec.Title, spec.Content, func(text *string) {
			if text == nil {
				r.fired = append(r.fired, "handler cancelled")
				return
			}
			r.fired = append(r.fired, fmt.Sprintf("handler %q", *text))
		})
	case "":
	default:
		return nil, fmt.Errorf("unknown modal template %q", spec.Template)
	}

	cfg := modal.NewConfig().
		WithTitle(spec.Title).
		WithContent(spec.Content).
		OnShow(r.void("onShow")).
		OnVisible(r.void("onVisible")).
		OnHide(r.element("onHide", nil)).
		OnHidden(r.void("onHidden")).
		OnApprove(r.element("onApprove", spec.Approve)).
		OnDeny(r.element("onDeny", spec.Deny))
	if spec.Class != "" {
		cfg.WithClass(spec.Class)
	}
	if spec.Transition != "" {
		cfg.Transition(spec.Transition)
	}
	if spec.Duration > 0 {
		cfg.Duration(spec.Duration)
	}
	if spec.Closable != nil {
		cfg.Closable(*spec.Closable)
	}
	if spec.Blurring {
		cfg.Blurring(true)
	}
	if spec.Centered {
		cfg.Centered(true)
	}
	if len(spec.Actions) > 0 {
		cfg.WithActions(r.actions(spec.Actions)...)
	}
	return modal.New(cfg)
}

func modalStep(s *session, m *modal.Modal, st step) error {
	if ok, err := s.simulate(st); ok {
		return err
	}
	switch st.Name {
	case "show":
		m.Show()
	case "hide":
		m.Hide()
	case "toggle":
		m.Toggle()
	case "refresh":
		m.Refresh()
	case "show dimmer":
		m.ShowDimmer()
	case "hide dimmer":
		m.HideDimmer()
	case "hide all":
		m.HideAll()
	case "destroy":
		m.Destroy()
	case "is active":
		s.note("is active: %t", m.IsActive())
	case "can fit":
		s.note("can fit: %t", m.CanFit())
	default:
		return fmt.Errorf("unknown modal step")
	}
	return nil
}
