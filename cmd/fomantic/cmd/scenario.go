package cmd

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/fomantic/pkg/action"
	"github.com/go-drift/fomantic/pkg/host"
	"github.com/go-drift/fomantic/pkg/host/gojahost"
)

// step is one scenario interaction: a bare name ("show") or a single-key
// mapping with an argument ("click: 1", "input: Ada").
type step struct {
	Name string
	Arg  string
}

func (s *step) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		s.Name = n.Value
		return nil
	case yaml.MappingNode:
		if len(n.Content) != 2 {
			return fmt.Errorf("line %d: a step has exactly one key", n.Line)
		}
		s.Name = n.Content[0].Value
		s.Arg = n.Content[1].Value
		return nil
	}
	return fmt.Errorf("line %d: invalid step", n.Line)
}

func (s step) String() string {
	if s.Arg == "" {
		return s.Name
	}
	return s.Name + " " + s.Arg
}

// actionSpec describes an action button. Result is what its click handler
// answers; without it the action uses the default click.
type actionSpec struct {
	Text   string `yaml:"text"`
	Class  string `yaml:"class"`
	Icon   string `yaml:"icon"`
	Result *bool  `yaml:"result"`
}

// recorder collects the handlers the host fired.
type recorder struct {
	fired []string
}

func (r *recorder) void(name string) func() {
	return func() { r.fired = append(r.fired, name) }
}

func (r *recorder) answer(name string, result *bool) func() bool {
	return func() bool {
		r.fired = append(r.fired, name)
		return result == nil || *result
	}
}

func (r *recorder) element(name string, result *bool) func(host.Value) bool {
	answer := r.answer(name, result)
	return func(host.Value) bool { return answer() }
}

func (r *recorder) actions(specs []actionSpec) []*action.Action {
	out := make([]*action.Action, len(specs))
	for i, s := range specs {
		a := action.New().WithText(s.Text)
		if s.Class != "" {
			a.WithClass(s.Class)
		}
		if s.Icon != "" {
			a.WithIcon(s.Icon)
		}
		if s.Result != nil {
			a.OnClick(r.answer(fmt.Sprintf("action %d click", i), s.Result))
		}
		out[i] = a
	}
	return out
}

// session is one scenario run on a fresh goja host.
type session struct {
	host *gojahost.Host
	rec  recorder
	out  []string
}

func newSession() (*session, error) {
	h, err := gojahost.New()
	if err != nil {
		return nil, err
	}
	host.SetHost(h)
	return &session{host: h}, nil
}

func (s *session) close() {
	host.ResetForTest()
}

func (s *session) note(format string, args ...any) {
	s.out = append(s.out, fmt.Sprintf(format, args...))
}

// simulate plays the host-side interactions shared by modal and toast
// scenarios. It reports false for steps it does not know.
func (s *session) simulate(st step) (bool, error) {
	switch st.Name {
	case "approve", "deny":
		return true, s.host.Simulate(st.Name)
	case "click":
		if st.Arg == "" {
			return true, s.host.Simulate("clickToast")
		}
		var i int
		if _, err := fmt.Sscan(st.Arg, &i); err != nil {
			return true, fmt.Errorf("click: action index %q: %w", st.Arg, err)
		}
		return true, s.host.Simulate("clickAction", i)
	case "input":
		return true, s.host.Simulate("input", st.Arg)
	case "expire":
		return true, s.host.Simulate("expire")
	}
	return false, nil
}

func (s *session) print() {
	fmt.Fprintln(stdout, "transcript:")
	for _, line := range s.host.Transcript() {
		fmt.Fprintf(stdout, "  %s\n", line)
	}
	fmt.Fprintln(stdout, "fired:")
	for _, name := range s.rec.fired {
		fmt.Fprintf(stdout, "  %s\n", name)
	}
	if len(s.out) > 0 {
		fmt.Fprintln(stdout, "results:")
		for _, line := range s.out {
			fmt.Fprintf(stdout, "  %s\n", line)
		}
	}
}

// scenarioFile extracts the -f argument.
func scenarioFile(args []string) (string, error) {
	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "-f" || args[i] == "--file":
			if i+1 < len(args) {
				return args[i+1], nil
			}
		case strings.HasPrefix(args[i], "--file="):
			return strings.TrimPrefix(args[i], "--file="), nil
		}
	}
	return "", fmt.Errorf("a scenario file is required (-f FILE)")
}

func loadScenario(args []string, v any) error {
	path, err := scenarioFile(args)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read scenario: %w", err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
