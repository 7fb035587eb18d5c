package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/fomantic/pkg/host/hosttest"
	"github.com/go-drift/fomantic/pkg/table"
	"github.com/go-drift/fomantic/pkg/toast"
)

// runCLI runs the CLI in dir with the given scenario and returns stdout.
func runCLI(t *testing.T, scenario string, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scenario), 0o644))

	var buf bytes.Buffer
	stdout = &buf
	t.Cleanup(func() {
		stdout = os.Stdout
		projectDir = "."
	})
	err := run(append(append([]string{"--dir", dir}, args...), "-f", path))
	return buf.String(), err
}

func TestModalScenario(t *testing.T) {
	out, err := runCLI(t, `
modal:
  title: Delete project
  approve: false
  actions:
    - text: Cancel
      class: deny
    - text: Delete
      class: red
      result: true
steps:
  - show
  - approve
  - is active
  - click: 1
  - is active
`, "modal")
	require.NoError(t, err)

	assert.Contains(t, out, "modal#1 construct")
	assert.Contains(t, out, "modal#1 click action 1")
	assert.Contains(t, out, "modal#1 destroy")
	assert.Contains(t, out, "results:\n  is active: true\n  is active: false\n")

	fired := out[strings.Index(out, "fired:"):strings.Index(out, "results:")]
	assert.Equal(t, "fired:\n  onShow\n  onVisible\n  onApprove\n  action 1 click\n  onHide\n  onHidden\n", fired)
}

func TestModalTemplates(t *testing.T) {
	tests := []struct {
		name     string
		scenario string
		fired    string
	}{
		{
			name:     "confirm deny",
			scenario: "modal:\n  template: confirm\n  title: Leave?\nsteps:\n  - deny\n",
			fired:    "handler false",
		},
		{
			name:     "prompt",
			scenario: "modal:\n  template: prompt\nsteps:\n  - input: Ada\n  - approve\n",
			fired:    `handler "Ada"`,
		},
		{
			name:     "alert",
			scenario: "modal:\n  template: alert\nsteps:\n  - click: 0\n",
			fired:    "handler",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, tt.scenario, "modal")
			require.NoError(t, err)
			assert.Contains(t, out, "fired:\n  "+tt.fired+"\n")
		})
	}
}

func TestModalScenarioErrors(t *testing.T) {
	_, err := runCLI(t, "modal:\n  template: wizard\n", "modal")
	assert.ErrorContains(t, err, "unknown modal template")

	_, err = runCLI(t, "steps:\n  - approve\n", "modal")
	assert.ErrorContains(t, err, `step "approve"`)

	_, err = runCLI(t, "steps:\n  - dance\n", "modal")
	assert.ErrorContains(t, err, "unknown modal step")

	_, err = runCLI(t, "steps: [\n", "modal")
	assert.Error(t, err)
}

func TestToastScenario(t *testing.T) {
	out, err := runCLI(t, `
toast:
  title: Done
  message: Saved
  variant: success
  displayTime: "0"
  progress:
    position: top
steps:
  - expire
  - pause
  - continue
  - click
`, "toast")
	require.NoError(t, err)

	assert.Contains(t, out, "toast#1 kept until clicked")
	assert.Contains(t, out, "fired:\n  onShow\n  onVisible\n  onClick\n  onHidden\n  onRemove\n")
}

func TestToastUsesConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fomantic.yaml"),
		[]byte("toast:\n  position: top left\n  displayTime: 3s\n"), 0o644))
	projectDir = dir
	t.Cleanup(func() { projectDir = "." })

	resolved, err := resolveConfig()
	require.NoError(t, err)

	h := hosttest.Setup(t.Cleanup)
	var sc toastScenario
	sc.Toast.Message = "hi"
	cfg, err := buildToast(&session{}, &sc, resolved.ToastPosition, resolved.DisplayTime)
	require.NoError(t, err)
	tst, err := toast.New(cfg)
	require.NoError(t, err)
	defer tst.Dispose()

	props := h.LastConstruction().Bag().Props
	assert.Equal(t, "top left", props["position"])
	assert.Equal(t, "3000", props["displayTime"])

	sc.Toast.Position = "bottom left"
	sc.Toast.Variant = "shiny"
	_, err = buildToast(&session{}, &sc, resolved.ToastPosition, resolved.DisplayTime)
	assert.ErrorContains(t, err, "unknown toast variant")
}

func TestTableCommand(t *testing.T) {
	out, err := runCLI(t, `
id: products
columns:
  - heading: Name
    field: name
  - heading: Price
    field: price
    sort: float
rows:
  - {name: Tea, price: 3.5}
  - {name: Coffee, price: 4.25}
next:
  - {name: Coffee, price: 4.25}
  - {name: Tea, price: 3.5}
  - {name: Cocoa, price: 5}
`, "table")
	require.NoError(t, err)

	assert.Contains(t, out, `<script src="/js/tablesort-custom-sort.js" defer=""></script>`)
	assert.Contains(t, out, `<table id="products" class="ui sortable basic table">`)
	assert.Contains(t, out, `<th>Name</th><th class="float">Price</th>`)
	assert.Contains(t, out, "<td>Coffee</td><td>4.25</td>")

	cocoa := table.KeyOf(map[string]any{"name": "Cocoa", "price": 5})
	assert.Contains(t, out, "patch:\n")
	assert.Contains(t, out, "  + "+cocoa.String()+" at 2\n")
	assert.Equal(t, 1, strings.Count(out, "  ~ "))
}

func TestTableCommandBadSort(t *testing.T) {
	_, err := runCLI(t, "columns:\n  - heading: A\n    sort: natural\n", "table")
	assert.ErrorContains(t, err, "unknown sorting algorithm")
}

func TestVersionAndHelp(t *testing.T) {
	out, err := runCLI(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "fomantic CLI version "+Version)
	assert.Contains(t, out, "Fomantic UI host: latest")

	var buf bytes.Buffer
	stdout = &buf
	defer func() { stdout = os.Stdout }()
	require.NoError(t, run([]string{"--help"}))
	for _, name := range []string{"modal", "toast", "table", "version"} {
		assert.Contains(t, buf.String(), "  "+name)
	}

	assert.Error(t, run([]string{"frobnicate"}))
	assert.ErrorContains(t, run([]string{"modal"}), "scenario file is required")
}
