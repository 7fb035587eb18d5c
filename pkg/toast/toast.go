// Package toast binds the host's toast notifications.
package toast

import "github.com/go-drift/fomantic/pkg/host"

// Command tokens understood by the host's toast behavior.
const (
	CmdClose           = "close"
	CmdDestroy         = "destroy"
	CmdAnimatePause    = "animate pause"
	CmdAnimateContinue = "animate continue"
)

const behavior = "toast"

// Toast is a live toast notification. It owns the callbacks it was
// configured with until Dispose.
type Toast struct {
	w *host.Widget
}

// New shows the toast described by cfg.
func New(cfg *Config) (*Toast, error) {
	w, err := cfg.cfg.Build("toast", behavior)
	if err != nil {
		return nil, err
	}
	return &Toast{w: w}, nil
}

// NewMinimal shows a toast with just a message. handler, if not nil, runs
// when the toast is removed.
func NewMinimal(message string, handler func()) (*Toast, error) {
	return New(NewConfig().WithMessage(message).OnRemove(handler))
}

// NewTitled shows a toast with a title and a message.
func NewTitled(title, message string, handler func()) (*Toast, error) {
	return New(NewConfig().WithTitle(title).WithMessage(message).OnRemove(handler))
}

// NewWithProgress shows a toast with a message and a progress bar.
func NewWithProgress(message string, pb ProgressBar, handler func()) (*Toast, error) {
	return New(NewConfig().WithMessage(message).WithProgressBar(pb).OnRemove(handler))
}

// NewTitledWithProgress shows a toast with a title, a message and a progress
// bar.
func NewTitledWithProgress(title, message string, pb ProgressBar, handler func()) (*Toast, error) {
	return New(NewConfig().WithTitle(title).WithMessage(message).WithProgressBar(pb).OnRemove(handler))
}

// Close closes the toast.
func (t *Toast) Close() { t.w.Command(CmdClose) }

// AnimatePause pauses the display-time countdown.
func (t *Toast) AnimatePause() { t.w.Command(CmdAnimatePause) }

// AnimateContinue resumes the display-time countdown.
func (t *Toast) AnimateContinue() { t.w.Command(CmdAnimateContinue) }

// Destroy removes the toast from the page. Callbacks stay alive until
// Dispose.
func (t *Toast) Destroy() { t.w.Destroy() }

// Dispose destroys the toast if needed and releases its callbacks.
func (t *Toast) Dispose() { t.w.Dispose() }

// Callbacks returns the number of callbacks the toast owns.
func (t *Toast) Callbacks() int { return t.w.Callbacks() }

// ActionCallbacks returns the number of per-action click callbacks.
func (t *Toast) ActionCallbacks() int { return len(t.w.Slots().Actions()) }
