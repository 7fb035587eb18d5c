package host

import "github.com/go-drift/fomantic/pkg/errors"

// Sentinel errors for host operations.
var (
	// ErrHostUnavailable is returned when no host has been installed.
	ErrHostUnavailable = errors.New("host: no widget host installed")

	// ErrFinalized is returned when a builder is finalized a second time.
	ErrFinalized = errors.New("host: builder already finalized")

	// ErrReleased is reported when the host invokes a released callback.
	ErrReleased = errors.New("host: callback invoked after release")
)
