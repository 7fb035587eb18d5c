package toast

import (
	"fmt"
	"strconv"
	"time"
)

// DisplayTime is how long a toast stays visible.
type DisplayTime struct {
	token string
}

var (
	// UntilClicked keeps the toast until the user clicks it.
	UntilClicked = DisplayTime{token: "0"}
	// BasedOnWordAmount lets the host derive the time from the message length.
	BasedOnWordAmount = DisplayTime{token: "auto"}
)

// Time shows the toast for d, rounded down to whole milliseconds but never
// below one. A non-positive d behaves like UntilClicked.
func Time(d time.Duration) DisplayTime {
	if d <= 0 {
		return UntilClicked
	}
	ms := d.Milliseconds()
	if ms == 0 {
		ms = 1
	}
	return DisplayTime{token: strconv.FormatInt(ms, 10)}
}

// String returns the host's token: milliseconds, "0" or "auto".
func (d DisplayTime) String() string {
	if d.token == "" {
		return BasedOnWordAmount.token
	}
	return d.token
}

// ParseDisplayTime parses "auto", "0", a millisecond count or a Go
// duration such as "5s".
func ParseDisplayTime(s string) (DisplayTime, error) {
	switch s {
	case "auto":
		return BasedOnWordAmount, nil
	case "0", "until clicked":
		return UntilClicked, nil
	}
	if ms, err := strconv.ParseUint(s, 10, 32); err == nil {
		return Time(time.Duration(ms) * time.Millisecond), nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return DisplayTime{}, fmt.Errorf("toast: invalid display time %q", s)
	}
	return Time(d), nil
}

// ProgressBarPosition is where the progress bar is drawn.
type ProgressBarPosition int

const (
	// Bottom draws the bar along the bottom edge.
	Bottom ProgressBarPosition = iota
	// Top draws the bar along the top edge.
	Top
)

// String returns the host's token, "top" or "bottom".
func (p ProgressBarPosition) String() string {
	if p == Top {
		return "top"
	}
	return "bottom"
}

// ProgressBar configures the countdown bar of a toast.
type ProgressBar struct {
	// Position is the edge the bar is drawn at.
	Position ProgressBarPosition
	// Class is set on the progress bar element when not empty.
	Class string
	// Increasing fills the bar instead of draining it.
	Increasing bool
}

// Position is the viewport corner or edge a toast is shown at.
type Position int

const (
	// BottomRight is the host default.
	BottomRight Position = iota
	// BottomLeft stacks toasts in the lower left corner.
	BottomLeft
	// TopRight stacks toasts in the upper right corner.
	TopRight
	// TopLeft stacks toasts in the upper left corner.
	TopLeft
	// TopAttached spans the top edge of the viewport.
	TopAttached
	// BottomAttached spans the bottom edge of the viewport.
	BottomAttached
)

var positionTokens = [...]string{
	BottomRight:    "bottom right",
	BottomLeft:     "bottom left",
	TopRight:       "top right",
	TopLeft:        "top left",
	TopAttached:    "top attached",
	BottomAttached: "bottom attached",
}

// String returns the host's token, e.g. "bottom right". Unknown values
// map to BottomRight.
func (p Position) String() string {
	if p < 0 || int(p) >= len(positionTokens) {
		return positionTokens[BottomRight]
	}
	return positionTokens[p]
}

// ParsePosition returns the Position whose token is s.
func ParsePosition(s string) (Position, error) {
	for i, token := range positionTokens {
		if token == s {
			return Position(i), nil
		}
	}
	return BottomRight, fmt.Errorf("toast: unknown position %q", s)
}

// Variant is a color class for the whole toast.
type Variant string

// Predefined variants.
const (
	Success Variant = "success"
	Warning Variant = "warning"
	Error   Variant = "error"
	Info    Variant = "info"
)
