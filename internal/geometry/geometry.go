// Package geometry answers two questions about the live desktop: how big it
// is, and where a user-chosen window sits. Resolution queries go through the
// Provider capability, selected once at startup: an in-process query via the
// screenshot library when a display is reachable, otherwise an external
// xdpyinfo call whose text output is parsed. Window picking always shells out
// to xwininfo, which blocks until the user clicks a window.
package geometry

import "errors"

// ErrUnavailable is returned when the desktop resolution cannot be
// determined by the active provider.
var ErrUnavailable = errors.New("unable to determine desktop resolution")

// Resolution is a read-only snapshot of the full desktop size in pixels,
// queried fresh each run.
type Resolution struct {
	Width  int
	Height int
}

// Rect is an on-screen rectangle in pixels, origin at the desktop
// upper-left. X and Y may be negative only for window-pick edge cases
// (a window partially dragged off screen).
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Provider resolves the desktop resolution. Implementations are selected
// once by Detect; callers never branch per-call.
type Provider interface {
	DesktopResolution() (Resolution, error)
}

// WindowPicker prompts the user to choose a window and reports its position
// and size. ok is false when the pick tool is unavailable or its output is
// incomplete; that is not fatal at this layer.
type WindowPicker interface {
	PickWindow() (r Rect, ok bool)
}
