// Package region merges explicit position/size options, crop margins, and
// codec alignment constraints into the final validated capture rectangle.
package region

import (
	"errors"

	"github.com/techtonik/recordscreen/internal/geometry"
)

// Sentinel errors for region resolution.
var (
	// ErrOffScreen means the resolved rectangle extends past the right or
	// bottom desktop edge.
	ErrOffScreen = errors.New("specified capture area is off screen")
	// ErrWindowPickFailed means the interactive window pick was cancelled
	// or unsupported on this system.
	ErrWindowPickFailed = errors.New("window selection failed")
)

// Request carries the user's capture-area intent. Position and size are
// optional; when absent the capture starts at the desktop origin and spans
// the full desktop.
type Request struct {
	// PickWindow selects interactive window-pick mode; position and size
	// are then taken from the clicked window and HavePosition/HaveSize
	// are ignored.
	PickWindow bool

	HavePosition bool
	X, Y         int

	HaveSize      bool
	Width, Height int

	CropTop    int
	CropBottom int
	CropLeft   int
	CropRight  int
}

// Resolve computes the capture rectangle for req on a desktop of size
// desktop, honoring the video codec's alignment divisor. picker is consulted
// only in window-pick mode and may be nil otherwise.
//
// Crops shrink each edge independently and a crop that drives the width or
// height negative is deliberately not rejected here; like the legacy
// implementation, only the right/bottom desktop bound is validated and the
// capture tool reports degenerate sizes itself.
func Resolve(req Request, desktop geometry.Resolution, alignment int, picker geometry.WindowPicker) (geometry.Rect, error) {
	var r geometry.Rect

	if req.PickWindow {
		if picker == nil {
			return geometry.Rect{}, ErrWindowPickFailed
		}
		win, ok := picker.PickWindow()
		if !ok {
			return geometry.Rect{}, ErrWindowPickFailed
		}
		r = win
	} else {
		if req.HavePosition {
			r.X, r.Y = req.X, req.Y
		}
		if req.HaveSize {
			r.Width, r.Height = req.Width, req.Height
		} else {
			r.Width, r.Height = desktop.Width, desktop.Height
		}
	}

	r.Width -= req.CropLeft + req.CropRight
	r.Height -= req.CropTop + req.CropBottom
	r.X += req.CropLeft
	r.Y += req.CropTop

	// Truncate down to the nearest multiple the codec accepts.
	r.Width -= mod(r.Width, alignment)
	r.Height -= mod(r.Height, alignment)

	if r.X+r.Width > desktop.Width || r.Y+r.Height > desktop.Height {
		return geometry.Rect{}, ErrOffScreen
	}
	return r, nil
}

// mod is a floored modulo (non-negative for positive divisors), matching
// the legacy truncation even for ill-formed negative sizes.
func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
