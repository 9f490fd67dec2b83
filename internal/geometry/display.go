package geometry

import (
	"github.com/kbinani/screenshot"
)

// DisplayProvider reads the primary display bounds through the screenshot
// library, without spawning any external process.
type DisplayProvider struct{}

// DesktopResolution returns the size of the primary display.
func (DisplayProvider) DesktopResolution() (Resolution, error) {
	if screenshot.NumActiveDisplays() < 1 {
		return Resolution{}, ErrUnavailable
	}
	bounds := screenshot.GetDisplayBounds(0)
	return Resolution{Width: bounds.Dx(), Height: bounds.Dy()}, nil
}

// Detect picks the resolution provider for this run: the in-process display
// query when a display is reachable, otherwise the external xdpyinfo query.
func Detect() Provider {
	if screenshot.NumActiveDisplays() > 0 {
		return DisplayProvider{}
	}
	return &XdpyinfoProvider{}
}
