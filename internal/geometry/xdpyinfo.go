package geometry

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
)

// reDimensions matches the xdpyinfo screen line, e.g.
// "  dimensions:    1920x1080 pixels (508x285 millimeters)".
var reDimensions = regexp.MustCompile(`dimensions:\s*(\d+)x(\d+)\s*pixels`)

// XdpyinfoProvider resolves the desktop size by running xdpyinfo and
// parsing its textual output. Used when no display is reachable in-process.
type XdpyinfoProvider struct {
	// Output overrides the command invocation; tests inject canned output.
	Output func(ctx context.Context) ([]byte, error)
}

// DesktopResolution runs xdpyinfo and extracts the dimensions line.
// A failed spawn or missing dimensions line yields ErrUnavailable.
func (p *XdpyinfoProvider) DesktopResolution() (Resolution, error) {
	output := p.Output
	if output == nil {
		output = func(ctx context.Context) ([]byte, error) {
			return exec.CommandContext(ctx, "xdpyinfo").Output()
		}
	}
	out, err := output(context.Background())
	if err != nil {
		return Resolution{}, fmt.Errorf("%w: xdpyinfo: %v", ErrUnavailable, err)
	}
	return ParseXdpyinfo(out)
}

// ParseXdpyinfo extracts the desktop resolution from raw xdpyinfo output.
// Exported for testing without a real X server.
func ParseXdpyinfo(out []byte) (Resolution, error) {
	m := reDimensions.FindSubmatch(out)
	if m == nil {
		return Resolution{}, fmt.Errorf("%w: no dimensions line in xdpyinfo output", ErrUnavailable)
	}
	w, err := strconv.Atoi(string(m[1]))
	if err != nil {
		return Resolution{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	h, err := strconv.Atoi(string(m[2]))
	if err != nil {
		return Resolution{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return Resolution{Width: w, Height: h}, nil
}
