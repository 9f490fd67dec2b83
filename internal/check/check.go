// Package check determines which external capture tool is installed and
// speaks the expected argument dialect. A candidate is probed by spawning it
// with a benign codec-selection argument and sniffing its combined output for
// an "Unrecognized option" marker; a missing executable and an incompatible
// one both count as unavailable, while any other spawn failure is fatal.
package check

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Candidates is the prioritized list of supported capture tools. Auto-detect
// probes them in order and binds the first that accepts the probe.
var Candidates = []string{"ffmpeg", "avconv", "vlc"}

// ErrNoToolAvailable is returned by Select when no candidate passes the
// probe, or when an explicitly requested tool fails it.
var ErrNoToolAvailable = errors.New("no supported capture/conversion tool found")

// unrecognizedOption is the marker a present-but-incompatible tool prints
// when it does not understand the probe argument. Locale and version
// dependent by nature; alternate detection strategies can be swapped in by
// implementing Prober.
const unrecognizedOption = "Unrecognized option"

// Prober reports whether a named external tool is installed and compatible.
type Prober interface {
	// Probe returns (false, nil) when the tool is absent or incompatible.
	// A spawn failure other than "executable not found" is returned as an
	// error and must abort the run.
	Probe(ctx context.Context, tool string) (bool, error)
}

// ExecProber probes tools by actually spawning them.
type ExecProber struct{}

// Probe spawns `tool -c:v huffyuv` and inspects the combined output.
// huffyuv is understood by every supported tool dialect, so the argument is
// benign; a tool that rejects it with the unrecognized-option marker does
// not speak the dialect the synthesizer emits.
func (ExecProber) Probe(ctx context.Context, tool string) (bool, error) {
	cmd := exec.CommandContext(ctx, tool, "-c:v", "huffyuv")
	out, err := cmd.CombinedOutput()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return false, nil
		}
		// The tool runs with no input and exits nonzero; only the
		// output matters. Anything but an exit status is a real
		// spawn failure.
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return false, fmt.Errorf("spawn %s: %w", tool, err)
		}
	}
	if strings.Contains(string(out), unrecognizedOption) {
		return false, nil
	}
	return true, nil
}

// Select binds exactly one tool name for the run. When explicit is non-empty
// it must pass the probe; otherwise candidates are probed in order and the
// first success wins.
func Select(ctx context.Context, explicit string, candidates []string, p Prober) (string, error) {
	if explicit != "" {
		ok, err := p.Probe(ctx, explicit)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", fmt.Errorf("tool check failed for %s: %w", explicit, ErrNoToolAvailable)
		}
		return explicit, nil
	}

	for _, tool := range candidates {
		ok, err := p.Probe(ctx, tool)
		if err != nil {
			return "", err
		}
		if ok {
			return tool, nil
		}
	}
	return "", fmt.Errorf("%w, try to install one of: %s",
		ErrNoToolAvailable, strings.Join(candidates, ", "))
}
