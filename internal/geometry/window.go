package geometry

import (
	"bufio"
	"bytes"
	"context"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

// xwininfo labels the four fields the picker needs. The first run of digits
// after each label is the value.
var reDigits = regexp.MustCompile(`\d+`)

var windowFields = [4]string{
	"Absolute upper-left X:",
	"Absolute upper-left Y:",
	"Width:",
	"Height:",
}

// XwininfoPicker prompts for a window by running xwininfo, which blocks
// until the user clicks a target window.
type XwininfoPicker struct {
	// Output overrides the command invocation; tests inject canned output.
	Output func(ctx context.Context) ([]byte, error)
}

// PickWindow runs xwininfo and parses the clicked window's position and
// size. ok is false when the tool cannot be spawned or any of the four
// fields is missing; the caller decides whether that cancels the run.
func (p *XwininfoPicker) PickWindow() (Rect, bool) {
	output := p.Output
	if output == nil {
		output = func(ctx context.Context) ([]byte, error) {
			return exec.CommandContext(ctx, "xwininfo").Output()
		}
	}
	out, err := output(context.Background())
	if err != nil {
		return Rect{}, false
	}
	return ParseWindowInfo(out)
}

// ParseWindowInfo extracts the window rectangle from raw xwininfo output.
// All four labeled fields must be present. Exported for testing without a
// real X server.
func ParseWindowInfo(out []byte) (Rect, bool) {
	var values [4]int
	var seen [4]bool

	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()
		for i, label := range windowFields {
			if !strings.Contains(line, label) {
				continue
			}
			digits := reDigits.FindString(line)
			if digits == "" {
				continue
			}
			n, err := strconv.Atoi(digits)
			if err != nil {
				continue
			}
			values[i] = n
			seen[i] = true
		}
	}

	if !seen[0] || !seen[1] || !seen[2] || !seen[3] {
		return Rect{}, false
	}
	return Rect{X: values[0], Y: values[1], Width: values[2], Height: values[3]}, true
}
