// Package config holds runtime configuration: defaults, CLI flag parsing,
// and validation. All defaults match the legacy recordscreen script.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Defaults for user-tunable options.
const (
	DefaultFPS           = 15
	DefaultAudioDevice   = "pulse"
	DefaultDisplayDevice = ":0.0"
	DefaultAudioCodec    = "aac"
	DefaultVideoCodec    = "h264"
)

// ErrMalformedGeometry is returned when a --position or --size value does
// not follow the NxN syntax.
var ErrMalformedGeometry = errors.New("malformed option syntax")

// reXY is the accepted syntax for --position and --size values.
var reXY = regexp.MustCompile(`^[0-9]*x[0-9]*$`)

// Config holds all runtime settings for one capture run. It is populated by
// [DefaultConfig], mutated by [ParseFlags], and treated as an immutable
// snapshot afterwards.
type Config struct {
	// Output path (positional arg; empty means allocate out_NNNN.<ext>).
	OutputPath string

	// Capture area.
	CaptureWindow bool // Prompt the user to click a window.
	HavePosition  bool // --position given.
	X, Y          int
	HaveSize      bool // --size given.
	Width, Height int
	CropTop       int
	CropBottom    int
	CropLeft      int
	CropRight     int

	// Capture settings.
	FPS           int
	Audio         bool   // Default: true. Cleared by --no-audio.
	AudioDevice   string // Default: "pulse".
	DisplayDevice string // Default: ":0.0".
	AudioCodec    string // Default: "aac".
	VideoCodec    string // Default: "h264".

	// Output format and tool selection.
	Container string // Empty means derive from filename or default.
	Tool      string // Empty means auto-detect.

	// Behavior.
	ListCodecs bool
	Debug      bool // Verbose diagnostics; set by the RECDEBUG env var.

	// Raw flag values parsed into the fields above (populated during flag
	// parsing).
	PositionRaw string
	SizeRaw     string
}

// DefaultConfig returns a Config with all defaults matching the legacy
// tool. Debug is seeded from the RECDEBUG environment variable.
func DefaultConfig() Config {
	return Config{
		FPS:           DefaultFPS,
		Audio:         true,
		AudioDevice:   DefaultAudioDevice,
		DisplayDevice: DefaultDisplayDevice,
		AudioCodec:    DefaultAudioCodec,
		VideoCodec:    DefaultVideoCodec,
		Debug:         os.Getenv("RECDEBUG") != "",
	}
}

// Validate parses the raw position/size values into their integer fields
// and checks the frame rate. Called once after flag parsing.
func (c *Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive (got %d)", c.FPS)
	}

	if c.PositionRaw != "" {
		x, y, err := ParseXY(c.PositionRaw)
		if err != nil {
			return fmt.Errorf("position option must be of form XxY (e.g. 50x64): %w", err)
		}
		c.HavePosition = true
		c.X, c.Y = x, y
	}

	if c.SizeRaw != "" {
		w, h, err := ParseXY(c.SizeRaw)
		if err != nil {
			return fmt.Errorf("size option must be of form WIDTHxHEIGHT (e.g. 1280x720): %w", err)
		}
		c.HaveSize = true
		c.Width, c.Height = w, h
	}

	return nil
}

// ParseXY parses an "AxB" pair as used by --position and --size.
func ParseXY(s string) (int, int, error) {
	s = strings.TrimSpace(s)
	if !reXY.MatchString(s) {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedGeometry, s)
	}
	parts := strings.SplitN(s, "x", 2)
	a, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedGeometry, s)
	}
	b, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedGeometry, s)
	}
	return a, b, nil
}
