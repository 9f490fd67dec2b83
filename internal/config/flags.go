package config

// This file implements CLI flag parsing and help text.
// Short and long spellings are registered as alias pairs against the same
// field, so defaults from DefaultConfig hold unless the user passes either.

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/techtonik/recordscreen/internal/naming"
)

// version is shown in --version and help; override at build time with
// -ldflags "-X .../internal/config.version=...".
var version = "1.0.0-dev"

// ParseFlags parses os.Args into cfg. On --help or --version it prints and
// exits. On error it returns non-nil (e.g. unknown flag).
func ParseFlags(cfg *Config) error {
	return parseArgs(cfg, os.Args[1:], os.Exit)
}

// parseArgs is the testable core of ParseFlags; exit is called for the
// --help/--version shortcuts.
func parseArgs(cfg *Config, args []string, exit func(int)) error {
	fs := flag.NewFlagSet("recordscreen", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs) }

	var showHelp, showVersion, noAudio bool

	fs.BoolVar(&cfg.CaptureWindow, "capture-window", false, "Prompt user to click on a window to capture")
	fs.BoolVar(&cfg.CaptureWindow, "w", false, "Same as --capture-window")
	fs.BoolVar(&noAudio, "no-audio", false, "Don't capture audio")
	fs.BoolVar(&noAudio, "n", false, "Same as --no-audio")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "Frame rate to capture video at")
	fs.IntVar(&cfg.FPS, "r", cfg.FPS, "Same as --fps")
	fs.StringVar(&cfg.PositionRaw, "position", "", "Upper left corner of the capture area (XxY)")
	fs.StringVar(&cfg.PositionRaw, "p", "", "Same as --position")
	fs.StringVar(&cfg.SizeRaw, "size", "", "Resolution of the capture area (WIDTHxHEIGHT)")
	fs.StringVar(&cfg.SizeRaw, "s", "", "Same as --size")
	fs.IntVar(&cfg.CropTop, "crop-top", 0, "Pixels to crop off the top of the capture area")
	fs.IntVar(&cfg.CropBottom, "crop-bottom", 0, "Pixels to crop off the bottom of the capture area")
	fs.IntVar(&cfg.CropLeft, "crop-left", 0, "Pixels to crop off the left of the capture area")
	fs.IntVar(&cfg.CropRight, "crop-right", 0, "Pixels to crop off the right of the capture area")
	fs.StringVar(&cfg.AudioDevice, "audio-device", cfg.AudioDevice, "Audio device to capture from (e.g. hw:0)")
	fs.StringVar(&cfg.AudioDevice, "a", cfg.AudioDevice, "Same as --audio-device")
	fs.StringVar(&cfg.DisplayDevice, "display-device", cfg.DisplayDevice, "Display device to capture from (e.g. :0.0)")
	fs.StringVar(&cfg.DisplayDevice, "d", cfg.DisplayDevice, "Same as --display-device")
	fs.StringVar(&cfg.AudioCodec, "acodec", cfg.AudioCodec, "Audio codec to encode with")
	fs.StringVar(&cfg.VideoCodec, "vcodec", cfg.VideoCodec, "Video codec to encode with")
	fs.BoolVar(&cfg.ListCodecs, "codecs", false, "Display the available audio and video codecs")
	fs.StringVar(&cfg.Container, "container", "", "Media container format to use if a filename is not given")
	fs.StringVar(&cfg.Tool, "tool", "", "Capture and conversion tool to use (autodetected by default)")
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&showVersion, "V", false, "Same as --version")
	fs.BoolVar(&showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&showHelp, "h", false, "Same as --help")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if showHelp {
		printUsage(fs)
		exit(0)
	}
	if showVersion {
		fmt.Fprintln(os.Stdout, "recordscreen v"+version)
		exit(0)
	}

	if noAudio {
		cfg.Audio = false
	}
	if rest := fs.Args(); len(rest) > 0 {
		cfg.OutputPath = rest[0]
	}
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet) {
	const col1 = 30 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "recordscreen v" + version + " - desktop capture via ffmpeg/avconv"},
		{"", ""},
		{"  recordscreen [OPTIONS] [output_file." + naming.DefaultContainer + "]", ""},
		{"", ""},
		{"Capture area", ""},
		{"  -w, --capture-window", "Prompt user to click on a window to capture"},
		{"  -p, --position <XxY>", "Upper left corner of the capture area (default: 0x0)"},
		{"  -s, --size <WxH>", "Resolution of the capture area (default: entire desktop)"},
		{"  --crop-top <px>", "Pixels to crop off the top of the capture area"},
		{"  --crop-bottom <px>", "Pixels to crop off the bottom"},
		{"  --crop-left <px>", "Pixels to crop off the left"},
		{"  --crop-right <px>", "Pixels to crop off the right"},
		{"", ""},
		{"Recording", ""},
		{"  -r, --fps <int>", fmt.Sprintf("Frame rate to capture at (default: %d)", DefaultFPS)},
		{"  -n, --no-audio", "Don't capture audio"},
		{"  -a, --audio-device <id>", "Audio device to capture from (default: " + DefaultAudioDevice + ")"},
		{"  -d, --display-device <id>", "Display device to capture from (default: " + DefaultDisplayDevice + ")"},
		{"  --acodec <name>", "Audio codec to encode with (default: " + DefaultAudioCodec + ")"},
		{"  --vcodec <name>", "Video codec to encode with (default: " + DefaultVideoCodec + ")"},
		{"", ""},
		{"Output", ""},
		{"  --container <ext>", "Container format if no filename given (" + strings.Join(naming.AcceptedContainers(), ", ") + ")"},
		{"  --tool <name>", "Capture tool to use (autodetected by default)"},
		{"", ""},
		{"Utility", ""},
		{"  --codecs", "Display the available audio and video codecs"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
