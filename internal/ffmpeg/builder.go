// Package ffmpeg synthesizes the ordered argument vector handed to the
// selected capture tool (ffmpeg/avconv dialect), and launches it. Token
// boundaries matter for correct process invocation, so everything is built
// as []string; nothing here runs a process except Launch.
package ffmpeg

import (
	"fmt"
	"runtime"
	"strconv"

	"github.com/techtonik/recordscreen/internal/codec"
	"github.com/techtonik/recordscreen/internal/geometry"
)

// Builder produces capture argument vectors. The zero value targets the
// host platform and its core count; tests pin both fields for determinism.
type Builder struct {
	// GOOS selects the platform capture source. Empty means runtime.GOOS.
	GOOS string
	// Threads is the encoder thread-count hint. Zero means host core
	// count, floored at 2 when that cannot be determined.
	Threads int
}

// Video returns the argument tokens to capture video only: platform capture
// source, codec fragment, thread hint, output path.
//
// On Windows the desktop is grabbed with explicit offset/size flags
// (gdigrab); elsewhere the X11 screen region is addressed through the
// display device plus offset (x11grab). See
// https://trac.ffmpeg.org/wiki/Capture/Desktop.
func (b *Builder) Video(fps int, r geometry.Rect, displayDevice string, vc codec.VideoCodec, outputPath string) []string {
	var args []string

	if b.goos() == "windows" {
		args = append(args,
			"-f", "gdigrab",
			"-framerate", strconv.Itoa(fps),
			"-offset_x", strconv.Itoa(r.X),
			"-offset_y", strconv.Itoa(r.Y),
			"-video_size", fmt.Sprintf("%dx%d", r.Width, r.Height),
			"-i", "desktop",
		)
	} else {
		args = append(args,
			"-f", "x11grab",
			"-r", strconv.Itoa(fps),
			"-s", fmt.Sprintf("%dx%d", r.Width, r.Height),
			"-i", fmt.Sprintf("%s+%d,%d", displayDevice, r.X, r.Y),
		)
	}

	args = append(args, vc.Args...)
	args = append(args, "-threads", strconv.Itoa(b.threads()))
	args = append(args, outputPath)
	return args
}

// Audio returns the argument tokens to capture 2-channel audio only.
// Audio capture is not implemented on Windows; callers must not invoke this
// there and instead warn and omit audio entirely.
func (b *Builder) Audio(audioDevice string, ac codec.AudioCodec, outputPath string) []string {
	args := []string{
		"-f", "alsa",
		"-ac", "2",
		"-i", audioDevice,
	}
	args = append(args, ac.Args...)
	args = append(args, outputPath)
	return args
}

// Combined returns the tokens for one invocation recording both streams:
// audio flags followed by video flags, back to back.
func (b *Builder) Combined(fps int, r geometry.Rect, displayDevice, audioDevice string, vc codec.VideoCodec, ac codec.AudioCodec, outputPath string) []string {
	args := b.Audio(audioDevice, ac, outputPath)
	return append(args, b.Video(fps, r, displayDevice, vc, outputPath)...)
}

func (b *Builder) goos() string {
	if b.GOOS != "" {
		return b.GOOS
	}
	return runtime.GOOS
}

func (b *Builder) threads() int {
	if b.Threads > 0 {
		return b.Threads
	}
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return 2
}
