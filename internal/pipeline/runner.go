// Package pipeline runs one capture from resolved options to the blocking
// external tool invocation: tool selection, output path and container
// reconciliation, codec lookup, geometry query, region calculation, argument
// synthesis, launch. Every step failure is fatal to the run; nothing is
// retried.
package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/techtonik/recordscreen/internal/check"
	"github.com/techtonik/recordscreen/internal/codec"
	"github.com/techtonik/recordscreen/internal/config"
	"github.com/techtonik/recordscreen/internal/ffmpeg"
	"github.com/techtonik/recordscreen/internal/geometry"
	"github.com/techtonik/recordscreen/internal/naming"
	"github.com/techtonik/recordscreen/internal/region"
)

// Runner wires the collaborators for one capture run. NewRunner installs
// the real implementations; tests substitute fakes.
type Runner struct {
	Log      *logrus.Logger
	Prober   check.Prober
	Provider geometry.Provider
	Picker   geometry.WindowPicker
	Builder  *ffmpeg.Builder
	// Launch starts the capture process and blocks until it exits.
	Launch func(ctx context.Context, tool string, args []string) error
	// GOOS mirrors Builder.GOOS for the audio-support decision.
	GOOS string
}

// NewRunner returns a Runner bound to the host platform and the real
// external tools.
func NewRunner(log *logrus.Logger) *Runner {
	b := &ffmpeg.Builder{}
	return &Runner{
		Log:      log,
		Prober:   check.ExecProber{},
		Provider: geometry.Detect(),
		Picker:   &geometry.XwininfoPicker{},
		Builder:  b,
		Launch:   ffmpeg.Launch,
	}
}

// Run executes the full capture pipeline for cfg.
func (r *Runner) Run(ctx context.Context, cfg *config.Config) error {
	tool, err := check.Select(ctx, cfg.Tool, check.Candidates, r.Prober)
	if err != nil {
		return err
	}
	r.Log.Infof("Using '%s' tool for capture and conversion.", tool)

	outputPath, container, err := r.resolveOutput(cfg)
	if err != nil {
		return err
	}

	vcodecName, acodecName := r.reconcileCodecs(container, cfg.VideoCodec, cfg.AudioCodec)
	vc, err := codec.LookupVideo(vcodecName)
	if err != nil {
		return err
	}
	var ac codec.AudioCodec
	if cfg.Audio {
		if ac, err = codec.LookupAudio(acodecName); err != nil {
			return err
		}
	}

	desktop, err := r.Provider.DesktopResolution()
	if err != nil {
		return fmt.Errorf("unable to determine desktop resolution: %w", err)
	}
	r.Log.Debugf("desktop resolution is %dx%d", desktop.Width, desktop.Height)

	if cfg.CaptureWindow {
		r.Log.Info("Please click on a window to capture.")
	}
	rect, err := region.Resolve(regionRequest(cfg), desktop, vc.Alignment, r.Picker)
	if err != nil {
		return err
	}

	args := r.buildArgs(cfg, rect, vc, ac, outputPath)
	r.Log.Debugf("command line: %s %s", tool, strings.Join(args, " "))

	if err := r.Launch(ctx, tool, args); err != nil {
		return err
	}
	r.Log.Info("Done!")
	return nil
}

// resolveOutput allocates a default output name when none was given and
// reconciles the filename with the container option.
func (r *Runner) resolveOutput(cfg *config.Config) (string, string, error) {
	path := cfg.OutputPath
	if path == "" {
		// An unsupported --container value is not used for globbing;
		// ReconcileContainer reports it below.
		ext := naming.DefaultContainer
		if cfg.Container != "" && acceptedExplicit(cfg.Container) {
			ext = cfg.Container
		}
		path = naming.DefaultOutputPath(".", ext)
	}
	return naming.ReconcileContainer(path, cfg.Container)
}

func acceptedExplicit(explicit string) bool {
	if explicit == "" {
		return true
	}
	for _, c := range naming.AcceptedContainers() {
		if c == explicit {
			return true
		}
	}
	return false
}

// reconcileCodecs fixes codec choices that the container cannot hold. webm
// accepts only vp8 video and vorbis audio; anything else is replaced with a
// warning.
func (r *Runner) reconcileCodecs(container, vcodec, acodec string) (string, string) {
	if container != "webm" {
		return vcodec, acodec
	}
	if vcodec != "vp8" {
		r.Log.Warnf("Selected codec (%s) is invalid for webm format, changing codec to vp8", vcodec)
		vcodec = "vp8"
	}
	if acodec != "vorbis" {
		r.Log.Warnf("Selected codec (%s) is invalid for webm format, changing codec to vorbis", acodec)
		acodec = "vorbis"
	}
	return vcodec, acodec
}

// buildArgs synthesizes the final argument vector. Audio is dropped with a
// warning on Windows, where the desktop-grab source cannot record it.
func (r *Runner) buildArgs(cfg *config.Config, rect geometry.Rect, vc codec.VideoCodec, ac codec.AudioCodec, outputPath string) []string {
	audio := cfg.Audio
	if audio && r.goos() == "windows" {
		r.Log.Warn("Capturing audio on Windows is not implemented")
		audio = false
	}
	if audio {
		return r.Builder.Combined(cfg.FPS, rect, cfg.DisplayDevice, cfg.AudioDevice, vc, ac, outputPath)
	}
	return r.Builder.Video(cfg.FPS, rect, cfg.DisplayDevice, vc, outputPath)
}

func (r *Runner) goos() string {
	if r.GOOS != "" {
		return r.GOOS
	}
	if r.Builder != nil && r.Builder.GOOS != "" {
		return r.Builder.GOOS
	}
	return runtime.GOOS
}

// regionRequest maps the option snapshot onto the region calculator's input.
func regionRequest(cfg *config.Config) region.Request {
	return region.Request{
		PickWindow:   cfg.CaptureWindow,
		HavePosition: cfg.HavePosition,
		X:            cfg.X,
		Y:            cfg.Y,
		HaveSize:     cfg.HaveSize,
		Width:        cfg.Width,
		Height:       cfg.Height,
		CropTop:      cfg.CropTop,
		CropBottom:   cfg.CropBottom,
		CropLeft:     cfg.CropLeft,
		CropRight:    cfg.CropRight,
	}
}
