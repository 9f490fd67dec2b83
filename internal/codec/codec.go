// Package codec holds the static audio and video codec registries: the
// tool-argument fragment each codec contributes to the capture command line,
// and the width/height alignment each video codec demands. The registries are
// compiled-in constant data; lookups never mutate them.
package codec

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownCodec is returned by LookupVideo and LookupAudio when the
// requested name is not in the registry.
var ErrUnknownCodec = errors.New("unknown codec")

// VideoCodec describes one video encoder choice.
type VideoCodec struct {
	Name string
	// Args is the ordered argument fragment appended to the capture command.
	Args []string
	// Alignment is the divisor the capture width and height must satisfy.
	// Always >= 1.
	Alignment int
}

// AudioCodec describes one audio encoder choice. Audio codecs carry no
// alignment constraint.
type AudioCodec struct {
	Name string
	Args []string
}

var videoCodecs = map[string]VideoCodec{
	"h264": {
		Name:      "h264",
		Args:      []string{"-c:v", "libx264", "-vprofile", "baseline", "-g", "15", "-crf", "1", "-pix_fmt", "yuv420p"},
		Alignment: 2,
	},
	"h264_lossless": {
		Name:      "h264_lossless",
		Args:      []string{"-c:v", "libx264", "-g", "15", "-crf", "0", "-pix_fmt", "yuv444p"},
		Alignment: 2,
	},
	"mpeg4": {
		Name:      "mpeg4",
		Args:      []string{"-c:v", "mpeg4", "-g", "15", "-qmax", "1", "-qmin", "1"},
		Alignment: 2,
	},
	"huffyuv": {
		Name:      "huffyuv",
		Args:      []string{"-c:v", "huffyuv"},
		Alignment: 2,
	},
	"ffv1": {
		Name:      "ffv1",
		Args:      []string{"-c:v", "ffv1", "-coder", "1", "-context", "1"},
		Alignment: 1,
	},
	"vp8": {
		Name:      "vp8",
		Args:      []string{"-c:v", "libvpx", "-g", "15", "-qmax", "1", "-qmin", "1"},
		Alignment: 1,
	},
	"theora": {
		Name:      "theora",
		Args:      []string{"-c:v", "libtheora", "-g", "15", "-b:v", "40000k"},
		Alignment: 8,
	},
}

var audioCodecs = map[string]AudioCodec{
	"pcm":    {Name: "pcm", Args: []string{"-c:a", "pcm_s16le"}},
	"vorbis": {Name: "vorbis", Args: []string{"-c:a", "libvorbis", "-b:a", "320k"}},
	"mp3":    {Name: "mp3", Args: []string{"-c:a", "libmp3lame", "-b:a", "320k"}},
	"aac":    {Name: "aac", Args: []string{"-c:a", "libvo_aacenc", "-b:a", "320k"}},
	"faac":   {Name: "faac", Args: []string{"-c:a", "libfaac", "-b:a", "320k"}},
	"ffaac":  {Name: "ffaac", Args: []string{"-strict", "experimental", "-c:a", "aac", "-b:a", "320k"}},
}

// LookupVideo returns the video codec descriptor for name.
func LookupVideo(name string) (VideoCodec, error) {
	vc, ok := videoCodecs[name]
	if !ok {
		return VideoCodec{}, fmt.Errorf("video codec %q: %w", name, ErrUnknownCodec)
	}
	return vc, nil
}

// LookupAudio returns the audio codec descriptor for name.
func LookupAudio(name string) (AudioCodec, error) {
	ac, ok := audioCodecs[name]
	if !ok {
		return AudioCodec{}, fmt.Errorf("audio codec %q: %w", name, ErrUnknownCodec)
	}
	return ac, nil
}

// VideoNames returns all registered video codec names, sorted.
func VideoNames() []string {
	names := make([]string, 0, len(videoCodecs))
	for name := range videoCodecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AudioNames returns all registered audio codec names, sorted.
func AudioNames() []string {
	names := make([]string, 0, len(audioCodecs))
	for name := range audioCodecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
