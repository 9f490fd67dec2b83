package codec

import (
	"errors"
	"sort"
	"testing"
)

func TestLookupVideo(t *testing.T) {
	tests := []struct {
		name      string
		codec     string
		wantErr   bool
		wantAlign int
		wantFirst string // first argument token
	}{
		{"h264 default", "h264", false, 2, "-c:v"},
		{"h264 lossless", "h264_lossless", false, 2, "-c:v"},
		{"mpeg4", "mpeg4", false, 2, "-c:v"},
		{"huffyuv", "huffyuv", false, 2, "-c:v"},
		{"ffv1 no alignment", "ffv1", false, 1, "-c:v"},
		{"vp8 no alignment", "vp8", false, 1, "-c:v"},
		{"theora eight", "theora", false, 8, "-c:v"},
		{"unknown", "xvid", true, 0, ""},
		{"empty", "", true, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vc, err := LookupVideo(tt.codec)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LookupVideo(%q) error = %v, wantErr %v", tt.codec, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownCodec) {
					t.Errorf("error = %v, want ErrUnknownCodec", err)
				}
				return
			}
			if vc.Alignment != tt.wantAlign {
				t.Errorf("alignment = %d, want %d", vc.Alignment, tt.wantAlign)
			}
			if len(vc.Args) == 0 || vc.Args[0] != tt.wantFirst {
				t.Errorf("args = %v, want first token %q", vc.Args, tt.wantFirst)
			}
		})
	}
}

func TestLookupAudio(t *testing.T) {
	tests := []struct {
		name    string
		codec   string
		wantErr bool
	}{
		{"pcm", "pcm", false},
		{"vorbis", "vorbis", false},
		{"mp3", "mp3", false},
		{"aac", "aac", false},
		{"faac", "faac", false},
		{"ffaac", "ffaac", false},
		{"unknown", "flac", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ac, err := LookupAudio(tt.codec)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LookupAudio(%q) error = %v, wantErr %v", tt.codec, err, tt.wantErr)
			}
			if !tt.wantErr && len(ac.Args) == 0 {
				t.Errorf("LookupAudio(%q) returned empty args", tt.codec)
			}
		})
	}
}

// Every registered video codec must carry a positive alignment, since the
// region calculator divides by it.
func TestVideoAlignmentsPositive(t *testing.T) {
	for _, name := range VideoNames() {
		vc, err := LookupVideo(name)
		if err != nil {
			t.Fatalf("LookupVideo(%q) unexpected error: %v", name, err)
		}
		if vc.Alignment < 1 {
			t.Errorf("codec %q alignment = %d, want >= 1", name, vc.Alignment)
		}
	}
}

func TestNamesSorted(t *testing.T) {
	if v := VideoNames(); !sort.StringsAreSorted(v) {
		t.Errorf("VideoNames() not sorted: %v", v)
	}
	if a := AudioNames(); !sort.StringsAreSorted(a) {
		t.Errorf("AudioNames() not sorted: %v", a)
	}
	if len(VideoNames()) != 7 {
		t.Errorf("VideoNames() length = %d, want 7", len(VideoNames()))
	}
	if len(AudioNames()) != 6 {
		t.Errorf("AudioNames() length = %d, want 6", len(AudioNames()))
	}
}

// The ffaac fragment must keep -strict experimental ahead of the encoder
// selection; order matters for the tool's parser.
func TestFfaacTokenOrder(t *testing.T) {
	ac, err := LookupAudio("ffaac")
	if err != nil {
		t.Fatal(err)
	}
	if ac.Args[0] != "-strict" || ac.Args[1] != "experimental" {
		t.Errorf("ffaac args = %v, want -strict experimental first", ac.Args)
	}
}
