// Package display formats user-facing listings.
package display

import (
	"fmt"
	"io"

	"github.com/techtonik/recordscreen/internal/codec"
)

// PrintCodecs writes the available audio and video codec names to w,
// sorted, for the --codecs flag.
func PrintCodecs(w io.Writer) {
	fmt.Fprintln(w, "Audio codecs:")
	for _, name := range codec.AudioNames() {
		fmt.Fprintln(w, "  "+name)
	}
	fmt.Fprintln(w, "Video codecs:")
	for _, name := range codec.VideoNames() {
		fmt.Fprintln(w, "  "+name)
	}
}
