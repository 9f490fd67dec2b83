// Package naming allocates default output filenames and reconciles the
// requested path with the container format.
package naming

import (
	"fmt"
	"path/filepath"
)

// DefaultOutputPath returns the first unused out_NNNN.<ext> name in dir,
// scanning the 4-digit sequence 0001..9999. When every slot is taken the
// last name is returned anyway and will be overwritten; that is not an
// error.
func DefaultOutputPath(dir, ext string) string {
	matches, _ := filepath.Glob(filepath.Join(dir, "out_????."+ext))
	taken := make(map[string]bool, len(matches))
	for _, m := range matches {
		taken[filepath.Base(m)] = true
	}

	for i := 1; i <= 9999; i++ {
		name := fmt.Sprintf("out_%04d.%s", i, ext)
		if !taken[name] {
			return name
		}
	}
	return "out_9999." + ext
}
