package naming

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultContainer is the container used when neither the output filename
// nor the --container option pins one.
const DefaultContainer = "mkv"

// acceptedContainers are the container formats the capture tools can mux,
// keyed by file extension.
var acceptedContainers = map[string]bool{
	"avi":  true,
	"mp4":  true,
	"mov":  true,
	"mkv":  true,
	"ogv":  true,
	"webm": true,
}

// ErrUnsupportedContainer is returned when an explicitly requested
// container is outside the accepted set.
var ErrUnsupportedContainer = errors.New("unsupported container format")

// AcceptedContainers returns the accepted container extensions, for help
// and error text.
func AcceptedContainers() []string {
	return []string{"avi", "mp4", "mov", "mkv", "ogv", "webm"}
}

// ReconcileContainer resolves the final output path and container format.
//
// An explicit container always wins and is validated independently; it is
// an error when outside the accepted set. A path whose extension is missing
// or unsupported gets the explicit (or default) container appended. A path
// with an accepted extension keeps it, and that extension becomes the
// container unless overridden.
func ReconcileContainer(path, explicit string) (finalPath, container string, err error) {
	if explicit != "" && !acceptedContainers[explicit] {
		return "", "", fmt.Errorf("%w: %s", ErrUnsupportedContainer, explicit)
	}

	ext := ""
	if i := strings.LastIndex(path, "."); i >= 0 {
		ext = path[i+1:]
	}

	if !acceptedContainers[ext] {
		container = explicit
		if container == "" {
			container = DefaultContainer
		}
		return path + "." + container, container, nil
	}

	container = explicit
	if container == "" {
		container = ext
	}
	return path, container, nil
}
