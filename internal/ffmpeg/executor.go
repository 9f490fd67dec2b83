package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Launch runs the capture tool with the synthesized arguments and blocks
// until it exits. Stdio is passed through so the tool's progress output and
// any interactive prompts reach the user directly.
//
// The tool's own exit status is not propagated: the capture normally ends
// when the user signals the child, which reports a nonzero status. Only a
// failure to spawn the process at all is an error.
func Launch(ctx context.Context, tool string, args []string) error {
	cmd := exec.CommandContext(ctx, tool, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil
		}
		return fmt.Errorf("launch %s: %w", tool, err)
	}
	return nil
}
