package resolver

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/extremtechniker/mailtxt/logger"
)

const DefaultLookupCommand = "nslookup"

// ExecLookup runs `<command> -type=txt <name>` and returns its stdout.
// A non-zero exit status is reported as a failure.
func ExecLookup(command string) Lookup {
	if command == "" {
		command = DefaultLookupCommand
	}
	return func(ctx context.Context, name string) (string, error) {
		args := []string{"-type=txt", name}
		cmd := exec.CommandContext(ctx, command, args...)

		var stdout, stderr bytes.Buffer
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr

		logger.Logger.Debugf("running %s %s", command, strings.Join(args, " "))
		if err := cmd.Run(); err != nil {
			if msg := strings.TrimSpace(stderr.String()); msg != "" {
				logger.Logger.Debugf("%s stderr: %s", command, msg)
			}
			return "", fmt.Errorf("%w: command %q returned: %w", ErrLookupFailed, command+" "+strings.Join(args, " "), err)
		}
		return stdout.String(), nil
	}
}
