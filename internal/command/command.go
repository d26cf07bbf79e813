// Package command runs external tools (sl, git, gh) and turns failures into *Error.
package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// Error describes a failed external command. Stderr is kept verbatim.
type Error struct {
	Name     string
	Args     []string
	Stderr   string
	ExitCode int // -1 when the process could not be started
	Err      error
}

func (e *Error) Error() string {
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		return stderr
	}
	if e.ExitCode < 0 {
		return fmt.Sprintf("failed to execute %s: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Name, strings.Join(e.Args, " "), e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotStarted reports whether the process never ran (missing binary, bad dir).
func (e *Error) NotStarted() bool {
	return e.ExitCode < 0
}

// Runner executes a command in dir and returns its stdout.
type Runner func(ctx context.Context, dir string, name string, args ...string) ([]byte, error)

// Run is the default Runner backed by os/exec.
func Run(ctx context.Context, dir string, name string, args ...string) ([]byte, error) {
	slog.Debug("exec", "cmd", name, "args", args, "dir", dir)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		cmdErr := &Error{
			Name:     name,
			Args:     args,
			Stderr:   stderr.String(),
			ExitCode: -1,
			Err:      err,
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			cmdErr.ExitCode = exitErr.ExitCode()
		}

		slog.Debug("exec failed", "cmd", name, "exit", cmdErr.ExitCode, "stderr", strings.TrimSpace(cmdErr.Stderr))
		return nil, cmdErr
	}

	return output, nil
}
