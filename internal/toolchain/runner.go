package toolchain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/shinji-kodama/momobuild/internal/model"
)

// Command describes one external program invocation.
type Command struct {
	// Name is the display name used in messages (e.g. "premake5").
	Name string

	// Path is the executable to start.
	Path string

	// Args are the arguments, not including the program itself.
	Args []string

	// Dir is the working directory of the child. Empty means momobuild's.
	Dir string

	// Stdin, when set, replaces the runner's standard input for this child.
	Stdin io.Reader

	// Quiet discards the child's standard output and error.
	Quiet bool

	// NewConsole starts the child in a console window of its own on
	// Windows, with its standard streams attached to that console. The
	// runner still waits for it. Elsewhere it has no effect.
	NewConsole bool
}

// String renders the command line for logs.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Path
	}
	return c.Path + " " + strings.Join(c.Args, " ")
}

// Runner starts a Command and waits for it to exit.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// ExitError reports that a child ran but exited with a non-zero code.
type ExitError struct {
	Name string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.Name, e.Code)
}

// ExecRunner runs commands with os/exec, connecting them to the given
// streams. Nil streams are connected to the null device.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run starts cmd, waits for it and classifies the outcome. A program that
// cannot be started yields a *model.CLIError with ExitGeneralError; one that
// exits non-zero yields an *ExitError.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) error {
	if cmd.NewConsole {
		return r.runInNewConsole(ctx, cmd)
	}
	return r.run(ctx, cmd)
}

// run executes cmd through os/exec with the runner's streams.
func (r *ExecRunner) run(ctx context.Context, cmd Command) error {
	// #nosec G204 -- the tool paths come from momobuild's own settings
	c := exec.CommandContext(ctx, cmd.Path, cmd.Args...)
	c.Dir = cmd.Dir
	c.Stdin = r.Stdin
	if cmd.Stdin != nil {
		c.Stdin = cmd.Stdin
	}
	c.Stdout = r.Stdout
	c.Stderr = r.Stderr
	if cmd.Quiet {
		c.Stdout = io.Discard
		c.Stderr = io.Discard
	}

	err := c.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code <= 0 {
			// Killed by a signal; there is no exit code to mirror.
			code = int(model.ExitGeneralError)
		}
		return &ExitError{Name: cmd.Name, Code: code}
	}
	return startError(cmd, err)
}

// startError reports that cmd could not be started.
func startError(cmd Command, err error) error {
	return model.WrapCLIError(model.ExitGeneralError, fmt.Sprintf("Could not start %s", cmd.Name), err)
}
