package pio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"syscall"

	"github.com/farcloser/primordium/fault"

	"github.com/epicweather/otagate/internal/integration/binary"
)

// Result is the outcome of one toolchain invocation. Output is retained
// even when the build fails, since a failed build may still emit partial
// size diagnostics.
type Result struct {
	Output  string // combined stdout and stderr
	Success bool   // process exited zero
}

// Run invokes `pio run -e <environment>` with the project directory as
// working directory, bounded by the package timeout. A non-zero exit is a
// Result, not an error; errors mean the toolchain could not run at all
// (missing binary, start failure) or was killed on timeout. On timeout the
// returned Result still carries whatever output was produced.
func Run(ctx context.Context, projectDir, environment string, verbose bool) (*Result, error) {
	slog.Debug("pio.Run", "project", projectDir, "environment", environment, "verbose", verbose)

	pioPath, found := binary.Available(name)
	if !found {
		return nil, fmt.Errorf("%w: %s", fault.ErrMissingRequirements, name)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	args := []string{"run", "-e", environment}
	if verbose {
		args = append(args, "-v")
	}

	cmd := exec.CommandContext(ctx, pioPath, args...)
	cmd.Dir = projectDir

	// The toolchain forks compiler subprocesses that inherit the output
	// pipes. Killing only the direct child would leave Wait blocked on
	// those pipes, so cancellation kills the whole process group, and Wait
	// gets a bounded grace before abandoning the pipes.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
	cmd.WaitDelay = killGrace

	var combined bytes.Buffer

	cmd.Stdout = &combined
	cmd.Stderr = &combined

	runErr := cmd.Run()
	if runErr != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return &Result{Output: combined.String()}, fmt.Errorf("%w: after %v", fault.ErrTimeout, timeout)
		}

		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			// The toolchain ran and reported a build failure.
			return &Result{Output: combined.String()}, nil
		}

		return nil, fmt.Errorf("%w: %w", fault.ErrCommandFailure, runErr)
	}

	return &Result{Output: combined.String(), Success: true}, nil
}

// BinaryPath returns where the toolchain writes the firmware image for the
// given environment.
func BinaryPath(projectDir, environment string) string {
	return filepath.Join(projectDir, ".pio", "build", environment, "firmware.bin")
}
