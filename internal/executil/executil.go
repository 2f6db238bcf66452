// internal/executil/executil.go
package executil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"syscall"
)

// RunCMD executes the given command with inherited stdout/stderr.
func RunCMD(name string, args ...string) error {
	return runCore(context.Background(), false, name, args...)
}

// RunCtx executes with a context (for timeouts/cancellation).
func RunCtx(ctx context.Context, name string, args ...string) error {
	return runCore(ctx, false, name, args...)
}

// DryRunCMD logs the command that would be run without executing.
func DryRunCMD(name string, args ...string) error {
	return runCore(context.Background(), true, name, args...)
}

// CaptureCMD executes the command and returns its stdout. Stderr still goes
// to the caller's stderr so failures stay visible.
func CaptureCMD(ctx context.Context, name string, args ...string) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &out
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()
	if err := cmd.Run(); err != nil {
		return nil, wrapRunError(err, name+" "+shellQuoteArgs(args))
	}
	return out.Bytes(), nil
}

// ----------------------------------------------------------------

func runCore(ctx context.Context, dry bool, name string, args ...string) error {
	fullCmd := name + " " + shellQuoteArgs(args)

	if dry {
		fmt.Printf("[DRY RUN] %s\n", fullCmd)
		return nil
	}

	if ctx == nil {
		ctx = context.Background()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()

	fmt.Printf("Running: %s\n", fullCmd)
	if err := cmd.Run(); err != nil {
		return wrapRunError(err, fullCmd)
	}
	return nil
}

func wrapRunError(err error, fullCmd string) error {
	// include exit status if available
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok {
			return fmt.Errorf("command failed (exit=%d): %s: %w", status.ExitStatus(), fullCmd, err)
		}
	}
	// context cancellations/timeouts show clearly
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("command canceled: %s", fullCmd)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("command timed out: %s", fullCmd)
	}
	return fmt.Errorf("failed to run command: %s: %w", fullCmd, err)
}

// shellQuoteArgs returns a printable, shell-safe representation of args.
func shellQuoteArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		if a == "" || strings.ContainsAny(a, " \t\n\"'`$\\*?[]{}()<>|&;") {
			a = "'" + strings.ReplaceAll(a, "'", `'\''`) + "'"
		}
		quoted[i] = a
	}
	return strings.Join(quoted, " ")
}
