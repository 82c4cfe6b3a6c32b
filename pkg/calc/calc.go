// Package calc evaluates arithmetic expressions by piping them to bc.
package calc

import (
	"context"
	"strings"

	"hopd/internal/errors"
	"hopd/internal/run"
)

// Eval feeds the expression to bc -l and returns the result line.
// bc reports bad expressions on stderr while still exiting zero, so
// any stderr output counts as a failure.
func Eval(ctx context.Context, r run.Runner, expr string) (string, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return "", errors.ErrMissingArgument
	}

	if _, err := r.LookPath("bc"); err != nil {
		return "", errors.NewCommandError("calculator tool not installed", "bc", errors.ToolNotFound, err)
	}

	cmd := run.Command{
		Name:  "bc",
		Args:  []string{"-l"},
		Stdin: strings.NewReader(expr + "\n"),
	}
	res, err := r.Run(ctx, cmd)
	if err != nil {
		return "", errors.NewCommandError("calculator failed", "bc", errors.CalculationFailed, err)
	}

	if stderr := strings.TrimSpace(res.Stderr); stderr != "" || res.ExitCode != 0 {
		if i := strings.IndexByte(stderr, '\n'); i >= 0 {
			stderr = stderr[:i]
		}
		var reason error
		if stderr != "" {
			reason = errors.New(stderr)
		}
		return "", errors.NewCommandError("expression rejected", "bc", errors.CalculationFailed, reason)
	}

	return strings.TrimSpace(res.Stdout), nil
}
