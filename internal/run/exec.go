package run

import (
	"bytes"
	"context"
	"io"
	"os/exec"
)

// ExecRunner is the os/exec backed Runner used outside of tests
type ExecRunner struct{}

// NewExecRunner creates an ExecRunner
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// LookPath resolves the named binary via PATH
func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Run executes the command and captures its output. An exit failure of
// the tool is reported through Result.ExitCode, not through the error.
func (r *ExecRunner) Run(ctx context.Context, c Command) (Result, error) {
	var stdout, stderr bytes.Buffer
	res, err := r.exec(ctx, c, &stdout, &stderr)
	res.Stdout = stdout.String()
	res.Stderr = stderr.String()
	return res, err
}

// RunStream executes the command with output attached to the given
// writers
func (r *ExecRunner) RunStream(ctx context.Context, c Command, stdout, stderr io.Writer) (Result, error) {
	return r.exec(ctx, c, stdout, stderr)
}

func (r *ExecRunner) exec(ctx context.Context, c Command, stdout, stderr io.Writer) (Result, error) {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	if c.Dir != "" {
		cmd.Dir = c.Dir
	}
	if c.Stdin != nil {
		cmd.Stdin = c.Stdin
	}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			// The tool ran and exited non-zero (or died on a signal,
			// reported as -1)
			return Result{ExitCode: exitErr.ExitCode()}, nil
		}
		return Result{ExitCode: 1}, err
	}
	return Result{ExitCode: 0}, nil
}
