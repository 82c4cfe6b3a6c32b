// Package run defines the command execution capability used by every
// component that shells out to external tools. Navigation reporting,
// archive transcoding, and the watch daemon all receive a Runner instead
// of calling os/exec directly, so tests can substitute a scripted
// implementation and assert on the exact invocations.
package run

import (
	"context"
	"io"
	"strings"
)

// Command describes a single external tool invocation
type Command struct {
	// Name is the binary to invoke, resolved via PATH unless absolute
	Name string
	// Args are the arguments, excluding the binary name
	Args []string
	// Dir is the working directory; empty means the process working
	// directory
	Dir string
	// Stdin feeds the tool's standard input when non-nil
	Stdin io.Reader
}

// Line renders the invocation as a single command line for logs and
// test assertions
func (c Command) Line() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Result carries the outcome of a completed invocation. A non-zero
// ExitCode with a nil error means the tool ran and failed; errors are
// reserved for invocations that never ran.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner executes external tools. Implementations must be safe for
// sequential reuse; hopd's execution model is single-threaded.
type Runner interface {
	// LookPath reports where the named binary resolves, or an error
	// when it is not installed
	LookPath(name string) (string, error)
	// Run executes the command to completion, capturing stdout and
	// stderr
	Run(ctx context.Context, cmd Command) (Result, error)
	// RunStream executes the command with its output attached to the
	// given writers, for passthrough of tool output
	RunStream(ctx context.Context, cmd Command, stdout, stderr io.Writer) (Result, error)
}
