package run

import (
	"context"
	"fmt"
	"io"
)

// FakeRunner is a scripted Runner for tests. Responses are keyed by the
// rendered command line; unscripted invocations succeed with empty
// output. Every invocation is recorded in order.
type FakeRunner struct {
	// Responses maps a command line to its scripted result
	Responses map[string]Result
	// Errors maps a command line to a start failure
	Errors map[string]error
	// Missing lists binaries LookPath should fail to resolve
	Missing []string
	// Calls records every command handed to Run or RunStream
	Calls []Command
}

// NewFakeRunner creates an empty FakeRunner where every tool resolves
// and every invocation succeeds
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		Responses: make(map[string]Result),
		Errors:    make(map[string]error),
	}
}

// Respond scripts the result for the exact command line
func (f *FakeRunner) Respond(line string, res Result) *FakeRunner {
	f.Responses[line] = res
	return f
}

// Fail scripts a start failure for the exact command line
func (f *FakeRunner) Fail(line string, err error) *FakeRunner {
	f.Errors[line] = err
	return f
}

// WithoutTool marks the named binary as not installed
func (f *FakeRunner) WithoutTool(name string) *FakeRunner {
	f.Missing = append(f.Missing, name)
	return f
}

// LookPath resolves to a fixed path unless the binary was marked
// missing
func (f *FakeRunner) LookPath(name string) (string, error) {
	for _, m := range f.Missing {
		if m == name {
			return "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
		}
	}
	return "/usr/bin/" + name, nil
}

// Run records the call and returns the scripted result
func (f *FakeRunner) Run(_ context.Context, c Command) (Result, error) {
	f.Calls = append(f.Calls, c)
	if err, ok := f.Errors[c.Line()]; ok {
		return Result{ExitCode: 1}, err
	}
	if res, ok := f.Responses[c.Line()]; ok {
		return res, nil
	}
	return Result{ExitCode: 0}, nil
}

// RunStream records the call and writes the scripted output to the
// given writers
func (f *FakeRunner) RunStream(ctx context.Context, c Command, stdout, stderr io.Writer) (Result, error) {
	res, err := f.Run(ctx, c)
	if err != nil {
		return res, err
	}
	if res.Stdout != "" {
		io.WriteString(stdout, res.Stdout)
	}
	if res.Stderr != "" {
		io.WriteString(stderr, res.Stderr)
	}
	return Result{ExitCode: res.ExitCode}, nil
}

// CommandLines returns the recorded invocations as rendered command
// lines
func (f *FakeRunner) CommandLines() []string {
	lines := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		lines[i] = c.Line()
	}
	return lines
}
