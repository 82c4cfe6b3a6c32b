// Package shell hosts a navigation session behind a line-driven
// prompt. Builtins cover navigation, archives, and the small utility
// commands; everything else passes through to the system with the
// session's working directory.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"hopd/internal/archive"
	"hopd/internal/cli"
	"hopd/internal/config"
	"hopd/internal/errors"
	"hopd/internal/nav"
	"hopd/internal/run"
)

// errExit signals a clean shutdown request from a builtin
var errExit = errors.New("exit")

// Shell drives one interactive session
type Shell struct {
	cfg        *config.Config
	session    *nav.Session
	transcoder *archive.Transcoder
	runner     run.Runner
	ui         *cli.UI
	styles     cli.Styles

	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// New creates a shell bound to the process streams
func New(cfg *config.Config, runner run.Runner) *Shell {
	return NewIO(cfg, runner, os.Stdin, os.Stdout, os.Stderr)
}

// NewIO creates a shell bound to explicit streams, for tests
func NewIO(cfg *config.Config, runner run.Runner, in io.Reader, out, errOut io.Writer) *Shell {
	session := nav.NewSessionFromConfig(cfg, runner)
	session.SetOutput(out)
	ui := cli.NewWriter(out, cfg)

	return &Shell{
		cfg:        cfg,
		session:    session,
		transcoder: archive.NewFromConfig(cfg, runner),
		runner:     runner,
		ui:         ui,
		styles:     ui.Styles(),
		in:         in,
		out:        out,
		errOut:     errOut,
	}
}

// Session exposes the hosted session
func (sh *Shell) Session() *nav.Session {
	return sh.session
}

// Run reads and executes lines until exit or end of input. Builtin
// failures are reported and the loop continues; only exit and EOF
// leave it.
func (sh *Shell) Run(ctx context.Context) error {
	sh.ui.Info("type help for commands, ctrl-d or exit to leave")

	scanner := bufio.NewScanner(sh.in)
	for {
		fmt.Fprint(sh.out, sh.prompt())
		if !scanner.Scan() {
			fmt.Fprintln(sh.out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if err := sh.Execute(ctx, line); err != nil {
			if errors.Is(err, errExit) {
				return nil
			}
			sh.ui.Error("%s", err)
		}
	}
}

// Execute tokenizes and runs a single command line
func (sh *Shell) Execute(ctx context.Context, line string) error {
	words, err := Tokenize(line)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		return nil
	}

	if b, ok := builtins[words[0]]; ok {
		return b.run(ctx, sh, words[1:])
	}
	return sh.passthrough(ctx, words[0], words[1:])
}

// passthrough hands an unknown command to the system with inherited
// streams. The child runs in the session's directory because the shell
// process itself follows every cd.
func (sh *Shell) passthrough(ctx context.Context, name string, args []string) error {
	if _, err := sh.runner.LookPath(name); err != nil {
		return errors.Newf("%s: command not found", name)
	}

	cmd := run.Command{Name: name, Args: args, Stdin: sh.in}
	res, err := sh.runner.RunStream(ctx, cmd, sh.out, sh.errOut)
	if err != nil {
		return errors.Wrapf(err, "%s failed", name)
	}
	if res.ExitCode != 0 {
		sh.ui.Warning("%s exited with status %d", name, res.ExitCode)
	}
	return nil
}

// prompt renders the styled working directory marker
func (sh *Shell) prompt() string {
	wd, err := os.Getwd()
	if err != nil {
		wd = "?"
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		if wd == home {
			wd = "~"
		} else if strings.HasPrefix(wd, home+string(os.PathSeparator)) {
			wd = "~" + wd[len(home):]
		}
	}
	return sh.styles.Emphasis.Render(wd) + " ❯ "
}
