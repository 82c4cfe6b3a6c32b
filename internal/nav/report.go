package nav

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"hopd/internal/run"
)

// report prints the contextual summary that follows a successful
// navigation: a directory listing, git status when inside a work tree,
// and a one-line project descriptor when a marker file is present.
// Reporting failures are silent; navigation already succeeded.
func (s *Session) report(ctx context.Context) {
	wd, err := os.Getwd()
	if err != nil {
		return
	}
	s.listDirectory(wd)
	if s.gitStatus {
		s.printGitStatus(ctx, wd)
	}
	if s.projectMarkers {
		if desc, ok := DescribeProject(wd, s.markers); ok {
			fmt.Fprintln(s.out, desc)
		}
	}
}

// listDirectory prints up to listLimit visible entries, directories
// suffixed with a slash, then the count of whatever was left out.
// Hidden entries stay hidden, matching what a bare ls would show.
func (s *Session) listDirectory(dir string) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	var visible []string
	for _, entry := range dirEntries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		name := entry.Name()
		if entry.IsDir() {
			name += "/"
		}
		visible = append(visible, name)
	}
	for i, name := range visible {
		if i >= s.listLimit {
			break
		}
		fmt.Fprintf(s.out, "  %s\n", name)
	}
	if rest := len(visible) - s.listLimit; rest > 0 {
		fmt.Fprintf(s.out, "  ... and %d more\n", rest)
	}
}

// printGitStatus passes `git status --short --branch` output through
// unparsed when the directory sits inside a git work tree
func (s *Session) printGitStatus(ctx context.Context, dir string) {
	res, err := s.runner.Run(ctx, run.Command{
		Name: "git",
		Args: []string{"rev-parse", "--is-inside-work-tree"},
		Dir:  dir,
	})
	if err != nil || res.ExitCode != 0 || strings.TrimSpace(res.Stdout) != "true" {
		return
	}
	s.runner.RunStream(ctx, run.Command{
		Name: "git",
		Args: []string{"status", "--short", "--branch"},
		Dir:  dir,
	}, s.out, io.Discard)
}
