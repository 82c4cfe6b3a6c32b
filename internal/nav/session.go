package nav

import (
	"context"
	"io"
	"os"

	"github.com/google/uuid"

	"hopd/internal/config"
	"hopd/internal/errors"
	"hopd/internal/log"
	"hopd/internal/run"
)

// defaultListLimit caps how many directory entries a verbose report
// shows
const defaultListLimit = 10

// Session owns one user's navigation state: the history stack, the
// verbose flag, and the reporting configuration. Nothing here is
// process-global; every session is independent.
type Session struct {
	id        string
	history   *History
	verbose   bool
	listLimit int
	runner    run.Runner
	out       io.Writer
	markers   []Marker

	gitStatus      bool
	projectMarkers bool
}

// NewSession creates a session with verbose reporting on and the
// default history capacity
func NewSession(runner run.Runner) *Session {
	return &Session{
		id:             uuid.NewString(),
		history:        NewHistory(DefaultLimit),
		verbose:        true,
		listLimit:      defaultListLimit,
		runner:         runner,
		out:            os.Stdout,
		markers:        defaultMarkers(),
		gitStatus:      true,
		projectMarkers: true,
	}
}

// NewSessionFromConfig creates a session tuned by the configuration
func NewSessionFromConfig(cfg *config.Config, runner run.Runner) *Session {
	s := NewSession(runner)
	s.SetHistoryLimit(cfg.Navigation.MaxHistory)
	s.SetListLimit(cfg.Navigation.ListLimit)
	s.SetVerbose(cfg.Navigation.Verbose)
	s.SetReportGitStatus(cfg.Report.GitStatus)
	s.SetReportProjectMarkers(cfg.Report.ProjectMarkers)
	return s
}

// ID returns the session identifier used in log fields
func (s *Session) ID() string {
	return s.id
}

// History exposes the session's directory history
func (s *Session) History() *History {
	return s.history
}

// Verbose reports whether post-navigation reporting is enabled
func (s *Session) Verbose() bool {
	return s.verbose
}

// SetOutput redirects report output, which defaults to stdout
func (s *Session) SetOutput(w io.Writer) {
	s.out = w
}

// SetHistoryLimit resizes the history capacity, keeping existing
// entries up to the new limit
func (s *Session) SetHistoryLimit(limit int) {
	if limit <= 0 {
		return
	}
	entries := s.history.Entries()
	s.history = NewHistory(limit)
	for _, dir := range entries {
		s.history.Push(dir)
	}
}

// SetListLimit changes how many directory entries a report shows
func (s *Session) SetListLimit(limit int) {
	if limit > 0 {
		s.listLimit = limit
	}
}

// SetVerbose sets the reporting flag directly, for config defaults
func (s *Session) SetVerbose(verbose bool) {
	s.verbose = verbose
}

// SetReportGitStatus controls the git status section of reports
func (s *Session) SetReportGitStatus(enabled bool) {
	s.gitStatus = enabled
}

// SetReportProjectMarkers controls the project descriptor section of
// reports
func (s *Session) SetReportProjectMarkers(enabled bool) {
	s.projectMarkers = enabled
}

// ChangeDirectory moves the process to target, recording the previous
// working directory in history. An empty target means the user's home
// directory. On failure nothing is recorded and the process stays where
// it was.
func (s *Session) ChangeDirectory(ctx context.Context, target string) error {
	if target == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return errors.NewFileError("cannot resolve home directory", "", errors.DirectoryChangeFailed, err)
		}
		target = home
	}

	// The previous directory must be resolved before the move so a
	// successful change can record it
	prev, err := os.Getwd()
	if err != nil {
		return errors.NewFileError("cannot determine working directory", "", errors.DirectoryChangeFailed, err)
	}

	if err := os.Chdir(target); err != nil {
		return errors.NewFileError("cannot change directory", target, errors.DirectoryChangeFailed, err)
	}

	s.history.Push(prev)
	log.LogWithFields(log.F("session", s.id), log.F("dir", target)).Debug("changed directory")

	if s.verbose {
		s.report(ctx)
	}
	return nil
}

// GoBack pops the most recent history entry and moves there. The entry
// is consumed even when the move fails, so a vanished directory is
// dropped from history instead of blocking it.
func (s *Session) GoBack(ctx context.Context) (string, error) {
	dir, ok := s.history.Pop()
	if !ok {
		return "", errors.ErrEmptyHistory
	}

	if err := os.Chdir(dir); err != nil {
		return "", errors.NewFileError("cannot change directory", dir, errors.DirectoryChangeFailed, err)
	}

	log.LogWithFields(log.F("session", s.id), log.F("dir", dir)).Debug("went back")

	if s.verbose {
		s.report(ctx)
	}
	return dir, nil
}

// ToggleVerbose flips the reporting flag and returns the new state
func (s *Session) ToggleVerbose() bool {
	s.verbose = !s.verbose
	return s.verbose
}
