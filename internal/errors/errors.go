// Package errors provides standardized error handling for the hopd
// application. It defines the error kinds surfaced by navigation and
// archive operations, typed wrappers carrying context (paths, tools,
// exit statuses), and helper functions for consistent error creation,
// wrapping, and classification across the application.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package functions that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// Common error constants for frequently occurring errors
var (
	ErrEmptyHistory    = &ApplicationError{msg: "directory history is empty", kind: EmptyHistory}
	ErrMissingArgument = &ApplicationError{msg: "missing required argument", kind: MissingArgument}
	ErrInvalidConfig   = NewConfigError("invalid configuration", "", InvalidConfig, nil)
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Navigation error kinds
	EmptyHistory
	DirectoryChangeFailed
	// Archive error kinds
	MissingArgument
	NotAFile
	InputNotFound
	UnsupportedFormat
	ToolNotFound
	ExtractionFailed
	CompressionFailed
	// Utility error kinds
	CalculationFailed
	// Config error kinds
	InvalidConfig
	ConfigNotFound
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// FileError represents errors tied to a filesystem path
type FileError struct {
	ApplicationError
	path string
}

// NewFileError creates a new file error
func NewFileError(msg string, path string, kind ErrorKind, err error) *FileError {
	return &FileError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the file error message
func (e *FileError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the file path associated with the error
func (e *FileError) Path() string {
	return e.path
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// CommandError represents failures of external tool invocations
type CommandError struct {
	ApplicationError
	tool       string
	exitStatus int
}

// NewCommandError creates a new command error for the given tool
func NewCommandError(msg string, tool string, kind ErrorKind, err error) *CommandError {
	return &CommandError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		tool:       tool,
		exitStatus: -1,
	}
}

// WithExitStatus records the exit status of the failed invocation
func (e *CommandError) WithExitStatus(status int) *CommandError {
	e.exitStatus = status
	return e
}

// Error returns the command error message
func (e *CommandError) Error() string {
	if e.tool != "" {
		if e.exitStatus >= 0 {
			return fmt.Sprintf("%s: %s exited with status %d", e.msg, e.tool, e.exitStatus)
		}
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.tool, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.tool)
	}
	return e.ApplicationError.Error()
}

// Tool returns the external tool associated with the error
func (e *CommandError) Tool() string {
	return e.tool
}

// ExitStatus returns the exit status of the failed invocation, or -1
// when the tool never ran
func (e *CommandError) ExitStatus() int {
	return e.exitStatus
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// NewKind creates a new error with a message and an explicit kind
func NewKind(msg string, kind ErrorKind) error {
	return &ApplicationError{
		msg:  msg,
		kind: kind,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// kinder is implemented by every classified error in this package
type kinder interface {
	Kind() ErrorKind
}

// Kind returns the outermost classified kind in the error chain,
// skipping plain wrappers, or Unknown for foreign errors
func Kind(err error) ErrorKind {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if k, ok := e.(kinder); ok && k.Kind() != Unknown {
			return k.Kind()
		}
	}
	return Unknown
}

// hasKind reports whether any error in the chain carries the given kind
func hasKind(err error, kind ErrorKind) bool {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if k, ok := e.(kinder); ok && k.Kind() == kind {
			return true
		}
	}
	return false
}

// ExitStatus returns the recorded exit status for a failed tool
// invocation and whether one was present in the chain
func ExitStatus(err error) (int, bool) {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) && cmdErr.ExitStatus() >= 0 {
		return cmdErr.ExitStatus(), true
	}
	return 0, false
}

// IsEmptyHistory checks if the error reports an empty directory history
func IsEmptyHistory(err error) bool {
	return hasKind(err, EmptyHistory)
}

// IsDirectoryChangeFailed checks if the error reports a failed chdir
func IsDirectoryChangeFailed(err error) bool {
	return hasKind(err, DirectoryChangeFailed)
}

// IsMissingArgument checks if the error reports a missing argument
func IsMissingArgument(err error) bool {
	return hasKind(err, MissingArgument)
}

// IsNotAFile checks if the error reports a path that is not a regular file
func IsNotAFile(err error) bool {
	return hasKind(err, NotAFile)
}

// IsInputNotFound checks if the error reports a missing compression input
func IsInputNotFound(err error) bool {
	return hasKind(err, InputNotFound)
}

// IsUnsupportedFormat checks if the error reports an unrecognized archive suffix
func IsUnsupportedFormat(err error) bool {
	return hasKind(err, UnsupportedFormat)
}

// IsToolNotFound checks if the error reports an absent external tool
func IsToolNotFound(err error) bool {
	return hasKind(err, ToolNotFound)
}

// IsExtractionFailed checks if the error reports a failed extraction
func IsExtractionFailed(err error) bool {
	return hasKind(err, ExtractionFailed)
}

// IsCompressionFailed checks if the error reports a failed compression
func IsCompressionFailed(err error) bool {
	return hasKind(err, CompressionFailed)
}

// IsCalculationFailed checks if the error reports a rejected calculator expression
func IsCalculationFailed(err error) bool {
	return hasKind(err, CalculationFailed)
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}
