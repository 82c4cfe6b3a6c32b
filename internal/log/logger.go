// Package log provides structured logging for the hopd application,
// backed by logrus. It exposes package-level helpers writing through a
// configurable global logger, field-based structured entries, and
// error-aware logging that surfaces the error kinds and context carried
// by internal/errors values.
package log

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"hopd/internal/errors"
)

var (
	isDebug = false
	logger  = NewLogger()
)

// Field is a single structured logging key/value pair
type Field struct {
	Key   string
	Value interface{}
}

// F constructs a Field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Option configures a Logger
type Option func(*Logger)

// WithOutput directs log output to w instead of stdout
func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		l.out = w
	}
}

// WithJSON switches the logger to JSON output
func WithJSON() Option {
	return func(l *Logger) {
		l.json = true
	}
}

// WithFile copies log output into the named file in addition to the
// primary output
func WithFile(path string) Option {
	return func(l *Logger) {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log: cannot open %s: %v\n", path, err)
			return
		}
		l.file = f
	}
}

// Logger is a structured logger. The zero value is not usable; create
// one with NewLogger.
type Logger struct {
	lr   *logrus.Logger
	out  io.Writer
	file *os.File
	json bool
}

// NewLogger creates a logger writing to stdout unless options say
// otherwise
func NewLogger(opts ...Option) *Logger {
	l := &Logger{out: os.Stdout}
	for _, opt := range opts {
		opt(l)
	}
	l.lr = logrus.New()
	out := l.out
	if l.file != nil {
		out = io.MultiWriter(l.out, l.file)
	}
	l.lr.SetOutput(out)
	l.lr.SetLevel(logrus.DebugLevel)
	if l.json {
		l.lr.SetFormatter(&jsonFormatter{})
	} else {
		l.lr.SetFormatter(&textFormatter{})
	}
	return l
}

// Configure replaces the global logger used by the package-level
// functions
func Configure(opts ...Option) {
	logger = NewLogger(opts...)
}

// SetDebug toggles debug-level output for all loggers
func SetDebug(debug bool) {
	isDebug = debug
}

// log is the single funnel into logrus. The caller field is computed
// here, so every public entry point must sit exactly one frame above.
func (l *Logger) log(level logrus.Level, fields logrus.Fields, msg string) {
	if level == logrus.DebugLevel && !isDebug {
		return
	}
	data := logrus.Fields{}
	for k, v := range fields {
		data[k] = v
	}
	if _, ok := data["caller"]; !ok {
		data["caller"] = caller(3)
	}
	l.lr.WithFields(data).Log(level, msg)
}

func caller(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}

// Info logs a message at info level
func (l *Logger) Info(args ...interface{}) {
	l.log(logrus.InfoLevel, nil, fmt.Sprint(args...))
}

// Infof logs a formatted message at info level
func (l *Logger) Infof(format string, args ...interface{}) {
	l.log(logrus.InfoLevel, nil, fmt.Sprintf(format, args...))
}

// Warn logs a message at warning level
func (l *Logger) Warn(args ...interface{}) {
	l.log(logrus.WarnLevel, nil, fmt.Sprint(args...))
}

// Warnf logs a formatted message at warning level
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.log(logrus.WarnLevel, nil, fmt.Sprintf(format, args...))
}

// Error logs a message at error level
func (l *Logger) Error(args ...interface{}) {
	l.log(logrus.ErrorLevel, nil, fmt.Sprint(args...))
}

// Errorf logs a formatted message at error level
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.log(logrus.ErrorLevel, nil, fmt.Sprintf(format, args...))
}

// Debug logs a message at debug level; suppressed unless SetDebug(true)
func (l *Logger) Debug(args ...interface{}) {
	l.log(logrus.DebugLevel, nil, fmt.Sprint(args...))
}

// Debugf logs a formatted message at debug level
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.log(logrus.DebugLevel, nil, fmt.Sprintf(format, args...))
}

// With returns an entry carrying the given fields
func (l *Logger) With(fields ...Field) *Entry {
	e := &Entry{l: l, fields: logrus.Fields{}}
	for _, f := range fields {
		e.fields[f.Key] = f.Value
	}
	return e
}

// WithContext returns an entry bound to ctx. Context values are not
// extracted yet; the method exists so call sites can pass their context
// through today.
func (l *Logger) WithContext(_ context.Context) *Entry {
	return &Entry{l: l, fields: logrus.Fields{}}
}

// WithError returns an entry annotated with the error message plus the
// kind and context fields carried by internal/errors values
func (l *Logger) WithError(err error) *Entry {
	e := &Entry{l: l, fields: logrus.Fields{}}
	if err == nil {
		e.fields["error"] = "<nil>"
		return e
	}
	e.fields["error"] = err.Error()
	e.fields["error_kind"] = int(errors.Kind(err))
	var fileErr *errors.FileError
	if errors.As(err, &fileErr) {
		e.fields["path"] = fileErr.Path()
	}
	var cmdErr *errors.CommandError
	if errors.As(err, &cmdErr) {
		e.fields["tool"] = cmdErr.Tool()
		if cmdErr.ExitStatus() >= 0 {
			e.fields["exit_status"] = cmdErr.ExitStatus()
		}
	}
	var configErr *errors.ConfigError
	if errors.As(err, &configErr) {
		e.fields["param"] = configErr.Param()
	}
	return e
}

// Entry is a log statement under construction, carrying structured
// fields
type Entry struct {
	l      *Logger
	fields logrus.Fields
}

// With returns a new entry with the additional fields merged in
func (e *Entry) With(fields ...Field) *Entry {
	merged := &Entry{l: e.l, fields: logrus.Fields{}}
	for k, v := range e.fields {
		merged.fields[k] = v
	}
	for _, f := range fields {
		merged.fields[f.Key] = f.Value
	}
	return merged
}

// Info logs the entry at info level
func (e *Entry) Info(args ...interface{}) {
	e.l.log(logrus.InfoLevel, e.fields, fmt.Sprint(args...))
}

// Infof logs the entry with a formatted message at info level
func (e *Entry) Infof(format string, args ...interface{}) {
	e.l.log(logrus.InfoLevel, e.fields, fmt.Sprintf(format, args...))
}

// Warn logs the entry at warning level
func (e *Entry) Warn(args ...interface{}) {
	e.l.log(logrus.WarnLevel, e.fields, fmt.Sprint(args...))
}

// Error logs the entry at error level
func (e *Entry) Error(args ...interface{}) {
	e.l.log(logrus.ErrorLevel, e.fields, fmt.Sprint(args...))
}

// Debug logs the entry at debug level
func (e *Entry) Debug(args ...interface{}) {
	e.l.log(logrus.DebugLevel, e.fields, fmt.Sprint(args...))
}

// Info logs a message through the global logger
func Info(args ...interface{}) {
	logger.log(logrus.InfoLevel, nil, fmt.Sprint(args...))
}

// Infof logs a formatted message through the global logger
func Infof(format string, args ...interface{}) {
	logger.log(logrus.InfoLevel, nil, fmt.Sprintf(format, args...))
}

// Warn logs a warning through the global logger
func Warn(args ...interface{}) {
	logger.log(logrus.WarnLevel, nil, fmt.Sprint(args...))
}

// Warnf logs a formatted warning through the global logger
func Warnf(format string, args ...interface{}) {
	logger.log(logrus.WarnLevel, nil, fmt.Sprintf(format, args...))
}

// Error logs an error message through the global logger
func Error(args ...interface{}) {
	logger.log(logrus.ErrorLevel, nil, fmt.Sprint(args...))
}

// Errorf logs a formatted error message through the global logger
func Errorf(format string, args ...interface{}) {
	logger.log(logrus.ErrorLevel, nil, fmt.Sprintf(format, args...))
}

// Debug logs a debug message through the global logger
func Debug(args ...interface{}) {
	logger.log(logrus.DebugLevel, nil, fmt.Sprint(args...))
}

// Debugf logs a formatted debug message through the global logger
func Debugf(format string, args ...interface{}) {
	logger.log(logrus.DebugLevel, nil, fmt.Sprintf(format, args...))
}

// LogWithFields returns a global-logger entry carrying the given fields
func LogWithFields(fields ...Field) *Entry {
	return logger.With(fields...)
}

// LogWithError returns a global-logger entry annotated with err
func LogWithError(err error) *Entry {
	return logger.WithError(err)
}

// LogError logs err with an accompanying message through the global
// logger
func LogError(err error, msg string) {
	logger.WithError(err).Error(msg)
}

// textFormatter renders entries as
// [2006-01-02 15:04:05] LEVEL: message key=value ...
type textFormatter struct{}

func (f *textFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s: %s",
		e.Time.Format("2006-01-02 15:04:05"),
		strings.ToUpper(e.Level.String()),
		e.Message)
	for _, k := range sortedKeys(e.Data) {
		fmt.Fprintf(&b, " %s=%v", k, e.Data[k])
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// jsonFormatter renders entries as one JSON object per line
type jsonFormatter struct{}

func (f *jsonFormatter) Format(e *logrus.Entry) ([]byte, error) {
	entry := map[string]interface{}{
		"timestamp": e.Time.Format("2006-01-02 15:04:05"),
		"level":     strings.ToUpper(e.Level.String()),
		"message":   e.Message,
	}
	for k, v := range e.Data {
		entry[k] = v
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func sortedKeys(data logrus.Fields) []string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
