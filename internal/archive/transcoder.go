package archive

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"hopd/internal/config"
	"hopd/internal/errors"
	"hopd/internal/log"
	"hopd/internal/run"
	"hopd/pkg/types"
)

// defaultEntryLimit caps how many extracted entries a report lists
const defaultEntryLimit = 10

// Transcoder extracts and creates archives by driving external tools
// through a Runner. It never changes the working directory; extraction
// lands wherever the process currently is, which is what the
// interactive layer expects.
type Transcoder struct {
	runner     run.Runner
	table      *Table
	entryLimit int
}

// New creates a Transcoder using the default format table
func New(runner run.Runner) *Transcoder {
	return &Transcoder{
		runner:     runner,
		table:      DefaultTable(),
		entryLimit: defaultEntryLimit,
	}
}

// NewFromConfig creates a Transcoder with the configured tool
// overrides and entry limit applied
func NewFromConfig(cfg *config.Config, runner run.Runner) *Transcoder {
	t := New(runner)
	t.SetToolOverrides(cfg.Archive.Tools)
	t.SetEntryLimit(cfg.Archive.EntryLimit)
	return t
}

// Table exposes the format registry, for the formats listing and the
// watch daemon's suffix checks
func (t *Transcoder) Table() *Table {
	return t.table
}

// SetToolOverrides replaces default tool binaries, keyed by default
// name
func (t *Transcoder) SetToolOverrides(tools map[string]string) {
	t.table.OverrideTools(tools)
}

// SetEntryLimit changes how many extracted entries a report lists
func (t *Transcoder) SetEntryLimit(limit int) {
	if limit > 0 {
		t.entryLimit = limit
	}
}

// Availability probes for every tool the format table references and
// reports which ones are installed. Overridden tool names are probed
// as configured.
func (t *Transcoder) Availability() map[string]bool {
	avail := make(map[string]bool)
	for _, f := range t.table.Formats() {
		for _, tool := range []string{f.ExtractTool, f.CompressTool, f.ListTool} {
			if tool == "" {
				continue
			}
			if _, seen := avail[tool]; seen {
				continue
			}
			_, err := t.runner.LookPath(tool)
			avail[tool] = err == nil
		}
	}
	return avail
}

// Extract unpacks the archive at path into the current directory and
// reports what was extracted. Validation happens before any tool runs:
// the path must name a regular file with a recognized suffix, and the
// extraction tool must be installed.
func (t *Transcoder) Extract(ctx context.Context, path string) (*types.ExtractionReport, error) {
	return t.extract(ctx, path, "")
}

// ExtractInto unpacks the archive at path into dir instead of the
// current directory. The watch daemon uses this so extraction lands
// next to the archive (or under a configured destination) no matter
// where the daemon process happens to be.
func (t *Transcoder) ExtractInto(ctx context.Context, path, dir string) (*types.ExtractionReport, error) {
	return t.extract(ctx, path, dir)
}

func (t *Transcoder) extract(ctx context.Context, path, dir string) (*types.ExtractionReport, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.NewKind("missing archive path", errors.MissingArgument)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.NewFileError("not a regular file", path, errors.NotAFile, err)
	}
	if !info.Mode().IsRegular() {
		return nil, errors.NewFileError("not a regular file", path, errors.NotAFile, nil)
	}

	format, suffix, ok := t.table.Match(path)
	if !ok {
		return nil, errors.NewFileError("unsupported archive format", path, errors.UnsupportedFormat, nil)
	}

	if _, err := t.runner.LookPath(format.ExtractTool); err != nil {
		return nil, errors.NewCommandError("extraction tool not installed", format.ExtractTool, errors.ToolNotFound, err)
	}

	// The tool resolves the archive relative to its own working
	// directory, so extraction into another directory needs the
	// absolute path.
	toolPath := path
	if dir != "" {
		if abs, err := filepath.Abs(path); err == nil {
			toolPath = abs
		}
	}

	// Infer the top-level directory before extraction when the format
	// can be listed; otherwise guess from the filename.
	target := t.inferTarget(ctx, format, toolPath, suffix)

	log.LogWithFields(log.F("archive", path), log.F("format", format.Name)).Debug("extracting archive")

	cmd := run.Command{Name: format.ExtractTool, Args: format.extract(toolPath), Dir: dir}
	res, err := t.runner.Run(ctx, cmd)
	if err != nil {
		return nil, errors.NewCommandError("extraction failed", format.ExtractTool, errors.ExtractionFailed, err)
	}
	if res.ExitCode != 0 {
		cmdErr := errors.NewCommandError(extractFailureMessage(res.Stderr), format.ExtractTool, errors.ExtractionFailed, nil)
		return nil, cmdErr.WithExitStatus(res.ExitCode)
	}

	report := &types.ExtractionReport{
		Archive: path,
		Format:  format.Name,
		Tool:    format.ExtractTool,
	}
	if target != "" {
		report.TargetDir = target
		if dir != "" {
			report.TargetDir = filepath.Join(dir, target)
		}
		report.Entries, report.Remaining = t.listExtracted(report.TargetDir)
	}
	return report, nil
}

// inferTarget determines where extraction will land. Listable formats
// are introspected first; when the listing shows a single shared
// top-level entry that entry is the target, and when it shows scattered
// entries there is no target to report. Formats that cannot be listed,
// and listings that fail, fall back to the filename with its suffix
// stripped. Listing failures are never fatal; extraction still
// proceeds.
func (t *Transcoder) inferTarget(ctx context.Context, format *Format, path, suffix string) string {
	if format.CanList() {
		if _, err := t.runner.LookPath(format.ListTool); err == nil {
			res, err := t.runner.Run(ctx, run.Command{Name: format.ListTool, Args: format.list(path)})
			if err == nil && res.ExitCode == 0 {
				return topLevelEntry(format.parse(res.Stdout))
			}
		}
		log.LogWithFields(log.F("archive", path)).Debug("archive listing failed, falling back to suffix strip")
	}
	return StripSuffix(path, suffix)
}

// listExtracted reads the extracted directory and returns up to
// entryLimit names plus the count of what was left out
func (t *Transcoder) listExtracted(target string) ([]string, int) {
	dirEntries, err := os.ReadDir(target)
	if err != nil {
		return nil, 0
	}
	var names []string
	for i, entry := range dirEntries {
		if i >= t.entryLimit {
			break
		}
		name := entry.Name()
		if entry.IsDir() {
			name += "/"
		}
		names = append(names, name)
	}
	remaining := len(dirEntries) - len(names)
	if remaining < 0 {
		remaining = 0
	}
	return names, remaining
}

// Compress creates an archive at out from the given inputs in one tool
// invocation. Every input is checked for existence before the tool
// runs, so a missing input never leaves a partial archive behind.
func (t *Transcoder) Compress(ctx context.Context, out string, inputs []string) (*types.CompressionReport, error) {
	if strings.TrimSpace(out) == "" || len(inputs) == 0 {
		return nil, errors.NewKind("missing archive path or inputs", errors.MissingArgument)
	}

	for _, input := range inputs {
		if _, err := os.Stat(input); err != nil {
			return nil, errors.NewFileError("input not found", input, errors.InputNotFound, err)
		}
	}

	format, _, ok := t.table.Match(out)
	if !ok {
		return nil, errors.NewFileError("unsupported archive format", out, errors.UnsupportedFormat, nil)
	}
	if !format.CanCompress() {
		return nil, errors.NewFileError("format supports extraction only", out, errors.UnsupportedFormat, nil)
	}

	if _, err := t.runner.LookPath(format.CompressTool); err != nil {
		return nil, errors.NewCommandError("compression tool not installed", format.CompressTool, errors.ToolNotFound, err)
	}

	log.LogWithFields(log.F("archive", out), log.F("inputs", len(inputs))).Debug("creating archive")

	cmd := run.Command{Name: format.CompressTool, Args: format.compress(out, inputs)}
	res, err := t.runner.Run(ctx, cmd)
	if err != nil {
		return nil, errors.NewCommandError("compression failed", format.CompressTool, errors.CompressionFailed, err)
	}
	if res.ExitCode != 0 {
		cmdErr := errors.NewCommandError(compressFailureMessage(res.Stderr), format.CompressTool, errors.CompressionFailed, nil)
		return nil, cmdErr.WithExitStatus(res.ExitCode)
	}

	report := &types.CompressionReport{
		Archive: out,
		Format:  format.Name,
		Tool:    format.CompressTool,
		Inputs:  inputs,
	}
	if info, err := os.Stat(out); err == nil {
		report.Size = uint64(info.Size())
	}
	return report, nil
}

func extractFailureMessage(stderr string) string {
	if line := lastLine(stderr); line != "" {
		return "extraction failed: " + line
	}
	return "extraction failed"
}

func compressFailureMessage(stderr string) string {
	if line := lastLine(stderr); line != "" {
		return "compression failed: " + line
	}
	return "compression failed"
}

func lastLine(out string) string {
	lines := parseLines(out)
	if len(lines) == 0 {
		return ""
	}
	return lines[len(lines)-1]
}
