// Package archive implements suffix-based archive format dispatch and
// the transcoder that drives external tools to extract and create
// archives. All tool invocations go through a run.Runner so the package
// never touches os/exec directly.
package archive

import (
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// Tool name defaults. Config can override any of them, e.g. mapping
// "7z" to "7zz" on hosts that ship the standalone build.
const (
	Tar        = "tar"
	Bunzip2    = "bunzip2"
	Gunzip     = "gunzip"
	Unzip      = "unzip"
	Zip        = "zip"
	Uncompress = "uncompress"
	Zip7       = "7z"
	Unrar      = "unrar"
)

// Format describes one archive family: the filename suffixes that
// select it and the external tools that extract, create, and list it.
// CompressTool and ListTool are empty for formats that only support
// extraction or cannot be introspected.
type Format struct {
	Name         string
	Suffixes     []string
	ExtractTool  string
	CompressTool string
	ListTool     string

	extract  func(path string) []string
	compress func(out string, inputs []string) []string
	list     func(path string) []string
	parse    func(out string) []string

	globs []glob.Glob
}

// CanCompress reports whether the format supports archive creation
func (f *Format) CanCompress() bool {
	return f.CompressTool != ""
}

// CanList reports whether the format supports entry introspection
func (f *Format) CanList() bool {
	return f.ListTool != ""
}

func (f *Format) matches(name string) bool {
	lower := strings.ToLower(name)
	for _, g := range f.globs {
		if g.Match(lower) {
			return true
		}
	}
	return false
}

func (f *Format) matchedSuffix(name string) string {
	lower := strings.ToLower(name)
	for _, suffix := range f.Suffixes {
		if strings.HasSuffix(lower, suffix) {
			return suffix
		}
	}
	return ""
}

// Table is the ordered format registry. Entries with longer suffixes
// come first so ".tar.gz" wins over ".gz" for the same filename.
type Table struct {
	formats []*Format
}

// DefaultTable builds the registry of supported formats
func DefaultTable() *Table {
	t := &Table{formats: []*Format{
		{
			Name:         "tar+bzip2",
			Suffixes:     []string{".tar.bz2", ".tbz2"},
			ExtractTool:  Tar,
			CompressTool: Tar,
			ListTool:     Tar,
			extract:      func(path string) []string { return []string{"xjf", path} },
			compress: func(out string, inputs []string) []string {
				return append([]string{"cjf", out}, inputs...)
			},
			list:  func(path string) []string { return []string{"tjf", path} },
			parse: parseLines,
		},
		{
			Name:         "tar+gzip",
			Suffixes:     []string{".tar.gz", ".tgz"},
			ExtractTool:  Tar,
			CompressTool: Tar,
			ListTool:     Tar,
			extract:      func(path string) []string { return []string{"xzf", path} },
			compress: func(out string, inputs []string) []string {
				return append([]string{"czf", out}, inputs...)
			},
			list:  func(path string) []string { return []string{"tzf", path} },
			parse: parseLines,
		},
		{
			Name:         "tar",
			Suffixes:     []string{".tar"},
			ExtractTool:  Tar,
			CompressTool: Tar,
			ListTool:     Tar,
			extract:      func(path string) []string { return []string{"xf", path} },
			compress: func(out string, inputs []string) []string {
				return append([]string{"cf", out}, inputs...)
			},
			list:  func(path string) []string { return []string{"tf", path} },
			parse: parseLines,
		},
		{
			Name:        "bzip2",
			Suffixes:    []string{".bz2"},
			ExtractTool: Bunzip2,
			extract:     func(path string) []string { return []string{path} },
		},
		{
			Name:        "gzip",
			Suffixes:    []string{".gz"},
			ExtractTool: Gunzip,
			extract:     func(path string) []string { return []string{path} },
		},
		{
			Name:         "zip",
			Suffixes:     []string{".zip"},
			ExtractTool:  Unzip,
			CompressTool: Zip,
			ListTool:     Unzip,
			extract:      func(path string) []string { return []string{"-o", path} },
			compress: func(out string, inputs []string) []string {
				return append([]string{"-r", out}, inputs...)
			},
			list:  func(path string) []string { return []string{"-Z1", path} },
			parse: parseLines,
		},
		{
			Name:        "compress",
			Suffixes:    []string{".z"},
			ExtractTool: Uncompress,
			extract:     func(path string) []string { return []string{path} },
		},
		{
			Name:         "7z",
			Suffixes:     []string{".7z"},
			ExtractTool:  Zip7,
			CompressTool: Zip7,
			ListTool:     Zip7,
			extract:      func(path string) []string { return []string{"x", "-y", path} },
			compress: func(out string, inputs []string) []string {
				return append([]string{"a", out}, inputs...)
			},
			list:  func(path string) []string { return []string{"l", "-ba", "-slt", path} },
			parse: parse7zList,
		},
		{
			Name:        "rar",
			Suffixes:    []string{".rar"},
			ExtractTool: Unrar,
			ListTool:    Unrar,
			extract:     func(path string) []string { return []string{"x", "-o+", path} },
			list:        func(path string) []string { return []string{"lb", path} },
			parse:       parseLines,
		},
	}}
	t.compile()
	return t
}

func (t *Table) compile() {
	for _, f := range t.formats {
		f.globs = f.globs[:0]
		for _, suffix := range f.Suffixes {
			f.globs = append(f.globs, glob.MustCompile("*"+suffix))
		}
	}
}

// Match returns the format matching the filename of path and the suffix
// that matched. Formats are tested in table order, so the most specific
// suffix wins.
func (t *Table) Match(path string) (*Format, string, bool) {
	name := filepath.Base(path)
	for _, f := range t.formats {
		if f.matches(name) {
			return f, f.matchedSuffix(name), true
		}
	}
	return nil, "", false
}

// Formats returns the registered formats in matching order
func (t *Table) Formats() []*Format {
	return t.formats
}

// OverrideTools replaces default tool binaries, keyed by default name
func (t *Table) OverrideTools(tools map[string]string) {
	if len(tools) == 0 {
		return
	}
	for _, f := range t.formats {
		if bin, ok := tools[f.ExtractTool]; ok {
			f.ExtractTool = bin
		}
		if bin, ok := tools[f.CompressTool]; ok && f.CompressTool != "" {
			f.CompressTool = bin
		}
		if bin, ok := tools[f.ListTool]; ok && f.ListTool != "" {
			f.ListTool = bin
		}
	}
}

// StripSuffix returns the filename of path with the matched suffix
// removed, used to guess the extraction target when a format cannot be
// introspected
func StripSuffix(path, suffix string) string {
	base := filepath.Base(path)
	if suffix == "" || len(suffix) >= len(base) {
		return base
	}
	if strings.HasSuffix(strings.ToLower(base), suffix) {
		return base[:len(base)-len(suffix)]
	}
	return base
}
