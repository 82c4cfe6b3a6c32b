package nav

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Marker associates a project marker file with the function that
// renders its one-line descriptor. A descriptor of "" means the marker
// was present but unreadable.
type Marker struct {
	File     string
	Describe func(path string) string
}

// defaultMarkers returns the recognized markers in priority order; the
// first file present in a directory wins
func defaultMarkers() []Marker {
	return []Marker{
		{File: "go.mod", Describe: describeGoModule},
		{File: "package.json", Describe: describeNodePackage},
		{File: "Cargo.toml", Describe: describeCargoCrate},
		{File: "pyproject.toml", Describe: describePyProject},
		{File: "Makefile", Describe: describeMakefile},
	}
}

// DescribeProject returns a descriptor for the first marker file
// present in dir. Marker files that cannot be parsed degrade to naming
// the marker, never to an error.
func DescribeProject(dir string, markers []Marker) (string, bool) {
	for _, m := range markers {
		path := filepath.Join(dir, m.File)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		if desc := m.Describe(path); desc != "" {
			return desc, true
		}
		return "project: " + m.File, true
	}
	return "", false
}

func describeGoModule(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(data), "\n") {
		if module, ok := strings.CutPrefix(strings.TrimSpace(line), "module "); ok {
			return "go module " + strings.TrimSpace(module)
		}
	}
	return ""
}

func describeNodePackage(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	var pkg struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil || pkg.Name == "" {
		return ""
	}
	if pkg.Version == "" {
		return "node package " + pkg.Name
	}
	return fmt.Sprintf("node package %s@%s", pkg.Name, pkg.Version)
}

func describeCargoCrate(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	var manifest struct {
		Package struct {
			Name    string `toml:"name"`
			Version string `toml:"version"`
		} `toml:"package"`
	}
	if err := toml.Unmarshal(data, &manifest); err != nil || manifest.Package.Name == "" {
		return ""
	}
	if manifest.Package.Version == "" {
		return "cargo crate " + manifest.Package.Name
	}
	return fmt.Sprintf("cargo crate %s@%s", manifest.Package.Name, manifest.Package.Version)
}

func describePyProject(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	var project struct {
		Project struct {
			Name    string `toml:"name"`
			Version string `toml:"version"`
		} `toml:"project"`
	}
	if err := toml.Unmarshal(data, &project); err != nil || project.Project.Name == "" {
		return ""
	}
	if project.Project.Version == "" {
		return "python project " + project.Project.Name
	}
	return fmt.Sprintf("python project %s@%s", project.Project.Name, project.Project.Version)
}

func describeMakefile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	targets := 0
	for _, line := range strings.Split(string(data), "\n") {
		if line == "" || line[0] == '\t' || line[0] == ' ' || line[0] == '#' || line[0] == '.' {
			continue
		}
		name, rest, found := strings.Cut(line, ":")
		if !found || strings.HasPrefix(rest, "=") {
			// Not a rule; := marks a variable assignment
			continue
		}
		if strings.ContainsAny(name, " \t$=") {
			continue
		}
		targets++
	}
	if targets == 0 {
		return "makefile"
	}
	plural := "s"
	if targets == 1 {
		plural = ""
	}
	return fmt.Sprintf("makefile (%d target%s)", targets, plural)
}
