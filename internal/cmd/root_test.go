package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hopd/internal/config"
	"hopd/internal/errors"
	"hopd/pkg/testutils"
)

// quietConfig keeps commands from reporting or shelling out, so tests
// stay deterministic on any machine.
const quietConfig = `navigation:
  verbose: false
report:
  git_status: false
  project_markers: false
`

// writeConfig drops a config file into a temp dir and returns its path
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

// chdirTemp moves the process into a fresh temp directory for the
// duration of the test and returns it
func chdirTemp(t *testing.T) string {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(orig) })
	wd, err := os.Getwd()
	require.NoError(t, err)
	return wd
}

// execute runs the command tree with the given arguments and returns
// the combined output with styling stripped
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfgFile = ""

	root := NewRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)

	err := root.Execute()
	return testutils.StripANSI(buf.String()), err
}

func TestRootListsSubcommands(t *testing.T) {
	root := NewRootCmd()

	var names []string
	for _, sub := range root.Commands() {
		names = append(names, sub.Name())
	}

	for _, want := range []string{
		"cd", "back", "toggle-cd-verbose",
		"extract", "compress", "formats",
		"shell", "watch", "browse",
		"info", "calc", "genpass", "themes",
	} {
		assert.Contains(t, names, want)
	}
}

func TestCdCommand(t *testing.T) {
	cfgPath := writeConfig(t, quietConfig)
	start := chdirTemp(t)
	require.NoError(t, os.Mkdir(filepath.Join(start, "dest"), 0755))

	out, err := execute(t, "--config", cfgPath, "cd", "dest")

	require.NoError(t, err)
	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(start, "dest"), wd)
	assert.Empty(t, strings.TrimSpace(out))
}

func TestCdCommandReportsDestination(t *testing.T) {
	cfgPath := writeConfig(t, "report:\n  git_status: false\n  project_markers: false\n")
	start := chdirTemp(t)
	dest := filepath.Join(start, "dest")
	require.NoError(t, os.Mkdir(dest, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dest, "notes.txt"), []byte("x"), 0644))

	out, err := execute(t, "--config", cfgPath, "cd", "dest")

	require.NoError(t, err)
	assert.Contains(t, out, "  notes.txt")
}

func TestCdCommandQuietFlag(t *testing.T) {
	cfgPath := writeConfig(t, "report:\n  git_status: false\n  project_markers: false\n")
	start := chdirTemp(t)
	dest := filepath.Join(start, "dest")
	require.NoError(t, os.Mkdir(dest, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dest, "notes.txt"), []byte("x"), 0644))

	out, err := execute(t, "--config", cfgPath, "cd", "--quiet", "dest")

	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(out))
}

func TestCdCommandFailsOnMissingTarget(t *testing.T) {
	cfgPath := writeConfig(t, quietConfig)
	chdirTemp(t)

	_, err := execute(t, "--config", cfgPath, "cd", "no-such-dir")

	require.Error(t, err)
	assert.True(t, errors.IsDirectoryChangeFailed(err))
}

func TestCdCommandRejectsExtraArguments(t *testing.T) {
	cfgPath := writeConfig(t, quietConfig)

	_, err := execute(t, "--config", cfgPath, "cd", "one", "two")

	require.Error(t, err)
}

func TestBackCommandFailsOnEmptyHistory(t *testing.T) {
	cfgPath := writeConfig(t, quietConfig)

	_, err := execute(t, "--config", cfgPath, "back")

	require.Error(t, err)
	assert.True(t, errors.IsEmptyHistory(err))
}

func TestToggleVerbosePersists(t *testing.T) {
	cfgPath := writeConfig(t, "navigation:\n  verbose: true\n")

	out, err := execute(t, "--config", cfgPath, "toggle-cd-verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "cd verbose reporting off")

	saved, err := config.LoadConfigFile(cfgPath)
	require.NoError(t, err)
	assert.False(t, saved.Navigation.Verbose)

	out, err = execute(t, "--config", cfgPath, "toggle-cd-verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "cd verbose reporting on")

	saved, err = config.LoadConfigFile(cfgPath)
	require.NoError(t, err)
	assert.True(t, saved.Navigation.Verbose)
}

func TestExtractCommandRequiresArgument(t *testing.T) {
	cfgPath := writeConfig(t, quietConfig)

	_, err := execute(t, "--config", cfgPath, "extract")

	require.Error(t, err)
}

func TestExtractCommandRejectsUnknownSuffix(t *testing.T) {
	cfgPath := writeConfig(t, quietConfig)
	path := filepath.Join(t.TempDir(), "payload.xyz")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	_, err := execute(t, "--config", cfgPath, "extract", path)

	require.Error(t, err)
	assert.True(t, errors.IsUnsupportedFormat(err))
}

func TestExtractCommandRejectsMissingFile(t *testing.T) {
	cfgPath := writeConfig(t, quietConfig)
	path := filepath.Join(t.TempDir(), "gone.tar.gz")

	_, err := execute(t, "--config", cfgPath, "extract", path)

	require.Error(t, err)
	assert.True(t, errors.IsNotAFile(err))
}

func TestCompressCommandRequiresInputs(t *testing.T) {
	cfgPath := writeConfig(t, quietConfig)

	_, err := execute(t, "--config", cfgPath, "compress", "out.zip")

	require.Error(t, err)
}

func TestCompressCommandRejectsMissingInput(t *testing.T) {
	cfgPath := writeConfig(t, quietConfig)
	dir := t.TempDir()

	_, err := execute(t, "--config", cfgPath, "compress",
		filepath.Join(dir, "out.zip"), filepath.Join(dir, "gone.txt"))

	require.Error(t, err)
	assert.True(t, errors.IsInputNotFound(err))
}

func TestFormatsCommandPrintsTable(t *testing.T) {
	cfgPath := writeConfig(t, quietConfig)

	out, err := execute(t, "--config", cfgPath, "formats")

	require.NoError(t, err)
	assert.Contains(t, out, "format")
	assert.Contains(t, out, "suffixes")
	assert.Contains(t, out, "tar+bzip2")
	assert.Contains(t, out, ".tbz2")
}

func TestThemesCommandMarksActive(t *testing.T) {
	cfgPath := writeConfig(t, "theme:\n  name: ocean\n")

	out, err := execute(t, "--config", cfgPath, "themes")

	require.NoError(t, err)
	assert.Contains(t, out, "ocean (active)")
	assert.Contains(t, out, "monochrome")
	assert.NotContains(t, out, "monochrome (active)")
}

func TestThemesCommandSetsTheme(t *testing.T) {
	cfgPath := writeConfig(t, quietConfig)

	out, err := execute(t, "--config", cfgPath, "themes", "sunset")

	require.NoError(t, err)
	assert.Contains(t, out, "theme set to sunset")

	saved, err := config.LoadConfigFile(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "sunset", saved.Theme.Name)
}

func TestThemesCommandRejectsUnknownTheme(t *testing.T) {
	cfgPath := writeConfig(t, quietConfig)

	_, err := execute(t, "--config", cfgPath, "themes", "neon")

	require.Error(t, err)
	assert.True(t, errors.IsInvalidConfig(err))
}

func TestGenpassCommand(t *testing.T) {
	cfgPath := writeConfig(t, quietConfig)

	out, err := execute(t, "--config", cfgPath, "genpass", "-n", "3", "-l", "10")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Len(t, line, 10)
	}
}

func TestCalcCommandRequiresExpression(t *testing.T) {
	cfgPath := writeConfig(t, quietConfig)

	_, err := execute(t, "--config", cfgPath, "calc")

	require.Error(t, err)
}

func TestBrokenConfigFallsBackToDefaults(t *testing.T) {
	cfgPath := writeConfig(t, "navigation: [nonsense\n")

	out, err := execute(t, "--config", cfgPath, "themes")

	require.NoError(t, err)
	assert.Contains(t, out, "continuing with default settings")
	assert.Contains(t, out, "default (active)")
}
