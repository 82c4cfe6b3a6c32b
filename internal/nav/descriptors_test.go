package nav

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMarker(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestDescribeProject(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    string
	}{
		{
			name:    "go module",
			file:    "go.mod",
			content: "module example.com/demo\n\ngo 1.23\n",
			want:    "go module example.com/demo",
		},
		{
			name:    "node package with version",
			file:    "package.json",
			content: `{"name": "webapp", "version": "2.1.0"}`,
			want:    "node package webapp@2.1.0",
		},
		{
			name:    "node package without version",
			file:    "package.json",
			content: `{"name": "webapp"}`,
			want:    "node package webapp",
		},
		{
			name:    "cargo crate",
			file:    "Cargo.toml",
			content: "[package]\nname = \"ripgrep\"\nversion = \"14.1.0\"\n",
			want:    "cargo crate ripgrep@14.1.0",
		},
		{
			name:    "python project",
			file:    "pyproject.toml",
			content: "[project]\nname = \"httpx\"\nversion = \"0.27.0\"\n",
			want:    "python project httpx@0.27.0",
		},
		{
			name:    "makefile with targets",
			file:    "Makefile",
			content: "VERSION := 1.0\n\nbuild:\n\tgo build ./...\n\ntest: build\n\tgo test ./...\n\n.PHONY: build test\n",
			want:    "makefile (2 targets)",
		},
		{
			name:    "makefile with one target",
			file:    "Makefile",
			content: "all:\n\ttrue\n",
			want:    "makefile (1 target)",
		},
		{
			name:    "makefile without targets",
			file:    "Makefile",
			content: "# nothing but variables\nCC = gcc\n",
			want:    "makefile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeMarker(t, dir, tt.file, tt.content)

			desc, found := DescribeProject(dir, defaultMarkers())
			require.True(t, found)
			assert.Equal(t, tt.want, desc)
		})
	}
}

func TestDescribeProjectFirstMarkerWins(t *testing.T) {
	dir := t.TempDir()
	writeMarker(t, dir, "package.json", `{"name": "webapp"}`)
	writeMarker(t, dir, "go.mod", "module demo\n")

	desc, found := DescribeProject(dir, defaultMarkers())
	require.True(t, found)
	assert.Equal(t, "go module demo", desc)
}

func TestDescribeProjectDegradesOnUnreadableMarker(t *testing.T) {
	dir := t.TempDir()
	writeMarker(t, dir, "package.json", "not json at all {")

	desc, found := DescribeProject(dir, defaultMarkers())
	require.True(t, found)
	assert.Equal(t, "project: package.json", desc)
}

func TestDescribeProjectWithoutMarkers(t *testing.T) {
	_, found := DescribeProject(t.TempDir(), defaultMarkers())
	assert.False(t, found)
}
