package cli

import (
	"bytes"
	"strings"
	"testing"

	"hopd/internal/archive"
	"hopd/internal/config"
	"hopd/pkg/sysinfo"
	"hopd/pkg/testutils"
	"hopd/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, fn func(u *UI)) string {
	t.Helper()
	var buf bytes.Buffer
	u := NewWriter(&buf, config.NewTestConfig())
	fn(u)
	return testutils.StripANSI(buf.String())
}

func TestStatusLines(t *testing.T) {
	out := render(t, func(u *UI) {
		u.Success("extracted %d entries", 3)
		u.Error("no such archive")
		u.Warning("tool missing")
		u.Info("using fallback")
	})

	assert.Contains(t, out, "✓ extracted 3 entries")
	assert.Contains(t, out, "✗ no such archive")
	assert.Contains(t, out, "! tool missing")
	assert.Contains(t, out, "• using fallback")
}

func TestHeaderUnderline(t *testing.T) {
	out := render(t, func(u *UI) {
		u.Header("Formats")
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, "Formats", lines[0])
	assert.Equal(t, strings.Repeat("─", len("Formats")), lines[1])
}

func TestPlain(t *testing.T) {
	out := render(t, func(u *UI) {
		u.Plain("%s -> %s", "a", "b")
	})
	assert.Equal(t, "a -> b\n", out)
}

func TestBoxWrapsContent(t *testing.T) {
	var buf bytes.Buffer
	u := NewWriter(&buf, config.NewTestConfig())

	box := testutils.StripANSI(u.Box("hop"))
	assert.Contains(t, box, "hop")
	assert.Contains(t, box, "╭")
	assert.Contains(t, box, "╰")
}

func TestExtractionReport(t *testing.T) {
	out := render(t, func(u *UI) {
		u.Extraction(&types.ExtractionReport{
			Archive:   "demo.tar.gz",
			Format:    "tar+gzip",
			TargetDir: "/tmp/demo",
			Entries:   []string{"demo/", "demo/a.txt"},
			Remaining: 4,
		})
	})

	assert.Contains(t, out, "✓ extracted demo.tar.gz (tar+gzip)")
	assert.Contains(t, out, "into /tmp/demo")
	assert.Contains(t, out, "demo/a.txt")
	assert.Contains(t, out, "... and 4 more")
}

func TestCompressionReport(t *testing.T) {
	out := render(t, func(u *UI) {
		u.Compression(&types.CompressionReport{
			Archive: "site.zip",
			Format:  "zip",
			Inputs:  []string{"index.html"},
			Size:    2048,
		})
	})

	assert.Contains(t, out, "✓ created site.zip")
	assert.Contains(t, out, "from 1 input\n")
}

func TestTableAlignsColumns(t *testing.T) {
	out := render(t, func(u *UI) {
		u.Table([][]string{
			{"zip", ".zip", "unzip"},
			{"tar+gzip", ".tar.gz .tgz", "tar"},
		})
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "zip       .zip          unzip", lines[0])
	assert.Equal(t, "tar+gzip  .tar.gz .tgz  tar", lines[1])
}

func TestFormatTableListsRegistry(t *testing.T) {
	out := render(t, func(u *UI) {
		u.FormatTable(archive.DefaultTable().Formats(), nil)
	})

	assert.Contains(t, out, "format")
	assert.Contains(t, out, "tar+bzip2")
	assert.Contains(t, out, ".tbz2")
	assert.Contains(t, out, "unrar")
	assert.NotContains(t, out, "(missing)")
}

func TestFormatTableMarksMissingTools(t *testing.T) {
	formats := archive.DefaultTable().Formats()

	avail := make(map[string]bool)
	for _, f := range formats {
		for _, tool := range []string{f.ExtractTool, f.CompressTool, f.ListTool} {
			if tool != "" {
				avail[tool] = true
			}
		}
	}
	avail["unrar"] = false

	out := render(t, func(u *UI) {
		u.FormatTable(formats, avail)
	})

	assert.Contains(t, out, "unrar (missing)")
	assert.NotContains(t, out, "tar (missing)")
}

func TestSysinfoRendering(t *testing.T) {
	rep := &sysinfo.Report{Sections: []sysinfo.Section{
		{Label: "host", Text: "devbox"},
		{Label: "disk", Text: "Filesystem  Size\n/dev/sda1    98G"},
	}}

	out := render(t, func(u *UI) { u.Sysinfo(rep) })
	assert.Contains(t, out, "host: devbox")
	assert.Contains(t, out, "disk:\nFilesystem")
}

func TestSysinfoEmptyReport(t *testing.T) {
	out := render(t, func(u *UI) { u.Sysinfo(&sysinfo.Report{}) })
	assert.Contains(t, out, "no system information available")
}
