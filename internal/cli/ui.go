// Package cli renders user-facing output: themed status lines, headers,
// and boxes. Colors come from the config theme so every command and the
// interactive shell share one look.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"hopd/internal/archive"
	"hopd/internal/config"
	"hopd/pkg/sysinfo"
	"hopd/pkg/types"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles derived from one theme palette
type Styles struct {
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Info     lipgloss.Style
	Header   lipgloss.Style
	Emphasis lipgloss.Style
	Muted    lipgloss.Style
	Box      lipgloss.Style
}

// StylesFromConfig builds styles from the config's effective palette
func StylesFromConfig(cfg *config.Config) Styles {
	colors := cfg.ThemeColors()
	color := func(key string) lipgloss.Color {
		return lipgloss.Color(colors[key])
	}

	return Styles{
		Success:  lipgloss.NewStyle().Foreground(color("success")),
		Error:    lipgloss.NewStyle().Foreground(color("error")),
		Warning:  lipgloss.NewStyle().Foreground(color("warning")),
		Info:     lipgloss.NewStyle().Foreground(color("info")),
		Header:   lipgloss.NewStyle().Foreground(color("primary")).Bold(true),
		Emphasis: lipgloss.NewStyle().Foreground(color("emphasis")),
		Muted:    lipgloss.NewStyle().Faint(true),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(color("border")).
			Padding(0, 1),
	}
}

// UI writes themed messages to a single output stream
type UI struct {
	out    io.Writer
	styles Styles
}

// New creates a UI writing to stdout with the config's theme
func New(cfg *config.Config) *UI {
	return NewWriter(os.Stdout, cfg)
}

// NewWriter creates a UI writing to the given stream
func NewWriter(out io.Writer, cfg *config.Config) *UI {
	return &UI{out: out, styles: StylesFromConfig(cfg)}
}

// Styles exposes the UI's style set, for components that render
// themselves (the history browser reuses these)
func (u *UI) Styles() Styles {
	return u.styles
}

// Success prints a checkmarked success line
func (u *UI) Success(format string, args ...interface{}) {
	fmt.Fprintln(u.out, u.styles.Success.Render("✓ "+fmt.Sprintf(format, args...)))
}

// Error prints a crossmarked error line
func (u *UI) Error(format string, args ...interface{}) {
	fmt.Fprintln(u.out, u.styles.Error.Render("✗ "+fmt.Sprintf(format, args...)))
}

// Warning prints a warning line
func (u *UI) Warning(format string, args ...interface{}) {
	fmt.Fprintln(u.out, u.styles.Warning.Render("! "+fmt.Sprintf(format, args...)))
}

// Info prints an informational line
func (u *UI) Info(format string, args ...interface{}) {
	fmt.Fprintln(u.out, u.styles.Info.Render("• "+fmt.Sprintf(format, args...)))
}

// Header prints a bold section header with an underline
func (u *UI) Header(text string) {
	fmt.Fprintln(u.out, u.styles.Header.Render(text))
	fmt.Fprintln(u.out, u.styles.Muted.Render(strings.Repeat("─", len(text))))
}

// Plain prints an unstyled line
func (u *UI) Plain(format string, args ...interface{}) {
	fmt.Fprintf(u.out, format+"\n", args...)
}

// Extraction prints a styled extraction report: the success line, the
// target directory, and the leading entries
func (u *UI) Extraction(r *types.ExtractionReport) {
	u.Success("extracted %s (%s)", r.Archive, r.Format)
	if r.TargetDir != "" {
		u.Plain("  into %s", u.styles.Emphasis.Render(r.TargetDir))
	}
	for _, entry := range r.Entries {
		u.Plain("  %s", u.styles.Muted.Render(entry))
	}
	if r.Remaining > 0 {
		u.Plain("  %s", u.styles.Muted.Render(fmt.Sprintf("... and %d more", r.Remaining)))
	}
}

// Compression prints a styled compression report
func (u *UI) Compression(r *types.CompressionReport) {
	plural := "s"
	if len(r.Inputs) == 1 {
		plural = ""
	}
	u.Success("created %s (%s) from %d input%s", r.Archive, r.HumanSize(), len(r.Inputs), plural)
}

// Table prints rows as columns aligned on the widest cell. Cells may
// carry ANSI styling; alignment uses the rendered width.
func (u *UI) Table(rows [][]string) {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	for _, row := range rows {
		var b strings.Builder
		for i, cell := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(cell)
			if i < len(row)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)))
			}
		}
		fmt.Fprintln(u.out, b.String())
	}
}

// FormatTable prints the archive format registry with the tools each
// format uses. When an availability map is given, tools it reports
// absent are marked missing; a nil map skips the annotation.
func (u *UI) FormatTable(formats []*archive.Format, avail map[string]bool) {
	tool := func(name string) string {
		if name == "" {
			return "-"
		}
		if avail != nil && !avail[name] {
			return u.styles.Warning.Render(name + " (missing)")
		}
		return name
	}

	rows := [][]string{{
		u.styles.Emphasis.Render("format"),
		u.styles.Emphasis.Render("suffixes"),
		u.styles.Emphasis.Render("extract"),
		u.styles.Emphasis.Render("create"),
	}}
	for _, f := range formats {
		create := "-"
		if f.CanCompress() {
			create = tool(f.CompressTool)
		}
		rows = append(rows, []string{f.Name, strings.Join(f.Suffixes, " "), tool(f.ExtractTool), create})
	}
	u.Table(rows)
}

// Sysinfo prints the collected system report, one labeled section per
// line, with multi-line tool output under its label
func (u *UI) Sysinfo(rep *sysinfo.Report) {
	if len(rep.Sections) == 0 {
		u.Warning("no system information available")
		return
	}
	for _, s := range rep.Sections {
		if strings.Contains(s.Text, "\n") {
			u.Plain("%s", u.styles.Emphasis.Render(s.Label+":"))
			u.Plain("%s", s.Text)
		} else {
			u.Plain("%s %s", u.styles.Emphasis.Render(s.Label+":"), s.Text)
		}
	}
}

// Box renders content inside a themed border
func (u *UI) Box(content string) string {
	return u.styles.Box.Render(content)
}

// PrintBox prints content inside a themed border
func (u *UI) PrintBox(content string) {
	fmt.Fprintln(u.out, u.Box(content))
}
