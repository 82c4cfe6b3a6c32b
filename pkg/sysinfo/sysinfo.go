// Package sysinfo assembles a short system report from the usual unix
// tools. Sections whose tool is missing or failing are skipped, so the
// report degrades gracefully on minimal hosts.
package sysinfo

import (
	"context"
	"os"
	"strings"

	"hopd/internal/run"
)

// Section is one labeled block of the report. Text spans multiple lines
// for tabular tools like df and free.
type Section struct {
	Label string
	Text  string
}

// Report holds the collected sections in display order
type Report struct {
	Sections []Section
}

// probe maps one report section to the tool invocation that fills it
type probe struct {
	label string
	cmd   run.Command
}

var probes = []probe{
	{label: "kernel", cmd: run.Command{Name: "uname", Args: []string{"-sr"}}},
	{label: "uptime", cmd: run.Command{Name: "uptime"}},
	{label: "disk", cmd: run.Command{Name: "df", Args: []string{"-h", "."}}},
	{label: "memory", cmd: run.Command{Name: "free", Args: []string{"-h"}}},
}

// Collect gathers the report. The hostname comes from the kernel; every
// other section shells out through the runner and is dropped when its
// tool is absent, exits non-zero, or prints nothing.
func Collect(ctx context.Context, r run.Runner) *Report {
	report := &Report{}

	if host, err := os.Hostname(); err == nil {
		report.add("host", host)
	}

	for _, p := range probes {
		if _, err := r.LookPath(p.cmd.Name); err != nil {
			continue
		}
		res, err := r.Run(ctx, p.cmd)
		if err != nil || res.ExitCode != 0 {
			continue
		}
		report.add(p.label, strings.TrimSpace(res.Stdout))
	}

	return report
}

func (r *Report) add(label, text string) {
	if text == "" {
		return
	}
	r.Sections = append(r.Sections, Section{Label: label, Text: text})
}
