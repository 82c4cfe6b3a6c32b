package sysinfo_test

import (
	"context"
	"testing"

	"hopd/internal/run"
	"hopd/pkg/sysinfo"

	"github.com/stretchr/testify/assert"
)

func labels(r *sysinfo.Report) []string {
	out := make([]string, 0, len(r.Sections))
	for _, s := range r.Sections {
		out = append(out, s.Label)
	}
	return out
}

func section(r *sysinfo.Report, label string) (sysinfo.Section, bool) {
	for _, s := range r.Sections {
		if s.Label == label {
			return s, true
		}
	}
	return sysinfo.Section{}, false
}

func TestCollectGathersSections(t *testing.T) {
	fake := run.NewFakeRunner()
	fake.Respond("uname -sr", run.Result{Stdout: "Linux 6.1.0-hopd\n"})
	fake.Respond("uptime", run.Result{Stdout: " 10:02:17 up 3 days,  1:22,  2 users\n"})
	fake.Respond("df -h .", run.Result{Stdout: "Filesystem  Size  Used Avail Use% Mounted on\n/dev/sda1    98G   41G   52G  45% /\n"})
	fake.Respond("free -h", run.Result{Stdout: "       total  used  free\nMem:     15Gi  7Gi   8Gi\n"})

	report := sysinfo.Collect(context.Background(), fake)

	assert.Equal(t, []string{"host", "kernel", "uptime", "disk", "memory"}, labels(report))

	kernel, ok := section(report, "kernel")
	assert.True(t, ok)
	assert.Equal(t, "Linux 6.1.0-hopd", kernel.Text)

	disk, ok := section(report, "disk")
	assert.True(t, ok)
	assert.Contains(t, disk.Text, "/dev/sda1")
}

func TestCollectSkipsMissingTools(t *testing.T) {
	fake := run.NewFakeRunner()
	fake.WithoutTool("free")
	fake.Respond("uname -sr", run.Result{Stdout: "Linux 6.1.0-hopd\n"})

	report := sysinfo.Collect(context.Background(), fake)

	_, ok := section(report, "memory")
	assert.False(t, ok, "missing tool should drop its section")
	assert.NotContains(t, fake.CommandLines(), "free -h", "absent tools are never invoked")
}

func TestCollectSkipsFailingTools(t *testing.T) {
	fake := run.NewFakeRunner()
	fake.Respond("uname -sr", run.Result{Stdout: "Linux 6.1.0-hopd\n"})
	fake.Respond("df -h .", run.Result{ExitCode: 1, Stderr: "df: cannot read table of mounted file systems\n"})

	report := sysinfo.Collect(context.Background(), fake)

	_, ok := section(report, "disk")
	assert.False(t, ok)
}

func TestCollectSkipsEmptyOutput(t *testing.T) {
	fake := run.NewFakeRunner()

	report := sysinfo.Collect(context.Background(), fake)

	_, ok := section(report, "uptime")
	assert.False(t, ok, "a tool that prints nothing contributes nothing")
}
