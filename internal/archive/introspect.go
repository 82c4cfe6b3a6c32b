package archive

import (
	"strings"
)

// parseLines splits plain listing output (tar -tf, unzip -Z1, unrar lb)
// into entry paths
func parseLines(out string) []string {
	var entries []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		entries = append(entries, line)
	}
	return entries
}

// parse7zList reads the machine-readable `7z l -ba -slt` output, one
// "Path = ..." line per entry
func parse7zList(out string) []string {
	var entries []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if path, ok := strings.CutPrefix(line, "Path = "); ok {
			entries = append(entries, path)
		}
	}
	return entries
}

// topLevelEntry returns the directory shared by every entry in the
// listing, or "" when the archive has no single top-level directory
func topLevelEntry(entries []string) string {
	top := ""
	for _, entry := range entries {
		entry = strings.TrimPrefix(entry, "./")
		if entry == "" {
			continue
		}
		first, _, _ := strings.Cut(entry, "/")
		if top == "" {
			top = first
			continue
		}
		if first != top {
			return ""
		}
	}
	return top
}
