// Package nav implements directory navigation with a bounded history of
// previously visited directories and the contextual reporting that runs
// after each change. All state lives in an explicit Session value, so
// two sessions never share history.
package nav

// DefaultLimit is the history capacity used unless configured otherwise
const DefaultLimit = 20

// History is a bounded stack of visited directories, most recent last.
// Pushing beyond the limit evicts the oldest entry.
type History struct {
	entries []string
	limit   int
}

// NewHistory creates a history bounded to limit entries
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &History{limit: limit}
}

// Push records a directory, evicting the oldest entry once the limit is
// reached
func (h *History) Push(dir string) {
	h.entries = append(h.entries, dir)
	if len(h.entries) > h.limit {
		// keep the most recent entries
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
}

// Pop removes and returns the most recently pushed directory
func (h *History) Pop() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	last := len(h.entries) - 1
	dir := h.entries[last]
	h.entries = h.entries[:last]
	return dir, true
}

// Peek returns the most recently pushed directory without removing it
func (h *History) Peek() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	return h.entries[len(h.entries)-1], true
}

// Len returns the number of recorded directories
func (h *History) Len() int {
	return len(h.entries)
}

// Limit returns the history capacity
func (h *History) Limit() int {
	return h.limit
}

// Entries returns a copy of the recorded directories, oldest first
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Clear removes all recorded directories
func (h *History) Clear() {
	h.entries = nil
}
