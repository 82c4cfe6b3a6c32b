package types

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// ExtractionReport summarizes a successful archive extraction
type ExtractionReport struct {
	Archive   string   `json:"archive"`
	Format    string   `json:"format"`
	Tool      string   `json:"tool"`
	TargetDir string   `json:"target_dir,omitempty"`
	Entries   []string `json:"entries,omitempty"`
	Remaining int      `json:"remaining,omitempty"`
}

// ToJSON converts the report to a JSON string
func (r *ExtractionReport) ToJSON() string {
	jsonBytes, _ := json.Marshal(r)
	return string(jsonBytes)
}

// String returns a human-readable representation
func (r *ExtractionReport) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Extracted %s (%s)", r.Archive, r.Format))
	if r.TargetDir != "" {
		sb.WriteString(fmt.Sprintf(" into %s", r.TargetDir))
	}
	sb.WriteString("\n")
	for _, entry := range r.Entries {
		sb.WriteString(fmt.Sprintf("  %s\n", entry))
	}
	if r.Remaining > 0 {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", r.Remaining))
	}
	return sb.String()
}

// CompressionReport summarizes a successful archive creation
type CompressionReport struct {
	Archive string   `json:"archive"`
	Format  string   `json:"format"`
	Tool    string   `json:"tool"`
	Inputs  []string `json:"inputs"`
	Size    uint64   `json:"size"`
}

// ToJSON converts the report to a JSON string
func (r *CompressionReport) ToJSON() string {
	jsonBytes, _ := json.Marshal(r)
	return string(jsonBytes)
}

// HumanSize returns the archive size in human-readable form
func (r *CompressionReport) HumanSize() string {
	return humanize.Bytes(r.Size)
}

// String returns a human-readable representation
func (r *CompressionReport) String() string {
	plural := "s"
	if len(r.Inputs) == 1 {
		plural = ""
	}
	return fmt.Sprintf("Created %s (%s) from %d input%s\n", r.Archive, r.HumanSize(), len(r.Inputs), plural)
}
