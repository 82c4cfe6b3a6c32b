package archive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLines(t *testing.T) {
	out := "demo/\ndemo/a.txt\n\ndemo/b.txt\n"
	assert.Equal(t, []string{"demo/", "demo/a.txt", "demo/b.txt"}, parseLines(out))
	assert.Nil(t, parseLines(""))
	assert.Nil(t, parseLines("\n\n"))
}

func TestParse7zList(t *testing.T) {
	out := "Path = demo\nFolder = +\n\nPath = demo/a.txt\nSize = 12\n\nPath = demo/b.txt\n"
	assert.Equal(t, []string{"demo", "demo/a.txt", "demo/b.txt"}, parse7zList(out))

	// Attribute lines that merely mention Path are not entries
	assert.Nil(t, parse7zList("Size = 12\nAttributes = A\n"))
}

func TestTopLevelEntry(t *testing.T) {
	tests := []struct {
		name    string
		entries []string
		want    string
	}{
		{"single directory", []string{"demo/", "demo/a.txt", "demo/sub/b.txt"}, "demo"},
		{"dot prefixed", []string{"./demo/", "./demo/a.txt"}, "demo"},
		{"scattered entries", []string{"a.txt", "b.txt"}, ""},
		{"mixed top levels", []string{"demo/a.txt", "other/b.txt"}, ""},
		{"single file archive", []string{"README.md"}, "README.md"},
		{"empty listing", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, topLevelEntry(tt.entries))
		})
	}
}
