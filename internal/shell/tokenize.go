package shell

import (
	"strings"

	"hopd/internal/errors"
)

// Tokenize splits a command line into words, honoring double and
// single quotes. There is no globbing, variable expansion, or escape
// handling; the shell hosts a session, it does not reimplement sh.
func Tokenize(line string) ([]string, error) {
	var tokens []string
	var current strings.Builder
	inQuote := false
	quote := rune(0)

	for _, r := range line {
		switch {
		case inQuote:
			if r == quote {
				inQuote = false
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			inQuote = true
			quote = r
		case r == ' ' || r == '\t':
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}

	if inQuote {
		return nil, errors.New("unclosed quote")
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}
	return tokens, nil
}
