// Package passgen generates random passwords from crypto/rand.
package passgen

import (
	"crypto/rand"
	"math/big"
	"strings"

	"hopd/internal/errors"
)

// DefaultLength is the password length used unless requested otherwise
const DefaultLength = 20

const (
	letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits  = "0123456789"
	symbols = "!@#$%^&*()-_=+[]{}<>?"
)

// Options control the generated passwords
type Options struct {
	// Length is the number of characters per password
	Length int
	// Symbols includes punctuation in the alphabet when true
	Symbols bool
}

// DefaultOptions returns the standard generation settings
func DefaultOptions() Options {
	return Options{Length: DefaultLength, Symbols: true}
}

// Generate returns one password drawn uniformly from the selected
// alphabet
func Generate(opts Options) (string, error) {
	if opts.Length < 1 {
		return "", errors.Newf("password length must be at least 1, got %d", opts.Length)
	}

	alphabet := letters + digits
	if opts.Symbols {
		alphabet += symbols
	}

	var b strings.Builder
	b.Grow(opts.Length)
	max := big.NewInt(int64(len(alphabet)))
	for i := 0; i < opts.Length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", errors.Wrap(err, "random source unavailable")
		}
		b.WriteByte(alphabet[n.Int64()])
	}
	return b.String(), nil
}
