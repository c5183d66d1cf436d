// Package generator produces cryptographically secure random passwords.
package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Character set constants.
const (
	charsetLowercase = "abcdefghijklmnopqrstuvwxyz"
	charsetUppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	charsetDigits    = "0123456789"
	charsetSymbols   = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// ErrInvalidConfig is returned when the requested length is non-positive or
// the resulting character set is empty.
var ErrInvalidConfig = errors.New("invalid generator configuration")

// Options selects which character classes participate in generation.
// Each class is independently togglable.
type Options struct {
	Lower   bool
	Upper   bool
	Digits  bool
	Symbols bool
	// Exclude lists characters to strip from the final set, e.g. "0O1lI"
	// to avoid ambiguous characters.
	Exclude string
}

// AllClasses returns options with every character class enabled.
func AllClasses() Options {
	return Options{Lower: true, Upper: true, Digits: true, Symbols: true}
}

// Generate produces a random password of exactly the requested length, each
// character selected independently and uniformly from the enabled classes
// using crypto/rand.
func Generate(length int, opts Options) (string, error) {
	if length < 1 {
		return "", fmt.Errorf("%w: length must be at least 1, got %d", ErrInvalidConfig, length)
	}

	charset, err := buildCharset(opts)
	if err != nil {
		return "", err
	}

	charsetLen := big.NewInt(int64(len(charset)))
	password := make([]byte, length)
	for i := 0; i < length; i++ {
		idx, err := rand.Int(rand.Reader, charsetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		password[i] = charset[idx.Int64()]
	}

	return string(password), nil
}

// buildCharset assembles the character set from the enabled classes.
func buildCharset(opts Options) (string, error) {
	var charset strings.Builder

	if opts.Lower {
		charset.WriteString(charsetLowercase)
	}
	if opts.Upper {
		charset.WriteString(charsetUppercase)
	}
	if opts.Digits {
		charset.WriteString(charsetDigits)
	}
	if opts.Symbols {
		charset.WriteString(charsetSymbols)
	}

	result := charset.String()
	if opts.Exclude != "" {
		result = removeChars(result, opts.Exclude)
	}

	if result == "" {
		return "", fmt.Errorf("%w: character set is empty, enable at least one character class", ErrInvalidConfig)
	}

	return result, nil
}

// removeChars removes specified characters from a string.
func removeChars(s, chars string) string {
	excludeSet := make(map[rune]bool)
	for _, c := range chars {
		excludeSet[c] = true
	}

	var result strings.Builder
	for _, c := range s {
		if !excludeSet[c] {
			result.WriteRune(c)
		}
	}
	return result.String()
}
