package strength

import "strings"

// leetMap maps leet-speak characters to the letters they commonly stand for.
var leetMap = map[rune]rune{
	'@': 'a',
	'4': 'a',
	'8': 'b',
	'3': 'e',
	'1': 'i',
	'!': 'i',
	'0': 'o',
	'5': 's',
	'7': 't',
}

// dictionaryWords are words commonly embedded inside passwords. Matching is
// a case-insensitive substring check, with and without leet normalization.
var dictionaryWords = []string{
	"password", "admin", "user", "login", "welcome",
	"hello", "world", "test", "demo", "sample",
}

// findSubstitutions reports the leet replacements present in a password, one
// entry per distinct character in order of first occurrence.
func findSubstitutions(password string) []string {
	found := []string{}
	seen := map[rune]bool{}
	for _, r := range password {
		letter, ok := leetMap[r]
		if !ok || seen[r] {
			continue
		}
		seen[r] = true
		found = append(found, string(r)+" -> "+string(letter))
	}
	return found
}

// leetNormalize rewrites leet characters to their letter equivalents so that
// disguised words ("p4ssw0rd") still match the dictionary.
func leetNormalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if letter, ok := leetMap[r]; ok {
			b.WriteRune(letter)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// findDictionaryWords reports dictionary words contained in a password.
func findDictionaryWords(password string) []string {
	lower := strings.ToLower(password)
	normalized := leetNormalize(lower)

	found := []string{}
	for _, word := range dictionaryWords {
		if strings.Contains(lower, word) || strings.Contains(normalized, word) {
			found = append(found, word)
		}
	}
	return found
}
