package strength

import (
	_ "embed"
	"strings"
)

// The common-password list is a fixed set curated at build time. There is no
// live breach-database lookup and no hash-prefix checking here.
//
//go:embed data/common_passwords.txt
var commonPasswordsData string

// commonSet holds the lowercased common passwords. Initialized once at
// package load and never mutated, so it is safe for concurrent reads.
var commonSet = loadCommonSet(commonPasswordsData)

func loadCommonSet(data string) map[string]struct{} {
	lines := strings.Split(data, "\n")
	set := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		word := strings.ToLower(strings.TrimSpace(line))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		set[word] = struct{}{}
	}
	return set
}

// isCommon reports whether the password appears in the embedded
// common-password list. The lookup is case-insensitive.
func isCommon(password string) bool {
	_, ok := commonSet[strings.ToLower(password)]
	return ok
}
