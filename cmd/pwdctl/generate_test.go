package main

import (
	"strings"
	"testing"
)

func TestValidateGenerateFlags(t *testing.T) {
	tests := []struct {
		name        string
		length      int
		count       int
		exclude     string
		expectError bool
	}{
		{
			name:        "valid defaults",
			length:      defaultPasswordLength,
			count:       defaultPasswordCount,
			exclude:     "",
			expectError: false,
		},
		{
			name:        "minimum length",
			length:      1,
			count:       1,
			exclude:     "",
			expectError: false,
		},
		{
			name:        "maximum length",
			length:      maxPasswordLength,
			count:       1,
			exclude:     "",
			expectError: false,
		},
		{
			name:        "length zero",
			length:      0,
			count:       1,
			exclude:     "",
			expectError: true,
		},
		{
			name:        "length too long",
			length:      maxPasswordLength + 1,
			count:       1,
			exclude:     "",
			expectError: true,
		},
		{
			name:        "count zero",
			length:      16,
			count:       0,
			exclude:     "",
			expectError: true,
		},
		{
			name:        "count too high",
			length:      16,
			count:       maxPasswordCount + 1,
			exclude:     "",
			expectError: true,
		},
		{
			name:        "maximum count",
			length:      16,
			count:       maxPasswordCount,
			exclude:     "",
			expectError: false,
		},
		{
			name:        "exclude too long",
			length:      16,
			count:       1,
			exclude:     strings.Repeat("a", maxExcludeLength+1),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origLength, origCount, origExclude := generateLength, generateCount, generateExclude
			defer func() {
				generateLength, generateCount, generateExclude = origLength, origCount, origExclude
			}()

			generateLength = tt.length
			generateCount = tt.count
			generateExclude = tt.exclude

			err := validateGenerateFlags()
			if tt.expectError && err == nil {
				t.Error("expected an error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
