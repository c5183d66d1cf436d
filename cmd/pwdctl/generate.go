package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forest6511/pwdctl/pkg/generator"
)

const (
	maxPasswordLength     = 256
	defaultPasswordLength = 16
	defaultPasswordCount  = 1
	maxPasswordCount      = 100
	maxExcludeLength      = 256
)

// Generate command flags
var (
	generateLength      int
	generateCount       int
	generateNoSymbols   bool
	generateNoNumbers   bool
	generateNoUppercase bool
	generateNoLowercase bool
	generateExclude     string
)

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntVarP(&generateLength, "length", "l", defaultPasswordLength, "Password length (1-256)")
	generateCmd.Flags().IntVarP(&generateCount, "count", "n", defaultPasswordCount, "Number of passwords to generate (1-100)")
	generateCmd.Flags().BoolVar(&generateNoSymbols, "no-symbols", false, "Exclude symbols")
	generateCmd.Flags().BoolVar(&generateNoNumbers, "no-numbers", false, "Exclude numbers")
	generateCmd.Flags().BoolVar(&generateNoUppercase, "no-uppercase", false, "Exclude uppercase letters")
	generateCmd.Flags().BoolVar(&generateNoLowercase, "no-lowercase", false, "Exclude lowercase letters")
	generateCmd.Flags().StringVar(&generateExclude, "exclude", "", "Characters to exclude")
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate secure random passwords",
	Long: `Generate cryptographically secure random passwords.

Examples:
  # Generate a 16-character password (default)
  pwdctl generate

  # Generate a 32-character password without symbols
  pwdctl generate -l 32 --no-symbols

  # Generate 5 passwords
  pwdctl generate -n 5

  # Generate a password excluding ambiguous characters
  pwdctl generate --exclude "0O1lI"`,
	RunE: executeGenerate,
}

func executeGenerate(cmd *cobra.Command, args []string) error {
	if err := validateGenerateFlags(); err != nil {
		return err
	}

	opts := generator.Options{
		Lower:   !generateNoLowercase,
		Upper:   !generateNoUppercase,
		Digits:  !generateNoNumbers,
		Symbols: !generateNoSymbols,
		Exclude: generateExclude,
	}

	for i := 0; i < generateCount; i++ {
		password, err := generator.Generate(generateLength, opts)
		if err != nil {
			return fmt.Errorf("failed to generate password: %w", err)
		}
		fmt.Println(password)
	}

	return nil
}

// validateGenerateFlags validates the generate command flags
func validateGenerateFlags() error {
	if generateLength < 1 {
		return fmt.Errorf("password length must be at least 1 character")
	}
	if generateLength > maxPasswordLength {
		return fmt.Errorf("password length must be at most %d characters", maxPasswordLength)
	}
	if generateCount < 1 {
		return fmt.Errorf("count must be at least 1")
	}
	if generateCount > maxPasswordCount {
		return fmt.Errorf("count must be at most %d", maxPasswordCount)
	}
	if len(generateExclude) > maxExcludeLength {
		return fmt.Errorf("exclude string must be at most %d characters", maxExcludeLength)
	}
	return nil
}
