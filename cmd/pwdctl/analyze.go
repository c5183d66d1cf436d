package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/forest6511/pwdctl/pkg/strength"
)

// Analyze command flags
var analyzeJSON bool

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Output the full report in JSON format")
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [password]",
	Short: "Analyze the strength of a password",
	Long: `Analyze the strength of a password and print a report.

Without an argument, the password is read interactively without echo, or
from stdin when piped. The password is analyzed in-process and never stored.

Examples:
  # Prompt for a password without echo
  pwdctl analyze

  # Analyze a password given as an argument
  pwdctl analyze "correct horse battery staple"

  # Pipe a password in and get the raw report
  echo -n "hunter2" | pwdctl analyze --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := resolvePassword(args)
		if err != nil {
			return err
		}

		cal, err := loadCalibration()
		if err != nil {
			return fmt.Errorf("failed to load calibration: %w", err)
		}

		report := strength.NewAnalyzer(cal).Analyze(password)

		if analyzeJSON {
			return outputReportJSON(report)
		}
		outputReportText(report)
		return nil
	},
}

// resolvePassword picks the password from the argument, an interactive
// no-echo prompt, or piped stdin, in that order.
func resolvePassword(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Print("Enter password to analyze: ")
		raw, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Println()
		return string(raw), nil
	}

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read password from stdin: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func outputReportJSON(report *strength.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func outputReportText(report *strength.Report) {
	fmt.Printf("Strength: %d/100 (%s)\n", report.Score, report.Tier.Label())
	fmt.Printf("Entropy:  %.1f bits\n", report.EntropyBits)
	fmt.Printf("Crack time (offline, 10^9 guesses/s): %s\n", report.CrackTime)

	if report.IsCommonPassword {
		fmt.Println("\nThis password is in the common-password list.")
	}

	if len(report.DictionaryWords) > 0 {
		fmt.Printf("\nDictionary words: %s\n", strings.Join(report.DictionaryWords, ", "))
	}

	if len(report.Findings) > 0 {
		fmt.Printf("\nWeaknesses (%d found)\n", len(report.Findings))
		for i, f := range report.Findings {
			fmt.Printf("%d. %s: %q (-%d)\n", i+1, f.Kind, f.Match, f.Penalty)
		}
	}

	if len(report.Feedback) > 0 {
		fmt.Println("\nRecommendations:")
		for _, msg := range report.Feedback {
			fmt.Printf("   - %s\n", msg)
		}
	}
}
