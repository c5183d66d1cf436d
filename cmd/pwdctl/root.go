// Package main provides the pwdctl CLI commands.
package main

import (
	"github.com/spf13/cobra"

	"github.com/forest6511/pwdctl/pkg/strength"
)

// calibrationPath is the optional scoring calibration file, shared by the
// analyze, serve and mcp-server commands.
var calibrationPath string

var rootCmd = &cobra.Command{
	Use:   "pwdctl",
	Short: "pwdctl analyzes password strength and generates secure passwords",
	Long: `A password strength analyzer and generator built with Go.

The analyzer combines an entropy estimate, pattern detection (sequential,
repeated, keyboard and date patterns) and a common-password check into a
0-100 score with a descriptive tier and actionable feedback. Passwords are
analyzed in-process and never stored.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&calibrationPath, "calibration", "", "Path to a scoring calibration YAML file")
}

// loadCalibration resolves the --calibration flag. An empty flag selects the
// compiled-in defaults (nil calibration).
func loadCalibration() (*strength.Calibration, error) {
	if calibrationPath == "" {
		return nil, nil
	}
	return strength.LoadCalibration(calibrationPath)
}
