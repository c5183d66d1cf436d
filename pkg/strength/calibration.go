package strength

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Calibration is the versioned table of scoring constants. The defaults are
// the documented reference values; deployments may override them from a YAML
// file so that tuning never requires a rebuild.
//
// Reference values (version 1):
//   - sequential_penalty: 15
//   - repeated_penalty:   15
//   - keyboard_penalty:   10
//   - date_penalty:       5
//   - dictionary_penalty: 15
//   - common_ceiling:     10
//   - min_length:         8
type Calibration struct {
	Version           int `yaml:"version"`
	SequentialPenalty int `yaml:"sequential_penalty"`
	RepeatedPenalty   int `yaml:"repeated_penalty"`
	KeyboardPenalty   int `yaml:"keyboard_penalty"`
	DatePenalty       int `yaml:"date_penalty"`
	// DictionaryPenalty is deducted once when the password contains any
	// dictionary word, plain or leet-disguised.
	DictionaryPenalty int `yaml:"dictionary_penalty"`
	// CommonCeiling is the maximum score a password found in the
	// common-password list may receive.
	CommonCeiling int `yaml:"common_ceiling"`
	// MinLength is the length below which a too-short warning is attached.
	MinLength int `yaml:"min_length"`
}

// CalibrationVersion is the calibration file format version this build understands.
const CalibrationVersion = 1

// ErrCalibrationNotFound is returned when no calibration file exists at the given path.
var ErrCalibrationNotFound = errors.New("calibration file not found")

// DefaultCalibration returns the compiled-in reference calibration.
func DefaultCalibration() *Calibration {
	return &Calibration{
		Version:           CalibrationVersion,
		SequentialPenalty: 15,
		RepeatedPenalty:   15,
		KeyboardPenalty:   10,
		DatePenalty:       5,
		DictionaryPenalty: 15,
		CommonCeiling:     10,
		MinLength:         8,
	}
}

// LoadCalibration reads and validates a calibration file.
func LoadCalibration(path string) (*Calibration, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrCalibrationNotFound
		}
		return nil, fmt.Errorf("failed to read calibration file: %w", err)
	}

	var cal Calibration
	if err := yaml.Unmarshal(content, &cal); err != nil {
		return nil, fmt.Errorf("failed to parse calibration file: %w", err)
	}

	if cal.Version != CalibrationVersion {
		return nil, fmt.Errorf("unsupported calibration version: %d", cal.Version)
	}

	if err := cal.validate(); err != nil {
		return nil, err
	}

	return &cal, nil
}

func (c *Calibration) validate() error {
	for name, v := range map[string]int{
		"sequential_penalty": c.SequentialPenalty,
		"repeated_penalty":   c.RepeatedPenalty,
		"keyboard_penalty":   c.KeyboardPenalty,
		"date_penalty":       c.DatePenalty,
		"dictionary_penalty": c.DictionaryPenalty,
	} {
		if v < 0 {
			return fmt.Errorf("invalid calibration: %s must not be negative", name)
		}
	}
	if c.CommonCeiling < 0 || c.CommonCeiling > 100 {
		return fmt.Errorf("invalid calibration: common_ceiling must be in [0,100], got %d", c.CommonCeiling)
	}
	if c.MinLength < 1 {
		return fmt.Errorf("invalid calibration: min_length must be at least 1, got %d", c.MinLength)
	}
	return nil
}

// penaltyFor returns the configured penalty for a finding kind.
func (c *Calibration) penaltyFor(kind FindingKind) int {
	switch kind {
	case FindingSequential:
		return c.SequentialPenalty
	case FindingRepeated:
		return c.RepeatedPenalty
	case FindingKeyboard:
		return c.KeyboardPenalty
	case FindingDate:
		return c.DatePenalty
	default:
		return 0
	}
}
