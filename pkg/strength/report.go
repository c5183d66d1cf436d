// Package strength provides password strength analysis and scoring.
package strength

// Tier is the descriptive strength label derived from the final score.
type Tier string

const (
	// TierVeryWeak covers scores 0-20.
	TierVeryWeak Tier = "very_weak"
	// TierWeak covers scores 21-40.
	TierWeak Tier = "weak"
	// TierModerate covers scores 41-60.
	TierModerate Tier = "moderate"
	// TierStrong covers scores 61-80.
	TierStrong Tier = "strong"
	// TierVeryStrong covers scores 81-100.
	TierVeryStrong Tier = "very_strong"
)

// Label returns a human-readable representation of the tier.
func (t Tier) Label() string {
	switch t {
	case TierVeryWeak:
		return "Very Weak"
	case TierWeak:
		return "Weak"
	case TierModerate:
		return "Moderate"
	case TierStrong:
		return "Strong"
	case TierVeryStrong:
		return "Very Strong"
	default:
		return "Unknown"
	}
}

// FindingKind identifies the category of a detected weakness.
type FindingKind string

const (
	// FindingSequential indicates a run of consecutively increasing or
	// decreasing character codes ("abc", "321").
	FindingSequential FindingKind = "sequential"
	// FindingRepeated indicates a run of the same character ("aaa").
	FindingRepeated FindingKind = "repeated"
	// FindingKeyboard indicates a run of adjacent keys on a QWERTY row
	// ("qwerty", "asdf"), forward or reversed.
	FindingKeyboard FindingKind = "keyboard"
	// FindingDate indicates a date-like digit group (a plausible year,
	// or DDMM/MMDD-shaped sequences).
	FindingDate FindingKind = "date"
)

// Finding represents a single detected weakness in a password.
type Finding struct {
	// Kind identifies the category of weakness.
	Kind FindingKind `json:"kind"`
	// Match is the offending substring.
	Match string `json:"match"`
	// Penalty is the score deduction applied for this finding.
	Penalty int `json:"penalty"`
}

// CharacterCounts breaks down the character composition of a password.
type CharacterCounts struct {
	Lower  int `json:"lower"`
	Upper  int `json:"upper"`
	Digit  int `json:"digit"`
	Symbol int `json:"symbol"`
	// Unique is the number of distinct characters.
	Unique int `json:"unique"`
}

// Report is the result of analyzing a single password.
// A report is created once per Analyze call and never mutated afterwards.
type Report struct {
	// Length is the password length in characters.
	Length int `json:"length"`
	// EntropyBits is the estimated Shannon entropy of the password.
	EntropyBits float64 `json:"entropy_bits"`
	// Score is the final strength score (0-100).
	Score int `json:"score"`
	// Tier is the descriptive label for the score.
	Tier Tier `json:"tier"`
	// Findings contains the detected pattern weaknesses.
	Findings []Finding `json:"findings"`
	// Substitutions lists leet-speak replacements present in the password
	// ("@ -> a"). Informational only; no score deduction.
	Substitutions []string `json:"substitutions"`
	// DictionaryWords lists dictionary words found in the password,
	// including leet-disguised occurrences.
	DictionaryWords []string `json:"dictionary_words"`
	// IsCommonPassword reports membership in the embedded common-password list.
	IsCommonPassword bool `json:"is_common_password"`
	// CrackTime is a human-readable estimate of offline guessing time.
	CrackTime string `json:"crack_time"`
	// Characters breaks down the character composition.
	Characters CharacterCounts `json:"characters"`
	// MeetsBasicRequirements is true when the password is at least 8
	// characters and uses all four character classes.
	MeetsBasicRequirements bool `json:"meets_basic_requirements"`
	// Feedback provides actionable recommendations.
	Feedback []string `json:"feedback"`
}
