package strength

import (
	"fmt"
	"unicode"
)

// Analyzer computes strength reports for passwords. An Analyzer is stateless
// apart from its calibration table and is safe for concurrent use.
type Analyzer struct {
	cal *Calibration
}

// NewAnalyzer creates an analyzer with the given calibration.
// A nil calibration selects the compiled-in defaults.
func NewAnalyzer(cal *Calibration) *Analyzer {
	if cal == nil {
		cal = DefaultCalibration()
	}
	return &Analyzer{cal: cal}
}

// Analyze produces a strength report for a password. It never fails: any
// string input, including the empty string, yields a well-formed report.
func (a *Analyzer) Analyze(password string) *Report {
	// Degenerate case: nothing to analyze.
	if password == "" {
		return &Report{
			Tier:            TierVeryWeak,
			Findings:        []Finding{},
			Substitutions:   []string{},
			DictionaryWords: []string{},
			CrackTime:       "Instant",
			Feedback:        []string{},
		}
	}

	entropy := computeEntropy(password)
	findings := detectPatterns(password, a.cal)
	substitutions := findSubstitutions(password)
	dictWords := findDictionaryWords(password)
	common := isCommon(password)
	counts := countCharacters(password)
	length := len([]rune(password))

	totalPenalty := 0
	for _, f := range findings {
		totalPenalty += f.Penalty
	}
	// Dictionary words are penalized once, however many matched.
	if len(dictWords) > 0 {
		totalPenalty += a.cal.DictionaryPenalty
	}

	score := entropyScore(entropy) - totalPenalty
	if score < 0 {
		score = 0
	}
	// A known-common password must never be reported as strong, whatever
	// its entropy says.
	if common && score > a.cal.CommonCeiling {
		score = a.cal.CommonCeiling
	}
	if score > 100 {
		score = 100
	}

	return &Report{
		Length:                 length,
		EntropyBits:            entropy,
		Score:                  score,
		Tier:                   tierForScore(score),
		Findings:               findings,
		Substitutions:          substitutions,
		DictionaryWords:        dictWords,
		IsCommonPassword:       common,
		CrackTime:              estimateCrackTime(entropy),
		Characters:             counts,
		MeetsBasicRequirements: meetsBasicRequirements(password, length, a.cal.MinLength),
		Feedback:               a.buildFeedback(password, length, findings, dictWords, common),
	}
}

// tierForScore maps a clamped score onto its tier. The tiers partition
// [0,100]: 0-20, 21-40, 41-60, 61-80, 81-100.
func tierForScore(score int) Tier {
	switch {
	case score <= 20:
		return TierVeryWeak
	case score <= 40:
		return TierWeak
	case score <= 60:
		return TierModerate
	case score <= 80:
		return TierStrong
	default:
		return TierVeryStrong
	}
}

func countCharacters(password string) CharacterCounts {
	var c CharacterCounts
	unique := make(map[rune]struct{})
	for _, r := range password {
		unique[r] = struct{}{}
		switch {
		case unicode.IsLower(r):
			c.Lower++
		case unicode.IsUpper(r):
			c.Upper++
		case unicode.IsDigit(r):
			c.Digit++
		default:
			c.Symbol++
		}
	}
	c.Unique = len(unique)
	return c
}

func meetsBasicRequirements(password string, length, minLength int) bool {
	p := profileCharset(password)
	return length >= minLength && p.hasLower && p.hasUpper && p.hasDigit && p.hasSymbol
}

// buildFeedback attaches one recommendation per finding kind present, plus
// common-password and length warnings and missing-class suggestions.
func (a *Analyzer) buildFeedback(password string, length int, findings []Finding, dictWords []string, common bool) []string {
	var feedback []string

	if length < a.cal.MinLength {
		feedback = append(feedback, fmt.Sprintf("Use at least %d characters", a.cal.MinLength))
	}

	if common {
		feedback = append(feedback, "Avoid common passwords")
	}

	seen := map[FindingKind]bool{}
	for _, f := range findings {
		if seen[f.Kind] {
			continue
		}
		seen[f.Kind] = true
		switch f.Kind {
		case FindingSequential:
			feedback = append(feedback, "Avoid sequential patterns (abc, 123)")
		case FindingRepeated:
			feedback = append(feedback, "Avoid repeated characters")
		case FindingKeyboard:
			feedback = append(feedback, "Avoid keyboard patterns (qwerty, asdf)")
		case FindingDate:
			feedback = append(feedback, "Avoid dates and years")
		}
	}

	if len(dictWords) > 0 {
		feedback = append(feedback, "Avoid dictionary words")
	}

	p := profileCharset(password)
	if !p.hasUpper {
		feedback = append(feedback, "Add uppercase letters")
	}
	if !p.hasLower {
		feedback = append(feedback, "Add lowercase letters")
	}
	if !p.hasDigit {
		feedback = append(feedback, "Add numbers")
	}
	if !p.hasSymbol {
		feedback = append(feedback, "Add special characters (!@#$%^&*)")
	}

	if len(feedback) == 0 {
		feedback = append(feedback, "Excellent password! Consider changing it regularly.")
	}

	return feedback
}
