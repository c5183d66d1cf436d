package strength

import (
	"regexp"
	"strconv"
	"strings"
)

// minRunLength is the shortest substring reported as a pattern finding.
const minRunLength = 3

// keyboardRows are the QWERTY rows scanned for adjacency runs. Rows are
// matched case-insensitively, forward and reversed.
var keyboardRows = []string{
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
	"1234567890",
}

var digitRunPattern = regexp.MustCompile(`[0-9]+`)

// DetectPatterns scans a password for weakening structures using the default
// calibration. The checks are independent and overlapping matches of
// different kinds are all reported.
func DetectPatterns(password string) []Finding {
	return detectPatterns(password, DefaultCalibration())
}

func detectPatterns(password string, cal *Calibration) []Finding {
	findings := []Finding{}
	findings = append(findings, findSequentialRuns(password, cal)...)
	findings = append(findings, findRepeatedRuns(password, cal)...)
	findings = append(findings, findKeyboardRuns(password, cal)...)
	findings = append(findings, findDateGroups(password, cal)...)
	return findings
}

// findSequentialRuns reports maximal runs of length >= 3 whose character
// codes step by exactly +1 or -1 ("abc", "cba", "123"). Letters are matched
// case-insensitively.
func findSequentialRuns(password string, cal *Calibration) []Finding {
	var findings []Finding

	runes := []rune(strings.ToLower(password))
	orig := []rune(password)
	i := 0
	for i < len(runes)-1 {
		dir := int(runes[i+1]) - int(runes[i])
		if dir != 1 && dir != -1 {
			i++
			continue
		}
		j := i + 1
		for j < len(runes)-1 && int(runes[j+1])-int(runes[j]) == dir {
			j++
		}
		if j-i+1 >= minRunLength {
			findings = append(findings, Finding{
				Kind:    FindingSequential,
				Match:   string(orig[i : j+1]),
				Penalty: cal.penaltyFor(FindingSequential),
			})
		}
		i = j
	}

	return findings
}

// findRepeatedRuns reports maximal runs of length >= 3 of the same character.
func findRepeatedRuns(password string, cal *Calibration) []Finding {
	var findings []Finding

	runes := []rune(password)
	i := 0
	for i < len(runes) {
		j := i
		for j+1 < len(runes) && runes[j+1] == runes[i] {
			j++
		}
		if j-i+1 >= minRunLength {
			findings = append(findings, Finding{
				Kind:    FindingRepeated,
				Match:   string(runes[i : j+1]),
				Penalty: cal.penaltyFor(FindingRepeated),
			})
		}
		i = j + 1
	}

	return findings
}

// findKeyboardRuns reports substrings of length >= 3 that walk a QWERTY row
// in either direction, matched case-insensitively.
func findKeyboardRuns(password string, cal *Calibration) []Finding {
	var findings []Finding

	lower := strings.ToLower(password)
	i := 0
	for i < len(lower) {
		run := longestRowRunAt(lower, i)
		if run >= minRunLength {
			findings = append(findings, Finding{
				Kind:    FindingKeyboard,
				Match:   lower[i : i+run],
				Penalty: cal.penaltyFor(FindingKeyboard),
			})
			i += run
			continue
		}
		i++
	}

	return findings
}

// longestRowRunAt returns the length of the longest prefix of s[i:] that is a
// substring of some keyboard row, forward or reversed.
func longestRowRunAt(s string, i int) int {
	best := 0
	for _, row := range keyboardRows {
		for _, r := range []string{row, reverse(row)} {
			n := best + 1
			for i+n <= len(s) && strings.Contains(r, s[i:i+n]) {
				best = n
				n++
			}
		}
	}
	return best
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// findDateGroups reports digit groups of length 4-8 that look like dates:
// a year in a plausible range, or day/month pairs.
func findDateGroups(password string, cal *Calibration) []Finding {
	var findings []Finding

	for _, group := range digitRunPattern.FindAllString(password, -1) {
		if len(group) < 4 || len(group) > 8 {
			continue
		}
		if looksLikeDate(group) {
			findings = append(findings, Finding{
				Kind:    FindingDate,
				Match:   group,
				Penalty: cal.penaltyFor(FindingDate),
			})
		}
	}

	return findings
}

// looksLikeDate applies shape heuristics to a digit group. Odd lengths do not
// fit any day/month pairing and are never dates.
func looksLikeDate(digits string) bool {
	switch len(digits) {
	case 4:
		// A plausible year, DDMM or MMDD.
		return plausibleYear(digits) ||
			dayMonthPair(digits[:2], digits[2:]) ||
			dayMonthPair(digits[2:], digits[:2])
	case 6:
		// DDMMYY, MMDDYY or YYMMDD.
		return dayMonthPair(digits[:2], digits[2:4]) ||
			dayMonthPair(digits[2:4], digits[:2]) ||
			dayMonthPair(digits[4:], digits[2:4])
	case 8:
		// DDMMYYYY, MMDDYYYY or YYYYMMDD.
		return (plausibleYear(digits[4:]) && dayMonthPair(digits[:2], digits[2:4])) ||
			(plausibleYear(digits[4:]) && dayMonthPair(digits[2:4], digits[:2])) ||
			(plausibleYear(digits[:4]) && dayMonthPair(digits[6:], digits[4:6]))
	default:
		return false
	}
}

func plausibleYear(digits string) bool {
	year, err := strconv.Atoi(digits)
	if err != nil {
		return false
	}
	return year >= 1900 && year <= 2099
}

// dayMonthPair reports whether dd/mm form a valid day and month.
func dayMonthPair(dd, mm string) bool {
	day, err := strconv.Atoi(dd)
	if err != nil {
		return false
	}
	month, err := strconv.Atoi(mm)
	if err != nil {
		return false
	}
	return day >= 1 && day <= 31 && month >= 1 && month <= 12
}
