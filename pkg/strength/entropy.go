package strength

import (
	"fmt"
	"math"
	"unicode"
)

// Character class sizes used for the entropy estimate. The symbol class is a
// fixed approximation of the printable symbol space.
const (
	lowerClassSize  = 26
	upperClassSize  = 26
	digitClassSize  = 10
	symbolClassSize = 32
)

// charsetProfile records which character classes are present in a password.
type charsetProfile struct {
	hasLower  bool
	hasUpper  bool
	hasDigit  bool
	hasSymbol bool
}

func profileCharset(password string) charsetProfile {
	var p charsetProfile
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			p.hasLower = true
		case unicode.IsUpper(r):
			p.hasUpper = true
		case unicode.IsDigit(r):
			p.hasDigit = true
		default:
			p.hasSymbol = true
		}
	}
	return p
}

// alphabetSize is the sum of the class sizes actually present.
func (p charsetProfile) alphabetSize() int {
	size := 0
	if p.hasLower {
		size += lowerClassSize
	}
	if p.hasUpper {
		size += upperClassSize
	}
	if p.hasDigit {
		size += digitClassSize
	}
	if p.hasSymbol {
		size += symbolClassSize
	}
	return size
}

// computeEntropy estimates the Shannon entropy of a password in bits:
// length * log2(alphabetSize). Returns 0 for an empty password.
func computeEntropy(password string) float64 {
	runes := []rune(password)
	if len(runes) == 0 {
		return 0
	}

	size := profileCharset(password).alphabetSize()
	if size == 0 {
		return 0
	}

	return float64(len(runes)) * math.Log2(float64(size))
}

// Entropy-to-score curve anchors. The base score is piecewise linear through
// (0,0), (28,40), (60,80) and saturates at 100 from 92 bits. The anchors are
// part of the calibration contract: tests depend on exact values.
const (
	curveMidBits  = 28.0
	curveMidScore = 40.0
	curveHiBits   = 60.0
	curveHiScore  = 80.0
	curveMaxBits  = 92.0
)

// entropyScore maps entropy bits onto the 0-100 base score.
func entropyScore(bits float64) int {
	var score float64
	switch {
	case bits <= 0:
		return 0
	case bits <= curveMidBits:
		score = bits * curveMidScore / curveMidBits
	case bits <= curveHiBits:
		score = curveMidScore + (bits-curveMidBits)*(curveHiScore-curveMidScore)/(curveHiBits-curveMidBits)
	case bits < curveMaxBits:
		score = curveHiScore + (bits-curveHiBits)*(100-curveHiScore)/(curveMaxBits-curveHiBits)
	default:
		return 100
	}

	s := int(math.Round(score))
	if s > 100 {
		s = 100
	}
	if s < 0 {
		s = 0
	}
	return s
}

// crackTimeGuessesPerSecond is the assumed offline guessing rate for the
// crack-time estimate.
const crackTimeGuessesPerSecond = 1e9

// estimateCrackTime renders the average time to exhaust half the keyspace
// implied by the entropy estimate.
func estimateCrackTime(bits float64) string {
	if bits <= 0 {
		return "Instant"
	}

	seconds := math.Pow(2, bits) / (2 * crackTimeGuessesPerSecond)
	return formatSeconds(seconds)
}

func formatSeconds(seconds float64) string {
	const (
		minute = 60
		hour   = 60 * minute
		day    = 24 * hour
		year   = 365 * day
	)

	switch {
	case seconds < 1:
		return "Instant"
	case seconds < minute:
		return formatUnit(seconds, "seconds")
	case seconds < hour:
		return formatUnit(seconds/minute, "minutes")
	case seconds < day:
		return formatUnit(seconds/hour, "hours")
	case seconds < year:
		return formatUnit(seconds/day, "days")
	case seconds < 1000*year:
		return formatUnit(seconds/year, "years")
	default:
		return "centuries"
	}
}

func formatUnit(v float64, unit string) string {
	return fmt.Sprintf("%.1f %s", v, unit)
}
