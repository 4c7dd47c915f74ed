package crypto

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

const (
	// Assumed offline attack rate for crack-time estimates.
	guessesPerSecond = 1e10
	secondsPerYear   = 31536000.0
)

// Strength levels, ordered weakest to strongest.
const (
	LevelVeryWeak   = "very_weak"
	LevelWeak       = "weak"
	LevelFair       = "fair"
	LevelStrong     = "strong"
	LevelVeryStrong = "very_strong"
)

var ErrEmptyPassword = errors.New("password is required")

// StrengthResult describes how resistant a password is to guessing. The
// password itself is never echoed back: MaskedPassword keeps the first three
// characters and stars the rest.
type StrengthResult struct {
	MaskedPassword string
	Score          int
	Level          string
	Feedback       []string
	Entropy        float64
	CrackTime      string
	HasLower       bool
	HasUpper       bool
	HasNumber      bool
	HasSymbol      bool
}

// Analyze scores a password on a 0-10 scale using deterministic composition
// and pattern rules, estimates its entropy in bits, and buckets the average
// offline crack time into a human-readable string.
func Analyze(password string) (StrengthResult, error) {
	if password == "" {
		return StrengthResult{}, ErrEmptyPassword
	}

	runes := []rune(password)
	length := len(runes)

	var score int
	var feedback []string

	for _, threshold := range []int{8, 12, 16, 20} {
		if length >= threshold {
			score++
		}
	}

	hasLower, hasUpper, hasNumber, hasSymbol := classify(runes)
	for _, present := range []bool{hasLower, hasUpper, hasNumber, hasSymbol} {
		if present {
			score++
		}
	}

	if length < 8 {
		score -= 2
		feedback = append(feedback, "Password is too short (minimum 8 characters)")
	}
	if !hasLower {
		feedback = append(feedback, "Add lowercase letters")
	}
	if !hasUpper {
		feedback = append(feedback, "Add uppercase letters")
	}
	if !hasNumber {
		feedback = append(feedback, "Add numbers")
	}
	if !hasSymbol {
		feedback = append(feedback, "Add symbols")
	}

	if hasRepeatedRun(runes) {
		score--
		feedback = append(feedback, "Avoid repeated characters")
	}

	// Letters-only and digits-only cannot both match the same password.
	switch {
	case allOf(runes, isLetter):
		score--
		feedback = append(feedback, "Mix in numbers and symbols")
	case allOf(runes, isDigit):
		score -= 2
		feedback = append(feedback, "Include letters and symbols")
	}

	if hasSequentialRun(runes) {
		score--
		feedback = append(feedback, "Avoid sequential patterns")
	}
	if hasKeyboardPattern(password) {
		score--
		feedback = append(feedback, "Avoid keyboard patterns")
	}

	// Clamp only after every rule has been applied.
	if score < 0 {
		score = 0
	}
	if score > 10 {
		score = 10
	}

	alphabet := 0
	if hasLower {
		alphabet += 26
	}
	if hasUpper {
		alphabet += 26
	}
	if hasNumber {
		alphabet += 10
	}
	if hasSymbol {
		alphabet += 32
	}

	var entropy float64
	if alphabet > 0 {
		entropy = float64(length) * math.Log2(float64(alphabet))
	}

	if len(feedback) == 0 {
		feedback = append(feedback, "Password looks strong!")
	}

	return StrengthResult{
		MaskedPassword: maskPassword(runes),
		Score:          score,
		Level:          levelForScore(score),
		Feedback:       feedback,
		Entropy:        entropy,
		CrackTime:      crackTimeString(entropy),
		HasLower:       hasLower,
		HasUpper:       hasUpper,
		HasNumber:      hasNumber,
		HasSymbol:      hasSymbol,
	}, nil
}

// classify reports which character classes appear in the password. Symbols are
// matched against the generator's symbol set, not "anything else".
func classify(runes []rune) (hasLower, hasUpper, hasNumber, hasSymbol bool) {
	for _, r := range runes {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasNumber = true
		case strings.ContainsRune(symbolChars, r):
			hasSymbol = true
		}
	}
	return
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func allOf(runes []rune, match func(rune) bool) bool {
	for _, r := range runes {
		if !match(r) {
			return false
		}
	}
	return true
}

// hasRepeatedRun reports whether any character repeats three or more times in a row.
func hasRepeatedRun(runes []rune) bool {
	for i := 0; i+2 < len(runes); i++ {
		if runes[i] == runes[i+1] && runes[i] == runes[i+2] {
			return true
		}
	}
	return false
}

// hasSequentialRun reports whether the password contains a three-character
// ascending alphabetic (abc..xyz) or numeric (012..789) run, case-insensitive.
func hasSequentialRun(runes []rune) bool {
	lower := make([]rune, len(runes))
	for i, r := range runes {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		lower[i] = r
	}

	ascending := func(a, b, c rune) bool {
		return b == a+1 && c == b+1
	}
	for i := 0; i+2 < len(lower); i++ {
		a, b, c := lower[i], lower[i+1], lower[i+2]
		if a >= 'a' && c <= 'z' && ascending(a, b, c) {
			return true
		}
		if a >= '0' && c <= '9' && ascending(a, b, c) {
			return true
		}
	}
	return false
}

// hasKeyboardPattern reports whether the password contains a common keyboard
// walk, matched case-insensitively.
func hasKeyboardPattern(password string) bool {
	lower := strings.ToLower(password)
	for _, pattern := range []string{"qwert", "asdf", "zxcv"} {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}

func levelForScore(score int) string {
	switch {
	case score <= 2:
		return LevelVeryWeak
	case score <= 4:
		return LevelWeak
	case score <= 6:
		return LevelFair
	case score <= 8:
		return LevelStrong
	default:
		return LevelVeryStrong
	}
}

// crackTimeString buckets the average-case offline crack time for the given
// entropy into a human-readable estimate.
func crackTimeString(entropy float64) string {
	seconds := math.Pow(2, entropy) / guessesPerSecond / 2

	switch {
	case seconds < 1:
		return "instant"
	case seconds < 60:
		return formatQuantity(seconds, "second")
	case seconds < 3600:
		return formatQuantity(seconds/60, "minute")
	case seconds < 86400:
		return formatQuantity(seconds/3600, "hour")
	case seconds < secondsPerYear:
		return formatQuantity(seconds/86400, "day")
	case seconds < 100*secondsPerYear:
		return formatQuantity(seconds/secondsPerYear, "year")
	case seconds < 1e6*secondsPerYear:
		return "thousand years"
	case seconds < 1e9*secondsPerYear:
		return "million years"
	default:
		return "billions of years"
	}
}

// formatQuantity floors the value so it can never round up past its bucket
// label, and pluralizes the unit.
func formatQuantity(value float64, unit string) string {
	n := int(math.Floor(value))
	if n <= 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// maskPassword keeps the first three characters and replaces the rest with '*'.
func maskPassword(runes []rune) string {
	if len(runes) <= 3 {
		return string(runes)
	}
	return string(runes[:3]) + strings.Repeat("*", len(runes)-3)
}
