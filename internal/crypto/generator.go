package crypto

import (
	"errors"
	"strings"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// Glyphs easily confused with one another in common fonts.
	ambiguousUppercase = "IO"
	ambiguousLowercase = "l"
	ambiguousNumbers   = "01"

	MaxBatchSize = 100
)

var (
	ErrNoCharacterTypes = errors.New("at least one character type must be selected")
	ErrInvalidCount     = errors.New("batch count must be at least 1")
)

// GeneratorOptions configures the password generator. Length-range validation is
// the caller's responsibility; the generator accepts any length and widens it to
// the number of selected character types if needed.
type GeneratorOptions struct {
	Length           int
	Uppercase        bool
	Lowercase        bool
	Numbers          bool
	Symbols          bool
	ExcludeAmbiguous bool
}

// DefaultOptions returns sensible defaults: 16 characters with all types enabled.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    16,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// Generate creates a cryptographically secure random password based on the given
// options. The result contains at least one character from every selected type; if
// the requested length is smaller than the number of selected types, the password
// is widened to fit them rather than dropping required characters.
func Generate(opts GeneratorOptions) (string, error) {
	var pool string
	var required []byte

	for _, class := range []struct {
		enabled   bool
		charset   string
		ambiguous string
	}{
		{opts.Uppercase, uppercaseChars, ambiguousUppercase},
		{opts.Lowercase, lowercaseChars, ambiguousLowercase},
		{opts.Numbers, numberChars, ambiguousNumbers},
		{opts.Symbols, symbolChars, ""},
	} {
		if !class.enabled {
			continue
		}
		charset := class.charset
		if opts.ExcludeAmbiguous && class.ambiguous != "" {
			charset = stripChars(charset, class.ambiguous)
		}

		// Guarantee at least one character from each selected type.
		ch, err := randChar(charset)
		if err != nil {
			return "", err
		}
		required = append(required, ch)
		pool += charset
	}

	if len(required) == 0 {
		return "", ErrNoCharacterTypes
	}

	length := opts.Length
	if length < len(required) {
		length = len(required)
	}

	result := make([]byte, length)
	copy(result, required)

	// Fill the remaining positions from the full pool.
	for i := len(required); i < length; i++ {
		ch, err := randChar(pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	// Shuffle so the required characters are not predictably placed up front.
	if err := secureShuffle(result); err != nil {
		return "", err
	}

	return string(result), nil
}

// GenerateBatch generates count independent passwords with the same options.
// Counts above MaxBatchSize are silently clamped; counts below 1 are an error.
func GenerateBatch(count int, opts GeneratorOptions) ([]string, error) {
	if count < 1 {
		return nil, ErrInvalidCount
	}
	if count > MaxBatchSize {
		count = MaxBatchSize
	}

	passwords := make([]string, 0, count)
	for i := 0; i < count; i++ {
		password, err := Generate(opts)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, password)
	}
	return passwords, nil
}

// randChar picks a random character from charset using crypto/rand.
func randChar(charset string) (byte, error) {
	i, err := randomInt(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[i], nil
}

// stripChars removes every character in cut from charset.
func stripChars(charset, cut string) string {
	var b strings.Builder
	for i := 0; i < len(charset); i++ {
		if !strings.Contains(cut, charset[i:i+1]) {
			b.WriteByte(charset[i])
		}
	}
	return b.String()
}
