package starname

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// VerdictKind is the outcome of validating a single field.
type VerdictKind int

const (
	Valid VerdictKind = iota
	TooShort
	InvalidCharacters
)

// Verdict is the inline feedback for one field. Min is set only for TooShort.
type Verdict struct {
	Kind VerdictKind
	Min  int
}

// OK reports whether the value passed every rule.
func (v Verdict) OK() bool { return v.Kind == Valid }

// Message returns the text shown beside the field, or "" when valid.
func (v Verdict) Message() string {
	switch v.Kind {
	case TooShort:
		return fmt.Sprintf("must be at least %s characters", countWord(v.Min))
	case InvalidCharacters:
		return "letters only"
	}
	return ""
}

var countWords = [...]string{"zero", "one", "two", "three", "four", "five"}

// countWord spells out small counts and falls back to digits.
func countWord(n int) string {
	if n >= 0 && n < len(countWords) {
		return countWords[n]
	}
	return strconv.Itoa(n)
}

// Validate checks value against the rules for field. The length rule is
// evaluated first; the letters-only rule only once the length is satisfied.
func Validate(field Field, value string) Verdict {
	if minLen := field.MinLength(); utf8.RuneCountInString(value) < minLen {
		return Verdict{Kind: TooShort, Min: minLen}
	}
	if !lettersOnly(value) {
		return Verdict{Kind: InvalidCharacters}
	}
	return Verdict{Kind: Valid}
}

// lettersOnly matches the ASCII letter class [a-zA-Z]+.
func lettersOnly(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
