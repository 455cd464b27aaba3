// Package starname derives a Star Wars style name from four personal
// details. Generation is positional substring arithmetic with no randomness
// and no state.
package starname

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrTooShort is returned by Generate when any input is below its minimum
// length.
var ErrTooShort = errors.New("input too short to generate a name")

// Input holds the raw form values for a single generation attempt.
type Input struct {
	First      string `json:"first_name"`
	Last       string `json:"last_name"`
	CityBorn   string `json:"city_born"`
	MaidenName string `json:"maiden_name"`
}

// Name is a generated first/last name pair.
type Name struct {
	First string `json:"first"`
	Last  string `json:"last"`
}

func (n Name) String() string {
	return n.First + " " + n.Last
}

// Value returns the input's value for field.
func (in Input) Value(f Field) string {
	switch f {
	case FirstName:
		return in.First
	case LastName:
		return in.Last
	case CityBorn:
		return in.CityBorn
	case MaidenName:
		return in.MaidenName
	}
	return ""
}

// Verdicts validates every field, in form order.
func (in Input) Verdicts() []Verdict {
	fields := Fields()
	out := make([]Verdict, len(fields))
	for i, f := range fields {
		out[i] = Validate(f, in.Value(f))
	}
	return out
}

// Valid reports whether every field passes inline validation.
func (in Input) Valid() bool {
	for _, v := range in.Verdicts() {
		if !v.OK() {
			return false
		}
	}
	return true
}

// Generate builds the name:
//
//	first = capitalize(last[:3] + first[:2])
//	last  = capitalize(maiden[:2] + city[:3])
//
// Only lengths are checked; the letters-only rule is left to Validate.
func Generate(in Input) (Name, error) {
	for _, f := range Fields() {
		if utf8.RuneCountInString(in.Value(f)) < f.MinLength() {
			return Name{}, fmt.Errorf("generate: %s: %w", f, ErrTooShort)
		}
	}

	return Name{
		First: capitalize(prefix(in.Last, 3) + prefix(in.First, 2)),
		Last:  capitalize(prefix(in.MaidenName, 2) + prefix(in.CityBorn, 3)),
	}, nil
}

// prefix returns the first n characters of s, lower-cased. Callers
// guarantee s has at least n characters. Each invalid UTF-8 byte counts as
// one character and comes out as U+FFFD, so such input does not round trip.
func prefix(s string, n int) string {
	r := []rune(s)
	return cases.Lower(language.Und).String(string(r[:n]))
}

// capitalize upper-cases the first character and leaves the rest as is.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return cases.Upper(language.Und).String(string(r)) + s[size:]
}
