package validation

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Predicate reports whether value satisfies a rule. The whole form is passed so
// that rules such as password confirmation can compare fields.
type Predicate func(value string, form Values) bool

// Rule pairs a predicate with the message reported when it does not hold.
type Rule struct {
	Holds   Predicate
	Message string
}

// NotBlank holds for values with at least one non-space character.
func NotBlank(value string, _ Values) bool {
	return strings.TrimSpace(value) != ""
}

// NoLeadingSpace holds unless the first character is a space.
func NoLeadingSpace(value string, _ Values) bool {
	return !strings.HasPrefix(value, " ")
}

// NoDigits holds for values without any ASCII digit.
func NoDigits(value string, _ Values) bool {
	return !strings.ContainsAny(value, "0123456789")
}

// Matches holds when re matches somewhere in the value. Anchor re to match the
// whole value.
func Matches(re *regexp.Regexp) Predicate {
	return func(value string, _ Values) bool {
		return re.MatchString(value)
	}
}

// Excludes holds when re matches nowhere in the value.
func Excludes(re *regexp.Regexp) Predicate {
	return func(value string, _ Values) bool {
		return !re.MatchString(value)
	}
}

// MinLength holds for values of at least n characters.
func MinLength(n int) Predicate {
	return func(value string, _ Values) bool {
		return utf8.RuneCountInString(value) >= n
	}
}

// DigitCount holds when the number of ASCII digits in the value lies in [lo, hi].
func DigitCount(lo, hi int) Predicate {
	return func(value string, _ Values) bool {
		n := 0
		for _, r := range value {
			if r >= '0' && r <= '9' {
				n++
			}
		}
		return n >= lo && n <= hi
	}
}

// LengthWithoutSpaces holds when the value, with all whitespace removed, has a
// length in [lo, hi].
func LengthWithoutSpaces(lo, hi int) Predicate {
	return func(value string, _ Values) bool {
		n := utf8.RuneCountInString(stripSpaces(value))
		return n >= lo && n <= hi
	}
}

// DigitsOnlyWithoutSpaces holds when the value, with whitespace removed, is a
// non-empty run of ASCII digits.
func DigitsOnlyWithoutSpaces(value string, _ Values) bool {
	return onlyDigits.MatchString(stripSpaces(value))
}

// FiniteNumber holds when the value parses as a finite decimal number.
func FiniteNumber(value string, _ Values) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	return err == nil && !math.IsNaN(f) && !math.IsInf(f, 0)
}

// EqualsField holds when the value equals the value of another field.
func EqualsField(other string) Predicate {
	return func(value string, form Values) bool {
		return value == form.Get(other)
	}
}

// OneOf holds when the value is one of the allowed options.
func OneOf(options ...string) Predicate {
	return func(value string, _ Values) bool {
		for _, o := range options {
			if value == o {
				return true
			}
		}
		return false
	}
}

// Unless makes p hold whenever cond holds for the form.
func Unless(cond func(form Values) bool, p Predicate) Predicate {
	return func(value string, form Values) bool {
		return cond(form) || p(value, form)
	}
}

var (
	onlyDigits = regexp.MustCompile(`^[0-9]+$`)
	spaces     = regexp.MustCompile(`\s+`)
)

func stripSpaces(value string) string {
	return spaces.ReplaceAllString(value, "")
}
