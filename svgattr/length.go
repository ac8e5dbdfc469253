// Package svgattr implements the per-attribute typed parsers and the
// two-level (ElementType, attribute name) dispatch table svgparser
// drives: presentation attributes are attempted first and a parse
// failure becomes a warning rather than a fatal error, with the raw value
// of every attribute found in the table retained on the element so an
// external CSS matcher can still see it.
//
// ParseLength and ParseNumber return a "(value, consumedChars, error)"
// triple: how much of the input they consumed, so a caller can tell a
// full parse from a partial one. The other parsers return (value, error),
// except ParsePoints, which returns the points collected so far and an ok
// flag.
package svgattr

import (
	"strconv"
	"strings"

	"github.com/arturoeanton/go-svgxml/svg"
)

// ParseLength parses a <length-percentage> | <number> token: an optional
// sign, digits, optional fractional part, optional exponent, followed by
// an optional unit suffix or "%". consumed is the number of leading bytes
// of raw actually parsed, letting callers embedded in a longer value
// (points, transform argument lists) advance past just this token.
func ParseLength(raw string) (value svg.Length, consumed int, err error) {
	numLen, numErr := numberPrefixLength(raw)
	if numErr != nil {
		return svg.Length{}, 0, numErr
	}
	numText := raw[:numLen]
	f, parseErr := strconv.ParseFloat(numText, 64)
	if parseErr != nil {
		return svg.Length{}, 0, parseErr
	}

	rest := raw[numLen:]
	unit, unitLen := parseUnitSuffix(rest)
	return svg.Length{Value: f, Unit: unit}, numLen + unitLen, nil
}

// ParseLengthAttribute parses raw as a whole-string length attribute
// value (no trailing garbage tolerated), the shape most of the
// x/y/width/height-style setters use.
func ParseLengthAttribute(raw string) (svg.Length, error) {
	raw = strings.TrimSpace(raw)
	length, consumed, err := ParseLength(raw)
	if err != nil {
		return svg.Length{}, err
	}
	if consumed != len(raw) {
		return svg.Length{}, errTrailingGarbage(raw[consumed:])
	}
	return length, nil
}

func parseUnitSuffix(rest string) (svg.LengthUnit, int) {
	switch {
	case strings.HasPrefix(rest, "%"):
		return svg.UnitPercent, 1
	case strings.HasPrefix(rest, "px"):
		return svg.UnitPx, 2
	case strings.HasPrefix(rest, "em"):
		return svg.UnitEm, 2
	case strings.HasPrefix(rest, "ex"):
		return svg.UnitEx, 2
	case strings.HasPrefix(rest, "cm"):
		return svg.UnitCm, 2
	case strings.HasPrefix(rest, "mm"):
		return svg.UnitMm, 2
	case strings.HasPrefix(rest, "in"):
		return svg.UnitIn, 2
	case strings.HasPrefix(rest, "pt"):
		return svg.UnitPt, 2
	case strings.HasPrefix(rest, "pc"):
		return svg.UnitPc, 2
	default:
		return svg.UnitNumber, 0
	}
}

// numberPrefixLength scans the longest leading substring of raw matching
// a CSS <number> production, returning an error if raw does not start
// with one at all.
func numberPrefixLength(raw string) (int, error) {
	i := 0
	n := len(raw)
	if i < n && (raw[i] == '+' || raw[i] == '-') {
		i++
	}
	digitsStart := i
	for i < n && isDigit(raw[i]) {
		i++
	}
	hasIntDigits := i > digitsStart
	hasFracDigits := false
	if i < n && raw[i] == '.' {
		i++
		fracStart := i
		for i < n && isDigit(raw[i]) {
			i++
		}
		hasFracDigits = i > fracStart
	}
	if !hasIntDigits && !hasFracDigits {
		return 0, errNotANumber(raw)
	}

	// Optional exponent, only consumed if followed by at least one digit
	// (otherwise "1e" should parse as "1" followed by trailing garbage
	// "e", not fail outright).
	if i < n && (raw[i] == 'e' || raw[i] == 'E') {
		j := i + 1
		if j < n && (raw[j] == '+' || raw[j] == '-') {
			j++
		}
		expStart := j
		for j < n && isDigit(raw[j]) {
			j++
		}
		if j > expStart {
			i = j
		}
	}
	return i, nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// ParseNumber parses a single bare CSS <number>, used by viewBox,
// stdDeviation, and the offset/pathLength setters.
func ParseNumber(raw string) (value float64, consumed int, err error) {
	n, numErr := numberPrefixLength(raw)
	if numErr != nil {
		return 0, 0, numErr
	}
	f, parseErr := strconv.ParseFloat(raw[:n], 64)
	if parseErr != nil {
		return 0, 0, parseErr
	}
	return f, n, nil
}

type notANumberError struct{ raw string }

func errNotANumber(raw string) error { return notANumberError{raw: raw} }
func (e notANumberError) Error() string {
	return "svgattr: \"" + e.raw + "\" is not a valid number"
}

type trailingGarbageError struct{ tail string }

func errTrailingGarbage(tail string) error { return trailingGarbageError{tail: tail} }
func (e trailingGarbageError) Error() string {
	return "svgattr: unexpected trailing characters \"" + e.tail + "\""
}
