package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Percent bounds
const (
	MinPercent = 0
	MaxPercent = 100
)

var (
	// ErrMalformedPercent is returned when percent input is not a clean integer
	ErrMalformedPercent = errors.New("malformed percent")

	// ErrPercentOutOfRange is returned when a parsed percent is outside 0-100
	ErrPercentOutOfRange = errors.New("percent out of range")
)

// ParsePercent parses user input as a base-10 integer percentage on a best
// effort basis: surrounding whitespace is ignored and the longest leading
// integer is used. Input without any leading digits yields NaN.
//
// The returned value is always usable; err only reports what was wrong with
// the input (ErrMalformedPercent or ErrPercentOutOfRange) and range is never
// clamped.
func ParsePercent(input string) (float64, error) {
	s := strings.TrimLeftFunc(input, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return math.NaN(), fmt.Errorf("%w: %q", ErrMalformedPercent, input)
	}

	value, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return math.NaN(), fmt.Errorf("%w: %q", ErrMalformedPercent, input)
	}

	if strings.TrimSpace(s[end:]) != "" {
		return value, fmt.Errorf("%w: %q", ErrMalformedPercent, input)
	}
	if value < MinPercent || value > MaxPercent {
		return value, fmt.Errorf("%w: %v", ErrPercentOutOfRange, value)
	}
	return value, nil
}
