package model

import (
	"errors"
	"math"
	"testing"
)

func TestParsePercent(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		err      error
	}{
		{"55", 55, nil},
		{"0", 0, nil},
		{"100", 100, nil},
		{" 42 ", 42, nil},
		{"+7", 7, nil},
		{"55abc", 55, ErrMalformedPercent},
		{"12.9", 12, ErrMalformedPercent},
		{"150", 150, ErrPercentOutOfRange},
		{"-5", -5, ErrPercentOutOfRange},
	}

	for _, test := range tests {
		value, err := ParsePercent(test.input)
		if value != test.expected {
			t.Errorf("ParsePercent(%q) = %v, expected %v", test.input, value, test.expected)
		}
		if test.err == nil && err != nil {
			t.Errorf("ParsePercent(%q) unexpected error: %v", test.input, err)
		}
		if test.err != nil && !errors.Is(err, test.err) {
			t.Errorf("ParsePercent(%q) error = %v, expected %v", test.input, err, test.err)
		}
	}
}

func TestParsePercent_NoDigits(t *testing.T) {
	for _, input := range []string{"", "abc", "-", " %"} {
		value, err := ParsePercent(input)
		if !math.IsNaN(value) {
			t.Errorf("ParsePercent(%q) = %v, expected NaN", input, value)
		}
		if !errors.Is(err, ErrMalformedPercent) {
			t.Errorf("ParsePercent(%q) error = %v, expected ErrMalformedPercent", input, err)
		}
	}
}

func TestOpacityPercent(t *testing.T) {
	tests := []struct {
		fraction float64
		expected int
	}{
		{1.0, 100},
		{0.0, 0},
		{0.555, 56},
		{0.554, 55},
		{0.25, 25},
	}

	for _, test := range tests {
		if result := OpacityPercent(test.fraction); result != test.expected {
			t.Errorf("OpacityPercent(%v) = %d, expected %d", test.fraction, result, test.expected)
		}
	}
}
