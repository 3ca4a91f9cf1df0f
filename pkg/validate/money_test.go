package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPositiveAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "Integer amount", input: "4000", expected: true},
		{name: "Two fractional digits", input: "666.67", expected: true},
		{name: "Zero", input: "0", expected: false},
		{name: "Negative", input: "-100", expected: false},
		{name: "Three fractional digits", input: "10.123", expected: false},
		{name: "Not a number", input: "cuatro mil", expected: false},
		{name: "Empty string", input: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsPositiveAmount(tt.input))
		})
	}
}

func TestIsDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "Valid date", input: "2024-03-01", expected: true},
		{name: "Wrong layout", input: "01/03/2024", expected: false},
		{name: "Not a date", input: "tomorrow", expected: false},
		{name: "Empty string", input: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsDate(tt.input))
		})
	}
}
