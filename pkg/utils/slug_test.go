package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"Mechanical Keyboard", "mechanical-keyboard"},
		{"  USB-C   Hub!! ", "usb-c-hub"},
		{"Écran 4K", "cran-4k"},
		{"---", ""},
		{"already-slugged", "already-slugged"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, Slugify(tc.input), "input: %q", tc.input)
	}
}
