package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"", "", true},
		{"  Ana@Salon.CO ", "ana@salon.co", true},
		{"ana@salon", "", false},
		{"ana salon.co", "", false},
		{"Ana <ana@salon.co>", "", false},
		{"ana@salon.", "", false},
	}
	for _, tc := range cases {
		got, ok := NormalizeEmail(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"", "", true},
		{"+57 (300) 123-4567", "+573001234567", true},
		{"300.123.4567", "3001234567", true},
		{"12345", "", false},
		{"300-abc-4567", "", false},
		{"57+3001234567", "", false},
	}
	for _, tc := range cases {
		got, ok := NormalizePhone(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}
