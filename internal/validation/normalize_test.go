package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleCase(t *testing.T) {
	tests := map[string]string{
		"clean code":             "Clean Code",
		"the mYTHICAL man-month": "The MYTHICAL Man-month",
		"tabs\tand\nnewlines":    "Tabs\tAnd\nNewlines",
		"élan vital":             "Élan Vital",
		"":                       "",
	}
	for input, want := range tests {
		assert.Equal(t, want, titleCase(input), input)
	}
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "Robert Martin", normalizeText("  robert martin  "))
	assert.Equal(t, "12345", normalizeText(float64(12345)))
	assert.Equal(t, "", normalizeText(nil))
	assert.Equal(t, "", normalizeText([]any{"a"}))
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		input any
		want  string
	}{
		{"2020-11-12", "2020-11-12"},
		{" 2020-11-12 ", "2020-11-12"},
		{"2020/11/12", "2020-11-12"},
		{"11/12/2020", "2020-11-12"},
		{"November 12, 2020", "2020-11-12"},
		{"12 November 2020", "2020-11-12"},
		{"2020-11-12 08:30:00", "2020-11-12"},
		{"2020-11-12T23:30:00-05:00", "2020-11-12"},
		{"2020-01-01T23:00:00-05:00", "2020-01-01"},
		{"2020-01-01T01:00:00+09:00", "2020-01-01"},
		{"not a date", ""},
		{"2020-02-30", ""},
		{"", ""},
		{nil, ""},
		{float64(20201112), ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeDate(tt.input), "%v", tt.input)
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		input  any
		value  bool
		parsed bool
	}{
		{true, true, true},
		{false, false, true},
		{float64(1), true, true},
		{float64(0), false, true},
		{float64(2), false, false},
		{"yes", true, true},
		{"ON", true, true},
		{" true ", true, true},
		{"1", true, true},
		{"no", false, true},
		{"Off", false, true},
		{"0", false, true},
		{"false", false, true},
		{"maybe", false, false},
		{"", false, false},
		{nil, false, false},
	}
	for _, tt := range tests {
		value, parsed := parseBool(tt.input)
		assert.Equal(t, tt.parsed, parsed, "%v", tt.input)
		assert.Equal(t, tt.value, value, "%v", tt.input)
	}
}

func TestNormalizeID(t *testing.T) {
	assert.Equal(t, "3", normalizeID(float64(3)))
	assert.Equal(t, "3", normalizeID(" 3 "))
	assert.Equal(t, "1.5", normalizeID(float64(1.5)))
	assert.Equal(t, "", normalizeID(nil))
}
