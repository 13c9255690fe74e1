package validation

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/farellandr/bookcatalog/internal/models"
)

// dateLayouts are tried in order when reading a published date.
var dateLayouts = []string{
	models.DateLayout,
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006/01/02",
	"2006/1/2",
	"01/02/2006",
	"1/2/2006",
	"02-01-2006",
	"02.01.2006",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
	"Monday, January 2, 2006",
	time.RFC1123,
	time.RFC1123Z,
}

// stringValue renders a decoded JSON value the way it would read as form input.
func stringValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		if val {
			return "1"
		}
		return ""
	default:
		return ""
	}
}

// titleCase upper-cases the first letter of every whitespace separated word
// and leaves the other letters alone.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	startOfWord := true
	for _, r := range s {
		if startOfWord {
			r = unicode.ToUpper(r)
		}
		startOfWord = unicode.IsSpace(r)
		b.WriteRune(r)
	}
	return b.String()
}

func normalizeText(v any) string {
	return titleCase(strings.TrimSpace(stringValue(v)))
}

// normalizeDate returns the date as YYYY-MM-DD, or "" when it cannot be read.
// A timestamp keeps the calendar day of its own offset.
func normalizeDate(v any) string {
	s := strings.TrimSpace(stringValue(v))
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(models.DateLayout)
		}
	}
	return ""
}

// parseBool accepts JSON booleans, the numbers 1 and 0 and the strings
// true/1/on/yes and false/0/off/no. ok is false for anything else.
func parseBool(v any) (value bool, ok bool) {
	switch val := v.(type) {
	case bool:
		return val, true
	case float64:
		switch val {
		case 1:
			return true, true
		case 0:
			return false, true
		}
		return false, false
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "true", "1", "on", "yes":
			return true, true
		case "false", "0", "off", "no":
			return false, true
		}
	}
	return false, false
}

func normalizeID(v any) string {
	return strings.TrimSpace(stringValue(v))
}
