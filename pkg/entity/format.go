package entity

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Clean applies Unicode NFC normalization and trims surrounding whitespace.
func Clean(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

// FormatAddress renders an address as a single comma-separated line.
// Each part is cleaned; empty parts are skipped. Returns "" if every part is empty.
func FormatAddress(a Address) string {
	parts := make([]string, 0, 5)
	for _, p := range []string{a.StreetAddress, a.City, a.State, a.ZipCode, a.Country} {
		if p = Clean(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// dateLen is the length of a YYYY-MM-DD prefix.
const dateLen = 10

// DatePart returns the calendar-date prefix of a registry timestamp
// (e.g., "2019-03-14T00:00:00" -> "2019-03-14"), counted in characters.
// Empty input yields nil.
func DatePart(ts string) *string {
	ts = Clean(ts)
	if ts == "" {
		return nil
	}
	if r := []rune(ts); len(r) > dateLen {
		ts = string(r[:dateLen])
	}
	return &ts
}

// NullIfEmpty returns nil for an empty string and a pointer to s otherwise.
func NullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns the value behind p, or "" if p is nil.
func Deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
