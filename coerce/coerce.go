// Package coerce converts the text of feed elements and attributes into
// typed values.
//
// Every conversion is best effort and reports success with a boolean
// rather than an error: feeds in the wild are routinely malformed, and a
// value which cannot be converted is simply left unset by the caller.
package coerce

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"golang.org/x/text/cases"
)

// rfc822Layouts are tried in order for RFC 822 (RSS generation) dates.
var rfc822Layouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 02 Jan 2006 15:04 -0700",
	"Mon, 02 Jan 2006 15:04 MST",
	"Mon, 02 Jan 06 15:04:05 -0700",
	"Mon, 02 Jan 06 15:04:05 MST",
	"02 Jan 2006 15:04:05 -0700",
	"02 Jan 2006 15:04:05 MST",
	"2 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04:05 MST",
	time.RFC822Z,
	time.RFC822,
}

// rfc3339Layouts are tried in order for RFC 3339 and W3C-DTF (Atom
// generation) dates.
var rfc3339Layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
	"2006-01",
	"2006",
}

// RFC822 parses an RFC 822 date-time, falling back to a lenient parse
// of common variants found in RSS feeds.
func RFC822(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range rfc822Layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	if t, err := dateparse.ParseAny(s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// RFC3339 parses an RFC 3339 or W3C-DTF date-time.
func RFC3339(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range rfc3339Layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// URI parses an absolute or relative URI reference.
func URI(s string) (*url.URL, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	u, err := url.Parse(s)
	if err != nil {
		// unescaped spaces are the most common defect
		if u, err = url.Parse(strings.ReplaceAll(s, " ", "%20")); err != nil {
			return nil, false
		}
	}
	return u, true
}

// Int parses a base 10 integer.
func Int(s string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	return v, err == nil
}

// Int64 parses a base 10 64-bit integer.
func Int64(s string) (int64, bool) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return v, err == nil
}

// Float parses a floating point number.
func Float(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v, err == nil
}

// Bool parses true/false, yes/no and 1/0 in any case.
func Bool(s string) (bool, bool) {
	switch Fold(s) {
	case "true", "yes", "1":
		return true, true
	case "false", "no", "0":
		return false, true
	}
	return false, false
}

// Fold returns the trimmed, case folded form of s used for case
// insensitive comparisons.
func Fold(s string) string {
	// a Caser holds state and must not be shared between goroutines
	return cases.Fold().String(strings.TrimSpace(s))
}

// Names maps case folded names to enumerated values.
type Names[T any] map[string]T

// NewNames returns the Names holding the folded keys of names.
func NewNames[T any](names map[string]T) Names[T] {
	folded := make(Names[T], len(names))
	for name, v := range names {
		folded[Fold(name)] = v
	}
	return folded
}

// Lookup returns the value named s without regard to case.
func (n Names[T]) Lookup(s string) (T, bool) {
	v, ok := n[Fold(s)]
	return v, ok
}

// Enum looks up s among names without regard to case. Tables consulted
// repeatedly should be folded once with NewNames.
func Enum[T any](s string, names map[string]T) (T, bool) {
	return NewNames(names).Lookup(s)
}
