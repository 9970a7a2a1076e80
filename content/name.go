package content

import (
	"errors"
	"fmt"
	"path"
	"strings"
	"time"
)

// DefaultDate is used for content whose file name has no date prefix.
const DefaultDate = "1970-01-01"

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05 -0700"
)

// ErrEmptyName is returned for file names with nothing before the first dot.
var ErrEmptyName = errors.New("empty file name")

// ParseName derives the date and slug from a content file name. Only the base
// name up to the first dot is used, and a leading "yyyy-mm-dd-" becomes the
// date when a slug follows it.
func ParseName(name string) (date, slug string, err error) {
	stem, _, _ := strings.Cut(path.Base(name), ".")
	if stem == "" {
		return "", "", fmt.Errorf("ParseName %q: %w", name, ErrEmptyName)
	}
	if len(stem) > len(dateLayout)+1 && isDate(stem[:len(dateLayout)]) && stem[len(dateLayout)] == '-' {
		return stem[:len(dateLayout)], stem[len(dateLayout)+1:], nil
	}
	return DefaultDate, stem, nil
}

// Stem returns the base name of name up to the first dot.
func Stem(name string) string {
	stem, _, _ := strings.Cut(path.Base(name), ".")
	return stem
}

// isDate reports whether s has the shape dddd-dd-dd.
func isDate(s string) bool {
	if len(s) != len(dateLayout) {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch i {
		case 4, 7:
			if s[i] != '-' {
				return false
			}
		default:
			if s[i] < '0' || s[i] > '9' {
				return false
			}
		}
	}
	return true
}

// parseDate accepts "yyyy-mm-dd" and "yyyy-mm-dd HH:MM:SS +zzzz".
func parseDate(s string) (time.Time, bool, error) {
	if d, err := time.Parse(dateLayout, s); err == nil {
		return d, false, nil
	}
	d, err := time.Parse(dateTimeLayout, s)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return d, true, nil
}

// RFC2822Date formats a content date for feeds, for example
// "Mon, 01 Mar 2021 00:00:00 +0000".
func RFC2822Date(s string) (string, error) {
	d, _, err := parseDate(s)
	if err != nil {
		return "", fmt.Errorf("RFC2822Date: %w", err)
	}
	return d.UTC().Format("Mon, 02 Jan 2006 15:04:05 +0000"), nil
}

// SimpleDate formats a content date for display. Dates with a time of day are
// shown in GMT, for example "05 May 2019 10:30 AM GMT".
func SimpleDate(s string) (string, error) {
	d, withTime, err := parseDate(s)
	if err != nil {
		return "", fmt.Errorf("SimpleDate: %w", err)
	}
	if withTime {
		return d.UTC().Format("02 Jan 2006 03:04 PM GMT"), nil
	}
	return d.Format("02 Jan 2006"), nil
}
