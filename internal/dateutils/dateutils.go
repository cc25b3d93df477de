// Package dateutils provides common date operations used throughout the application.
package dateutils

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Date format constants used throughout the application
const (
	// DateLayoutISO is the layout of dates in produced CSV files and of the
	// statement-file naming convention prefix (YYYY-MM-DD).
	DateLayoutISO = "2006-01-02"

	// DateLayoutStatement is the short date layout printed on statement
	// lines, e.g. "05 Jan 24". Two-digit years 00-68 fall in 20xx.
	DateLayoutStatement = "02 Jan 06"
)

// Months holds the twelve English month abbreviations in title case, the only
// month spellings accepted on statement lines.
var Months = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// IsMonth reports whether token, case-normalized, is a recognised month
// abbreviation.
func IsMonth(token string) bool {
	normalized := TitleMonth(token)
	for _, m := range Months {
		if normalized == m {
			return true
		}
	}
	return false
}

// TitleMonth normalizes a month token to title case: "AUG" and "aug" both
// become "Aug". Non-ASCII input is returned unchanged apart from case folding.
func TitleMonth(token string) string {
	if token == "" {
		return token
	}
	return strings.ToUpper(token[:1]) + strings.ToLower(token[1:])
}

// ParseStatementDate parses a short statement date such as "05 Jan 24" or
// "5 AUG 23". The day is zero-padded and the month title-cased before
// parsing, so any casing and single-digit days are accepted.
func ParseStatementDate(text string) (time.Time, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return time.Time{}, fmt.Errorf("not a day month-abbrev year date: %q", text)
	}
	day := fields[0]
	if len(day) == 1 {
		day = "0" + day
	}
	normalized := day + " " + TitleMonth(fields[1]) + " " + fields[2]
	return time.Parse(DateLayoutStatement, normalized)
}

// StatementDateFromFilename extracts the statement date from the
// YYYY-MM-DD prefix of a statement file name, e.g.
// "2024-05-28 statement.pdf".
func StatementDateFromFilename(path string) (time.Time, error) {
	name := filepath.Base(path)
	if len(name) < len(DateLayoutISO) {
		return time.Time{}, fmt.Errorf("file name %q has no YYYY-MM-DD prefix", name)
	}
	date, err := time.Parse(DateLayoutISO, name[:len(DateLayoutISO)])
	if err != nil {
		return time.Time{}, fmt.Errorf("file name %q has no YYYY-MM-DD prefix: %w", name, err)
	}
	return date, nil
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD).
// The zero time formats as the empty string.
func ToISODate(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return date.Format(DateLayoutISO)
}
