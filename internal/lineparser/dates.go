package lineparser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"fjacquet/hsbc-csv/internal/dateutils"
)

// DateMatch is one date-shaped substring found on a statement line.
type DateMatch struct {
	// Text is the matched substring in the normalized line, e.g. "28 May 24".
	Text string

	// Start is the byte offset of the first character of the match.
	Start int

	// End is the byte offset of the last character of the match, inclusive.
	End int
}

// normalizeForScan replaces every comma and double quote with a space.
// Replacements are 1-for-1, so the result has the same length as the input
// and match offsets remain valid against the original line. This tolerates
// dates with a stray comma between month and year ("14 Aug,23") and
// quote-wrapped fields.
func normalizeForScan(line string) string {
	return strings.Map(func(r rune) rune {
		if r == ',' || r == '"' {
			return ' '
		}
		return r
	}, line)
}

// ExtractDates finds all "DD Mon YY" date substrings in the line, in
// left-to-right order. The scan runs over the normalized line (commas and
// quotes as spaces); candidates whose month token is not one of the twelve
// English abbreviations are discarded. An empty result is not an error: it
// marks the line as a non-transaction line.
func ExtractDates(line string) []DateMatch {
	normalized := normalizeForScan(line)

	var matches []DateMatch
	i := 0
	for i < len(normalized) {
		length, ok := matchDateAt(normalized, i)
		if !ok {
			i++
			continue
		}
		text := normalized[i : i+length]
		if dateutils.IsMonth(monthToken(text)) {
			matches = append(matches, DateMatch{
				Text:  text,
				Start: i,
				End:   i + length - 1,
			})
		}
		// shape matches are consumed whether or not the month is valid
		i += length
	}
	return matches
}

// matchDateAt reports whether a date-shaped token starts at position i:
// a word boundary, 1-2 digits, a space, exactly 3 ASCII letters, a space,
// exactly 2 digits, and a word boundary. It returns the match length.
func matchDateAt(s string, i int) (int, bool) {
	if !isDigit(s, i) || !boundaryBefore(s, i) {
		return 0, false
	}
	// longest day first, like a greedy \d{1,2}
	for _, dayLen := range []int{2, 1} {
		if length, ok := matchDateBody(s, i, dayLen); ok {
			return length, true
		}
	}
	return 0, false
}

func matchDateBody(s string, i, dayLen int) (int, bool) {
	p := i
	for d := 0; d < dayLen; d++ {
		if !isDigit(s, p) {
			return 0, false
		}
		p++
	}
	if !hasByte(s, p, ' ') {
		return 0, false
	}
	p++
	for l := 0; l < 3; l++ {
		if !isASCIILetter(s, p) {
			return 0, false
		}
		p++
	}
	if !hasByte(s, p, ' ') {
		return 0, false
	}
	p++
	for d := 0; d < 2; d++ {
		if !isDigit(s, p) {
			return 0, false
		}
		p++
	}
	if !boundaryAfter(s, p) {
		return 0, false
	}
	return p - i, true
}

// monthToken returns the 3-letter month of a matched date text.
func monthToken(text string) string {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return ""
	}
	return fields[1]
}

func isDigit(s string, i int) bool {
	return i < len(s) && s[i] >= '0' && s[i] <= '9'
}

func isASCIILetter(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	c := s[i]
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func hasByte(s string, i int, b byte) bool {
	return i < len(s) && s[i] == b
}

// boundaryBefore reports whether position i sits at a word boundary with
// respect to the preceding character.
func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !isWordRune(r)
}

// boundaryAfter reports whether position i (one past a match) sits at a word
// boundary with respect to the following character.
func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
