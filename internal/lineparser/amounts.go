package lineparser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"fjacquet/hsbc-csv/internal/currencyutils"
	"fjacquet/hsbc-csv/internal/models"
)

// AmountMatch is one monetary amount anchored to the end of a text segment.
type AmountMatch struct {
	// Value is the parsed amount, grouping commas stripped, two decimal
	// places.
	Value decimal.Decimal

	// CrDr classifies the optional suffix: CR, DR, or Payment when absent.
	CrDr models.CrDr

	// Numeral is the matched numeral substring as written, e.g. "4,000.00".
	Numeral string

	// Start is the byte offset of the first matched character, usually the
	// delimiter preceding the numeral.
	Start int

	// End is the byte offset one past the last matched character.
	End int
}

// ExtractAmounts finds amounts written as a grouped numeral with exactly two
// decimal places, preceded by a comma, quote, or whitespace, optionally
// suffixed with CR or DR, optionally closed by a quote and a trailing comma,
// and anchored to the end of its segment. Segments are the newline-separated
// parts of text, so a multi-segment remainder can carry several matches; the
// caller decides whether that is ambiguous.
func ExtractAmounts(text string) []AmountMatch {
	var matches []AmountMatch
	base := 0
	for first := true; ; first = false {
		segment := text[base:]
		segEnd := len(text)
		if nl := strings.IndexByte(segment, '\n'); nl >= 0 {
			segment = segment[:nl]
			segEnd = base + nl
		}
		if m, ok := scanSegment(text, base, segEnd, first); ok {
			matches = append(matches, m)
		}
		if segEnd == len(text) {
			return matches
		}
		base = segEnd + 1
	}
}

// scanSegment finds the leftmost end-anchored amount within text[base:segEnd].
// A segment that follows a newline may start directly with the numeral, the
// newline standing in for the delimiter.
func scanSegment(text string, base, segEnd int, first bool) (AmountMatch, bool) {
	if !first {
		if m, ok := matchAmountFrom(text, base, base, segEnd); ok {
			return m, true
		}
	}
	for p := base; p < segEnd; {
		r, size := utf8.DecodeRuneInString(text[p:segEnd])
		if isAmountDelimiter(r) {
			if m, ok := matchAmountFrom(text, p, p+size, segEnd); ok {
				return m, true
			}
		}
		p += size
	}
	return AmountMatch{}, false
}

func isAmountDelimiter(r rune) bool {
	return r == ',' || r == '"' || unicode.IsSpace(r)
}

// matchAmountFrom parses a full amount starting at numeral position q and
// consuming every character up to segEnd. start marks the first character of
// the match, the delimiter when there is one.
func matchAmountFrom(text string, start, q, segEnd int) (AmountMatch, bool) {
	numEnd, ok := matchNumeral(text, q, segEnd)
	if !ok {
		return AmountMatch{}, false
	}
	p := numEnd
	crdr := models.CrDrPayment
	switch {
	case p+2 <= segEnd && text[p:p+2] == "CR":
		crdr = models.CrDrCredit
		p += 2
	case p+2 <= segEnd && text[p:p+2] == "DR":
		crdr = models.CrDrDebit
		p += 2
	}
	if p < segEnd && text[p] == '"' {
		p++
	}
	if p < segEnd && text[p] == ',' {
		p++
	}
	if p != segEnd {
		return AmountMatch{}, false
	}
	numeral := text[q:numEnd]
	value, err := currencyutils.ParseStatementAmount(numeral)
	if err != nil {
		return AmountMatch{}, false
	}
	return AmountMatch{
		Value:   value,
		CrDr:    crdr,
		Numeral: numeral,
		Start:   start,
		End:     segEnd,
	}, true
}

// matchNumeral consumes 1-3 leading digits, any number of ",ddd" groups, a
// point, and exactly two decimal digits. It returns the offset one past the
// numeral.
func matchNumeral(text string, q, segEnd int) (int, bool) {
	// longest leading run first, like a greedy \d{1,3}
	for _, intLen := range []int{3, 2, 1} {
		if end, ok := matchNumeralBody(text, q, segEnd, intLen); ok {
			return end, true
		}
	}
	return 0, false
}

func matchNumeralBody(text string, q, segEnd, intLen int) (int, bool) {
	p := q
	for d := 0; d < intLen; d++ {
		if !isDigit(text[:segEnd], p) {
			return 0, false
		}
		p++
	}
	for p+4 <= segEnd && text[p] == ',' &&
		isDigit(text[:segEnd], p+1) && isDigit(text[:segEnd], p+2) && isDigit(text[:segEnd], p+3) {
		p += 4
	}
	if !hasByte(text[:segEnd], p, '.') {
		return 0, false
	}
	p++
	for d := 0; d < 2; d++ {
		if !isDigit(text[:segEnd], p) {
			return 0, false
		}
		p++
	}
	return p, true
}
