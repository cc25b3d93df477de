// Package lineparser turns single lines of HSBC credit-card statement text
// into typed records. A transaction line opens with two "DD Mon YY" dates,
// the posting date then the transaction date, carries free-text details, and
// ends with a grouped amount optionally suffixed CR or DR. Lines without any
// date pass through as plain text; lines that look transactional but break
// the shape fail with a typed error identifying the defect.
package lineparser

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"fjacquet/hsbc-csv/internal/currencyutils"
	"fjacquet/hsbc-csv/internal/dateutils"
	"fjacquet/hsbc-csv/internal/models"
	"fjacquet/hsbc-csv/internal/parsererror"
)

// ContactlessMarker prefixes the details of contactless card payments.
const ContactlessMarker = ")))"

// maxAmount is the sanity ceiling for a single statement amount. Values
// above it are taken as extraction artifacts, not real charges.
var maxAmount = decimal.New(10000000, -2)

// ParseLine classifies one statement line and extracts its fields.
//
// A line with no dates at all is returned verbatim as a models.TextLine.
// A line with dates must carry exactly two, the first at offset zero; the
// text after the second date must end in exactly one amount. Every failure
// is reported as a *parsererror.LineError wrapping one of the parse error
// kinds, so callers can match with errors.Is.
func ParseLine(line string) (models.Record, error) {
	dates := ExtractDates(line)
	if len(dates) == 0 {
		return models.TextLine{Details: line}, nil
	}
	if len(dates) != 2 {
		return nil, parsererror.NewLineError(line, parsererror.ErrMalformedDateCount)
	}
	if dates[0].Start != 0 {
		return nil, parsererror.NewLineError(line, parsererror.ErrUnexpectedDatePlacement)
	}

	received, err := dateutils.ParseStatementDate(dates[0].Text)
	if err != nil {
		return nil, parsererror.NewLineError(line, fmt.Errorf("%w: %v", parsererror.ErrDateParse, err))
	}
	date, err := dateutils.ParseStatementDate(dates[1].Text)
	if err != nil {
		return nil, parsererror.NewLineError(line, fmt.Errorf("%w: %v", parsererror.ErrDateParse, err))
	}

	remainder := line[dates[1].End+1:]
	amounts := ExtractAmounts(remainder)
	if len(amounts) == 0 {
		return nil, parsererror.NewLineError(line, parsererror.ErrNoAmount)
	}
	if len(amounts) > 1 {
		return nil, parsererror.NewLineError(line, parsererror.ErrAmbiguousAmount)
	}
	amount := amounts[0]
	if amount.Value.GreaterThan(maxAmount) {
		return nil, parsererror.NewLineError(line, parsererror.ErrAmountOutOfRange)
	}
	if !amount.CrDr.Valid() {
		return nil, parsererror.NewLineError(line, parsererror.ErrUnrecognisedSuffix)
	}
	if !strings.Contains(remainder, currencyutils.FormatGrouped(amount.Value)) {
		return nil, parsererror.NewLineError(line, parsererror.ErrAmountTextNotFound)
	}

	details := remainder[:amount.Start] + remainder[amount.End:]
	details = strings.TrimSpace(strings.ReplaceAll(details, ",", " "))

	return models.Transaction{
		Received:    received,
		Date:        date,
		Amount:      amount.Value,
		CrDr:        amount.CrDr,
		Contactless: strings.HasPrefix(details, ContactlessMarker),
		Details:     details,
	}, nil
}
