// Package models provides the data structures used throughout the application.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrDr classifies what a statement amount does to the card balance, derived
// from the optional trailing suffix on the amount text.
type CrDr string

const (
	// CrDrCredit marks refunds and repayments (trailing CR suffix).
	CrDrCredit CrDr = "CR"

	// CrDrDebit marks explicitly flagged charges (trailing DR suffix).
	CrDrDebit CrDr = "DR"

	// CrDrPayment is the default interpretation when no suffix is present.
	CrDrPayment CrDr = "Payment"
)

// Valid reports whether c is one of the three recognised tags.
func (c CrDr) Valid() bool {
	switch c {
	case CrDrCredit, CrDrDebit, CrDrPayment:
		return true
	}
	return false
}

// Record is the outcome of parsing one statement line. Exactly two variants
// exist: Transaction for lines that encode a transaction, TextLine for lines
// that do not. A line matching neither shape is a parse error, not a Record.
type Record interface {
	isRecord()
}

// Transaction is a fully parsed statement line. All fields are always set; a
// line without the two leading dates and a trailing amount never becomes a
// Transaction. Values are immutable facts about one line of source text.
type Transaction struct {
	// Received is the date the transaction was received/posted (first date
	// on the line).
	Received time.Time

	// Date is the date the transaction occurred (second date on the line).
	Date time.Time

	// Amount is the statement amount, normalized to 2 decimal places with
	// grouping separators stripped.
	Amount decimal.Decimal

	// CrDr is the credit/debit classification of the amount.
	CrDr CrDr

	// Contactless is true when the description opens with the ))) glyphs.
	Contactless bool

	// Details is the free-text description with the date and amount
	// substrings excised, commas replaced by spaces and surrounding
	// whitespace trimmed.
	Details string
}

// TextLine is a statement line that carries no transaction: page headers,
// wrapped description continuations, summary text. It is not an error.
type TextLine struct {
	// Details is the source line, verbatim.
	Details string
}

func (Transaction) isRecord() {}
func (TextLine) isRecord()    {}

// RecordDetails returns the free-text details of either record variant.
func RecordDetails(r Record) string {
	switch rec := r.(type) {
	case Transaction:
		return rec.Details
	case TextLine:
		return rec.Details
	}
	return ""
}
