package models

import (
	"strconv"
	"time"

	"fjacquet/hsbc-csv/internal/dateutils"
)

// StatementInfo identifies the statement file a row came from.
type StatementInfo struct {
	Path string

	// Date is the statement date taken from the YYYY-MM-DD file name
	// prefix; zero when the file name carries no such prefix.
	Date time.Time
}

// Row is the flat CSV projection of one Record together with its statement
// provenance. On text-line rows every transaction field is empty; only
// details and the statement columns are populated.
type Row struct {
	StatementFile   string `csv:"statement_fpath"`
	StatementDate   string `csv:"statement_date"`
	ReceivedDate    string `csv:"received_date"`
	TransactionDate string `csv:"transaction_date"`
	Amount          string `csv:"amount"`
	CrDr            string `csv:"crdr"`
	Contactless     string `csv:"is_contactless"`
	Details         string `csv:"details"`
	Category        string `csv:"category"`
}

// IsTransaction reports whether the row was produced from a Transaction
// record rather than a free-text line.
func (r Row) IsTransaction() bool {
	return r.Amount != ""
}

// NewRow projects a Record onto the CSV surface.
func NewRow(rec Record, stmt StatementInfo) Row {
	row := Row{
		StatementFile: stmt.Path,
		StatementDate: dateutils.ToISODate(stmt.Date),
		Details:       RecordDetails(rec),
	}
	if tx, ok := rec.(Transaction); ok {
		row.ReceivedDate = dateutils.ToISODate(tx.Received)
		row.TransactionDate = dateutils.ToISODate(tx.Date)
		row.Amount = tx.Amount.StringFixed(2)
		row.CrDr = string(tx.CrDr)
		row.Contactless = strconv.FormatBool(tx.Contactless)
	}
	return row
}

// NewRows projects records onto the CSV surface preserving their order.
func NewRows(records []Record, stmt StatementInfo) []Row {
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, NewRow(rec, stmt))
	}
	return rows
}
