// Package validation checks produced statement rows before they are written
// out, so malformed output is caught at the source rather than downstream.
package validation

import (
	"fmt"
	"time"

	"fjacquet/hsbc-csv/internal/dateutils"
	"fjacquet/hsbc-csv/internal/models"
	"fjacquet/hsbc-csv/internal/parsererror"

	"github.com/shopspring/decimal"
)

// ValidateRows checks every row for internal consistency and reports the
// first violation as a ValidationError carrying the 1-based row number.
func ValidateRows(filePath string, rows []models.Row) error {
	for i, row := range rows {
		if reason := validateRow(row); reason != "" {
			return &parsererror.ValidationError{
				FilePath: filePath,
				Row:      i + 1,
				Reason:   reason,
			}
		}
	}
	return nil
}

func validateRow(row models.Row) string {
	for _, date := range []struct {
		name  string
		value string
	}{
		{"statement_date", row.StatementDate},
		{"received_date", row.ReceivedDate},
		{"transaction_date", row.TransactionDate},
	} {
		if date.value == "" {
			continue
		}
		if _, err := time.Parse(dateutils.DateLayoutISO, date.value); err != nil {
			return fmt.Sprintf("%s %q is not a YYYY-MM-DD date", date.name, date.value)
		}
	}

	if row.IsTransaction() {
		return validateTransactionRow(row)
	}
	return validateTextRow(row)
}

// validateTransactionRow checks the fields that must be populated when the
// row carries an amount.
func validateTransactionRow(row models.Row) string {
	value, err := decimal.NewFromString(row.Amount)
	if err != nil {
		return fmt.Sprintf("amount %q is not a decimal number", row.Amount)
	}
	if row.Amount != value.StringFixed(2) {
		return fmt.Sprintf("amount %q is not normalized to two decimal places", row.Amount)
	}

	if !models.CrDr(row.CrDr).Valid() {
		return fmt.Sprintf("crdr %q is not one of CR, DR, Payment", row.CrDr)
	}

	if row.Contactless != "true" && row.Contactless != "false" {
		return fmt.Sprintf("is_contactless %q is not a boolean", row.Contactless)
	}

	if row.ReceivedDate == "" || row.TransactionDate == "" {
		return "transaction row is missing its dates"
	}

	return ""
}

// validateTextRow checks that a row without an amount carries no stray
// transaction fields.
func validateTextRow(row models.Row) string {
	if row.ReceivedDate != "" || row.TransactionDate != "" {
		return "text row carries transaction dates"
	}
	if row.CrDr != "" {
		return "text row carries a crdr tag"
	}
	if row.Contactless != "" {
		return "text row carries a contactless flag"
	}
	return ""
}
