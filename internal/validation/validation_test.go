package validation_test

import (
	"errors"
	"testing"

	"fjacquet/hsbc-csv/internal/models"
	"fjacquet/hsbc-csv/internal/parsererror"
	"fjacquet/hsbc-csv/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTransactionRow() models.Row {
	return models.Row{
		StatementFile:   "statements/2024-02-28 Statement.pdf",
		StatementDate:   "2024-02-28",
		ReceivedDate:    "2024-01-05",
		TransactionDate: "2024-01-04",
		Amount:          "11.78",
		CrDr:            "Payment",
		Contactless:     "true",
		Details:         "MS NEWSAGENT LONDIS LONDON SW19",
	}
}

func validTextRow() models.Row {
	return models.Row{
		StatementFile: "statements/2024-02-28 Statement.pdf",
		StatementDate: "2024-02-28",
		Details:       "Your Statement Page 2 of 4",
	}
}

func TestValidateRows(t *testing.T) {
	tests := []struct {
		name        string
		modifyRow   func(*models.Row)
		textRow     bool
		errContains string
	}{
		{
			name:      "valid transaction row",
			modifyRow: func(r *models.Row) {},
		},
		{
			name:      "valid text row",
			textRow:   true,
			modifyRow: func(r *models.Row) {},
		},
		{
			name: "statement date not ISO",
			modifyRow: func(r *models.Row) {
				r.StatementDate = "28-02-2024"
			},
			errContains: "not a YYYY-MM-DD date",
		},
		{
			name: "received date not a date",
			modifyRow: func(r *models.Row) {
				r.ReceivedDate = "05 Jan 24"
			},
			errContains: "not a YYYY-MM-DD date",
		},
		{
			name: "amount not a number",
			modifyRow: func(r *models.Row) {
				r.Amount = "abc"
			},
			errContains: "not a decimal number",
		},
		{
			name: "amount with one decimal place",
			modifyRow: func(r *models.Row) {
				r.Amount = "11.7"
			},
			errContains: "not normalized to two decimal places",
		},
		{
			name: "amount with grouping separator",
			modifyRow: func(r *models.Row) {
				r.Amount = "4,000.00"
			},
			errContains: "not a decimal number",
		},
		{
			name: "unknown crdr tag",
			modifyRow: func(r *models.Row) {
				r.CrDr = "XX"
			},
			errContains: "not one of CR, DR, Payment",
		},
		{
			name: "contactless not boolean",
			modifyRow: func(r *models.Row) {
				r.Contactless = "yes"
			},
			errContains: "not a boolean",
		},
		{
			name: "transaction row missing dates",
			modifyRow: func(r *models.Row) {
				r.ReceivedDate = ""
				r.TransactionDate = ""
			},
			errContains: "missing its dates",
		},
		{
			name:    "text row with crdr tag",
			textRow: true,
			modifyRow: func(r *models.Row) {
				r.CrDr = "CR"
			},
			errContains: "text row carries a crdr tag",
		},
		{
			name:    "text row with contactless flag",
			textRow: true,
			modifyRow: func(r *models.Row) {
				r.Contactless = "false"
			},
			errContains: "text row carries a contactless flag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := validTransactionRow()
			if tt.textRow {
				row = validTextRow()
			}
			tt.modifyRow(&row)

			err := validation.ValidateRows("test.pdf", []models.Row{row})
			if tt.errContains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestValidateRowsReportsRowNumber(t *testing.T) {
	rows := []models.Row{
		validTransactionRow(),
		validTextRow(),
		validTransactionRow(),
	}
	rows[2].Amount = "bad"

	err := validation.ValidateRows("statements/2024-02-28 Statement.pdf", rows)
	require.Error(t, err)

	var vErr *parsererror.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, 3, vErr.Row)
	assert.Equal(t, "statements/2024-02-28 Statement.pdf", vErr.FilePath)
}

func TestValidateRowsEmpty(t *testing.T) {
	assert.NoError(t, validation.ValidateRows("test.pdf", nil))
}
