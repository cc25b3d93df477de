package common

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/hsbc-csv/internal/logging"
	"fjacquet/hsbc-csv/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRows() []models.Row {
	return []models.Row{
		{
			StatementFile:   "statements/2024-02-28 Statement.pdf",
			StatementDate:   "2024-02-28",
			ReceivedDate:    "2024-01-05",
			TransactionDate: "2024-01-04",
			Amount:          "11.78",
			CrDr:            "Payment",
			Contactless:     "true",
			Details:         "MS NEWSAGENT LONDIS LONDON SW19",
		},
		{
			StatementFile: "statements/2024-02-28 Statement.pdf",
			StatementDate: "2024-02-28",
			Details:       "Your Statement Page 2 of 4",
		},
		{
			StatementFile:   "statements/2024-02-28 Statement.pdf",
			StatementDate:   "2024-02-28",
			ReceivedDate:    "2024-01-08",
			TransactionDate: "2024-01-08",
			Amount:          "4000.00",
			CrDr:            "CR",
			Contactless:     "false",
			Details:         "PAYMENT - THANK YOU",
		},
	}
}

func TestWriteRowsToCSV(t *testing.T) {
	SetLogger(&logging.MockLogger{})
	tempDir := t.TempDir()
	outputPath := filepath.Join(tempDir, "output.csv")

	err := WriteRowsToCSV(testRows(), outputPath)
	assert.NoError(t, err, "WriteRowsToCSV should not return an error")

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err, "Failed to read output CSV file")

	csvContent := string(content)
	assert.Contains(t, csvContent, "statement_fpath", "Output CSV should contain the statement file header")
	assert.Contains(t, csvContent, "received_date", "Output CSV should contain the received date header")
	assert.Contains(t, csvContent, "is_contactless", "Output CSV should contain the contactless header")
	assert.Contains(t, csvContent, "MS NEWSAGENT LONDIS LONDON SW19")
	assert.Contains(t, csvContent, "PAYMENT - THANK YOU")
	assert.Contains(t, csvContent, "4000.00")

	// Text-line rows keep their transaction columns empty
	lines := strings.Split(strings.TrimSpace(csvContent), "\n")
	require.Len(t, lines, 4, "Header plus one line per row")
	assert.Contains(t, lines[2], ",,,,")

	err = WriteRowsToCSV(nil, outputPath)
	assert.Error(t, err, "WriteRowsToCSV should reject nil rows")
}

func TestWriteRowsToCSVCreatesDirectory(t *testing.T) {
	SetLogger(&logging.MockLogger{})
	tempDir := t.TempDir()
	outputPath := filepath.Join(tempDir, "nested", "dir", "output.csv")

	err := WriteRowsToCSV(testRows(), outputPath)
	assert.NoError(t, err, "WriteRowsToCSV should create missing parent directories")

	_, err = os.Stat(outputPath)
	assert.NoError(t, err, "Output file should exist")
}

func TestReadCSVFileRoundTrip(t *testing.T) {
	SetLogger(&logging.MockLogger{})
	tempDir := t.TempDir()
	outputPath := filepath.Join(tempDir, "roundtrip.csv")

	want := testRows()
	require.NoError(t, WriteRowsToCSV(want, outputPath))

	got, err := ReadCSVFile[models.Row](outputPath)
	assert.NoError(t, err, "ReadCSVFile should not return an error")
	assert.Equal(t, want, got, "Rows should survive a write/read round trip")
}

func TestReadCSVFileMissingFile(t *testing.T) {
	SetLogger(&logging.MockLogger{})
	_, err := ReadCSVFile[models.Row]("non-existent-file.csv")
	assert.Error(t, err, "ReadCSVFile should return an error for a non-existent file")
}

func TestWriteRowsToWriter(t *testing.T) {
	var buf bytes.Buffer
	err := WriteRowsToWriter(testRows(), &buf)
	assert.NoError(t, err, "WriteRowsToWriter should not return an error")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "statement_fpath,statement_date,received_date,transaction_date,amount,crdr,is_contactless,details,category", lines[0])

	err = WriteRowsToWriter(nil, &buf)
	assert.Error(t, err, "WriteRowsToWriter should reject nil rows")
}

func TestSetDelimiter(t *testing.T) {
	SetLogger(&logging.MockLogger{})
	SetDelimiter(';')
	defer SetDelimiter(',')

	tempDir := t.TempDir()
	outputPath := filepath.Join(tempDir, "semicolon.csv")
	require.NoError(t, WriteRowsToCSV(testRows(), outputPath))

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "statement_fpath;statement_date",
		"Configured delimiter should separate header columns")

	// Reads honor the same delimiter
	got, err := ReadCSVFile[models.Row](outputPath)
	assert.NoError(t, err)
	assert.Equal(t, testRows(), got)
}
