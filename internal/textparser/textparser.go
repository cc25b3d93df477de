// Package textparser parses statement text that has already been extracted
// from a PDF, for workflows where Tabula runs separately or the extraction
// output was saved for inspection. The line handling is identical to the
// PDF path; only the extraction step is skipped.
package textparser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"fjacquet/hsbc-csv/internal/categorizer"
	"fjacquet/hsbc-csv/internal/common"
	"fjacquet/hsbc-csv/internal/dateutils"
	"fjacquet/hsbc-csv/internal/fileutils"
	"fjacquet/hsbc-csv/internal/logging"
	"fjacquet/hsbc-csv/internal/models"
	"fjacquet/hsbc-csv/internal/parsererror"
	"fjacquet/hsbc-csv/internal/textutils"
	"fjacquet/hsbc-csv/internal/validation"
)

var (
	log = logging.GetLogger()

	// strict aborts parsing on the first malformed line instead of
	// skipping it.
	strict = true

	// activeCategorizer, when set, fills the category column of built rows.
	activeCategorizer *categorizer.Categorizer
)

// SetLogger allows setting a configured logger
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// SetStrict switches between strict and lenient line handling.
func SetStrict(s bool) {
	strict = s
}

// SetCategorizer wires a categorizer into row building. Passing nil disables
// categorization.
func SetCategorizer(c *categorizer.Categorizer) {
	activeCategorizer = c
}

// Parse reads extracted statement text from r and returns the parsed
// records.
func Parse(r io.Reader) ([]models.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return ParseText(string(data))
}

// ParseFile parses the extracted statement text stored at txtFile.
func ParseFile(txtFile string) ([]models.Record, error) {
	log.Info("Parsing extracted statement text",
		logging.Field{Key: logging.FieldFile, Value: txtFile})

	data, err := fileutils.ReadFile(txtFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read text file: %w", err)
	}

	if strings.HasPrefix(string(data), "%PDF-") {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       txtFile,
			ExpectedFormat: "extracted statement text",
			Msg:            "file carries a PDF header; convert it with the pdf command",
		}
	}

	return ParseText(string(data))
}

// ParseText parses extracted statement text into records.
func ParseText(text string) ([]models.Record, error) {
	lines := textutils.SplitLines(text)

	processor := common.NewLineProcessor(log, strict)
	records, err := processor.ProcessLines(lines)
	if err != nil {
		return nil, err
	}

	log.Info("Parsed statement lines",
		logging.Field{Key: "lines", Value: len(lines)},
		logging.Field{Key: logging.FieldCount, Value: len(records)})

	return records, nil
}

// BuildRows projects records onto CSV rows stamped with their source file.
// The statement date comes from the YYYY-MM-DD prefix of the file name;
// files without the prefix get rows with an empty statement date.
func BuildRows(records []models.Record, sourcePath string) []models.Row {
	stmt := models.StatementInfo{Path: sourcePath}
	date, err := dateutils.StatementDateFromFilename(sourcePath)
	if err != nil {
		log.Warn("Statement file name carries no date prefix",
			logging.Field{Key: logging.FieldFile, Value: sourcePath})
	} else {
		stmt.Date = date
	}

	rows := models.NewRows(records, stmt)
	if activeCategorizer != nil {
		activeCategorizer.CategorizeRows(rows)
	}
	return rows
}

// ConvertToCSV converts an extracted text file to the standard CSV format.
func ConvertToCSV(inputFile, outputFile string) error {
	records, err := ParseFile(inputFile)
	if err != nil {
		return err
	}

	rows := BuildRows(records, inputFile)
	if err := validation.ValidateRows(inputFile, rows); err != nil {
		return err
	}

	log.Info("Writing rows to CSV file",
		logging.Field{Key: logging.FieldCount, Value: len(rows)},
		logging.Field{Key: logging.FieldOutputFile, Value: outputFile})

	return common.WriteRowsToCSV(rows, outputFile)
}

// ValidateFormat checks that the file holds plain text with some content.
// PDF files belong to the statement parser and are rejected here.
func ValidateFormat(file string) (bool, error) {
	data, err := os.ReadFile(file) // #nosec G304 -- caller-supplied input path
	if err != nil {
		return false, err
	}

	if strings.HasPrefix(string(data), "%PDF-") {
		return false, nil
	}

	lines := textutils.SplitLines(string(data))
	return textutils.CountNonBlank(lines) > 0, nil
}
