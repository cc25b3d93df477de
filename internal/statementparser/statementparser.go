// Package statementparser parses HSBC credit-card statement PDFs. Table text
// is pulled out of the PDF by the external Tabula tool, split into lines and
// run through the shared line processor, one record per statement line.
package statementparser

import (
	"fmt"
	"io"
	"os"

	"fjacquet/hsbc-csv/internal/categorizer"
	"fjacquet/hsbc-csv/internal/common"
	"fjacquet/hsbc-csv/internal/dateutils"
	"fjacquet/hsbc-csv/internal/logging"
	"fjacquet/hsbc-csv/internal/models"
	"fjacquet/hsbc-csv/internal/tabula"
	"fjacquet/hsbc-csv/internal/textutils"
	"fjacquet/hsbc-csv/internal/validation"
)

var (
	log = logging.GetLogger()

	// defaultExtractor is the Tabula runner used when a caller does not
	// inject one. Unconfigured it fails with a DataExtractionError naming
	// the missing jar path.
	defaultExtractor tabula.Extractor = tabula.NewJavaExtractor("", "", nil)

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

// SetExtractor replaces the Tabula extractor used by the package-level
// functions.
func SetExtractor(extractor tabula.Extractor) {
	if extractor != nil {
		defaultExtractor = extractor
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

// Parse reads PDF data from r and returns the parsed records.
func Parse(r io.Reader) ([]models.Record, error) {
	return ParseWithExtractor(r, defaultExtractor)
}

// ParseWithExtractor spools the reader to a temporary file and parses it.
// The extraction tool is a separate process and can only read files.
func ParseWithExtractor(r io.Reader, extractor tabula.Extractor) ([]models.Record, error) {
	tempFile, err := os.CreateTemp("", "*.pdf")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary PDF file: %w", err)
	}
	defer func() {
		if err := os.Remove(tempFile.Name()); err != nil {
			log.WithError(err).Warn("Failed to remove temporary file",
				logging.Field{Key: logging.FieldFile, Value: tempFile.Name()})
		}
	}()

	_, err = io.Copy(tempFile, r)
	if closeErr := tempFile.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, fmt.Errorf("failed to write temporary PDF file: %w", err)
	}

	return ParseFileWithExtractor(tempFile.Name(), extractor)
}

// ParseFile extracts and parses the statement at pdfFile using the
// configured extractor.
func ParseFile(pdfFile string) ([]models.Record, error) {
	return ParseFileWithExtractor(pdfFile, defaultExtractor)
}

// ParseFileWithExtractor extracts and parses the statement at pdfFile.
func ParseFileWithExtractor(pdfFile string, extractor tabula.Extractor) ([]models.Record, error) {
	log.Info("Parsing statement PDF",
		logging.Field{Key: logging.FieldFile, Value: pdfFile})

	text, err := extractor.ExtractTables(pdfFile)
	if err != nil {
		return nil, err
	}

	return ParseText(text)
}

// ParseText parses already-extracted statement text into records.
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

// BuildRows projects records onto CSV rows stamped with their statement
// provenance. The statement date comes from the YYYY-MM-DD prefix of the
// file name; files without the prefix get rows with an empty statement date.
func BuildRows(records []models.Record, statementPath string) []models.Row {
	stmt := models.StatementInfo{Path: statementPath}
	date, err := dateutils.StatementDateFromFilename(statementPath)
	if err != nil {
		log.Warn("Statement file name carries no date prefix",
			logging.Field{Key: logging.FieldFile, Value: statementPath})
	} else {
		stmt.Date = date
	}

	rows := models.NewRows(records, stmt)
	if activeCategorizer != nil {
		activeCategorizer.CategorizeRows(rows)
	}
	return rows
}

// ConvertToCSV converts a statement PDF to the standard CSV format.
func ConvertToCSV(inputFile, outputFile string) error {
	return ConvertToCSVWithExtractor(inputFile, outputFile, defaultExtractor)
}

// ConvertToCSVWithExtractor converts a statement PDF using the given
// extractor. Rows are validated before anything is written.
func ConvertToCSVWithExtractor(inputFile, outputFile string, extractor tabula.Extractor) error {
	records, err := ParseFileWithExtractor(inputFile, extractor)
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

// ValidateFormat checks the PDF magic header without invoking the
// extraction tool.
func ValidateFormat(file string) (bool, error) {
	f, err := os.Open(file) // #nosec G304 -- caller-supplied input path
	if err != nil {
		return false, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file",
				logging.Field{Key: logging.FieldFile, Value: file})
		}
	}()

	header := make([]byte, 5)
	if _, err := io.ReadFull(f, header); err != nil {
		// Too short to carry the magic bytes
		return false, nil
	}

	return string(header) == "%PDF-", nil
}
