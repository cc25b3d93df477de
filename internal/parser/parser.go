package parser

import (
	"io"

	"fjacquet/hsbc-csv/internal/logging"
	"fjacquet/hsbc-csv/internal/models"
)

// Parser is the interface implemented by every statement parser. A parser
// owns one input format (PDF statements, extracted text) and turns it into
// the standardized Record stream and CSV row layout.
//
// Implementations return the typed errors from the parsererror package for
// specific failures (DataExtractionError, LineError, InvalidFormatError) so
// callers can match on them.
type Parser interface {
	// Parse reads statement data from r and returns the parsed records in
	// statement order.
	Parse(r io.Reader) ([]models.Record, error)

	// ValidateFormat cheaply checks whether the file looks like the format
	// this parser understands, without fully parsing it.
	ValidateFormat(file string) (bool, error)

	// ConvertToCSV parses inputFile and writes the resulting rows to
	// outputFile.
	ConvertToCSV(inputFile, outputFile string) error

	// BatchConvert converts every matching file in inputDir into outputDir,
	// one CSV per statement, and returns the number of files processed.
	BatchConvert(inputDir, outputDir string) (int, error)

	// WriteToCSV writes already-built rows to csvFile.
	WriteToCSV(rows []models.Row, csvFile string) error

	// SetLogger configures the logger used by the parser.
	SetLogger(logger logging.Logger)
}

// LoggerConfigurable is the subset of Parser used by callers that only need
// to rewire logging.
type LoggerConfigurable interface {
	SetLogger(logger logging.Logger)
}
