// Package common provides the shared line-processing and CSV plumbing used by
// every statement parser.
package common

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fjacquet/hsbc-csv/internal/logging"
	"fjacquet/hsbc-csv/internal/models"

	"github.com/gocarina/gocsv"
)

var log = logging.GetLogger()

// Delimiter is the column separator used for CSV input and output. It is
// wired from the configuration layer at startup; the default matches the
// plain comma-separated files most spreadsheet tools expect.
var Delimiter rune = ','

// SetDelimiter sets the column separator for subsequent CSV reads and writes.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// SetLogger allows setting a configured logger
func SetLogger(logger logging.Logger) {
	if logger == nil {
		return // Don't change the logger if nil is passed
	}
	log = logger
}

// ReadCSVFile reads CSV data into a slice of structs using gocsv.
// This is a generic function that can be used by any consumer of produced
// files; TCSVRow is the struct type that maps to the CSV columns.
func ReadCSVFile[TCSVRow any](filePath string) ([]TCSVRow, error) {
	log.Info("Reading CSV file", logging.Field{Key: logging.FieldFile, Value: filePath})

	file, err := os.Open(filePath) // #nosec G304 -- caller-supplied input path
	if err != nil {
		log.WithError(err).Error("Failed to open CSV file")
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	reader := csv.NewReader(file)
	reader.Comma = Delimiter
	// Consolidated batch files carry "# ..." source lines above the CSV body.
	reader.Comment = '#'

	var rows []TCSVRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		log.WithError(err).Error("Failed to parse CSV file")
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	log.Info("Successfully read CSV data", logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return rows, nil
}

// WriteRowsToCSV writes statement rows to a CSV file in the standardized
// column layout. All parsers use this function so every produced file carries
// the same header and delimiter.
func WriteRowsToCSV(rows []models.Row, csvFile string) error {
	if rows == nil {
		return fmt.Errorf("cannot write nil rows to CSV")
	}

	log.Info("Writing rows to CSV file",
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(rows)})

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
		log.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile) // #nosec G304 -- caller-supplied output path
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := WriteRowsToWriter(rows, file); err != nil {
		log.WithError(err).Error("Failed to marshal rows to CSV")
		return err
	}

	log.Info("Successfully wrote rows to CSV file",
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(rows)})

	return nil
}

// WriteRowsToWriter marshals statement rows onto an already-open writer.
// Consolidated batch output uses this to place a source-file header above the
// CSV body in the same file.
func WriteRowsToWriter(rows []models.Row, w io.Writer) error {
	if rows == nil {
		return fmt.Errorf("cannot write nil rows to CSV")
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	return nil
}
