// Package common contains shared functionality for command handlers
package common

import (
	"errors"
	"fmt"

	"fjacquet/hsbc-csv/internal/logging"
	"fjacquet/hsbc-csv/internal/parser"
)

// ErrInvalidFormat is returned when a file fails format validation.
var ErrInvalidFormat = errors.New("the file is not in a valid format")

// ProcessFile processes a single file using the given parser. Failures are
// fatal; commands that handle errors themselves use ProcessFileWithError.
func ProcessFile(p parser.Parser, inputFile, outputFile string, validate bool, log logging.Logger) {
	if err := ProcessFileWithError(p, inputFile, outputFile, validate, log); err != nil {
		log.Fatalf("%v", err)
	}
}

// ProcessFileWithError processes a single file using the given parser and
// reports failures to the caller.
func ProcessFileWithError(p parser.Parser, inputFile, outputFile string, validate bool, log logging.Logger) error {
	// Set the logger on the parser so its output follows the command's
	p.SetLogger(log)

	if validate {
		log.Info("Validating format...")
		valid, err := p.ValidateFormat(inputFile)
		if err != nil {
			return fmt.Errorf("error validating file: %w", err)
		}
		if !valid {
			return ErrInvalidFormat
		}
		log.Info("Validation successful.")
	}

	if err := p.ConvertToCSV(inputFile, outputFile); err != nil {
		return fmt.Errorf("error converting to CSV: %w", err)
	}

	log.Info("Conversion completed successfully!")
	return nil
}
