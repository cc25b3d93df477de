// Package parser provides the base parser functionality and common interfaces.
package parser

import (
	"fjacquet/hsbc-csv/internal/common"
	"fjacquet/hsbc-csv/internal/logging"
	"fjacquet/hsbc-csv/internal/models"
)

// BaseParser provides common functionality for all parser implementations.
//
// Parsers embed BaseParser to inherit logger handling and CSV output:
//
//	type MyParser struct {
//		BaseParser
//		// parser-specific fields
//	}
type BaseParser struct {
	logger logging.Logger
}

// NewBaseParser creates a new BaseParser instance with the provided logger.
// If logger is nil, a default logger will be used.
func NewBaseParser(logger logging.Logger) BaseParser {
	if logger == nil {
		logger = logging.GetLogger()
	}

	return BaseParser{
		logger: logger,
	}
}

// SetLogger allows parsers to configure their logging instance.
func (b *BaseParser) SetLogger(logger logging.Logger) {
	if logger != nil {
		b.logger = logger
	}
}

// GetLogger returns the current logger instance.
func (b *BaseParser) GetLogger() logging.Logger {
	return b.logger
}

// WriteToCSV writes rows through the standardized common writer so every
// parser produces the same CSV surface.
func (b *BaseParser) WriteToCSV(rows []models.Row, csvFile string) error {
	b.logger.Info("Writing rows to CSV using common writer",
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(rows)})

	return common.WriteRowsToCSV(rows, csvFile)
}
