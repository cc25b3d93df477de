package factory

import (
	"fmt"

	"fjacquet/hsbc-csv/internal/logging"
	"fjacquet/hsbc-csv/internal/parser"
	"fjacquet/hsbc-csv/internal/statementparser"
	"fjacquet/hsbc-csv/internal/textparser"
)

// ParserType defines the types of parsers available.
type ParserType string

const (
	// PDF parses statement PDFs through the Tabula extraction tool.
	PDF ParserType = "pdf"

	// Text parses statement text that was already extracted from a PDF.
	Text ParserType = "text"
)

// GetParser returns a new instance of the appropriate parser for the given type.
// It acts as a factory for creating Parser implementations.
// Deprecated: Use GetParserWithLogger instead for dependency injection.
func GetParser(parserType ParserType) (parser.Parser, error) {
	logger := logging.GetLogger()
	return GetParserWithLogger(parserType, logger)
}

// GetParserWithLogger returns a new instance of the appropriate parser for the given type
// with the provided logger for dependency injection.
func GetParserWithLogger(parserType ParserType, logger logging.Logger) (parser.Parser, error) {
	switch parserType {
	case PDF:
		return statementparser.NewAdapter(logger, nil), nil
	case Text:
		return textparser.NewAdapter(logger), nil
	default:
		return nil, fmt.Errorf("unknown parser type: %s", parserType)
	}
}
