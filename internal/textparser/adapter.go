package textparser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"fjacquet/hsbc-csv/internal/fileutils"
	"fjacquet/hsbc-csv/internal/logging"
	"fjacquet/hsbc-csv/internal/models"
	"fjacquet/hsbc-csv/internal/parser"
)

// Adapter implements parser.Parser for extracted statement text files.
type Adapter struct {
	parser.BaseParser
}

// NewAdapter creates a new text parser adapter.
func NewAdapter(logger logging.Logger) *Adapter {
	return &Adapter{
		BaseParser: parser.NewBaseParser(logger),
	}
}

// Parse implements parser.Parser.
func (a *Adapter) Parse(r io.Reader) ([]models.Record, error) {
	return Parse(r)
}

// ValidateFormat implements parser.Parser.
func (a *Adapter) ValidateFormat(file string) (bool, error) {
	return ValidateFormat(file)
}

// ConvertToCSV implements parser.Parser.
func (a *Adapter) ConvertToCSV(inputFile, outputFile string) error {
	return ConvertToCSV(inputFile, outputFile)
}

// BatchConvert converts every .txt file in inputDir, writing one CSV per
// file into outputDir. It returns the number of files converted.
func (a *Adapter) BatchConvert(inputDir, outputDir string) (int, error) {
	files, err := fileutils.ListFilesWithExtension(inputDir, ".txt")
	if err != nil {
		return 0, err
	}
	if len(files) == 0 {
		return 0, fmt.Errorf("no .txt files found in %s", inputDir)
	}

	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		return 0, err
	}

	count := 0
	for _, file := range files {
		base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		outputFile := filepath.Join(outputDir, base+".csv")
		if err := a.ConvertToCSV(file, outputFile); err != nil {
			return count, fmt.Errorf("failed to convert %s: %w", file, err)
		}
		count++
	}

	return count, nil
}

// SetLogger implements parser.Parser.
func (a *Adapter) SetLogger(logger logging.Logger) {
	a.BaseParser.SetLogger(logger)
	SetLogger(logger)
}
