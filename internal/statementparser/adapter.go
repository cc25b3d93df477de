package statementparser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"fjacquet/hsbc-csv/internal/fileutils"
	"fjacquet/hsbc-csv/internal/logging"
	"fjacquet/hsbc-csv/internal/models"
	"fjacquet/hsbc-csv/internal/parser"
	"fjacquet/hsbc-csv/internal/tabula"
)

// Adapter implements parser.Parser for HSBC statement PDFs.
type Adapter struct {
	parser.BaseParser
	extractor tabula.Extractor
}

// NewAdapter creates a new statement parser adapter. A nil extractor means
// the package-level extractor is used, which cmd wiring configures at
// startup.
func NewAdapter(logger logging.Logger, extractor tabula.Extractor) *Adapter {
	return &Adapter{
		BaseParser: parser.NewBaseParser(logger),
		extractor:  extractor,
	}
}

// activeExtractor resolves the extractor at call time so adapters built
// before startup wiring still pick up the configured one.
func (a *Adapter) activeExtractor() tabula.Extractor {
	if a.extractor != nil {
		return a.extractor
	}
	return defaultExtractor
}

// Parse implements parser.Parser.
func (a *Adapter) Parse(r io.Reader) ([]models.Record, error) {
	return ParseWithExtractor(r, a.activeExtractor())
}

// ValidateFormat implements parser.Parser.
func (a *Adapter) ValidateFormat(file string) (bool, error) {
	return ValidateFormat(file)
}

// ConvertToCSV implements parser.Parser.
func (a *Adapter) ConvertToCSV(inputFile, outputFile string) error {
	return ConvertToCSVWithExtractor(inputFile, outputFile, a.activeExtractor())
}

// BatchConvert converts every .pdf file in inputDir, writing one CSV per
// statement into outputDir. It returns the number of files converted.
func (a *Adapter) BatchConvert(inputDir, outputDir string) (int, error) {
	files, err := fileutils.ListFilesWithExtension(inputDir, ".pdf")
	if err != nil {
		return 0, err
	}
	if len(files) == 0 {
		return 0, fmt.Errorf("no .pdf files found in %s", inputDir)
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
