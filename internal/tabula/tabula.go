// Package tabula invokes the Tabula table-extraction tool to pull tabular
// text out of PDF statements. Tabula is a Java program distributed as a jar;
// its output is byte-encoded in the Windows-1252 legacy encoding, which this
// package decodes before handing text to the parsers.
package tabula

import (
	"bytes"
	"os/exec"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"fjacquet/hsbc-csv/internal/logging"
	"fjacquet/hsbc-csv/internal/parsererror"
)

// DefaultPages extracts every page of the statement.
const DefaultPages = "all"

// Extractor extracts table text from a PDF file. Implementations return the
// text fully decoded; callers never see raw tool bytes.
type Extractor interface {
	ExtractTables(pdfPath string) (string, error)
}

// JavaExtractor runs the Tabula jar through the java runtime. This is the
// production implementation; it requires java on the PATH and a configured
// jar location.
type JavaExtractor struct {
	JarPath string
	Pages   string
	logger  logging.Logger
}

// NewJavaExtractor creates a JavaExtractor for the given jar path. An empty
// pages selection defaults to all pages.
func NewJavaExtractor(jarPath, pages string, logger logging.Logger) *JavaExtractor {
	if pages == "" {
		pages = DefaultPages
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &JavaExtractor{
		JarPath: jarPath,
		Pages:   pages,
		logger:  logger,
	}
}

// ExtractTables runs Tabula over the PDF and returns its decoded output.
func (e *JavaExtractor) ExtractTables(pdfPath string) (string, error) {
	if e.JarPath == "" {
		return "", &parsererror.DataExtractionError{
			FilePath: pdfPath,
			Tool:     "tabula",
			Reason:   "tabula jar path is not configured",
		}
	}

	e.logger.Debug("Running Tabula extraction",
		logging.Field{Key: logging.FieldJarPath, Value: e.JarPath},
		logging.Field{Key: logging.FieldPages, Value: e.Pages},
		logging.Field{Key: logging.FieldFile, Value: pdfPath})

	cmd := exec.Command("java", "-jar", e.JarPath, "--pages", e.Pages, "--silent", pdfPath) // #nosec G204 -- jar path comes from configuration
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		reason := strings.TrimSpace(stderr.String())
		if reason == "" {
			reason = "tabula run failed"
		}
		return "", &parsererror.DataExtractionError{
			FilePath: pdfPath,
			Tool:     "tabula",
			Reason:   reason,
			Err:      err,
		}
	}

	text, err := DecodeWindows1252(stdout.Bytes())
	if err != nil {
		return "", &parsererror.DataExtractionError{
			FilePath: pdfPath,
			Tool:     "tabula",
			Reason:   "failed to decode tool output",
			Err:      err,
		}
	}

	return text, nil
}

// DecodeWindows1252 decodes raw tool output bytes into text. Tabula inherits
// the statement PDF's single-byte legacy encoding rather than emitting UTF-8.
func DecodeWindows1252(raw []byte) (string, error) {
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
