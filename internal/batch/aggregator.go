// Package batch consolidates a folder of statement files into one CSV
// covering the whole date range.
package batch

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"fjacquet/hsbc-csv/internal/dateutils"
	"fjacquet/hsbc-csv/internal/fileutils"
	"fjacquet/hsbc-csv/internal/logging"
	"fjacquet/hsbc-csv/internal/models"
)

// DateRange represents a date range with start and end dates
type DateRange struct {
	Start time.Time
	End   time.Time
}

// String returns the date range in the format "YYYY-MM-DD_YYYY-MM-DD"
func (dr DateRange) String() string {
	if dr.Start.IsZero() || dr.End.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s_%s",
		dr.Start.Format(dateutils.DateLayoutISO),
		dr.End.Format(dateutils.DateLayoutISO))
}

// Merge combines this date range with another, returning the overall range
func (dr DateRange) Merge(other DateRange) DateRange {
	start := dr.Start
	end := dr.End

	// Handle zero times
	if dr.Start.IsZero() {
		start = other.Start
	} else if !other.Start.IsZero() && other.Start.Before(start) {
		start = other.Start
	}

	if dr.End.IsZero() {
		end = other.End
	} else if !other.End.IsZero() && other.End.After(end) {
		end = other.End
	}

	return DateRange{Start: start, End: end}
}

// BatchAggregator consolidates the statements of one folder. Statements all
// belong to the same card, so the unit of consolidation is the folder.
type BatchAggregator struct {
	logger logging.Logger
}

// NewBatchAggregator creates a new BatchAggregator instance
func NewBatchAggregator(logger logging.Logger) *BatchAggregator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &BatchAggregator{
		logger: logger,
	}
}

// DiscoverStatements returns the statement PDFs under inputDir in sorted
// order. Statement file names start with their YYYY-MM-DD statement date, so
// sorted order is chronological order.
func (ba *BatchAggregator) DiscoverStatements(inputDir string) ([]string, error) {
	files, err := fileutils.ListFilesWithExtension(inputDir, ".pdf")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .pdf files found in %s", inputDir)
	}

	ba.logger.Info("Discovered statement files",
		logging.Field{Key: logging.FieldCount, Value: len(files)})

	return files, nil
}

// CalculateDateRange merges the statement dates taken from the YYYY-MM-DD
// file name prefixes. Files without the prefix do not contribute.
func (ba *BatchAggregator) CalculateDateRange(files []string) DateRange {
	var overall DateRange
	for _, file := range files {
		date, err := dateutils.StatementDateFromFilename(file)
		if err != nil {
			ba.logger.Debug("Statement file name carries no date prefix",
				logging.Field{Key: logging.FieldFile, Value: file})
			continue
		}
		overall = overall.Merge(DateRange{Start: date, End: date})
	}
	return overall
}

// AggregateRows parses every file through parseFunc and concatenates the
// resulting rows. Statement order and line order are preserved; rows are
// never re-sorted because free-text lines only make sense next to the
// transactions they belong to.
func (ba *BatchAggregator) AggregateRows(files []string, parseFunc func(string) ([]models.Row, error)) ([]models.Row, error) {
	var allRows []models.Row

	ba.logger.Info("Aggregating rows from statement files",
		logging.Field{Key: logging.FieldCount, Value: len(files)})

	for _, file := range files {
		ba.logger.Debug("Processing file",
			logging.Field{Key: logging.FieldFile, Value: filepath.Base(file)})

		rows, err := parseFunc(file)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", file, err)
		}

		ba.logger.Debug("Loaded rows from file",
			logging.Field{Key: logging.FieldCount, Value: len(rows)},
			logging.Field{Key: logging.FieldFile, Value: filepath.Base(file)})

		allRows = append(allRows, rows...)
	}

	// Log potential duplicates but keep every row
	ba.detectAndLogDuplicates(allRows)

	ba.logger.Info("Aggregated rows from statement files",
		logging.Field{Key: logging.FieldCount, Value: len(allRows)})

	return allRows, nil
}

// detectAndLogDuplicates warns about transaction rows repeating the same
// date, amount and details, which usually means a statement was supplied
// twice. Nothing is removed.
func (ba *BatchAggregator) detectAndLogDuplicates(rows []models.Row) {
	duplicateCount := 0

	for i := 0; i < len(rows)-1; i++ {
		if !rows[i].IsTransaction() {
			continue
		}
		for j := i + 1; j < len(rows); j++ {
			if !ba.arePotentialDuplicates(rows[i], rows[j]) {
				continue
			}
			duplicateCount++
			ba.logger.Warn("Potential duplicate transaction",
				logging.Field{Key: "date", Value: rows[i].ReceivedDate},
				logging.Field{Key: "amount", Value: rows[i].Amount},
				logging.Field{Key: "details", Value: rows[i].Details})
			break // Only log once per transaction
		}
	}

	if duplicateCount > 0 {
		ba.logger.Warn("Found potential duplicate transactions",
			logging.Field{Key: logging.FieldCount, Value: duplicateCount})
	}
}

// arePotentialDuplicates checks if two transaction rows might be duplicates
func (ba *BatchAggregator) arePotentialDuplicates(r1, r2 models.Row) bool {
	if !r2.IsTransaction() {
		return false
	}
	if r1.ReceivedDate != r2.ReceivedDate {
		return false
	}
	if r1.Amount != r2.Amount {
		return false
	}

	details1 := strings.ToLower(strings.TrimSpace(r1.Details))
	details2 := strings.ToLower(strings.TrimSpace(r2.Details))
	return details1 == details2
}

// GenerateOutputFilename creates a filename for the consolidated output.
// Format: transactions_{start_date}_{end_date}.csv
func (ba *BatchAggregator) GenerateOutputFilename(dateRange DateRange) string {
	if !dateRange.Start.IsZero() && !dateRange.End.IsZero() {
		return fmt.Sprintf("transactions_%s.csv", dateRange.String())
	}

	// Fallback when no file name carried a statement date
	return "transactions.csv"
}

// GenerateSourceFileHeader creates a header comment listing source files.
// The header carries no timestamp so repeated runs over the same statements
// produce identical output.
func (ba *BatchAggregator) GenerateSourceFileHeader(sourceFiles []string) string {
	if len(sourceFiles) == 0 {
		return ""
	}

	var header strings.Builder
	header.WriteString(fmt.Sprintf("# Consolidated from %d statement files:\n", len(sourceFiles)))
	for _, file := range sourceFiles {
		header.WriteString(fmt.Sprintf("# - %s\n", filepath.Base(file)))
	}
	header.WriteString("#\n")

	return header.String()
}
