package common

import (
	"context"
	"runtime"
	"sync"

	"fjacquet/hsbc-csv/internal/lineparser"
	"fjacquet/hsbc-csv/internal/logging"
	"fjacquet/hsbc-csv/internal/models"
)

// LineProcessor turns extracted statement lines into records, in parallel
// when the statement is large enough to benefit.
//
// Strict processors abort on the first line that fails to parse, reporting
// the earliest failure by line number regardless of worker scheduling.
// Lenient processors log failed lines and keep the rest.
type LineProcessor struct {
	logger      logging.Logger
	workerCount int
	strict      bool
}

// NewLineProcessor creates a line processor with one worker per CPU.
func NewLineProcessor(logger logging.Logger, strict bool) *LineProcessor {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &LineProcessor{
		logger:      logger,
		workerCount: runtime.NumCPU(),
		strict:      strict,
	}
}

// ProcessLines parses every line and returns the resulting records in line
// order. Lines that fail to parse are skipped or abort the run depending on
// the processor's strictness.
func (lp *LineProcessor) ProcessLines(lines []string) ([]models.Record, error) {
	// Use sequential processing for small statements to avoid overhead
	if len(lines) < 100 {
		return lp.processSequential(lines)
	}

	return lp.processConcurrent(lines)
}

func (lp *LineProcessor) processSequential(lines []string) ([]models.Record, error) {
	records := make([]models.Record, 0, len(lines))

	for i, line := range lines {
		record, err := lineparser.ParseLine(line)
		if err != nil {
			if lp.strict {
				return nil, err
			}
			lp.logSkipped(i, err)
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

func (lp *LineProcessor) processConcurrent(lines []string) ([]models.Record, error) {
	ctx := context.Background()

	lineChan := make(chan indexedLine, lp.workerCount)
	resultChan := make(chan indexedResult, len(lines))

	// Start workers
	var wg sync.WaitGroup
	for i := 0; i < lp.workerCount; i++ {
		wg.Add(1)
		go lp.worker(ctx, &wg, lineChan, resultChan)
	}

	// Send work to workers
	go func() {
		defer close(lineChan)
		for i, line := range lines {
			select {
			case lineChan <- indexedLine{index: i, line: line}:
			case <-ctx.Done():
				return
			}
		}
	}()

	// Wait for workers to complete
	go func() {
		wg.Wait()
		close(resultChan)
	}()

	// Re-order by original index so records come out in line order
	results := make([]indexedResult, len(lines))
	for result := range resultChan {
		results[result.index] = result
	}

	records := make([]models.Record, 0, len(lines))
	for i, result := range results {
		if result.err != nil {
			if lp.strict {
				return nil, result.err
			}
			lp.logSkipped(i, result.err)
			continue
		}
		records = append(records, result.record)
	}

	lp.logger.Debug("Concurrent line processing completed",
		logging.Field{Key: "lines", Value: len(lines)},
		logging.Field{Key: "workers", Value: lp.workerCount})

	return records, nil
}

func (lp *LineProcessor) logSkipped(index int, err error) {
	lp.logger.WithError(err).Warn("Skipping unparseable line",
		logging.Field{Key: logging.FieldLineNumber, Value: index + 1})
}

// indexedLine carries the original position of a line into the worker pool.
type indexedLine struct {
	index int
	line  string
}

// indexedResult preserves the original order of parsed records.
type indexedResult struct {
	index  int
	record models.Record
	err    error
}

// worker parses lines from the channel
func (lp *LineProcessor) worker(ctx context.Context, wg *sync.WaitGroup, lineChan <-chan indexedLine, resultChan chan<- indexedResult) {
	defer wg.Done()

	for {
		select {
		case item, ok := <-lineChan:
			if !ok {
				return
			}

			record, err := lineparser.ParseLine(item.line)

			select {
			case resultChan <- indexedResult{index: item.index, record: record, err: err}:
			case <-ctx.Done():
				return
			}

		case <-ctx.Done():
			return
		}
	}
}
