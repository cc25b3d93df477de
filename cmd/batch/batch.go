// Package batch handles batch processing of statement folders
package batch

import (
	"fmt"
	"path/filepath"

	"fjacquet/hsbc-csv/cmd/root"
	"fjacquet/hsbc-csv/internal/batch"
	"fjacquet/hsbc-csv/internal/common"
	"fjacquet/hsbc-csv/internal/factory"
	"fjacquet/hsbc-csv/internal/fileutils"
	"fjacquet/hsbc-csv/internal/logging"
	"fjacquet/hsbc-csv/internal/models"
	"fjacquet/hsbc-csv/internal/statementparser"
	"fjacquet/hsbc-csv/internal/validation"

	"github.com/spf13/cobra"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch process statement PDFs from a directory",
	Long: `Batch process all statement PDFs in the input directory.

By default every statement becomes its own CSV file in the output directory.
With --consolidate all statements are merged into a single chronological CSV
named after the covered date range.

Example:
  hsbc-csv batch -i statements/ -o csv/
  hsbc-csv batch -i statements/ -o csv/ --consolidate`,
	Run: batchFunc,
}

// consolidate merges all statements into one output file
var consolidate bool

func init() {
	Cmd.Flags().BoolVar(&consolidate, "consolidate", false,
		"Merge all statements into a single CSV covering the whole date range")

	// Override the usage text so the inherited -i/-o flags read as directories
	Cmd.SetUsageTemplate(`Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

Available Commands:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags (for batch, -i/-o refer to directories):
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasHelpSubCommands}}

Additional help topics:{{range .Commands}}{{if .IsAdditionalHelpTopicCommand}}
  {{rpad .CommandPath .CommandPathPadding}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`)
}

func batchFunc(cmd *cobra.Command, args []string) {
	logger := logging.NewLogrusAdapterFromLogger(root.Log)
	logger.Info("Batch command called")

	// Use the shared flags from root command
	inputDir := root.SharedFlags.Input
	outputDir := root.SharedFlags.Output

	logger.Info("Processing statement directory",
		logging.Field{Key: logging.FieldInputFile, Value: inputDir},
		logging.Field{Key: logging.FieldOutputFile, Value: outputDir})

	if inputDir == "" || outputDir == "" {
		logger.Fatal("Input and output directories must be specified")
	}

	if consolidate {
		if err := runConsolidation(inputDir, outputDir, logger); err != nil {
			logger.Fatalf("Error during consolidation: %v", err)
		}
		logger.Info("Consolidation completed successfully!")
		return
	}

	p, err := factory.GetParserWithLogger(factory.PDF, logger)
	if err != nil {
		logger.Fatalf("Error getting PDF parser: %v", err)
	}

	count, err := p.BatchConvert(inputDir, outputDir)
	if err != nil {
		logger.Fatalf("Error during batch conversion: %v", err)
	}
	logger.Info(fmt.Sprintf("Batch conversion completed successfully! Converted %d files.", count))
}

// runConsolidation merges every statement in inputDir into one CSV headed by
// the list of source files.
func runConsolidation(inputDir, outputDir string, logger logging.Logger) error {
	aggregator := batch.NewBatchAggregator(logger)

	files, err := aggregator.DiscoverStatements(inputDir)
	if err != nil {
		return err
	}

	rows, err := aggregator.AggregateRows(files, func(file string) ([]models.Row, error) {
		records, err := statementparser.ParseFile(file)
		if err != nil {
			return nil, err
		}
		return statementparser.BuildRows(records, file), nil
	})
	if err != nil {
		return err
	}

	if err := validation.ValidateRows(inputDir, rows); err != nil {
		return err
	}

	outputPath := filepath.Join(outputDir, aggregator.GenerateOutputFilename(aggregator.CalculateDateRange(files)))

	file, err := fileutils.CreateFile(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			logger.WithError(cerr).Warn("Failed to close output file")
		}
	}()

	if header := aggregator.GenerateSourceFileHeader(files); header != "" {
		if _, err := file.WriteString(header); err != nil {
			return fmt.Errorf("failed to write header comment: %w", err)
		}
	}

	if err := common.WriteRowsToWriter(rows, file); err != nil {
		return fmt.Errorf("failed to write consolidated CSV: %w", err)
	}

	logger.Info("Created consolidated file",
		logging.Field{Key: logging.FieldCount, Value: len(rows)},
		logging.Field{Key: logging.FieldOutputFile, Value: outputPath})

	return nil
}
