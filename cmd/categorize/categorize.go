// Package categorize handles transaction categorization commands
package categorize

import (
	"fjacquet/hsbc-csv/cmd/root"
	"fjacquet/hsbc-csv/internal/categorizer"
	"fjacquet/hsbc-csv/internal/common"
	"fjacquet/hsbc-csv/internal/logging"
	"fjacquet/hsbc-csv/internal/models"
	"fjacquet/hsbc-csv/internal/store"

	"github.com/spf13/cobra"
)

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize transactions in a produced CSV file",
	Long: `Categorize the transactions in a CSV file using the keyword rules
from the categories YAML file.

Run this after editing the keyword rules to refresh the category column of
files produced earlier. When no output file is given the input file is
rewritten in place.`,
	Run: categorizeFunc,
}

func categorizeFunc(cmd *cobra.Command, args []string) {
	logger := logging.NewLogrusAdapterFromLogger(root.Log)
	logger.Info("Categorize command called")

	inputFile := root.SharedFlags.Input
	outputFile := root.SharedFlags.Output
	if outputFile == "" {
		outputFile = inputFile
	}

	if inputFile == "" {
		logger.Fatal("Input file must be specified")
	}

	rows, err := common.ReadCSVFile[models.Row](inputFile)
	if err != nil {
		logger.Fatalf("Error reading CSV file: %v", err)
	}

	categoryStore := store.NewCategoryStore(root.Cfg.Categorization.CategoriesFile)
	c := categorizer.NewCategorizer(categoryStore, logger)
	c.CategorizeRows(rows)

	if err := common.WriteRowsToCSV(rows, outputFile); err != nil {
		logger.Fatalf("Error writing CSV file: %v", err)
	}

	logger.Info("Categorization completed successfully!",
		logging.Field{Key: logging.FieldCount, Value: len(rows)},
		logging.Field{Key: logging.FieldOutputFile, Value: outputFile})
}
