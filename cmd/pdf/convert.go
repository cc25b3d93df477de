// Package pdf handles statement PDF conversion commands
package pdf

import (
	"fjacquet/hsbc-csv/cmd/common"
	"fjacquet/hsbc-csv/cmd/root"
	"fjacquet/hsbc-csv/internal/factory"
	"fjacquet/hsbc-csv/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the pdf command
var Cmd = &cobra.Command{
	Use:   "pdf",
	Short: "Convert a statement PDF to CSV",
	Long:  `Convert an HSBC credit card statement PDF to CSV format.`,
	Run:   pdfFunc,
}

func pdfFunc(cmd *cobra.Command, args []string) {
	logger := logging.NewLogrusAdapterFromLogger(root.Log)
	logger.Info("PDF convert command called")
	logger.Info("Converting statement",
		logging.Field{Key: logging.FieldInputFile, Value: root.SharedFlags.Input},
		logging.Field{Key: logging.FieldOutputFile, Value: root.SharedFlags.Output})

	if root.SharedFlags.Input == "" || root.SharedFlags.Output == "" {
		logger.Fatal("Input and output files must be specified")
	}

	p, err := factory.GetParserWithLogger(factory.PDF, logger)
	if err != nil {
		logger.Fatalf("Error getting PDF parser: %v", err)
	}

	common.ProcessFile(p, root.SharedFlags.Input, root.SharedFlags.Output, root.SharedFlags.Validate, logger)
	logger.Info("PDF to CSV conversion completed successfully!")
}
