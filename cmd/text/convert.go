// Package text handles extracted statement text conversion commands
package text

import (
	"fjacquet/hsbc-csv/cmd/common"
	"fjacquet/hsbc-csv/cmd/root"
	"fjacquet/hsbc-csv/internal/factory"
	"fjacquet/hsbc-csv/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the text command
var Cmd = &cobra.Command{
	Use:   "text",
	Short: "Convert extracted statement text to CSV",
	Long: `Convert statement text that was already extracted from a PDF to CSV format.
Useful when Tabula runs separately or an extraction was saved for inspection.`,
	Run: textFunc,
}

func textFunc(cmd *cobra.Command, args []string) {
	logger := logging.NewLogrusAdapterFromLogger(root.Log)
	logger.Info("Text convert command called")
	logger.Info("Converting extracted text",
		logging.Field{Key: logging.FieldInputFile, Value: root.SharedFlags.Input},
		logging.Field{Key: logging.FieldOutputFile, Value: root.SharedFlags.Output})

	if root.SharedFlags.Input == "" || root.SharedFlags.Output == "" {
		logger.Fatal("Input and output files must be specified")
	}

	p, err := factory.GetParserWithLogger(factory.Text, logger)
	if err != nil {
		logger.Fatalf("Error getting text parser: %v", err)
	}

	common.ProcessFile(p, root.SharedFlags.Input, root.SharedFlags.Output, root.SharedFlags.Validate, logger)
	logger.Info("Text to CSV conversion completed successfully!")
}
