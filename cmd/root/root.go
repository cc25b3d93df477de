// Package root contains the root command for the application
package root

import (
	"fjacquet/hsbc-csv/internal/categorizer"
	"fjacquet/hsbc-csv/internal/common"
	"fjacquet/hsbc-csv/internal/config"
	"fjacquet/hsbc-csv/internal/fileutils"
	"fjacquet/hsbc-csv/internal/logging"
	"fjacquet/hsbc-csv/internal/statementparser"
	"fjacquet/hsbc-csv/internal/store"
	"fjacquet/hsbc-csv/internal/tabula"
	"fjacquet/hsbc-csv/internal/textparser"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input    string
	Output   string
	Validate bool
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg holds the configuration loaded in PersistentPreRun
	Cfg = &config.Config{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "hsbc-csv",
		Short: "A CLI tool to convert HSBC credit card statement PDFs to CSV.",
		Long: `hsbc-csv is a CLI tool that converts HSBC credit card statement PDFs to CSV format.
Statement tables are extracted with Tabula, parsed line by line, and the
resulting rows can be categorized with keyword rules.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to hsbc-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env first so the configuration layer sees its variables
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg

			Log = config.ConfigureLoggingFromConfig(cfg)
			logger := logging.NewLogrusAdapterFromLogger(Log)
			logging.SetLogger(logger)

			// Set the configured logger for all parsers and helpers
			common.SetLogger(logger)
			fileutils.SetLogger(logger)
			store.SetLogger(logger)
			statementparser.SetLogger(logger)
			textparser.SetLogger(logger)

			common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])

			statementparser.SetExtractor(tabula.NewJavaExtractor(cfg.Tabula.JarPath, cfg.Tabula.Pages, logger))
			statementparser.SetStrict(cfg.Parsers.Statement.Strict)
			textparser.SetStrict(cfg.Parsers.Statement.Strict)

			if cfg.Categorization.Enabled {
				categoryStore := store.NewCategoryStore(cfg.Categorization.CategoriesFile)
				c := categorizer.NewCategorizer(categoryStore, logger)
				statementparser.SetCategorizer(c)
				textparser.SetCategorizer(c)
			}
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	// Add persistent flags to root command for common options
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate file format before conversion")
}
