package categorize_test

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/hsbc-csv/cmd/categorize"
	"fjacquet/hsbc-csv/cmd/root"
	"fjacquet/hsbc-csv/internal/common"
	"fjacquet/hsbc-csv/internal/config"
	"fjacquet/hsbc-csv/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCategoriesYAML = `categories:
  - name: Groceries
    keywords:
      - NEWSAGENT
`

func TestCategorizeCommand_Metadata(t *testing.T) {
	assert.Equal(t, "categorize", categorize.Cmd.Use)
	assert.Contains(t, categorize.Cmd.Short, "Categorize")
	assert.Contains(t, categorize.Cmd.Long, "keyword rules")
	assert.NotNil(t, categorize.Cmd.Run)
}

// setupCategorizeRun writes a categories file plus an uncategorized input CSV
// and points the shared configuration at them.
func setupCategorizeRun(t *testing.T) (inputFile string) {
	t.Helper()
	dir := t.TempDir()

	categoriesFile := filepath.Join(dir, "categories.yaml")
	require.NoError(t, os.WriteFile(categoriesFile, []byte(testCategoriesYAML), 0o600))

	rows := []models.Row{
		{StatementDate: "2023-09-04", Details: "Your Name Here"},
		{
			StatementDate:   "2023-09-04",
			ReceivedDate:    "2023-08-14",
			TransactionDate: "2023-08-12",
			Amount:          "4.20",
			CrDr:            string(models.CrDrPayment),
			Contactless:     "true",
			Details:         "NEWSAGENT LONDON",
		},
		{
			StatementDate:   "2023-09-04",
			ReceivedDate:    "2023-08-15",
			TransactionDate: "2023-08-14",
			Amount:          "4000.00",
			CrDr:            string(models.CrDrCredit),
			Contactless:     "false",
			Details:         "PAYMENT - THANK YOU",
		},
	}
	inputFile = filepath.Join(dir, "input.csv")
	require.NoError(t, common.WriteRowsToCSV(rows, inputFile))

	savedCfg := root.Cfg
	t.Cleanup(func() { root.Cfg = savedCfg })
	root.Cfg = &config.Config{}
	root.Cfg.Categorization.CategoriesFile = categoriesFile

	savedFlags := root.SharedFlags
	t.Cleanup(func() { root.SharedFlags = savedFlags })

	return inputFile
}

func TestCategorizeCommand_RunInPlace(t *testing.T) {
	inputFile := setupCategorizeRun(t)

	root.SharedFlags.Input = inputFile
	root.SharedFlags.Output = ""

	categorize.Cmd.Run(categorize.Cmd, nil)

	rows, err := common.ReadCSVFile[models.Row](inputFile)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Empty(t, rows[0].Category, "Text lines carry no category")
	assert.Equal(t, "Groceries", rows[1].Category)
	assert.Equal(t, models.CategoryUncategorized, rows[2].Category)
}

func TestCategorizeCommand_RunToNewFile(t *testing.T) {
	inputFile := setupCategorizeRun(t)
	outputFile := filepath.Join(t.TempDir(), "categorized.csv")

	root.SharedFlags.Input = inputFile
	root.SharedFlags.Output = outputFile

	categorize.Cmd.Run(categorize.Cmd, nil)

	rows, err := common.ReadCSVFile[models.Row](outputFile)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Groceries", rows[1].Category)

	original, err := common.ReadCSVFile[models.Row](inputFile)
	require.NoError(t, err)
	assert.Empty(t, original[1].Category, "Input file must stay untouched")
}
