package parser

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/hsbc-csv/internal/logging"
	"fjacquet/hsbc-csv/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBaseParser(t *testing.T) {
	t.Run("with provided logger", func(t *testing.T) {
		mockLog := &logging.MockLogger{}
		baseParser := NewBaseParser(mockLog)

		assert.Equal(t, mockLog, baseParser.logger)
	})

	t.Run("with nil logger uses default", func(t *testing.T) {
		baseParser := NewBaseParser(nil)

		assert.NotNil(t, baseParser.GetLogger())
	})
}

func TestBaseParserSetLogger(t *testing.T) {
	t.Run("sets new logger", func(t *testing.T) {
		baseParser := NewBaseParser(nil)
		mockLog := &logging.MockLogger{}

		baseParser.SetLogger(mockLog)

		assert.Equal(t, mockLog, baseParser.logger)
	})

	t.Run("ignores nil logger", func(t *testing.T) {
		mockLog := &logging.MockLogger{}
		baseParser := NewBaseParser(mockLog)
		originalLogger := baseParser.logger

		baseParser.SetLogger(nil)

		assert.Equal(t, originalLogger, baseParser.logger)
	})
}

func TestBaseParserGetLogger(t *testing.T) {
	mockLog := &logging.MockLogger{}
	baseParser := NewBaseParser(mockLog)

	assert.Equal(t, mockLog, baseParser.GetLogger())
}

func TestBaseParserWriteToCSV(t *testing.T) {
	t.Run("writes rows to CSV successfully", func(t *testing.T) {
		tempDir := t.TempDir()
		csvFile := filepath.Join(tempDir, "test_output.csv")

		mockLog := &logging.MockLogger{}
		baseParser := NewBaseParser(mockLog)

		rows := []models.Row{
			{
				StatementFile:   "2024-02-28 Statement.pdf",
				StatementDate:   "2024-02-28",
				ReceivedDate:    "2024-01-05",
				TransactionDate: "2024-01-04",
				Amount:          "11.78",
				CrDr:            "Payment",
				Contactless:     "true",
				Details:         "MS NEWSAGENT LONDIS LONDON SW19",
			},
			{
				StatementFile: "2024-02-28 Statement.pdf",
				StatementDate: "2024-02-28",
				Details:       "Your Statement Page 2 of 4",
			},
		}

		err := baseParser.WriteToCSV(rows, csvFile)
		require.NoError(t, err)
		assert.FileExists(t, csvFile)

		assert.True(t, mockLog.HasEntry("INFO", "Writing rows to CSV using common writer"))

		content, err := os.ReadFile(csvFile)
		require.NoError(t, err)
		assert.Contains(t, string(content), "MS NEWSAGENT LONDIS LONDON SW19")
		assert.Contains(t, string(content), "Your Statement Page 2 of 4")
	})

	t.Run("handles nil rows", func(t *testing.T) {
		tempDir := t.TempDir()
		csvFile := filepath.Join(tempDir, "test_output.csv")

		baseParser := NewBaseParser(&logging.MockLogger{})

		err := baseParser.WriteToCSV(nil, csvFile)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cannot write nil rows to CSV")
	})

	t.Run("handles empty rows slice", func(t *testing.T) {
		tempDir := t.TempDir()
		csvFile := filepath.Join(tempDir, "test_output.csv")

		baseParser := NewBaseParser(&logging.MockLogger{})

		err := baseParser.WriteToCSV([]models.Row{}, csvFile)
		require.NoError(t, err)
		assert.FileExists(t, csvFile)
	})
}

func TestBaseParserInterfaceCompliance(t *testing.T) {
	var _ LoggerConfigurable = &BaseParser{}
}
