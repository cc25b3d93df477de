package pdf_test

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/hsbc-csv/cmd/pdf"
	"fjacquet/hsbc-csv/cmd/root"
	"fjacquet/hsbc-csv/internal/common"
	"fjacquet/hsbc-csv/internal/models"
	"fjacquet/hsbc-csv/internal/statementparser"
	"fjacquet/hsbc-csv/internal/tabula"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPdfCommandMetadata(t *testing.T) {
	assert.Equal(t, "pdf", pdf.Cmd.Use)
	assert.Contains(t, pdf.Cmd.Short, "Convert a statement PDF to CSV")
	assert.Contains(t, pdf.Cmd.Long, "HSBC credit card statement")
	assert.NotNil(t, pdf.Cmd.Run)
}

func TestPdfCommandRun(t *testing.T) {
	tempDir := t.TempDir()
	inputFile := filepath.Join(tempDir, "2023-09-04 Statement.pdf")
	outputFile := filepath.Join(tempDir, "out.csv")
	require.NoError(t, os.WriteFile(inputFile, []byte("%PDF-1.4"), 0600))

	mock := tabula.NewMockExtractor(
		"14 Aug 23 12 Aug 23 NEWSAGENT LONDON,4.20\n", nil)
	statementparser.SetExtractor(mock)

	originalInput := root.SharedFlags.Input
	originalOutput := root.SharedFlags.Output
	originalValidate := root.SharedFlags.Validate
	defer func() {
		root.SharedFlags.Input = originalInput
		root.SharedFlags.Output = originalOutput
		root.SharedFlags.Validate = originalValidate
	}()

	root.SharedFlags.Input = inputFile
	root.SharedFlags.Output = outputFile
	root.SharedFlags.Validate = true

	pdf.Cmd.Run(pdf.Cmd, nil)

	rows, err := common.ReadCSVFile[models.Row](outputFile)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "NEWSAGENT LONDON", rows[0].Details)
	assert.Equal(t, "2023-09-04", rows[0].StatementDate)
}
