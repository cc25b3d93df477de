package factory_test

import (
	"testing"

	"fjacquet/hsbc-csv/internal/factory"
	"fjacquet/hsbc-csv/internal/logging"
	"fjacquet/hsbc-csv/internal/statementparser"
	"fjacquet/hsbc-csv/internal/textparser"

	"github.com/stretchr/testify/assert"
)

func TestGetParser(t *testing.T) {
	tests := []struct {
		name        string
		parserType  factory.ParserType
		expectError bool
	}{
		{
			name:        "PDF Parser",
			parserType:  factory.PDF,
			expectError: false,
		},
		{
			name:        "Text Parser",
			parserType:  factory.Text,
			expectError: false,
		},
		{
			name:        "Unknown Parser Type",
			parserType:  "unknown",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := logging.NewLogrusAdapter("info", "text")
			p, err := factory.GetParserWithLogger(tt.parserType, logger)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, p)
				assert.Contains(t, err.Error(), "unknown parser type")
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, p)
			}
		})
	}
}

func TestGetParserConcreteTypes(t *testing.T) {
	logger := logging.NewLogrusAdapter("info", "text")

	p, err := factory.GetParserWithLogger(factory.PDF, logger)
	assert.NoError(t, err)
	assert.IsType(t, &statementparser.Adapter{}, p)

	p, err = factory.GetParserWithLogger(factory.Text, logger)
	assert.NoError(t, err)
	assert.IsType(t, &textparser.Adapter{}, p)
}

func TestGetParserWithLogger(t *testing.T) {
	logger := logging.NewLogrusAdapter("info", "text")

	p, err := factory.GetParserWithLogger(factory.PDF, logger)
	assert.NoError(t, err)
	assert.NotNil(t, p)

	// Test that we can set a logger on the parser
	p.SetLogger(logger)
}
