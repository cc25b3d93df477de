package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseStatementDate(t *testing.T) {
	tests := []struct {
		name       string
		dateStr    string
		expectedOk bool
		expectedY  int
		expectedM  time.Month
		expectedD  int
	}{
		{"padded day", "05 Jan 24", true, 2024, time.January, 5},
		{"unpadded day", "5 Aug 23", true, 2023, time.August, 5},
		{"upper-case month", "28 MAY 24", true, 2024, time.May, 28},
		{"lower-case month", "30 apr 22", true, 2022, time.April, 30},
		{"two-digit year in 20xx", "01 Jan 68", true, 2068, time.January, 1},
		{"two-digit year in 19xx", "01 Jan 69", true, 1969, time.January, 1},
		{"day out of range", "31 Feb 24", false, 0, 0, 0},
		{"day zero", "00 Jan 24", false, 0, 0, 0},
		{"not a month", "14 Xyz 23", false, 0, 0, 0},
		{"missing year", "14 Aug", false, 0, 0, 0},
		{"empty string", "", false, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			date, err := ParseStatementDate(tc.dateStr)

			if tc.expectedOk {
				assert.NoError(t, err)
				assert.Equal(t, tc.expectedY, date.Year())
				assert.Equal(t, tc.expectedM, date.Month())
				assert.Equal(t, tc.expectedD, date.Day())
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestTitleMonth(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Jan", "Jan"},
		{"JAN", "Jan"},
		{"jan", "Jan"},
		{"mAy", "May"},
		{"", ""},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, TitleMonth(tc.input))
	}
}

func TestIsMonth(t *testing.T) {
	for _, m := range Months {
		assert.True(t, IsMonth(m), "month %s should be recognised", m)
	}
	assert.True(t, IsMonth("DEC"))
	assert.True(t, IsMonth("dec"))
	assert.False(t, IsMonth("Xyz"))
	assert.False(t, IsMonth("Janu"))
	assert.False(t, IsMonth(""))
}

func TestStatementDateFromFilename(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		expectedOk bool
		expected   time.Time
	}{
		{
			name:       "plain statement name",
			path:       "2024-05-28 statement.pdf",
			expectedOk: true,
			expected:   time.Date(2024, time.May, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "nested path",
			path:       "/statements/2022-04-30.pdf",
			expectedOk: true,
			expected:   time.Date(2022, time.April, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "no date prefix",
			path:       "statement-2024.pdf",
			expectedOk: false,
		},
		{
			name:       "too short",
			path:       "x.pdf",
			expectedOk: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			date, err := StatementDateFromFilename(tc.path)

			if tc.expectedOk {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, date)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestToISODate(t *testing.T) {
	assert.Equal(t, "2023-01-15", ToISODate(time.Date(2023, time.January, 15, 10, 30, 0, 0, time.UTC)))
	assert.Equal(t, "", ToISODate(time.Time{}))
}
