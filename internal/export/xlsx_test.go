package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/hahmed/bmitrack/internal/models"
	"github.com/hahmed/bmitrack/internal/stats"
)

func TestWriteXLSX(t *testing.T) {
	history := []models.Record{
		{Date: "2026-08-01 09:00", Weight: 70, Height: 175, BMI: 22.9, Category: "Normal Weight"},
		{Date: "2026-08-15 09:00", Weight: 72, Height: 175, BMI: 23.5, Category: "Normal Weight"},
	}
	sum := stats.Summarize(history)

	path := filepath.Join(t.TempDir(), "bmi.xlsx")
	require.NoError(t, WriteXLSX(path, history, sum))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("History", "A1")
	require.NoError(t, err)
	require.Equal(t, "Date", got)

	got, err = f.GetCellValue("History", "D2")
	require.NoError(t, err)
	require.Equal(t, "22.9", got)

	got, err = f.GetCellValue("History", "E3")
	require.NoError(t, err)
	require.Equal(t, "Normal Weight", got)

	got, err = f.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	require.Equal(t, "2", got)
}

func TestWriteXLSXEmptyHistory(t *testing.T) {
	// No records: header and summary only, no chart.
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, WriteXLSX(path, nil, stats.Summary{}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("History", "A2")
	require.NoError(t, err)
	require.Empty(t, got)
}
