// Package export writes BMI history to an Excel workbook with a trend chart.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/hahmed/bmitrack/internal/models"
	"github.com/hahmed/bmitrack/internal/stats"
)

// historyHeader lists the History sheet columns, matching the persisted
// record fields.
var historyHeader = []string{"Date", "Weight", "Height", "BMI", "Category"}

// WriteXLSX writes the history and its summary to path as an .xlsx workbook:
// a History sheet with one row per record and a line chart of BMI over time,
// plus a Summary sheet with the aggregate figures.
func WriteXLSX(path string, history []models.Record, sum stats.Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "History"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, h := range historyHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to name header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	if err := f.SetCellStyle(sheet, "A1", "E1", headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i, rec := range history {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), rec.Date)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), rec.Weight)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), rec.Height)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), rec.BMI)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), rec.Category)
	}

	if len(history) > 0 {
		chart := &excelize.Chart{
			Type:  excelize.Line,
			Title: []excelize.RichTextRun{{Text: "BMI Trend Over Time"}},
			Series: []excelize.ChartSeries{{
				Name:       fmt.Sprintf("%s!$D$1", sheet),
				Categories: fmt.Sprintf("%s!$A$2:$A$%d", sheet, len(history)+1),
				Values:     fmt.Sprintf("%s!$D$2:$D$%d", sheet, len(history)+1),
			}},
		}
		if err := f.AddChart(sheet, "G2", chart); err != nil {
			return fmt.Errorf("failed to add trend chart: %w", err)
		}
	}

	if err := writeSummary(f, sum); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func writeSummary(f *excelize.File, sum stats.Summary) error {
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	rows := []struct {
		label string
		value any
	}{
		{"Total Records", sum.Count},
		{"Average BMI", models.Round1(sum.Mean)},
		{"Lowest BMI", sum.Min},
		{"Highest BMI", sum.Max},
	}
	for i, r := range rows {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+1), r.label)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+1), r.value)
	}
	return nil
}
