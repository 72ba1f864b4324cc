package series

import (
	"fmt"
	"io"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"
)

// TimeLayout is the timestamp layout used by every export.
const TimeLayout = "2006-01-02 15:04:05"

const xlsxSheet = "Sheet1"

type csvRow struct {
	Time  string  `csv:"time"`
	Value float64 `csv:"value"`
}

// WriteCSV writes s as a two-column time,value CSV.
func WriteCSV(w io.Writer, s Series) error {
	rows := make([]csvRow, s.Len())
	for i := range rows {
		rows[i] = csvRow{Time: s.Times[i].Format(TimeLayout), Value: s.Values[i]}
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}

// WriteXLSX writes s as a single-sheet workbook. The header names the series
// and its unit.
func WriteXLSX(w io.Writer, s Series) error {
	f := excelize.NewFile()
	defer f.Close()

	header := "value"
	if s.Name != "" {
		header = s.Name
	}
	if s.Unit != "" {
		header += " (" + s.Unit + ")"
	}
	if err := f.SetCellValue(xlsxSheet, "A1", "time"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := f.SetCellValue(xlsxSheet, "B1", header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i := 0; i < s.Len(); i++ {
		row := i + 2
		if err := setRow(f, row, s.Times[i], s.Values[i]); err != nil {
			return fmt.Errorf("failed to write row %d: %w", row, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, row int, t time.Time, v float64) error {
	timeCell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	valueCell, err := excelize.CoordinatesToCellName(2, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(xlsxSheet, timeCell, t.Format(TimeLayout)); err != nil {
		return err
	}
	return f.SetCellValue(xlsxSheet, valueCell, v)
}
