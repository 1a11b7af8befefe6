package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/naumur/presence-backend-go/internal/domain/report"
)

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

// matrixHeader builds the flat export header: two identity columns, then
// four columns per weekday.
func matrixHeader(matrix report.WeekMatrix) []string {
	header := []string{"Department", "Employee"}
	for _, date := range matrix.Days {
		header = append(header,
			date+" Arrival",
			date+" Departure",
			date+" Verified By",
			date+" Verified At",
		)
	}
	return header
}

func matrixRecord(group report.MatrixGroup, row report.MatrixRow) []string {
	record := []string{group.Label, row.EmployeeName}
	for _, cell := range row.Cells {
		record = append(record,
			derefOr(cell.Arrival, ""),
			derefOr(cell.Departure, ""),
			derefOr(cell.VerifiedBy, ""),
			derefOr(cell.VerifiedAt, ""),
		)
	}
	return record
}

// WriteCSV renders the week matrix as flat CSV rows.
func WriteCSV(w io.Writer, matrix report.WeekMatrix) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(matrixHeader(matrix)); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, group := range matrix.Groups {
		for _, row := range group.Rows {
			if err := writer.Write(matrixRecord(group, row)); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteXLSX renders the week matrix as a workbook with one sheet per
// department group.
func WriteXLSX(w io.Writer, matrix report.WeekMatrix) error {
	f := excelize.NewFile()
	defer f.Close()

	writeRow := func(sheet string, rowIdx int, values []string) error {
		cell, err := excelize.CoordinatesToCellName(1, rowIdx)
		if err != nil {
			return err
		}
		row := make([]interface{}, len(values))
		for i, v := range values {
			row[i] = v
		}
		return f.SetSheetRow(sheet, cell, &row)
	}

	for i, group := range matrix.Groups {
		// Sheet names are capped at 31 characters by the format.
		sheet := group.Label
		if len(sheet) > 31 {
			sheet = sheet[:31]
		}
		index, err := f.NewSheet(sheet)
		if err != nil {
			return fmt.Errorf("create sheet %q: %w", sheet, err)
		}
		if i == 0 {
			f.SetActiveSheet(index)
		}

		if err := writeRow(sheet, 1, matrixHeader(matrix)); err != nil {
			return fmt.Errorf("write xlsx header: %w", err)
		}
		for rowIdx, row := range group.Rows {
			if err := writeRow(sheet, rowIdx+2, matrixRecord(group, row)); err != nil {
				return fmt.Errorf("write xlsx row: %w", err)
			}
		}
	}

	if len(matrix.Groups) > 0 {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return fmt.Errorf("delete default sheet: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
