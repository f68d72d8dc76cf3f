package spreadsheet

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Row is one spreadsheet row keyed by the header-row column names.
type Row map[string]string

// Decode reads the first sheet of an xlsx workbook. The first row supplies the
// keys; following rows become one Row each, preserving file order. Cells past
// the header width are dropped, missing trailing cells are empty strings.
func Decode(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	headers := rows[0]
	records := make([]Row, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		record := make(Row, len(headers))
		empty := true
		for i, header := range headers {
			if header == "" {
				continue
			}
			var value string
			if i < len(cells) {
				value = cells[i]
			}
			if value != "" {
				empty = false
			}
			record[header] = value
		}
		// GetRows can yield fully blank trailing rows; skip them
		if empty {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

// Encode writes rows to a single-sheet workbook with the given column ordering
// and returns the serialized xlsx bytes.
func Encode(headers []string, rows []Row) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	headerCells := make([]interface{}, len(headers))
	for i, h := range headers {
		headerCells[i] = h
	}
	if err := writeRow(f, sheet, 1, headerCells); err != nil {
		return nil, err
	}

	for n, row := range rows {
		cells := make([]interface{}, len(headers))
		for i, h := range headers {
			cells[i] = row[h]
		}
		if err := writeRow(f, sheet, n+2, cells); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, cells []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("write row %d: %w", rowNum, err)
	}
	return nil
}
