package excel

import (
	"bytes"
	"log"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"trekadmin/internal/errors"
)

// ReadWorkbook decodes binary spreadsheet bytes into an ordered
// sequence of raw rows. Only the first sheet is parsed; the names of
// all sheets are reported so callers can surface skipped ones.
func ReadWorkbook(data []byte) (*WorkbookData, error) {
	startTime := time.Now()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.ParseError(err)
	}
	defer f.Close()

	sheetNames := f.GetSheetList()
	if len(sheetNames) == 0 {
		return nil, errors.ParseError(nil)
	}

	// Always read the first sheet only
	rows, err := f.GetRows(sheetNames[0])
	if err != nil {
		return nil, errors.ParseError(err)
	}
	log.Printf("[ReadWorkbook] sheet %q read in %.2fms (%d rows)",
		sheetNames[0], float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))

	if len(rows) < 2 {
		return nil, errors.EmptyInput("spreadsheet must have a header row and at least one data row")
	}

	return processRows(rows, sheetNames), nil
}

// processRows converts raw string rows into WorkbookData
func processRows(rows [][]string, sheetNames []string) *WorkbookData {
	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	var dataRows []RawRow
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		rowData := make(RawRow, len(headers))

		// Every header gets a value so downstream lookups never need an
		// existence check before an emptiness check.
		for j, header := range headers {
			if j < len(row) {
				rowData[header] = strings.TrimSpace(row[j])
			} else {
				rowData[header] = ""
			}
		}

		dataRows = append(dataRows, rowData)
	}

	return &WorkbookData{
		Headers:    headers,
		Rows:       dataRows,
		SheetNames: sheetNames,
	}
}
