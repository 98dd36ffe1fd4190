package excel

import (
	"trekadmin/domain/trek"
)

// ParseTrekUpload runs the full pipeline over uploaded spreadsheet
// bytes: decode the first sheet, normalize each row, aggregate into a
// trek document. Data flows strictly one way and every upload owns its
// own intermediate state, so concurrent uploads need no coordination.
func ParseTrekUpload(data []byte) (*trek.Document, error) {
	workbook, err := ReadWorkbook(data)
	if err != nil {
		return nil, err
	}

	rows := make([]trek.NormalizedRow, 0, len(workbook.Rows))
	for _, raw := range workbook.Rows {
		rows = append(rows, NormalizeRow(raw))
	}

	return Aggregate(rows)
}
