package excel

// RawRow represents a row of raw spreadsheet data as string key-value
// pairs, keyed by the exact column header text. Empty cells are present
// with an empty string value, never absent keys.
type RawRow map[string]string

// WorkbookData represents the decoded first sheet of a workbook
type WorkbookData struct {
	Headers    []string // Column headers in sheet order
	Rows       []RawRow // Data rows
	SheetNames []string // All sheet names; only the first is parsed
}
