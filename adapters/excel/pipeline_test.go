package excel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"trekadmin/internal/errors"
)

// buildWorkbook assembles xlsx bytes from header + data rows for
// upload scenarios.
func buildWorkbook(t *testing.T, headers []string, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	headerRow := make([]interface{}, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &headerRow))

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestParseTrekUpload_MultiBatch(t *testing.T) {
	// Scenario: 4 rows across 2 batches; the pairs share trek-level
	// fields and batch 2 carries its own dates and price.
	headers := []string{
		"Trek Name", "Location", "Difficulty", "Category", "Batch Number",
		"Start Date", "End Date", "Available Slots", "Price", "Highlights",
	}
	rows := [][]interface{}{
		{"Kudremukh Trek", "Karnataka", "Moderate", "Hill Trek", 1, "13/02/2026", "15/02/2026", 25, "3500", "Grasslands|Sunset point"},
		{"Kudremukh Trek", "Karnataka", "Moderate", "Hill Trek", 1, "13/02/2026", "15/02/2026", 25, "3500", "Grasslands|Sunset point"},
		{"Kudremukh Trek", "Karnataka", "Moderate", "Hill Trek", 2, "20/03/2026", "22/03/2026", 30, "4200", "Grasslands|Sunset point"},
		{"Kudremukh Trek", "Karnataka", "Moderate", "Hill Trek", 2, "20/03/2026", "22/03/2026", 30, "4200", "Grasslands|Sunset point"},
	}

	doc, err := ParseTrekUpload(buildWorkbook(t, headers, rows))
	require.NoError(t, err)

	assert.Equal(t, "Kudremukh Trek", doc.Name)
	assert.Equal(t, []string{"Grasslands", "Sunset point"}, doc.Highlights)
	require.Len(t, doc.Batches, 2)

	assert.Equal(t, "2026-02-13", doc.Batches[0].StartDate)
	assert.Equal(t, float64(3500), doc.Batches[0].Price)
	assert.Equal(t, "2026-03-20", doc.Batches[1].StartDate)
	assert.Equal(t, "2026-03-22", doc.Batches[1].EndDate)
	assert.Equal(t, float64(4200), doc.Batches[1].Price)
	assert.Equal(t, 30, doc.Batches[1].AvailableSlots)
}

func TestParseTrekUpload_NotASpreadsheet(t *testing.T) {
	_, err := ParseTrekUpload([]byte("definitely not a zip container"))
	require.Error(t, err)
	assert.Equal(t, errors.CodeParseError, errors.GetCode(err))
}

func TestParseTrekUpload_HeaderOnly(t *testing.T) {
	data := buildWorkbook(t, []string{"Trek Name", "Location"}, nil)

	_, err := ParseTrekUpload(data)
	require.Error(t, err)
	assert.Equal(t, errors.CodeEmptyInput, errors.GetCode(err))
}

func TestReadWorkbook_FirstSheetOnly(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	headerRow := []interface{}{"Trek Name"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &headerRow))
	dataRow := []interface{}{"Kudremukh Trek"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &dataRow))

	// A second sheet is reported but never parsed
	_, err := f.NewSheet("Extra")
	require.NoError(t, err)
	otherRow := []interface{}{"should not appear"}
	require.NoError(t, f.SetSheetRow("Extra", "A1", &otherRow))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	workbook, err := ReadWorkbook(buf.Bytes())
	require.NoError(t, err)

	assert.Equal(t, []string{"Sheet1", "Extra"}, workbook.SheetNames)
	require.Len(t, workbook.Rows, 1)
	assert.Equal(t, "Kudremukh Trek", workbook.Rows[0]["Trek Name"])
}

func TestReadWorkbook_EmptyCellsDecodeToEmptyString(t *testing.T) {
	headers := []string{"Trek Name", "Location", "Price"}
	rows := [][]interface{}{{"Kudremukh Trek"}} // short row, trailing cells empty

	workbook, err := ReadWorkbook(buildWorkbook(t, headers, rows))
	require.NoError(t, err)
	require.Len(t, workbook.Rows, 1)

	location, ok := workbook.Rows[0]["Location"]
	assert.True(t, ok, "empty cell must be present with empty value")
	assert.Equal(t, "", location)
}

func TestGenerateTemplate_RoundTrip(t *testing.T) {
	// The generated multi-batch template must parse back through the
	// pipeline it is meant to feed.
	data, err := GenerateTemplate(TemplateMulti)
	require.NoError(t, err)

	doc, err := ParseTrekUpload(data)
	require.NoError(t, err)

	assert.Equal(t, "Kudremukh Trek", doc.Name)
	require.Len(t, doc.Batches, 3)
	assert.Equal(t, "2026-02-13", doc.Batches[0].StartDate)
	assert.Equal(t, "2026-04-10", doc.Batches[2].StartDate)
	assert.Equal(t, float64(3800), doc.Batches[2].Price)
	require.Len(t, doc.Batches[0].ItineraryDays, 3)
	assert.Equal(t, "Trek to Kudremukh Peak", doc.Batches[0].ItineraryDays[1].Title)
}

func TestGenerateTemplate_SingleBatch(t *testing.T) {
	data, err := GenerateTemplate(TemplateSingle)
	require.NoError(t, err)

	doc, err := ParseTrekUpload(data)
	require.NoError(t, err)

	require.Len(t, doc.Batches, 1)
	assert.Equal(t, "Forest Trek", doc.Category)
	assert.Equal(t, 25, doc.Batches[0].AvailableSlots)
}

func TestGenerateTemplate_UnknownKind(t *testing.T) {
	_, err := GenerateTemplate("weekly")
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}
