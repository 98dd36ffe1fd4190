package excel

import (
	"github.com/xuri/excelize/v2"

	"trekadmin/models"
)

var bookingExportHeaders = []string{
	"Booking ID",
	"Trek",
	"Start Date",
	"Customer",
	"Email",
	"Participants",
	"Amount",
	"Status",
	"Booked At",
}

var bookingExportWidths = []float64{38, 25, 12, 22, 30, 13, 12, 12, 20}

// WriteBookingsWorkbook renders a batch's bookings as a downloadable
// spreadsheet for the analytics export.
func WriteBookingsWorkbook(bookings []*models.BookingDetail) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Bookings"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(sheet, "A1", &bookingExportHeaders); err != nil {
		return nil, err
	}

	for i, b := range bookings {
		row := []interface{}{
			b.ID.String(),
			b.TrekName,
			b.StartDate.Format("2006-01-02"),
			b.UserName,
			b.UserEmail,
			b.Participants,
			b.Amount,
			b.Status,
			b.CreatedAt.Format("2006-01-02 15:04"),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	for i, width := range bookingExportWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
