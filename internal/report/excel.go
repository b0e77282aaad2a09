// Package report builds operator-facing Excel exports.
package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"roomio/internal/models"
)

var bookingColumns = []string{
	"ID", "Room", "Guest", "Email", "Phone", "Check-in", "Check-out",
}

// WriteBookings writes an Excel workbook with one row per booking. The rooms
// map resolves room ids to their numbers; unknown ids fall back to the raw id.
func WriteBookings(w io.Writer, bookings []models.Booking, rooms map[int64]models.Room) error {
	f := excelize.NewFile()
	const sheet = "Bookings"
	f.SetSheetName("Sheet1", sheet)

	for i, col := range bookingColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return err
		}
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		startCell, _ := excelize.CoordinatesToCellName(1, 1)
		endCell, _ := excelize.CoordinatesToCellName(len(bookingColumns), 1)
		_ = f.SetCellStyle(sheet, startCell, endCell, style)
	}

	for i, b := range bookings {
		roomLabel := fmt.Sprintf("%d", b.RoomID)
		if room, ok := rooms[b.RoomID]; ok {
			roomLabel = room.RoomNumber
		}

		row := []interface{}{
			b.ID,
			roomLabel,
			b.UserName,
			b.UserEmail,
			b.PhoneNumber,
			b.StartDate.Format(models.DateFormat),
			b.EndDate.Format(models.DateFormat),
		}
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}
