package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"roomio/internal/models"
)

func TestWriteBookings(t *testing.T) {
	bookings := []models.Booking{
		{
			ID:          1,
			UserName:    "Anna",
			UserEmail:   "anna@example.com",
			PhoneNumber: "+4915112345678",
			RoomID:      1,
			StartDate:   time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        2,
			RoomID:    99, // no matching room
			StartDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
		},
	}
	rooms := map[int64]models.Room{
		1: {ID: 1, RoomNumber: "101"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteBookings(&buf, bookings, rooms))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Bookings", "A1")
	require.NoError(t, err)
	assert.Equal(t, "ID", header)

	room, err := f.GetCellValue("Bookings", "B2")
	require.NoError(t, err)
	assert.Equal(t, "101", room)

	checkin, err := f.GetCellValue("Bookings", "F2")
	require.NoError(t, err)
	assert.Equal(t, "2025-02-01", checkin)

	// Unknown room id falls back to the raw id.
	fallback, err := f.GetCellValue("Bookings", "B3")
	require.NoError(t, err)
	assert.Equal(t, "99", fallback)
}

func TestWriteBookings_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBookings(&buf, nil, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Bookings")
	require.NoError(t, err)
	assert.Len(t, rows, 1) // header only
}
