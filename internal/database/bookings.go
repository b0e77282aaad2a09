package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"roomio/internal/models"
)

// CreateBooking inserts a booking after verifying inside one transaction that
// the room exists and the requested range does not overlap an existing
// booking. The transaction opens with an immediate write lock (see the DSN in
// NewDB), so two concurrent attempts on the same room cannot both pass the
// overlap check.
func (db *DB) CreateBooking(ctx context.Context, b *models.Booking) (int64, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var roomID int64
	err = tx.QueryRowContext(ctx,
		"SELECT id FROM rooms WHERE id = ?", b.RoomID,
	).Scan(&roomID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrRoomNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("check room: %w", err)
	}

	// Half-open overlap test: a booking ending on day D does not conflict
	// with one starting on day D.
	var overlapping int64
	err = tx.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM bookings
		WHERE room_id = ? AND start_date < ? AND end_date > ?`,
		b.RoomID, formatDate(b.EndDate), formatDate(b.StartDate),
	).Scan(&overlapping)
	if err != nil {
		return 0, fmt.Errorf("check overlap: %w", err)
	}
	if overlapping > 0 {
		return 0, ErrRoomUnavailable
	}

	result, err := tx.ExecContext(ctx, `
		INSERT INTO bookings (user_name, user_email, phone_number, room_id, start_date, end_date)
		VALUES (?, ?, ?, ?, ?, ?)`,
		b.UserName, b.UserEmail, b.PhoneNumber, b.RoomID,
		formatDate(b.StartDate), formatDate(b.EndDate),
	)
	if err != nil {
		return 0, fmt.Errorf("insert booking: %w", err)
	}

	bookingID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}

	return bookingID, nil
}

// GetBookingsByRoom returns all bookings for a room ordered by start date.
func (db *DB) GetBookingsByRoom(ctx context.Context, roomID int64) ([]models.Booking, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, user_name, user_email, phone_number, room_id, start_date, end_date
		FROM bookings WHERE room_id = ? ORDER BY start_date`, roomID)
	if err != nil {
		return nil, fmt.Errorf("bookings by room: %w", err)
	}
	defer rows.Close()
	return scanBookings(rows)
}

// ListBookings returns every booking ordered by id.
func (db *DB) ListBookings(ctx context.Context) ([]models.Booking, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, user_name, user_email, phone_number, room_id, start_date, end_date
		FROM bookings ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()
	return scanBookings(rows)
}

func scanBookings(rows *sql.Rows) ([]models.Booking, error) {
	var bookings []models.Booking
	for rows.Next() {
		var b models.Booking
		var start, end string
		if err := rows.Scan(
			&b.ID, &b.UserName, &b.UserEmail, &b.PhoneNumber,
			&b.RoomID, &start, &end,
		); err != nil {
			return nil, err
		}
		var err error
		if b.StartDate, err = models.ParseDate(start); err != nil {
			return nil, fmt.Errorf("parse start_date %q: %w", start, err)
		}
		if b.EndDate, err = models.ParseDate(end); err != nil {
			return nil, fmt.Errorf("parse end_date %q: %w", end, err)
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func formatDate(t time.Time) string {
	return t.Format(models.DateFormat)
}
