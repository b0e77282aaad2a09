package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"roomio/internal/models"
)

// seedRooms are the fixed initial rooms inserted once when the table is empty.
var seedRooms = []models.Room{
	{RoomNumber: "101", RoomType: "Standard", PricePerNight: 3500, BedroomsCount: 1},
	{RoomNumber: "102", RoomType: "Standard", PricePerNight: 50000, BedroomsCount: 2},
	{RoomNumber: "103", RoomType: "Deluxe", PricePerNight: 5000, BedroomsCount: 2},
	{RoomNumber: "104", RoomType: "Suite", PricePerNight: 200.0, BedroomsCount: 1},
}

// ListRooms returns all rooms ordered by id.
func (db *DB) ListRooms(ctx context.Context) ([]models.Room, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, room_number, room_type, price_per_night, bedrooms_count
		FROM rooms ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	var rooms []models.Room
	for rows.Next() {
		var r models.Room
		if err := rows.Scan(&r.ID, &r.RoomNumber, &r.RoomType, &r.PricePerNight, &r.BedroomsCount); err != nil {
			return nil, err
		}
		rooms = append(rooms, r)
	}
	return rooms, rows.Err()
}

// GetRoomByID returns a single room or ErrRoomNotFound.
func (db *DB) GetRoomByID(ctx context.Context, id int64) (*models.Room, error) {
	var r models.Room
	err := db.QueryRowContext(ctx, `
		SELECT id, room_number, room_type, price_per_night, bedrooms_count
		FROM rooms WHERE id = ?`, id,
	).Scan(&r.ID, &r.RoomNumber, &r.RoomType, &r.PricePerNight, &r.BedroomsCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// CreateRoom inserts a room and returns its id.
func (db *DB) CreateRoom(ctx context.Context, r *models.Room) (int64, error) {
	result, err := db.ExecContext(ctx, `
		INSERT INTO rooms (room_number, room_type, price_per_night, bedrooms_count)
		VALUES (?, ?, ?, ?)`,
		r.RoomNumber, r.RoomType, r.PricePerNight, r.BedroomsCount,
	)
	if err != nil {
		return 0, fmt.Errorf("insert room: %w", err)
	}
	return result.LastInsertId()
}

// CountRooms returns the number of rooms.
func (db *DB) CountRooms(ctx context.Context) (int64, error) {
	var n int64
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM rooms`).Scan(&n)
	return n, err
}

// Seed inserts the fixed initial rooms if the table is empty.
func (db *DB) Seed(ctx context.Context) error {
	n, err := db.CountRooms(ctx)
	if err != nil {
		return fmt.Errorf("count rooms: %w", err)
	}
	if n > 0 {
		return nil
	}

	for i := range seedRooms {
		if _, err := db.CreateRoom(ctx, &seedRooms[i]); err != nil {
			return fmt.Errorf("seed room %s: %w", seedRooms[i].RoomNumber, err)
		}
	}

	db.logger.Info().Int("rooms", len(seedRooms)).Msg("Seeded initial rooms")
	return nil
}
