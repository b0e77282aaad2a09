package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"roomio/internal/database"
	"roomio/internal/models"
)

var (
	// ErrMissingFields is returned when a required booking field is absent or empty.
	ErrMissingFields = errors.New("missing required fields")
	// ErrInvalidDateRange is returned when start_date is not strictly before
	// end_date, or when a date string does not parse as YYYY-MM-DD.
	ErrInvalidDateRange = errors.New("invalid date range")

	// Storage-level failures surfaced unchanged.
	ErrRoomNotFound    = database.ErrRoomNotFound
	ErrRoomUnavailable = database.ErrRoomUnavailable
)

// Storage is the persistence surface the booking service needs.
type Storage interface {
	ListRooms(ctx context.Context) ([]models.Room, error)
	GetBookingsByRoom(ctx context.Context, roomID int64) ([]models.Booking, error)
	CreateBooking(ctx context.Context, b *models.Booking) (int64, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
}

// BookingRequest carries the client input for a booking. Name, email and
// phone are opaque strings; only presence is enforced here.
type BookingRequest struct {
	UserName    string `json:"user_name" validate:"required"`
	UserEmail   string `json:"user_email" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	RoomID      int64  `json:"room_id" validate:"required"`
	StartDate   string `json:"start_date" validate:"required"`
	EndDate     string `json:"end_date" validate:"required"`
}

// BookingService owns availability queries and overlap-checked booking
// creation. It holds no state beyond its collaborators; "today" is always an
// explicit parameter so tests never need to mock the wall clock.
type BookingService struct {
	store    Storage
	validate *validator.Validate
	logger   *zerolog.Logger
}

func New(store Storage, logger *zerolog.Logger) *BookingService {
	return &BookingService{
		store:    store,
		validate: validator.New(),
		logger:   logger,
	}
}

// AvailableRooms returns every room with no booking covering today.
// Containment is inclusive on both ends: a room stays off the list on its
// checkout day. The overlap test in CreateBooking is half-open, which is the
// behavior this service preserves from its predecessors.
func (s *BookingService) AvailableRooms(ctx context.Context, today time.Time) ([]models.Room, error) {
	rooms, err := s.store.ListRooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	available := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		bookings, err := s.store.GetBookingsByRoom(ctx, room.ID)
		if err != nil {
			return nil, fmt.Errorf("bookings for room %d: %w", room.ID, err)
		}

		booked := false
		for i := range bookings {
			if bookings[i].ContainsDate(today) {
				booked = true
				break
			}
		}
		if !booked {
			available = append(available, room)
		}
	}
	return available, nil
}

// CreateBooking validates the request and persists the booking. Validation
// fails fast in a fixed order: missing fields, then the date range, then room
// existence and the overlap check (both inside the storage transaction).
func (s *BookingService) CreateBooking(ctx context.Context, req BookingRequest) (int64, error) {
	if err := s.validate.Struct(req); err != nil {
		return 0, ErrMissingFields
	}

	start, err := models.ParseDate(req.StartDate)
	if err != nil {
		return 0, ErrInvalidDateRange
	}
	end, err := models.ParseDate(req.EndDate)
	if err != nil {
		return 0, ErrInvalidDateRange
	}
	if !start.Before(end) {
		return 0, ErrInvalidDateRange
	}

	id, err := s.store.CreateBooking(ctx, &models.Booking{
		UserName:    req.UserName,
		UserEmail:   req.UserEmail,
		PhoneNumber: req.PhoneNumber,
		RoomID:      req.RoomID,
		StartDate:   start,
		EndDate:     end,
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info().
		Int64("booking_id", id).
		Int64("room_id", req.RoomID).
		Str("start_date", req.StartDate).
		Str("end_date", req.EndDate).
		Msg("booking created")

	return id, nil
}

// ListBookings returns every booking, used by the operator report.
func (s *BookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return s.store.ListBookings(ctx)
}

// Rooms returns every room regardless of availability, used by the operator
// report to resolve room numbers.
func (s *BookingService) Rooms(ctx context.Context) ([]models.Room, error) {
	return s.store.ListRooms(ctx)
}
