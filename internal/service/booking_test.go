package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"roomio/internal/models"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) ListRooms(ctx context.Context) ([]models.Room, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Room), args.Error(1)
}

func (m *mockStore) GetBookingsByRoom(ctx context.Context, roomID int64) ([]models.Booking, error) {
	args := m.Called(ctx, roomID)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *mockStore) CreateBooking(ctx context.Context, b *models.Booking) (int64, error) {
	args := m.Called(ctx, b)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStore) ListBookings(ctx context.Context) ([]models.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func newService(store Storage) *BookingService {
	logger := zerolog.New(io.Discard)
	return New(store, &logger)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func validRequest() BookingRequest {
	return BookingRequest{
		UserName:    "Anna",
		UserEmail:   "anna@example.com",
		PhoneNumber: "+4915112345678",
		RoomID:      1,
		StartDate:   "2025-01-10",
		EndDate:     "2025-01-15",
	}
}

func TestCreateBooking_MissingFields(t *testing.T) {
	store := &mockStore{}
	svc := newService(store)

	mutations := map[string]func(*BookingRequest){
		"no user_name":    func(r *BookingRequest) { r.UserName = "" },
		"no user_email":   func(r *BookingRequest) { r.UserEmail = "" },
		"no phone_number": func(r *BookingRequest) { r.PhoneNumber = "" },
		"no room_id":      func(r *BookingRequest) { r.RoomID = 0 },
		"no start_date":   func(r *BookingRequest) { r.StartDate = "" },
		"no end_date":     func(r *BookingRequest) { r.EndDate = "" },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			req := validRequest()
			mutate(&req)
			_, err := svc.CreateBooking(context.Background(), req)
			assert.ErrorIs(t, err, ErrMissingFields)
		})
	}

	// Storage must never be touched on validation failure.
	store.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestCreateBooking_InvalidDateRange(t *testing.T) {
	store := &mockStore{}
	svc := newService(store)

	tests := []struct {
		name       string
		start, end string
	}{
		{"inverted range", "2025-01-15", "2025-01-10"},
		{"zero-length range", "2025-01-10", "2025-01-10"},
		{"malformed start", "15.01.2025", "2025-01-20"},
		{"malformed end", "2025-01-10", "someday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.StartDate = tt.start
			req.EndDate = tt.end
			_, err := svc.CreateBooking(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidDateRange)
		})
	}

	store.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestCreateBooking_Success(t *testing.T) {
	store := &mockStore{}
	svc := newService(store)

	store.On("CreateBooking", mock.Anything, mock.MatchedBy(func(b *models.Booking) bool {
		return b.RoomID == 1 &&
			b.StartDate.Equal(date(2025, 1, 10)) &&
			b.EndDate.Equal(date(2025, 1, 15)) &&
			b.UserName == "Anna"
	})).Return(int64(42), nil)

	id, err := svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	store.AssertExpectations(t)
}

func TestCreateBooking_StoreErrorsPassThrough(t *testing.T) {
	for _, sentinel := range []error{ErrRoomNotFound, ErrRoomUnavailable} {
		store := &mockStore{}
		svc := newService(store)
		store.On("CreateBooking", mock.Anything, mock.Anything).Return(int64(0), sentinel)

		_, err := svc.CreateBooking(context.Background(), validRequest())
		assert.ErrorIs(t, err, sentinel)
	}
}

func TestCreateBooking_RejectionIsRepeatable(t *testing.T) {
	store := &mockStore{}
	svc := newService(store)
	store.On("CreateBooking", mock.Anything, mock.Anything).Return(int64(0), ErrRoomUnavailable)

	for i := 0; i < 3; i++ {
		_, err := svc.CreateBooking(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrRoomUnavailable)
	}
}

func TestAvailableRooms(t *testing.T) {
	store := &mockStore{}
	svc := newService(store)

	rooms := []models.Room{
		{ID: 1, RoomNumber: "101"},
		{ID: 2, RoomNumber: "102"},
		{ID: 3, RoomNumber: "103"},
	}
	store.On("ListRooms", mock.Anything).Return(rooms, nil)

	// Room 1 booked over today, room 2 booked in the past, room 3 free.
	store.On("GetBookingsByRoom", mock.Anything, int64(1)).Return([]models.Booking{
		{RoomID: 1, StartDate: date(2025, 2, 1), EndDate: date(2025, 2, 5)},
	}, nil)
	store.On("GetBookingsByRoom", mock.Anything, int64(2)).Return([]models.Booking{
		{RoomID: 2, StartDate: date(2025, 1, 1), EndDate: date(2025, 1, 5)},
	}, nil)
	store.On("GetBookingsByRoom", mock.Anything, int64(3)).Return([]models.Booking{}, nil)

	available, err := svc.AvailableRooms(context.Background(), date(2025, 2, 3))
	require.NoError(t, err)
	require.Len(t, available, 2)
	assert.Equal(t, "102", available[0].RoomNumber)
	assert.Equal(t, "103", available[1].RoomNumber)
}

func TestAvailableRooms_InclusiveBoundaries(t *testing.T) {
	store := &mockStore{}
	svc := newService(store)

	store.On("ListRooms", mock.Anything).Return([]models.Room{{ID: 1, RoomNumber: "101"}}, nil)
	store.On("GetBookingsByRoom", mock.Anything, int64(1)).Return([]models.Booking{
		{RoomID: 1, StartDate: date(2025, 2, 1), EndDate: date(2025, 2, 5)},
	}, nil)

	// Occupied through the end date inclusive, free the day after.
	for _, today := range []time.Time{date(2025, 2, 1), date(2025, 2, 5)} {
		available, err := svc.AvailableRooms(context.Background(), today)
		require.NoError(t, err)
		assert.Empty(t, available)
	}

	available, err := svc.AvailableRooms(context.Background(), date(2025, 2, 6))
	require.NoError(t, err)
	assert.Len(t, available, 1)
}

func TestAvailableRooms_AllBookedIsEmptyNotNil(t *testing.T) {
	store := &mockStore{}
	svc := newService(store)

	store.On("ListRooms", mock.Anything).Return([]models.Room{{ID: 1}}, nil)
	store.On("GetBookingsByRoom", mock.Anything, int64(1)).Return([]models.Booking{
		{RoomID: 1, StartDate: date(2025, 2, 1), EndDate: date(2025, 2, 5)},
	}, nil)

	available, err := svc.AvailableRooms(context.Background(), date(2025, 2, 3))
	require.NoError(t, err)
	assert.NotNil(t, available)
	assert.Empty(t, available)
}
