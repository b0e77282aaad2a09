package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"roomio/internal/metrics"
	"roomio/internal/models"
	"roomio/internal/report"
	"roomio/internal/service"
)

// BookRoomResponse is the success body of POST /book-room.
type BookRoomResponse struct {
	Message string `json:"message"`
}

// handleBookRoom creates a booking.
// POST /book-room
func (s *HTTPServer) handleBookRoom(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("book_room")
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req service.BookingRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	_, err := s.svc.CreateBooking(r.Context(), req)
	if err != nil {
		status, msg, reason := mapBookingError(err)
		if reason == "" {
			s.log.Error().Err(err).Int64("room_id", req.RoomID).Msg("booking failed")
		} else {
			metrics.IncBookingRejected(reason)
		}
		writeError(w, status, msg)
		return
	}

	metrics.IncBookingCreated()

	// Drop today's cached availability: the new booking may cover it.
	s.cache.Forget(r.Context(), models.DateOnly(s.now()).Format(models.DateFormat))

	writeJSON(w, http.StatusCreated, BookRoomResponse{Message: "Room booked successfully"})
}

// mapBookingError translates service errors to the HTTP surface. The reason
// doubles as a metrics label; empty means an unexpected internal error.
func mapBookingError(err error) (status int, msg, reason string) {
	switch {
	case errors.Is(err, service.ErrMissingFields):
		return http.StatusBadRequest, "Missing required fields", "missing_fields"
	case errors.Is(err, service.ErrInvalidDateRange):
		return http.StatusBadRequest, "Invalid date range", "invalid_date_range"
	case errors.Is(err, service.ErrRoomNotFound):
		return http.StatusNotFound, "Room not found", "room_not_found"
	case errors.Is(err, service.ErrRoomUnavailable):
		return http.StatusBadRequest, "Room is already booked for the selected dates", "double_booking"
	default:
		return http.StatusInternalServerError, "failed to create booking", ""
	}
}

// handleBookingsExport streams an Excel workbook of all bookings.
// GET /admin/bookings.xlsx
func (s *HTTPServer) handleBookingsExport(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("bookings_export")
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	bookings, err := s.svc.ListBookings(r.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list bookings for export")
		writeError(w, http.StatusInternalServerError, "failed to build report")
		return
	}

	rooms, err := s.svc.Rooms(r.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list rooms for export")
		writeError(w, http.StatusInternalServerError, "failed to build report")
		return
	}
	roomsByID := make(map[int64]models.Room, len(rooms))
	for _, room := range rooms {
		roomsByID[room.ID] = room
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="bookings.xlsx"`)
	if err := report.WriteBookings(w, bookings, roomsByID); err != nil {
		s.log.Error().Err(err).Msg("failed to write bookings workbook")
	}
}
