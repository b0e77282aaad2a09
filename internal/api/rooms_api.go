package api

import (
	"net/http"

	"roomio/internal/metrics"
	"roomio/internal/models"
)

// RoomResponse represents a room in the availability listing. Bedroom count
// is internal and not exposed here.
type RoomResponse struct {
	ID            int64   `json:"id"`
	RoomNumber    string  `json:"room_number"`
	RoomType      string  `json:"room_type"`
	PricePerNight float64 `json:"price_per_night"`
}

// RoomsResponse is the body of GET /rooms.
type RoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// handleRooms lists rooms that are not booked today.
// GET /rooms
func (s *HTTPServer) handleRooms(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("rooms")
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	today := models.DateOnly(s.now())
	day := today.Format(models.DateFormat)

	var resp RoomsResponse
	if s.cache.Get(r.Context(), day, &resp) {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	rooms, err := s.svc.AvailableRooms(r.Context(), today)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list available rooms")
		writeError(w, http.StatusInternalServerError, "failed to list rooms")
		return
	}

	resp.Rooms = make([]RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		resp.Rooms = append(resp.Rooms, RoomResponse{
			ID:            room.ID,
			RoomNumber:    room.RoomNumber,
			RoomType:      room.RoomType,
			PricePerNight: room.PricePerNight,
		})
	}

	s.cache.Set(r.Context(), day, resp)
	writeJSON(w, http.StatusOK, resp)
}
