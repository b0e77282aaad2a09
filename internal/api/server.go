package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"roomio/internal/cache"
	"roomio/internal/service"
)

// Options configures the HTTP surface.
type Options struct {
	// CORSAllowedOrigin is the single origin allowed to call the API.
	CORSAllowedOrigin string
	// RateLimitRPS / RateLimitBurst bound booking attempts per client IP.
	RateLimitRPS   float64
	RateLimitBurst int
}

// HTTPServer serves the booking API.
type HTTPServer struct {
	svc   *service.BookingService
	cache *cache.RoomsCache
	log   *zerolog.Logger
	now   func() time.Time
}

// ServerOption customizes an HTTPServer.
type ServerOption func(*HTTPServer)

// WithNow overrides the wall clock, used by tests.
func WithNow(now func() time.Time) ServerOption {
	return func(s *HTTPServer) { s.now = now }
}

func NewHTTPServer(svc *service.BookingService, roomsCache *cache.RoomsCache, logger *zerolog.Logger, opts ...ServerOption) *HTTPServer {
	s := &HTTPServer{
		svc:   svc,
		cache: roomsCache,
		log:   logger,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler builds the routed and middleware-wrapped handler.
func (s *HTTPServer) Handler(opts Options) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/rooms", s.handleRooms)
	mux.HandleFunc("/book-room", s.rateLimit(opts, s.handleBookRoom))
	mux.HandleFunc("/admin/bookings.xlsx", s.handleBookingsExport)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{opts.CORSAllowedOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})

	return s.requestID(s.requestLogger(c.Handler(mux)))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
