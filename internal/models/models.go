package models

import "time"

// DateFormat is the wire and storage format for calendar dates.
const DateFormat = "2006-01-02"

// Room represents a bookable room.
type Room struct {
	ID            int64   `json:"id"`
	RoomNumber    string  `json:"room_number"`
	RoomType      string  `json:"room_type"`
	PricePerNight float64 `json:"price_per_night"`
	BedroomsCount int     `json:"bedrooms_count"`
}

// Booking represents a whole-day booking of a room. StartDate and EndDate
// carry no time-of-day component (midnight UTC).
type Booking struct {
	ID          int64     `json:"id"`
	UserName    string    `json:"user_name"`
	UserEmail   string    `json:"user_email"`
	PhoneNumber string    `json:"phone_number"`
	RoomID      int64     `json:"room_id"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}

// Overlaps reports whether the booking conflicts with the range [start, end).
// Half-open semantics: a booking ending on day D does not conflict with one
// starting on day D.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartDate.Before(end) && b.EndDate.After(start)
}

// ContainsDate reports whether the booking covers a specific date.
// Both boundary days count as occupied.
func (b *Booking) ContainsDate(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(DateOnly(b.StartDate)) && !d.After(DateOnly(b.EndDate))
}

// DateOnly strips the time-of-day component, normalizing to midnight UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}
