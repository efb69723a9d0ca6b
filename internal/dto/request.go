package dto

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

type CreateBookingRequest struct {
	VenueID         string  `json:"venue_id"`
	Date            string  `json:"date"`
	EndDate         string  `json:"end_date,omitempty"`
	TimeSlot        string  `json:"time_slot,omitempty"`
	GuestCount      int     `json:"guest_count"`
	Price           float64 `json:"price,omitempty"`
	ContactName     string  `json:"contact_name"`
	ContactEmail    string  `json:"contact_email"`
	ContactPhone    string  `json:"contact_phone,omitempty"`
	SpecialRequests string  `json:"special_requests,omitempty"`
	IdempotencyKey  string  `json:"idempotency_key,omitempty"`
}

// ParseDates converts the wire date strings. An empty end date means a
// single-day booking.
func (r CreateBookingRequest) ParseDates() (time.Time, *time.Time, error) {
	return parseRange(r.Date, r.EndDate)
}

type QuoteRequest struct {
	Date       string `json:"date"`
	EndDate    string `json:"end_date,omitempty"`
	GuestCount int    `json:"guest_count"`
}

func (r QuoteRequest) ParseDates() (time.Time, *time.Time, error) {
	return parseRange(r.Date, r.EndDate)
}

type VisitRequest struct {
	VenueID       string `json:"venue_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	PreferredDate string `json:"preferred_date"`
	PreferredTime string `json:"preferred_time,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

func parseRange(start, end string) (time.Time, *time.Time, error) {
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("invalid date %q, want YYYY-MM-DD", start)
	}
	if end == "" {
		return startDate, nil, nil
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("invalid end_date %q, want YYYY-MM-DD", end)
	}
	return startDate, &endDate, nil
}
