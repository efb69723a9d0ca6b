package dto

import (
	"time"

	"github.com/wedlane/venue-service/internal/models"
)

type BookingResponse struct {
	ID              string               `json:"id"`
	VenueID         string               `json:"venue_id"`
	UserID          string               `json:"user_id"`
	Date            string               `json:"date"`
	EndDate         string               `json:"end_date,omitempty"`
	TimeSlot        string               `json:"time_slot"`
	GuestCount      int                  `json:"guest_count"`
	Price           float64              `json:"price"`
	ContactName     string               `json:"contact_name"`
	ContactEmail    string               `json:"contact_email"`
	ContactPhone    string               `json:"contact_phone,omitempty"`
	SpecialRequests string               `json:"special_requests,omitempty"`
	Status          models.BookingStatus `json:"status"`
	VenueName       string               `json:"venue_name,omitempty"`
	Location        string               `json:"location,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
}

type CreateBookingResponse struct {
	Message string          `json:"message"`
	Booking BookingResponse `json:"booking"`
}

type CancelBookingResponse struct {
	Message   string               `json:"message"`
	BookingID string               `json:"booking_id"`
	Status    models.BookingStatus `json:"status"`
}

type VisitResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	resp := BookingResponse{
		ID:              b.ID,
		VenueID:         b.VenueID,
		UserID:          b.UserID,
		Date:            b.Date.Format(dateLayout),
		TimeSlot:        b.TimeSlot,
		GuestCount:      b.GuestCount,
		Price:           b.Price,
		ContactName:     b.ContactName,
		ContactEmail:    b.ContactEmail,
		ContactPhone:    b.ContactPhone,
		SpecialRequests: b.SpecialRequests,
		Status:          b.Status,
		VenueName:       b.VenueName,
		Location:        b.Location,
		CreatedAt:       b.CreatedAt,
	}
	if b.EndDate != nil {
		resp.EndDate = b.EndDate.Format(dateLayout)
	}
	return resp
}
