package models

import "time"

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID              string        `gorm:"type:uuid;primaryKey" json:"id"`
	VenueID         string        `gorm:"type:uuid;not null;index" json:"venue_id"`
	UserID          string        `gorm:"not null;index" json:"user_id"`
	Date            time.Time     `gorm:"type:date;not null" json:"date"`
	EndDate         *time.Time    `gorm:"type:date" json:"end_date,omitempty"`
	TimeSlot        string        `gorm:"type:varchar(20);not null;default:'full-day'" json:"time_slot"`
	GuestCount      int           `gorm:"not null" json:"guest_count"`
	Price           float64       `gorm:"not null" json:"price"`
	ContactName     string        `gorm:"not null" json:"contact_name"`
	ContactEmail    string        `gorm:"not null" json:"contact_email"`
	ContactPhone    string        `json:"contact_phone"`
	SpecialRequests string        `json:"special_requests,omitempty"`
	Status          BookingStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	VenueName       string        `json:"venue_name"`
	Location        string        `json:"location"`
	IdempotencyKey  *string       `gorm:"type:varchar(64)" json:"idempotency_key,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`

	Venue *Venue `gorm:"foreignKey:VenueID" json:"venue,omitempty"`
}
