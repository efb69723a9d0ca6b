package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/wedlane/venue-service/internal/models"
	"github.com/wedlane/venue-service/internal/pricing"
	"github.com/wedlane/venue-service/internal/repository"
	"github.com/wedlane/venue-service/internal/resolver"
	"gorm.io/gorm"
)

var (
	ErrValidation      = errors.New("missing required booking information")
	ErrInvalidRange    = errors.New("end date is before start date")
	ErrGuestCountRange = errors.New("guest count is outside the venue's capacity")
	ErrVenueNotFound   = errors.New("venue not found")
	ErrBookingNotFound = errors.New("booking not found")
)

// EventPublisher pushes domain events to the broker. Publishes are
// best-effort; the booking flow never fails on a broker error.
type EventPublisher interface {
	Publish(routingKey string, payload any) error
}

// BookingInput carries a submission from the HTTP layer. VenueID may be a
// canonical UUID or a legacy numeric reference.
type BookingInput struct {
	VenueID         string
	UserID          string
	Date            time.Time
	EndDate         *time.Time
	TimeSlot        string
	GuestCount      int
	Price           float64
	ContactName     string
	ContactEmail    string
	ContactPhone    string
	SpecialRequests string
	IdempotencyKey  string
}

type BookingService interface {
	CreateBooking(ctx context.Context, input BookingInput) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID, userID string) (*models.Booking, error)
	GetBooking(ctx context.Context, id, userID string) (*models.Booking, error)
	ListBookings(ctx context.Context, userID string) ([]models.Booking, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	venueRepo   repository.VenueRepository
	publisher   EventPublisher
}

func NewBookingService(bookingRepo repository.BookingRepository, venueRepo repository.VenueRepository, publisher EventPublisher) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		venueRepo:   venueRepo,
		publisher:   publisher,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, input BookingInput) (*models.Booking, error) {
	// 1. Validate
	if input.VenueID == "" || input.UserID == "" || input.Date.IsZero() ||
		input.GuestCount < 1 || input.ContactName == "" || input.ContactEmail == "" {
		return nil, ErrValidation
	}
	if input.EndDate != nil && input.EndDate.Before(input.Date) {
		return nil, ErrInvalidRange
	}

	// 2. Resolve the venue reference against the authoritative store
	venueID, err := resolver.Resolve(input.VenueID)
	if err != nil {
		return nil, ErrVenueNotFound
	}
	venue, err := s.venueRepo.FindByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, fmt.Errorf("look up venue %s: %w", venueID, err)
	}
	if input.GuestCount < venue.CapacityMin || input.GuestCount > venue.CapacityMax {
		return nil, ErrGuestCountRange
	}

	// 3. Price from the venue's stored rules; fall back to the caller's
	// snapshot only when pricing data cannot be read.
	price := input.Price
	rules, err := s.venueRepo.PricingRules(ctx, venueID)
	if err != nil {
		log.Printf("[BookingService] pricing rules unavailable for venue %s, keeping caller snapshot %.2f: %v", venueID, input.Price, err)
	} else {
		breakdown, err := pricing.Compute(venue.BasePrice, rules, input.Date, input.EndDate, input.GuestCount)
		if err != nil {
			return nil, fmt.Errorf("compute price: %w", err)
		}
		price = breakdown.TotalPrice
	}

	timeSlot := input.TimeSlot
	if timeSlot == "" {
		timeSlot = "full-day"
	}

	booking := &models.Booking{
		ID:              uuid.NewString(),
		VenueID:         venueID,
		UserID:          input.UserID,
		Date:            input.Date,
		EndDate:         input.EndDate,
		TimeSlot:        timeSlot,
		GuestCount:      input.GuestCount,
		Price:           price,
		ContactName:     input.ContactName,
		ContactEmail:    input.ContactEmail,
		ContactPhone:    input.ContactPhone,
		SpecialRequests: input.SpecialRequests,
		Status:          models.StatusPending,
		VenueName:       venue.Name,
		Location:        venue.Location,
	}
	if input.IdempotencyKey != "" {
		booking.IdempotencyKey = &input.IdempotencyKey
	}

	// 4. Persist. A replayed idempotency key returns the original booking
	// instead of inserting a second row.
	var existing *models.Booking
	err = s.bookingRepo.Transaction(ctx, func(tx *gorm.DB) error {
		if input.IdempotencyKey != "" {
			prior, err := s.bookingRepo.FindByIdempotencyKey(ctx, tx, input.IdempotencyKey)
			if err == nil {
				existing = prior
				return nil
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}
		return s.bookingRepo.Create(ctx, tx, booking)
	})
	if err != nil {
		return nil, fmt.Errorf("persist booking: %w", err)
	}
	if existing != nil {
		log.Printf("[BookingService] idempotency key %q replayed, returning booking %s", input.IdempotencyKey, existing.ID)
		return existing, nil
	}

	// 5. Flip availability for each day in the inclusive range. The booking
	// is already committed; failures here are logged, never propagated.
	s.setAvailability(ctx, booking, false)

	if s.publisher != nil {
		_ = s.publisher.Publish("booking.created", booking)
	}

	return booking, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID, userID string) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByIDForUser(ctx, bookingID, userID)
	if err != nil {
		return nil, ErrBookingNotFound
	}

	// Cancelling twice is a no-op, not an error.
	if booking.Status == models.StatusCancelled {
		return booking, nil
	}

	err = s.bookingRepo.Transaction(ctx, func(tx *gorm.DB) error {
		return s.bookingRepo.UpdateStatus(ctx, tx, bookingID, models.StatusCancelled)
	})
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}
	booking.Status = models.StatusCancelled

	// Re-open the dates the booking held.
	s.setAvailability(ctx, booking, true)

	if s.publisher != nil {
		_ = s.publisher.Publish("booking.cancelled", booking)
	}

	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id, userID string) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByIDForUser(ctx, id, userID)
	if err != nil {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.bookingRepo.FindByUser(ctx, userID)
}

// setAvailability upserts one entry per calendar day in the booking's
// inclusive range. Booking creation takes precedence over availability
// bookkeeping, so failures are logged and swallowed.
func (s *bookingService) setAvailability(ctx context.Context, booking *models.Booking, available bool) {
	end := booking.Date
	if booking.EndDate != nil {
		end = *booking.EndDate
	}
	for day := booking.Date; !day.After(end); day = day.AddDate(0, 0, 1) {
		if err := s.venueRepo.UpsertAvailability(ctx, booking.VenueID, day, available); err != nil {
			log.Printf("[BookingService] availability update failed for venue %s on %s: %v",
				booking.VenueID, day.Format("2006-01-02"), err)
			continue
		}
		if s.publisher != nil {
			_ = s.publisher.Publish("availability.changed", map[string]any{
				"venue_id":     booking.VenueID,
				"date":         day.Format("2006-01-02"),
				"is_available": available,
			})
		}
	}
}
