package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wedlane/venue-service/internal/models"
	"github.com/wedlane/venue-service/internal/pricing"
	"github.com/wedlane/venue-service/internal/repository"
	"gorm.io/gorm"
)

type VenueService interface {
	ListVenues(ctx context.Context, filter repository.VenueFilter) ([]models.Venue, error)
	GetVenue(ctx context.Context, id string) (*models.Venue, error)
	GetAvailability(ctx context.Context, venueID string) (map[string]bool, error)
	GetPricingRules(ctx context.Context, venueID string) ([]models.PricingRule, error)
	Quote(ctx context.Context, venueID string, start time.Time, end *time.Time, guestCount int) (pricing.Breakdown, error)
	RequestVisit(ctx context.Context, visit *models.VenueVisit) (string, error)
}

type venueService struct {
	venueRepo repository.VenueRepository
}

func NewVenueService(venueRepo repository.VenueRepository) VenueService {
	return &venueService{venueRepo: venueRepo}
}

func (s *venueService) ListVenues(ctx context.Context, filter repository.VenueFilter) ([]models.Venue, error) {
	return s.venueRepo.FindAll(ctx, filter)
}

func (s *venueService) GetVenue(ctx context.Context, id string) (*models.Venue, error) {
	venue, err := s.venueRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return venue, nil
}

// GetAvailability maps stored entries to date keys. Dates with no entry are
// absent from the map and count as available.
func (s *venueService) GetAvailability(ctx context.Context, venueID string) (map[string]bool, error) {
	entries, err := s.venueRepo.Availability(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("load availability: %w", err)
	}
	availability := make(map[string]bool, len(entries))
	for _, e := range entries {
		availability[e.Date.Format("2006-01-02")] = e.IsAvailable
	}
	return availability, nil
}

func (s *venueService) GetPricingRules(ctx context.Context, venueID string) ([]models.PricingRule, error) {
	return s.venueRepo.PricingRules(ctx, venueID)
}

// Quote computes the display-path estimate with the same engine the booking
// flow uses, so the number the guest sees matches the snapshot stored later.
func (s *venueService) Quote(ctx context.Context, venueID string, start time.Time, end *time.Time, guestCount int) (pricing.Breakdown, error) {
	venue, err := s.GetVenue(ctx, venueID)
	if err != nil {
		return pricing.Breakdown{}, err
	}
	rules, err := s.venueRepo.PricingRules(ctx, venueID)
	if err != nil {
		return pricing.Breakdown{}, fmt.Errorf("load pricing rules: %w", err)
	}
	return pricing.Compute(venue.BasePrice, rules, start, end, guestCount)
}

func (s *venueService) RequestVisit(ctx context.Context, visit *models.VenueVisit) (string, error) {
	if visit.VenueID == "" || visit.Name == "" || visit.Email == "" || visit.PreferredDate == "" {
		return "", ErrValidation
	}
	if _, err := s.GetVenue(ctx, visit.VenueID); err != nil {
		return "", err
	}
	visit.ID = uuid.NewString()
	visit.Status = "pending"
	if err := s.venueRepo.CreateVisit(ctx, visit); err != nil {
		return "", fmt.Errorf("create visit request: %w", err)
	}
	return visit.ID, nil
}
