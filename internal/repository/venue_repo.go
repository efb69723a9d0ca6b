package repository

import (
	"context"
	"time"

	"github.com/wedlane/venue-service/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VenueFilter narrows a venue listing. Zero values mean "no constraint".
type VenueFilter struct {
	Location  string
	MinGuests int
	Tag       string
}

type VenueRepository interface {
	FindByID(ctx context.Context, id string) (*models.Venue, error)
	FindAll(ctx context.Context, filter VenueFilter) ([]models.Venue, error)
	PricingRules(ctx context.Context, venueID string) ([]models.PricingRule, error)
	Availability(ctx context.Context, venueID string) ([]models.AvailabilityEntry, error)
	UpsertAvailability(ctx context.Context, venueID string, date time.Time, isAvailable bool) error
	CreateVisit(ctx context.Context, visit *models.VenueVisit) error
}

type venueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &venueRepository{db: db}
}

func (r *venueRepository) FindByID(ctx context.Context, id string) (*models.Venue, error) {
	var venue models.Venue
	if err := r.db.WithContext(ctx).First(&venue, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *venueRepository) FindAll(ctx context.Context, filter VenueFilter) ([]models.Venue, error) {
	var venues []models.Venue
	q := r.db.WithContext(ctx)
	if filter.Location != "" {
		q = q.Where("location ILIKE ?", "%"+filter.Location+"%")
	}
	if filter.MinGuests > 0 {
		q = q.Where("capacity_max >= ?", filter.MinGuests)
	}
	if filter.Tag != "" {
		q = q.Where("? = ANY(tags)", filter.Tag)
	}
	if err := q.Order("name ASC").Find(&venues).Error; err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *venueRepository) PricingRules(ctx context.Context, venueID string) ([]models.PricingRule, error) {
	var rules []models.PricingRule
	err := r.db.WithContext(ctx).
		Where("venue_id = ?", venueID).
		Order("id ASC").
		Find(&rules).Error
	if err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *venueRepository) Availability(ctx context.Context, venueID string) ([]models.AvailabilityEntry, error) {
	var entries []models.AvailabilityEntry
	err := r.db.WithContext(ctx).
		Where("venue_id = ?", venueID).
		Order("date ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// UpsertAvailability inserts the (venue, date) row or flips the flag on the
// existing one. Rows are never deleted.
func (r *venueRepository) UpsertAvailability(ctx context.Context, venueID string, date time.Time, isAvailable bool) error {
	entry := models.AvailabilityEntry{
		VenueID:     venueID,
		Date:        date,
		IsAvailable: isAvailable,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "venue_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_available", "updated_at"}),
	}).Create(&entry).Error
}

func (r *venueRepository) CreateVisit(ctx context.Context, visit *models.VenueVisit) error {
	return r.db.WithContext(ctx).Create(visit).Error
}
