package database

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wedlane/venue-service/internal/models"
	"gorm.io/gorm"
)

// Seed inserts one demo venue with pricing rules and a month of
// availability. Safe to call on a populated database: it does nothing when
// any venue already exists.
func Seed(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Venue{}).Count(&count).Error; err != nil {
		log.Printf("[Seed] venue count failed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	venue := models.Venue{
		ID:           uuid.NewString(),
		Name:         "The Grand Ballroom",
		Description:  "A luxurious ballroom with modern amenities, perfect for weddings and corporate events.",
		Location:     "New Delhi, India",
		CapacityMin:  50,
		CapacityMax:  500,
		BasePrice:    75000,
		PricePerHour: 10000,
		Amenities:    pq.StringArray{"Catering", "Decoration", "Sound System", "Parking", "WiFi"},
		Images:       pq.StringArray{"https://images.unsplash.com/photo-1519167758481-83f550bb49b3"},
		Tags:         pq.StringArray{"Wedding", "Corporate", "Reception", "Luxury"},
	}
	if err := db.Create(&venue).Error; err != nil {
		log.Printf("[Seed] create venue failed: %v", err)
		return
	}

	rules := []models.PricingRule{
		{
			VenueID:         venue.ID,
			RuleType:        models.RuleSeasonal,
			AdjustmentType:  models.AdjustPercentage,
			AdjustmentValue: 20,
			// Wedding season: November through February
			Condition: models.RuleCondition{Months: []int{11, 12, 1, 2}},
		},
		{
			VenueID:         venue.ID,
			RuleType:        models.RuleGuestCount,
			AdjustmentType:  models.AdjustFlat,
			AdjustmentValue: 100,
			Condition:       models.RuleCondition{PerGuestAbove: 100},
		},
		{
			VenueID:         venue.ID,
			RuleType:        models.RuleWeekday,
			AdjustmentType:  models.AdjustPercentage,
			AdjustmentValue: -15,
			// Monday-Thursday discount
			Condition: models.RuleCondition{Days: []int{1, 2, 3, 4}},
		},
	}
	if err := db.Create(&rules).Error; err != nil {
		log.Printf("[Seed] create pricing rules failed: %v", err)
	}

	today := time.Now().Truncate(24 * time.Hour)
	entries := make([]models.AvailabilityEntry, 0, 30)
	for i := 0; i < 30; i++ {
		entries = append(entries, models.AvailabilityEntry{
			VenueID:     venue.ID,
			Date:        today.AddDate(0, 0, i),
			IsAvailable: true,
		})
	}
	if err := db.Create(&entries).Error; err != nil {
		log.Printf("[Seed] create availability failed: %v", err)
	}

	log.Printf("[Seed] created demo venue %s", venue.ID)
}
