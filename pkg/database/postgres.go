package database

import (
	"log"

	"github.com/wedlane/venue-service/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Venue{},
		&models.PricingRule{},
		&models.AvailabilityEntry{},
		&models.Booking{},
		&models.VenueVisit{},
	); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// Partial unique index: a replayed idempotency key maps to exactly one
	// booking; rows without a key are unconstrained
	db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_booking_idempotency
		ON bookings (idempotency_key)
		WHERE idempotency_key IS NOT NULL
	`)

	return db
}
