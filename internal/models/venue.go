package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
)

type Venue struct {
	ID           string         `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string         `gorm:"not null" json:"name"`
	Description  string         `json:"description"`
	Location     string         `gorm:"not null" json:"location"`
	CapacityMin  int            `gorm:"not null" json:"capacity_min"`
	CapacityMax  int            `gorm:"not null" json:"capacity_max"`
	BasePrice    float64        `gorm:"not null" json:"base_price"`
	PricePerHour float64        `json:"price_per_hour"`
	Amenities    pq.StringArray `gorm:"type:text[]" json:"amenities"`
	Images       pq.StringArray `gorm:"type:text[]" json:"images"`
	Tags         pq.StringArray `gorm:"type:text[]" json:"tags"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

type RuleType string

const (
	RuleSeasonal   RuleType = "seasonal"
	RuleWeekday    RuleType = "weekday"
	RuleGuestCount RuleType = "guest_count"
)

type AdjustmentType string

const (
	AdjustPercentage AdjustmentType = "percentage"
	AdjustFlat       AdjustmentType = "flat"
)

// RuleCondition holds the kind-specific predicate of a pricing rule.
// Months are 1-12, Days are 0 (Sunday) to 6 (Saturday).
type RuleCondition struct {
	Months        []int `json:"months,omitempty"`
	Days          []int `json:"days,omitempty"`
	PerGuestAbove int   `json:"per_guest_above,omitempty"`
}

func (c RuleCondition) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *RuleCondition) Scan(value any) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return fmt.Errorf("unsupported condition column type %T", value)
	}
}

type PricingRule struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	VenueID         string         `gorm:"type:uuid;not null;index" json:"venue_id"`
	RuleType        RuleType       `gorm:"type:varchar(20);not null" json:"rule_type"`
	AdjustmentType  AdjustmentType `gorm:"type:varchar(20);not null" json:"adjustment_type"`
	AdjustmentValue float64        `gorm:"not null" json:"adjustment_value"`
	Condition       RuleCondition  `gorm:"type:jsonb" json:"condition"`
	CreatedAt       time.Time      `json:"created_at"`
}

// AvailabilityEntry is one (venue, date) flag. A missing row means the
// date is available.
type AvailabilityEntry struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	VenueID     string    `gorm:"type:uuid;not null;uniqueIndex:idx_venue_date" json:"venue_id"`
	Date        time.Time `gorm:"type:date;not null;uniqueIndex:idx_venue_date" json:"date"`
	IsAvailable bool      `gorm:"not null" json:"is_available"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type VenueVisit struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"id"`
	VenueID       string    `gorm:"type:uuid;not null;index" json:"venue_id"`
	Name          string    `gorm:"not null" json:"name"`
	Email         string    `gorm:"not null" json:"email"`
	Phone         string    `json:"phone"`
	PreferredDate string    `gorm:"not null" json:"preferred_date"`
	PreferredTime string    `json:"preferred_time"`
	Notes         string    `json:"notes"`
	Status        string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}
