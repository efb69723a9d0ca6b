package pricing

import (
	"errors"
	"math"
	"slices"
	"time"

	"github.com/wedlane/venue-service/internal/models"
)

var (
	// ErrInvalidRange is returned when the end date lies before the start date.
	ErrInvalidRange = errors.New("end date is before start date")
	// ErrUnsupportedRule is returned for percentage adjustments on guest-count
	// rules, which have no defined meaning.
	ErrUnsupportedRule = errors.New("percentage adjustment is not supported for guest_count rules")
)

// Breakdown is the result of a price computation. Total is always derived
// fresh from the inputs, never carried over between calls.
type Breakdown struct {
	BasePrice          float64 `json:"base_price"`
	SeasonalAdjustment float64 `json:"seasonal_adjustment"`
	GuestPrice         float64 `json:"guest_price"`
	TotalPrice         float64 `json:"total_price"`
	Days               int     `json:"days"`
}

// DayCount returns the inclusive number of calendar days covered by the
// range. A nil end date means a single-day booking. The span is rounded up
// and both endpoints count, so 2023-12-01..2023-12-03 is 3 days.
func DayCount(start time.Time, end *time.Time) int {
	if end == nil {
		return 1
	}
	days := int(math.Ceil(end.Sub(start).Hours()/24)) + 1
	if days < 1 {
		return 1
	}
	return days
}

// Compute applies a venue's pricing rules to a base day rate.
//
// Seasonal and weekday rules are evaluated against the start date only,
// even for ranges that cross a month or weekday boundary, and both
// accumulate into SeasonalAdjustment. Guest-count rules charge a flat
// amount per guest above the rule's floor.
func Compute(basePrice float64, rules []models.PricingRule, start time.Time, end *time.Time, guestCount int) (Breakdown, error) {
	if end != nil && end.Before(start) {
		return Breakdown{}, ErrInvalidRange
	}

	days := DayCount(start, end)
	base := basePrice * float64(days)

	var seasonal, guest float64
	month := int(start.Month())
	weekday := int(start.Weekday()) // 0 = Sunday

	for _, rule := range rules {
		switch rule.RuleType {
		case models.RuleSeasonal:
			if slices.Contains(rule.Condition.Months, month) {
				seasonal += adjust(rule, base)
			}
		case models.RuleWeekday:
			if slices.Contains(rule.Condition.Days, weekday) {
				seasonal += adjust(rule, base)
			}
		case models.RuleGuestCount:
			if rule.AdjustmentType == models.AdjustPercentage {
				return Breakdown{}, ErrUnsupportedRule
			}
			if floor := rule.Condition.PerGuestAbove; guestCount > floor {
				guest += float64(guestCount-floor) * rule.AdjustmentValue
			}
		}
	}

	return Breakdown{
		BasePrice:          base,
		SeasonalAdjustment: seasonal,
		GuestPrice:         guest,
		TotalPrice:         base + seasonal + guest,
		Days:               days,
	}, nil
}

func adjust(rule models.PricingRule, base float64) float64 {
	if rule.AdjustmentType == models.AdjustPercentage {
		return base * rule.AdjustmentValue / 100
	}
	return rule.AdjustmentValue
}
