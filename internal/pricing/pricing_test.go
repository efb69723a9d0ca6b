package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wedlane/venue-service/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCompute_NoRules(t *testing.T) {
	end := date(2023, time.December, 3)
	b, err := Compute(50000, nil, date(2023, time.December, 1), &end, 100)

	assert.NoError(t, err)
	assert.Equal(t, 3, b.Days)
	assert.Equal(t, 150000.0, b.BasePrice)
	assert.Equal(t, 0.0, b.SeasonalAdjustment)
	assert.Equal(t, 0.0, b.GuestPrice)
	assert.Equal(t, 150000.0, b.TotalPrice)
}

func TestCompute_SingleDayWhenEndNil(t *testing.T) {
	b, err := Compute(75000, nil, date(2024, time.June, 15), nil, 80)

	assert.NoError(t, err)
	assert.Equal(t, 1, b.Days)
	assert.Equal(t, 75000.0, b.TotalPrice)
}

func TestDayCount_InclusiveEndpoints(t *testing.T) {
	start := date(2023, time.December, 1)

	end := date(2023, time.December, 3)
	assert.Equal(t, 3, DayCount(start, &end))

	sameDay := start
	assert.Equal(t, 1, DayCount(start, &sameDay))

	assert.Equal(t, 1, DayCount(start, nil))
}

func TestCompute_SeasonalPercentage(t *testing.T) {
	rules := []models.PricingRule{{
		RuleType:        models.RuleSeasonal,
		AdjustmentType:  models.AdjustPercentage,
		AdjustmentValue: 20,
		Condition:       models.RuleCondition{Months: []int{11, 12, 1, 2}},
	}}

	// 2 inclusive days of 50000 -> base total 100000
	end := date(2023, time.December, 2)
	b, err := Compute(50000, rules, date(2023, time.December, 1), &end, 50)

	assert.NoError(t, err)
	assert.Equal(t, 100000.0, b.BasePrice)
	assert.Equal(t, 20000.0, b.SeasonalAdjustment)
	assert.Equal(t, 120000.0, b.TotalPrice)
}

func TestCompute_SeasonalRuleOutsideSeason(t *testing.T) {
	rules := []models.PricingRule{{
		RuleType:        models.RuleSeasonal,
		AdjustmentType:  models.AdjustPercentage,
		AdjustmentValue: 20,
		Condition:       models.RuleCondition{Months: []int{11, 12}},
	}}

	b, err := Compute(50000, rules, date(2024, time.June, 10), nil, 50)

	assert.NoError(t, err)
	assert.Equal(t, 0.0, b.SeasonalAdjustment)
}

func TestCompute_WeekdayDiscountMergesIntoSeasonal(t *testing.T) {
	rules := []models.PricingRule{{
		RuleType:        models.RuleWeekday,
		AdjustmentType:  models.AdjustPercentage,
		AdjustmentValue: -15,
		Condition:       models.RuleCondition{Days: []int{1, 2, 3, 4}},
	}}

	// 2024-06-10 is a Monday (weekday 1)
	b, err := Compute(100000, rules, date(2024, time.June, 10), nil, 50)

	assert.NoError(t, err)
	assert.Equal(t, -15000.0, b.SeasonalAdjustment)
	assert.Equal(t, 85000.0, b.TotalPrice)
}

func TestCompute_WeekdayUsesStartDateOnly(t *testing.T) {
	rules := []models.PricingRule{{
		RuleType:        models.RuleWeekday,
		AdjustmentType:  models.AdjustFlat,
		AdjustmentValue: -5000,
		Condition:       models.RuleCondition{Days: []int{1}},
	}}

	// Range starts Saturday and crosses a Monday; only the start weekday counts
	end := date(2024, time.June, 11)
	b, err := Compute(100000, rules, date(2024, time.June, 8), nil, 50)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, b.SeasonalAdjustment)

	b, err = Compute(100000, rules, date(2024, time.June, 8), &end, 50)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, b.SeasonalAdjustment)
}

func TestCompute_GuestCountThreshold(t *testing.T) {
	rules := []models.PricingRule{{
		RuleType:        models.RuleGuestCount,
		AdjustmentType:  models.AdjustFlat,
		AdjustmentValue: 100,
		Condition:       models.RuleCondition{PerGuestAbove: 100},
	}}

	b, err := Compute(75000, rules, date(2024, time.June, 15), nil, 150)

	assert.NoError(t, err)
	assert.Equal(t, 5000.0, b.GuestPrice)
	assert.Equal(t, 80000.0, b.TotalPrice)
}

func TestCompute_GuestCountAtFloorNoCharge(t *testing.T) {
	rules := []models.PricingRule{{
		RuleType:        models.RuleGuestCount,
		AdjustmentType:  models.AdjustFlat,
		AdjustmentValue: 100,
		Condition:       models.RuleCondition{PerGuestAbove: 100},
	}}

	b, err := Compute(75000, rules, date(2024, time.June, 15), nil, 100)

	assert.NoError(t, err)
	assert.Equal(t, 0.0, b.GuestPrice)
}

func TestCompute_TotalIsSumOfParts(t *testing.T) {
	rules := []models.PricingRule{
		{
			RuleType:        models.RuleSeasonal,
			AdjustmentType:  models.AdjustPercentage,
			AdjustmentValue: 20,
			Condition:       models.RuleCondition{Months: []int{12}},
		},
		{
			RuleType:        models.RuleWeekday,
			AdjustmentType:  models.AdjustFlat,
			AdjustmentValue: -2500,
			Condition:       models.RuleCondition{Days: []int{5}},
		},
		{
			RuleType:        models.RuleGuestCount,
			AdjustmentType:  models.AdjustFlat,
			AdjustmentValue: 100,
			Condition:       models.RuleCondition{PerGuestAbove: 100},
		},
	}

	// 2023-12-01 is a Friday (weekday 5): seasonal and weekday both apply
	end := date(2023, time.December, 3)
	b, err := Compute(50000, rules, date(2023, time.December, 1), &end, 150)

	assert.NoError(t, err)
	assert.Equal(t, 150000.0, b.BasePrice)
	assert.Equal(t, 27500.0, b.SeasonalAdjustment)
	assert.Equal(t, 5000.0, b.GuestPrice)
	assert.Equal(t, b.BasePrice+b.SeasonalAdjustment+b.GuestPrice, b.TotalPrice)
}

func TestCompute_EndBeforeStart(t *testing.T) {
	end := date(2023, time.November, 30)
	_, err := Compute(50000, nil, date(2023, time.December, 1), &end, 50)

	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestCompute_PercentageGuestRuleRejected(t *testing.T) {
	rules := []models.PricingRule{{
		RuleType:        models.RuleGuestCount,
		AdjustmentType:  models.AdjustPercentage,
		AdjustmentValue: 10,
		Condition:       models.RuleCondition{PerGuestAbove: 100},
	}}

	_, err := Compute(75000, rules, date(2024, time.June, 15), nil, 150)

	assert.ErrorIs(t, err, ErrUnsupportedRule)
}
