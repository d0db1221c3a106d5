package city

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// NewCity Tests
// =============================================================================

func TestNewCity_NormalizesDiscountPercentages(t *testing.T) {
	c, err := NewCity("Kyiv", 1.5, 0.8, []DiscountInput{
		{Duration: 10, DiscountRate: 15},
		{Duration: 30, DiscountRate: 100},
	})
	require.NoError(t, err)

	discounts := c.Discounts()
	require.Len(t, discounts, 2)
	assert.InDelta(t, 0.15, discounts[0].Rate(), 1e-9)
	assert.InDelta(t, 1.0, discounts[1].Rate(), 1e-9)
	assert.Equal(t, 10.0, discounts[0].Duration())
	assert.True(t, strings.HasPrefix(c.SID(), "city_"))
	assert.False(t, c.CreatedAt().IsZero())
}

func TestNewCity_Invariants(t *testing.T) {
	tests := []struct {
		name      string
		cityName  string
		dayRate   float64
		nightRate float64
		discounts []DiscountInput
		wantErr   error
	}{
		{
			name:     "name too short",
			cityName: "Ki",
			dayRate:  1, nightRate: 1,
			wantErr: ErrInvalidName,
		},
		{
			name:     "whitespace padding does not count",
			cityName: "  Ki  ",
			dayRate:  1, nightRate: 1,
			wantErr: ErrInvalidName,
		},
		{
			name:     "zero day rate",
			cityName: "Kyiv",
			dayRate:  0, nightRate: 1,
			wantErr: ErrInvalidRate,
		},
		{
			name:     "negative night rate",
			cityName: "Kyiv",
			dayRate:  1, nightRate: -1,
			wantErr: ErrInvalidRate,
		},
		{
			name:     "four tiers",
			cityName: "Kyiv",
			dayRate:  1, nightRate: 1,
			discounts: []DiscountInput{
				{Duration: 1, DiscountRate: 1},
				{Duration: 2, DiscountRate: 2},
				{Duration: 3, DiscountRate: 3},
				{Duration: 4, DiscountRate: 4},
			},
			wantErr: ErrTooManyDiscounts,
		},
		{
			name:     "duplicate durations",
			cityName: "Kyiv",
			dayRate:  1, nightRate: 1,
			discounts: []DiscountInput{
				{Duration: 10, DiscountRate: 5},
				{Duration: 10, DiscountRate: 20},
			},
			wantErr: ErrDuplicateDiscountDuration,
		},
		{
			name:     "zero tier duration",
			cityName: "Kyiv",
			dayRate:  1, nightRate: 1,
			discounts: []DiscountInput{{Duration: 0, DiscountRate: 5}},
			wantErr:   ErrInvalidDiscount,
		},
		{
			name:     "percentage above 100",
			cityName: "Kyiv",
			dayRate:  1, nightRate: 1,
			discounts: []DiscountInput{{Duration: 5, DiscountRate: 101}},
			wantErr:   ErrInvalidDiscount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCity(tt.cityName, tt.dayRate, tt.nightRate, tt.discounts)
			assert.Nil(t, c)
			require.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestNewCity_ThreeTiersAllowed(t *testing.T) {
	c, err := NewCity("Odesa", 2, 1, []DiscountInput{
		{Duration: 5, DiscountRate: 5},
		{Duration: 2.5, DiscountRate: 2},
		{Duration: 60, DiscountRate: 50},
	})
	require.NoError(t, err)
	assert.Len(t, c.Discounts(), MaxDiscounts)
}

// =============================================================================
// Update Tests
// =============================================================================

func TestCity_Update_ReplacesDiscountSet(t *testing.T) {
	c, err := NewCity("Lviv", 1, 0.5, []DiscountInput{{Duration: 10, DiscountRate: 10}})
	require.NoError(t, err)
	sid := c.SID()

	require.NoError(t, c.Update("Lviv", 2, 1, nil))

	assert.Equal(t, sid, c.SID())
	assert.Equal(t, 2.0, c.DayRate())
	assert.Empty(t, c.Discounts())
}

func TestCity_Update_InvalidLeavesStateUntouched(t *testing.T) {
	c, err := NewCity("Lviv", 1, 0.5, []DiscountInput{{Duration: 10, DiscountRate: 10}})
	require.NoError(t, err)

	err = c.Update("Lviv", 1, 0.5, []DiscountInput{
		{Duration: 5, DiscountRate: 10},
		{Duration: 5, DiscountRate: 20},
	})
	require.ErrorIs(t, err, ErrDuplicateDiscountDuration)
	require.Len(t, c.Discounts(), 1)
	assert.Equal(t, 10.0, c.Discounts()[0].Duration())
}

func TestCity_DiscountsReturnsCopy(t *testing.T) {
	c := ReconstructCity(1, "city_x", "Kyiv", 1, 1, []Discount{ReconstructDiscount(5, 0.1)}, time.Time{}, time.Time{})
	d := c.Discounts()
	d[0] = ReconstructDiscount(99, 0.9)
	assert.Equal(t, 5.0, c.Discounts()[0].Duration())
}
