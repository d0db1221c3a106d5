package city

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/telebill/telebill/internal/shared/biztime"
	"github.com/telebill/telebill/internal/shared/id"
)

// MinNameLength is the shortest accepted city name, in characters.
const MinNameLength = 3

// City is a calling destination together with its tariff.
type City struct {
	id        uint
	sid       string // city_xxx
	name      string
	dayRate   float64
	nightRate float64
	discounts []Discount
	createdAt time.Time
	updatedAt time.Time
}

// NewCity creates a city, converting discount percentages to fractions and
// enforcing the tier invariants.
func NewCity(name string, dayRate, nightRate float64, discounts []DiscountInput) (*City, error) {
	c := &City{}
	if err := c.apply(name, dayRate, nightRate, discounts); err != nil {
		return nil, err
	}

	sid, err := id.NewCityID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := biztime.NowUTC()
	c.sid = sid
	c.createdAt = now
	c.updatedAt = now
	return c, nil
}

// ReconstructCity reconstructs a City from persistence layer
func ReconstructCity(
	id uint,
	sid string,
	name string,
	dayRate, nightRate float64,
	discounts []Discount,
	createdAt, updatedAt time.Time,
) *City {
	return &City{
		id:        id,
		sid:       sid,
		name:      name,
		dayRate:   dayRate,
		nightRate: nightRate,
		discounts: discounts,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Update replaces name, rates and the whole discount set.
func (c *City) Update(name string, dayRate, nightRate float64, discounts []DiscountInput) error {
	if err := c.apply(name, dayRate, nightRate, discounts); err != nil {
		return err
	}
	c.updatedAt = biztime.NowUTC()
	return nil
}

func (c *City) apply(name string, dayRate, nightRate float64, inputs []DiscountInput) error {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) < MinNameLength {
		return fmt.Errorf("%w: must be at least %d characters", ErrInvalidName, MinNameLength)
	}
	if dayRate <= 0 {
		return fmt.Errorf("%w: day rate must be greater than 0", ErrInvalidRate)
	}
	if nightRate <= 0 {
		return fmt.Errorf("%w: night rate must be greater than 0", ErrInvalidRate)
	}

	discounts, err := buildDiscounts(inputs)
	if err != nil {
		return err
	}

	c.name = name
	c.dayRate = dayRate
	c.nightRate = nightRate
	c.discounts = discounts
	return nil
}

// Getters
func (c *City) ID() uint             { return c.id }
func (c *City) SID() string          { return c.sid }
func (c *City) Name() string         { return c.name }
func (c *City) DayRate() float64     { return c.dayRate }
func (c *City) NightRate() float64   { return c.nightRate }
func (c *City) CreatedAt() time.Time { return c.createdAt }
func (c *City) UpdatedAt() time.Time { return c.updatedAt }

// Discounts returns a copy of the tiers.
func (c *City) Discounts() []Discount {
	out := make([]Discount, len(c.discounts))
	copy(out, c.discounts)
	return out
}

// SetID sets the city ID (only for persistence layer use)
func (c *City) SetID(id uint) {
	c.id = id
}
