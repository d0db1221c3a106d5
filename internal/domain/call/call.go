package call

import (
	"fmt"
	"time"

	"github.com/telebill/telebill/internal/shared/biztime"
	"github.com/telebill/telebill/internal/shared/id"
)

// Call is a single rated call. Cost and time of day are fixed when the call
// is created and never recomputed.
type Call struct {
	id           uint
	sid          string // call_xxx
	subscriberID uint
	cityID       uint
	date         time.Time
	duration     int // seconds
	timeOfDay    TimeOfDay
	cost         float64
	createdAt    time.Time
	updatedAt    time.Time
}

// NewCall creates a new call record
func NewCall(subscriberID, cityID uint, date time.Time, durationSeconds int, timeOfDay TimeOfDay, cost float64) (*Call, error) {
	if subscriberID == 0 {
		return nil, fmt.Errorf("%w: subscriber is required", ErrInvalidCall)
	}
	if cityID == 0 {
		return nil, fmt.Errorf("%w: city is required", ErrInvalidCall)
	}
	if durationSeconds <= 0 {
		return nil, fmt.Errorf("%w: duration must be greater than 0", ErrInvalidCall)
	}
	if !timeOfDay.IsValid() {
		return nil, fmt.Errorf("%w: unknown time of day %q", ErrInvalidCall, timeOfDay)
	}

	sid, err := id.NewCallID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := biztime.NowUTC()
	return &Call{
		sid:          sid,
		subscriberID: subscriberID,
		cityID:       cityID,
		date:         date.UTC(),
		duration:     durationSeconds,
		timeOfDay:    timeOfDay,
		cost:         cost,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructCall reconstructs a Call from persistence layer
func ReconstructCall(
	id uint,
	sid string,
	subscriberID, cityID uint,
	date time.Time,
	durationSeconds int,
	timeOfDay TimeOfDay,
	cost float64,
	createdAt, updatedAt time.Time,
) *Call {
	return &Call{
		id:           id,
		sid:          sid,
		subscriberID: subscriberID,
		cityID:       cityID,
		date:         date,
		duration:     durationSeconds,
		timeOfDay:    timeOfDay,
		cost:         cost,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Getters
func (c *Call) ID() uint             { return c.id }
func (c *Call) SID() string          { return c.sid }
func (c *Call) SubscriberID() uint   { return c.subscriberID }
func (c *Call) CityID() uint         { return c.cityID }
func (c *Call) Date() time.Time      { return c.date }
func (c *Call) Duration() int        { return c.duration }
func (c *Call) TimeOfDay() TimeOfDay { return c.timeOfDay }
func (c *Call) Cost() float64        { return c.cost }
func (c *Call) CreatedAt() time.Time { return c.createdAt }
func (c *Call) UpdatedAt() time.Time { return c.updatedAt }

// SetID sets the call ID (only for persistence layer use)
func (c *Call) SetID(id uint) {
	c.id = id
}
