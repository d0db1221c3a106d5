// Package biztime holds the business timezone. Storage and transport use UTC;
// the business timezone only decides wall-clock questions such as whether a
// call was placed during the day or at night.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

// DefaultTimezone is the default business timezone.
const DefaultTimezone = "Europe/Kyiv"

var (
	bizLocation *time.Location
	mu          sync.RWMutex
)

// Init sets the business timezone. An empty tz selects DefaultTimezone.
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("failed to load timezone %q: %w", tz, err)
	}
	mu.Lock()
	bizLocation = loc
	mu.Unlock()
	return nil
}

// MustInit initializes the business timezone and panics on error.
func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(err)
	}
}

// SetLocation replaces the business timezone. Intended for tests.
func SetLocation(loc *time.Location) {
	mu.Lock()
	bizLocation = loc
	mu.Unlock()
}

// Location returns the business timezone, initializing the default on first use.
func Location() *time.Location {
	mu.RLock()
	loc := bizLocation
	mu.RUnlock()
	if loc != nil {
		return loc
	}
	if err := Init(""); err != nil {
		// tzdata missing on the host
		return time.UTC
	}
	return Location()
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// HourInBiz returns the wall-clock hour of t in the business timezone.
func HourInBiz(t time.Time) int {
	return t.In(Location()).Hour()
}

// ParseInBiz parses a zone-less layout as business timezone wall time and
// returns the UTC instant.
func ParseInBiz(layout, value string) (time.Time, error) {
	t, err := time.ParseInLocation(layout, value, Location())
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
