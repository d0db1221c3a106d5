package call

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/telebill/telebill/internal/shared/biztime"
)

// maxTimestampMillis bounds numeric dates the way ECMAScript Date does.
const maxTimestampMillis = 8.64e15

// Calls are stored as DATETIME, which holds years 1 through 9999.
const (
	minYear = 1
	maxYear = 9999
)

// zonelessLayouts are read as business-timezone wall time.
var zonelessLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate reads a call date from its raw JSON form. A number is Unix
// milliseconds; a string is ISO-8601. ok is false when the value is absent or null.
func ParseDate(raw json.RawMessage) (t time.Time, ok bool, err error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return time.Time{}, false, nil
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return time.Time{}, false, fmt.Errorf("%w: %v", ErrInvalidDate, err)
		}
		t, err := ParseDateString(s)
		if err != nil {
			return time.Time{}, false, err
		}
		return t, true, nil
	}

	var ms float64
	if err := json.Unmarshal(raw, &ms); err != nil {
		return time.Time{}, false, fmt.Errorf("%w: expected a timestamp or ISO-8601 string", ErrInvalidDate)
	}
	if math.IsNaN(ms) || math.Abs(ms) > maxTimestampMillis {
		return time.Time{}, false, fmt.Errorf("%w: timestamp out of range", ErrInvalidDate)
	}
	t, err = checkYear(time.UnixMilli(int64(ms)).UTC())
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}

func checkYear(t time.Time) (time.Time, error) {
	if y := t.Year(); y < minYear || y > maxYear {
		return time.Time{}, fmt.Errorf("%w: year %d out of range", ErrInvalidDate, y)
	}
	return t, nil
}

// ParseDateString parses an ISO-8601 date and returns it in UTC.
func ParseDateString(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return checkYear(t.UTC())
		}
	}
	for _, layout := range zonelessLayouts {
		if t, err := biztime.ParseInBiz(layout, s); err == nil {
			return checkYear(t)
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}
