package call

import "fmt"

// TimeOfDay is the tariff bucket a call was placed in.
type TimeOfDay string

const (
	TimeOfDayDay   TimeOfDay = "day"
	TimeOfDayNight TimeOfDay = "night"
)

func (t TimeOfDay) String() string { return string(t) }

func (t TimeOfDay) IsValid() bool {
	return t == TimeOfDayDay || t == TimeOfDayNight
}

// ParseTimeOfDay converts a stored value back to TimeOfDay.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t := TimeOfDay(s)
	if !t.IsValid() {
		return "", fmt.Errorf("unknown time of day %q", s)
	}
	return t, nil
}
