package call

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telebill/telebill/internal/shared/biztime"
)

func kyiv(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Kyiv")
	require.NoError(t, err)
	biztime.SetLocation(loc)
	t.Cleanup(func() { biztime.SetLocation(nil) })
	return loc
}

func TestParseDate_Absent(t *testing.T) {
	for _, raw := range []string{"", "null", "  null "} {
		_, ok, err := ParseDate(json.RawMessage(raw))
		require.NoError(t, err)
		assert.False(t, ok, "raw=%q", raw)
	}
}

func TestParseDate_UnixMillis(t *testing.T) {
	got, ok, err := ParseDate(json.RawMessage("1700000000123"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, time.UnixMilli(1700000000123).UTC(), got)
	assert.Equal(t, time.UTC, got.Location())
}

func TestParseDate_Strings(t *testing.T) {
	loc := kyiv(t)

	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"rfc3339 utc", `"2024-03-01T10:00:00Z"`, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		{"rfc3339 offset", `"2024-03-01T10:00:00+02:00"`, time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)},
		{"rfc3339 nano", `"2024-03-01T10:00:00.5Z"`, time.Date(2024, 3, 1, 10, 0, 0, 5e8, time.UTC)},
		{"zoneless seconds", `"2024-03-01T10:00:00"`, time.Date(2024, 3, 1, 10, 0, 0, 0, loc).UTC()},
		{"zoneless minutes", `"2024-03-01T21:30"`, time.Date(2024, 3, 1, 21, 30, 0, 0, loc).UTC()},
		{"date only", `"2024-03-01"`, time.Date(2024, 3, 1, 0, 0, 0, 0, loc).UTC()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := ParseDate(json.RawMessage(tt.raw))
			require.NoError(t, err)
			require.True(t, ok)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestParseDate_StorableRangeBounds(t *testing.T) {
	first, ok, err := ParseDate(json.RawMessage(`-62135596800000`))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC), first)

	last, ok, err := ParseDate(json.RawMessage(`253402300799999`))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 9999, last.Year())
}

func TestParseDate_Invalid(t *testing.T) {
	for _, raw := range []string{
		`"yesterday"`, `"2024-13-01"`, `true`, `{}`, `[1]`, `""`,
		`1e20`, `-1e20`, `9.3e18`, `1e16`, `8.64e15`, `-62135596800001`,
		`"0000-06-01T00:00:00Z"`,
	} {
		_, _, err := ParseDate(json.RawMessage(raw))
		assert.ErrorIs(t, err, ErrInvalidDate, "raw=%s", raw)
	}
}
