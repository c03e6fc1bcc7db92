package timezone_test

import (
	"shareit/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNowAndLocation(t *testing.T) {
	assert.False(t, timezone.Now().IsZero())
	assert.NotNil(t, timezone.GetLocation())
	assert.Equal(t, timezone.GetLocation(), timezone.Now().Location())
}

func TestToAppTime(t *testing.T) {
	utcTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	appTime := timezone.ToAppTime(utcTime)

	assert.True(t, appTime.Equal(utcTime))
	assert.Equal(t, timezone.GetLocation(), appTime.Location())
}

func TestFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.NotEmpty(t, timezone.Format(testTime, "2006-01-02 15:04:05 MST"))
}

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "rfc3339",
			value: "2030-05-01T10:00:00Z",
			want:  time.Date(2030, 5, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:  "local date time",
			value: "2030-05-01T10:00:00",
			want:  time.Date(2030, 5, 1, 10, 0, 0, 0, timezone.GetLocation()),
		},
		{
			name:    "garbage",
			value:   "tomorrow",
			wantErr: true,
		},
		{
			name:    "date only",
			value:   "2030-05-01",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timezone.ParseDateTime(tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, timezone.ErrInvalidDateTime)
				return
			}

			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestClockFunc(t *testing.T) {
	fixed := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := timezone.ClockFunc(func() time.Time { return fixed })

	assert.Equal(t, fixed, clock.Now())
	assert.False(t, timezone.NewSystemClock().Now().IsZero())
}
