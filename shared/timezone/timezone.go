package timezone

import (
	"errors"
	"shareit/config"
	"time"

	"github.com/rs/zerolog/log"
)

// LocalDateTimeLayout is accepted on input in addition to RFC3339 and is interpreted in the application timezone.
const LocalDateTimeLayout = "2006-01-02T15:04:05"

var ErrInvalidDateTime = errors.New("invalid date time, expected RFC3339 or " + LocalDateTimeLayout)

var (
	appLocation *time.Location
)

func init() {
	cfg := config.Get()

	if cfg.App.Timezone == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		cfg.App.Timezone = "UTC"
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load timezone, falling back to UTC")
		appLocation = time.UTC
		return
	}

	appLocation = loc
	log.Debug().
		Str("timezone", cfg.App.Timezone).
		Msg("Application timezone initialized")
}

// Clock is the single source of "now" for request handling.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock reads the wall clock in the application timezone.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return Now()
}

// NewSystemClock returns the wall clock as a Clock.
func NewSystemClock() Clock {
	return SystemClock{}
}

// Now returns the current time in the application timezone
func Now() time.Time {
	if appLocation == nil {
		return time.Now().UTC()
	}
	return time.Now().In(appLocation)
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	if appLocation == nil {
		return t.UTC()
	}
	return t.In(appLocation)
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		return time.UTC
	}
	return appLocation
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation())
}

// ParseDateTime accepts RFC3339 or a zone-less local date time.
func ParseDateTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return ToAppTime(t), nil
	}

	t, err := Parse(LocalDateTimeLayout, value)
	if err != nil {
		return time.Time{}, ErrInvalidDateTime
	}

	return t, nil
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
