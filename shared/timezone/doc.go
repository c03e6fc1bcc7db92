// Package timezone provides the application clock and date time parsing.
//
// Usage:
//
//	now := timezone.Now()                                 // current time in app timezone
//	start, err := timezone.ParseDateTime("2030-05-01T10:00:00")
//	clock := timezone.NewSystemClock()                    // inject into services
//
// The location is read from APP_TIMEZONE when the package is imported and falls back to UTC.
// Services take a Clock and read it once per operation; every predicate in that
// operation is evaluated against the same instant.
package timezone
