package timezone

import (
	"errors"
	"time"
	_ "time/tzdata"

	"github.com/rs/zerolog/log"

	"venue/shared/constant"
)

var (
	appLocation = time.UTC

	ErrInvalidDateTime = errors.New("invalid date-time, expected YYYY-MM-DD HH:MM:SS")

	inputLayouts = []string{
		constant.DateTimeFormat,
		"2006-01-02T15:04",
		"2006-01-02T15:04:05",
	}
)

// Init sets the application timezone. Unknown names fall back to UTC.
func Init(name string) {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")

		appLocation = time.UTC

		return
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC")

		appLocation = time.UTC

		return
	}

	appLocation = loc

	log.Info().Str("timezone", loc.String()).Msg("Application timezone initialized")
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(appLocation)
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	return appLocation
}

// ParseDateTime reads one of the accepted input layouts. Values without an
// explicit offset are interpreted in the application timezone.
func ParseDateTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.In(appLocation), nil
	}

	for _, layout := range inputLayouts {
		if t, err := time.ParseInLocation(layout, value, appLocation); err == nil {
			return t, nil
		}
	}

	return time.Time{}, ErrInvalidDateTime
}

// FormatDateTime renders the wall clock of t, nil stays nil. Columns are
// TIMESTAMP without zone, so the driver hands back the stored wall clock
// labelled UTC and no conversion is applied.
func FormatDateTime(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}

	formatted := t.Format(constant.DateTimeFormat)

	return &formatted
}
