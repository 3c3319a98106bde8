// Package timezone resolves a user's local timezone so the reminder core can
// reason about local calendar days without carrying timezone policy itself.
package timezone

import (
	"log/slog"
	"time"
)

//go:generate mockgen -source=resolver.go -destination=mock.go -package=timezone

type Resolver interface {
	// Location resolves a timezone name to a location, falling back to the
	// configured default when the name is empty or unknown.
	Location(name string) *time.Location
}

type fixedResolver struct {
	fallback *time.Location
}

// NewResolver builds a resolver with the given fallback zone name.
func NewResolver(fallbackName string) (Resolver, error) {
	loc, err := time.LoadLocation(fallbackName)
	if err != nil {
		return nil, err
	}
	return &fixedResolver{fallback: loc}, nil
}

func (r *fixedResolver) Location(name string) *time.Location {
	if name == "" {
		return r.fallback
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		slog.Warn("unknown timezone, using fallback",
			slog.String("timezone", name),
			slog.String("fallback", r.fallback.String()),
		)
		return r.fallback
	}
	return loc
}

// LocalDate truncates an instant to midnight of its calendar day in loc.
func LocalDate(t time.Time, loc *time.Location) time.Time {
	year, month, day := t.In(loc).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}
