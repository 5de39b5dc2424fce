// Package calendar formats the current moment in the three calendars the
// group cares about: Solar Hijri (شمسی), Umm al-Qura lunar Hijri (قمری) and
// Gregorian, plus the wall-clock time in the configured timezone.
package calendar

import (
	"fmt"
	"time"

	"github.com/hablullah/go-hijri"
	ptime "github.com/yaa110/go-persian-calendar"
)

// Summary holds the formatted date strings, Latin digits, yyyy/mm/dd.
type Summary struct {
	Persian   string
	Hijri     string
	Gregorian string
	Time      string // HH:MM:SS
	Timezone  string
}

// Service converts instants into calendar summaries. Pure and
// always-succeeding: the lunar conversion falls back to an empty field only
// if the instant is outside the Umm al-Qura tables, which no realistic
// clock will hit.
type Service struct {
	loc *time.Location
}

// NewService creates the calendar service for a timezone name (validated by
// the config layer).
func NewService(timezone string) (*Service, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", timezone, err)
	}
	return &Service{loc: loc}, nil
}

// At formats the given instant in the service timezone.
func (s *Service) At(t time.Time) Summary {
	local := t.In(s.loc)

	persian := ptime.New(local)

	summary := Summary{
		Persian:   fmt.Sprintf("%04d/%02d/%02d", persian.Year(), int(persian.Month()), persian.Day()),
		Gregorian: fmt.Sprintf("%04d/%02d/%02d", local.Year(), int(local.Month()), local.Day()),
		Time:      local.Format("15:04:05"),
		Timezone:  s.loc.String(),
	}

	if lunar, err := hijri.CreateUmmAlQuraDate(local); err == nil {
		summary.Hijri = fmt.Sprintf("%04d/%02d/%02d", lunar.Year, lunar.Month, lunar.Day)
	}

	return summary
}

// Now formats the current instant.
func (s *Service) Now() Summary {
	return s.At(time.Now())
}
