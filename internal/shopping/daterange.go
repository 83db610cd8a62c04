package shopping

import (
	"errors"
	"fmt"
	"time"

	"github.com/dukerupert/mealcart/internal/model"
)

var ErrInvalidRange = errors.New("end date is before start date")

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ParseDateRange parses two YYYY-MM-DD dates.
func ParseDateRange(start, end string) (DateRange, error) {
	s, err := time.Parse(model.DateLayout, start)
	if err != nil {
		return DateRange{}, fmt.Errorf("parse start date: %w", err)
	}
	e, err := time.Parse(model.DateLayout, end)
	if err != nil {
		return DateRange{}, fmt.Errorf("parse end date: %w", err)
	}
	if e.Before(s) {
		return DateRange{}, ErrInvalidRange
	}
	return DateRange{Start: s, End: e}, nil
}

// Contains reports whether the YYYY-MM-DD date falls inside the range.
// Unparseable dates are outside every range.
func (r DateRange) Contains(date string) bool {
	d, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return false
	}
	return !d.Before(r.Start) && !d.After(r.End)
}

func (r DateRange) StartString() string { return r.Start.Format(model.DateLayout) }
func (r DateRange) EndString() string   { return r.End.Format(model.DateLayout) }
