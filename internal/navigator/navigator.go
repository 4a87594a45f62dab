package navigator

import (
	"errors"
	"time"

	"github.com/XavierBriggs/Janus/internal/format"
)

// FutureDateNotice is shown when the user tries to move past today
const FutureDateNotice = "Future dates are not available for analysis yet."

// ErrFutureDate is returned when a step would move past today
var ErrFutureDate = errors.New("future dates are not available")

// Navigator holds the dashboard's current date.
// The date is always midnight in loc and never later than today.
// Navigator is not safe for concurrent use; the owning session serializes access.
type Navigator struct {
	current time.Time
	loc     *time.Location
	now     func() time.Time
}

// New creates a navigator positioned on today
func New(loc *time.Location, now func() time.Time) *Navigator {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	n := &Navigator{loc: loc, now: now}
	n.current = n.Today()
	return n
}

// Restore creates a navigator positioned on a saved YYYY-MM-DD date.
// Invalid or future dates fall back to today.
func Restore(date string, loc *time.Location, now func() time.Time) *Navigator {
	n := New(loc, now)
	if date == "" {
		return n
	}
	if t, err := format.ParseISODate(date, n.loc); err == nil && !t.After(n.Today()) {
		n.current = t
	}
	return n
}

// Today returns midnight of the current day in the navigator's location
func (n *Navigator) Today() time.Time {
	return n.midnight(n.now())
}

// Current returns the held date
func (n *Navigator) Current() time.Time {
	return n.current
}

// StepBackward moves one day back. It always succeeds.
func (n *Navigator) StepBackward() time.Time {
	n.current = n.midnight(n.current.AddDate(0, 0, -1))
	return n.current
}

// StepForward moves one day ahead unless that would pass today.
// On ErrFutureDate the held date is unchanged.
func (n *Navigator) StepForward() (time.Time, error) {
	next := n.midnight(n.current.AddDate(0, 0, 1))
	if next.After(n.Today()) {
		return n.current, ErrFutureDate
	}
	n.current = next
	return n.current, nil
}

// Display returns the long form shown in the header ("April 5, 2024")
func (n *Navigator) Display() string {
	return format.DisplayDate(n.current)
}

// APIDate returns the YYYY-MM-DD form used in fetch paths
func (n *Navigator) APIDate() string {
	return format.ISODate(n.current)
}

func (n *Navigator) midnight(t time.Time) time.Time {
	t = t.In(n.loc)
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, n.loc)
}
