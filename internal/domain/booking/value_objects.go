package booking

import (
	"errors"
	"time"
)

// WallClockLayout is the fixed display format booking times arrive in ("11:00 AM").
const WallClockLayout = "3:04 PM"

var (
	ErrInvalidWallClock = errors.New("invalid wall clock time")
	ErrInvalidWindow    = errors.New("end time must be after start time")
)

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Equals(other Money) bool {
	return m.cents == other.cents
}

type LineItem struct {
	Name     string
	Quantity int32
	Price    Money
}

func (li LineItem) Total() Money {
	return Money{cents: li.Price.cents * int64(li.Quantity)}
}

// EventWindow is the absolute time span of a session, derived from the stored
// civil date plus wall-clock strings interpreted in the studio's timezone.
// The conversion goes through time.Date in the given location, so it tracks
// daylight-saving transitions instead of a fixed UTC offset.
type EventWindow struct {
	start time.Time
	end   time.Time
}

func NewEventWindow(date time.Time, startTime, endTime string, loc *time.Location) (EventWindow, error) {
	start, err := atWallClock(date, startTime, loc)
	if err != nil {
		return EventWindow{}, err
	}
	end, err := atWallClock(date, endTime, loc)
	if err != nil {
		return EventWindow{}, err
	}
	if !end.After(start) {
		return EventWindow{}, ErrInvalidWindow
	}
	return EventWindow{start: start, end: end}, nil
}

func (w EventWindow) Start() time.Time {
	return w.start
}

func (w EventWindow) End() time.Time {
	return w.end
}

func (w EventWindow) Duration() time.Duration {
	return w.end.Sub(w.start)
}

func atWallClock(date time.Time, wallClock string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(WallClockLayout, wallClock)
	if err != nil {
		return time.Time{}, ErrInvalidWallClock
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, loc), nil
}

// DateOnly strips any time-of-day component; start dates carry date-only semantics.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
