package report

import (
	"fmt"
	"time"

	"happenly/internal/domain"
)

// Status colors matching the web calendar palette.
const (
	ColorUpcoming  = "#3788d8"
	ColorOngoing   = "#28a745"
	ColorCompleted = "#6c757d"
)

// Every event renders as a fixed two-hour block.
const BlockDuration = 2 * time.Hour

// displayTime is used when an event has no time of day set.
const displayTime = "09:00:00"

var statusColors = map[string]string{
	domain.EventStatusUpcoming:  ColorUpcoming,
	domain.EventStatusOngoing:   ColorOngoing,
	domain.EventStatusCompleted: ColorCompleted,
}

// StatusColor returns the calendar color for an event status. Unknown
// statuses get the upcoming color, the same default the web UI used.
func StatusColor(status string) string {
	if c, ok := statusColors[status]; ok {
		return c
	}
	return ColorUpcoming
}

// Project converts an event into a renderable time block. The block starts
// at the event's date and time (09:00:00 when no time is set) and ends two
// hours later. Returns domain.ErrInvalidDate when the date (or time) does
// not parse.
func Project(e *domain.Event) (domain.TimeBlock, error) {
	t := displayTime
	if e.Time != nil && *e.Time != "" {
		t = *e.Time
	}
	start, err := time.Parse("2006-01-02T15:04:05", e.Date+"T"+t)
	if err != nil {
		return domain.TimeBlock{}, fmt.Errorf("%w: %q %q", domain.ErrInvalidDate, e.Date, t)
	}
	return domain.TimeBlock{
		Title: e.Title,
		Start: start,
		End:   start.Add(BlockDuration),
		Color: StatusColor(e.Status),
	}, nil
}
