package calendar

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"
)

const freeBusyOpenSentinel = "Calendar is completely open for the next 48 hours!"

// FreeBusyProvider reformats the window's busy intervals into local-readable
// OCCUPIED lines instead of exposing event details.
type FreeBusyProvider struct {
	svc        *calendar.Service
	calendarID string
	maxLines   int
}

func (p *FreeBusyProvider) FindOpenSlots(ctx context.Context, from, to time.Time) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := p.svc.Freebusy.Query(&calendar.FreeBusyRequest{
		TimeMin: from.Format(time.RFC3339),
		TimeMax: to.Format(time.RFC3339),
		Items:   []*calendar.FreeBusyRequestItem{{Id: p.calendarID}},
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("freebusy query: %w", err)
	}

	cal, ok := result.Calendars[p.calendarID]
	if !ok {
		return nil, fmt.Errorf("calendar %q missing from freebusy response", p.calendarID)
	}

	return formatBusyIntervals(cal.Busy, p.maxLines), nil
}

func formatBusyIntervals(busy []*calendar.TimePeriod, maxLines int) []string {
	if len(busy) == 0 {
		return []string{freeBusyOpenSentinel}
	}

	if maxLines > 0 && len(busy) > maxLines {
		busy = busy[:maxLines]
	}

	lines := make([]string, 0, len(busy))
	for _, slot := range busy {
		lines = append(lines, formatBusyLine(slot.Start, slot.End))
	}
	return lines
}

func formatBusyLine(start, end string) string {
	s, sErr := time.Parse(time.RFC3339, start)
	e, eErr := time.Parse(time.RFC3339, end)
	if sErr != nil || eErr != nil {
		return fmt.Sprintf("OCCUPIED: %s - %s", start, end)
	}
	return fmt.Sprintf("OCCUPIED: %s - %s UTC",
		s.UTC().Format("Monday, 03:04 PM"),
		e.UTC().Format("03:04 PM"))
}
