package calendar

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"
)

const eventsOpenSentinel = "No upcoming events found. The next 48 hours are likely open."

// EventsProvider lists the calendar events overlapping the window, one line
// per event with summary and start/end timestamps.
type EventsProvider struct {
	svc        *calendar.Service
	calendarID string
	maxLines   int
}

func (p *EventsProvider) FindOpenSlots(ctx context.Context, from, to time.Time) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := p.svc.Events.List(p.calendarID).
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	return formatEvents(result.Items, p.maxLines), nil
}

func formatEvents(events []*calendar.Event, maxLines int) []string {
	if len(events) == 0 {
		return []string{eventsOpenSentinel}
	}

	// Cap the lines so the spliced bulleted list stays readable.
	if maxLines > 0 && len(events) > maxLines {
		events = events[:maxLines]
	}

	lines := make([]string, 0, len(events))
	for _, ev := range events {
		summary := ev.Summary
		if summary == "" {
			summary = "No Title"
		}
		lines = append(lines, fmt.Sprintf("Busy from %s: %s to %s",
			summary, eventTime(ev.Start), eventTime(ev.End)))
	}
	return lines
}

// eventTime prefers the timed value, falling back to the all-day date.
func eventTime(t *calendar.EventDateTime) string {
	if t == nil {
		return ""
	}
	if t.DateTime != "" {
		return t.DateTime
	}
	return t.Date
}
