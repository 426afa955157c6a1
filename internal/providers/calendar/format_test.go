package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"google.golang.org/api/calendar/v3"
)

func TestFormatEvents(t *testing.T) {
	tests := []struct {
		name     string
		events   []*calendar.Event
		maxLines int
		want     []string
	}{
		{
			name:     "no events yields open sentinel",
			events:   nil,
			maxLines: 3,
			want:     []string{eventsOpenSentinel},
		},
		{
			name: "timed event",
			events: []*calendar.Event{
				{
					Summary: "Deposition prep",
					Start:   &calendar.EventDateTime{DateTime: "2026-08-28T14:00:00Z"},
					End:     &calendar.EventDateTime{DateTime: "2026-08-28T15:00:00Z"},
				},
			},
			maxLines: 3,
			want:     []string{"Busy from Deposition prep: 2026-08-28T14:00:00Z to 2026-08-28T15:00:00Z"},
		},
		{
			name: "all-day event falls back to date",
			events: []*calendar.Event{
				{
					Summary: "Court holiday",
					Start:   &calendar.EventDateTime{Date: "2026-08-29"},
					End:     &calendar.EventDateTime{Date: "2026-08-30"},
				},
			},
			maxLines: 3,
			want:     []string{"Busy from Court holiday: 2026-08-29 to 2026-08-30"},
		},
		{
			name: "untitled event",
			events: []*calendar.Event{
				{
					Start: &calendar.EventDateTime{DateTime: "2026-08-28T14:00:00Z"},
					End:   &calendar.EventDateTime{DateTime: "2026-08-28T15:00:00Z"},
				},
			},
			maxLines: 3,
			want:     []string{"Busy from No Title: 2026-08-28T14:00:00Z to 2026-08-28T15:00:00Z"},
		},
		{
			name: "output capped at maxLines",
			events: []*calendar.Event{
				{Summary: "a", Start: &calendar.EventDateTime{Date: "2026-08-28"}, End: &calendar.EventDateTime{Date: "2026-08-28"}},
				{Summary: "b", Start: &calendar.EventDateTime{Date: "2026-08-28"}, End: &calendar.EventDateTime{Date: "2026-08-28"}},
				{Summary: "c", Start: &calendar.EventDateTime{Date: "2026-08-28"}, End: &calendar.EventDateTime{Date: "2026-08-28"}},
			},
			maxLines: 2,
			want: []string{
				"Busy from a: 2026-08-28 to 2026-08-28",
				"Busy from b: 2026-08-28 to 2026-08-28",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatEvents(tt.events, tt.maxLines))
		})
	}
}

func TestFormatBusyIntervals(t *testing.T) {
	tests := []struct {
		name     string
		busy     []*calendar.TimePeriod
		maxLines int
		want     []string
	}{
		{
			name:     "no busy intervals yields open sentinel",
			busy:     nil,
			maxLines: 3,
			want:     []string{freeBusyOpenSentinel},
		},
		{
			name: "interval reformatted to local-readable line",
			busy: []*calendar.TimePeriod{
				// 2026-08-28 is a Friday.
				{Start: "2026-08-28T13:30:00Z", End: "2026-08-28T14:15:00Z"},
			},
			maxLines: 3,
			want:     []string{"OCCUPIED: Friday, 01:30 PM - 02:15 PM UTC"},
		},
		{
			name: "truncated to maxLines",
			busy: []*calendar.TimePeriod{
				{Start: "2026-08-28T09:00:00Z", End: "2026-08-28T10:00:00Z"},
				{Start: "2026-08-28T11:00:00Z", End: "2026-08-28T12:00:00Z"},
				{Start: "2026-08-28T13:00:00Z", End: "2026-08-28T14:00:00Z"},
				{Start: "2026-08-28T15:00:00Z", End: "2026-08-28T16:00:00Z"},
			},
			maxLines: 3,
			want: []string{
				"OCCUPIED: Friday, 09:00 AM - 10:00 AM UTC",
				"OCCUPIED: Friday, 11:00 AM - 12:00 PM UTC",
				"OCCUPIED: Friday, 01:00 PM - 02:00 PM UTC",
			},
		},
		{
			name: "unparseable timestamps pass through raw",
			busy: []*calendar.TimePeriod{
				{Start: "not-a-time", End: "also-not"},
			},
			maxLines: 3,
			want:     []string{"OCCUPIED: not-a-time - also-not"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatBusyIntervals(tt.busy, tt.maxLines))
		})
	}
}
