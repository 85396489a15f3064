package ical_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unical/ical"
)

func TestExtractEvents(t *testing.T) {
	lines := []string{
		"BEGIN:VCALENDAR",
		"PRODID:-//Dept//EN",
		"BEGIN:VEVENT",
		"UID:abc@dept",
		"SUMMARY:  Econometrics Seminar  ",
		"DTSTART:20250601T100000Z",
		"DTEND:20250601T110000Z",
		"LOCATION:Room 101",
		"X-CUSTOM-THING:ignored",
		"STATUS:CONFIRMED",
		"END:VEVENT",
		"END:VCALENDAR",
	}

	events := ical.ExtractEvents(lines, "dept.ics", melbourne(t))
	require.Len(t, events, 1)

	ev := events[0]
	assert.Equal(t, "abc@dept", ev.UID)
	assert.Equal(t, "Econometrics Seminar", ev.Summary)
	assert.Equal(t, "Room 101", ev.Location)
	assert.Equal(t, "CONFIRMED", ev.Status)
	assert.Equal(t, "dept.ics", ev.Source)
	assert.False(t, ev.AllDay)
	require.True(t, ev.Start.Valid())
	require.True(t, ev.End.Valid())
}

func TestExtractEventsAllDayFlag(t *testing.T) {
	lines := []string{
		"BEGIN:VEVENT",
		"SUMMARY:Open Day",
		"DTSTART;VALUE=DATE:20250101",
		"END:VEVENT",
	}
	events := ical.ExtractEvents(lines, "x.ics", melbourne(t))
	require.Len(t, events, 1)
	assert.True(t, events[0].AllDay)
}

func TestExtractEventsMarkersCaseInsensitive(t *testing.T) {
	lines := []string{
		"  begin:vevent  ",
		"SUMMARY:Lowercase markers",
		"end:VEVENT",
	}
	events := ical.ExtractEvents(lines, "x.ics", melbourne(t))
	require.Len(t, events, 1)
	assert.Equal(t, "Lowercase markers", events[0].Summary)
}

func TestExtractEventsUnterminatedBlockDropped(t *testing.T) {
	lines := []string{
		"BEGIN:VEVENT",
		"SUMMARY:Complete",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"SUMMARY:Truncated by the scraper",
	}
	events := ical.ExtractEvents(lines, "x.ics", melbourne(t))
	require.Len(t, events, 1)
	assert.Equal(t, "Complete", events[0].Summary)
}

func TestExtractEventsBadTimestampDropsField(t *testing.T) {
	lines := []string{
		"BEGIN:VEVENT",
		"SUMMARY:Odd dates",
		"DTSTART:garbage",
		"DTEND:20250601T110000Z",
		"END:VEVENT",
	}
	events := ical.ExtractEvents(lines, "x.ics", melbourne(t))
	require.Len(t, events, 1)
	assert.False(t, events[0].Start.Valid())
	assert.True(t, events[0].End.Valid())
}

func TestExtractEventsNoColonLinesSkipped(t *testing.T) {
	lines := []string{
		"BEGIN:VEVENT",
		"this line has no colon",
		"SUMMARY:Still parsed",
		"END:VEVENT",
	}
	events := ical.ExtractEvents(lines, "x.ics", melbourne(t))
	require.Len(t, events, 1)
	assert.Equal(t, "Still parsed", events[0].Summary)
}
