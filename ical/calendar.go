// The ical package parses, normalizes and serializes iCalendar files for the
// unified university-events feed.
//
// # References:
// - RFC5545: https://datatracker.ietf.org/doc/html/rfc5545
//
// # Notes:
// - Only VEVENT blocks are consumed; VTIMEZONE, VALARM and any other
//   sub-section of the sources are ignored. Properties outside the
//   recognized set are skipped, not rejected.
// - Recurrence rules (RRULE) are out of scope entirely.
// - Timed values are carried timezone-aware; Normalize converts them into
//   the deployment zone for output, while all-day events stay bare dates.
//
// # Example usage:
//
// Unfold and extract events from one source
//	lines := ical.UnfoldLines(string(raw))
//	events := ical.ExtractEvents(lines, "monash_ebs.ics", zone)
//
// Normalize, merge, serialize
//	for _, ev := range events {
//		ical.Normalize(ev, zone)
//	}
//	merged := ical.Dedup(events, zone)
//	cal := ical.NewCalendar(zone)
//	for _, ev := range merged {
//		cal.AddEvent(ev)
//	}
//	err := cal.MarshalToFile("unified_calendar.ics", ical.RenderOptions{}, zone)

package ical

import (
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	defaultProdID  = "-//Monash Unified ICS//EN"
	defaultCalName = "Unified Calendar"
)

// Calendar holds the final merged event set plus the envelope fields
// emitted in the VCALENDAR header.
type Calendar struct {
	id       string
	prodID   string
	name     string
	timezone string
	events   []*Event
}

// NewCalendar initializes the unified calendar envelope for the given
// deployment zone.
func NewCalendar(zone *time.Location) *Calendar {
	return &Calendar{
		id:       uuid.NewString(),
		prodID:   defaultProdID,
		name:     defaultCalName,
		timezone: zone.String(),
	}
}

// #region Getters

func (c *Calendar) GetId() string {
	return c.id
}

func (c *Calendar) GetProdID() string {
	return c.prodID
}

func (c *Calendar) GetName() string {
	return c.name
}

func (c *Calendar) GetTimezone() string {
	return c.timezone
}

func (c *Calendar) GetEvents() []*Event {
	return c.events
}

// #endregion

// #region Setters

func (c *Calendar) SetName(name string) {
	c.name = name
}

func (c *Calendar) SetProdID(prodID string) {
	c.prodID = prodID
}

// #endregion

func (c *Calendar) AddEvent(event *Event) {
	c.events = append(c.events, event)
}

// ToIcal serializes the calendar into a single iCalendar document: the
// fixed PUBLISH envelope followed by one VEVENT block per event, in the
// order they were added.
func (c *Calendar) ToIcal(opts RenderOptions, zone *time.Location) string {
	now := time.Now()

	var sb strings.Builder
	sb.WriteString("BEGIN:VCALENDAR\n")
	sb.WriteString("PRODID:" + c.prodID + "\n")
	sb.WriteString("VERSION:2.0\n")
	sb.WriteString("CALSCALE:GREGORIAN\n")
	sb.WriteString("METHOD:PUBLISH\n")
	sb.WriteString("X-WR-CALNAME:" + c.name + "\n")
	sb.WriteString("X-WR-TIMEZONE:" + c.timezone + "\n")

	for _, event := range c.events {
		sb.WriteString(RenderEvent(event, opts, zone, now))
		sb.WriteString("\n")
	}

	sb.WriteString("END:VCALENDAR\n")
	return sb.String()
}

// MarshalToFile writes the serialized calendar to path.
func (c *Calendar) MarshalToFile(path string, opts RenderOptions, zone *time.Location) *CustomError {
	file, err := os.Create(path)
	if err != nil {
		return NewCustomError("can't create file", map[string]any{
			"path": path,
			"err":  err,
		})
	}
	defer file.Close()

	if _, err := file.WriteString(c.ToIcal(opts, zone)); err != nil {
		return NewCustomError("can't write calendar to file", map[string]any{
			"path": path,
			"err":  err,
		})
	}
	return nil
}
