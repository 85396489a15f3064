package ical

import (
	"strings"
	"time"
)

// DateTime is either absent, a bare calendar date, or a timezone-aware
// instant. It is never a naive local time: values parsed without an explicit
// zone get the configured default zone attached before they leave the
// resolver.
type DateTime struct {
	t        time.Time
	dateOnly bool
	valid    bool
}

// NewDate makes a date-only value from the year/month/day of t.
func NewDate(t time.Time) DateTime {
	return DateTime{
		t:        time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC),
		dateOnly: true,
		valid:    true,
	}
}

// NewInstant makes a timezone-aware instant value.
func NewInstant(t time.Time) DateTime {
	return DateTime{t: t, valid: true}
}

// Valid reports whether the value is present at all.
func (d DateTime) Valid() bool {
	return d.valid
}

// DateOnly reports whether the value is a bare calendar date.
func (d DateTime) DateOnly() bool {
	return d.dateOnly
}

// Time returns the underlying time. For date-only values the clock part is
// meaningless and only the calendar date should be used.
func (d DateTime) Time() time.Time {
	return d.t
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// ResolveDateTime turns the raw value of a timestamp-bearing property into a
// DateTime, trying the most explicit signals first:
//
//  1. VALUE=DATE parameter, or a value of exactly 8 digits: bare date
//  2. trailing 'Z': UTC instant
//  3. wall-clock time in the TZID zone if given, else in defaultZone
//
// Anything that matches none of these resolves to the absent value; the
// caller drops the field rather than failing the event.
func ResolveDateTime(prop *Property, defaultZone *time.Location) DateTime {
	val := strings.TrimSpace(prop.Value)

	isDate := strings.EqualFold(prop.Params["VALUE"], "DATE") ||
		(len(val) == 8 && allDigits(val))
	if isDate {
		t, err := time.Parse("20060102", val)
		if err != nil {
			return DateTime{}
		}
		return NewDate(t)
	}

	if strings.HasSuffix(val, "Z") {
		if t, err := time.Parse("20060102T150405Z", val); err == nil {
			return NewInstant(t.UTC())
		}
	}

	loc := defaultZone
	if tzid, ok := prop.Params["TZID"]; ok {
		var err error
		if loc, err = time.LoadLocation(tzid); err != nil {
			// an unknown zone name makes the instant meaningless
			return DateTime{}
		}
	}
	for _, layout := range []string{"20060102T150405", "20060102T1504"} {
		if t, err := time.ParseInLocation(layout, val, loc); err == nil {
			return NewInstant(t)
		}
	}

	return DateTime{}
}
