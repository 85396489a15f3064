package ical

import (
	"fmt"
	"time"
)

const (
	dateLayout     = "20060102"
	dateTimeLayout = "20060102T150405"
)

// Normalize computes the canonical output form of an event's temporal
// fields. All-day events keep their bare dates tagged VALUE=DATE; timed
// events are converted into the given zone and tagged with its TZID. A field
// that should have been timed but resolved to a bare date reclassifies the
// whole event as all-day, since mixed sources sometimes emit DTEND as a date.
//
// The original Start/End values are left untouched so the deduplicator can
// still compare source timestamps. Running Normalize again on an already
// normalized event recomputes the same output.
func Normalize(ev *Event, zone *time.Location) {
	if ev.AllDay {
		if ev.Start.Valid() && ev.Start.DateOnly() {
			ev.StartOut = OutputValue{Param: "VALUE=DATE", Value: ev.Start.Time().Format(dateLayout)}
		}
		if ev.End.Valid() && ev.End.DateOnly() {
			ev.EndOut = OutputValue{Param: "VALUE=DATE", Value: ev.End.Time().Format(dateLayout)}
		}
		return
	}

	fields := []struct {
		in  DateTime
		out *OutputValue
	}{
		{ev.Start, &ev.StartOut},
		{ev.End, &ev.EndOut},
	}
	for _, f := range fields {
		if !f.in.Valid() {
			continue
		}
		if f.in.DateOnly() {
			ev.AllDay = true
			*f.out = OutputValue{Param: "VALUE=DATE", Value: f.in.Time().Format(dateLayout)}
			continue
		}
		local := f.in.Time().In(zone)
		*f.out = OutputValue{
			Param: fmt.Sprintf("TZID=%s", zone.String()),
			Value: local.Format(dateTimeLayout),
		}
	}
}

// StartKey returns the canonical start string used for dedup identity and
// output ordering: the normalized output value when present, otherwise a
// best-effort format of the raw start, otherwise empty.
func StartKey(ev *Event, zone *time.Location) string {
	if ev.StartOut.Present() {
		return ev.StartOut.Value
	}
	if ev.Start.Valid() {
		if ev.Start.DateOnly() {
			return ev.Start.Time().Format(dateLayout)
		}
		return ev.Start.Time().In(zone).Format(dateTimeLayout)
	}
	return ""
}
