package ical

import (
	"strings"
	"time"
)

// OutputValue is the canonical serialized form of a temporal field, computed
// by Normalize: the parameter hint ("VALUE=DATE" or "TZID=<zone>") plus the
// formatted value. A zero OutputValue means the field is not emitted.
type OutputValue struct {
	Param string
	Value string
}

// Present reports whether the field has a canonical form to emit.
func (o OutputValue) Present() bool {
	return o.Value != ""
}

// Event is one VEVENT block pulled out of a source file. Optional string
// fields use the empty string for absence; temporal fields use the DateTime
// absent state. The extractor creates it, Normalize fills in StartOut/EndOut,
// and everything downstream only reads it.
type Event struct {
	UID         string
	Summary     string
	Location    string
	Description string
	Sequence    string
	Status      string
	Transp      string
	URL         string

	Start        DateTime
	End          DateTime
	Stamp        DateTime
	LastModified DateTime

	AllDay bool
	Source string

	StartOut OutputValue
	EndOut   OutputValue
}

// ExtractEvents scans logical lines for VEVENT blocks and builds one Event
// per complete block, tagged with the source name. The scan has two states:
// outside an event lines are discarded, inside they are buffered until the
// closing marker. An open block that never sees END:VEVENT is dropped
// wholesale.
func ExtractEvents(lines []string, source string, defaultZone *time.Location) []*Event {
	var events []*Event
	inEvent := false
	var buf []string

	for _, line := range lines {
		switch strings.ToUpper(strings.TrimSpace(line)) {
		case "BEGIN:VEVENT":
			inEvent = true
			buf = nil
		case "END:VEVENT":
			if inEvent {
				events = append(events, buildEvent(buf, source, defaultZone))
			}
			inEvent = false
			buf = nil
		default:
			if inEvent {
				buf = append(buf, line)
			}
		}
	}
	return events
}

func buildEvent(lines []string, source string, defaultZone *time.Location) *Event {
	ev := &Event{Source: source}

	for _, line := range lines {
		prop := ParseProperty(line)
		if prop == nil {
			continue
		}

		if prop.Kind.IsTemporal() {
			dt := ResolveDateTime(prop, defaultZone)
			switch prop.Kind {
			case PropDtStart:
				ev.Start = dt
				if dt.Valid() && dt.DateOnly() {
					ev.AllDay = true
				}
			case PropDtEnd:
				ev.End = dt
			case PropDtStamp:
				ev.Stamp = dt
			case PropLastModified:
				ev.LastModified = dt
			}
			continue
		}

		value := strings.TrimSpace(prop.Value)
		switch prop.Kind {
		case PropSummary:
			ev.Summary = value
		case PropLocation:
			ev.Location = value
		case PropDescription:
			ev.Description = value
		case PropUID:
			ev.UID = value
		case PropSequence:
			ev.Sequence = value
		case PropStatus:
			ev.Status = value
		case PropTransp:
			ev.Transp = value
		case PropURL:
			ev.URL = value
		}
	}

	return ev
}
