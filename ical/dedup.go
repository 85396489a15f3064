package ical

import (
	"time"
)

// IdentityKey groups the same logical event across sources: the UID (empty
// when the source has none), the canonical start string, and the summary.
type IdentityKey struct {
	UID     string
	Start   string
	Summary string
}

// KeyOf derives the identity key of a normalized event.
func KeyOf(ev *Event, zone *time.Location) IdentityKey {
	return IdentityKey{
		UID:     ev.UID,
		Start:   StartKey(ev, zone),
		Summary: ev.Summary,
	}
}

// Dedup folds all source events into one survivor per identity key. The
// winner between two colliding events is picked by pickLatest; the reduction
// itself is order-independent apart from that tie-break. The returned slice
// preserves first-seen key order so callers get a stable result before
// sorting.
func Dedup(events []*Event, zone *time.Location) []*Event {
	table := make(map[IdentityKey]*Event, len(events))
	var order []IdentityKey

	for _, ev := range events {
		key := KeyOf(ev, zone)
		existing, ok := table[key]
		if !ok {
			table[key] = ev
			order = append(order, key)
			continue
		}
		table[key] = pickLatest(existing, ev)
	}

	merged := make([]*Event, 0, len(order))
	for _, key := range order {
		merged = append(merged, table[key])
	}
	return merged
}

// modStamp returns the event's last-modification instant, preferring
// LAST-MODIFIED over DTSTAMP. Date-only values don't qualify; they carry no
// instant to compare.
func modStamp(ev *Event) (time.Time, bool) {
	for _, dt := range []DateTime{ev.LastModified, ev.Stamp} {
		if dt.Valid() && !dt.DateOnly() {
			return dt.Time(), true
		}
	}
	return time.Time{}, false
}

// pickLatest keeps the more authoritative of two events with the same
// identity key: the newer modification stamp wins (ties keep the incumbent),
// a one-sided stamp wins over none, and with no stamps at all the longer
// description is taken as a proxy for more complete data.
func pickLatest(existing, candidate *Event) *Event {
	existingTS, existingOK := modStamp(existing)
	candidateTS, candidateOK := modStamp(candidate)

	switch {
	case existingOK && candidateOK:
		if existingTS.Before(candidateTS) {
			return candidate
		}
		return existing
	case candidateOK:
		return candidate
	case existingOK:
		return existing
	}

	if len(candidate.Description) > len(existing.Description) {
		return candidate
	}
	return existing
}
