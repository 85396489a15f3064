package ical

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// RenderOptions controls per-event serialization.
type RenderOptions struct {
	CleanDescription  bool
	RedactSignupLinks bool
	RedactDomains     []string

	// Fold output content lines at 75 characters with space continuations.
	// Off by default so the output matches byte-for-byte what the scraped
	// feeds' consumers already ingest.
	FoldLines bool

	EscapeCommas     bool
	EscapeSemicolons bool
}

var slugRe = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// uidDomain suffixes synthesized UIDs so they can't collide with
// producer-assigned ones.
const uidDomain = "@unified"

func propLine(name, params, value string) string {
	if params != "" {
		return fmt.Sprintf("%s;%s:%s", name, params, value)
	}
	return fmt.Sprintf("%s:%s", name, value)
}

// foldContentLine splits a content line into 75-character chunks, each
// continuation prefixed with a single space per RFC 5545.
func foldContentLine(line string) string {
	if len(line) <= 75 {
		return line
	}
	var sb strings.Builder
	for i := 0; i < len(line); i += 75 {
		end := i + 75
		if end > len(line) {
			end = len(line)
		}
		if i > 0 {
			sb.WriteString("\n ")
		}
		sb.WriteString(line[i:end])
	}
	return sb.String()
}

// synthesizeUID builds a deterministic UID for events whose source carried
// none: a lowercase hyphen slug of the summary plus a stamp taken from
// DTSTART. Without a DTSTART the stamp falls back to the current wall-clock
// time in the deployment zone, which is stable within a run but not across
// runs.
func synthesizeUID(ev *Event, zone *time.Location, now time.Time) string {
	summary := ev.Summary
	if summary == "" {
		summary = "event"
	}
	slug := strings.ToLower(strings.Trim(slugRe.ReplaceAllString(summary, "-"), "-"))

	var stamp string
	switch {
	case ev.Start.Valid() && ev.Start.DateOnly():
		stamp = ev.Start.Time().Format(dateLayout)
	case ev.Start.Valid():
		stamp = ev.Start.Time().Format(dateTimeLayout)
	default:
		stamp = now.In(zone).Format(dateTimeLayout)
	}

	return fmt.Sprintf("%s-%s%s", slug, stamp, uidDomain)
}

// RenderEvent serializes one normalized event into a VEVENT block. DTSTAMP
// is always freshly generated in UTC: the unified file's stamp reflects the
// moment of unification, not original authorship. STATUS, TRANSP and URL
// pass through verbatim when present.
func RenderEvent(ev *Event, opts RenderOptions, zone *time.Location, now time.Time) string {
	var lines []string
	lines = append(lines, "BEGIN:VEVENT")

	uid := ev.UID
	if uid == "" {
		uid = synthesizeUID(ev, zone, now)
	}
	lines = append(lines, propLine("UID", "", uid))

	if ev.AllDay && ev.StartOut.Present() {
		lines = append(lines, propLine("DTSTART", "VALUE=DATE", ev.StartOut.Value))
		if ev.EndOut.Present() {
			lines = append(lines, propLine("DTEND", "VALUE=DATE", ev.EndOut.Value))
		}
	} else {
		if ev.StartOut.Present() {
			lines = append(lines, propLine("DTSTART", ev.StartOut.Param, ev.StartOut.Value))
		}
		if ev.EndOut.Present() {
			lines = append(lines, propLine("DTEND", ev.EndOut.Param, ev.EndOut.Value))
		}
	}

	escape := func(s string) string {
		return EscapeText(s, opts.EscapeCommas, opts.EscapeSemicolons)
	}
	if ev.Summary != "" {
		lines = append(lines, propLine("SUMMARY", "", escape(ev.Summary)))
	}
	if ev.Location != "" {
		lines = append(lines, propLine("LOCATION", "", escape(ev.Location)))
	}
	if ev.Description != "" {
		desc := FormatDescription(ev.Description, opts.CleanDescription, opts.RedactSignupLinks, opts.RedactDomains)
		lines = append(lines, propLine("DESCRIPTION", "", escape(desc)))
	}

	lines = append(lines, propLine("DTSTAMP", "", now.UTC().Format("20060102T150405Z")))

	if ev.Status != "" {
		lines = append(lines, propLine("STATUS", "", ev.Status))
	}
	if ev.Transp != "" {
		lines = append(lines, propLine("TRANSP", "", ev.Transp))
	}
	if ev.URL != "" {
		lines = append(lines, propLine("URL", "", ev.URL))
	}

	lines = append(lines, "END:VEVENT")

	if opts.FoldLines {
		for i, line := range lines {
			lines[i] = foldContentLine(line)
		}
	}
	return strings.Join(lines, "\n")
}
