package ical

import "strings"

// EscapeText prepares a text value for an output content line: backslashes
// are doubled and every line-break variant becomes the literal two-character
// sequence \n. Commas and semicolons are only escaped on request; the looser
// form is what most real-world calendar consumers expect for SUMMARY,
// LOCATION and DESCRIPTION.
func EscapeText(s string, escapeCommas, escapeSemicolons bool) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "\n", `\n`)
	if escapeCommas {
		s = strings.ReplaceAll(s, ",", `\,`)
	}
	if escapeSemicolons {
		s = strings.ReplaceAll(s, ";", `\;`)
	}
	return s
}
