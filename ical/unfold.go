package ical

import "strings"

// UnfoldLines turns raw iCalendar file content into logical content lines.
//
// Line endings are normalized first (CRLF and bare CR become LF), then any
// physical line starting with a space or tab is folded back onto the previous
// line with the single fold character dropped, per RFC 5545 section 3.1.
// A continuation with no preceding line has nothing to attach to and is
// dropped.
func UnfoldLines(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")

	var unfolded []string
	for _, line := range strings.Split(raw, "\n") {
		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			if len(unfolded) > 0 {
				unfolded[len(unfolded)-1] += line[1:]
			}
			continue
		}
		unfolded = append(unfolded, line)
	}
	return unfolded
}
