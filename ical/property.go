package ical

import "strings"

// PropKind enumerates the property names the extractor recognizes. Everything
// else parses to PropUnknown and is ignored by the caller.
type PropKind int

const (
	PropUnknown PropKind = iota
	PropDtStart
	PropDtEnd
	PropDtStamp
	PropLastModified
	PropSummary
	PropLocation
	PropDescription
	PropUID
	PropSequence
	PropStatus
	PropTransp
	PropURL
)

var propKinds = map[string]PropKind{
	"DTSTART":       PropDtStart,
	"DTEND":         PropDtEnd,
	"DTSTAMP":       PropDtStamp,
	"LAST-MODIFIED": PropLastModified,
	"SUMMARY":       PropSummary,
	"LOCATION":      PropLocation,
	"DESCRIPTION":   PropDescription,
	"UID":           PropUID,
	"SEQUENCE":      PropSequence,
	"STATUS":        PropStatus,
	"TRANSP":        PropTransp,
	"URL":           PropURL,
}

// IsTemporal reports whether the property carries a date or date-time value.
func (k PropKind) IsTemporal() bool {
	switch k {
	case PropDtStart, PropDtEnd, PropDtStamp, PropLastModified:
		return true
	}
	return false
}

// Property is one parsed content line: NAME;PARAM=VALUE;...:value
type Property struct {
	Name   string
	Kind   PropKind
	Params map[string]string
	Value  string
}

// ParseProperty splits a logical line on the first colon into the property
// head and its raw value. Parameter keys and the name are uppercased; a
// parameter token without '=' becomes a boolean flag with value "TRUE".
// Lines without a colon are not an error, they return nil and the caller
// skips them.
func ParseProperty(line string) *Property {
	head, value, found := strings.Cut(line, ":")
	if !found {
		return nil
	}

	parts := strings.Split(head, ";")
	name := strings.ToUpper(strings.TrimSpace(parts[0]))

	params := make(map[string]string)
	for _, part := range parts[1:] {
		if key, val, ok := strings.Cut(part, "="); ok {
			params[strings.ToUpper(strings.TrimSpace(key))] = strings.TrimSpace(val)
		} else {
			params[strings.ToUpper(strings.TrimSpace(part))] = "TRUE"
		}
	}

	return &Property{
		Name:   name,
		Kind:   propKinds[name],
		Params: params,
		Value:  value,
	}
}
