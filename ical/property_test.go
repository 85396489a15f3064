package ical_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unical/ical"
)

func TestParseProperty(t *testing.T) {
	prop := ical.ParseProperty("dtstart;tzid=Australia/Melbourne;value=DATE-TIME:20250101T093000")
	require.NotNil(t, prop)

	assert.Equal(t, "DTSTART", prop.Name)
	assert.Equal(t, ical.PropDtStart, prop.Kind)
	assert.Equal(t, "Australia/Melbourne", prop.Params["TZID"])
	assert.Equal(t, "DATE-TIME", prop.Params["VALUE"])
	assert.Equal(t, "20250101T093000", prop.Value)
}

func TestParsePropertyValueKeepsColons(t *testing.T) {
	prop := ical.ParseProperty("URL:https://example.edu/events?id=1")
	require.NotNil(t, prop)
	assert.Equal(t, ical.PropURL, prop.Kind)
	assert.Equal(t, "https://example.edu/events?id=1", prop.Value)
}

func TestParsePropertyFlagParam(t *testing.T) {
	prop := ical.ParseProperty("SUMMARY;X-FLAG:Seminar")
	require.NotNil(t, prop)
	assert.Equal(t, "TRUE", prop.Params["X-FLAG"])
}

func TestParsePropertyNoColon(t *testing.T) {
	assert.Nil(t, ical.ParseProperty("not a content line"))
}

func TestParsePropertyUnknownName(t *testing.T) {
	prop := ical.ParseProperty("X-WR-CALNAME:whatever")
	require.NotNil(t, prop)
	assert.Equal(t, ical.PropUnknown, prop.Kind)
}
