package ical_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"unical/ical"
)

func TestStripHTML(t *testing.T) {
	in := `<p>Guest lecture.</p><div class="x">Details &amp; times</div><ul><li>One</li><li>Two</li></ul>`
	out := ical.StripHTML(in)
	assert.Equal(t, "Guest lecture.\n\nDetails & times\n\nOne\n\nTwo", out)
}

func TestStripHTMLAnchorKeepsHref(t *testing.T) {
	out := ical.StripHTML(`<p>Join via <a href="https://forms.gle/abc">this form</a></p>`)
	assert.Equal(t, "Join via https://forms.gle/abc", out)
}

func TestStripHTMLCollapsesBreakRuns(t *testing.T) {
	out := ical.StripHTML("a<br><br><br><br>b")
	assert.Equal(t, "a\n\nb", out)
}

func TestStripHTMLEmpty(t *testing.T) {
	assert.Equal(t, "", ical.StripHTML(""))
}

func TestRedactSignupLinks(t *testing.T) {
	in := "Register at https://forms.gle/abc123 or read https://arxiv.org/abs/1234.5678"
	out := ical.RedactSignupLinks(in, nil)
	assert.Equal(t, "Register at [signup link removed] or read https://arxiv.org/abs/1234.5678", out)
}

func TestRedactSignupLinksExtraDomain(t *testing.T) {
	in := "Sign up: https://events.mydept.edu/register-here"
	assert.Equal(t, in, ical.RedactSignupLinks(in, nil))
	assert.Equal(t,
		"Sign up: [signup link removed]",
		ical.RedactSignupLinks(in, []string{"events.mydept.edu"}))
}

func TestRedactSignupLinksHostMatchOnly(t *testing.T) {
	// the signup word in the path doesn't count, only the host matters
	in := "See https://example.edu/signup-info for details"
	assert.Equal(t, in, ical.RedactSignupLinks(in, nil))
}

func TestRedactSignupLinksCaseInsensitive(t *testing.T) {
	out := ical.RedactSignupLinks("HTTPS://Forms.GLE/xyz", nil)
	assert.Equal(t, "[signup link removed]", out)
}

func TestFormatDescriptionCleanThenRedact(t *testing.T) {
	in := `<p>Join via <a href="https://forms.gle/abc">this form</a></p>`
	out := ical.FormatDescription(in, true, true, nil)
	assert.Equal(t, "Join via [signup link removed]", out)
}

func TestFormatDescriptionTogglesIndependent(t *testing.T) {
	in := `<p>Join via https://forms.gle/abc today</p>`

	assert.Equal(t, in, ical.FormatDescription(in, false, false, nil))
	assert.Equal(t, "Join via https://forms.gle/abc today", ical.FormatDescription(in, true, false, nil))
	assert.Equal(t, "<p>Join via [signup link removed] today</p>", ical.FormatDescription(in, false, true, nil))
}
