package ical

import (
	"html"
	"regexp"
	"strings"
)

// SignupRedactedPlaceholder replaces URLs pointing at known signup hosts.
const SignupRedactedPlaceholder = "[signup link removed]"

// Hosts commonly used for event signup/registration: document hosting,
// forms, ticketing, video-conferencing, survey tools, plus generic prefixes.
// Matching is case-insensitive substring on the URL host.
var defaultRedactDomains = []string{
	"docs.google.com",
	"forms.gle",
	"forms.office.com",
	"eventbrite.com",
	"zoom.us",
	"qualtrics.com",
	"signup.",
	"register.",
	"trybooking.com",
}

var (
	anchorRe     = regexp.MustCompile(`(?is)<a\b[^>]*href\s*=\s*(?:"([^"]*)"|'([^']*)')[^>]*>.*?</a>`)
	blockTagRe   = regexp.MustCompile(`(?i)</?(?:br|p|div|li|ul|ol|h[1-6])\b[^>]*>`)
	anyTagRe     = regexp.MustCompile(`<[^>]+>`)
	urlRe        = regexp.MustCompile(`(?i)https?://[^\s>"')]+`)
	trailingWsRe = regexp.MustCompile(`[ \t]+\n`)
	leadingWsRe  = regexp.MustCompile(`\n[ \t]+`)
	manyBreaksRe = regexp.MustCompile(`\n{3,}`)
)

// StripHTML converts lightweight HTML to plain text: block-level tag
// boundaries become line breaks, every remaining tag is removed, entities
// are decoded, and whitespace is tidied (3+ breaks collapse to 2). This is a
// best-effort regex pass, not an HTML parser; badly nested markup from a
// scraped page degrades gracefully rather than erroring.
func StripHTML(text string) string {
	if text == "" {
		return ""
	}
	// anchors collapse to their href so a later redaction pass still sees
	// the URL; the link target matters more than its label here
	text = anchorRe.ReplaceAllString(text, "$1$2")
	text = blockTagRe.ReplaceAllString(text, "\n")
	text = anyTagRe.ReplaceAllString(text, "")
	text = html.UnescapeString(text)
	text = trailingWsRe.ReplaceAllString(text, "\n")
	text = leadingWsRe.ReplaceAllString(text, "\n")
	text = manyBreaksRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

func looksLikeSignupURL(rawURL string, extraDomains []string) bool {
	host := rawURL
	if strings.Contains(rawURL, "://") {
		if parts := strings.SplitN(rawURL, "/", 4); len(parts) > 2 {
			host = parts[2]
		}
	}
	host = strings.ToLower(host)

	for _, domain := range defaultRedactDomains {
		if strings.Contains(host, domain) {
			return true
		}
	}
	for _, domain := range extraDomains {
		if strings.Contains(host, strings.ToLower(domain)) {
			return true
		}
	}
	return false
}

// RedactSignupLinks replaces every URL whose host matches a known signup
// domain (or a caller-supplied extra) with the placeholder. Other URLs pass
// through untouched.
func RedactSignupLinks(text string, extraDomains []string) string {
	if text == "" {
		return text
	}
	return urlRe.ReplaceAllStringFunc(text, func(rawURL string) string {
		if looksLikeSignupURL(rawURL, extraDomains) {
			return SignupRedactedPlaceholder
		}
		return rawURL
	})
}

// FormatDescription applies the optional description treatments in order:
// HTML cleaning first so tags can't mask URLs, then signup-link redaction.
func FormatDescription(raw string, clean, redactLinks bool, extraDomains []string) string {
	text := raw
	if clean {
		text = StripHTML(text)
	}
	if redactLinks {
		text = RedactSignupLinks(text, extraDomains)
	}
	return text
}
