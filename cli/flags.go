package cli

// Options holds the full flag surface of the unify command.
type Options struct {
	Output string `short:"o" long:"output" description:"Output .ics path (default from UNICAL_OUTPUT env, else unified_calendar.ics)"`

	CleanDescription  bool     `long:"clean-description" description:"Normalize DESCRIPTION: strip HTML, decode entities, tidy whitespace"`
	RedactSignupLinks bool     `long:"redact-signup-links" description:"Redact likely signup URLs in DESCRIPTION"`
	RedactDomains     []string `long:"redact-domain" description:"Additional domain substring to treat as signup (repeatable)"`

	GrepSummary []string `long:"grep-summary" description:"Case-insensitive regex on SUMMARY; keep events matching any pattern (repeatable)"`

	FoldLines bool `long:"fold-lines" description:"Fold output content lines at 75 characters per RFC 5545"`

	ArchiveDB string `long:"archive-db" description:"SQLite path to archive merged events into (default from UNICAL_ARCHIVE_DB env)"`

	Version bool `long:"version" description:"Show version and exit"`

	Args struct {
		Inputs []string `positional-arg-name:"inputs" description:"Input .ics files"`
	} `positional-args:"yes"`
}

// Scraper outputs conventionally dropped next to the binary; used when no
// inputs are given on the command line.
var defaultInputs = []string{
	"custom-events.ics",
	"unimelb-econ.ics",
	"monash_ebs.ics",
}
