package cli

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"unical/ical"
	"unical/model"
	"unical/utils"
)

// Unify reads every input file, runs the merge pipeline and writes the
// unified calendar to outputPath. Missing inputs are warned about and
// skipped; any other I/O failure aborts the run.
func Unify(inputs []string, outputPath, archiveDB string, opts *Options, cfg *utils.Config) error {
	zone := cfg.GetLocation()

	var all []*ical.Event
	counts := make(map[string]int)
	var sources []string

	for _, path := range inputs {
		raw, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				slog.Warn("file not found, skipping", "path", path)
				continue
			}
			return ical.NewCustomError("can't read input file", map[string]any{
				"path": path,
				"err":  err,
			})
		}

		lines := ical.UnfoldLines(string(raw))
		source := filepath.Base(path)
		events := ical.ExtractEvents(lines, source, zone)
		slog.Debug("parsed source", "source", source, "events", len(events))

		if _, seen := counts[source]; !seen {
			sources = append(sources, source)
		}
		counts[source] += len(events)
		all = append(all, events...)
	}

	for _, ev := range all {
		ical.Normalize(ev, zone)
	}

	merged := ical.Dedup(all, zone)
	merged = filterBySummary(merged, opts.GrepSummary)

	sort.SliceStable(merged, func(i, j int) bool {
		return ical.StartKey(merged[i], zone) < ical.StartKey(merged[j], zone)
	})

	cal := ical.NewCalendar(zone)
	for _, ev := range merged {
		cal.AddEvent(ev)
	}

	renderOpts := ical.RenderOptions{
		CleanDescription:  opts.CleanDescription,
		RedactSignupLinks: opts.RedactSignupLinks,
		RedactDomains:     opts.RedactDomains,
		FoldLines:         opts.FoldLines,
	}
	if err := cal.MarshalToFile(outputPath, renderOpts, zone); err != nil {
		return err
	}

	for _, source := range sources {
		slog.Info("merge summary", "source", source, "events", counts[source])
	}
	slog.Info("merge summary", "after_dedupe_total", len(merged))
	slog.Info("wrote unified calendar", "path", outputPath)

	if archiveDB != "" {
		archiveRun(merged, zone, archiveDB)
	}
	return nil
}

// filterBySummary keeps events whose SUMMARY matches at least one of the
// given case-insensitive patterns. No patterns (or none that compile) keeps
// everything; an invalid pattern is warned about and ignored while the rest
// still apply.
func filterBySummary(events []*ical.Event, patterns []string) []*ical.Event {
	if len(patterns) == 0 {
		return events
	}

	var compiled []*regexp.Regexp
	for _, pattern := range patterns {
		rx, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			slog.Warn("invalid summary pattern, skipping", "pattern", pattern, "error", err)
			continue
		}
		compiled = append(compiled, rx)
	}
	if len(compiled) == 0 {
		return events
	}

	var kept []*ical.Event
	for _, ev := range events {
		for _, rx := range compiled {
			if rx.MatchString(ev.Summary) {
				kept = append(kept, ev)
				break
			}
		}
	}
	return kept
}

// archiveRun upserts the merged set into the sqlite archive. Archiving is a
// side channel; failures are warned about, never fatal to a run that already
// wrote its output.
func archiveRun(merged []*ical.Event, zone *time.Location, archiveDB string) {
	sqldb, err := sql.Open(sqliteshim.ShimName, archiveDB)
	if err != nil {
		slog.Warn("can't open archive db", "path", archiveDB, "error", err)
		return
	}
	defer sqldb.Close()
	bundb := bun.NewDB(sqldb, sqlitedialect.New())

	if err := model.CreateSchema(bundb); err != nil {
		slog.Warn("can't create archive schema", "path", archiveDB, "error", err)
		return
	}

	ctx := context.Background()
	mergedAt := time.Now()
	archived := 0
	for _, ev := range merged {
		if err := model.FromEvent(ev, zone, mergedAt).Upsert(ctx, bundb); err != nil {
			slog.Warn("can't archive event", "summary", ev.Summary, "error", err)
			continue
		}
		archived++
	}
	slog.Info("archived merged events", "path", archiveDB, "count", archived)
}
