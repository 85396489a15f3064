package model

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"unical/ical"
)

// MergedEvent is one row of the optional archive sink: a snapshot of an
// event that survived deduplication in one run. The archive is write-only
// for the merger; nothing reads it back during a run.
type MergedEvent struct {
	bun.BaseModel `bun:"table:merged_events"`

	ID          string `bun:"id,pk,notnull"`
	UID         string `bun:"uid,notnull"`
	StartKey    string `bun:"start_key,notnull"`
	Summary     string `bun:"summary,notnull"`
	Description string `bun:"description"`
	Location    string `bun:"location"`
	URL         string `bun:"url"`
	Status      string `bun:"status"`
	Transp      string `bun:"transp"`

	AllDay bool   `bun:"all_day,notnull"`
	Source string `bun:"source,notnull"`

	MergedAt int64 `bun:"merged_at,notnull"`
}

// FromEvent snapshots a merged event for archiving. Identity columns mirror
// the dedup key so re-running the merge upserts instead of duplicating.
func FromEvent(ev *ical.Event, zone *time.Location, mergedAt time.Time) *MergedEvent {
	return &MergedEvent{
		ID:          uuid.NewString(),
		UID:         ev.UID,
		StartKey:    ical.StartKey(ev, zone),
		Summary:     ev.Summary,
		Description: ev.Description,
		Location:    ev.Location,
		URL:         ev.URL,
		Status:      ev.Status,
		Transp:      ev.Transp,
		AllDay:      ev.AllDay,
		Source:      ev.Source,
		MergedAt:    mergedAt.Unix(),
	}
}

func (m *MergedEvent) Upsert(ctx context.Context, db bun.IDB) error {
	if m.ID == "" {
		return fmt.Errorf("MergedEvent.Upsert: id is blank")
	}
	if m.StartKey == "" && m.Summary == "" {
		return fmt.Errorf("MergedEvent.Upsert: event has no identity")
	}

	if _, err := db.NewInsert().
		Model(m).
		On("CONFLICT (uid, start_key, summary) DO UPDATE").
		Set("description = EXCLUDED.description").
		Set("location = EXCLUDED.location").
		Set("url = EXCLUDED.url").
		Set("status = EXCLUDED.status").
		Set("transp = EXCLUDED.transp").
		Set("all_day = EXCLUDED.all_day").
		Set("source = EXCLUDED.source").
		Set("merged_at = EXCLUDED.merged_at").
		Exec(ctx); err != nil {
		return fmt.Errorf("MergedEvent.Upsert: %w", err)
	}

	return nil
}
