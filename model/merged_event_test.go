package model_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"unical/ical"
	"unical/model"
)

func TestMergedEventUpsert(t *testing.T) {
	// init db
	db, err := sql.Open(sqliteshim.ShimName, ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	bundb := bun.NewDB(db, sqlitedialect.New())

	if err := model.CreateSchema(bundb); err != nil {
		t.Fatal(err)
	}

	ev := &ical.Event{
		UID:         "sem@dept",
		Summary:     "Seminar X",
		Description: "first run",
		Source:      "a.ics",
		Start:       ical.NewDate(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		AllDay:      true,
	}
	ical.Normalize(ev, time.UTC)

	// first run inserts
	if err := model.FromEvent(ev, time.UTC, time.Now()).Upsert(context.Background(), bundb); err != nil {
		t.Error(err)
	}

	// second run with the same identity updates instead of duplicating
	ev.Description = "second run"
	if err := model.FromEvent(ev, time.UTC, time.Now()).Upsert(context.Background(), bundb); err != nil {
		t.Error(err)
	}

	count, err := bundb.NewSelect().
		Model((*model.MergedEvent)(nil)).
		Count(context.Background())
	if err != nil {
		t.Error(err)
	}
	if count != 1 {
		t.Error("expected one archived row, got", count)
	}

	archived := new(model.MergedEvent)
	if err := bundb.NewSelect().
		Model(archived).
		Where("uid = ?", "sem@dept").
		Scan(context.Background()); err != nil {
		t.Error(err)
	}
	if archived.Description != "second run" {
		t.Error("archived row not updated:", archived.Description)
	}
	if archived.StartKey != "20250101" {
		t.Error("unexpected start key:", archived.StartKey)
	}
}

func TestMergedEventUpsertRejectsEmptyIdentity(t *testing.T) {
	db, err := sql.Open(sqliteshim.ShimName, ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	bundb := bun.NewDB(db, sqlitedialect.New())
	if err := model.CreateSchema(bundb); err != nil {
		t.Fatal(err)
	}

	m := model.FromEvent(&ical.Event{}, time.UTC, time.Now())
	if err := m.Upsert(context.Background(), bundb); err == nil {
		t.Error("expected an error for an event with no identity")
	}
}
