package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/plantcare/core/internal/domain/care"
	"github.com/plantcare/core/internal/domain/entities"
	"github.com/plantcare/core/internal/infrastructure/config"
	"github.com/plantcare/core/internal/infrastructure/database"
	"github.com/plantcare/core/internal/ports"
)

var testLoc = time.FixedZone("UTC+3", 3*60*60)

func openSQLiteStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.New(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "plants.db"),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	status, err := db.Migrate(database.MigrateUp)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if status.Version != 1 || status.Dirty {
		t.Fatalf("unexpected migration status %+v", status)
	}
	return NewSQLStore(db, testLoc)
}

func forEachStore(t *testing.T, fn func(t *testing.T, store *Store)) {
	t.Run("sqlite", func(t *testing.T) { fn(t, openSQLiteStore(t)) })
	t.Run("memory", func(t *testing.T) { fn(t, NewMemoryStore()) })
}

func day(s string) time.Time {
	d, err := care.ParseDate(s, testLoc)
	if err != nil {
		panic(err)
	}
	return d
}

func createPlant(t *testing.T, store *Store, name string) *entities.Plant {
	t.Helper()
	now := time.Date(2026, 2, 1, 9, 30, 0, 0, testLoc)
	lastWatered := day("2026-02-11")
	variety := "Thai Constellation"
	price := 24.5
	p := &entities.Plant{
		Name:    name,
		Species: "Monstera deliciosa",
		Variety: &variety,
		Emoji:   "🪴",
		CareProfile: entities.CareProfile{
			WateringIntervalDays: 7,
			Light:                "bright indirect",
			Humidity:             60,
			Intervals:            entities.CareIntervals{entities.CareTypeFertilizing: 30},
		},
		Health:      90,
		Price:       &price,
		LastWatered: &lastWatered,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := store.Plants.Create(context.Background(), p); err != nil {
		t.Fatalf("create plant: %v", err)
	}
	if p.ID == 0 {
		t.Fatalf("plant id not assigned")
	}
	return p
}

func TestPlantStore(t *testing.T) {
	forEachStore(t, func(t *testing.T, store *Store) {
		ctx := context.Background()
		p := createPlant(t, store, "Monstera")
		createPlant(t, store, "Aloe")

		got, err := store.Plants.GetByID(ctx, p.ID)
		if err != nil {
			t.Fatalf("get plant: %v", err)
		}
		if got.Name != "Monstera" || got.WateringIntervalDays != 7 || got.Humidity != 60 {
			t.Fatalf("unexpected plant %+v", got)
		}
		if got.Variety == nil || *got.Variety != "Thai Constellation" {
			t.Fatalf("variety not stored: %v", got.Variety)
		}
		if got.Price == nil || *got.Price != 24.5 {
			t.Fatalf("price not stored: %v", got.Price)
		}
		if got.LastWatered == nil || care.DateKey(*got.LastWatered) != "2026-02-11" {
			t.Fatalf("last watered not stored: %v", got.LastWatered)
		}
		if got.Intervals[entities.CareTypeFertilizing] != 30 {
			t.Fatalf("care intervals not stored: %v", got.Intervals)
		}

		watered := day("2026-02-18")
		got.LastWatered = &watered
		got.Health = 95
		if err := store.Plants.Update(ctx, got); err != nil {
			t.Fatalf("update plant: %v", err)
		}
		again, err := store.Plants.GetByID(ctx, p.ID)
		if err != nil {
			t.Fatalf("get plant after update: %v", err)
		}
		if care.DateKey(*again.LastWatered) != "2026-02-18" || again.Health != 95 {
			t.Fatalf("update not applied: %+v", again)
		}

		list, err := store.Plants.List(ctx)
		if err != nil {
			t.Fatalf("list plants: %v", err)
		}
		if len(list) != 2 || list[0].Name != "Aloe" {
			t.Fatalf("unexpected plant list %+v", list)
		}

		if _, err := store.Plants.GetByID(ctx, 999); !errors.Is(err, entities.ErrPlantNotFound) {
			t.Fatalf("expected ErrPlantNotFound, got %v", err)
		}
		missing := &entities.Plant{ID: 999, CareProfile: entities.CareProfile{WateringIntervalDays: 1}}
		if err := store.Plants.Update(ctx, missing); !errors.Is(err, entities.ErrPlantNotFound) {
			t.Fatalf("update missing: expected ErrPlantNotFound, got %v", err)
		}
	})
}

func TestReminderStore(t *testing.T) {
	forEachStore(t, func(t *testing.T, store *Store) {
		ctx := context.Background()
		p := createPlant(t, store, "Monstera")
		created := time.Date(2026, 2, 10, 8, 0, 0, 0, testLoc)

		for i, due := range []string{"2026-02-20", "2026-02-18", "2026-03-02"} {
			r := &entities.Reminder{
				PlantID:   p.ID,
				CareType:  entities.CareTypeWatering,
				DueDate:   day(due),
				Status:    entities.ReminderStatusPending,
				CreatedAt: created.Add(time.Duration(i) * time.Minute),
			}
			if err := store.Reminders.Create(ctx, r); err != nil {
				t.Fatalf("create reminder: %v", err)
			}
		}

		orphan := &entities.Reminder{PlantID: 999, CareType: entities.CareTypeMisting, DueDate: day("2026-02-18"), Status: entities.ReminderStatusPending}
		if err := store.Reminders.Create(ctx, orphan); !errors.Is(err, entities.ErrPlantNotFound) {
			t.Fatalf("expected ErrPlantNotFound for unknown plant, got %v", err)
		}

		from, to := day("2026-02-01"), day("2026-02-28")
		feb, err := store.Reminders.List(ctx, ports.ReminderFilter{DueFrom: &from, DueTo: &to})
		if err != nil {
			t.Fatalf("list reminders: %v", err)
		}
		if len(feb) != 2 || care.DateKey(feb[0].DueDate) != "2026-02-18" {
			t.Fatalf("unexpected february reminders %+v", feb)
		}
		if feb[0].PlantName != "Monstera" || feb[0].PlantEmoji != "🪴" {
			t.Fatalf("plant fields not joined: %+v", feb[0])
		}

		misting := &entities.Reminder{PlantID: p.ID, CareType: entities.CareTypeMisting, DueDate: day("2026-02-19"), Status: entities.ReminderStatusPending, CreatedAt: created}
		if err := store.Reminders.Create(ctx, misting); err != nil {
			t.Fatalf("create misting reminder: %v", err)
		}
		watering := entities.CareTypeWatering
		waterings, err := store.Reminders.List(ctx, ports.ReminderFilter{CareType: &watering, DueFrom: &from, DueTo: &to})
		if err != nil {
			t.Fatalf("list by care type: %v", err)
		}
		if len(waterings) != 2 {
			t.Fatalf("expected 2 february waterings, got %+v", waterings)
		}

		got, err := store.Reminders.GetByID(ctx, feb[0].ID)
		if err != nil {
			t.Fatalf("get reminder: %v", err)
		}
		if got.DueDate.Location() != testLoc || got.DueDate.Hour() != 0 {
			t.Fatalf("due date not normalised to the store location: %v", got.DueDate)
		}
		if _, err := store.Reminders.GetByID(ctx, 999); !errors.Is(err, entities.ErrReminderNotFound) {
			t.Fatalf("expected ErrReminderNotFound, got %v", err)
		}
	})
}

func TestReminderCompletion(t *testing.T) {
	forEachStore(t, func(t *testing.T, store *Store) {
		ctx := context.Background()
		p := createPlant(t, store, "Monstera")
		today := day("2026-02-18")

		r := &entities.Reminder{
			PlantID:   p.ID,
			CareType:  entities.CareTypeWatering,
			DueDate:   today,
			Status:    entities.ReminderStatusPending,
			CreatedAt: today,
		}
		if err := store.Reminders.Create(ctx, r); err != nil {
			t.Fatalf("create reminder: %v", err)
		}

		tr, err := care.DefaultPolicy().Complete(*r, p, today)
		if err != nil {
			t.Fatalf("complete: %v", err)
		}
		if err := store.Reminders.ApplyCompletion(ctx, &tr.Completed, tr.Successor); err != nil {
			t.Fatalf("apply completion: %v", err)
		}
		if tr.Successor.ID == 0 {
			t.Fatalf("successor id not assigned")
		}

		// a stale copy of the pending reminder must not spawn a second successor
		tr2, err := care.DefaultPolicy().Complete(*r, p, today)
		if err != nil {
			t.Fatalf("complete stale copy: %v", err)
		}
		if err := store.Reminders.ApplyCompletion(ctx, &tr2.Completed, tr2.Successor); !errors.Is(err, entities.ErrAlreadyCompleted) {
			t.Fatalf("expected ErrAlreadyCompleted, got %v", err)
		}

		all, err := store.Reminders.List(ctx, ports.ReminderFilter{})
		if err != nil {
			t.Fatalf("list reminders: %v", err)
		}
		if len(all) != 2 {
			t.Fatalf("expected 2 reminders, got %d", len(all))
		}
		if !all[0].IsCompleted() || all[0].CompletedAt == nil || care.DateKey(*all[0].CompletedAt) != "2026-02-18" {
			t.Fatalf("unexpected completed reminder %+v", all[0])
		}
		if !all[1].IsPending() || care.DateKey(all[1].DueDate) != "2026-02-25" {
			t.Fatalf("unexpected successor %+v", all[1])
		}
		if all[1].PredecessorID == nil || *all[1].PredecessorID != r.ID {
			t.Fatalf("successor not linked to predecessor: %+v", all[1])
		}

		pending := entities.ReminderStatusPending
		open, err := store.Reminders.List(ctx, ports.ReminderFilter{Status: &pending, PlantID: &p.ID})
		if err != nil {
			t.Fatalf("list pending: %v", err)
		}
		if len(open) != 1 {
			t.Fatalf("expected one pending reminder, got %d", len(open))
		}

		missing := entities.Reminder{ID: 999}
		if err := store.Reminders.ApplyCompletion(ctx, &missing, nil); !errors.Is(err, entities.ErrReminderNotFound) {
			t.Fatalf("expected ErrReminderNotFound, got %v", err)
		}
	})
}

func TestJournalStore(t *testing.T) {
	forEachStore(t, func(t *testing.T, store *Store) {
		ctx := context.Background()
		p := createPlant(t, store, "Monstera")
		other := createPlant(t, store, "Aloe")
		created := time.Date(2026, 2, 18, 12, 0, 0, 0, testLoc)

		entries := []*entities.JournalEntry{
			{PlantID: p.ID, Tag: "growth", Text: "new leaf", EntryDate: day("2026-02-10"), CreatedAt: created},
			{PlantID: p.ID, Tag: "pest", Text: "spider mites", EntryDate: day("2026-02-15"), CreatedAt: created},
			{PlantID: other.ID, Tag: "bloom", Text: "flower spike", EntryDate: day("2026-02-12"), CreatedAt: created},
		}
		for _, e := range entries {
			if err := store.Journal.Create(ctx, e); err != nil {
				t.Fatalf("create entry: %v", err)
			}
		}
		if err := store.Journal.Create(ctx, &entities.JournalEntry{PlantID: 999, Tag: "x", EntryDate: created}); !errors.Is(err, entities.ErrPlantNotFound) {
			t.Fatalf("expected ErrPlantNotFound, got %v", err)
		}

		mine, err := store.Journal.List(ctx, ports.JournalFilter{PlantID: &p.ID})
		if err != nil {
			t.Fatalf("list entries: %v", err)
		}
		if len(mine) != 2 || mine[0].Tag != "pest" || mine[0].PlantName != "Monstera" {
			t.Fatalf("unexpected entries %+v", mine)
		}

		all, err := store.Journal.List(ctx, ports.JournalFilter{})
		if err != nil {
			t.Fatalf("list all entries: %v", err)
		}
		if len(all) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(all))
		}
	})
}
