package care

import (
	"errors"
	"testing"
	"time"

	"github.com/plantcare/core/internal/domain/entities"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s, time.UTC)
	if err != nil {
		t.Fatalf("parse %s: %v", s, err)
	}
	return d
}

func wateredPlant(t *testing.T, lastWatered string, interval int) entities.Plant {
	t.Helper()
	p := entities.Plant{ID: 1, Name: "Monstera"}
	p.WateringIntervalDays = interval
	if lastWatered != "" {
		lw := date(t, lastWatered)
		p.LastWatered = &lw
	}
	return WithNextWater(p)
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2026, 2, 18, 23, 59, 0, 0, time.UTC)
	b := time.Date(2026, 2, 18, 0, 1, 0, 0, time.UTC)
	if got := DaysBetween(a, b); got != 0 {
		t.Fatalf("same day with different times: got %d", got)
	}
	if got := DaysBetween(a, a); got != 0 {
		t.Fatalf("daysBetween(a, a) = %d", got)
	}
	if got := DaysBetween(date(t, "2026-02-20"), date(t, "2026-02-18")); got != -2 {
		t.Fatalf("expected -2, got %d", got)
	}
	if got := DaysBetween(date(t, "2025-12-31"), date(t, "2026-03-01")); got != 60 {
		t.Fatalf("expected 60 across year boundary, got %d", got)
	}
}

func TestDaysBetweenAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("timezone data unavailable: %v", err)
	}
	// Clocks move forward on 2026-03-29 in Berlin.
	a := time.Date(2026, 3, 28, 12, 0, 0, 0, loc)
	b := AddDays(a, 2)
	if b.Day() != 30 || b.Hour() != 0 {
		t.Fatalf("unexpected AddDays result %v", b)
	}
	if got := DaysBetween(a, b); got != 2 {
		t.Fatalf("expected 2 days across DST, got %d", got)
	}
}

func TestAddDays(t *testing.T) {
	start := time.Date(2026, 2, 11, 15, 30, 0, 0, time.UTC)
	cases := []struct {
		n    int
		want string
	}{
		{0, "2026-02-11"},
		{7, "2026-02-18"},
		{-11, "2026-01-31"},
		{18, "2026-03-01"},
	}
	for _, c := range cases {
		got := AddDays(start, c.n)
		if DateKey(got) != c.want {
			t.Fatalf("AddDays(%d): expected %s, got %s", c.n, c.want, DateKey(got))
		}
		if !got.Equal(StartOfDay(got)) {
			t.Fatalf("AddDays(%d) kept time of day: %v", c.n, got)
		}
	}
}

func TestDaysIn(t *testing.T) {
	if n := DaysIn(2026, time.February); n != 28 {
		t.Fatalf("feb 2026: %d", n)
	}
	if n := DaysIn(2028, time.February); n != 29 {
		t.Fatalf("feb 2028: %d", n)
	}
	if n := DaysIn(2026, time.December); n != 31 {
		t.Fatalf("dec 2026: %d", n)
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	if _, err := ParseDate("2026-02-30", time.UTC); !errors.Is(err, entities.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestNextDueDate(t *testing.T) {
	next, err := NextDueDate(nil, 7)
	if err != nil {
		t.Fatalf("nil last action: %v", err)
	}
	if next != nil {
		t.Fatalf("expected no schedule without a last action, got %v", next)
	}

	for _, interval := range []int{0, -3} {
		last := date(t, "2026-02-11")
		if _, err := NextDueDate(&last, interval); !errors.Is(err, entities.ErrInvalidInterval) {
			t.Fatalf("interval %d: expected ErrInvalidInterval, got %v", interval, err)
		}
	}

	base := date(t, "2026-02-11")
	for interval := 1; interval <= 400; interval += 13 {
		got, err := NextDueDate(&base, interval)
		if err != nil {
			t.Fatalf("interval %d: %v", interval, err)
		}
		if !got.Equal(AddDays(base, interval)) {
			t.Fatalf("interval %d: expected %v, got %v", interval, AddDays(base, interval), got)
		}
		if d := DaysBetween(base, *got); d != interval {
			t.Fatalf("interval %d: daysBetween = %d", interval, d)
		}
	}
}

func TestRecordAction(t *testing.T) {
	clock := FixedClock{At: time.Date(2026, 2, 18, 10, 0, 0, 0, time.UTC)}
	p := wateredPlant(t, "", 7)
	if p.NextWater != nil {
		t.Fatalf("new plant should have no next water date")
	}

	updated, err := RecordAction(p, time.Date(2026, 2, 18, 8, 45, 0, 0, time.UTC), clock)
	if err != nil {
		t.Fatalf("record action: %v", err)
	}
	if DateKey(*updated.LastWatered) != "2026-02-18" {
		t.Fatalf("unexpected last watered %v", updated.LastWatered)
	}
	if DateKey(*updated.NextWater) != "2026-02-25" {
		t.Fatalf("unexpected next water %v", updated.NextWater)
	}
	if p.LastWatered != nil {
		t.Fatalf("input plant was modified")
	}
}

func TestRecordActionRejects(t *testing.T) {
	clock := FixedClock{At: time.Date(2026, 2, 18, 10, 0, 0, 0, time.UTC)}

	p := wateredPlant(t, "2026-02-11", 7)
	if _, err := RecordAction(p, date(t, "2026-02-19"), clock); !errors.Is(err, entities.ErrInvalidActionDate) {
		t.Fatalf("future date: expected ErrInvalidActionDate, got %v", err)
	}

	bad := wateredPlant(t, "2026-02-11", 0)
	got, err := RecordAction(bad, date(t, "2026-02-18"), clock)
	if !errors.Is(err, entities.ErrInvalidInterval) {
		t.Fatalf("zero interval: expected ErrInvalidInterval, got %v", err)
	}
	if DateKey(*got.LastWatered) != "2026-02-11" {
		t.Fatalf("rejected action mutated the plant: %v", got.LastWatered)
	}
}

func TestWateringScenarios(t *testing.T) {
	p := wateredPlant(t, "2026-02-11", 7)
	if DateKey(*p.NextWater) != "2026-02-18" {
		t.Fatalf("expected next water 2026-02-18, got %v", p.NextWater)
	}

	cases := []struct {
		today   string
		urgency Urgency
		label   string
	}{
		{"2026-02-18", UrgencyDueToday, "Today"},
		{"2026-02-20", UrgencyOverdue, "18 Feb"},
		{"2026-02-17", UrgencyUpcoming, "Tomorrow"},
	}
	for _, c := range cases {
		today := date(t, c.today)
		if got := Classify(p.NextWater, today); got != c.urgency {
			t.Fatalf("today %s: expected %s, got %s", c.today, c.urgency, got)
		}
		if got := FormatLabel(p.NextWater, today); got != c.label {
			t.Fatalf("today %s: expected label %q, got %q", c.today, c.label, got)
		}
	}
}
