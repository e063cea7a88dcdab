package care

import (
	"testing"
	"time"

	"github.com/plantcare/core/internal/domain/entities"
)

func TestBuildMonthFebruary(t *testing.T) {
	event := CareEvent{
		Kind:     EventKindReminder,
		CareType: entities.CareTypeWatering,
		PlantID:  1,
		DueDate:  time.Date(2026, 2, 18, 17, 30, 0, 0, time.UTC),
	}
	days := BuildMonth([]CareEvent{event}, 2026, time.February)

	if len(days) != 28 {
		t.Fatalf("expected 28 buckets, got %d", len(days))
	}
	for _, d := range days {
		if d.Events == nil {
			t.Fatalf("day %d has nil events", d.Day)
		}
		if d.Day == 18 {
			if len(d.Events) != 1 {
				t.Fatalf("day 18: expected 1 event, got %d", len(d.Events))
			}
			if d.Date != "2026-02-18" || d.Weekday != "Wednesday" {
				t.Fatalf("day 18: unexpected header %s %s", d.Date, d.Weekday)
			}
			continue
		}
		if len(d.Events) != 0 {
			t.Fatalf("day %d: expected no events, got %d", d.Day, len(d.Events))
		}
	}
}

func TestBuildMonthPartition(t *testing.T) {
	var events []CareEvent
	types := []entities.CareType{entities.CareTypeWatering, entities.CareTypeMisting, entities.CareTypePruning}
	for i := 0; i < 60; i++ {
		events = append(events, CareEvent{
			Kind:     EventKindSchedule,
			CareType: types[i%len(types)],
			PlantID:  int64(i%4 + 1),
			DueDate:  time.Date(2026, 3, 1+i%31, 9, 0, 0, 0, time.UTC),
		})
	}
	// outside the month
	events = append(events, CareEvent{DueDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)})
	events = append(events, CareEvent{DueDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)})

	days := BuildMonth(events, 2026, time.March)
	if len(days) != 31 {
		t.Fatalf("expected 31 buckets, got %d", len(days))
	}

	total := 0
	for _, d := range days {
		total += len(d.Events)
		for i, e := range d.Events {
			if e.DueDate.Day() != d.Day || e.DueDate.Month() != time.March {
				t.Fatalf("event %+v placed on day %d", e, d.Day)
			}
			if i > 0 {
				prev := d.Events[i-1]
				if prev.CareType > e.CareType || (prev.CareType == e.CareType && prev.PlantID > e.PlantID) {
					t.Fatalf("day %d events not ordered: %+v before %+v", d.Day, prev, e)
				}
			}
		}
	}
	if total != 60 {
		t.Fatalf("expected 60 bucketed events, got %d", total)
	}
}

func TestSelectDay(t *testing.T) {
	days := BuildMonth(nil, 2026, time.February)
	d, ok := SelectDay(days, 28)
	if !ok || d.Date != "2026-02-28" {
		t.Fatalf("unexpected day %+v", d)
	}
	if _, ok := SelectDay(days, 29); ok {
		t.Fatalf("day 29 should not exist in february 2026")
	}
	if _, ok := SelectDay(days, 0); ok {
		t.Fatalf("day 0 should not exist")
	}
}

func TestLeadingBlanks(t *testing.T) {
	// 2026-02-01 is a Sunday, 2026-06-01 a Monday
	if n := LeadingBlanks(2026, time.February); n != 6 {
		t.Fatalf("february 2026: expected 6, got %d", n)
	}
	if n := LeadingBlanks(2026, time.June); n != 0 {
		t.Fatalf("june 2026: expected 0, got %d", n)
	}
}
