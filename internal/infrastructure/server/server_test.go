package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/plantcare/core/internal/adapters/cache"
	"github.com/plantcare/core/internal/adapters/repository"
	"github.com/plantcare/core/internal/application/services"
	"github.com/plantcare/core/internal/domain/care"
	"github.com/plantcare/core/internal/infrastructure/config"
	"github.com/plantcare/core/internal/infrastructure/logger"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := &config.Config{
		App:      config.AppConfig{Name: "PlantCare", Version: "test", Environment: "test"},
		Database: config.DatabaseConfig{Driver: config.DriverMemory},
		Security: config.SecurityConfig{CORSAllowedOrigins: "*"},
		Metrics:  config.MetricsConfig{Enabled: true},
	}
	settings := services.Settings{
		Clock:  care.FixedClock{At: time.Date(2026, 2, 18, 10, 0, 0, 0, time.UTC)},
		Locale: care.English,
		Policy: care.DefaultPolicy(),
	}

	srv, err := New(cfg, Dependencies{
		Store:    repository.NewMemoryStore(),
		Cache:    cache.Noop{},
		Settings: settings,
	}, logger.NewNop())
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return srv
}

func do(t *testing.T, srv *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dest); err != nil {
		t.Fatalf("decode %s: %v", rec.Body.String(), err)
	}
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}

type idResponse struct {
	ID int64 `json:"id"`
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	expectStatus(t, do(t, srv, http.MethodGet, "/health", nil), http.StatusOK)
	expectStatus(t, do(t, srv, http.MethodGet, "/ready", nil), http.StatusOK)

	rec := do(t, srv, http.MethodGet, "/health/detailed", nil)
	expectStatus(t, rec, http.StatusOK)
	if !strings.Contains(rec.Body.String(), `"driver":"memory"`) {
		t.Fatalf("expected memory driver in health report: %s", rec.Body.String())
	}
}

func TestPlantWateringFlow(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/api/v1/plants", map[string]interface{}{
		"name":                 "Monstera",
		"water_frequency_days": 7,
		"last_watered":         "2026-02-11",
	})
	expectStatus(t, rec, http.StatusCreated)
	var plant struct {
		ID        int64  `json:"id"`
		NextWater string `json:"next_water"`
	}
	decode(t, rec, &plant)
	if !strings.HasPrefix(plant.NextWater, "2026-02-18") {
		t.Fatalf("expected next water on 2026-02-18, got %q", plant.NextWater)
	}

	rec = do(t, srv, http.MethodGet, "/api/v1/plants", nil)
	expectStatus(t, rec, http.StatusOK)
	var list struct {
		Data []struct {
			Name    string `json:"name"`
			Urgency string `json:"urgency"`
			Urgent  bool   `json:"urgent"`
			Label   string `json:"water_label"`
		} `json:"data"`
		Total int `json:"total"`
	}
	decode(t, rec, &list)
	if list.Total != 1 || list.Data[0].Urgency != "due_today" || !list.Data[0].Urgent || list.Data[0].Label != "Today" {
		t.Fatalf("unexpected plant list %+v", list)
	}

	rec = do(t, srv, http.MethodPost, "/api/v1/plants/1/water", nil)
	expectStatus(t, rec, http.StatusOK)
	decode(t, rec, &plant)
	if !strings.HasPrefix(plant.NextWater, "2026-02-25") {
		t.Fatalf("expected next water on 2026-02-25, got %q", plant.NextWater)
	}

	rec = do(t, srv, http.MethodPost, "/api/v1/plants/1/water", map[string]string{"date": "2026-02-19"})
	expectStatus(t, rec, http.StatusBadRequest)

	expectStatus(t, do(t, srv, http.MethodGet, "/api/v1/plants/99", nil), http.StatusNotFound)
	expectStatus(t, do(t, srv, http.MethodGet, "/api/v1/plants/abc", nil), http.StatusBadRequest)
	expectStatus(t, do(t, srv, http.MethodPatch, "/api/v1/plants/1", map[string]int{"water_frequency_days": -2}), http.StatusBadRequest)
}

func TestCreatePlantValidation(t *testing.T) {
	srv := newTestServer(t)

	cases := []map[string]interface{}{
		{"species": "Monstera deliciosa"},
		{"name": "Fern", "last_watered": "18/02/2026"},
		{"name": "Fern", "humidity": 140},
		{"name": "Fern", "water_frequency_days": 0, "humidity": 0, "last_watered": "2026-02-11"},
		{"name": "Fern", "water_frequency_days": -1},
	}
	for _, body := range cases {
		expectStatus(t, do(t, srv, http.MethodPost, "/api/v1/plants", body), http.StatusBadRequest)
	}
}

func TestReminderCompletionFlow(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/api/v1/plants", map[string]interface{}{
		"name":                 "Fern",
		"water_frequency_days": 7,
	})
	expectStatus(t, rec, http.StatusCreated)
	var plant idResponse
	decode(t, rec, &plant)

	rec = do(t, srv, http.MethodPost, "/api/v1/reminders", map[string]interface{}{
		"plant_id": plant.ID,
		"type":     "watering",
		"due_date": "2026-02-17",
	})
	expectStatus(t, rec, http.StatusCreated)
	var reminder idResponse
	decode(t, rec, &reminder)

	rec = do(t, srv, http.MethodGet, "/api/v1/reminders/feed", nil)
	expectStatus(t, rec, http.StatusOK)
	var feed struct {
		Today string `json:"today"`
		Items []struct {
			ID      int64  `json:"id"`
			Urgency string `json:"urgency"`
			Label   string `json:"time_label"`
		} `json:"items"`
		UrgentCount int `json:"urgent_count"`
	}
	decode(t, rec, &feed)
	if feed.Today != "2026-02-18" || feed.UrgentCount != 1 || len(feed.Items) != 1 {
		t.Fatalf("unexpected feed %+v", feed)
	}
	if feed.Items[0].Urgency != "overdue" || feed.Items[0].Label != "17 Feb" {
		t.Fatalf("unexpected feed item %+v", feed.Items[0])
	}

	path := "/api/v1/reminders/" + strconv.FormatInt(reminder.ID, 10) + "/complete"
	rec = do(t, srv, http.MethodPost, path, nil)
	expectStatus(t, rec, http.StatusOK)
	var completion struct {
		Completed struct {
			Status string `json:"status"`
		} `json:"completed"`
		Successor *struct {
			ID            int64  `json:"id"`
			DueDate       string `json:"due_date"`
			PredecessorID int64  `json:"predecessor_id"`
		} `json:"successor"`
		Reminders []idResponse `json:"reminders"`
	}
	decode(t, rec, &completion)
	if completion.Completed.Status != "completed" || completion.Successor == nil {
		t.Fatalf("unexpected completion %+v", completion)
	}
	if !strings.HasPrefix(completion.Successor.DueDate, "2026-02-25") || completion.Successor.PredecessorID != reminder.ID {
		t.Fatalf("unexpected successor %+v", completion.Successor)
	}
	if len(completion.Reminders) != 2 {
		t.Fatalf("expected 2 reminders after completion, got %d", len(completion.Reminders))
	}

	expectStatus(t, do(t, srv, http.MethodPost, path, nil), http.StatusConflict)
	expectStatus(t, do(t, srv, http.MethodPost, "/api/v1/reminders/404/complete", nil), http.StatusNotFound)

	rec = do(t, srv, http.MethodGet, "/api/v1/reminders?status=all", nil)
	expectStatus(t, rec, http.StatusOK)
	var all struct {
		Total int `json:"total"`
	}
	decode(t, rec, &all)
	if all.Total != 2 {
		t.Fatalf("expected exactly one successor, got %d reminders", all.Total)
	}

	expectStatus(t, do(t, srv, http.MethodGet, "/api/v1/reminders?status=done", nil), http.StatusBadRequest)
}

func TestCalendarEndpoints(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/api/v1/plants", map[string]interface{}{
		"name":         "Cactus",
		"last_watered": "2026-02-11",
	})
	expectStatus(t, rec, http.StatusCreated)

	rec = do(t, srv, http.MethodGet, "/api/v1/calendar/2026/2", nil)
	expectStatus(t, rec, http.StatusOK)
	var month struct {
		MonthName     string `json:"month_name"`
		LeadingBlanks int    `json:"leading_blanks"`
		Days          []struct {
			Date   string        `json:"date"`
			Events []interface{} `json:"events"`
		} `json:"days"`
	}
	decode(t, rec, &month)
	if len(month.Days) != 28 || month.MonthName != "February" || month.LeadingBlanks != 6 {
		t.Fatalf("unexpected month %+v", month)
	}
	if month.Days[17].Date != "2026-02-18" || len(month.Days[17].Events) != 1 {
		t.Fatalf("expected the default 7-day schedule on the 18th, got %+v", month.Days[17])
	}

	expectStatus(t, do(t, srv, http.MethodGet, "/api/v1/calendar/2026/2/18", nil), http.StatusOK)
	expectStatus(t, do(t, srv, http.MethodGet, "/api/v1/calendar/2026/2/30", nil), http.StatusBadRequest)
	expectStatus(t, do(t, srv, http.MethodGet, "/api/v1/calendar/2026/13", nil), http.StatusBadRequest)

	rec = do(t, srv, http.MethodGet, "/api/v1/care-types", nil)
	expectStatus(t, rec, http.StatusOK)
	var types []struct {
		Type  string `json:"type"`
		Label string `json:"label"`
	}
	decode(t, rec, &types)
	if len(types) != 5 || types[0].Label != "Watering" {
		t.Fatalf("unexpected care types %+v", types)
	}
}

func TestJournalEndpoints(t *testing.T) {
	srv := newTestServer(t)

	expectStatus(t, do(t, srv, http.MethodPost, "/api/v1/plants", map[string]string{"name": "Fern"}), http.StatusCreated)

	rec := do(t, srv, http.MethodPost, "/api/v1/journal", map[string]interface{}{
		"plant_id": 1,
		"tag":      "growth",
		"text":     "new frond",
	})
	expectStatus(t, rec, http.StatusCreated)

	expectStatus(t, do(t, srv, http.MethodPost, "/api/v1/journal", map[string]interface{}{"plant_id": 9, "tag": "x"}), http.StatusNotFound)

	rec = do(t, srv, http.MethodGet, "/api/v1/journal?plant_id=1", nil)
	expectStatus(t, rec, http.StatusOK)
	var list struct {
		Total int `json:"total"`
	}
	decode(t, rec, &list)
	if list.Total != 1 {
		t.Fatalf("expected 1 journal entry, got %d", list.Total)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	expectStatus(t, do(t, srv, http.MethodPost, "/api/v1/plants", map[string]string{"name": "Fern"}), http.StatusCreated)
	expectStatus(t, do(t, srv, http.MethodPost, "/api/v1/plants/1/water", nil), http.StatusOK)

	rec := do(t, srv, http.MethodGet, "/metrics", nil)
	expectStatus(t, rec, http.StatusOK)
	body := rec.Body.String()
	for _, name := range []string{"plantcare_waterings_recorded_total 1", "http_requests_total"} {
		if !strings.Contains(body, name) {
			t.Fatalf("metrics output missing %q", name)
		}
	}
}
