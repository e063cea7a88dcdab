package services

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/plantcare/core/internal/domain/entities"
)

const otherCareTypeLabel = "other"

// Metrics holds the care counters exported on /metrics. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	remindersCreated   *prometheus.CounterVec
	remindersCompleted *prometheus.CounterVec
	successorsSpawned  *prometheus.CounterVec
	waterings          prometheus.Counter
	journalEntries     prometheus.Counter
}

// NewMetrics creates the care counters and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		remindersCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "plantcare_reminders_created_total",
				Help: "Reminders created manually, by care type",
			},
			[]string{"type"},
		),
		remindersCompleted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "plantcare_reminders_completed_total",
				Help: "Reminders moved to completed, by care type",
			},
			[]string{"type"},
		),
		successorsSpawned: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "plantcare_reminder_successors_total",
				Help: "Follow-up reminders scheduled by recurring care, by care type",
			},
			[]string{"type"},
		),
		waterings: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "plantcare_waterings_recorded_total",
			Help: "Watering actions recorded against plants",
		}),
		journalEntries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "plantcare_journal_entries_total",
			Help: "Journal entries created",
		}),
	}

	reg.MustRegister(m.remindersCreated, m.remindersCompleted, m.successorsSpawned, m.waterings, m.journalEntries)
	return m
}

func (m *Metrics) reminderCreated(t entities.CareType) {
	if m == nil {
		return
	}
	m.remindersCreated.WithLabelValues(careTypeLabel(t)).Inc()
}

func (m *Metrics) reminderCompleted(t entities.CareType, spawned bool) {
	if m == nil {
		return
	}
	m.remindersCompleted.WithLabelValues(careTypeLabel(t)).Inc()
	if spawned {
		m.successorsSpawned.WithLabelValues(careTypeLabel(t)).Inc()
	}
}

func (m *Metrics) wateringRecorded() {
	if m == nil {
		return
	}
	m.waterings.Inc()
}

func (m *Metrics) journalEntryCreated() {
	if m == nil {
		return
	}
	m.journalEntries.Inc()
}

// careTypeLabel folds client-defined tags into "other" to keep the label set bounded
func careTypeLabel(t entities.CareType) string {
	for _, known := range entities.KnownCareTypes {
		if t == known {
			return string(t)
		}
	}
	return otherCareTypeLabel
}
