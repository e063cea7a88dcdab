package care

import (
	"sort"
	"time"

	"github.com/plantcare/core/internal/domain/entities"
)

// FeedItem is a pending reminder annotated for display at read time
type FeedItem struct {
	entities.Reminder
	Urgency  Urgency `json:"urgency"`
	IsUrgent bool    `json:"urgent"`
	Label    string  `json:"time_label"`
}

// BuildFeed annotates pending reminders against today and orders them overdue
// first, then due today, then upcoming. Within a group items are sorted by due
// date, then creation time, then ID, so equal inputs always give equal output.
func BuildFeed(reminders []entities.Reminder, today time.Time, locale Locale) []FeedItem {
	feed := make([]FeedItem, 0, len(reminders))
	for _, r := range reminders {
		if !r.IsPending() {
			continue
		}
		due := r.DueDate
		u := Classify(&due, today)
		feed = append(feed, FeedItem{
			Reminder: r,
			Urgency:  u,
			IsUrgent: u.IsUrgent(),
			Label:    locale.FormatLabel(&due, today),
		})
	}

	sort.SliceStable(feed, func(i, j int) bool {
		a, b := feed[i], feed[j]
		if ra, rb := a.Urgency.rank(), b.Urgency.rank(); ra != rb {
			return ra < rb
		}
		if d := DaysBetween(a.DueDate, b.DueDate); d != 0 {
			return d > 0
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
	return feed
}

// UrgentCount counts feed entries that are overdue or due today
func UrgentCount(feed []FeedItem) int {
	n := 0
	for _, item := range feed {
		if item.IsUrgent {
			n++
		}
	}
	return n
}
