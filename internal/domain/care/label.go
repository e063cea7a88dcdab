package care

import (
	"fmt"
	"strings"
	"time"
)

// Locale holds the strings used to render due-date labels
type Locale struct {
	Code     string
	Today    string
	Tomorrow string
	NoDate   string
	// Months is indexed by zero-based month
	Months [12]string
}

var (
	English = Locale{
		Code:     "en",
		Today:    "Today",
		Tomorrow: "Tomorrow",
		NoDate:   "—",
		Months:   [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	}

	Russian = Locale{
		Code:     "ru",
		Today:    "Сегодня",
		Tomorrow: "Завтра",
		NoDate:   "—",
		Months:   [12]string{"янв", "фев", "мар", "апр", "мая", "июн", "июл", "авг", "сен", "окт", "ноя", "дек"},
	}

	locales = map[string]Locale{
		English.Code: English,
		Russian.Code: Russian,
	}
)

// LookupLocale returns the locale registered under code
func LookupLocale(code string) (Locale, bool) {
	l, ok := locales[strings.ToLower(strings.TrimSpace(code))]
	return l, ok
}

// FormatLabel renders the display label for a due date using the English locale
func FormatLabel(due *time.Time, today time.Time) string {
	return English.FormatLabel(due, today)
}

// FormatLabel renders "Today", "Tomorrow" or a day+month string.
// Output depends only on the arguments.
func (l Locale) FormatLabel(due *time.Time, today time.Time) string {
	if due == nil {
		return l.NoDate
	}
	switch DaysBetween(today, *due) {
	case 0:
		return l.Today
	case 1:
		return l.Tomorrow
	}
	return fmt.Sprintf("%d %s", due.Day(), l.Months[due.Month()-1])
}
