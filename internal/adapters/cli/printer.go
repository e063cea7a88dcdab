// Package cli renders care data for the terminal.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/plantcare/core/internal/domain/care"
	"github.com/plantcare/core/internal/ports"
)

var (
	bold      = color.New(color.Bold).SprintFunc()
	underline = color.New(color.Underline).SprintFunc()
	overdue   = color.New(color.FgRed, color.Bold).SprintFunc()
	dueToday  = color.New(color.FgYellow).SprintFunc()
	upcoming  = color.New(color.FgGreen).SprintFunc()
)

// Printer writes feeds and calendars as aligned tables
type Printer struct {
	out    io.Writer
	locale care.Locale
}

// NewPrinter creates a printer writing to out, or to color.Output when out is nil
func NewPrinter(out io.Writer, locale care.Locale) *Printer {
	if out == nil {
		out = color.Output
	}
	return &Printer{out: out, locale: locale}
}

// Feed prints the reminder feed, urgent items first
func (p *Printer) Feed(feed *ports.FeedResponse) {
	_, _ = fmt.Fprintln(p.out, underline(bold(fmt.Sprintf("Reminders for %s", feed.Today))))

	if len(feed.Items) == 0 {
		_, _ = fmt.Fprintln(p.out, "Nothing to do.")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("When"), bold("Plant"), bold("Care"), bold("ID"))
	for _, item := range feed.Items {
		tbl.AddRow(
			colorize(item.Urgency, item.Label),
			strings.TrimSpace(item.PlantEmoji+" "+item.PlantName),
			care.Describe(item.CareType).Label(p.locale.Code),
			item.ID,
		)
	}
	_, _ = fmt.Fprintln(p.out, tbl)
	_, _ = fmt.Fprintf(p.out, "%d urgent of %d\n", feed.UrgentCount, len(feed.Items))
}

// Plants prints plants with their watering label
func (p *Printer) Plants(plants []ports.PlantSummary) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("ID"), bold("Plant"), bold("Every"), bold("Next water"))
	for _, s := range plants {
		tbl.AddRow(
			s.ID,
			strings.TrimSpace(s.Emoji+" "+s.Name),
			fmt.Sprintf("%dd", s.WateringIntervalDays),
			colorize(s.Urgency, s.Label),
		)
	}
	_, _ = fmt.Fprintln(p.out, tbl)
}

// Month prints a Monday-first grid with per-day event counts, followed by the
// event list of every day that has events.
func (p *Printer) Month(view *ports.MonthView) {
	_, _ = fmt.Fprintln(p.out, underline(bold(fmt.Sprintf("%s %d", view.MonthName, view.Year))))
	_, _ = fmt.Fprintln(p.out, "  Mo    Tu    We    Th    Fr    Sa    Su")

	var line strings.Builder
	cell := 0
	for ; cell < view.LeadingBlanks; cell++ {
		line.WriteString("      ")
	}
	for _, d := range view.Days {
		line.WriteString(dayCell(d))
		cell++
		if cell%7 == 0 {
			_, _ = fmt.Fprintln(p.out, strings.TrimRight(line.String(), " "))
			line.Reset()
		}
	}
	if line.Len() > 0 {
		_, _ = fmt.Fprintln(p.out, strings.TrimRight(line.String(), " "))
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	rows := 0
	for _, d := range view.Days {
		for _, e := range d.Events {
			tbl.AddRow(d.Date, string(e.Kind), strings.TrimSpace(e.PlantEmoji+" "+e.PlantName), care.Describe(e.CareType).Label(p.locale.Code))
			rows++
		}
	}
	if rows == 0 {
		return
	}
	_, _ = fmt.Fprintln(p.out)
	_, _ = fmt.Fprintln(p.out, tbl)
}

// dayCell is six columns wide: day number plus an event count
func dayCell(d care.CalendarDay) string {
	if len(d.Events) == 0 {
		return fmt.Sprintf("%4d  ", d.Day)
	}
	return fmt.Sprintf("%4d%-2s", d.Day, fmt.Sprintf("*%d", len(d.Events)))
}

func colorize(u care.Urgency, label string) string {
	switch u {
	case care.UrgencyOverdue:
		return overdue(label)
	case care.UrgencyDueToday:
		return dueToday(label)
	case care.UrgencyUpcoming:
		return upcoming(label)
	default:
		return label
	}
}
