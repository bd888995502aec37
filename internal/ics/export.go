// Package ics renders records as an iCalendar feed so the history can be
// imported into a regular calendar application.
package ics

import (
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/melusiness/tamstar/internal/track"
)

const (
	// EventSummary is the title each record exports under.
	EventSummary = "Replacement"

	// NextSummary titles the projected next-change event.
	NextSummary = "Next change due"

	nextEventUID = "next-change@tamstar"
)

// Export serializes records as an iCalendar document: one event per record,
// plus a projected next-change event once the history defines an average
// interval. now stamps the created and last-modified fields, so output is
// deterministic for a given input.
func Export(records []track.Record, now time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	sorted := track.SortedByTime(records)
	for _, r := range sorted {
		event := cal.AddEvent(r.ID)
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetModifiedAt(now)
		event.SetStartAt(r.LoggedAt)
		event.SetEndAt(r.LoggedAt)
		event.SetSummary(EventSummary)
	}

	if _, ok := track.AverageIntervalMinutes(sorted); ok {
		next := track.NextSuggestedTime(sorted, 0, now)
		event := cal.AddEvent(nextEventUID)
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetModifiedAt(now)
		event.SetStartAt(next)
		event.SetEndAt(next)
		event.SetSummary(NextSummary)
	}

	return cal.Serialize()
}
