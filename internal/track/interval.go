package track

import (
	"sort"
	"time"
)

// IntervalMinutes returns the whole minutes elapsed from a to b, rounded
// toward negative infinity. A gap of 90 seconds reports 1; a gap of minus
// 90 seconds reports -2.
func IntervalMinutes(a, b time.Time) int {
	d := b.Sub(a)
	mins := d / time.Minute
	if d%time.Minute != 0 && d < 0 {
		mins--
	}
	return int(mins)
}

// SortedByTime returns a copy of records ordered by timestamp, oldest first.
// Records sharing a timestamp keep their input order.
func SortedByTime(records []Record) []Record {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].LoggedAt.Before(sorted[j].LoggedAt)
	})
	return sorted
}

// Intervals returns the minute gaps between consecutive records of the
// already-sorted input. An input of n records yields n-1 gaps.
func Intervals(sorted []Record) []int {
	if len(sorted) < 2 {
		return nil
	}
	gaps := make([]int, 0, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		gaps = append(gaps, IntervalMinutes(sorted[i-1].LoggedAt, sorted[i].LoggedAt))
	}
	return gaps
}

// AverageIntervalMinutes reports the mean gap between consecutive records in
// whole minutes, truncated toward zero. The second return is false while
// fewer than two records exist, since no interval is defined yet.
func AverageIntervalMinutes(records []Record) (int, bool) {
	sorted := SortedByTime(records)
	if len(sorted) < 2 {
		return 0, false
	}
	total := 0
	for _, gap := range Intervals(sorted) {
		total += gap
	}
	return total / (len(sorted) - 1), true
}

// NextSuggestedTime projects when the next replacement is due. With at least
// two records it is the newest timestamp plus the average interval; with
// fewer it falls back to now plus fallbackHours.
func NextSuggestedTime(records []Record, fallbackHours float64, now time.Time) time.Time {
	avg, ok := AverageIntervalMinutes(records)
	if !ok {
		return now.Add(time.Duration(fallbackHours * float64(time.Hour)))
	}
	sorted := SortedByTime(records)
	last := sorted[len(sorted)-1]
	return last.LoggedAt.Add(time.Duration(avg) * time.Minute)
}

// OnDay filters records whose timestamp falls on the same calendar day as
// day, with both sides interpreted in loc.
func OnDay(records []Record, day time.Time, loc *time.Location) []Record {
	y, m, d := day.In(loc).Date()
	var out []Record
	for _, r := range records {
		ry, rm, rd := r.LoggedAt.In(loc).Date()
		if ry == y && rm == m && rd == d {
			out = append(out, r)
		}
	}
	return out
}

// DayReport summarizes one calendar day: the day's records in time order,
// the minute gap preceding each record after the first, the average gap when
// defined, and the projected next time. Everything derives from the records
// given; nothing here is persisted.
type DayReport struct {
	Records        []Record  `json:"records"`
	Intervals      []int     `json:"intervals"`
	AverageMinutes *int      `json:"average_minutes"`
	NextSuggested  time.Time `json:"next_suggested"`
}

// BuildDayReport derives a report from one day's records. AverageMinutes is
// nil while the day holds fewer than two records.
func BuildDayReport(records []Record, fallbackHours float64, now time.Time) DayReport {
	sorted := SortedByTime(records)
	report := DayReport{
		Records:       sorted,
		Intervals:     Intervals(sorted),
		NextSuggested: NextSuggestedTime(sorted, fallbackHours, now),
	}
	if avg, ok := AverageIntervalMinutes(sorted); ok {
		report.AverageMinutes = &avg
	}
	return report
}
