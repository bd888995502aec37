// Package calendar builds the month grid used by the calendar views: a
// rectangle of weeks where each cell is either a day of the month or a
// blank filling the edges.
package calendar

import (
	"fmt"
	"strings"
	"time"
)

// Cell is one slot in the grid: a day of the month, or 0 for a blank.
type Cell int

func (c Cell) Blank() bool { return c == 0 }

func (c Cell) Day() int { return int(c) }

// Week is one grid row.
type Week [7]Cell

// Month names a calendar month.
type Month struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

func (m Month) String() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

// Add steps delta months forward or backward, carrying across year
// boundaries. Callers holding a selected day should clear it when the
// displayed month changes.
func (m Month) Add(delta int) Month {
	idx := m.Year*12 + int(m.Month) - 1 + delta
	year, rem := idx/12, idx%12
	if rem < 0 {
		rem += 12
		year--
	}
	return Month{Year: year, Month: time.Month(rem + 1)}
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// First returns midnight UTC on the first of the month.
func (m Month) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// BuildGrid lays the month out as weeks starting on weekStart. Leading cells
// before day 1 and trailing cells after the last day are blank, so every row
// holds exactly seven cells.
func BuildGrid(m Month, weekStart time.Weekday) []Week {
	leading := (int(m.First().Weekday()) - int(weekStart) + 7) % 7
	days := m.Days()

	cells := make([]Cell, 0, 42)
	for i := 0; i < leading; i++ {
		cells = append(cells, 0)
	}
	for d := 1; d <= days; d++ {
		cells = append(cells, Cell(d))
	}
	for len(cells)%7 != 0 {
		cells = append(cells, 0)
	}

	weeks := make([]Week, 0, len(cells)/7)
	for i := 0; i < len(cells); i += 7 {
		var w Week
		copy(w[:], cells[i:i+7])
		weeks = append(weeks, w)
	}
	return weeks
}

// MarksForMonth tallies how many of the given moments fall on each day of
// the month, with days resolved in loc. Days without a hit are absent from
// the map.
func MarksForMonth(times []time.Time, m Month, loc *time.Location) map[int]int {
	marks := make(map[int]int)
	for _, t := range times {
		y, mo, d := t.In(loc).Date()
		if y == m.Year && mo == m.Month {
			marks[d]++
		}
	}
	return marks
}

// ParseWeekStart maps a config value to the weekday a grid row begins on.
// Anything other than "monday" means Sunday.
func ParseWeekStart(s string) time.Weekday {
	if strings.EqualFold(strings.TrimSpace(s), "monday") {
		return time.Monday
	}
	return time.Sunday
}

// DayNames returns the seven column headers in grid order, abbreviated to
// two letters.
func DayNames(weekStart time.Weekday) []string {
	names := make([]string, 7)
	for i := 0; i < 7; i++ {
		wd := time.Weekday((int(weekStart) + i) % 7)
		names[i] = wd.String()[:2]
	}
	return names
}
