package calendar

import (
	"testing"
	"time"
)

func TestBuildGrid_LeadingBlanks(t *testing.T) {
	tests := []struct {
		name        string
		month       Month
		weekStart   time.Weekday
		wantLeading int
		wantWeeks   int
	}{
		// September 1 2024 is a Sunday
		{"month starting on the week start", Month{2024, time.September}, time.Sunday, 0, 5},
		// June 1 2024 is a Saturday
		{"month starting at the end of the week", Month{2024, time.June}, time.Sunday, 6, 6},
		// April 1 2024 is a Monday
		{"monday start aligned", Month{2024, time.April}, time.Monday, 0, 5},
		// With a Monday start, a Sunday the 1st needs six blanks
		{"monday start with sunday first", Month{2024, time.September}, time.Monday, 6, 6},
		// February 1 2024 is a Thursday, leap month
		{"leap february", Month{2024, time.February}, time.Sunday, 4, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weeks := BuildGrid(tt.month, tt.weekStart)

			if len(weeks) != tt.wantWeeks {
				t.Fatalf("expected %d weeks, got %d", tt.wantWeeks, len(weeks))
			}

			leading := 0
			for _, cell := range weeks[0] {
				if !cell.Blank() {
					break
				}
				leading++
			}
			if leading != tt.wantLeading {
				t.Errorf("expected %d leading blanks, got %d", tt.wantLeading, leading)
			}

			if weeks[0][tt.wantLeading].Day() != 1 {
				t.Errorf("expected day 1 after the blanks, got %d", weeks[0][tt.wantLeading].Day())
			}
		})
	}
}

func TestBuildGrid_EveryMonthIsRectangular(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		for _, weekStart := range []time.Weekday{time.Sunday, time.Monday} {
			m := Month{Year: 2024, Month: month}
			weeks := BuildGrid(m, weekStart)

			cells := 0
			day := 0
			for _, week := range weeks {
				for _, cell := range week {
					cells++
					if cell.Blank() {
						continue
					}
					day++
					if cell.Day() != day {
						t.Fatalf("%s weekStart=%d: expected day %d, got %d", m, weekStart, day, cell.Day())
					}
				}
			}

			if cells%7 != 0 {
				t.Errorf("%s weekStart=%d: %d cells is not a whole number of weeks", m, weekStart, cells)
			}
			if day != m.Days() {
				t.Errorf("%s weekStart=%d: expected %d days, got %d", m, weekStart, m.Days(), day)
			}
		}
	}
}

func TestBuildGrid_TrailingBlanksFillLastWeek(t *testing.T) {
	// June 2024: six leading blanks, 30 days, so day 30 opens the last week.
	weeks := BuildGrid(Month{2024, time.June}, time.Sunday)

	if len(weeks) != 6 {
		t.Fatalf("expected 6 weeks, got %d", len(weeks))
	}

	want := Week{30, 0, 0, 0, 0, 0, 0}
	if weeks[5] != want {
		t.Errorf("expected final week %v, got %v", want, weeks[5])
	}
}

func TestMonth_Days(t *testing.T) {
	tests := []struct {
		month Month
		want  int
	}{
		{Month{2024, time.February}, 29},
		{Month{2023, time.February}, 28},
		{Month{2024, time.April}, 30},
		{Month{2024, time.December}, 31},
	}

	for _, tt := range tests {
		if got := tt.month.Days(); got != tt.want {
			t.Errorf("%s: expected %d days, got %d", tt.month, tt.want, got)
		}
	}
}

func TestMonth_Add(t *testing.T) {
	tests := []struct {
		name  string
		month Month
		delta int
		want  Month
	}{
		{"forward within a year", Month{2024, time.June}, 2, Month{2024, time.August}},
		{"december rolls into the next year", Month{2024, time.December}, 1, Month{2025, time.January}},
		{"january rolls into the previous year", Month{2024, time.January}, -1, Month{2023, time.December}},
		{"more than a year forward", Month{2024, time.June}, 13, Month{2025, time.July}},
		{"more than two years back", Month{2024, time.June}, -25, Month{2022, time.May}},
		{"zero delta", Month{2024, time.June}, 0, Month{2024, time.June}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.month.Add(tt.delta); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestMonth_String(t *testing.T) {
	m := Month{2024, time.September}
	if got := m.String(); got != "September 2024" {
		t.Errorf("expected 'September 2024', got %q", got)
	}
}

func TestMonthOf(t *testing.T) {
	m := MonthOf(time.Date(2024, time.September, 15, 8, 0, 0, 0, time.UTC))
	if m != (Month{2024, time.September}) {
		t.Errorf("expected September 2024, got %v", m)
	}
}

func TestMarksForMonth_GroupsByLocalDay(t *testing.T) {
	loc := time.FixedZone("UTC-4", -4*60*60)

	times := []time.Time{
		// 22:00 local on June 30
		time.Date(2024, time.July, 1, 2, 0, 0, 0, time.UTC),
		// 08:00 local on July 1
		time.Date(2024, time.July, 1, 12, 0, 0, 0, time.UTC),
		// 09:00 local on July 1
		time.Date(2024, time.July, 1, 13, 0, 0, 0, time.UTC),
		// 08:00 local on July 15
		time.Date(2024, time.July, 15, 12, 0, 0, 0, time.UTC),
	}

	marks := MarksForMonth(times, Month{2024, time.July}, loc)

	if len(marks) != 2 {
		t.Fatalf("expected marks on 2 days, got %v", marks)
	}
	if marks[1] != 2 {
		t.Errorf("expected 2 on July 1, got %d", marks[1])
	}
	if marks[15] != 1 {
		t.Errorf("expected 1 on July 15, got %d", marks[15])
	}

	june := MarksForMonth(times, Month{2024, time.June}, loc)
	if june[30] != 1 {
		t.Errorf("expected the late UTC time to land on June 30 locally, got %v", june)
	}
}

func TestParseWeekStart(t *testing.T) {
	tests := []struct {
		in   string
		want time.Weekday
	}{
		{"monday", time.Monday},
		{"Monday", time.Monday},
		{" MONDAY ", time.Monday},
		{"sunday", time.Sunday},
		{"", time.Sunday},
		{"tuesday", time.Sunday},
	}

	for _, tt := range tests {
		if got := ParseWeekStart(tt.in); got != tt.want {
			t.Errorf("ParseWeekStart(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestDayNames(t *testing.T) {
	sunday := DayNames(time.Sunday)
	if sunday[0] != "Su" || sunday[6] != "Sa" {
		t.Errorf("expected Su..Sa, got %v", sunday)
	}

	monday := DayNames(time.Monday)
	if monday[0] != "Mo" || monday[6] != "Su" {
		t.Errorf("expected Mo..Su, got %v", monday)
	}
}
