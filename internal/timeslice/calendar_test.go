package timeslice

import "testing"

func TestCalendarPartitions(t *testing.T) {
	totalDayHours := 0
	for d := 0; d < DaysPerYear; d++ {
		start, end := DayHours(d)
		if end-start != HoursPerDay {
			t.Errorf("day %d spans %d hours, want %d", d, end-start, HoursPerDay)
		}
		totalDayHours += end - start
	}
	if totalDayHours != HoursPerYear {
		t.Errorf("day partition covers %d hours, want %d", totalDayHours, HoursPerYear)
	}

	totalWeekHours := 0
	for w := 0; w < WeeksPerYear; w++ {
		start, end := WeekHours(w)
		totalWeekHours += end - start
	}
	if totalWeekHours != HoursPerYear {
		t.Errorf("week partition covers %d hours, want %d", totalWeekHours, HoursPerYear)
	}

	// Last week absorbs the remainder
	start, end := WeekHours(WeeksPerYear - 1)
	if end-start != 192 {
		t.Errorf("last week spans %d hours, want 192", end-start)
	}
	if end != HoursPerYear {
		t.Errorf("last week ends at %d, want %d", end, HoursPerYear)
	}
}

func TestMonthDayHour(t *testing.T) {
	tests := []struct {
		hour                  int
		month, day, hourOfDay int
	}{
		{0, 1, 1, 0},
		{23, 1, 1, 23},
		{24, 1, 2, 0},
		{31 * 24, 2, 1, 0},             // first hour of February
		{(31 + 28) * 24, 3, 1, 0},      // no leap day
		{8759, 12, 31, 23},             // last hour of the year
		{(31+28+31)*24 + 12, 4, 1, 12}, // midday April 1st
	}

	for _, tt := range tests {
		month, day, hourOfDay := MonthDayHour(tt.hour)
		if month != tt.month || day != tt.day || hourOfDay != tt.hourOfDay {
			t.Errorf("MonthDayHour(%d) = (%d,%d,%d), want (%d,%d,%d)",
				tt.hour, month, day, hourOfDay, tt.month, tt.day, tt.hourOfDay)
		}
	}
}

func TestMonthHoursCoverYear(t *testing.T) {
	covered := 0
	prevEnd := 0
	for m := 1; m <= 12; m++ {
		start, end := MonthHours(m)
		if start != prevEnd {
			t.Errorf("month %d starts at %d, want %d", m, start, prevEnd)
		}
		covered += end - start
		prevEnd = end
	}
	if covered != HoursPerYear {
		t.Errorf("months cover %d hours, want %d", covered, HoursPerYear)
	}
}

func TestSeasonOfMonth(t *testing.T) {
	tests := []struct {
		month  int
		season Season
	}{
		{12, SeasonWinter}, {1, SeasonWinter}, {2, SeasonWinter},
		{3, SeasonSpring}, {5, SeasonSpring},
		{6, SeasonSummer}, {8, SeasonSummer},
		{9, SeasonAutumn}, {11, SeasonAutumn},
	}
	for _, tt := range tests {
		if got := SeasonOfMonth(tt.month); got != tt.season {
			t.Errorf("SeasonOfMonth(%d) = %v, want %v", tt.month, got, tt.season)
		}
	}
}
