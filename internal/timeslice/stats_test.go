package timeslice

import (
	"math"
	"testing"
)

func TestDailyStats(t *testing.T) {
	cov := make(CoverageSeries, HoursPerYear)
	for h := range cov {
		cov[h] = 1.0
	}
	// Day 4 (hours 96..119): alternate 0.5 and 1.5 so mean stays 1.0 with
	// nonzero spread
	for h := 96; h < 120; h++ {
		if h%2 == 0 {
			cov[h] = 0.5
		} else {
			cov[h] = 1.5
		}
	}

	stats, err := DailyStats(cov)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stats) != DaysPerYear {
		t.Fatalf("got %d day stats, want %d", len(stats), DaysPerYear)
	}

	totalHours := 0
	for _, s := range stats {
		totalHours += s.Hours
		if s.MinCoverage > s.MeanCoverage || s.MeanCoverage > s.MaxCoverage {
			t.Errorf("day %d: min %v, mean %v, max %v violate ordering",
				s.Day, s.MinCoverage, s.MeanCoverage, s.MaxCoverage)
		}
	}
	if totalHours != HoursPerYear {
		t.Errorf("day stats cover %d hours, want %d", totalHours, HoursPerYear)
	}

	day4 := stats[4]
	if math.Abs(day4.MeanCoverage-1.0) > 1e-12 {
		t.Errorf("day 4 mean = %v, want 1.0", day4.MeanCoverage)
	}
	if day4.MinCoverage != 0.5 || day4.MaxCoverage != 1.5 {
		t.Errorf("day 4 min/max = %v/%v, want 0.5/1.5", day4.MinCoverage, day4.MaxCoverage)
	}
	// Sample std of 12x0.5 and 12x1.5: sqrt(24*0.25/23)
	wantStd := math.Sqrt(24 * 0.25 / 23)
	if math.Abs(day4.StdCoverage-wantStd) > 1e-12 {
		t.Errorf("day 4 std = %v, want %v", day4.StdCoverage, wantStd)
	}
	if stats[0].StdCoverage != 0 {
		t.Errorf("constant day 0 std = %v, want 0", stats[0].StdCoverage)
	}
	if day4.Month != 1 || day4.DayOfMonth != 5 {
		t.Errorf("day 4 date = %d/%d, want 1/5", day4.Month, day4.DayOfMonth)
	}
}

func TestWeeklyStats(t *testing.T) {
	cov := make(CoverageSeries, HoursPerYear)
	for h := range cov {
		cov[h] = 2.0
	}

	stats, err := WeeklyStats(cov)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stats) != WeeksPerYear {
		t.Fatalf("got %d week stats, want %d", len(stats), WeeksPerYear)
	}

	totalHours := 0
	for _, s := range stats {
		totalHours += s.Hours
		if s.MeanCoverage != 2.0 || s.MinCoverage != 2.0 || s.MaxCoverage != 2.0 {
			t.Errorf("week %d stats not constant 2.0: %+v", s.Week, s)
		}
	}
	if totalHours != HoursPerYear {
		t.Errorf("week stats cover %d hours, want %d", totalHours, HoursPerYear)
	}
	if stats[51].Hours != 192 {
		t.Errorf("week 51 spans %d hours, want 192", stats[51].Hours)
	}
	if stats[0].Hours != 168 {
		t.Errorf("week 0 spans %d hours, want 168", stats[0].Hours)
	}
}

func TestStatsRejectInvalidSeries(t *testing.T) {
	if _, err := DailyStats(make(CoverageSeries, 100)); err == nil {
		t.Error("expected error for short series")
	}
	bad := make(CoverageSeries, HoursPerYear)
	bad[0] = math.Inf(1)
	if _, err := WeeklyStats(bad); err == nil {
		t.Error("expected error for Inf in series")
	}
}
