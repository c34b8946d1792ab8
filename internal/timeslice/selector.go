package timeslice

import (
	"fmt"
	"sort"
)

// Category classifies why a stress period was selected.
type Category int

const (
	CategoryScarcity Category = iota
	CategorySurplus
	CategoryVolatility
)

var categoryCodes = [3]string{"SCARCITY", "SURPLUS", "VOLATILITY"}

// Code returns the stable label fragment for the category.
func (c Category) Code() string {
	return categoryCodes[c]
}

func (c Category) String() string {
	return categoryCodes[c]
}

// Granularity distinguishes day-level from week-level stress periods.
type Granularity int

const (
	GranularityWeek Granularity = iota
	GranularityDay
)

var granularityCodes = [2]string{"WK", "DAY"}

// Code returns the stable label fragment for the granularity.
func (g Granularity) Code() string {
	return granularityCodes[g]
}

func (g Granularity) String() string {
	return granularityCodes[g]
}

// SelectedPeriod is one stress day or week chosen by the selector. Hours
// holds the period's calendar hour indices, ascending. Rank is 1-based
// within (granularity, category).
type SelectedPeriod struct {
	Category    Category
	Granularity Granularity
	Index       int // day-of-year or week index
	Rank        int
	Hours       []int
}

// Label returns the period's stable timeslice label, derived purely from its
// coordinates, e.g. "STRESS_WK_SCARCITY_01".
func (p SelectedPeriod) Label() string {
	return fmt.Sprintf("STRESS_%s_%s_%02d", p.Granularity.Code(), p.Category.Code(), p.Rank)
}

// periodMetrics is the granularity-independent view the rankings sort on.
type periodMetrics struct {
	index int
	mean  float64
	min   float64
	max   float64
	std   float64
}

// ranking defines how one category orders its candidates. Lower keys sort
// first; ties fall through to the secondary key and finally to the calendar
// index. New stress categories (ramp-rate, price volatility) register a new
// ranking here instead of branching on category elsewhere.
type ranking struct {
	primary   func(periodMetrics) float64
	secondary func(periodMetrics) float64
}

var rankings = map[Category]ranking{
	// Lowest mean coverage first; among equals the day with the deeper
	// minimum is the harder stress case.
	CategoryScarcity: {
		primary:   func(m periodMetrics) float64 { return m.mean },
		secondary: func(m periodMetrics) float64 { return m.min },
	},
	// Highest mean coverage first; among equals the higher peak wins.
	CategorySurplus: {
		primary:   func(m periodMetrics) float64 { return -m.mean },
		secondary: func(m periodMetrics) float64 { return -m.max },
	},
	// Highest standard deviation first.
	CategoryVolatility: {
		primary:   func(m periodMetrics) float64 { return -m.std },
		secondary: func(m periodMetrics) float64 { return -m.max },
	},
}

// categoryOrder is the fixed selection and hour-claiming order within a
// granularity.
var categoryOrder = [3]Category{CategoryScarcity, CategorySurplus, CategoryVolatility}

// Select picks the configured stress periods from the day and week
// statistics. Weeks take priority over days: days whose hours fall inside a
// selected week are excluded from the day candidate pools, so the returned
// periods are pairwise hour-disjoint. The result is ordered weeks before
// days, scarcity before surplus before volatility, then by rank, which is
// also the assembler's hour-claiming order.
func Select(dayStats []DayStat, weekStats []WeekStat, cfg StressPeriodConfig) ([]SelectedPeriod, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(dayStats) != DaysPerYear {
		return nil, dataErrorf("got %d day stats, want %d", len(dayStats), DaysPerYear)
	}
	if len(weekStats) != WeeksPerYear {
		return nil, dataErrorf("got %d week stats, want %d", len(weekStats), WeeksPerYear)
	}

	var periods []SelectedPeriod

	// Week-level selection, sequential exclusion across categories.
	weekCounts := map[Category]int{
		CategoryScarcity:   cfg.WeeksScarcity,
		CategorySurplus:    cfg.WeeksSurplus,
		CategoryVolatility: cfg.WeeksVolatility,
	}
	weekPool := make([]periodMetrics, 0, len(weekStats))
	for _, ws := range weekStats {
		weekPool = append(weekPool, periodMetrics{
			index: ws.Week,
			mean:  ws.MeanCoverage,
			min:   ws.MinCoverage,
			max:   ws.MaxCoverage,
			std:   ws.StdCoverage,
		})
	}

	claimedWeeks := make(map[int]bool)
	for _, cat := range categoryOrder {
		picked, rest, err := takeTop(weekPool, cat, weekCounts[cat], cfg.Name, "weeks")
		if err != nil {
			return nil, err
		}
		weekPool = rest
		for rank, m := range picked {
			claimedWeeks[m.index] = true
			periods = append(periods, SelectedPeriod{
				Category:    cat,
				Granularity: GranularityWeek,
				Index:       m.index,
				Rank:        rank + 1,
				Hours:       hourRange(WeekHours(m.index)),
			})
		}
	}

	// Day-level selection. Days overlapping a selected week are dropped from
	// the pool up front, which substitutes the next-ranked candidate and
	// keeps the emitted periods disjoint.
	dayCounts := map[Category]int{
		CategoryScarcity:   cfg.DaysScarcity,
		CategorySurplus:    cfg.DaysSurplus,
		CategoryVolatility: cfg.DaysVolatility,
	}
	dayPool := make([]periodMetrics, 0, len(dayStats))
	for _, ds := range dayStats {
		if dayInClaimedWeek(ds.Day, claimedWeeks) {
			continue
		}
		dayPool = append(dayPool, periodMetrics{
			index: ds.Day,
			mean:  ds.MeanCoverage,
			min:   ds.MinCoverage,
			max:   ds.MaxCoverage,
			std:   ds.StdCoverage,
		})
	}

	for _, cat := range categoryOrder {
		picked, rest, err := takeTop(dayPool, cat, dayCounts[cat], cfg.Name, "days")
		if err != nil {
			return nil, err
		}
		dayPool = rest
		for rank, m := range picked {
			periods = append(periods, SelectedPeriod{
				Category:    cat,
				Granularity: GranularityDay,
				Index:       m.index,
				Rank:        rank + 1,
				Hours:       hourRange(DayHours(m.index)),
			})
		}
	}

	// Selection loops above emit week periods in claiming order already;
	// day periods follow. Re-sort defensively so callers can rely on the
	// documented ordering regardless of future selection-loop changes.
	sortPeriods(periods)
	return periods, nil
}

// takeTop ranks candidates for one category and splits off the best n.
// Requesting more periods than candidates exist is a configuration error,
// never a silent truncation.
func takeTop(pool []periodMetrics, cat Category, n int, scenario, unit string) (picked, rest []periodMetrics, err error) {
	if n == 0 {
		return nil, pool, nil
	}
	if n > len(pool) {
		return nil, nil, configErrorf("%s: %d %s %s requested, only %d candidates remain",
			scenario, n, cat.Code(), unit, len(pool))
	}

	rk := rankings[cat]
	sorted := append([]periodMetrics(nil), pool...)
	sort.SliceStable(sorted, func(i, j int) bool {
		pi, pj := rk.primary(sorted[i]), rk.primary(sorted[j])
		if pi != pj {
			return pi < pj
		}
		si, sj := rk.secondary(sorted[i]), rk.secondary(sorted[j])
		if si != sj {
			return si < sj
		}
		return sorted[i].index < sorted[j].index
	})

	return sorted[:n], sorted[n:], nil
}

// sortPeriods orders periods by (granularity: weeks first, category, rank).
func sortPeriods(periods []SelectedPeriod) {
	sort.Slice(periods, func(i, j int) bool {
		if periods[i].Granularity != periods[j].Granularity {
			return periods[i].Granularity < periods[j].Granularity
		}
		if periods[i].Category != periods[j].Category {
			return periods[i].Category < periods[j].Category
		}
		return periods[i].Rank < periods[j].Rank
	})
}

// dayInClaimedWeek reports whether any hour of the day falls in a selected
// week. The last calendar week spans 192 hours, so days 357..364 all map to
// week 51.
func dayInClaimedWeek(day int, claimedWeeks map[int]bool) bool {
	start, end := DayHours(day)
	firstWeek := start / HoursPerWeek
	lastWeek := (end - 1) / HoursPerWeek
	if firstWeek > WeeksPerYear-1 {
		firstWeek = WeeksPerYear - 1
	}
	if lastWeek > WeeksPerYear-1 {
		lastWeek = WeeksPerYear - 1
	}
	return claimedWeeks[firstWeek] || claimedWeeks[lastWeek]
}

func hourRange(start, end int) []int {
	hours := make([]int, 0, end-start)
	for h := start; h < end; h++ {
		hours = append(hours, h)
	}
	return hours
}
