package timeslice

import (
	"errors"
	"testing"
)

func fullBaseMapping(t *testing.T, claimed []bool, num int) map[int]string {
	t.Helper()
	base, err := AggregateResidual(claimed, num)
	if err != nil {
		t.Fatalf("base aggregation: %v", err)
	}
	return base
}

func TestAssembleTotality(t *testing.T) {
	periods := []SelectedPeriod{
		{Category: CategoryScarcity, Granularity: GranularityDay, Index: 4, Rank: 1, Hours: hourRange(DayHours(4))},
		{Category: CategorySurplus, Granularity: GranularityWeek, Index: 12, Rank: 1, Hours: hourRange(WeekHours(12))},
	}
	claimed := make([]bool, HoursPerYear)
	for _, p := range periods {
		for _, h := range p.Hours {
			claimed[h] = true
		}
	}
	base := fullBaseMapping(t, claimed, 16)

	a, err := Assemble(periods, base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for h := 0; h < HoursPerYear; h++ {
		if a.Label(h) == "" {
			t.Fatalf("hour %d has no label", h)
		}
	}
	if got := a.Label(96); got != "STRESS_DAY_SCARCITY_01" {
		t.Errorf("hour 96 label = %q, want STRESS_DAY_SCARCITY_01", got)
	}
	if got := a.Label(2016); got != "STRESS_WK_SURPLUS_01" {
		t.Errorf("hour 2016 label = %q, want STRESS_WK_SURPLUS_01", got)
	}
	// 2 stress labels + 16 base buckets
	if got := a.DistinctLabels(); got != 18 {
		t.Errorf("distinct labels = %d, want 18", got)
	}

	table := a.Table()
	if len(table) != HoursPerYear {
		t.Fatalf("table has %d rows, want %d", len(table), HoursPerYear)
	}
	if table[96].Label != "STRESS_DAY_SCARCITY_01" || table[96].Month != 1 || table[96].Day != 5 {
		t.Errorf("table row 96 = %+v", table[96])
	}
}

func TestAssembleDoubleClaim(t *testing.T) {
	// Two periods over the same day: the later claim must fail with the
	// exact offending hours.
	periods := []SelectedPeriod{
		{Category: CategoryScarcity, Granularity: GranularityDay, Index: 4, Rank: 1, Hours: hourRange(DayHours(4))},
		{Category: CategorySurplus, Granularity: GranularityDay, Index: 4, Rank: 1, Hours: hourRange(DayHours(4))},
	}
	base := fullBaseMapping(t, make([]bool, HoursPerYear), 16)

	_, err := Assemble(periods, base)
	var invErr *AssemblyInvariantError
	if !errors.As(err, &invErr) {
		t.Fatalf("got %v, want AssemblyInvariantError", err)
	}
	if len(invErr.Hours) != HoursPerDay {
		t.Errorf("violation reports %d hours, want %d", len(invErr.Hours), HoursPerDay)
	}
	if invErr.Hours[0] != 96 {
		t.Errorf("first offending hour = %d, want 96", invErr.Hours[0])
	}
}

func TestAssembleUnlabeledHours(t *testing.T) {
	base := fullBaseMapping(t, make([]bool, HoursPerYear), 16)
	delete(base, 5000)
	delete(base, 5001)

	_, err := Assemble(nil, base)
	var invErr *AssemblyInvariantError
	if !errors.As(err, &invErr) {
		t.Fatalf("got %v, want AssemblyInvariantError", err)
	}
	if len(invErr.Hours) != 2 || invErr.Hours[0] != 5000 || invErr.Hours[1] != 5001 {
		t.Errorf("violation hours = %v, want [5000 5001]", invErr.Hours)
	}
}

func TestAssembleClaimOrder(t *testing.T) {
	// Periods arrive shuffled; the assembler claims weeks before days and
	// scarcity before surplus regardless of input order.
	periods := []SelectedPeriod{
		{Category: CategoryVolatility, Granularity: GranularityDay, Index: 100, Rank: 1, Hours: hourRange(DayHours(100))},
		{Category: CategoryScarcity, Granularity: GranularityWeek, Index: 3, Rank: 1, Hours: hourRange(WeekHours(3))},
		{Category: CategoryScarcity, Granularity: GranularityDay, Index: 50, Rank: 1, Hours: hourRange(DayHours(50))},
	}
	claimed := make([]bool, HoursPerYear)
	for _, p := range periods {
		for _, h := range p.Hours {
			claimed[h] = true
		}
	}
	base := fullBaseMapping(t, claimed, 16)

	a, err := Assemble(periods, base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	start, _ := WeekHours(3)
	if got := a.Label(start); got != "STRESS_WK_SCARCITY_01" {
		t.Errorf("week hour label = %q", got)
	}
	if got := a.Label(50 * 24); got != "STRESS_DAY_SCARCITY_01" {
		t.Errorf("day hour label = %q", got)
	}
}

func TestAssembleDeterminism(t *testing.T) {
	periods := []SelectedPeriod{
		{Category: CategoryScarcity, Granularity: GranularityDay, Index: 10, Rank: 1, Hours: hourRange(DayHours(10))},
	}
	claimed := make([]bool, HoursPerYear)
	for _, h := range periods[0].Hours {
		claimed[h] = true
	}
	base := fullBaseMapping(t, claimed, 16)

	first, err := Assemble(periods, base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Assemble(periods, base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for h := 0; h < HoursPerYear; h++ {
		if first.Label(h) != second.Label(h) {
			t.Fatalf("hour %d labels differ: %q vs %q", h, first.Label(h), second.Label(h))
		}
	}
}
