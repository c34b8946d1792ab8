package timeslice

import "fmt"

// TimesliceAssignment is the terminal artifact: one label for each of the
// 8760 hours. Immutable once assembled; identical inputs produce identical
// assignments, a hard requirement for reproducible capacity-expansion models.
type TimesliceAssignment struct {
	labels [HoursPerYear]string
}

// Label returns the timeslice label of an hour (0..8759).
func (a *TimesliceAssignment) Label(hour int) string {
	return a.labels[hour]
}

// Labels returns a copy of the full hour-to-label mapping.
func (a *TimesliceAssignment) Labels() []string {
	out := make([]string, HoursPerYear)
	copy(out, a.labels[:])
	return out
}

// DistinctLabels returns the number of distinct labels used.
func (a *TimesliceAssignment) DistinctLabels() int {
	seen := make(map[string]bool)
	for _, l := range a.labels {
		seen[l] = true
	}
	return len(seen)
}

// HourLabel is one row of the assignment rendered as a table, with the
// calendar coordinates downstream writers key on.
type HourLabel struct {
	Hour      int
	Month     int
	Day       int
	HourOfDay int
	Label     string
}

// Table renders the assignment as 8760 (hour, month, day, hour-of-day,
// label) rows in hour order.
func (a *TimesliceAssignment) Table() []HourLabel {
	rows := make([]HourLabel, HoursPerYear)
	for h := 0; h < HoursPerYear; h++ {
		month, day, hourOfDay := MonthDayHour(h)
		rows[h] = HourLabel{Hour: h, Month: month, Day: day, HourOfDay: hourOfDay, Label: a.labels[h]}
	}
	return rows
}

// Assemble merges stress-period hour claims with the residual base mapping
// into a complete assignment. Periods are claimed weeks before days,
// scarcity before surplus before volatility, by rank; an hour is labeled on
// first claim and must never be claimed again. Every violation reports the
// exact offending hour indices.
func Assemble(periods []SelectedPeriod, base map[int]string) (*TimesliceAssignment, error) {
	sorted := append([]SelectedPeriod(nil), periods...)
	sortPeriods(sorted)

	a := &TimesliceAssignment{}

	for _, p := range sorted {
		label := p.Label()
		var doubleClaimed []int
		for _, h := range p.Hours {
			if h < 0 || h >= HoursPerYear {
				return nil, dataErrorf("period %s references hour %d outside 0..%d", label, h, HoursPerYear-1)
			}
			if a.labels[h] != "" {
				doubleClaimed = append(doubleClaimed, h)
				continue
			}
			a.labels[h] = label
		}
		if len(doubleClaimed) > 0 {
			return nil, &AssemblyInvariantError{
				Reason: "period " + label + " claims already-claimed hours",
				Hours:  doubleClaimed,
			}
		}
	}

	var unlabeled []int
	baseUsed := make(map[string]bool)
	for h := 0; h < HoursPerYear; h++ {
		if a.labels[h] != "" {
			continue
		}
		label, ok := base[h]
		if !ok || label == "" {
			unlabeled = append(unlabeled, h)
			continue
		}
		a.labels[h] = label
		baseUsed[label] = true
	}
	if len(unlabeled) > 0 {
		return nil, &AssemblyInvariantError{
			Reason: "hours left without a timeslice label",
			Hours:  unlabeled,
		}
	}

	// Every selected period and every base bucket actually used must map to
	// its own distinct label; a mismatch means a label collision upstream.
	want := len(sorted) + len(baseUsed)
	if got := a.DistinctLabels(); got != want {
		return nil, &AssemblyInvariantError{
			Reason: fmt.Sprintf("distinct label count mismatch: got %d, want %d", got, want),
		}
	}

	return a, nil
}
