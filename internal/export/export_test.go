package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/vanditkanudia/vervestacks-timeslice/internal/timeslice"
)

func exportFixture(t *testing.T) *timeslice.Result {
	t.Helper()

	supply := make(timeslice.HourlySeries, timeslice.HoursPerYear)
	demand := make(timeslice.HourlySeries, timeslice.HoursPerYear)
	for h := 0; h < timeslice.HoursPerYear; h++ {
		supply[h] = 90
		demand[h] = 100
	}
	// A clearly scarce day and a clearly surplus week.
	for h := 96; h < 120; h++ {
		supply[h] = 10
	}
	for h := 2016; h < 2184; h++ {
		supply[h] = 250
	}

	result, err := timeslice.NewPipeline(zap.NewNop().Sugar(), 0).Run(supply, demand, timeslice.StressPeriodConfig{
		DaysScarcity:    1,
		WeeksSurplus:    1,
		NumAggregatedTS: 16,
	})
	if err != nil {
		t.Fatalf("building fixture result: %v", err)
	}
	return result
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("parsing %s: %v", path, err)
	}
	return records
}

func TestWriteAssignmentCSV(t *testing.T) {
	result := exportFixture(t)
	path := filepath.Join(t.TempDir(), "nested", "assignment.csv")

	if err := WriteAssignmentCSV(path, result.Assignment); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records := readCSV(t, path)
	if len(records) != timeslice.HoursPerYear+1 {
		t.Fatalf("got %d records, want %d", len(records), timeslice.HoursPerYear+1)
	}
	if records[0][4] != "label" {
		t.Errorf("header = %v", records[0])
	}
	// Hour 96 sits inside the selected scarcity day.
	if got := records[97][4]; got != "STRESS_DAY_SCARCITY_01" {
		t.Errorf("hour 96 label = %q", got)
	}
}

func TestWriteStatsCSV(t *testing.T) {
	result := exportFixture(t)
	dir := t.TempDir()

	dayPath := filepath.Join(dir, "day_stats.csv")
	if err := WriteDayStatsCSV(dayPath, result.DayStats); err != nil {
		t.Fatalf("day stats: %v", err)
	}
	if got := len(readCSV(t, dayPath)); got != timeslice.DaysPerYear+1 {
		t.Errorf("day stats records = %d, want %d", got, timeslice.DaysPerYear+1)
	}

	weekPath := filepath.Join(dir, "week_stats.csv")
	if err := WriteWeekStatsCSV(weekPath, result.WeekStats); err != nil {
		t.Fatalf("week stats: %v", err)
	}
	if got := len(readCSV(t, weekPath)); got != timeslice.WeeksPerYear+1 {
		t.Errorf("week stats records = %d, want %d", got, timeslice.WeeksPerYear+1)
	}

	covPath := filepath.Join(dir, "coverage.csv")
	if err := WriteCoverageCSV(covPath, result.Coverage); err != nil {
		t.Fatalf("coverage: %v", err)
	}
	if got := len(readCSV(t, covPath)); got != timeslice.HoursPerYear+1 {
		t.Errorf("coverage records = %d, want %d", got, timeslice.HoursPerYear+1)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	result := exportFixture(t)
	path := filepath.Join(t.TempDir(), "run.msgpack")

	if err := WriteSnapshot(path, "DEU", 2018, "baseline", "run-1", result); err != nil {
		t.Fatalf("writing snapshot: %v", err)
	}

	snap, err := ReadSnapshot(path)
	if err != nil {
		t.Fatalf("reading snapshot: %v", err)
	}
	if snap.Country != "DEU" || snap.WeatherYear != 2018 || snap.Scenario != "baseline" {
		t.Errorf("snapshot header = %+v", snap)
	}
	if len(snap.Labels) != timeslice.HoursPerYear {
		t.Errorf("got %d labels, want %d", len(snap.Labels), timeslice.HoursPerYear)
	}
	if len(snap.Periods) != 2 {
		t.Fatalf("got %d periods, want 2", len(snap.Periods))
	}
	for _, p := range snap.Periods {
		if p.Label == "" || p.Hours == 0 {
			t.Errorf("incomplete period %+v", p)
		}
	}
	if snap.Labels[96] != "STRESS_DAY_SCARCITY_01" {
		t.Errorf("label at hour 96 = %q", snap.Labels[96])
	}
}
