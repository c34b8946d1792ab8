package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vanditkanudia/vervestacks-timeslice/internal/timeslice"
)

// Snapshot is the compact single-file artifact of one run, consumed by model
// generators that don't want to re-read the CSV tables.
type Snapshot struct {
	Country     string               `msgpack:"country"`
	WeatherYear int                  `msgpack:"weather_year"`
	Scenario    string               `msgpack:"scenario"`
	RunID       string               `msgpack:"run_id"`
	Labels      []string             `msgpack:"labels"` // hour-indexed, 8760 entries
	Periods     []SnapshotPeriod     `msgpack:"periods"`
	DayStats    []timeslice.DayStat  `msgpack:"day_stats"`
	WeekStats   []timeslice.WeekStat `msgpack:"week_stats"`
}

// SnapshotPeriod is one selected stress period in the snapshot.
type SnapshotPeriod struct {
	Label       string `msgpack:"label"`
	Category    string `msgpack:"category"`
	Granularity string `msgpack:"granularity"`
	Index       int    `msgpack:"index"`
	Rank        int    `msgpack:"rank"`
	FirstHour   int    `msgpack:"first_hour"`
	Hours       int    `msgpack:"hours"`
}

// WriteSnapshot serializes the run result to a msgpack file.
func WriteSnapshot(path, country string, weatherYear int, scenario, runID string, result *timeslice.Result) error {
	snap := Snapshot{
		Country:     country,
		WeatherYear: weatherYear,
		Scenario:    scenario,
		RunID:       runID,
		Labels:      result.Assignment.Labels(),
		DayStats:    result.DayStats,
		WeekStats:   result.WeekStats,
	}
	for _, p := range result.Periods {
		snap.Periods = append(snap.Periods, SnapshotPeriod{
			Label:       p.Label(),
			Category:    p.Category.Code(),
			Granularity: p.Granularity.Code(),
			Index:       p.Index,
			Rank:        p.Rank,
			FirstHour:   p.Hours[0],
			Hours:       len(p.Hours),
		})
	}

	packed, err := msgpack.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("packing snapshot: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(path, packed, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ReadSnapshot loads a snapshot file back into memory.
func ReadSnapshot(path string) (*Snapshot, error) {
	packed, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var snap Snapshot
	if err := msgpack.Unmarshal(packed, &snap); err != nil {
		return nil, fmt.Errorf("unpacking snapshot: %w", err)
	}
	return &snap, nil
}
