// Package export writes run artifacts for downstream model writers: plain
// CSV tables and a compact msgpack snapshot. Spreadsheet formatting itself
// lives outside this repository.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vanditkanudia/vervestacks-timeslice/internal/timeslice"
)

// WriteAssignmentCSV writes the (hour, month, day, hour_of_day, label) table.
func WriteAssignmentCSV(path string, assignment *timeslice.TimesliceAssignment) error {
	return writeCSV(path, [][]string{{"hour", "month", "day", "hour_of_day", "label"}}, func(records [][]string) [][]string {
		for _, row := range assignment.Table() {
			records = append(records, []string{
				strconv.Itoa(row.Hour),
				strconv.Itoa(row.Month),
				strconv.Itoa(row.Day),
				strconv.Itoa(row.HourOfDay),
				row.Label,
			})
		}
		return records
	})
}

// WriteDayStatsCSV writes the daily coverage statistics table.
func WriteDayStatsCSV(path string, stats []timeslice.DayStat) error {
	header := [][]string{{"day", "month", "day_of_month", "mean_coverage", "min_coverage", "max_coverage", "std_coverage"}}
	return writeCSV(path, header, func(records [][]string) [][]string {
		for _, s := range stats {
			records = append(records, []string{
				strconv.Itoa(s.Day),
				strconv.Itoa(s.Month),
				strconv.Itoa(s.DayOfMonth),
				formatFloat(s.MeanCoverage),
				formatFloat(s.MinCoverage),
				formatFloat(s.MaxCoverage),
				formatFloat(s.StdCoverage),
			})
		}
		return records
	})
}

// WriteWeekStatsCSV writes the weekly coverage statistics table.
func WriteWeekStatsCSV(path string, stats []timeslice.WeekStat) error {
	header := [][]string{{"week", "hours", "mean_coverage", "min_coverage", "max_coverage", "std_coverage"}}
	return writeCSV(path, header, func(records [][]string) [][]string {
		for _, s := range stats {
			records = append(records, []string{
				strconv.Itoa(s.Week),
				strconv.Itoa(s.Hours),
				formatFloat(s.MeanCoverage),
				formatFloat(s.MinCoverage),
				formatFloat(s.MaxCoverage),
				formatFloat(s.StdCoverage),
			})
		}
		return records
	})
}

// WriteCoverageCSV writes the hourly coverage series, the raw material for
// scenario plots.
func WriteCoverageCSV(path string, cov timeslice.CoverageSeries) error {
	return writeCSV(path, [][]string{{"hour", "coverage"}}, func(records [][]string) [][]string {
		for h, v := range cov {
			records = append(records, []string{strconv.Itoa(h), formatFloat(v)})
		}
		return records
	})
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func writeCSV(path string, records [][]string, fill func([][]string) [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(fill(records)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	w.Flush()
	return w.Error()
}
