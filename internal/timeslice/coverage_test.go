package timeslice

import (
	"errors"
	"math"
	"testing"
)

func constantSeries(v float64) HourlySeries {
	s := make(HourlySeries, HoursPerYear)
	for h := range s {
		s[h] = v
	}
	return s
}

func TestCoverage(t *testing.T) {
	supply := constantSeries(500)
	demand := constantSeries(1000)

	// Zero-demand hours exercise both branches of the guard
	demand[10] = 0 // supply positive: capped
	supply[20] = 0
	demand[20] = 0 // both zero: coverage 0

	cov, err := Coverage(supply, demand, DefaultCoverageCeiling)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cov) != HoursPerYear {
		t.Fatalf("coverage has %d values, want %d", len(cov), HoursPerYear)
	}
	for h, v := range cov {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			t.Fatalf("coverage[%d] = %v, want finite and non-negative", h, v)
		}
	}

	if cov[0] != 0.5 {
		t.Errorf("cov[0] = %v, want 0.5", cov[0])
	}
	if cov[10] != DefaultCoverageCeiling {
		t.Errorf("cov[10] = %v, want ceiling %v", cov[10], DefaultCoverageCeiling)
	}
	if cov[20] != 0 {
		t.Errorf("cov[20] = %v, want 0", cov[20])
	}
}

func TestCoverageRejectsBadInput(t *testing.T) {
	good := constantSeries(1)

	short := make(HourlySeries, 100)
	if _, err := Coverage(short, good, 10); err == nil {
		t.Error("expected error for short supply series")
	}

	nan := constantSeries(1)
	nan[5] = math.NaN()
	if _, err := Coverage(nan, good, 10); err == nil {
		t.Error("expected error for NaN in supply")
	}

	if _, err := Coverage(good, constantSeries(0), 10); err == nil {
		t.Error("expected error for uniformly zero demand")
	}

	var dataErr *DataIntegrityError
	_, err := Coverage(good, constantSeries(0), 10)
	if !errors.As(err, &dataErr) {
		t.Errorf("zero demand should yield DataIntegrityError, got %T", err)
	}

	if _, err := Coverage(good, good, -1); err == nil {
		t.Error("expected error for non-positive ceiling")
	}
}
