package timeslice

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// HourlySeries is one value per hour of the reference year, indexed 0..8759.
type HourlySeries []float64

// NewHourlySeries validates raw values and returns them as an HourlySeries.
// The series must be exactly 8760 values long with no NaN or Inf entries;
// gaps must be filled upstream or the series is rejected.
func NewHourlySeries(values []float64) (HourlySeries, error) {
	s := HourlySeries(values)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the series length and that every value is finite.
func (s HourlySeries) Validate() error {
	if len(s) != HoursPerYear {
		return dataErrorf("hourly series has %d values, want %d", len(s), HoursPerYear)
	}
	for h, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return dataErrorf("hourly series has non-finite value %v at hour %d", v, h)
		}
	}
	return nil
}

// AnnualTotal returns the sum over all 8760 hours.
func (s HourlySeries) AnnualTotal() float64 {
	return floats.Sum(s)
}

// CoverageSeries is an HourlySeries of unitless supply/demand ratios.
// By convention values below 1.0 denote scarcity and above 1.0 surplus.
type CoverageSeries []float64

// Validate checks length, finiteness and non-negativity of the ratios.
func (c CoverageSeries) Validate() error {
	if len(c) != HoursPerYear {
		return dataErrorf("coverage series has %d values, want %d", len(c), HoursPerYear)
	}
	for h, v := range c {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return dataErrorf("coverage series has non-finite value %v at hour %d", v, h)
		}
		if v < 0 {
			return dataErrorf("coverage series has negative value %v at hour %d", v, h)
		}
	}
	return nil
}
