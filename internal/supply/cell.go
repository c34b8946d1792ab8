// Package supply reconstructs a country's hourly renewable-plus-baseload
// supply series from resource cells and the historical generation mix.
package supply

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/vanditkanudia/vervestacks-timeslice/internal/timeslice"
)

// Technology identifies a variable-renewable resource technology.
type Technology string

const (
	TechnologySolar Technology = "solar"
	TechnologyWind  Technology = "wind"
)

// Cell is one resource cell: a geographic unit of solar or wind potential
// with its own cost and hourly generation shape.
type Cell struct {
	Technology Technology
	// LCOE is the levelized cost of energy in USD/MWh, used to rank cells.
	LCOE float64
	// Shape holds 8760 hourly capacity-factor weights. The builder
	// normalizes the shape to fractions of annual generation, so only the
	// relative hourly profile matters.
	Shape []float64
	// PotentialGWh is the cell's annual generation potential.
	PotentialGWh float64
}

// validate rejects cells the economic selection cannot rank.
func (c Cell) validate() error {
	if c.Technology != TechnologySolar && c.Technology != TechnologyWind {
		return dataErrorf("unknown technology %q", c.Technology)
	}
	if len(c.Shape) != timeslice.HoursPerYear {
		return dataErrorf("%s cell shape has %d values, want %d", c.Technology, len(c.Shape), timeslice.HoursPerYear)
	}
	if c.LCOE <= 0 || math.IsNaN(c.LCOE) || math.IsInf(c.LCOE, 0) {
		return dataErrorf("%s cell has non-positive levelized cost %v", c.Technology, c.LCOE)
	}
	if c.PotentialGWh < 0 {
		return dataErrorf("%s cell has negative potential %v GWh", c.Technology, c.PotentialGWh)
	}
	sum := floats.Sum(c.Shape)
	if sum <= 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		return dataErrorf("%s cell shape sums to %v, cannot normalize", c.Technology, sum)
	}
	return nil
}

// shapeFractions returns the hourly shape normalized to sum to one.
func (c Cell) shapeFractions() []float64 {
	sum := floats.Sum(c.Shape)
	fractions := make([]float64, len(c.Shape))
	for h, v := range c.Shape {
		fractions[h] = v / sum
	}
	return fractions
}

// relevantCells sorts cells of one technology by ascending levelized cost and
// keeps only those needed to meet the residual-demand target. Accumulation
// stops at the first cell that crosses the target; everything costlier is
// excluded from scoring entirely.
func relevantCells(cells []Cell, targetGWh float64) []Cell {
	if targetGWh <= 0 || len(cells) == 0 {
		return nil
	}

	sorted := append([]Cell(nil), cells...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].LCOE < sorted[j].LCOE
	})

	var kept []Cell
	accumulated := 0.0
	for _, c := range sorted {
		if c.PotentialGWh == 0 {
			continue
		}
		kept = append(kept, c)
		accumulated += c.PotentialGWh
		if accumulated >= targetGWh {
			break
		}
	}
	return kept
}

// technologyScore computes relevant potential (TWh) divided by the
// generation-weighted average LCOE across the relevant cells. A technology
// with no relevant cells scores zero.
func technologyScore(relevant []Cell) float64 {
	if len(relevant) == 0 {
		return 0
	}
	totalGWh := 0.0
	weightedCost := 0.0
	for _, c := range relevant {
		totalGWh += c.PotentialGWh
		weightedCost += c.PotentialGWh * c.LCOE
	}
	if totalGWh == 0 {
		return 0
	}
	avgLCOE := weightedCost / totalGWh
	return (totalGWh / 1000.0) / avgLCOE
}
