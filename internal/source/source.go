// Package source defines the data-access collaborators the engine consumes:
// hourly demand, resource cells and the historical generation mix. Callers
// construct one source per batch run and pass it down; there is no shared
// process-wide cache, so concurrent country runs never race.
package source

import (
	"context"

	"github.com/vanditkanudia/vervestacks-timeslice/internal/supply"
	"github.com/vanditkanudia/vervestacks-timeslice/internal/timeslice"
)

// DataSource supplies the per-country inputs of one batch run.
type DataSource interface {
	// DemandSeries returns the country's 8760-hour demand in MW, scaled to
	// its annual total.
	DemandSeries(ctx context.Context, country string) (timeslice.HourlySeries, error)

	// ResourceCells returns the country's resource cells for one technology.
	ResourceCells(ctx context.Context, country string, tech supply.Technology) ([]supply.Cell, error)

	// HistoricalMix returns the country's historical baseload generation.
	HistoricalMix(ctx context.Context, country string) (supply.Mix, error)

	// Close releases any underlying connections.
	Close() error
}
