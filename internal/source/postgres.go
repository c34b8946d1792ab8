package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"gorm.io/gorm"

	"github.com/vanditkanudia/vervestacks-timeslice/internal/supply"
	"github.com/vanditkanudia/vervestacks-timeslice/internal/timeslice"
)

// PostgresSource reads country inputs from the dataset database. Hourly
// shapes and monthly profiles are stored as msgpack blobs to keep one row
// per cell rather than 8760.
type PostgresSource struct {
	db *gorm.DB
}

// DemandHourRow is one hour of a country's demand series.
type DemandHourRow struct {
	Country  string  `gorm:"column:country;index"`
	Hour     int     `gorm:"column:hour"`
	DemandMW float64 `gorm:"column:demand_mw"`
}

// TableName implements the GORM table naming for demand rows.
func (DemandHourRow) TableName() string { return "country_demand_hours" }

// ResourceCellRow is one resource cell with its packed hourly shape.
type ResourceCellRow struct {
	Country      string  `gorm:"column:country;index"`
	Technology   string  `gorm:"column:technology"`
	LCOE         float64 `gorm:"column:lcoe_usd_mwh"`
	PotentialGWh float64 `gorm:"column:potential_gwh"`
	ShapePacked  []byte  `gorm:"column:shape_msgpack"`
}

// TableName implements the GORM table naming for cell rows.
func (ResourceCellRow) TableName() string { return "resource_cells" }

// GenerationMixRow is a country's historical baseload mix. Monthly columns
// are msgpack-packed []float64 of length 12, nullable.
type GenerationMixRow struct {
	Country             string  `gorm:"column:country;primaryKey"`
	HydroMonthlyPacked  []byte  `gorm:"column:hydro_monthly_msgpack"`
	HydroAnnualGWh      float64 `gorm:"column:hydro_annual_gwh"`
	NuclearMonthlyPack  []byte  `gorm:"column:nuclear_monthly_msgpack"`
	NuclearAnnualGWh    float64 `gorm:"column:nuclear_annual_gwh"`
	HydroProxySharePack []byte  `gorm:"column:hydro_proxy_share_msgpack"`
}

// TableName implements the GORM table naming for mix rows.
func (GenerationMixRow) TableName() string { return "generation_mix" }

// NewPostgresSource wraps an open GORM handle as a DataSource.
func NewPostgresSource(db *gorm.DB) *PostgresSource {
	return &PostgresSource{db: db}
}

// DemandSeries loads the country's 8760 demand rows ordered by hour.
func (p *PostgresSource) DemandSeries(ctx context.Context, country string) (timeslice.HourlySeries, error) {
	var rows []DemandHourRow
	err := p.db.WithContext(ctx).
		Where("country = ?", country).
		Order("hour").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("querying demand for %s: %w", country, err)
	}

	values := make([]float64, len(rows))
	for i, r := range rows {
		if r.Hour != i {
			return nil, fmt.Errorf("demand series for %s has a gap at hour %d", country, i)
		}
		values[i] = r.DemandMW
	}
	return timeslice.NewHourlySeries(values)
}

// ResourceCells loads and unpacks the country's cells for one technology.
func (p *PostgresSource) ResourceCells(ctx context.Context, country string, tech supply.Technology) ([]supply.Cell, error) {
	var rows []ResourceCellRow
	err := p.db.WithContext(ctx).
		Where("country = ? AND technology = ?", country, string(tech)).
		Order("lcoe_usd_mwh").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("querying %s cells for %s: %w", tech, country, err)
	}

	cells := make([]supply.Cell, 0, len(rows))
	for _, r := range rows {
		var shape []float64
		if err := msgpack.Unmarshal(r.ShapePacked, &shape); err != nil {
			return nil, fmt.Errorf("unpacking cell shape for %s/%s: %w", country, tech, err)
		}
		cells = append(cells, supply.Cell{
			Technology:   supply.Technology(r.Technology),
			LCOE:         r.LCOE,
			Shape:        shape,
			PotentialGWh: r.PotentialGWh,
		})
	}
	return cells, nil
}

// HistoricalMix loads the country's baseload mix. A missing row is a valid
// zero mix.
func (p *PostgresSource) HistoricalMix(ctx context.Context, country string) (supply.Mix, error) {
	var row GenerationMixRow
	err := p.db.WithContext(ctx).
		Where("country = ?", country).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return supply.Mix{}, nil
	}
	if err != nil {
		return supply.Mix{}, fmt.Errorf("querying generation mix for %s: %w", country, err)
	}

	mix := supply.Mix{
		HydroAnnualGWh:   row.HydroAnnualGWh,
		NuclearAnnualGWh: row.NuclearAnnualGWh,
	}
	for _, packed := range []struct {
		blob []byte
		dest *[]float64
	}{
		{row.HydroMonthlyPacked, &mix.HydroMonthlyGWh},
		{row.NuclearMonthlyPack, &mix.NuclearMonthlyGWh},
		{row.HydroProxySharePack, &mix.HydroProxyShare},
	} {
		if len(packed.blob) == 0 {
			continue
		}
		if err := msgpack.Unmarshal(packed.blob, packed.dest); err != nil {
			return supply.Mix{}, fmt.Errorf("unpacking monthly profile for %s: %w", country, err)
		}
	}
	return mix, nil
}

// Close releases the underlying connection pool.
func (p *PostgresSource) Close() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
