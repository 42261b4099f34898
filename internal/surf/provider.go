package surf

import "context"

// HourlyData is the raw marine forecast payload: parallel, equal-length
// sequences of wave and swell fields, with an optional time label sequence.
// Nil entries mark gaps in the provider's data.
type HourlyData struct {
	Time           []string   `json:"time"`
	WaveHeight     []*float64 `json:"wave_height"`
	WaveDirection  []*float64 `json:"wave_direction"`
	WavePeriod     []*float64 `json:"wave_period"`
	SwellHeight    []*float64 `json:"swell_wave_height"`
	SwellDirection []*float64 `json:"swell_wave_direction"`
	SwellPeriod    []*float64 `json:"swell_wave_period"`
}

// FetchOptions narrows a marine fetch to an explicit date range. When both
// dates are empty the provider's forecast-day default applies.
type FetchOptions struct {
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
}

// Resolver turns a free-text place name into coordinates.
type Resolver interface {
	Resolve(ctx context.Context, name string) (Coordinates, error)
}

// Fetcher retrieves the hourly marine forecast for a position.
type Fetcher interface {
	Fetch(ctx context.Context, coords Coordinates, opts FetchOptions) (*HourlyData, error)
}
