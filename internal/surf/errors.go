package surf

import "errors"

var (
	// ErrLocationNotFound is returned when a place name cannot be geocoded,
	// for any underlying reason.
	ErrLocationNotFound = errors.New("location not found")

	// ErrUnavailable is returned when a data provider request failed.
	ErrUnavailable = errors.New("marine weather data unavailable")

	// ErrNoData is returned when the provider responded but the hourly
	// series was empty or missing.
	ErrNoData = errors.New("no hourly data in response")

	// ErrCityCount is returned when a comparison is requested for fewer
	// than 2 or more than 5 cities.
	ErrCityCount = errors.New("comparison requires between 2 and 5 cities")
)
