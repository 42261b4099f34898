package surf

import (
	"context"
	"errors"
	"sort"

	"github.com/surfwatch/surfcast/pkg/log"
)

const (
	minCompareCities = 2
	maxCompareCities = 5
)

// CompareCities runs the full pipeline for each city sequentially and ranks
// the results. The city count is validated before any network call. A single
// city's failure never aborts the batch; it is recorded with its reason and
// a zero score.
func (s *Service) CompareCities(ctx context.Context, cities []string, opts FetchOptions) (*CityComparison, error) {
	if len(cities) < minCompareCities || len(cities) > maxCompareCities {
		return nil, ErrCityCount
	}

	results := make([]CityResult, 0, len(cities))
	for _, city := range cities {
		results = append(results, s.compareOne(ctx, city, opts))
	}

	cmp := &CityComparison{
		StartDate: opts.StartDate,
		EndDate:   opts.EndDate,
	}
	for _, r := range results {
		if r.OK {
			cmp.Ranked = append(cmp.Ranked, r)
		} else {
			cmp.Failed = append(cmp.Failed, r)
		}
	}

	sort.SliceStable(cmp.Ranked, func(i, j int) bool {
		return cmp.Ranked[i].QualityScore > cmp.Ranked[j].QualityScore
	})

	return cmp, nil
}

func (s *Service) compareOne(ctx context.Context, city string, opts FetchOptions) CityResult {
	coords, err := s.resolver.Resolve(ctx, city)
	if err != nil {
		log.Warnf("comparison: geocoding failed for %s: %v", city, err)
		return CityResult{City: city, Error: "Could not find coordinates for " + city}
	}

	data, err := s.fetcher.Fetch(ctx, coords, opts)
	if err != nil {
		log.Warnf("comparison: marine fetch failed for %s: %v", city, err)
		return CityResult{City: city, Error: "Could not retrieve weather data for " + city}
	}

	analysis, err := Analyze(data)
	if err != nil {
		if !errors.Is(err, ErrNoData) {
			log.Warnf("comparison: analysis failed for %s: %v", city, err)
		}
		return CityResult{City: city, Error: "Could not analyze conditions for " + city}
	}

	current := analysis.Current
	return CityResult{
		City:               city,
		OK:                 true,
		QualityScore:       analysis.QualityScore,
		QualityDescription: analysis.QualityDescription,
		Current:            &current,
	}
}
