package surf

import (
	"context"
	"fmt"

	"github.com/surfwatch/surfcast/pkg/log"
)

// Service orchestrates geocoding, marine fetches, and conditions analysis.
// All calls are synchronous request/response; the service itself holds no
// per-request state.
type Service struct {
	resolver Resolver
	fetcher  Fetcher
}

// NewService creates a new Service.
func NewService(resolver Resolver, fetcher Fetcher) *Service {
	return &Service{
		resolver: resolver,
		fetcher:  fetcher,
	}
}

// Resolve geocodes a free-text place name.
func (s *Service) Resolve(ctx context.Context, name string) (Coordinates, error) {
	return s.resolver.Resolve(ctx, name)
}

// FetchRaw retrieves the raw hourly marine payload for coordinates.
func (s *Service) FetchRaw(ctx context.Context, coords Coordinates, opts FetchOptions) (*HourlyData, error) {
	return s.fetcher.Fetch(ctx, coords, opts)
}

// GetConditions resolves a city and analyzes its default forecast window.
func (s *Service) GetConditions(ctx context.Context, city string) (*Analysis, error) {
	return s.GetConditionsForDate(ctx, city, "", "")
}

// GetConditionsForDate resolves a city and analyzes the given date range.
// An empty end date collapses the range to the start date.
func (s *Service) GetConditionsForDate(ctx context.Context, city, startDate, endDate string) (*Analysis, error) {
	coords, err := s.resolver.Resolve(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("geocoding %q: %w", city, err)
	}

	if startDate != "" && endDate == "" {
		endDate = startDate
	}

	data, err := s.fetcher.Fetch(ctx, coords, FetchOptions{StartDate: startDate, EndDate: endDate})
	if err != nil {
		return nil, fmt.Errorf("marine fetch for %q: %w", city, err)
	}

	analysis, err := Analyze(data)
	if err != nil {
		return nil, fmt.Errorf("analyzing %q: %w", city, err)
	}
	return analysis, nil
}

// GetSafety analyzes current conditions for a city and assesses them against
// the experience level inferred from the user's query text.
func (s *Service) GetSafety(ctx context.Context, city, userQuery string) (*Analysis, SafetyAssessment, error) {
	analysis, err := s.GetConditions(ctx, city)
	if err != nil {
		return nil, SafetyAssessment{}, err
	}

	exp := ClassifyExperience(userQuery)
	assessment := AssessSafety(analysis.Current, exp)

	log.Debugf("safety assessment for %s: level=%s score=%d", city, assessment.Level, assessment.Score)
	return analysis, assessment, nil
}
