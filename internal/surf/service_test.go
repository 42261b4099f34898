package surf

import (
	"context"
	"errors"
	"testing"
)

// captureFetcher records the options of the last fetch.
type captureFetcher struct {
	lastOpts FetchOptions
	data     *HourlyData
}

func (c *captureFetcher) Fetch(_ context.Context, _ Coordinates, opts FetchOptions) (*HourlyData, error) {
	c.lastOpts = opts
	if c.data == nil {
		return nil, ErrUnavailable
	}
	return c.data, nil
}

func TestGetConditionsForDateCollapsesRange(t *testing.T) {
	resolver := &fakeResolver{coords: map[string]Coordinates{"Biarritz": {Latitude: 43.48}}}
	fetcher := &captureFetcher{data: hourly([]HourSample{sample(2.0, 10, 1.5, 12)}, nil)}
	svc := NewService(resolver, fetcher)

	if _, err := svc.GetConditionsForDate(context.Background(), "Biarritz", "2025-10-01", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetcher.lastOpts.StartDate != "2025-10-01" || fetcher.lastOpts.EndDate != "2025-10-01" {
		t.Fatalf("expected range collapsed to start date, got %+v", fetcher.lastOpts)
	}
}

func TestGetConditionsUnknownCity(t *testing.T) {
	svc := NewService(&fakeResolver{coords: map[string]Coordinates{}}, &captureFetcher{})

	_, err := svc.GetConditions(context.Background(), "Atlantis")
	if !errors.Is(err, ErrLocationNotFound) {
		t.Fatalf("expected ErrLocationNotFound, got %v", err)
	}
}

func TestGetConditionsFetchFailure(t *testing.T) {
	resolver := &fakeResolver{coords: map[string]Coordinates{"Nazare": {Latitude: 39.6}}}
	svc := NewService(resolver, &captureFetcher{data: nil})

	_, err := svc.GetConditions(context.Background(), "Nazare")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestGetSafetyUsesQueryText(t *testing.T) {
	resolver := &fakeResolver{coords: map[string]Coordinates{"Hossegor": {Latitude: 43.66}}}
	fetcher := &captureFetcher{data: hourly([]HourSample{sample(2.5, 12, 1.8, 12)}, nil)}
	svc := NewService(resolver, fetcher)

	_, assessment, err := svc.GetSafety(context.Background(), "Hossegor", "I'm a beginner, is it safe?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if assessment.Experience != ExperienceBeginner {
		t.Fatalf("expected beginner classification, got %s", assessment.Experience)
	}
	if assessment.Level != SafetyDangerous {
		t.Fatalf("expected dangerous at 2.5m for a beginner, got %s", assessment.Level)
	}
}
