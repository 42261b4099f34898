package store

import (
	"testing"
	"time"

	"github.com/surfwatch/surfcast/internal/surf"
)

func report(spot string, age time.Duration, score float64) Report {
	return Report{
		Spot:      spot,
		FetchedAt: time.Now().UTC().Add(-age),
		Analysis:  &surf.Analysis{QualityScore: score},
	}
}

func TestGetLatest(t *testing.T) {
	s := NewMemoryStore(10, 0)

	if _, err := s.GetLatest("pipeline"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for empty store, got %v", err)
	}

	s.SaveReport("Pipeline", report("Pipeline", 2*time.Hour, 4))
	s.SaveReport("Pipeline", report("Pipeline", 0, 8))

	// Lookups are case-insensitive on the spot name.
	got, err := s.GetLatest("pipeline")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Analysis.QualityScore != 8 {
		t.Fatalf("expected most recent report, got score %v", got.Analysis.QualityScore)
	}
}

func TestRetentionByCount(t *testing.T) {
	s := NewMemoryStore(2, 0)

	s.SaveReport("mavericks", report("mavericks", 3*time.Hour, 1))
	s.SaveReport("mavericks", report("mavericks", 2*time.Hour, 2))
	s.SaveReport("mavericks", report("mavericks", 1*time.Hour, 3))

	all, err := s.GetRange("mavericks", time.Now().Add(-24*time.Hour), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected retention to keep 2 reports, got %d", len(all))
	}
	if all[0].Analysis.QualityScore != 2 {
		t.Fatalf("expected oldest kept report to be the second, got %v", all[0].Analysis.QualityScore)
	}
}

func TestGetRangeBounds(t *testing.T) {
	s := NewMemoryStore(0, 0)

	s.SaveReport("snapper", report("snapper", 10*time.Hour, 1))
	s.SaveReport("snapper", report("snapper", 1*time.Hour, 2))

	recent, err := s.GetRange("snapper", time.Now().Add(-2*time.Hour), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recent) != 1 || recent[0].Analysis.QualityScore != 2 {
		t.Fatalf("expected only the recent report, got %+v", recent)
	}

	if _, err := s.GetRange("snapper", time.Now().Add(48*time.Hour), time.Now().Add(72*time.Hour)); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for empty range, got %v", err)
	}
}
