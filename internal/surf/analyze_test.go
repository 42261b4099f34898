package surf

import (
	"reflect"
	"testing"
)

func hourly(samples []HourSample, times []string) *HourlyData {
	d := &HourlyData{Time: times}
	for _, s := range samples {
		d.WaveHeight = append(d.WaveHeight, s.WaveHeight)
		d.WaveDirection = append(d.WaveDirection, s.WaveDirection)
		d.WavePeriod = append(d.WavePeriod, s.WavePeriod)
		d.SwellHeight = append(d.SwellHeight, s.SwellHeight)
		d.SwellDirection = append(d.SwellDirection, s.SwellDirection)
		d.SwellPeriod = append(d.SwellPeriod, s.SwellPeriod)
	}
	return d
}

func TestAnalyzeNoData(t *testing.T) {
	if _, err := Analyze(nil); err != ErrNoData {
		t.Fatalf("expected ErrNoData for nil payload, got %v", err)
	}
	if _, err := Analyze(&HourlyData{}); err != ErrNoData {
		t.Fatalf("expected ErrNoData for empty payload, got %v", err)
	}
}

func TestAnalyzeCurrentAndOrder(t *testing.T) {
	samples := []HourSample{
		sample(0.2, 4, 4.0, 22),  // 3.0
		sample(2.0, 10, 1.5, 12), // 10.0
		sample(0.7, 7, 0.7, 9),   // 7.0
	}
	a, err := Analyze(hourly(samples, []string{"t0", "t1", "t2"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.Current.Hour != 0 || a.Current.Time != "t0" {
		t.Fatalf("current must be the first sample, got hour=%d time=%s", a.Current.Hour, a.Current.Time)
	}
	if a.QualityScore != 3.0 {
		t.Fatalf("expected current score 3.0, got %v", a.QualityScore)
	}
	if len(a.Hours) != 3 {
		t.Fatalf("expected 3 hours, got %d", len(a.Hours))
	}
	for i, h := range a.Hours {
		if h.Hour != i {
			t.Fatalf("hours out of chronological order at index %d", i)
		}
	}
}

func TestAnalyzeBestTimes(t *testing.T) {
	unscorable := HourSample{WaveHeight: fp(2.0)} // missing the other fields
	samples := []HourSample{
		sample(0.2, 4, 4.0, 22),  // score 3.0
		sample(2.0, 10, 1.5, 12), // score 10.0
		unscorable,               // score 0, must never be ranked
		sample(0.7, 7, 0.7, 9),   // score 7.0
		sample(0.2, 4, 4.0, 22),  // score 3.0, tie with hour 0
	}
	a, err := Analyze(hourly(samples, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(a.BestTimes) != 3 {
		t.Fatalf("expected 3 best times, got %d", len(a.BestTimes))
	}
	if a.BestTimes[0].Hour != 1 || a.BestTimes[1].Hour != 3 {
		t.Fatalf("unexpected best times order: %d, %d", a.BestTimes[0].Hour, a.BestTimes[1].Hour)
	}
	// Tie at 3.0 resolves to the chronologically earlier hour.
	if a.BestTimes[2].Hour != 0 {
		t.Fatalf("expected stable tie-break to hour 0, got %d", a.BestTimes[2].Hour)
	}
	for _, bt := range a.BestTimes {
		if !bt.Scorable() {
			t.Fatalf("unscorable hour %d appeared in best times", bt.Hour)
		}
	}
}

func TestAnalyzeBestTimesFewValidHours(t *testing.T) {
	samples := []HourSample{
		{WaveHeight: fp(1.0)}, // unscorable
		sample(2.0, 10, 1.5, 12),
	}
	a, err := Analyze(hourly(samples, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(a.BestTimes) != 1 {
		t.Fatalf("expected 1 best time, got %d", len(a.BestTimes))
	}
	if a.BestTimes[0].Hour != 1 {
		t.Fatalf("expected hour 1, got %d", a.BestTimes[0].Hour)
	}
}

func TestAnalyzeHourLabels(t *testing.T) {
	samples := []HourSample{
		sample(2.0, 10, 1.5, 12),
		sample(2.0, 10, 1.5, 12),
	}
	// Only the first hour has a time label.
	a, err := Analyze(hourly(samples, []string{"2025-10-01T00:00"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Hours[0].Time != "2025-10-01T00:00" {
		t.Fatalf("expected provider label, got %q", a.Hours[0].Time)
	}
	if a.Hours[1].Time != "Hour 1" {
		t.Fatalf("expected fallback label, got %q", a.Hours[1].Time)
	}
}

func TestAnalyzeRecommendationOrder(t *testing.T) {
	// Big waves with a short period: headline, height advisory, period advisory.
	a, err := Analyze(hourly([]HourSample{sample(3.5, 5, 4.5, 22)}, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	recs := a.Recommendations
	if len(recs) != 3 {
		t.Fatalf("expected 3 recommendations, got %d: %v", len(recs), recs)
	}
	if recs[0] != "Decent conditions, but check local reports for safety." {
		t.Fatalf("unexpected headline: %q", recs[0])
	}
	if recs[1] != "High waves - only for experienced surfers!" {
		t.Fatalf("unexpected height advisory: %q", recs[1])
	}
	if recs[2] != "Short period waves - conditions might be choppy." {
		t.Fatalf("unexpected period advisory: %q", recs[2])
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	data := hourly([]HourSample{
		sample(2.0, 10, 1.5, 12),
		sample(0.7, 7, 0.7, 9),
		{WaveHeight: fp(0.5)},
	}, []string{"a", "b", "c"})

	first, err := Analyze(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Analyze(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatal("analysis of identical payload is not deterministic")
	}
}
