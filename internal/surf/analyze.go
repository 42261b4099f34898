package surf

import (
	"fmt"
	"sort"
)

// bestTimesCount is how many top-scoring hours an analysis surfaces.
const bestTimesCount = 3

// Analyze builds the full conditions breakdown from a raw hourly payload.
// It returns ErrNoData when the payload is nil or carries no hours, which is
// distinct from a successful analysis. The result depends only on the input.
func Analyze(data *HourlyData) (*Analysis, error) {
	if data == nil || len(data.WaveHeight) == 0 {
		return nil, ErrNoData
	}

	n := len(data.WaveHeight)
	hours := make([]HourSample, 0, n)
	for i := 0; i < n; i++ {
		h := HourSample{
			Hour:           i,
			Time:           hourLabel(data.Time, i),
			WaveHeight:     at(data.WaveHeight, i),
			WaveDirection:  at(data.WaveDirection, i),
			WavePeriod:     at(data.WavePeriod, i),
			SwellHeight:    at(data.SwellHeight, i),
			SwellDirection: at(data.SwellDirection, i),
			SwellPeriod:    at(data.SwellPeriod, i),
		}
		h.QualityScore = Score(h)
		hours = append(hours, h)
	}

	current := hours[0]

	return &Analysis{
		Current:            current,
		QualityScore:       current.QualityScore,
		QualityDescription: QualityDescription(current.QualityScore),
		Hours:              hours,
		BestTimes:          bestTimes(hours),
		Recommendations:    recommendations(current),
	}, nil
}

// bestTimes returns the top hours by score, descending, stable on the
// original chronological order for ties. Unscorable hours are skipped
// entirely rather than ranked at 0.
func bestTimes(hours []HourSample) []HourSample {
	valid := make([]HourSample, 0, len(hours))
	for _, h := range hours {
		if h.Scorable() {
			valid = append(valid, h)
		}
	}

	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].QualityScore > valid[j].QualityScore
	})

	if len(valid) > bestTimesCount {
		valid = valid[:bestTimesCount]
	}
	return valid
}

// recommendations produces the advisory lines for current conditions:
// tier headline first, then any height advisory, then any period advisory.
func recommendations(current HourSample) []string {
	var recs []string

	switch {
	case current.QualityScore >= 6:
		recs = append(recs, "Great day for surfing! Consider going out.")
	case current.QualityScore >= 4:
		recs = append(recs, "Decent conditions, but check local reports for safety.")
	default:
		recs = append(recs, "Not ideal for surfing today. Consider other activities.")
	}

	if current.WaveHeight != nil {
		if *current.WaveHeight > 3 {
			recs = append(recs, "High waves - only for experienced surfers!")
		} else if *current.WaveHeight < 0.5 {
			recs = append(recs, "Very small waves - might be better for beginners or longboarding.")
		}
	}

	if current.WavePeriod != nil {
		if *current.WavePeriod < 6 {
			recs = append(recs, "Short period waves - conditions might be choppy.")
		} else if *current.WavePeriod > 18 {
			recs = append(recs, "Long period swell - could be powerful, check local conditions.")
		}
	}

	return recs
}

func hourLabel(times []string, i int) string {
	if i < len(times) && times[i] != "" {
		return times[i]
	}
	return fmt.Sprintf("Hour %d", i)
}

func at(vals []*float64, i int) *float64 {
	if i < len(vals) {
		return vals[i]
	}
	return nil
}
