package surf

// Quality bands per factor. Each factor contributes independently so the
// heuristic stays tunable and testable factor by factor; the maximum raw sum
// is exactly 10.
//
// wave height (m):   [1.0,3.0] -> 3.0, [0.5,1.0) or (3.0,4.0] -> 2.0, else 0.5
// wave period (s):   [8,15]    -> 3.0, [6,8) or (15,18]       -> 2.0, else 1.0
// swell height (m):  [1.0,2.5] -> 2.0, [0.5,1.0) or (2.5,3.5] -> 1.5, else 0.5
// swell period (s):  [10,16]   -> 2.0, [8,10) or (16,20]      -> 1.5, else 1.0

// Score computes the surf quality score for one hourly sample, always in
// [0,10]. A sample missing any of the four required fields scores 0 rather
// than failing, so one bad hour cannot abort a whole analysis.
func Score(h HourSample) float64 {
	if !h.Scorable() {
		return 0.0
	}

	waveHeight := *h.WaveHeight
	wavePeriod := *h.WavePeriod
	swellHeight := *h.SwellHeight
	swellPeriod := *h.SwellPeriod

	var score float64

	switch {
	case waveHeight >= 1.0 && waveHeight <= 3.0:
		score += 3.0
	case (waveHeight >= 0.5 && waveHeight < 1.0) || (waveHeight > 3.0 && waveHeight <= 4.0):
		score += 2.0
	default:
		score += 0.5
	}

	switch {
	case wavePeriod >= 8 && wavePeriod <= 15:
		score += 3.0
	case (wavePeriod >= 6 && wavePeriod < 8) || (wavePeriod > 15 && wavePeriod <= 18):
		score += 2.0
	default:
		score += 1.0
	}

	switch {
	case swellHeight >= 1.0 && swellHeight <= 2.5:
		score += 2.0
	case (swellHeight >= 0.5 && swellHeight < 1.0) || (swellHeight > 2.5 && swellHeight <= 3.5):
		score += 1.5
	default:
		score += 0.5
	}

	switch {
	case swellPeriod >= 10 && swellPeriod <= 16:
		score += 2.0
	case (swellPeriod >= 8 && swellPeriod < 10) || (swellPeriod > 16 && swellPeriod <= 20):
		score += 1.5
	default:
		score += 1.0
	}

	if score > 10 {
		score = 10
	}
	if score < 0 {
		score = 0
	}
	return score
}

// QualityDescription maps a score to one of five human-readable tiers.
func QualityDescription(score float64) string {
	switch {
	case score >= 8:
		return "Excellent surfing conditions!"
	case score >= 6:
		return "Good surfing conditions!"
	case score >= 4:
		return "Fair surfing conditions"
	case score >= 2:
		return "Poor surfing conditions"
	default:
		return "Very poor surfing conditions"
	}
}
