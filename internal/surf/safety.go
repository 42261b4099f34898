package surf

import (
	"strings"

	"github.com/surfwatch/surfcast/internal/common"
)

// experienceKeywords maps each classification to the phrases that signal it.
// Categories are checked in the order of experiencePriority; the first match
// wins and an unmatched query defaults to intermediate.
var experienceKeywords = map[Experience][]string{
	ExperienceBeginner: {
		"beginner", "new to surf", "learning", "first time", "never surf",
		"just started", "novice", "inexperienced", "safe for beginners",
		"learning to surf", "new surfer", "starting out",
	},
	ExperienceAdvanced: {
		"experienced", "advanced", "expert", "professional", "big wave",
		"charging", "heavy water", "overhead", "double overhead", "veteran",
		"years of experience", "expert level",
	},
	ExperienceIntermediate: {
		"intermediate", "moderate", "some experience", "few years",
		"comfortable", "progressing", "getting better", "improving",
	},
}

var experiencePriority = []Experience{
	ExperienceBeginner,
	ExperienceAdvanced,
	ExperienceIntermediate,
}

// ClassifyExperience infers a surfer's skill level from free text.
// Defaulting to intermediate when nothing matches is a deliberate policy
// carried over from the safety table's calibration.
func ClassifyExperience(text string) Experience {
	lower := strings.ToLower(text)
	for _, exp := range experiencePriority {
		if common.HasAny(lower, experienceKeywords[exp]...) {
			return exp
		}
	}
	return ExperienceIntermediate
}

// AssessSafety evaluates current conditions against a per-experience decision
// table, then applies two universal penalties (short period, wind chop) that
// each subtract one point before the final clamp to [0,10].
func AssessSafety(current HourSample, exp Experience) SafetyAssessment {
	a := SafetyAssessment{
		Experience: exp,
		Level:      SafetyUnknown,
	}

	var waveHeight, wavePeriod, swellHeight float64
	if current.WaveHeight != nil {
		waveHeight = *current.WaveHeight
	}
	if current.WavePeriod != nil {
		wavePeriod = *current.WavePeriod
	}
	if current.SwellHeight != nil {
		swellHeight = *current.SwellHeight
	}

	switch exp {
	case ExperienceBeginner:
		switch {
		case waveHeight <= 1.0 && wavePeriod >= 8:
			a.Level = SafetySafe
			a.Score = 8
			a.Recommendations = append(a.Recommendations, "Good conditions for learning!")
		case waveHeight <= 1.5 && wavePeriod >= 6:
			a.Level = SafetyCaution
			a.Score = 6
			a.Recommendations = append(a.Recommendations, "Manageable but stay close to shore")
		case waveHeight > 2.0:
			a.Level = SafetyDangerous
			a.Score = 2
			a.Warnings = append(a.Warnings, "Waves too big for beginners - do not surf!")
		default:
			a.Level = SafetyCaution
			a.Score = 4
			a.Recommendations = append(a.Recommendations, "Challenging conditions - consider a lesson")
		}

	case ExperienceAdvanced:
		switch {
		case waveHeight <= 6.0:
			a.Level = SafetySafe
			a.Score = 8
			a.Recommendations = append(a.Recommendations, "Suitable for experienced surfers")
		case waveHeight > 8.0:
			a.Level = SafetyCaution
			a.Score = 6
			a.Warnings = append(a.Warnings, "Extreme conditions - exercise caution")
		default:
			a.Level = SafetySafe
			a.Score = 7
			a.Recommendations = append(a.Recommendations, "Challenging but manageable")
		}

	default: // intermediate
		switch {
		case waveHeight >= 0.8 && waveHeight <= 3.0 && wavePeriod >= 6:
			a.Level = SafetySafe
			a.Score = 7
			a.Recommendations = append(a.Recommendations, "Good conditions for your skill level")
		case waveHeight > 4.0:
			a.Level = SafetyDangerous
			a.Score = 3
			a.Warnings = append(a.Warnings, "Large waves - only if very confident")
		default:
			a.Level = SafetyCaution
			a.Score = 5
			a.Recommendations = append(a.Recommendations, "Proceed with caution")
		}
	}

	if wavePeriod < 6 {
		a.Warnings = append(a.Warnings, "Short period waves - expect choppy, unpredictable conditions")
		a.Score--
	}
	if swellHeight > 0 && waveHeight > 1.5*swellHeight {
		a.Warnings = append(a.Warnings, "Significant wind chop - conditions may be messy")
		a.Score--
	}

	if a.Score < 0 {
		a.Score = 0
	}
	if a.Score > 10 {
		a.Score = 10
	}

	a.Tips = safetyTips(exp)
	return a
}

func safetyTips(exp Experience) []string {
	switch exp {
	case ExperienceBeginner:
		return []string{
			"Always surf with others or take a lesson",
			"Stay in shallow water where you can stand",
			"Learn to read the conditions before entering water",
		}
	case ExperienceAdvanced:
		return []string{
			"Assess conditions thoroughly before entering",
			"Consider current and weather changes",
			"Share knowledge with less experienced surfers",
		}
	default:
		return []string{
			"Check local surf reports and hazards",
			"Know your limits and don't push beyond them",
			"Always surf with a buddy when possible",
		}
	}
}
