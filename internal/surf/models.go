package surf

// Coordinates is a resolved geographic position in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Experience is a surfer skill classification used for safety assessments.
type Experience string

const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
)

// SafetyLevel is the overall safety verdict for a set of conditions.
type SafetyLevel string

const (
	SafetySafe      SafetyLevel = "safe"
	SafetyCaution   SafetyLevel = "caution"
	SafetyDangerous SafetyLevel = "dangerous"
	SafetyUnknown   SafetyLevel = "unknown"
)

// HourSample is one hourly forecast slot. Numeric fields are pointers because
// the marine API reports gaps as null; a sample with any missing field is
// unscorable and scores 0.
type HourSample struct {
	Hour           int      `json:"hour"`
	Time           string   `json:"time"`
	WaveHeight     *float64 `json:"wave_height"`
	WaveDirection  *float64 `json:"wave_direction"`
	WavePeriod     *float64 `json:"wave_period"`
	SwellHeight    *float64 `json:"swell_height"`
	SwellDirection *float64 `json:"swell_direction"`
	SwellPeriod    *float64 `json:"swell_period"`
	QualityScore   float64  `json:"quality_score"`
}

// Scorable reports whether all four fields the quality scorer needs are present.
func (h HourSample) Scorable() bool {
	return h.WaveHeight != nil && h.WavePeriod != nil && h.SwellHeight != nil && h.SwellPeriod != nil
}

// Analysis is the full conditions breakdown for one fetched time series.
// It is built once per fetch and never mutated afterwards.
type Analysis struct {
	Current            HourSample   `json:"current_conditions"`
	QualityScore       float64      `json:"quality_score"`
	QualityDescription string       `json:"quality_description"`
	Hours              []HourSample `json:"hourly_analysis"`
	BestTimes          []HourSample `json:"best_times"`
	Recommendations    []string     `json:"recommendations"`
}

// SafetyAssessment is the risk verdict for current conditions given a
// surfer's experience level.
type SafetyAssessment struct {
	Experience      Experience  `json:"user_experience"`
	Level           SafetyLevel `json:"safety_level"`
	Score           int         `json:"safety_score"`
	Warnings        []string    `json:"warnings"`
	Recommendations []string    `json:"recommendations"`
	Tips            []string    `json:"tips"`
}

// CityResult is the outcome for a single location in a comparison run.
type CityResult struct {
	City               string      `json:"city"`
	OK                 bool        `json:"ok"`
	Error              string      `json:"error,omitempty"`
	QualityScore       float64     `json:"quality_score"`
	QualityDescription string      `json:"quality_description,omitempty"`
	Current            *HourSample `json:"current_conditions,omitempty"`
}

// CityComparison holds a completed multi-city ranking. Ranked is sorted by
// quality score descending (stable on request order); Failed preserves
// request order.
type CityComparison struct {
	StartDate string       `json:"start_date,omitempty"`
	EndDate   string       `json:"end_date,omitempty"`
	Ranked    []CityResult `json:"ranked"`
	Failed    []CityResult `json:"failed"`
}
