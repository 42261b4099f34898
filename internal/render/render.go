// Package render formats analysis results into display text. The core
// packages return structured data only; everything user-facing lives here so
// the chat and HTTP surfaces can share one wording.
package render

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/surfwatch/surfcast/internal/surf"
)

var titleCaser = cases.Title(language.English)

// Title renders a place name in display casing.
func Title(name string) string {
	return titleCaser.String(name)
}

// num formats an optional reading with the given precision, or a dash when
// the provider reported a gap.
func num(v *float64, decimals int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.*f", decimals, *v)
}

// Conditions renders the full surf report for one location.
func Conditions(city string, analysis *surf.Analysis, opts surf.FetchOptions) string {
	var b strings.Builder

	dateInfo := ""
	if opts.StartDate != "" {
		if opts.EndDate != "" && opts.EndDate != opts.StartDate {
			dateInfo = fmt.Sprintf(" from %s to %s", opts.StartDate, opts.EndDate)
		} else {
			dateInfo = fmt.Sprintf(" on %s", opts.StartDate)
		}
	}

	cur := analysis.Current
	fmt.Fprintf(&b, "Surfing Conditions for %s%s\n\n", Title(city), dateInfo)
	b.WriteString("Current Conditions:\n")
	fmt.Fprintf(&b, "- Wave Height: %sm\n", num(cur.WaveHeight, 1))
	fmt.Fprintf(&b, "- Wave Period: %ss\n", num(cur.WavePeriod, 1))
	fmt.Fprintf(&b, "- Swell Height: %sm\n", num(cur.SwellHeight, 1))
	fmt.Fprintf(&b, "- Swell Period: %ss\n", num(cur.SwellPeriod, 1))
	fmt.Fprintf(&b, "- Wave Direction: %s°\n\n", num(cur.WaveDirection, 0))

	fmt.Fprintf(&b, "Surf Quality: %.2f/10 - %s\n\n", analysis.QualityScore, analysis.QualityDescription)

	if len(analysis.BestTimes) > 0 {
		b.WriteString("Best Surfing Times:\n")
		for i, bt := range analysis.BestTimes {
			fmt.Fprintf(&b, "%d. %s - Quality: %.2f/10 (Wave: %sm, Period: %ss)\n",
				i+1, bt.Time, bt.QualityScore, num(bt.WaveHeight, 1), num(bt.WavePeriod, 1))
		}
		b.WriteString("\n")
	}

	b.WriteString("Recommendations:\n")
	for _, rec := range analysis.Recommendations {
		fmt.Fprintf(&b, "- %s\n", rec)
	}

	return b.String()
}

// Safety renders a safety-focused report.
func Safety(city string, analysis *surf.Analysis, sa surf.SafetyAssessment) string {
	var b strings.Builder

	cur := analysis.Current
	fmt.Fprintf(&b, "Safety Assessment for %s (%s Surfer)\n\n", Title(city), Title(string(sa.Experience)))
	fmt.Fprintf(&b, "Safety Level: %s\n", Title(string(sa.Level)))
	fmt.Fprintf(&b, "Safety Score: %d/10\n\n", sa.Score)

	b.WriteString("Current Conditions:\n")
	fmt.Fprintf(&b, "- Wave Height: %sm\n", num(cur.WaveHeight, 1))
	fmt.Fprintf(&b, "- Wave Period: %ss\n", num(cur.WavePeriod, 1))
	fmt.Fprintf(&b, "- Swell Height: %sm\n\n", num(cur.SwellHeight, 1))

	if len(sa.Warnings) > 0 {
		b.WriteString("Safety Warnings:\n")
		for _, w := range sa.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
		b.WriteString("\n")
	}

	if len(sa.Recommendations) > 0 {
		b.WriteString("Recommendations:\n")
		for _, r := range sa.Recommendations {
			fmt.Fprintf(&b, "- %s\n", r)
		}
		b.WriteString("\n")
	}

	b.WriteString("Safety Tips:\n")
	for _, t := range sa.Tips {
		fmt.Fprintf(&b, "- %s\n", t)
	}

	return b.String()
}

// Comparison renders the multi-city ranking: ranked list, fixed-width table,
// best-available recommendation, top-2 extreme-height call-outs, and failures.
func Comparison(cmp *surf.CityComparison) string {
	var b strings.Builder

	dateInfo := ""
	if cmp.StartDate != "" {
		dateInfo = " (" + cmp.StartDate
		if cmp.EndDate != "" && cmp.EndDate != cmp.StartDate {
			dateInfo += " to " + cmp.EndDate
		}
		dateInfo += ")"
	}
	fmt.Fprintf(&b, "Surfing Cities Comparison%s\n\n", dateInfo)

	if len(cmp.Ranked) > 0 {
		b.WriteString("Ranking (Best to Worst):\n")
		for i, c := range cmp.Ranked {
			fmt.Fprintf(&b, "%d. %s - Score: %.1f/10\n", i+1, Title(c.City), c.QualityScore)
			fmt.Fprintf(&b, "   %s\n", c.QualityDescription)
			fmt.Fprintf(&b, "   Wave: %sm @ %ss\n", num(c.Current.WaveHeight, 1), num(c.Current.WavePeriod, 1))
			fmt.Fprintf(&b, "   Swell: %sm @ %ss\n\n", num(c.Current.SwellHeight, 1), num(c.Current.SwellPeriod, 1))
		}

		b.WriteString("Detailed Comparison:\n")
		fmt.Fprintf(&b, "%-20s %-8s %-8s %-8s %-9s %-9s\n", "City", "Score", "Wave H.", "Wave P.", "Swell H.", "Swell P.")
		b.WriteString(strings.Repeat("-", 70) + "\n")
		for _, c := range cmp.Ranked {
			fmt.Fprintf(&b, "%-20s %-8.1f %-8s %-8s %-9s %-9s\n",
				Title(c.City), c.QualityScore,
				num(c.Current.WaveHeight, 1), num(c.Current.WavePeriod, 1),
				num(c.Current.SwellHeight, 1), num(c.Current.SwellPeriod, 1))
		}
		b.WriteString("\n")

		best := cmp.Ranked[0]
		b.WriteString("Recommendations:\n")
		switch {
		case best.QualityScore >= 6:
			fmt.Fprintf(&b, "- %s has the best conditions right now - highly recommended!\n", Title(best.City))
		case best.QualityScore >= 4:
			fmt.Fprintf(&b, "- %s has the best available conditions - decent for surfing\n", Title(best.City))
		default:
			fmt.Fprintf(&b, "- All cities have poor conditions currently. %s is the best of limited options\n", Title(best.City))
		}

		top := cmp.Ranked
		if len(top) > 2 {
			top = top[:2]
		}
		for _, c := range top {
			if c.Current.WaveHeight == nil {
				continue
			}
			if *c.Current.WaveHeight > 3 {
				fmt.Fprintf(&b, "- %s: High waves (%sm) - experienced surfers only\n", Title(c.City), num(c.Current.WaveHeight, 1))
			} else if *c.Current.WaveHeight < 0.5 {
				fmt.Fprintf(&b, "- %s: Very small waves (%sm) - good for beginners\n", Title(c.City), num(c.Current.WaveHeight, 1))
			}
		}
	}

	if len(cmp.Failed) > 0 {
		b.WriteString("\nIssues:\n")
		for _, c := range cmp.Failed {
			fmt.Fprintf(&b, "- %s: %s\n", Title(c.City), c.Error)
		}
	}

	return b.String()
}

// Coordinates renders a geocoding result.
func Coordinates(city string, coords surf.Coordinates) string {
	return fmt.Sprintf("Coordinates for %s: %.4f, %.4f", Title(city), coords.Latitude, coords.Longitude)
}
