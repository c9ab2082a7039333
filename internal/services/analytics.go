package services

import (
	"math"
	"slices"
	"strconv"

	"github.com/sbilibin2017/moodtrack/internal/models"
)

// Summarize aggregates a mood history. It has no side effects.
// The average is the mean intensity rounded to one decimal, "0" for no moods.
// The series is chronological and factor counts tally every activity occurrence.
func Summarize(moods []models.Mood) models.MoodAnalytics {
	summary := models.MoodAnalytics{
		AverageDisplay: "0",
		TotalEntries:   len(moods),
		Series:         make([]models.ChartPoint, 0, len(moods)),
		FactorCounts:   make(map[string]int),
	}
	if len(moods) == 0 {
		return summary
	}

	sum := 0
	for _, m := range moods {
		sum += m.Intensity
		summary.Series = append(summary.Series, models.ChartPoint{
			Date:      m.Date,
			Label:     m.Mood,
			Intensity: m.Intensity,
		})
		for _, activity := range m.Activities {
			summary.FactorCounts[activity]++
		}
	}

	slices.SortStableFunc(summary.Series, func(a, b models.ChartPoint) int {
		return a.Date.Compare(b.Date)
	})

	summary.AverageMood = roundTenth(float64(sum) / float64(len(moods)))
	summary.AverageDisplay = strconv.FormatFloat(summary.AverageMood, 'f', 1, 64)

	return summary
}

// roundTenth rounds to one decimal with halves going up, so 7.25 becomes 7.3.
func roundTenth(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}
