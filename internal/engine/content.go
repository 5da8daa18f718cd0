package engine

import (
	"regexp"
	"strings"
)

const (
	// Each quantified achievement is worth 3 points, capped at the
	// metrics weight; more than 3 matches earns the positive line.
	metricPointValue        = 3
	metricPositiveThreshold = 3

	// Word-count bands. Boundary values fall outside the optimal band:
	// exactly 200 words is "too short", exactly 1000 is "too long".
	shortWordLimit = 200
	longWordLimit  = 1000

	optimalBrevityScore = 15
	shortBrevityScore   = 5
	longBrevityScore    = 10
)

// metricPattern matches quantified achievements: a percentage, a currency
// amount, or a number followed by a word ("10 years").
var metricPattern = regexp.MustCompile(`\d+%|\$\d+|\d+\s\w+`)

// contentScore holds the two independent content-quality sub-scores.
type contentScore struct {
	metrics categoryScore
	brevity categoryScore
}

// checkContentQuality scores quantified-achievement density and overall
// length as separate 15-point sub-scores.
func checkContentQuality(text string) contentScore {
	metricsCount := len(metricPattern.FindAllString(text, -1))
	metricsScore := metricsCount * metricPointValue
	if metricsScore > metricsWeight {
		metricsScore = metricsWeight
	}

	metricsFeedback := []string{"Add more numbers and percentages to quantify achievements."}
	if metricsCount > metricPositiveThreshold {
		metricsFeedback = []string{"Good use of quantifiable metrics."}
	}

	wordCount := len(strings.Fields(text))
	var brevityScore int
	var brevityFeedback []string

	switch {
	case wordCount > shortWordLimit && wordCount < longWordLimit:
		brevityScore = optimalBrevityScore
		brevityFeedback = []string{"Resume length is optimal."}
	case wordCount <= shortWordLimit:
		brevityScore = shortBrevityScore
		brevityFeedback = []string{"Resume is too short. Add more detail."}
	default:
		brevityScore = longBrevityScore
		brevityFeedback = []string{"Resume might be too long. Keep it concise."}
	}

	return contentScore{
		metrics: categoryScore{score: metricsScore, feedback: metricsFeedback},
		brevity: categoryScore{score: brevityScore, feedback: brevityFeedback},
	}
}
