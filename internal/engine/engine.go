// Package engine implements the deterministic, rule-based resume scoring
// pipeline. A single call scores contact information, section presence,
// content quality, and keyword coverage, then combines the weighted raw
// scores into one 0-100 overall score. The engine performs no I/O and
// holds no state between calls, so it is safe for concurrent use.
package engine

import (
	"math"
	"strings"
	"unicode/utf8"

	"cvscore/internal/errors"
	"cvscore/internal/types"
)

// Calibration constants. The weights sum to 100; the band thresholds and
// multipliers are tuned values, kept named so they can be tested and
// adjusted independently of the pipeline shape.
const (
	// MinContentLength is the minimum trimmed character count required
	// before a resume carries enough signal to analyze.
	MinContentLength = 50

	contactWeight  = 15
	sectionsWeight = 25
	metricsWeight  = 15
	brevityWeight  = 15
	keywordWeight  = 30

	excellentThreshold = 80
	goodThreshold      = 60
)

// categoryScore is the raw weighted result of one checker.
type categoryScore struct {
	score    int
	feedback []string
}

// Analyze scores resume text against an optional job description and
// returns the complete analysis. It fails fast on missing or too-short
// content; no partial result is ever returned.
func Analyze(text, jobDescription string) (types.AnalysisResult, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return types.AnalysisResult{}, errors.NewValidationError(
			errors.ErrCodeMissingContent, "No resume content provided", nil)
	}
	if utf8.RuneCountInString(trimmed) < MinContentLength {
		return types.AnalysisResult{}, errors.NewValidationError(
			errors.ErrCodeInsufficientContent, "Resume content is too short for analysis", nil)
	}

	contact := checkContactInfo(text)
	sections := checkSections(text)
	content := checkContentQuality(text)
	keywords := checkKeywords(text, jobDescription)

	total := contact.score + sections.score + content.metrics.score +
		content.brevity.score + keywords.score
	if total > 100 {
		total = 100
	}

	return types.AnalysisResult{
		Score:   total,
		Summary: scoreSummary(total),
		Sections: types.SectionScores{
			Structure: types.CategoryResult{
				Score:    bandPercent(contact.score, contactWeight),
				Feedback: contact.feedback,
			},
			Style: types.CategoryResult{
				Score:    bandPercent(sections.score, sectionsWeight),
				Feedback: sections.feedback,
			},
			Impact: types.CategoryResult{
				Score:    bandPercent(content.metrics.score, metricsWeight),
				Feedback: content.metrics.feedback,
			},
			Brevity: types.CategoryResult{
				Score:    bandPercent(content.brevity.score, brevityWeight),
				Feedback: content.brevity.feedback,
			},
			Skills: types.CategoryResult{
				Score:    bandPercent(keywords.score, keywordWeight),
				Feedback: keywords.feedback,
			},
		},
		Keywords: types.KeywordMatch{
			Present: keywords.present,
			Missing: keywords.missing,
		},
	}, nil
}

// bandPercent renormalizes a raw weighted score to a 0-100 percentage of
// its category's weight band.
func bandPercent(raw, weight int) int {
	percent := int(math.Round(float64(raw) / float64(weight) * 100))
	if percent > 100 {
		percent = 100
	}
	return percent
}

// scoreSummary maps the overall score to one of three narrative tiers.
// Boundaries are inclusive: 80 and 60 belong to the higher tier.
func scoreSummary(total int) string {
	switch {
	case total >= excellentThreshold:
		return "Excellent resume! It is well-structured, contains all necessary contact details, and uses strong keywords and metrics."
	case total >= goodThreshold:
		return "Good start, but there is room for improvement. Ensure all key sections are present and try to quantify your achievements more."
	default:
		return "Your resume needs attention. Please ensure you have included contact info, standard sections (Experience, Education), and relevant keywords."
	}
}
