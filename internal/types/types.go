package types

// ScoreResumeInput represents the input for scoring a resume
type ScoreResumeInput struct {
	Content        string `json:"content"`
	JobDescription string `json:"jobDescription,omitempty"`
}

// CategoryResult holds one scored dimension and its feedback lines
type CategoryResult struct {
	Score    int      `json:"score"` // 0-100, renormalized within the category's weight band
	Feedback []string `json:"feedback"`
}

// SectionScores groups the five category results shown to the user
type SectionScores struct {
	Impact    CategoryResult `json:"impact"`    // quantified-achievement density
	Brevity   CategoryResult `json:"brevity"`   // word-count band
	Style     CategoryResult `json:"style"`     // standard section presence
	Structure CategoryResult `json:"structure"` // contact information
	Skills    CategoryResult `json:"skills"`    // keyword coverage
}

// KeywordMatch partitions the target vocabulary into present and missing terms
type KeywordMatch struct {
	Present []string `json:"present"`
	Missing []string `json:"missing"`
}

// AnalysisResult is the complete output of a scoring run
type AnalysisResult struct {
	Score    int           `json:"score"` // 0-100 overall
	Summary  string        `json:"summary"`
	Sections SectionScores `json:"sections"`
	Keywords KeywordMatch  `json:"keywords"`
}
