package engine

import (
	"math"
	"regexp"
	"strings"
)

const (
	// A job description must exceed this trimmed length before keywords
	// are derived from it; anything shorter falls back to the default
	// vocabulary.
	minJobDescriptionLength = 20

	// Tokens must be longer than this to survive extraction.
	minTokenLength = 3

	// Derived vocabularies are capped to keep noise out.
	maxDerivedKeywords = 20

	// More than half the vocabulary present earns the positive line.
	keywordMatchThreshold = 0.5
)

// defaultVocabulary is the built-in keyword list used when no usable job
// description is supplied.
var defaultVocabulary = []string{
	"javascript",
	"typescript",
	"react",
	"node",
	"python",
	"java",
	"sql",
	"aws",
	"docker",
	"agile",
	"communication",
	"leadership",
	"problem solving",
	"analysis",
	"design",
}

var nonWordPattern = regexp.MustCompile(`[^\w\s]`)

// keywordScore is the keyword checker's raw result plus the vocabulary
// partition exposed in the final analysis.
type keywordScore struct {
	score    int
	feedback []string
	present  []string
	missing  []string
}

// checkKeywords builds the target vocabulary, matches every keyword
// against the resume as a case-insensitive whole word, and scores the
// coverage ratio. An empty derived vocabulary (a job description made
// entirely of filler) does not fall back to the default list; it takes
// the empty-vocabulary branch instead.
func checkKeywords(text, jobDescription string) keywordScore {
	vocabulary := defaultVocabulary
	if len(strings.TrimSpace(jobDescription)) > minJobDescriptionLength {
		vocabulary = extractKeywords(jobDescription)
	}

	if len(vocabulary) == 0 {
		return keywordScore{
			score:    keywordWeight,
			feedback: []string{"No specific keywords to check against."},
			present:  []string{},
			missing:  []string{},
		}
	}

	present := []string{}
	missing := []string{}
	for _, keyword := range vocabulary {
		pattern := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`)
		if pattern.MatchString(text) {
			present = append(present, keyword)
		} else {
			missing = append(missing, keyword)
		}
	}

	matchRatio := float64(len(present)) / float64(len(vocabulary))
	score := int(math.Round(matchRatio * keywordWeight))

	feedback := []string{"Missing many critical keywords from the job description/industry standard."}
	if matchRatio > keywordMatchThreshold {
		feedback = []string{"Good match with the target keywords."}
	}

	return keywordScore{score: score, feedback: feedback, present: present, missing: missing}
}

// extractKeywords derives an order-preserving, de-duplicated keyword set
// from job description text: lowercase, strip punctuation, split on
// whitespace, then drop short tokens and stop words.
func extractKeywords(jobDescription string) []string {
	cleaned := nonWordPattern.ReplaceAllString(strings.ToLower(jobDescription), "")

	seen := make(map[string]struct{})
	keywords := []string{}
	for _, word := range strings.Fields(cleaned) {
		if len(word) <= minTokenLength {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		keywords = append(keywords, word)
		if len(keywords) == maxDerivedKeywords {
			break
		}
	}
	return keywords
}
