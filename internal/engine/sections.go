package engine

import (
	"fmt"
	"regexp"
)

// sectionRule describes one standard resume section tested by synonym match.
type sectionRule struct {
	name    string
	pattern *regexp.Regexp
	points  int
}

var sectionRules = []sectionRule{
	{name: "Experience", pattern: regexp.MustCompile(`(?i)experience|employment|work history`), points: 10},
	{name: "Education", pattern: regexp.MustCompile(`(?i)education|academic|degree`), points: 5},
	{name: "Skills", pattern: regexp.MustCompile(`(?i)skills|technologies|competencies`), points: 5},
	{name: "Projects", pattern: regexp.MustCompile(`(?i)projects|portfolio`), points: 5},
}

// checkSections tests each standard section against the whole text and
// reports every missing one by name.
func checkSections(text string) categoryScore {
	score := 0
	feedback := []string{}

	for _, rule := range sectionRules {
		if rule.pattern.MatchString(text) {
			score += rule.points
		} else {
			feedback = append(feedback, fmt.Sprintf("Missing '%s' section.", rule.name))
		}
	}

	if score == sectionsWeight {
		feedback = append(feedback, "All key sections are present.")
	}

	return categoryScore{score: score, feedback: feedback}
}
