package engine

import "regexp"

const contactCheckPoints = 5

var (
	emailPattern = regexp.MustCompile(`\b[\w.-]+@[\w.-]+\.\w{2,4}\b`)
	phonePattern = regexp.MustCompile(`(\+\d{1,2}\s?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`)
	linkPattern  = regexp.MustCompile(`(?i)linkedin\.com|github\.com|portfolio|website`)
)

// checkContactInfo awards 5 points each for an email address, a phone
// number, and a professional link. A fully satisfied check set gets one
// affirmative line instead of the per-item negatives.
func checkContactInfo(text string) categoryScore {
	score := 0
	feedback := []string{}

	if emailPattern.MatchString(text) {
		score += contactCheckPoints
	} else {
		feedback = append(feedback, "Missing email address.")
	}

	if phonePattern.MatchString(text) {
		score += contactCheckPoints
	} else {
		feedback = append(feedback, "Missing phone number.")
	}

	if linkPattern.MatchString(text) {
		score += contactCheckPoints
	} else {
		feedback = append(feedback, "Consider adding LinkedIn or portfolio links.")
	}

	if score == contactWeight {
		feedback = append(feedback, "Contact information is complete.")
	}

	return categoryScore{score: score, feedback: feedback}
}
