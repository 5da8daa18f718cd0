package engine

// stopWords is the closed set of generic business, HR, and tech filler
// terms excluded from job-description keyword extraction. Frozen at
// process start; never mutated.
var stopWords = makeStopWordSet([]string{
	"and", "the", "is", "in", "at", "of", "or", "to", "for", "with",
	"a", "an", "as", "by", "on", "be", "we", "are", "you", "will",
	"have", "that", "this", "from", "it", "can", "not", "but", "if",
	"job", "description", "responsibilities", "requirements",
	"qualifications", "experience", "skills", "work", "team", "role",
	"candidate", "ability", "knowledge", "understanding", "proficient",
	"strong", "excellent", "good", "preferred", "plus", "years",
	"degree", "bachelor", "master", "university", "college", "school",
	"high", "diploma", "certificate", "certification", "license",
	"must", "should", "able", "willing", "opportunity", "company",
	"business", "client", "customer", "service", "support",
	"development", "design", "implementation", "management", "project",
	"product", "system", "application", "software", "solution",
	"technology", "technical", "environment", "platform", "tool",
	"language", "framework", "library", "database", "server", "cloud",
	"web", "mobile", "app", "user", "interface", "frontend", "backend",
	"fullstack", "stack", "code", "programming", "scripting", "testing",
	"debugging", "deployment", "maintenance", "documentation", "agile",
	"scrum", "waterfall", "methodology", "process", "lifecycle", "best",
	"practice", "standard", "quality", "performance", "scalability",
	"security", "reliability", "availability", "efficiency",
	"optimization", "improvement", "innovation", "creativity",
	"problem", "solving", "analytical", "critical", "thinking",
	"communication", "interpersonal", "collaboration", "teamwork",
	"leadership", "mentorship", "coaching", "training", "learning",
	"growth", "career", "salary", "benefits", "compensation",
	"location", "remote", "hybrid", "onsite", "office", "hours",
	"schedule", "time", "date", "start", "end", "duration", "contract",
	"permanent", "temporary", "internship", "freelance", "part-time",
	"full-time",
})

func makeStopWordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		set[word] = struct{}{}
	}
	return set
}
