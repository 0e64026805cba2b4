package sources

import "strings"

// Detect infers a source label from a URL and its extracted text. It is a
// best-effort heuristic used when a scraped page arrives without an upstream
// classification, e.g. during manual rescoring with caller-supplied URLs.
func Detect(url, text string) Label {
	urlLower := strings.ToLower(url)
	textLower := strings.ToLower(text)

	// Job postings first: the URL shape is unambiguous, then the text
	// decides which department the role belongs to.
	jobPaths := []string{"/jobs/", "/careers/", "/job/", "job-id", "application", "jobs/results"}
	if containsAny(urlLower, jobPaths) {
		switch {
		case containsAny(textLower, []string{"product manager", "product management", "pm "}):
			return ProductRole
		case containsAny(textLower, []string{"marketing", "growth", "brand"}):
			return MarketingRole
		case containsAny(textLower, []string{"legal", "counsel", "attorney", "compliance"}):
			return LegalRole
		default:
			return JobPosting
		}
	}

	if strings.Contains(urlLower, "blog") || strings.Contains(urlLower, "developers") {
		return EngineeringBlog
	}

	if strings.Contains(urlLower, "github") {
		return GitHub
	}

	if containsAny(urlLower, []string{"ai.", "research.", "labs.", "ml."}) {
		return SubdomainAI
	}

	return ManualRescore
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
