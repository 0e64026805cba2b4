package crawl

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Hosted applicant-tracking systems. A careers page that links or embeds
// one of these gives us a direct feed of real job postings.
var atsPatterns = []string{
	"greenhouse.io",
	"boards.greenhouse.io",
	"jobs.lever.co",
	"lever.co",
	"myworkdayjobs.com",
	"myworkday.com",
	"workday.com",
	"jobs.ashby.io",
	"ashby.io",
	"icims.com",
	"smartrecruiters.com",
}

// jobLinkKeywords mark hrefs that likely lead to job postings.
var jobLinkKeywords = []string{"job", "career", "position", "role", "detail", "apply"}

// careerPathPatterns mark internal paths worth following when looking for
// a careers section.
var careerPathPatterns = []string{"career", "job", "opening", "position", "team", "work-with-us", "join"}

// MaxJobLinks caps the number of job-link candidates returned per page.
const MaxJobLinks = 10

// IsATSURL reports whether a URL belongs to a known ATS platform.
func IsATSURL(u string) bool {
	if u == "" {
		return false
	}
	lower := strings.ToLower(u)
	for _, pattern := range atsPatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}

// ExtractATSLinks scans HTML for ATS platform links and iframe embeds.
// Returns a deduplicated list in document order.
func ExtractATSLinks(html string) []string {
	if html == "" {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)
	var found []string
	add := func(u string) {
		if IsATSURL(u) && !seen[u] {
			seen[u] = true
			found = append(found, u)
		}
	}

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		if href, ok := s.Attr("href"); ok {
			add(href)
		}
	})
	// Greenhouse embeds its board in an iframe.
	doc.Find("iframe[src]").Each(func(_ int, s *goquery.Selection) {
		if src, ok := s.Attr("src"); ok {
			add(src)
		}
	})

	return found
}

// FindJobLinks parses HTML for likely job posting links, ATS embeds
// included. Relative hrefs are resolved against baseURL. Returns up to
// MaxJobLinks candidates in document order.
func FindJobLinks(html, baseURL string) ([]string, error) {
	if html == "" {
		return nil, nil
	}
	base, err := url.Parse(baseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, &LinkExtractionError{Message: "invalid base URL: " + baseURL, Cause: err}
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &LinkExtractionError{Message: "failed to parse HTML", Cause: err}
	}

	seen := make(map[string]bool)
	var candidates []string
	add := func(u string) {
		if !seen[u] {
			seen[u] = true
			candidates = append(candidates, u)
		}
	}

	for _, link := range ExtractATSLinks(html) {
		if resolved, ok := resolve(base, link); ok {
			add(resolved)
		}
	}

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok || href == "" {
			return
		}
		full, ok := resolve(base, href)
		if !ok {
			return
		}
		// Skip same-page anchors.
		if strings.SplitN(full, "#", 2)[0] == strings.SplitN(baseURL, "#", 2)[0] {
			return
		}

		lowerHref := strings.ToLower(href)
		lowerText := strings.ToLower(s.Text())
		if containsAnyKeyword(lowerHref, jobLinkKeywords) || strings.Contains(lowerText, "job") {
			add(full)
		}
	})

	// Keep links with job-specific structure; ATS links always pass.
	var filtered []string
	for _, link := range candidates {
		switch {
		case IsATSURL(link):
			filtered = append(filtered, link)
		case strings.Contains(link, "/job/") || strings.Contains(link, "/careers/"):
			filtered = append(filtered, link)
		case len(link) > len(baseURL)+10:
			filtered = append(filtered, link)
		}
	}

	if len(filtered) > MaxJobLinks {
		filtered = filtered[:MaxJobLinks]
	}
	return filtered, nil
}

// CareerSubpages finds same-domain links that look like career or job
// listing pages, for the deeper crawl used when too few job links surface.
func CareerSubpages(html, baseURL string) ([]string, error) {
	if html == "" {
		return nil, nil
	}
	base, err := url.Parse(baseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, &LinkExtractionError{Message: "invalid base URL: " + baseURL, Cause: err}
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &LinkExtractionError{Message: "failed to parse HTML", Cause: err}
	}

	baseDomain := strings.TrimPrefix(base.Host, "www.")
	seen := make(map[string]bool)
	var subpages []string

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok || href == "" {
			return
		}
		linkURL, err := url.Parse(href)
		if err != nil {
			return
		}
		resolved := base.ResolveReference(linkURL)

		// Same domain only, but allow subdomains like careers.company.com.
		if resolved.Host != base.Host && !strings.HasSuffix(resolved.Host, baseDomain) {
			return
		}

		if containsAnyKeyword(strings.ToLower(resolved.Path), careerPathPatterns) {
			u := resolved.String()
			if !seen[u] {
				seen[u] = true
				subpages = append(subpages, u)
			}
		}
	})

	return subpages, nil
}

func resolve(base *url.URL, href string) (string, bool) {
	linkURL, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	resolved := base.ResolveReference(linkURL)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return "", false
	}
	return resolved.String(), true
}

func containsAnyKeyword(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
