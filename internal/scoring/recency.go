package scoring

import (
	"regexp"
	"strings"
	"time"
	"unicode"
)

// Recency decay for time-sensitive evidence. News and press text older
// than a quarter says nothing about current AI posture.
const (
	// NeutralRecency applies when no date can be extracted: partial trust.
	NeutralRecency = 0.7

	freshWindowDays  = 45
	recentWindowDays = 90

	// Dates before this year are treated as extraction noise, not genuine
	// old articles.
	minPlausibleYear = 2020
)

// Literal date format families tried against extracted candidates:
// long month-name, ISO, slash-delimited, day-first.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\w+ \d{1,2},? \d{4}`),
	regexp.MustCompile(`\d{4}-\d{2}-\d{2}`),
	regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}`),
	regexp.MustCompile(`\d{1,2} \w+ \d{4}`),
}

var dateFormats = []string{
	"January 2, 2006", "January 2 2006", "Jan 2, 2006", "Jan 2 2006",
	"2006-01-02",
	"1/2/2006",
	"2 January 2006", "2 Jan 2006",
}

// RecencyMultiplier extracts dates from news-like text and derives a decay
// multiplier relative to now. Individually unparseable candidates are
// skipped; only the most recent plausible date counts.
func RecencyMultiplier(text string, now time.Time) float64 {
	var mostRecent time.Time
	found := false

	for _, pat := range datePatterns {
		for _, candidate := range pat.FindAllString(text, -1) {
			d, ok := parseDate(strings.TrimSpace(candidate))
			if !ok || d.Year() < minPlausibleYear {
				continue
			}
			if !found || d.After(mostRecent) {
				mostRecent = d
				found = true
			}
		}
	}

	if !found {
		return NeutralRecency
	}

	ageDays := int(now.Sub(mostRecent).Hours() / 24)
	switch {
	case ageDays <= freshWindowDays:
		return 1.0
	case ageDays <= recentWindowDays:
		return 0.5
	default:
		return 0.0
	}
}

func parseDate(candidate string) (time.Time, bool) {
	// Month names arrive lowercased from the analyzer; time.Parse wants
	// them capitalized.
	titled := titleWords(candidate)
	for _, format := range dateFormats {
		if d, err := time.Parse(format, titled); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

func titleWords(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		r := []rune(f)
		r[0] = unicode.ToUpper(r[0])
		fields[i] = string(r)
	}
	return strings.Join(fields, " ")
}
