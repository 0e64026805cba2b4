package scoring

import (
	"fmt"
	"regexp"
	"strings"
)

// Tier names for the three AI-evidence strength buckets.
const (
	TierSuccess = "success"
	TierPlan    = "plan"
	TierGeneric = "generic"
)

// KeywordTier is the swappable configuration for one evidence tier:
// literal terms, regex patterns, and the point value of each match.
type KeywordTier struct {
	Name           string   `json:"name"`
	Terms          []string `json:"terms"`
	Regexes        []string `json:"regexes"`
	PointsPerMatch int      `json:"points_per_match"`
}

// TierPoints holds per-tier keyword point totals for one text segment.
type TierPoints struct {
	Success int
	Plan    int
	Generic int
}

// Total returns the combined point count across tiers.
func (p TierPoints) Total() int { return p.Success + p.Plan + p.Generic }

// Scale multiplies every tier total by m, truncating to integers. Used for
// recency decay on news-type segments.
func (p TierPoints) Scale(m float64) TierPoints {
	return TierPoints{
		Success: int(float64(p.Success) * m),
		Plan:    int(float64(p.Plan) * m),
		Generic: int(float64(p.Generic) * m),
	}
}

type compiledTier struct {
	name    string
	terms   []string
	regexes []*regexp.Regexp
	points  int
}

// TierMatcher classifies lowercased text into the three keyword tiers.
// Tiers are evaluated independently; a substring matching term lists in
// more than one tier counts toward each.
type TierMatcher struct {
	tiers []compiledTier
}

// NewTierMatcher compiles tier configuration. Each of the three tier names
// must appear exactly once.
func NewTierMatcher(tiers []KeywordTier) (*TierMatcher, error) {
	seen := make(map[string]bool, len(tiers))
	m := &TierMatcher{tiers: make([]compiledTier, 0, len(tiers))}
	for _, t := range tiers {
		switch t.Name {
		case TierSuccess, TierPlan, TierGeneric:
		default:
			return nil, fmt.Errorf("unknown keyword tier %q", t.Name)
		}
		if seen[t.Name] {
			return nil, fmt.Errorf("duplicate keyword tier %q", t.Name)
		}
		seen[t.Name] = true

		ct := compiledTier{name: t.Name, terms: t.Terms, points: t.PointsPerMatch}
		for _, pat := range t.Regexes {
			re, err := regexp.Compile(pat)
			if err != nil {
				return nil, fmt.Errorf("tier %s: invalid regex %q: %w", t.Name, pat, err)
			}
			ct.regexes = append(ct.regexes, re)
		}
		m.tiers = append(m.tiers, ct)
	}
	if len(seen) != 3 {
		return nil, fmt.Errorf("keyword tiers must define success, plan and generic, got %d tiers", len(seen))
	}
	return m, nil
}

// Match counts tiered keyword points in lowercased text. Term occurrences
// are literal substring counts; regex matches add to the same total.
func (m *TierMatcher) Match(textLower string) TierPoints {
	var p TierPoints
	for _, tier := range m.tiers {
		count := 0
		for _, term := range tier.terms {
			count += strings.Count(textLower, term)
		}
		for _, re := range tier.regexes {
			count += len(re.FindAllStringIndex(textLower, -1))
		}
		points := count * tier.points
		switch tier.name {
		case TierSuccess:
			p.Success += points
		case TierPlan:
			p.Plan += points
		case TierGeneric:
			p.Generic += points
		}
	}
	return p
}

// DefaultKeywordTiers is the current tier calibration: deployed-AI
// evidence at 3 points, strategy/roadmap evidence at 2, generic mentions
// at 1.
func DefaultKeywordTiers() []KeywordTier {
	return []KeywordTier{
		{
			Name: TierSuccess,
			Terms: []string{
				"ai-powered", "ai powered", "ml-driven", "ml driven",
				"ai deployment", "deployed ai", "ai in production",
				"production model", "model serving", "inference pipeline",
				"ai revenue", "ai-generated revenue",
				"automated with ai", "automated with ml",
				"ai transformation results", "roi from ai",
				"ai patent",
			},
			Regexes: []string{
				`\b\d+%.*(?:automat|efficien|improv|reduc).*\b(?:ai|ml)\b`,
				`\b(?:ai|ml)\b.*\b\d+%.*(?:automat|efficien|improv|reduc)`,
				`\b(?:launch|ship|deploy|release)(?:ed|ing)?\b.*\b(?:ai|ml)\b`,
			},
			PointsPerMatch: 3,
		},
		{
			Name: TierPlan,
			Terms: []string{
				"ai strategy", "ai roadmap", "ai investment",
				"ai initiative", "ai transformation",
				"ai first", "ai-first",
				"chief ai officer", "head of ai", "vp of ai",
				"ai budget", "investing in ai", "ai partnership",
				"ai center of excellence", "ai coe",
				"ai governance", "responsible ai",
				"generative ai strategy", "genai strategy",
				"ai adoption", "ai maturity",
			},
			Regexes: []string{
				`\b(?:invest|commit|allocat|dedicat)(?:ed|ing|s)?\b.*\$?\d+.*\b(?:ai|ml|artificial intelligence)\b`,
				`\b(?:ai|ml)\b.*\b(?:pilot|poc|proof of concept|prototype)\b`,
			},
			PointsPerMatch: 2,
		},
		{
			Name: TierGeneric,
			Terms: []string{
				"artificial intelligence", "machine learning", "deep learning",
				"nlp", "computer vision", "generative ai", "llm",
				"data science", "experimentation", "data platform",
				"ml platform", "ai agent",
			},
			Regexes: []string{
				`\bai\b`,
				`\bml\b`,
			},
			PointsPerMatch: 1,
		},
	}
}
