package scoring

import (
	"strings"
	"time"

	"github.com/dutchdutchdutch/signalscore/internal/sources"
)

// Aggregation caps applied when the SignalData record is finalized.
const (
	agenticAggregateCap = 15
	nonEngAggregateCap  = 15
	aiInITAggregateCap  = 15
)

// Provider-language indicator phrases: signs the company ships AI products
// for external use rather than only using AI internally.
var providerIndicators = []string{
	"our api", "our sdk", "our model", "our platform",
	"api reference", "api documentation",
	"developer documentation", "developer console",
	"ai studio", "ai platform", "model api",
	"inference api", "inference endpoint",
	"fine-tune", "fine tuning", "model deployment",
	"playground", "model serving", "deploy model",
	"foundation model", "large language model",
	"embed our", "build with our", "integrate with our",
}

// providerIndicatorThreshold is the number of distinct indicator hits a
// single AI-focused segment needs to flag the company as a platform
// provider.
const providerIndicatorThreshold = 3

const maxSampleQuotes = 2

// Analyzer runs the per-segment detectors over a labeled segment map and
// aggregates the results into a SignalData record. Segment processing is
// commutative: totals are per-segment sums and per-tool maxima, so the
// fixed iteration order only pins down provenance ordering.
type Analyzer struct {
	tiers *TierMatcher
	tools *ToolDetector
	now   func() time.Time
}

// NewAnalyzer builds an analyzer from scoring configuration. Configuration
// errors (bad regexes, malformed tiers, empty vocabulary) fail here, before
// any text is processed.
func NewAnalyzer(cfg Config) (*Analyzer, error) {
	tiers, err := NewTierMatcher(cfg.KeywordTiers)
	if err != nil {
		return nil, err
	}
	tools, err := NewToolDetector(cfg.ToolVocabulary, cfg.ToolPatterns)
	if err != nil {
		return nil, err
	}
	return &Analyzer{tiers: tiers, tools: tools, now: time.Now}, nil
}

// WithClock overrides the time source used for recency decay. Intended for
// tests.
func (a *Analyzer) WithClock(now func() time.Time) *Analyzer {
	a.now = now
	return a
}

// Analyze processes every labeled segment and aggregates the per-segment
// signals into one SignalData. An empty map is not an error: it yields a
// zeroed record with confidence 0.
func (a *Analyzer) Analyze(segments map[sources.Label]string) SignalData {
	data := SignalData{
		ToolStack: []string{},
		SourceAttribution: map[string][]sources.Label{
			AttrAIKeywords:    {},
			AttrToolStack:     {},
			AttrAgentic:       {},
			AttrNonEngAIRoles: {},
		},
	}

	now := a.now()
	toolMaxWeights := make(map[string]float64)
	toolSeen := make(map[string]bool)
	var quotes []string

	for _, label := range orderedLabels(segments) {
		textLower := strings.ToLower(segments[label])

		// Tiered keyword points, decayed for news-type sources before
		// routing into the engineering / non-engineering buckets.
		points := a.tiers.Match(textLower)
		if label.IsNews() {
			points = points.Scale(RecencyMultiplier(textLower, now))
		}
		if points.Total() > 0 {
			data.SourceAttribution[AttrAIKeywords] = append(data.SourceAttribution[AttrAIKeywords], label)
		}
		if label.IsEngineering() {
			data.AIInITSignals += points.Total()
		} else {
			data.AIKeywords += points.Total()
		}
		data.AISuccessPoints += points.Success
		data.AIPlanPoints += points.Plan
		data.AIGenericPoints += points.Generic

		// Tool stack: first-seen names join the company-wide stack; every
		// sighting updates the per-tool maximum source weight.
		weight := label.ToolWeight()
		for _, tool := range a.tools.Detect(textLower) {
			if !toolSeen[tool] {
				toolSeen[tool] = true
				data.ToolStack = append(data.ToolStack, tool)
				data.SourceAttribution[AttrToolStack] = append(data.SourceAttribution[AttrToolStack], label)
			}
			if weight > toolMaxWeights[tool] {
				toolMaxWeights[tool] = weight
			}
		}

		if agentic := AgenticSignals(textLower); agentic > 0 {
			data.AgenticSignals += agentic
			data.SourceAttribution[AttrAgentic] = append(data.SourceAttribution[AttrAgentic], label)
		}

		if rolePoints := RoleSignals(label, textLower); rolePoints > 0 {
			data.NonEngAIRoles += rolePoints
			data.SourceAttribution[AttrNonEngAIRoles] = append(data.SourceAttribution[AttrNonEngAIRoles], label)
		}

		if strings.Contains(textLower, "platform") && strings.Contains(textLower, "ai") {
			data.HasAIPlatformTeam = true
		}

		if label.IsNews() {
			data.NewsSourcesFound++
		}

		if len(quotes) < maxSampleQuotes {
			if q := sampleQuote(textLower); q != "" {
				quotes = append(quotes, q)
			}
		}
	}

	for _, w := range toolMaxWeights {
		data.WeightedToolCount += w
	}

	data.JobsAnalyzed = len(segments)
	data.ConfidenceScore = confidence(segments)
	data.MarketingOnly = marketingOnly(&data)
	data.IsAIPlatformProvider = detectPlatformProvider(segments)
	data.SampleQuotes = quotes

	data.AgenticSignals = min(data.AgenticSignals, agenticAggregateCap)
	data.NonEngAIRoles = min(data.NonEngAIRoles, nonEngAggregateCap)
	data.AIInITSignals = min(data.AIInITSignals, aiInITAggregateCap)

	return data
}

// orderedLabels returns the segment labels present, in vocabulary order,
// so provenance lists and tool discovery order are stable across runs.
func orderedLabels(segments map[sources.Label]string) []sources.Label {
	ordered := make([]sources.Label, 0, len(segments))
	for _, l := range sources.All {
		if _, ok := segments[l]; ok {
			ordered = append(ordered, l)
		}
	}
	if _, ok := segments[sources.Unknown]; ok {
		ordered = append(ordered, sources.Unknown)
	}
	return ordered
}

// confidence derives trust from segment-label diversity. A single homepage
// is the weakest basis; three or more distinct sources is full confidence.
func confidence(segments map[sources.Label]string) float64 {
	switch len(segments) {
	case 0:
		return 0.0
	case 1:
		if _, ok := segments[sources.Homepage]; ok {
			return 0.5
		}
		return 0.7
	case 2:
		return 0.8
	default:
		return 1.0
	}
}

// marketingOnly flags AI claims present only in homepage copy: keyword
// volume above threshold, no corroborating engineering source in the
// keyword or tool provenance, and no investor-relations keyword evidence.
// IR disclosures are treated as credible — public financial statements
// carry legal weight, unlike homepage copy.
func marketingOnly(data *SignalData) bool {
	const volumeThreshold = 5

	homepageHasAI := data.Attributed(AttrAIKeywords, sources.Homepage)
	if !homepageHasAI {
		return false
	}
	for _, l := range data.SourceAttribution[AttrAIKeywords] {
		if l.Corroborates() || l == sources.InvestorRelations {
			return false
		}
	}
	for _, l := range data.SourceAttribution[AttrToolStack] {
		if l.Corroborates() {
			return false
		}
	}
	return data.AIKeywords+data.AIInITSignals > volumeThreshold
}

// detectPlatformProvider checks AI-focused segments for provider language.
// The first segment with enough distinct indicator phrases decides.
func detectPlatformProvider(segments map[sources.Label]string) bool {
	for _, label := range sources.AIFocused {
		text, ok := segments[label]
		if !ok {
			continue
		}
		content := strings.ToLower(text)
		hits := 0
		for _, indicator := range providerIndicators {
			if strings.Contains(content, indicator) {
				hits++
			}
		}
		if hits >= providerIndicatorThreshold {
			return true
		}
	}
	return false
}

// sampleQuote picks one short AI-relevant line from a segment for the
// evidence trail.
func sampleQuote(textLower string) string {
	for _, line := range strings.Split(textLower, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < 30 || len(line) > 160 {
			continue
		}
		if agentWordRe.MatchString(line) || strings.Contains(line, "artificial intelligence") ||
			strings.Contains(line, " ai ") || strings.HasPrefix(line, "ai ") ||
			strings.Contains(line, "machine learning") {
			return "\"" + line + "\""
		}
	}
	return ""
}
