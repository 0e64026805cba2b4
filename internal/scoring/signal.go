// Package scoring implements the AI readiness signal-extraction and scoring
// core: tiered keyword matching, tool-stack detection, agentic and
// non-engineering role signals, recency decay, and the weighted score
// calculator that turns aggregated signals into a company score.
package scoring

import "github.com/dutchdutchdutch/signalscore/internal/sources"

// Attribution keys into SignalData.SourceAttribution.
const (
	AttrAIKeywords    = "ai_keywords"
	AttrToolStack     = "tool_stack"
	AttrAgentic       = "agentic_signals"
	AttrNonEngAIRoles = "non_eng_ai_roles"
)

// SignalData is the aggregate evidence for one company across one scoring
// run. Counters are raw sums except where noted; the aggregation caps for
// agentic, non-engineering and engineering signals are applied when the
// analyzer finalizes the record.
type SignalData struct {
	// AIKeywords is the tiered keyword point total attributed to
	// non-engineering sources.
	AIKeywords int `json:"ai_keywords"`
	// AIInITSignals is the tiered keyword point total attributed to
	// engineering sources, capped at 15.
	AIInITSignals int `json:"ai_in_it_signals"`

	// Tier subtotals feeding the two buckets above.
	AISuccessPoints int `json:"ai_success_points"`
	AIPlanPoints    int `json:"ai_plan_points"`
	AIGenericPoints int `json:"ai_generic_points"`

	// AgenticSignals counts automation/agent mentions, capped at 15.
	AgenticSignals int `json:"agentic_signals"`

	// ToolStack holds canonical tool names in discovery order, no
	// duplicates.
	ToolStack []string `json:"tool_stack"`
	// WeightedToolCount sums, per unique tool, the maximum source weight
	// at which it was observed.
	WeightedToolCount float64 `json:"weighted_tool_count"`

	// NonEngAIRoles is the point total from non-engineering role signals,
	// capped at 15.
	NonEngAIRoles int `json:"non_eng_ai_roles"`

	HasAIPlatformTeam    bool `json:"has_ai_platform_team"`
	IsAIPlatformProvider bool `json:"is_ai_platform_provider"`

	// JobsAnalyzed counts distinct text segments processed.
	JobsAnalyzed int `json:"jobs_analyzed"`

	// SourceAttribution records which source labels contributed to each
	// signal category. Entries are not unique; the list is provenance for
	// conflict detection, not a counter.
	SourceAttribution map[string][]sources.Label `json:"source_attribution"`

	// MarketingOnly flags AI claims found only in low-trust promotional
	// sources with no engineering or investor-relations corroboration.
	MarketingOnly bool `json:"marketing_only"`

	// ConfidenceScore in [0,1], derived from segment-label diversity.
	ConfidenceScore float64 `json:"confidence_score"`

	// NewsSourcesFound counts segments labeled as news/press/IR types.
	NewsSourcesFound int `json:"news_sources_found"`

	// SampleQuotes holds up to two short verbatim lines for the evidence
	// trail.
	SampleQuotes []string `json:"sample_quotes,omitempty"`
}

// Attributed reports whether the given label contributed to the given
// signal category.
func (s *SignalData) Attributed(key string, label sources.Label) bool {
	for _, l := range s.SourceAttribution[key] {
		if l == label {
			return true
		}
	}
	return false
}

// CompanyScore is the final, immutable scoring result for one company.
// The persistence layer stores these as an append-only history.
type CompanyScore struct {
	CompanyName     string             `json:"company_name"`
	Score           float64            `json:"score"`
	Category        Category           `json:"category"`
	CategoryLabel   string             `json:"category_label"`
	Signals         SignalData         `json:"signals"`
	ComponentScores map[string]float64 `json:"component_scores"`
	Evidence        []string           `json:"evidence"`
	ConfidenceScore float64            `json:"confidence_score"`
}

// EvidenceDisplayLimit is the number of evidence entries shown at the
// presentation boundary. The full trail stays on the record.
const EvidenceDisplayLimit = 5

// TopEvidence returns the first entries of the evidence trail, truncated
// for display.
func (cs *CompanyScore) TopEvidence() []string {
	if len(cs.Evidence) <= EvidenceDisplayLimit {
		return cs.Evidence
	}
	return cs.Evidence[:EvidenceDisplayLimit]
}
