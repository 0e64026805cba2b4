package scoring

import (
	"fmt"
	"strings"
)

// Component score keys. CompanyScore.ComponentScores holds exactly these
// five entries.
const (
	ComponentAIKeywords = "ai_keywords"
	ComponentAgentic    = "agentic_signals"
	ComponentToolStack  = "tool_stack"
	ComponentNonEngAI   = "non_eng_ai"
	ComponentAIInIT     = "ai_in_it"
)

const (
	platformTeamFloor      = 50.0
	marketingOnlyPenalty   = 0.5
	providerOverrideScore  = 95.0
	excellenceThreshold    = 90.0
	excellenceMinCount     = 2
	excellenceBonus        = 10.0
	highWaterThreshold     = 80.0
	highWaterMinCount      = 3
	highWaterFloorCategory = Operational
)

// Calculator turns an aggregated SignalData into a CompanyScore by
// normalizing, weighting and applying the override rules. Construction
// fails fast on invalid configuration; Calculate itself never errors.
type Calculator struct {
	weights    SignalWeights
	caps       Caps
	thresholds Thresholds
}

// NewCalculator validates the weight set, caps and thresholds and returns
// a ready calculator.
func NewCalculator(weights SignalWeights, caps Caps, thresholds Thresholds) (*Calculator, error) {
	if err := weights.Validate(); err != nil {
		return nil, fmt.Errorf("invalid signal weights: %w", err)
	}
	if err := caps.Validate(); err != nil {
		return nil, fmt.Errorf("invalid signal caps: %w", err)
	}
	if err := thresholds.Validate(); err != nil {
		return nil, fmt.Errorf("invalid category thresholds: %w", err)
	}
	return &Calculator{weights: weights, caps: caps, thresholds: thresholds}, nil
}

// NewDefaultCalculator uses the current default calibration.
func NewDefaultCalculator() *Calculator {
	c, err := NewCalculator(DefaultWeights(), DefaultCaps(), DefaultThresholds())
	if err != nil {
		// Defaults are compiled in; a failure here is a programming error.
		panic(err)
	}
	return c
}

// normalize maps a raw value onto the 0-100 scale against its cap.
func normalize(value, cap float64) float64 {
	if cap <= 0 {
		return 0.0
	}
	normalized := value / cap * 100
	if normalized > 100 {
		return 100.0
	}
	return normalized
}

// Calculate computes the weighted score, category and evidence trail for
// one company from its aggregated signals. Deterministic: identical input
// yields an identical result.
func (c *Calculator) Calculate(companyName string, signals SignalData) CompanyScore {
	aiKeywordsScore := normalize(float64(signals.AIKeywords), c.caps.AIKeywords)
	agenticScore := normalize(float64(signals.AgenticSignals), c.caps.Agentic)

	// Weighted tool count is the trust-adjusted view; fall back to the raw
	// count when no weighting pass ran.
	toolVal := signals.WeightedToolCount
	if toolVal <= 0 {
		toolVal = float64(len(signals.ToolStack))
	}
	toolStackScore := normalize(toolVal, c.caps.ToolStack)

	nonEngScore := normalize(float64(signals.NonEngAIRoles), c.caps.NonEngAIRoles)
	aiInITScore := normalize(float64(signals.AIInITSignals), c.caps.AIInIT)

	// A dedicated AI platform team is proof of at least moderate
	// engineering-AI maturity regardless of keyword volume.
	if signals.HasAIPlatformTeam && aiInITScore < platformTeamFloor {
		aiInITScore = platformTeamFloor
	}

	// Halve the unverified components when claims only appear in marketing
	// copy. Role and agentic signals stay: they may derive from
	// independently verified job postings.
	if signals.MarketingOnly {
		aiKeywordsScore *= marketingOnlyPenalty
		toolStackScore *= marketingOnlyPenalty
		aiInITScore *= marketingOnlyPenalty
	}

	componentScores := map[string]float64{
		ComponentAIKeywords: aiKeywordsScore,
		ComponentAgentic:    agenticScore,
		ComponentToolStack:  toolStackScore,
		ComponentNonEngAI:   nonEngScore,
		ComponentAIInIT:     aiInITScore,
	}

	weightedScore := aiKeywordsScore*c.weights.AIKeywords +
		agenticScore*c.weights.AgenticSignals +
		toolStackScore*c.weights.ToolStack +
		nonEngScore*c.weights.NonEngAI +
		aiInITScore*c.weights.AIInIT

	evidence := buildEvidence(signals)

	// Companies that build and ship AI platforms to external customers are
	// presumptively top tier regardless of how their internal language
	// scores.
	// The evidence line is recorded even when the score already clears the
	// floor, so the trail always shows the override was in effect.
	if signals.IsAIPlatformProvider {
		weightedScore = max(weightedScore, providerOverrideScore)
		evidence = append(evidence, "AI Platform Provider: company builds and provides AI tools/platforms to others")
	}

	// Excellence boost: several near-perfect components beat a uniformly
	// mediocre profile.
	excellent := countAtLeast(componentScores, excellenceThreshold)
	if excellent >= excellenceMinCount {
		weightedScore += excellenceBonus
		if weightedScore > 100 {
			weightedScore = 100
		}
		evidence = append(evidence,
			fmt.Sprintf("Excellence boost applied: %d components rated >90 (+%.0f pts)", excellent, excellenceBonus))
	}

	category := c.thresholds.Category(weightedScore)

	// High-water mark: broad high-signal coverage should not be discounted
	// by the weighted average.
	high := countAtLeast(componentScores, highWaterThreshold)
	if high >= highWaterMinCount && category < highWaterFloorCategory {
		category = highWaterFloorCategory
		if floor := c.thresholds.Floor(category); weightedScore < floor {
			weightedScore = floor
		}
		evidence = append(evidence,
			fmt.Sprintf("High-water mark applied: %d components rated >80 (category floor: %s)", high, category.Label()))
	}

	return CompanyScore{
		CompanyName:     companyName,
		Score:           weightedScore,
		Category:        category,
		CategoryLabel:   category.Label(),
		Signals:         signals,
		ComponentScores: componentScores,
		Evidence:        evidence,
		ConfidenceScore: signals.ConfidenceScore,
	}
}

func countAtLeast(scores map[string]float64, threshold float64) int {
	n := 0
	for _, s := range scores {
		if s >= threshold {
			n++
		}
	}
	return n
}

// buildEvidence renders the human-readable evidence trail in generation
// order. Callers truncate for display; the full list is kept on the record.
func buildEvidence(signals SignalData) []string {
	evidence := []string{}

	if signals.AIKeywords > 0 {
		var parts []string
		if signals.AISuccessPoints > 0 {
			parts = append(parts, fmt.Sprintf("%d success-evidence", signals.AISuccessPoints))
		}
		if signals.AIPlanPoints > 0 {
			parts = append(parts, fmt.Sprintf("%d strategy/plan", signals.AIPlanPoints))
		}
		if signals.AIGenericPoints > 0 {
			parts = append(parts, fmt.Sprintf("%d general-mention", signals.AIGenericPoints))
		}
		detail := ""
		if len(parts) > 0 {
			detail = " (" + strings.Join(parts, ", ") + ")"
		}
		evidence = append(evidence,
			fmt.Sprintf("%d AI keyword points%s across %d sources", signals.AIKeywords, detail, signals.JobsAnalyzed))
	}

	if len(signals.ToolStack) > 0 {
		top := signals.ToolStack
		if len(top) > 3 {
			top = top[:3]
		}
		evidence = append(evidence, "Tool stack: "+strings.Join(top, ", "))
	}

	if signals.AgenticSignals > 0 {
		evidence = append(evidence, fmt.Sprintf("%d agentic/automation signals", signals.AgenticSignals))
	}

	if signals.AIInITSignals > 0 {
		evidence = append(evidence, fmt.Sprintf("%d AI keywords found in engineering sources", signals.AIInITSignals))
	}

	if signals.HasAIPlatformTeam {
		evidence = append(evidence, "Dedicated AI platform/strategy team detected")
	}

	if signals.IsAIPlatformProvider {
		evidence = append(evidence, "AI Platform Provider: builds and provides AI tools/platforms")
	}

	if signals.NonEngAIRoles > 0 {
		evidence = append(evidence, fmt.Sprintf("%d AI mentions in non-engineering roles", signals.NonEngAIRoles))
	}

	if signals.NewsSourcesFound > 0 {
		evidence = append(evidence, fmt.Sprintf("%d news/press/IR sources analyzed", signals.NewsSourcesFound))
	}

	quotes := signals.SampleQuotes
	if len(quotes) > maxSampleQuotes {
		quotes = quotes[:maxSampleQuotes]
	}
	evidence = append(evidence, quotes...)

	return evidence
}
