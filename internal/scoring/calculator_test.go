package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate_EmptySignals(t *testing.T) {
	c := NewDefaultCalculator()

	score := c.Calculate("acme", SignalData{})

	assert.Equal(t, 0.0, score.Score)
	assert.Equal(t, NoSignal, score.Category)
	assert.Equal(t, "No Signal", score.CategoryLabel)
	assert.Equal(t, 0.0, score.ConfidenceScore)
	assert.Empty(t, score.Evidence)
	for component, v := range score.ComponentScores {
		assert.Equal(t, 0.0, v, component)
	}
}

func TestCalculate_ComponentsCappedAt100(t *testing.T) {
	c := NewDefaultCalculator()

	score := c.Calculate("acme", SignalData{AIKeywords: 1000})

	assert.Equal(t, 100.0, score.ComponentScores[ComponentAIKeywords])
	assert.InDelta(t, 15.0, score.Score, 1e-9)
}

func TestCalculate_WeightedToolCountPreferredOverRawCount(t *testing.T) {
	c := NewDefaultCalculator()

	weighted := c.Calculate("acme", SignalData{
		ToolStack:         []string{"pytorch"},
		WeightedToolCount: 2.0,
	})
	raw := c.Calculate("acme", SignalData{
		ToolStack: []string{"pytorch", "mlflow"},
	})

	assert.Equal(t, 40.0, weighted.ComponentScores[ComponentToolStack])
	assert.Equal(t, 40.0, raw.ComponentScores[ComponentToolStack])
}

func TestCalculate_PlatformTeamFloor(t *testing.T) {
	c := NewDefaultCalculator()

	score := c.Calculate("acme", SignalData{HasAIPlatformTeam: true})

	assert.Equal(t, platformTeamFloor, score.ComponentScores[ComponentAIInIT])
	assert.InDelta(t, platformTeamFloor*0.25, score.Score, 1e-9)
	assert.Contains(t, score.Evidence, "Dedicated AI platform/strategy team detected")
}

func TestCalculate_MarketingOnlyPenalty(t *testing.T) {
	c := NewDefaultCalculator()

	clean := c.Calculate("acme", SignalData{AIKeywords: 40, AIInITSignals: 15})
	penalized := c.Calculate("acme", SignalData{AIKeywords: 40, AIInITSignals: 15, MarketingOnly: true})

	assert.Equal(t, 50.0, penalized.ComponentScores[ComponentAIKeywords])
	assert.Equal(t, 50.0, penalized.ComponentScores[ComponentAIInIT])
	assert.Less(t, penalized.Score, clean.Score)
}

func TestCalculate_MarketingOnlySparesRoleAndAgenticSignals(t *testing.T) {
	c := NewDefaultCalculator()

	signals := SignalData{AgenticSignals: 15, NonEngAIRoles: 5}
	clean := c.Calculate("acme", signals)
	signals.MarketingOnly = true
	penalized := c.Calculate("acme", signals)

	assert.Equal(t, clean.Score, penalized.Score)
}

func TestCalculate_ProviderOverride(t *testing.T) {
	c := NewDefaultCalculator()

	score := c.Calculate("acme", SignalData{IsAIPlatformProvider: true})

	assert.Equal(t, providerOverrideScore, score.Score)
	assert.Equal(t, Transformational, score.Category)
	assert.Contains(t, score.Evidence,
		"AI Platform Provider: company builds and provides AI tools/platforms to others")
}

func TestCalculate_ProviderOverrideNeverLowersScore(t *testing.T) {
	c := NewDefaultCalculator()

	// All components maxed scores 100 before the override is considered.
	score := c.Calculate("acme", SignalData{
		AIKeywords:           40,
		AgenticSignals:       15,
		WeightedToolCount:    5,
		ToolStack:            []string{"pytorch"},
		NonEngAIRoles:        5,
		AIInITSignals:        15,
		IsAIPlatformProvider: true,
	})

	assert.Equal(t, 100.0, score.Score)
}

func TestCalculate_ProviderEvidenceRecordedAtMaxScore(t *testing.T) {
	c := NewDefaultCalculator()

	// Even when every component is already perfect, the trail must show
	// the provider override was in effect.
	score := c.Calculate("acme", SignalData{
		AIKeywords:           40,
		AgenticSignals:       15,
		WeightedToolCount:    5,
		ToolStack:            []string{"pytorch"},
		NonEngAIRoles:        5,
		AIInITSignals:        15,
		IsAIPlatformProvider: true,
	})

	assert.Equal(t, 100.0, score.Score)
	assert.Contains(t, score.Evidence,
		"AI Platform Provider: company builds and provides AI tools/platforms to others")
}

func TestCalculate_ExcellenceBoost(t *testing.T) {
	c := NewDefaultCalculator()

	// Two maxed components, nothing else: 15 + 20 weighted, plus the boost.
	score := c.Calculate("acme", SignalData{AIKeywords: 40, AgenticSignals: 15})

	assert.InDelta(t, 45.0, score.Score, 1e-9)
	assert.Contains(t, score.Evidence, "Excellence boost applied: 2 components rated >90 (+10 pts)")
}

func TestCalculate_ExcellenceBoostClampsAt100(t *testing.T) {
	c := NewDefaultCalculator()

	score := c.Calculate("acme", SignalData{
		AIKeywords:        40,
		AgenticSignals:    15,
		WeightedToolCount: 5,
		ToolStack:         []string{"pytorch"},
		NonEngAIRoles:     5,
		AIInITSignals:     15,
	})

	assert.Equal(t, 100.0, score.Score)
	assert.Equal(t, Transformational, score.Category)
}

func TestCalculate_HighWaterMark(t *testing.T) {
	c := NewDefaultCalculator()

	// Three components around 85, the rest empty: the weighted average
	// lands near 47 but broad coverage floors the category.
	score := c.Calculate("acme", SignalData{
		AIKeywords:        34,
		AgenticSignals:    13,
		WeightedToolCount: 4.25,
		ToolStack:         []string{"pytorch"},
	})

	assert.Equal(t, Operational, score.Category)
	assert.Equal(t, 50.0, score.Score)
	assert.Contains(t, score.Evidence,
		"High-water mark applied: 3 components rated >80 (category floor: Operational)")
}

func TestCalculate_Deterministic(t *testing.T) {
	c := NewDefaultCalculator()
	signals := SignalData{
		AIKeywords:        12,
		AgenticSignals:    4,
		WeightedToolCount: 3.5,
		ToolStack:         []string{"pytorch", "mlflow"},
		NonEngAIRoles:     7,
		AIInITSignals:     9,
		JobsAnalyzed:      5,
		ConfidenceScore:   1.0,
	}

	first := c.Calculate("acme", signals)
	second := c.Calculate("acme", signals)
	require.Equal(t, first, second)
}

func TestCalculate_MonotonicInKeywords(t *testing.T) {
	c := NewDefaultCalculator()

	low := c.Calculate("acme", SignalData{AIKeywords: 10})
	high := c.Calculate("acme", SignalData{AIKeywords: 20})

	assert.GreaterOrEqual(t, high.Score, low.Score)
}

func TestCalculate_EvidenceKeywordBreakdown(t *testing.T) {
	c := NewDefaultCalculator()

	score := c.Calculate("acme", SignalData{
		AIKeywords:      10,
		AISuccessPoints: 6,
		AIGenericPoints: 4,
		JobsAnalyzed:    3,
	})

	require.NotEmpty(t, score.Evidence)
	assert.Equal(t, "10 AI keyword points (6 success-evidence, 4 general-mention) across 3 sources",
		score.Evidence[0])
}

func TestCalculate_EvidenceTruncatesToolList(t *testing.T) {
	c := NewDefaultCalculator()

	score := c.Calculate("acme", SignalData{
		ToolStack: []string{"pytorch", "mlflow", "kubernetes", "pinecone"},
	})

	assert.Contains(t, score.Evidence, "Tool stack: pytorch, mlflow, kubernetes")
}

func TestNewCalculator_RejectsInvalidConfiguration(t *testing.T) {
	badWeights := DefaultWeights()
	badWeights.AIInIT = 0.5
	_, err := NewCalculator(badWeights, DefaultCaps(), DefaultThresholds())
	assert.Error(t, err)

	negWeights := DefaultWeights()
	negWeights.AIKeywords = -0.1
	negWeights.AIInIT += 0.25 // keep the sum at 1.0
	_, err = NewCalculator(negWeights, DefaultCaps(), DefaultThresholds())
	assert.Error(t, err)

	badCaps := DefaultCaps()
	badCaps.ToolStack = 0
	_, err = NewCalculator(DefaultWeights(), badCaps, DefaultThresholds())
	assert.Error(t, err)

	badThresholds := DefaultThresholds()
	badThresholds.Leading = 20
	_, err = NewCalculator(DefaultWeights(), DefaultCaps(), badThresholds)
	assert.Error(t, err)
}
