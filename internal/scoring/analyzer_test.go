package scoring

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dutchdutchdutch/signalscore/internal/sources"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	a, err := NewAnalyzer(DefaultConfig())
	require.NoError(t, err)
	return a.WithClock(func() time.Time { return recencyNow })
}

const homepageHype = "Our AI platform uses machine learning and artificial intelligence. Generative AI powers our AI copilot."

func TestAnalyze_HomepageOnlyHypeIsMarketingOnly(t *testing.T) {
	a := newTestAnalyzer(t)

	data := a.Analyze(map[sources.Label]string{
		sources.Homepage: homepageHype,
	})

	// Three generic terms plus three standalone "ai" tokens, all routed to
	// the non-engineering bucket.
	assert.Equal(t, 6, data.AIKeywords)
	assert.Equal(t, 0, data.AIInITSignals)
	assert.True(t, data.MarketingOnly)
	assert.Equal(t, 0.5, data.ConfidenceScore)
	assert.Equal(t, []sources.Label{sources.Homepage}, data.SourceAttribution[AttrAIKeywords])
}

func TestAnalyze_EngineeringEvidenceClearsMarketingOnly(t *testing.T) {
	a := newTestAnalyzer(t)

	data := a.Analyze(map[sources.Label]string{
		sources.Homepage: homepageHype,
		sources.GitHub:   "We use PyTorch.",
	})

	assert.False(t, data.MarketingOnly)
	assert.Contains(t, data.ToolStack, "pytorch")
	assert.Equal(t, 0.8, data.ConfidenceScore)
}

func TestAnalyze_ToolWeightsFollowSourceTrust(t *testing.T) {
	a := newTestAnalyzer(t)

	fromGitHub := a.Analyze(map[sources.Label]string{
		sources.GitHub: "We use PyTorch.",
	})
	fromHomepage := a.Analyze(map[sources.Label]string{
		sources.Homepage: "We use PyTorch.",
	})

	assert.Equal(t, []string{"pytorch"}, fromGitHub.ToolStack)
	assert.Equal(t, []string{"pytorch"}, fromHomepage.ToolStack)
	assert.Equal(t, 2.0, fromGitHub.WeightedToolCount)
	assert.Equal(t, 0.5, fromHomepage.WeightedToolCount)
}

func TestAnalyze_DuplicateToolKeepsMaxWeight(t *testing.T) {
	a := newTestAnalyzer(t)

	data := a.Analyze(map[sources.Label]string{
		sources.Homepage: "We use PyTorch.",
		sources.GitHub:   "We use PyTorch.",
	})

	assert.Equal(t, []string{"pytorch"}, data.ToolStack)
	assert.Equal(t, 2.0, data.WeightedToolCount)
}

func TestAnalyze_EngineeringSourcesRouteToAIInIT(t *testing.T) {
	a := newTestAnalyzer(t)

	data := a.Analyze(map[sources.Label]string{
		sources.JobPosting: "machine learning engineer to build our llm inference stack",
	})

	assert.Equal(t, 0, data.AIKeywords)
	assert.Positive(t, data.AIInITSignals)
	assert.Equal(t, []sources.Label{sources.JobPosting}, data.SourceAttribution[AttrAIKeywords])
}

func TestAnalyze_NewsRecencyDecay(t *testing.T) {
	a := newTestAnalyzer(t)

	fresh := a.Analyze(map[sources.Label]string{
		sources.NewsArticle: "june 5, 2025 we launched an ai assistant",
	})
	stale := a.Analyze(map[sources.Label]string{
		sources.NewsArticle: "2024-11-27 we launched an ai assistant",
	})

	assert.Equal(t, 4, fresh.AIKeywords)
	assert.Equal(t, 0, stale.AIKeywords)
	assert.Equal(t, 1, fresh.NewsSourcesFound)
	assert.Equal(t, 1, stale.NewsSourcesFound)
	// Fully decayed evidence never enters the keyword provenance list.
	assert.Empty(t, stale.SourceAttribution[AttrAIKeywords])
}

func TestAnalyze_PlatformProviderDetection(t *testing.T) {
	a := newTestAnalyzer(t)

	data := a.Analyze(map[sources.Label]string{
		sources.SubdomainAI: "Use our api to fine-tune a foundation model; the api reference covers deployment.",
	})
	assert.True(t, data.IsAIPlatformProvider)

	// The same copy on a homepage is not inspected for provider language.
	data = a.Analyze(map[sources.Label]string{
		sources.Homepage: "Use our api to fine-tune a foundation model; the api reference covers deployment.",
	})
	assert.False(t, data.IsAIPlatformProvider)
}

func TestAnalyze_PlatformTeamDetection(t *testing.T) {
	a := newTestAnalyzer(t)

	data := a.Analyze(map[sources.Label]string{
		sources.EngineeringBlog: "our ai platform team runs the feature store",
	})
	assert.True(t, data.HasAIPlatformTeam)
}

func TestAnalyze_AggregationCaps(t *testing.T) {
	a := newTestAnalyzer(t)

	data := a.Analyze(map[sources.Label]string{
		sources.Homepage: strings.Repeat("we automate everything. ", 30),
	})
	assert.Equal(t, agenticAggregateCap, data.AgenticSignals)
}

func TestAnalyze_EmptyInput(t *testing.T) {
	a := newTestAnalyzer(t)

	data := a.Analyze(map[sources.Label]string{})

	assert.Equal(t, 0, data.AIKeywords)
	assert.Equal(t, 0, data.AIInITSignals)
	assert.Empty(t, data.ToolStack)
	assert.Equal(t, 0.0, data.ConfidenceScore)
	assert.False(t, data.MarketingOnly)
	assert.Equal(t, 0, data.JobsAnalyzed)
}

func TestAnalyze_Deterministic(t *testing.T) {
	a := newTestAnalyzer(t)

	segments := map[sources.Label]string{
		sources.Homepage:        homepageHype,
		sources.GitHub:          "we use pytorch and mlflow with kubernetes",
		sources.EngineeringBlog: "how we deployed our llm inference pipeline",
		sources.NewsArticle:     "june 5, 2025 we launched an ai assistant",
		sources.ProductRole:     "senior product manager, experience with ai tools required",
	}

	first := a.Analyze(segments)
	second := a.Analyze(segments)
	require.Equal(t, first, second)

	// Provenance follows the label vocabulary order, not map order.
	assert.Equal(t, []string{"copilot", "pytorch", "mlflow", "kubernetes"}, first.ToolStack)
}

func TestAnalyze_ConfidenceLevels(t *testing.T) {
	a := newTestAnalyzer(t)

	three := a.Analyze(map[sources.Label]string{
		sources.Homepage:        "x",
		sources.GitHub:          "y",
		sources.EngineeringBlog: "z",
	})
	single := a.Analyze(map[sources.Label]string{sources.GitHub: "y"})

	assert.Equal(t, 1.0, three.ConfidenceScore)
	assert.Equal(t, 0.7, single.ConfidenceScore)
}
