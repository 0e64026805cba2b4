package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/dutchdutchdutch/signalscore/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const configSchema = "scoring_config.schema.json"

func TestScoringConfigSchema_ValidJSON(t *testing.T) {
	data, err := os.ReadFile(filepath.Join(".", configSchema))
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, "object", parsed["type"])
	assert.Contains(t, parsed, "properties")
}

func TestScoringConfigSchema_AcceptsValidDocument(t *testing.T) {
	schemaData, err := os.ReadFile(filepath.Join(".", configSchema))
	require.NoError(t, err)

	doc := `{
		"weights": {"ai_keywords": 0.15, "agentic_signals": 0.2, "tool_stack": 0.2, "non_eng_ai": 0.2, "ai_in_it": 0.25},
		"thresholds": {"no_signal": 0, "lagging": 30, "operational": 50, "leading": 80, "transformational": 95},
		"caps": {"ai_keywords": 40, "agentic_signals": 15, "tool_stack": 5, "non_eng_ai_roles": 5, "ai_in_it": 15},
		"keyword_tiers": [
			{"name": "success", "terms": ["ai in production"], "regexes": [], "points_per_match": 3},
			{"name": "plan", "terms": ["ai strategy"], "regexes": [], "points_per_match": 2},
			{"name": "generic", "terms": ["machine learning"], "regexes": [], "points_per_match": 1}
		],
		"tool_vocabulary": ["pytorch", "langchain"],
		"tool_patterns": [{"pattern": "\\bgpt-?\\d", "canonical": "openai"}]
	}`

	assert.NoError(t, schemas.ValidateString(string(schemaData), doc))
}

func TestScoringConfigSchema_RejectsUnknownTopLevelKey(t *testing.T) {
	schemaData, err := os.ReadFile(filepath.Join(".", configSchema))
	require.NoError(t, err)

	doc := `{
		"weights": {"ai_keywords": 0.15, "agentic_signals": 0.2, "tool_stack": 0.2, "non_eng_ai": 0.2, "ai_in_it": 0.25},
		"thresholds": {"no_signal": 0, "lagging": 30, "operational": 50, "leading": 80, "transformational": 95},
		"caps": {"ai_keywords": 40, "agentic_signals": 15, "tool_stack": 5, "non_eng_ai_roles": 5, "ai_in_it": 15},
		"keyword_tiers": [
			{"name": "success", "terms": [], "points_per_match": 3},
			{"name": "plan", "terms": [], "points_per_match": 2},
			{"name": "generic", "terms": [], "points_per_match": 1}
		],
		"tool_vocabulary": ["pytorch"],
		"bonus_points": 50
	}`

	err = schemas.ValidateString(string(schemaData), doc)
	require.Error(t, err)

	var ve *schemas.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestScoringConfigSchema_RejectsMissingWeights(t *testing.T) {
	schemaData, err := os.ReadFile(filepath.Join(".", configSchema))
	require.NoError(t, err)

	err = schemas.ValidateString(string(schemaData), `{"tool_vocabulary": ["pytorch"]}`)
	require.Error(t, err)
}
