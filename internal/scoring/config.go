package scoring

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dutchdutchdutch/signalscore/internal/schemas"
)

// Config is the externally-swappable calibration for the scoring core:
// weights, category thresholds, normalization caps, keyword tier lists and
// the tool vocabulary. All of it is data, not behavior, so the model can be
// recalibrated without code changes.
type Config struct {
	Weights        SignalWeights `json:"weights"`
	Thresholds     Thresholds    `json:"thresholds"`
	Caps           Caps          `json:"caps"`
	KeywordTiers   []KeywordTier `json:"keyword_tiers"`
	ToolVocabulary []string      `json:"tool_vocabulary"`
	ToolPatterns   []ToolPattern `json:"tool_patterns"`
}

// DefaultConfig returns the compiled-in calibration.
func DefaultConfig() Config {
	return Config{
		Weights:        DefaultWeights(),
		Thresholds:     DefaultThresholds(),
		Caps:           DefaultCaps(),
		KeywordTiers:   DefaultKeywordTiers(),
		ToolVocabulary: DefaultToolVocabulary(),
		ToolPatterns:   DefaultToolPatterns(),
	}
}

// Validate runs the semantic checks that the JSON Schema cannot express.
func (c Config) Validate() error {
	if err := c.Weights.Validate(); err != nil {
		return err
	}
	if err := c.Caps.Validate(); err != nil {
		return err
	}
	if err := c.Thresholds.Validate(); err != nil {
		return err
	}
	if _, err := NewTierMatcher(c.KeywordTiers); err != nil {
		return err
	}
	if _, err := NewToolDetector(c.ToolVocabulary, c.ToolPatterns); err != nil {
		return err
	}
	return nil
}

// ConfigSchemaPath is the scoring-config JSON Schema, relative to the repo
// root.
const ConfigSchemaPath = "schemas/scoring_config.schema.json"

// LoadConfig reads a scoring configuration document from a JSON file,
// validates it against the schema when the schema file can be located, and
// then applies the semantic checks.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read scoring config %s: %w", path, err)
	}

	if schemaPath := schemas.Resolve(ConfigSchemaPath); schemaPath != "" {
		schemaData, err := os.ReadFile(schemaPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read scoring config schema: %w", err)
		}
		if err := schemas.ValidateString(string(schemaData), string(data)); err != nil {
			return Config{}, fmt.Errorf("scoring config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse scoring config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid scoring config %s: %w", path, err)
	}
	return cfg, nil
}
