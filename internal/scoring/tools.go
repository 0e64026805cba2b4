package scoring

import (
	"fmt"
	"regexp"
	"sort"

	ahocorasick "github.com/cloudflare/ahocorasick"
)

// ToolPattern maps a regex for versioned product names (e.g. a provider
// name followed by a version number) to a canonical tool name.
type ToolPattern struct {
	Pattern   string `json:"pattern"`
	Canonical string `json:"canonical"`
}

type compiledToolPattern struct {
	re        *regexp.Regexp
	canonical string
}

// ToolDetector scans lowercased text for a curated AI/ML tool vocabulary.
// Literal terms are matched as substrings via a single Aho-Corasick pass;
// versioned-name regexes map onto canonical names.
type ToolDetector struct {
	vocab    []string
	matcher  *ahocorasick.Matcher
	patterns []compiledToolPattern
}

// NewToolDetector builds the automaton from the vocabulary. Vocabulary
// entries must be lowercase and unique.
func NewToolDetector(vocab []string, patterns []ToolPattern) (*ToolDetector, error) {
	if len(vocab) == 0 {
		return nil, fmt.Errorf("tool vocabulary is empty")
	}
	seen := make(map[string]bool, len(vocab))
	for _, term := range vocab {
		if term == "" {
			return nil, fmt.Errorf("tool vocabulary contains an empty term")
		}
		if seen[term] {
			return nil, fmt.Errorf("duplicate tool vocabulary term %q", term)
		}
		seen[term] = true
	}

	d := &ToolDetector{
		vocab:   vocab,
		matcher: ahocorasick.NewStringMatcher(vocab),
	}
	for _, p := range patterns {
		re, err := regexp.Compile(p.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid tool pattern %q: %w", p.Pattern, err)
		}
		d.patterns = append(d.patterns, compiledToolPattern{re: re, canonical: p.Canonical})
	}
	return d, nil
}

// Detect returns the canonical names present in lowercased text, vocabulary
// order first, then pattern order, without duplicates.
func (d *ToolDetector) Detect(textLower string) []string {
	hits := d.matcher.Match([]byte(textLower))
	sort.Ints(hits)

	found := make([]string, 0, len(hits))
	emitted := make(map[string]bool, len(hits))
	for _, idx := range hits {
		if idx < 0 || idx >= len(d.vocab) {
			continue
		}
		name := d.vocab[idx]
		if !emitted[name] {
			emitted[name] = true
			found = append(found, name)
		}
	}

	for _, p := range d.patterns {
		if !emitted[p.canonical] && p.re.MatchString(textLower) {
			emitted[p.canonical] = true
			found = append(found, p.canonical)
		}
	}
	return found
}

// DefaultToolVocabulary is the curated list of AI/ML tools, platforms and
// products, lowercase exact-match terms grouped by category.
func DefaultToolVocabulary() []string {
	return []string{
		// Cloud ML platforms
		"sagemaker", "vertex ai", "bedrock", "azure ml", "azure openai",
		"azure cognitive", "google cloud ai", "amazon q",
		// Frameworks and libraries
		"pytorch", "tensorflow", "jax", "keras", "scikit-learn", "sklearn",
		"xgboost", "lightgbm", "catboost", "onnx", "triton inference",
		// LLM providers and APIs
		"openai", "anthropic", "cohere", "mistral", "groq",
		"together ai", "fireworks ai", "replicate", "ollama", "perplexity",
		// LLM frameworks and orchestration
		"langchain", "langgraph", "langsmith", "llamaindex", "llama index",
		"semantic kernel", "haystack", "dspy", "crewai", "autogen",
		"model context protocol",
		// Model hubs and pretrained models
		"huggingface", "hugging face", "transformers",
		// MLOps and experiment tracking
		"mlflow", "kubeflow", "wandb", "weights and biases", "weights & biases",
		"neptune", "dvc", "dagshub", "prefect", "airflow",
		"ray", "anyscale", "metaflow",
		// Vector / AI databases
		"pinecone", "weaviate", "milvus", "qdrant", "chroma", "chromadb",
		"pgvector", "faiss",
		// Infrastructure and cloud
		"kubernetes", "aws", "gcp", "azure", "databricks", "snowflake",
		"spark", "delta lake", "lakehouse",
		// AI dev tools and coding assistants
		"copilot", "cursor", "v0", "replit", "tabnine", "codeium",
		"windsurf", "amazon codewhisperer",
		// Specific models and products
		"claude", "gemini", "llama", "stable diffusion",
		"dall-e", "midjourney", "whisper",
		// Observability and evaluation
		"langfuse", "helicone", "arize", "whylabs", "deepchecks",
		// Code and repo hosting
		"github",
	}
}

// DefaultToolPatterns maps versioned product mentions (GPT-4o, Claude 3.5,
// Llama 3) onto canonical vocabulary names.
func DefaultToolPatterns() []ToolPattern {
	return []ToolPattern{
		{Pattern: `\bgpt-?\d`, Canonical: "openai"},
		{Pattern: `\bclaude[ -]?\d`, Canonical: "anthropic"},
		{Pattern: `\bgemini[ -]?\d`, Canonical: "gemini"},
		{Pattern: `\bllama[ -]?\d`, Canonical: "llama"},
		{Pattern: `\bmistral[ -]?\d`, Canonical: "mistral"},
		{Pattern: `\bstable diffusion`, Canonical: "stable diffusion"},
		{Pattern: `\bdall-?e`, Canonical: "dall-e"},
	}
}
