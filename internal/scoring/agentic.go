package scoring

import (
	"regexp"
	"strings"
)

// Infrastructure-level autonomy language.
var infraAgenticTerms = []string{
	"autonomous", "chaos monkey", "spinnaker", "self-healing", "chaos engineering",
}

// Product-level automation language.
var productAgenticTerms = []string{
	"ai-powered", "ai powered", "ai assistant", "ai copilot",
	"automate", "automation", "automated workflow",
}

// Orchestration / agent-ready documentation phrases. Any hit earns a flat
// bonus once per segment.
var agenticContextTerms = []string{
	"langchain", "autogen", "agentic", "orchestration",
	"llm-ready", "llm ready", "ai-friendly documentation",
	"agent-friendly", "machine-readable documentation",
	"ai-optimized documentation", "llm-friendly",
	"ai agent documentation", "documentation for ai",
	"model context protocol", "mcp server",
}

const agenticContextBonus = 2

// Matches "agent" and "agents" as whole words; "agency" and "agentless"
// do not count.
var agentWordRe = regexp.MustCompile(`\bagents?\b`)

// AgenticSignals scores lowercased text for automation/agent/orchestration
// language: occurrence counts of the two term groups, standalone "agent"
// mentions, plus a one-time context bonus when orchestration phrasing is
// present.
func AgenticSignals(textLower string) int {
	count := 0
	for _, t := range infraAgenticTerms {
		count += strings.Count(textLower, t)
	}
	for _, t := range productAgenticTerms {
		count += strings.Count(textLower, t)
	}
	count += len(agentWordRe.FindAllStringIndex(textLower, -1))

	for _, t := range agenticContextTerms {
		if strings.Contains(textLower, t) {
			count += agenticContextBonus
			break
		}
	}
	return count
}
