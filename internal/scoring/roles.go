package scoring

import (
	"strings"

	"github.com/dutchdutchdutch/signalscore/internal/sources"
)

// Non-engineering role scoring. The working hypothesis: middle-management
// roles with heavy communication, review and reporting duties (legal,
// compliance, product, finance) show AI competency as a baseline
// expectation at AI-ready companies. Points come from AI appearing as a
// skill requirement in the posting, not from the role merely existing.

// AI named as an explicit skill or tool requirement ("you will use AI").
var aiCompetencyTerms = []string{
	"proficiency with ai", "experience with ai", "familiarity with ai",
	"ai tools", "ai-assisted", "ai-augmented", "leverage ai",
	"prompt engineering", "ai literacy", "build prototypes",
	"use ai to", "using ai", "work with ai", "ai fluency",
	"llm", "copilot", "generative ai", "genai",
	"ai-powered workflow", "ai-driven", "ai skills",
	"chatgpt", "claude", "gemini",
}

// AI referenced in context without a skill framing.
var aiMentionTerms = []string{
	"artificial intelligence", "machine learning",
	"automation", "data-driven", "predictive",
	"agent", "orchestration", "nlp",
}

var midMgmtTerms = []string{"manager", "senior", "lead", "principal", "counsel", "analyst"}

var execTerms = []string{
	"vice president", "vp ", "chief ", "cto", "cfo", "coo", "head of", "director",
}

// Snippet co-occurrence term lists: a single search-result line naming both
// a non-engineering role title and an AI term is a hiring signal.
var snippetRoleTitles = []string{
	"product manager", "program manager", "project manager",
	"legal", "counsel", "compliance", "finance", "financial",
	"marketing", "design", "communications", "operations",
	"hr ", "human resources", "sales",
}

var snippetAITerms = []string{
	"ai", "artificial intelligence", "machine learning",
	"generative ai", "genai", "llm", "ml ",
	"prompt engineering", "ai tools", "ai skills",
}

const (
	competencyPoints   = 7
	mentionPoints      = 2
	seniorityBonus     = 3
	conferencePoints   = 5
	snippetMatchPoints = 3
)

// RoleSignals scores one lowercased segment for non-engineering AI-role
// evidence. Returns zero for labels outside the role vocabulary.
func RoleSignals(label sources.Label, textLower string) int {
	switch {
	case label.IsNonEngRole() || label == sources.CareersAIKeywordHit:
		return departmentRolePoints(textLower)
	case label == sources.ConferenceSpeaking:
		// The search hit itself is the evidence; no text analysis.
		return conferencePoints
	case label == sources.GoogleSnippets:
		return snippetPoints(textLower)
	default:
		return 0
	}
}

func departmentRolePoints(textLower string) int {
	hasCompetency := containsAny(textLower, aiCompetencyTerms)
	hasMention := containsAny(textLower, aiMentionTerms)

	points := 0
	switch {
	case hasCompetency:
		points = competencyPoints
	case hasMention:
		points = mentionPoints
	default:
		return 0
	}

	// Reward middle management over executives: exec rhetoric about AI is
	// cheap, an AI-fluent counsel or analyst is organizational readiness.
	isMidMgmt := containsAny(textLower, midMgmtTerms)
	isExec := containsAny(textLower, execTerms)
	if isMidMgmt && !isExec {
		points += seniorityBonus
	}
	return points
}

// snippetPoints applies a lighter co-occurrence test to search-snippet
// text: the first line naming both a role title and an AI term scores once.
func snippetPoints(textLower string) int {
	for _, line := range strings.Split(textLower, "\n") {
		if containsAny(line, snippetRoleTitles) && containsAny(line, snippetAITerms) {
			return snippetMatchPoints
		}
	}
	return 0
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
