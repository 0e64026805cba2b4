package scoring

import (
	"fmt"
	"math"
)

// weightTolerance is the allowed floating error on the weight sum.
const weightTolerance = 0.001

// SignalWeights distributes the final score across the five signal
// components. The five fields must sum to 1.0 within tolerance; invalid
// sets are rejected when the calculator is constructed.
type SignalWeights struct {
	AIKeywords     float64 `json:"ai_keywords"`
	AgenticSignals float64 `json:"agentic_signals"`
	ToolStack      float64 `json:"tool_stack"`
	NonEngAI       float64 `json:"non_eng_ai"`
	AIInIT         float64 `json:"ai_in_it"`
}

// DefaultWeights is the current calibration. Engineering-sourced keyword
// evidence carries the largest share.
func DefaultWeights() SignalWeights {
	return SignalWeights{
		AIKeywords:     0.15,
		AgenticSignals: 0.20,
		ToolStack:      0.20,
		NonEngAI:       0.20,
		AIInIT:         0.25,
	}
}

// Validate checks the weight sum. A misconfigured weight set would
// silently produce meaningless scores, so this fails loudly.
func (w SignalWeights) Validate() error {
	for name, v := range map[string]float64{
		"ai_keywords":     w.AIKeywords,
		"agentic_signals": w.AgenticSignals,
		"tool_stack":      w.ToolStack,
		"non_eng_ai":      w.NonEngAI,
		"ai_in_it":        w.AIInIT,
	} {
		if v < 0 {
			return fmt.Errorf("signal weight %s must be non-negative, got %v", name, v)
		}
	}
	total := w.AIKeywords + w.AgenticSignals + w.ToolStack + w.NonEngAI + w.AIInIT
	if math.Abs(total-1.0) >= weightTolerance {
		return fmt.Errorf("signal weights must sum to 1.0, got %.4f", total)
	}
	return nil
}

// Caps are the per-signal normalization ceilings: a raw value at or above
// its cap normalizes to a component score of 100.
type Caps struct {
	AIKeywords    float64 `json:"ai_keywords"`
	Agentic       float64 `json:"agentic_signals"`
	ToolStack     float64 `json:"tool_stack"`
	NonEngAIRoles float64 `json:"non_eng_ai_roles"`
	AIInIT        float64 `json:"ai_in_it"`
}

// DefaultCaps is the current calibration.
func DefaultCaps() Caps {
	return Caps{
		AIKeywords:    40,
		Agentic:       15,
		ToolStack:     5,
		NonEngAIRoles: 5,
		AIInIT:        15,
	}
}

// Validate rejects non-positive caps, which would make normalization
// degenerate.
func (c Caps) Validate() error {
	for name, v := range map[string]float64{
		"ai_keywords":      c.AIKeywords,
		"agentic_signals":  c.Agentic,
		"tool_stack":       c.ToolStack,
		"non_eng_ai_roles": c.NonEngAIRoles,
		"ai_in_it":         c.AIInIT,
	} {
		if v <= 0 {
			return fmt.Errorf("signal cap %s must be positive, got %v", name, v)
		}
	}
	return nil
}
