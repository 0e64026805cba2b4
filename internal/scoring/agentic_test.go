package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAgenticSignals_CountsTermOccurrences(t *testing.T) {
	assert.Equal(t, 2, AgenticSignals("autonomous deployment of autonomous systems"))
	assert.Equal(t, 1, AgenticSignals("we automate invoice processing"))
	assert.Equal(t, 0, AgenticSignals("a plain engineering blog about databases"))
}

func TestAgenticSignals_AgentWordBoundary(t *testing.T) {
	// "agent", its plural and "agent-based" all count as standalone
	// mentions; "agency", "agentless" and "agenthood" do not.
	assert.Equal(t, 1, AgenticSignals("our support agent handles tickets"))
	assert.Equal(t, 1, AgenticSignals("we deploy ai agents for customers"))
	assert.Equal(t, 0, AgenticSignals("agentless monitoring with no agenthood"))
	assert.Equal(t, 0, AgenticSignals("a digital marketing agency"))
	assert.Equal(t, 1, AgenticSignals("an agent-based architecture"))
}

func TestAgenticSignals_ContextBonusAppliesOnce(t *testing.T) {
	// Two context terms present, but the bonus is flat per segment.
	withBonus := AgenticSignals("agentic orchestration layer")
	assert.Equal(t, 2, withBonus)

	// Context bonus stacks with occurrence counts: "automated workflow"
	// hits both the phrase term and the "automate" substring, plus the
	// "orchestration" bonus.
	assert.Equal(t, 4, AgenticSignals("automated workflow orchestration"))
}

func TestAgenticSignals_EmptyText(t *testing.T) {
	assert.Equal(t, 0, AgenticSignals(""))
}
