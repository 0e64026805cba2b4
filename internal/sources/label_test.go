package sources

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_KnownLabels(t *testing.T) {
	for _, l := range All {
		assert.Equal(t, l, Parse(string(l)))
	}
}

func TestParse_UnknownFallsBack(t *testing.T) {
	assert.Equal(t, Unknown, Parse("tiktok_profile"))
	assert.Equal(t, Unknown, Parse(""))
}

func TestIsEngineering_Routing(t *testing.T) {
	assert.True(t, GitHub.IsEngineering())
	assert.True(t, SubdomainDev.IsEngineering())
	assert.False(t, Homepage.IsEngineering())
	assert.False(t, InvestorRelations.IsEngineering())
	// Unknown sources never get engineering credit.
	assert.False(t, Unknown.IsEngineering())
}

func TestCorroborates_NarrowerThanEngineering(t *testing.T) {
	assert.True(t, GitHub.Corroborates())
	assert.True(t, CareersFallback.Corroborates())
	// Engineering subdomains route keywords to the engineering bucket but
	// do not clear the marketing-only flag.
	assert.True(t, SubdomainEngineering.IsEngineering())
	assert.False(t, SubdomainEngineering.Corroborates())
}

func TestIsNews(t *testing.T) {
	assert.True(t, PressRelease.IsNews())
	assert.True(t, InvestorRelations.IsNews())
	assert.False(t, GitHub.IsNews())
}

func TestToolWeight_TableAndDefault(t *testing.T) {
	assert.Equal(t, 2.0, GitHub.ToolWeight())
	assert.Equal(t, 0.5, Homepage.ToolWeight())
	assert.Equal(t, 1.0, InvestorRelations.ToolWeight())
	assert.Equal(t, DefaultToolWeight, Unknown.ToolWeight())
	assert.Equal(t, DefaultToolWeight, ManualRescore.ToolWeight())
}
