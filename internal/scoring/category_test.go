package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThresholds_CategoryBoundaries(t *testing.T) {
	th := DefaultThresholds()

	cases := []struct {
		score float64
		want  Category
	}{
		{0, NoSignal},
		{29.9, NoSignal},
		{30, Lagging},
		{49.9, Lagging},
		{50, Operational},
		{80, Leading},
		{94.9, Leading},
		{95, Transformational},
		{100, Transformational},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, th.Category(c.score), "score %.1f", c.score)
	}
}

func TestThresholds_FloorRoundTrips(t *testing.T) {
	th := DefaultThresholds()
	for _, c := range []Category{NoSignal, Lagging, Operational, Leading, Transformational} {
		assert.Equal(t, c, th.Category(th.Floor(c)), c.String())
	}
}

func TestThresholds_ValidateRejectsNonIncreasing(t *testing.T) {
	th := DefaultThresholds()
	th.Leading = th.Operational
	assert.Error(t, th.Validate())
}

func TestCategory_Ordering(t *testing.T) {
	assert.True(t, NoSignal < Lagging)
	assert.True(t, Lagging < Operational)
	assert.True(t, Operational < Leading)
	assert.True(t, Leading < Transformational)
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("operational")
	require.NoError(t, err)
	assert.Equal(t, Operational, c)

	_, err = ParseCategory("stellar")
	assert.Error(t, err)
}

func TestCategory_Labels(t *testing.T) {
	assert.Equal(t, "transformational", Transformational.String())
	assert.Equal(t, "Transformational", Transformational.Label())
}
