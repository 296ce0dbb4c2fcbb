package sportpesa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockMatches(t *testing.T) {
	matches := MockMatches()
	require.Len(t, matches, 3)

	wantNames := []string{"Manchester United vs Liverpool", "Arsenal vs Chelsea", "Barcelona vs Real Madrid"}
	for i, m := range matches {
		assert.Equal(t, i, m.ID)
		assert.Equal(t, wantNames[i], m.Name)
		assert.Equal(t, m.Teams[0]+" vs "+m.Teams[1], m.Name)
		assert.Regexp(t, kickoffRegex, m.Time)
		assert.True(t, m.FullTimeOdds.Complete())
		for _, v := range []*float64{
			m.DoubleChance.HomeOrDraw, m.DoubleChance.DrawOrAway, m.DoubleChance.HomeOrAway,
			m.OverUnder.Over, m.OverUnder.Under, m.BTTS.Yes, m.BTTS.No,
		} {
			assert.NotNil(t, v)
		}
		assert.Nil(t, m.Prediction)
	}
	assertOdd(t, 2.45, matches[0].FullTimeOdds.Home)
}

func TestMockMatches_FreshCopy(t *testing.T) {
	first := MockMatches()
	*first[0].FullTimeOdds.Home = 99
	first[1].Name = "changed"

	second := MockMatches()
	assertOdd(t, 2.45, second[0].FullTimeOdds.Home)
	assert.Equal(t, "Arsenal vs Chelsea", second[1].Name)
}
