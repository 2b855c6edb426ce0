package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(unlocked []Achievement) []string {
	out := make([]string, 0, len(unlocked))
	for _, a := range unlocked {
		out = append(out, a.Name)
	}
	return out
}

func TestPortugueseTierExclusivity(t *testing.T) {
	p := &Progress{Level: 1}
	unlocked := Evaluate(p, Snapshot{
		CorrectPortuguese: 18,
		MathematicsErrors: []ErrorRow{{1, "Funções"}, {2, "Geometria"}, {3, "PA"}, {4, "Estatística"}},
	})

	got := names(unlocked)
	assert.Contains(t, got, "King of Portuguese")
	assert.NotContains(t, got, "Portuguese Master")
	assert.NotContains(t, got, "Portuguese Aspirant")
}

func TestMiddleTierFiresAlone(t *testing.T) {
	p := &Progress{Level: 1}
	unlocked := Evaluate(p, Snapshot{
		CorrectMathematics: 15,
		PortugueseErrors:   make([]ErrorRow, 9),
	})

	got := names(unlocked)
	assert.Contains(t, got, "Mathematics Master")
	assert.NotContains(t, got, "King of Mathematics")
	assert.NotContains(t, got, "Mathematics Aspirant")
}

func TestErrorTiers(t *testing.T) {
	cases := []struct {
		errors int
		expect string
	}{
		{0, "Perfection!"},
		{2, "Focus on Weaknesses"},
		{3, "Focus on Weaknesses"},
		{8, "In Progress"},
	}

	for _, tc := range cases {
		p := &Progress{Level: 1}
		unlocked := Evaluate(p, Snapshot{MathematicsErrors: make([]ErrorRow, tc.errors)})
		assert.Contains(t, names(unlocked), tc.expect, "errors=%d", tc.errors)
	}

	// More than 8 errors unlocks no review-tier badge.
	p := &Progress{Level: 1}
	unlocked := Evaluate(p, Snapshot{PortugueseErrors: make([]ErrorRow, 9)})
	for _, name := range names(unlocked) {
		assert.NotContains(t, []string{"Perfection!", "Focus on Weaknesses", "In Progress"}, name)
	}
}

func TestBalanceRuleCoFiresWithTiers(t *testing.T) {
	p := &Progress{Level: 1}
	unlocked := Evaluate(p, Snapshot{
		CorrectPortuguese:  12,
		CorrectMathematics: 10,
		PortugueseErrors:   make([]ErrorRow, 6),
		MathematicsErrors:  make([]ErrorRow, 8),
	})

	got := names(unlocked)
	assert.Contains(t, got, "Portuguese Aspirant")
	assert.Contains(t, got, "Perfect Balance")
}

func TestKingOfPortugueseScenario(t *testing.T) {
	// 18/18 Portuguese, 9 Mathematics, zero errors overall.
	p := &Progress{Level: 1}
	unlocked := Evaluate(p, Snapshot{CorrectPortuguese: 18, CorrectMathematics: 9})

	got := names(unlocked)
	assert.Contains(t, got, "King of Portuguese")
	assert.Contains(t, got, "Perfection!")
	assert.NotContains(t, got, "Perfect Balance")

	require.True(t, p.Has("King of Portuguese"))
	assert.Equal(t, 50+100, p.Points)
	assert.Equal(t, LevelFor(150), p.Level)
}

func TestPointsForUnknownBadgeDefaults(t *testing.T) {
	assert.Equal(t, 50, PointsFor("King of Portuguese"))
	assert.Equal(t, 10, PointsFor("Some Future Badge"))
}
