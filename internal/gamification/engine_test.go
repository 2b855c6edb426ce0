package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyAccumulatesFixedPointValues(t *testing.T) {
	p := &Progress{Level: 1}

	seq := []ActionKind{
		ActionDailyAccess,       // 2
		ActionQuestionReview,    // 5
		ActionProfessorQuestion, // 8
		ActionGoalCompletion,    // 15
		ActionTutorInteraction,  // 3
		ActionTabCompletion,     // 20
		ActionAchievement,       // 10
	}

	total := 0
	for _, kind := range seq {
		total += Apply(p, kind)
	}

	assert.Equal(t, 63, total)
	assert.Equal(t, 63, p.Points)
}

func TestApplyUnknownKindIsNoOp(t *testing.T) {
	p := &Progress{Points: 10, Level: 1}

	awarded := Apply(p, ActionKind("watch_video"))

	assert.Zero(t, awarded)
	assert.Equal(t, 10, p.Points)
	assert.Zero(t, p.QuestionsReviewed)
}

func TestLevelAlwaysDerivedFromPoints(t *testing.T) {
	cases := []struct {
		points int
		level  int
	}{
		{0, 1},
		{49, 1},
		{50, 2},
		{99, 2},
		{100, 3},
		{250, 6},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.level, LevelFor(tc.points), "points=%d", tc.points)
	}

	p := &Progress{Level: 1}
	for i := 0; i < 12; i++ {
		Apply(p, ActionQuestionReview)
		assert.Equal(t, LevelFor(p.Points), p.Level)
	}
}

func TestApplyBumpsOnlyDedicatedCounters(t *testing.T) {
	p := &Progress{Level: 1}

	Apply(p, ActionQuestionReview)
	Apply(p, ActionQuestionReview)
	Apply(p, ActionProfessorQuestion)
	Apply(p, ActionGoalCompletion)
	Apply(p, ActionTutorInteraction)
	Apply(p, ActionTabCompletion)
	Apply(p, ActionDailyAccess)

	assert.Equal(t, 2, p.QuestionsReviewed)
	assert.Equal(t, 1, p.ProfessorQuestions)
	assert.Equal(t, 1, p.GoalsCompleted)
}

func TestEvaluateIsIdempotent(t *testing.T) {
	p := &Progress{Level: 1}
	snap := Snapshot{CorrectPortuguese: 16, CorrectMathematics: 11}

	first := Evaluate(p, snap)
	require.NotEmpty(t, first)
	pointsAfterFirst := p.Points
	countAfterFirst := len(p.Achievements)

	second := Evaluate(p, snap)
	assert.Empty(t, second)
	assert.Equal(t, pointsAfterFirst, p.Points)
	assert.Equal(t, countAfterFirst, len(p.Achievements))
}

func TestAchievementSetOnlyGrows(t *testing.T) {
	p := &Progress{Level: 1}

	Evaluate(p, Snapshot{CorrectPortuguese: 12, CorrectMathematics: 5})
	snapshot1 := make([]string, 0, len(p.Achievements))
	for _, a := range p.Achievements {
		snapshot1 = append(snapshot1, a.Name)
	}

	// Better performance later: earlier unlocks must survive.
	Evaluate(p, Snapshot{CorrectPortuguese: 18, CorrectMathematics: 15})

	for _, name := range snapshot1 {
		assert.True(t, p.Has(name))
	}
	assert.True(t, len(p.Achievements) >= len(snapshot1))
}

func TestDailyBonusAppliedOncePerDay(t *testing.T) {
	p := &Progress{Level: 1}

	assert.True(t, DailyBonus(p, "2026-08-28"))
	assert.Equal(t, 2, p.Points)
	assert.Equal(t, "2026-08-28", p.LastAccessDate)

	assert.False(t, DailyBonus(p, "2026-08-28"))
	assert.Equal(t, 2, p.Points)

	assert.True(t, DailyBonus(p, "2026-08-29"))
	assert.Equal(t, 4, p.Points)
}
