package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aluno_ai_backend/internal/gamification"
	"aluno_ai_backend/internal/repository"
)

func newGamificationFixture(t *testing.T) *GamificationService {
	db := newTestDB(t)
	return NewGamificationService(repository.NewProgressRepository(db), newTestDataset(t))
}

func TestRecordActionPersists(t *testing.T) {
	svc := newGamificationFixture(t)

	points, err := svc.RecordAction(123456, gamification.ActionQuestionReview)
	require.NoError(t, err)
	assert.Equal(t, 5, points)

	points, err = svc.RecordAction(123456, gamification.ActionQuestionReview)
	require.NoError(t, err)
	assert.Equal(t, 5, points)

	widget, err := svc.Widget(123456)
	require.NoError(t, err)
	assert.Equal(t, 10, widget.Points)
	assert.Equal(t, 1, widget.Level)
	assert.Equal(t, 2, widget.ActionsPerformed)
}

func TestRecordActionUnknownKind(t *testing.T) {
	svc := newGamificationFixture(t)

	points, err := svc.RecordAction(123456, gamification.ActionKind("invented"))
	require.NoError(t, err)
	assert.Zero(t, points)
}

func TestSnapshotFor(t *testing.T) {
	svc := newGamificationFixture(t)

	snap, err := svc.SnapshotFor(123456)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.CorrectPortuguese)
	assert.Equal(t, 1, snap.CorrectMathematics)
	assert.Len(t, snap.PortugueseErrors, 1)
	assert.Len(t, snap.MathematicsErrors, 2)
	assert.Equal(t, 3, snap.TotalErrors())
}

func TestSyncAchievementsIdempotent(t *testing.T) {
	svc := newGamificationFixture(t)

	unlocked, err := svc.SyncAchievements(123456)
	require.NoError(t, err)
	require.Len(t, unlocked, 1)
	assert.Equal(t, "Focus on Weaknesses", unlocked[0].Name)

	again, err := svc.SyncAchievements(123456)
	require.NoError(t, err)
	assert.Empty(t, again)

	widget, err := svc.Widget(123456)
	require.NoError(t, err)
	assert.Equal(t, 40, widget.Points, "badge points awarded once")
	assert.Equal(t, 1, widget.AchievementCount)
}

func TestGrantDailyBonusOncePerDay(t *testing.T) {
	svc := newGamificationFixture(t)

	granted, err := svc.GrantDailyBonus(123456)
	require.NoError(t, err)
	assert.True(t, granted)

	granted, err = svc.GrantDailyBonus(123456)
	require.NoError(t, err)
	assert.False(t, granted)

	widget, err := svc.Widget(123456)
	require.NoError(t, err)
	assert.Equal(t, 2, widget.Points)
}
