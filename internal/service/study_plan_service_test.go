package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aluno_ai_backend/internal/model"
	"aluno_ai_backend/internal/repository"
	"aluno_ai_backend/internal/util"
)

func newPlanFixture(t *testing.T) (*StudyPlanService, *GamificationService) {
	db := newTestDB(t)
	dataset := newTestDataset(t)
	students := NewStudentService(dataset)
	gamificationService := NewGamificationService(repository.NewProgressRepository(db), dataset)
	svc := NewStudyPlanService(repository.NewPlanRepository(db), students, NewChartService(), gamificationService)
	return svc, gamificationService
}

func TestCheckpointRequiresPlan(t *testing.T) {
	svc, _ := newPlanFixture(t)

	_, err := svc.CompleteCheckpoint(123456, 4)
	assert.ErrorIs(t, err, util.ErrPlanNotCreated)
}

func TestCheckpointUnknownWeek(t *testing.T) {
	svc, _ := newPlanFixture(t)
	require.NoError(t, svc.Create(123456))

	_, err := svc.CompleteCheckpoint(123456, 5)
	assert.ErrorIs(t, err, util.ErrUnknownCheckpoint)
}

func TestPlanLifecycle(t *testing.T) {
	svc, gamificationService := newPlanFixture(t)

	overview, err := svc.Overview(123456)
	require.NoError(t, err)
	assert.Equal(t, model.PlanNotCreated, overview.Status)

	require.NoError(t, svc.Create(123456))
	assert.ErrorIs(t, svc.Create(123456), util.ErrPlanAlreadyExists)

	first, err := svc.CompleteCheckpoint(123456, 4)
	require.NoError(t, err)
	assert.True(t, first)

	// repeating the same week scores nothing
	first, err = svc.CompleteCheckpoint(123456, 4)
	require.NoError(t, err)
	assert.False(t, first)

	// 20 for creating the plan, 15 for the first checkpoint
	widget, err := gamificationService.Widget(123456)
	require.NoError(t, err)
	assert.Equal(t, 35, widget.Points)

	overview, err = svc.Overview(123456)
	require.NoError(t, err)
	assert.Equal(t, model.PlanCreated, overview.Status)
	assert.Equal(t, 1, overview.CompletedCount)
	require.Len(t, overview.Checkpoints, 5)
	assert.Equal(t, Checkpoint{Week: 4, Completed: true}, overview.Checkpoints[0])
	assert.Equal(t, Checkpoint{Week: 24, Completed: false}, overview.Checkpoints[4])
	assert.NotEmpty(t, overview.FocusContents)
}

func TestPlanOverviewTemplate(t *testing.T) {
	svc, _ := newPlanFixture(t)

	// template sections only appear once the plan exists
	overview, err := svc.Overview(123456)
	require.NoError(t, err)
	assert.Empty(t, overview.HourSplit)
	assert.Empty(t, overview.Goals)
	assert.Empty(t, overview.WeeklySchedule)
	assert.Empty(t, overview.Strategies)
	assert.Empty(t, overview.Resources)

	require.NoError(t, svc.Create(123456))

	overview, err = svc.Overview(123456)
	require.NoError(t, err)

	require.Len(t, overview.HourSplit, 6)
	assert.Equal(t, HourAllocation{Activity: "Portuguese", Hours: 4}, overview.HourSplit[0])
	assert.Equal(t, HourAllocation{Activity: "Total", Hours: 15}, overview.HourSplit[5])

	require.Len(t, overview.Goals, 3)
	assert.Equal(t, "Short Term (1 month)", overview.Goals[0].Horizon)
	assert.Contains(t, overview.Goals[2].Goals, "Reach 800+ points")

	require.Len(t, overview.WeeklySchedule, 3)
	assert.Equal(t, "Monday", overview.WeeklySchedule[0].Day)
	assert.Equal(t, "Mixed", overview.WeeklySchedule[2].Focus)
	assert.Equal(t, "Theory (1h) → Exercises (1h) → Review (1h)", overview.WeeklySchedule[0].Activities)

	assert.Len(t, overview.Strategies, 4)
	assert.Len(t, overview.Resources, 4)
}
