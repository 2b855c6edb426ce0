package service

import (
	"aluno_ai_backend/internal/gamification"
	"aluno_ai_backend/internal/model"
	"aluno_ai_backend/internal/repository"
	"aluno_ai_backend/internal/util"
	"aluno_ai_backend/pkg/logger"

	"go.uber.org/zap"
)

// checkpointWeeks are the fixed milestones of the 6-month study plan.
var checkpointWeeks = []int{4, 8, 12, 16, 24}

// Checkpoint is one milestone of the plan and whether it is done.
type Checkpoint struct {
	Week      int  `json:"week"`
	Completed bool `json:"completed"`
}

// HourAllocation is one slot of the weekly hour distribution.
type HourAllocation struct {
	Activity string `json:"activity"`
	Hours    int    `json:"hours"`
}

// GoalGroup holds the plan goals for one time horizon.
type GoalGroup struct {
	Horizon string   `json:"horizon"`
	Goals   []string `json:"goals"`
}

// ScheduleDay is one entry of the suggested weekly schedule.
type ScheduleDay struct {
	Day        string `json:"day"`
	Focus      string `json:"focus"`
	Hours      int    `json:"hours"`
	Activities string `json:"activities"`
}

// Fixed plan template. The only student-specific part of the plan is the
// focus list, derived from the dataset; the rest is the program's standard
// 15-hour week.
var (
	planHourSplit = []HourAllocation{
		{Activity: "Portuguese", Hours: 4},
		{Activity: "Mathematics", Hours: 4},
		{Activity: "Writing", Hours: 2},
		{Activity: "Review", Hours: 3},
		{Activity: "Mock tests", Hours: 2},
		{Activity: "Total", Hours: 15},
	}

	planGoals = []GoalGroup{
		{Horizon: "Short Term (1 month)", Goals: []string{
			"Review 3 Portuguese contents",
			"Review 3 Mathematics contents",
		}},
		{Horizon: "Medium Term (3 months)", Goals: []string{
			"Increase 6 correct in Portuguese",
			"Increase 6 correct in Mathematics",
		}},
		{Horizon: "Long Term (6 months)", Goals: []string{
			"Reach 800+ points",
			"Master main contents",
		}},
	}

	planSchedule = []ScheduleDay{
		{Day: "Monday", Focus: "Portuguese", Hours: 3, Activities: "Theory (1h) → Exercises (1h) → Review (1h)"},
		{Day: "Wednesday", Focus: "Mathematics", Hours: 3, Activities: "Theory (1h) → Exercises (1h) → Review (1h)"},
		{Day: "Friday", Focus: "Mixed", Hours: 3, Activities: "Theory (1h) → Exercises (1h) → Review (1h)"},
	}

	planStrategies = []string{
		"Watch video lessons about contents with difficulty",
		"Use mind maps to organize knowledge",
		"Solve exercises similar to those you got wrong",
		"Practice with weekly mock tests",
	}

	planResources = []string{
		"YouTube: Professor Ferretto (Mathematics), Professor Noslen (Portuguese)",
		"Booklets: Poliedro, Bernoulli, Etapa",
		"Mock tests: Previous ENEM exams",
		"Platform: Use AI Professor for specific doubts",
	}
)

// PlanOverview is the student's plan state plus per-content study focus. The
// template sections are present only once the plan has been created.
type PlanOverview struct {
	Status         model.StudyPlanStatus `json:"status"`
	Checkpoints    []Checkpoint          `json:"checkpoints"`
	FocusContents  []ContentErrors       `json:"focusContents"`
	CompletedCount int                   `json:"completedCount"`

	HourSplit      []HourAllocation `json:"hourSplit,omitempty"`
	Goals          []GoalGroup      `json:"goals,omitempty"`
	WeeklySchedule []ScheduleDay    `json:"weeklySchedule,omitempty"`
	Strategies     []string         `json:"strategies,omitempty"`
	Resources      []string         `json:"resources,omitempty"`
}

type StudyPlanService struct {
	PlanRepo     *repository.PlanRepository
	Students     *StudentService
	Charts       *ChartService
	Gamification *GamificationService
}

func NewStudyPlanService(planRepo *repository.PlanRepository, students *StudentService, charts *ChartService, gamificationService *GamificationService) *StudyPlanService {
	return &StudyPlanService{
		PlanRepo:     planRepo,
		Students:     students,
		Charts:       charts,
		Gamification: gamificationService,
	}
}

// Create generates the student's plan. The focus list is derived from the
// dataset at read time, so creation only records the lifecycle state. First
// creation scores a tab completion.
func (s *StudyPlanService) Create(ra int) error {
	existing, err := s.PlanRepo.Find(ra)
	if err != nil {
		return err
	}
	if existing != nil && existing.Status == model.PlanCreated {
		return util.ErrPlanAlreadyExists
	}

	if existing != nil {
		existing.Status = model.PlanCreated
		return s.PlanRepo.Update(existing)
	}

	if err := s.PlanRepo.Create(&model.StudyPlan{RA: ra, Status: model.PlanCreated}); err != nil {
		return err
	}
	if _, err := s.Gamification.RecordAction(ra, gamification.ActionTabCompletion); err != nil {
		logger.Log.Error("failed to score plan creation", zap.Int("ra", ra), zap.Error(err))
	}
	return nil
}

// Overview returns the plan state, checkpoints and study focus.
func (s *StudyPlanService) Overview(ra int) (*PlanOverview, error) {
	plan, err := s.PlanRepo.Find(ra)
	if err != nil {
		return nil, err
	}

	overview := &PlanOverview{Status: model.PlanNotCreated}
	if plan != nil {
		overview.Status = plan.Status
	}
	if overview.Status == model.PlanCreated {
		overview.HourSplit = planHourSplit
		overview.Goals = planGoals
		overview.WeeklySchedule = planSchedule
		overview.Strategies = planStrategies
		overview.Resources = planResources
	}

	completed, err := s.PlanRepo.CompletedWeeks(ra)
	if err != nil {
		return nil, err
	}
	done := map[int]bool{}
	for _, w := range completed {
		done[w] = true
	}

	for _, week := range checkpointWeeks {
		overview.Checkpoints = append(overview.Checkpoints, Checkpoint{Week: week, Completed: done[week]})
		if done[week] {
			overview.CompletedCount++
		}
	}

	summary, err := s.Students.Summary(ra)
	if err != nil {
		return nil, err
	}
	overview.FocusContents = s.Charts.PriorityContents(summary)

	return overview, nil
}

// CompleteCheckpoint marks a milestone week done, scoring a goal completion
// the first time. Repeating a week is a no-op.
func (s *StudyPlanService) CompleteCheckpoint(ra, week int) (bool, error) {
	valid := false
	for _, w := range checkpointWeeks {
		if w == week {
			valid = true
			break
		}
	}
	if !valid {
		return false, util.ErrUnknownCheckpoint
	}

	plan, err := s.PlanRepo.Find(ra)
	if err != nil {
		return false, err
	}
	if plan == nil || plan.Status != model.PlanCreated {
		return false, util.ErrPlanNotCreated
	}

	first, err := s.PlanRepo.CompleteWeek(ra, week)
	if err != nil {
		return false, err
	}
	if !first {
		return false, nil
	}

	if _, err := s.Gamification.RecordAction(ra, gamification.ActionGoalCompletion); err != nil {
		logger.Log.Error("failed to score goal completion", zap.Int("ra", ra), zap.Error(err))
	}
	return true, nil
}
