package model

// StudyPlanStatus values mirror the plan lifecycle: not created yet,
// questionnaire in progress, generated.
type StudyPlanStatus string

const (
	PlanNotCreated StudyPlanStatus = "not_created"
	PlanCreating   StudyPlanStatus = "creating"
	PlanCreated    StudyPlanStatus = "created"
)

// StudyPlan tracks whether a student has generated a personalized plan.
type StudyPlan struct {
	BaseModel
	RA     int             `gorm:"uniqueIndex;not null" json:"ra"`
	Status StudyPlanStatus `gorm:"size:20;default:'not_created'" json:"status"`
}

func (StudyPlan) TableName() string {
	return "study_plans"
}

// CheckpointCompletion records a completed progress checkpoint week.
type CheckpointCompletion struct {
	BaseModel
	RA   int `gorm:"index:idx_ra_week,unique;not null" json:"ra"`
	Week int `gorm:"index:idx_ra_week,unique;not null" json:"week"`
}

func (CheckpointCompletion) TableName() string {
	return "checkpoint_completions"
}
