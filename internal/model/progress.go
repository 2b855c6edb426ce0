package model

// Progress stores a student's gamification state, keyed by RA.
type Progress struct {
	BaseModel
	RA                 int    `gorm:"uniqueIndex;not null" json:"ra"`
	Points             int    `gorm:"default:0" json:"points"`
	Level              int    `gorm:"default:1" json:"level"`
	QuestionsReviewed  int    `gorm:"default:0" json:"questionsReviewed"`
	ProfessorQuestions int    `gorm:"default:0" json:"professorQuestions"`
	GoalsCompleted     int    `gorm:"default:0" json:"goalsCompleted"`
	LastAccessDate     string `gorm:"size:10" json:"lastAccessDate"` // YYYY-MM-DD, gates the daily bonus
}

func (Progress) TableName() string {
	return "progress_records"
}

// UnlockedAchievement is one badge earned by a student. Insertion order
// (auto-increment ID) preserves first-unlock order for display.
type UnlockedAchievement struct {
	BaseModel
	RA          int    `gorm:"index:idx_ra_achievement,unique;not null" json:"ra"`
	Name        string `gorm:"index:idx_ra_achievement,unique;size:100;not null" json:"name"`
	Emoji       string `gorm:"size:10" json:"emoji"`
	Description string `gorm:"size:255" json:"description"`
	Points      int    `gorm:"default:0" json:"points"`
}

func (UnlockedAchievement) TableName() string {
	return "unlocked_achievements"
}
