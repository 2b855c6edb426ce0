package service

import (
	"time"

	"aluno_ai_backend/internal/gamification"
	"aluno_ai_backend/internal/model"
	"aluno_ai_backend/internal/repository"
	"aluno_ai_backend/internal/util"
)

// GamificationService persists the scoring engine's state per student. The
// engine itself is pure; this service owns loading, applying and storing.
type GamificationService struct {
	ProgressRepo *repository.ProgressRepository
	DatasetRepo  *repository.DatasetRepository
}

func NewGamificationService(progressRepo *repository.ProgressRepository, datasetRepo *repository.DatasetRepository) *GamificationService {
	return &GamificationService{ProgressRepo: progressRepo, DatasetRepo: datasetRepo}
}

func (s *GamificationService) load(ra int) (*model.Progress, *gamification.Progress, error) {
	record, err := s.ProgressRepo.FindOrCreate(ra)
	if err != nil {
		return nil, nil, err
	}
	unlocked, err := s.ProgressRepo.Achievements(ra)
	if err != nil {
		return nil, nil, err
	}

	p := &gamification.Progress{
		Points:             record.Points,
		Level:              record.Level,
		QuestionsReviewed:  record.QuestionsReviewed,
		ProfessorQuestions: record.ProfessorQuestions,
		GoalsCompleted:     record.GoalsCompleted,
		LastAccessDate:     record.LastAccessDate,
	}
	for _, a := range unlocked {
		p.Achievements = append(p.Achievements, gamification.Achievement{
			Name:        a.Name,
			Emoji:       a.Emoji,
			Description: a.Description,
			Points:      a.Points,
		})
	}
	return record, p, nil
}

func syncRecord(record *model.Progress, p *gamification.Progress) {
	record.Points = p.Points
	record.Level = p.Level
	record.QuestionsReviewed = p.QuestionsReviewed
	record.ProfessorQuestions = p.ProfessorQuestions
	record.GoalsCompleted = p.GoalsCompleted
	record.LastAccessDate = p.LastAccessDate
}

// RecordAction applies one scored action and persists the result. Returns
// the points awarded.
func (s *GamificationService) RecordAction(ra int, kind gamification.ActionKind) (int, error) {
	record, p, err := s.load(ra)
	if err != nil {
		return 0, err
	}

	points := gamification.Apply(p, kind)
	if points == 0 {
		return 0, nil
	}

	syncRecord(record, p)
	return points, s.ProgressRepo.Update(record)
}

// GrantDailyBonus applies the daily access bonus at most once per day.
func (s *GamificationService) GrantDailyBonus(ra int) (bool, error) {
	record, p, err := s.load(ra)
	if err != nil {
		return false, err
	}

	if !gamification.DailyBonus(p, time.Now().Format(util.DateFormat)) {
		return false, nil
	}

	syncRecord(record, p)
	return true, s.ProgressRepo.Update(record)
}

// SnapshotFor builds the performance snapshot the achievement rules run on.
func (s *GamificationService) SnapshotFor(ra int) (gamification.Snapshot, error) {
	rows, err := s.DatasetRepo.FindByRA(ra)
	if err != nil {
		return gamification.Snapshot{}, err
	}

	var snap gamification.Snapshot
	for _, row := range rows {
		switch row.SubjectCode {
		case util.SubjectCodePortuguese:
			if row.Correct {
				snap.CorrectPortuguese++
			}
			if row.Wrong {
				snap.PortugueseErrors = append(snap.PortugueseErrors, gamification.ErrorRow{
					QuestionNumber: row.QuestionNumber,
					Content:        row.Content,
				})
			}
		case util.SubjectCodeMathematics:
			if row.Correct {
				snap.CorrectMathematics++
			}
			if row.Wrong {
				snap.MathematicsErrors = append(snap.MathematicsErrors, gamification.ErrorRow{
					QuestionNumber: row.QuestionNumber,
					Content:        row.Content,
				})
			}
		}
	}
	return snap, nil
}

// SyncAchievements evaluates the rule table against the student's current
// results and persists any newly unlocked badges. Safe to call on every
// login: unlocking is idempotent.
func (s *GamificationService) SyncAchievements(ra int) ([]gamification.Achievement, error) {
	snap, err := s.SnapshotFor(ra)
	if err != nil {
		return nil, err
	}

	record, p, err := s.load(ra)
	if err != nil {
		return nil, err
	}

	unlocked := gamification.Evaluate(p, snap)
	if len(unlocked) == 0 {
		return nil, nil
	}

	rows := make([]model.UnlockedAchievement, 0, len(unlocked))
	for _, a := range unlocked {
		rows = append(rows, model.UnlockedAchievement{
			RA:          ra,
			Name:        a.Name,
			Emoji:       a.Emoji,
			Description: a.Description,
			Points:      a.Points,
		})
	}

	syncRecord(record, p)
	if err := s.ProgressRepo.SaveAchievements(record, rows); err != nil {
		return nil, err
	}
	return unlocked, nil
}

// Widget returns the precomputed progression card for the dashboard.
func (s *GamificationService) Widget(ra int) (*gamification.Widget, error) {
	_, p, err := s.load(ra)
	if err != nil {
		return nil, err
	}
	w := gamification.BuildWidget(p)
	return &w, nil
}
