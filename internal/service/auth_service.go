package service

import (
	"errors"

	"aluno_ai_backend/internal/config"
	"aluno_ai_backend/internal/gamification"
	"aluno_ai_backend/internal/model"
	"aluno_ai_backend/internal/repository"
	"aluno_ai_backend/internal/util"
	"aluno_ai_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// StudentLoginResult is what a successful RA login returns: the session
// token plus everything the first dashboard render needs to celebrate.
type StudentLoginResult struct {
	Token       string                     `json:"token"`
	Summary     *StudentSummary            `json:"summary"`
	NewBadges   []gamification.Achievement `json:"newBadges"`
	DailyBonus  bool                       `json:"dailyBonus"`
	DailyPoints int                        `json:"dailyPoints"`
}

type AuthService struct {
	UserRepo     *repository.UserRepository
	Students     *StudentService
	Gamification *GamificationService
	Cfg          *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, students *StudentService, gamificationService *GamificationService, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo:     userRepo,
		Students:     students,
		Gamification: gamificationService,
		Cfg:          cfg,
	}
}

// StudentLogin authenticates a student by RA against the dataset. On
// success it syncs achievements and applies the daily access bonus, so the
// side effects of "opening the platform" happen exactly once per login.
func (s *AuthService) StudentLogin(ra int) (*StudentLoginResult, error) {
	summary, err := s.Students.Summary(ra)
	if err != nil {
		return nil, err
	}

	token, err := util.GenerateStudentJWT(ra, summary.Name, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}

	newBadges, err := s.Gamification.SyncAchievements(ra)
	if err != nil {
		logger.Log.Error("achievement sync failed on login", zap.Int("ra", ra), zap.Error(err))
	}

	bonus, err := s.Gamification.GrantDailyBonus(ra)
	if err != nil {
		logger.Log.Error("daily bonus failed on login", zap.Int("ra", ra), zap.Error(err))
	}

	result := &StudentLoginResult{
		Token:      token,
		Summary:    summary,
		NewBadges:  newBadges,
		DailyBonus: bonus,
	}
	if bonus {
		result.DailyPoints = gamification.ActionDailyAccess.Points()
	}
	return result, nil
}

// RegisterStaff creates a teacher or admin account.
func (s *AuthService) RegisterStaff(user *model.User) error {
	_, err := s.UserRepo.FindByEmail(user.Email)
	if err == nil {
		return errors.New("email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)
	return s.UserRepo.Create(user)
}

// StaffLogin authenticates a teacher or admin by email and password.
func (s *AuthService) StaffLogin(email, password string) (string, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", util.ErrInvalidCredentials
	}
	if user.Disabled {
		return "", util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", util.ErrInvalidCredentials
	}

	if err := s.UserRepo.UpdateLastLogin(user.ID); err != nil {
		logger.Log.Warn("failed to update last login", zap.Uint("userId", user.ID), zap.Error(err))
	}

	return util.GenerateStaffJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

func (s *AuthService) GetCurrentUser(c *gin.Context) *model.User {
	claims := util.GetUserFromContext(c)
	if claims == nil || claims.UserID == 0 {
		return nil
	}

	user, _ := s.UserRepo.FindByID(claims.UserID)
	return user
}
