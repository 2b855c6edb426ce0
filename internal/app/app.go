package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aluno_ai_backend/internal/config"
	"aluno_ai_backend/internal/controller"
	"aluno_ai_backend/internal/repository"
	"aluno_ai_backend/internal/service"
	"aluno_ai_backend/pkg/configwatcher"
	"aluno_ai_backend/pkg/database"
	"aluno_ai_backend/pkg/logger"
	"aluno_ai_backend/pkg/monitoring"
	"aluno_ai_backend/pkg/security"
	"aluno_ai_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client

	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user       *repository.UserRepository
	dataset    *repository.DatasetRepository
	progress   *repository.ProgressRepository
	professor  *repository.ProfessorRepository
	tutor      *repository.TutorRepository
	motivation *repository.MotivationRepository
	plan       *repository.PlanRepository
}

type services struct {
	ai           *service.AIService
	storage      *service.StorageService
	documents    *service.DocumentService
	student      *service.StudentService
	gamification *service.GamificationService
	charts       *service.ChartService
	motivation   *service.MotivationService
	auth         *service.AuthService
	professor    *service.ProfessorService
	tutor        *service.TutorService
	studyPlan    *service.StudyPlanService
	dashboard    *service.DashboardService
}

type controllers struct {
	auth       *controller.AuthController
	dashboard  *controller.DashboardController
	question   *controller.QuestionController
	tutor      *controller.TutorController
	progress   *controller.ProgressController
	studyPlan  *controller.StudyPlanController
	motivation *controller.MotivationController
	settings   *controller.SettingsController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB, cfg *config.Config) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		dataset:    repository.NewDatasetRepository(cfg.Dataset.Path),
		progress:   repository.NewProgressRepository(db),
		professor:  repository.NewProfessorRepository(db),
		tutor:      repository.NewTutorRepository(db),
		motivation: repository.NewMotivationRepository(db),
		plan:       repository.NewPlanRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.ai = service.NewAIService(cfg.AI)
	s.storage = service.NewStorageService(cfg)
	s.documents = service.NewDocumentService(rdb, s.storage)
	s.student = service.NewStudentService(repos.dataset)
	s.gamification = service.NewGamificationService(repos.progress, repos.dataset)
	s.charts = service.NewChartService()
	s.motivation = service.NewMotivationService(repos.motivation)
	s.auth = service.NewAuthService(repos.user, s.student, s.gamification, cfg)
	s.professor = service.NewProfessorService(s.ai, s.documents, s.student, repos.professor, s.gamification)
	s.tutor = service.NewTutorService(s.ai, s.student, repos.tutor, s.gamification)
	s.studyPlan = service.NewStudyPlanService(repos.plan, s.student, s.charts, s.gamification)
	s.dashboard = service.NewDashboardService(s.student, s.gamification, s.charts, s.motivation)

	return s
}

func (a *App) initControllers(s *services, repos *repositories, db *gorm.DB) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		dashboard:  controller.NewDashboardController(s.dashboard),
		question:   controller.NewQuestionController(s.student, s.professor, s.gamification),
		tutor:      controller.NewTutorController(s.tutor),
		progress:   controller.NewProgressController(s.gamification),
		studyPlan:  controller.NewStudyPlanController(s.studyPlan),
		motivation: controller.NewMotivationController(s.motivation),
		settings:   controller.NewSettingsController(s.ai, repos.dataset, a.Config),
		health:     controller.NewHealthController(db, repos.dataset),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests == 0 {
		maxRequests = 6000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window == 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// watchConfig hot-reloads config.yaml and fans the new config out to the
// registered callbacks.
func (a *App) watchConfig() {
	go configwatcher.WatchConfig("configs/config.yaml", a.Config, func(raw interface{}) {
		newCfg, ok := raw.(*config.Config)
		if !ok {
			return
		}
		logger.Log.Info("Config reloaded")
		for _, callback := range a.configCallbacks {
			callback(newCfg)
		}
	})
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db, cfg)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, repos, db)

	if err := repos.dataset.Load(); err != nil {
		// the server still starts; admins can fix the file and reload
		logger.Log.Warn("Failed to load performance dataset",
			zap.String("path", cfg.Dataset.Path),
			zap.Error(err))
	} else {
		logger.Log.Info("Performance dataset loaded", zap.Int("rows", repos.dataset.Count()))
	}

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("aluno-ai-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/files", cfg.Storage.LocalPath)
	}

	app.RegisterConfigCallback(func(newCfg *config.Config) {
		services.ai.UpdateConfig(newCfg.AI)
	})
	app.watchConfig()

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logger.Log.Sync()
	log.Println("Server exiting")
}
