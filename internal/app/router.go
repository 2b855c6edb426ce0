package app

import (
	"aluno_ai_backend/docs"
	"aluno_ai_backend/internal/config"
	"aluno_ai_backend/internal/middleware"
	"aluno_ai_backend/internal/model"
	"aluno_ai_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	// public routes
	public := router.Group("/api")
	{
		public.POST("/auth/student-login", c.auth.StudentLogin)
		public.POST("/auth/login", c.auth.StaffLogin)
	}

	// any authenticated identity
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/auth/me", c.auth.Me)
		authGroup.GET("/motivation/current", c.motivation.GetCurrent)
	}

	// student session routes
	student := router.Group("/api")
	student.Use(middleware.AuthMiddleware(cfg), middleware.StudentOnly())
	{
		student.GET("/dashboard", c.dashboard.GetDashboard)

		student.GET("/questions", c.question.ListReviews)
		student.POST("/questions/:number/review", c.question.ReviewQuestion)
		student.POST("/questions/:number/professor", c.question.AskProfessor)
		student.GET("/questions/:number/professor", c.question.ProfessorHistory)
		student.GET("/professor/history", c.question.ProfessorSessionHistory)

		student.GET("/tutor/history", c.tutor.History)
		student.POST("/tutor/chat", c.tutor.Chat)
		student.GET("/tutor/stream", c.tutor.ChatStream)

		student.GET("/progress", c.progress.GetWidget)
		student.POST("/progress/actions", c.progress.RecordAction)
		student.POST("/progress/achievements/sync", c.progress.SyncAchievements)

		student.GET("/study-plan", c.studyPlan.GetOverview)
		student.POST("/study-plan", c.studyPlan.Create)
		student.POST("/study-plan/checkpoints/:week", c.studyPlan.CompleteCheckpoint)
	}

	// admin routes
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.RoleAdmin))
	{
		admin.POST("/users", c.auth.RegisterStaff)

		admin.GET("/motivations", c.motivation.List)
		admin.POST("/motivations", c.motivation.Create)
		admin.PUT("/motivations/:id", c.motivation.Update)
		admin.DELETE("/motivations/:id", c.motivation.Delete)
		admin.POST("/motivations/:id/switch", c.motivation.Switch)

		admin.GET("/settings/ai", c.settings.AIStatus)
		admin.PUT("/settings/ai-key", c.settings.SetAIKey)
		admin.DELETE("/settings/ai-key", c.settings.ClearAIKey)

		admin.GET("/dataset", c.settings.DatasetStatus)
		admin.POST("/dataset/reload", c.settings.ReloadDataset)
	}
}
