package controller

import (
	"net/http"

	"aluno_ai_backend/internal/repository"
	"aluno_ai_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB          *gorm.DB
	DatasetRepo *repository.DatasetRepository
}

func NewHealthController(db *gorm.DB, datasetRepo *repository.DatasetRepository) *HealthController {
	return &HealthController{DB: db, DatasetRepo: datasetRepo}
}

// @Summary Health check
// @Description Reports service, database and dataset status
// @Tags system
// @Produce json
// @Success 200 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	sqlDB, err := c.DB.DB()
	if err != nil {
		util.InternalServerError(ctx)
		return
	}

	if err := sqlDB.Ping(); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	dataset := "up"
	if !c.DatasetRepo.Loaded() {
		dataset = "not_loaded"
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"database": "up",
			"dataset":  dataset,
		},
	})
}
