package controller

import (
	"aluno_ai_backend/internal/config"
	"aluno_ai_backend/internal/repository"
	"aluno_ai_backend/internal/service"
	"aluno_ai_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// SettingsController exposes the admin runtime switches: the AI key and the
// performance dataset.
type SettingsController struct {
	AIService   *service.AIService
	DatasetRepo *repository.DatasetRepository
	Config      *config.Config
}

func NewSettingsController(aiService *service.AIService, datasetRepo *repository.DatasetRepository, cfg *config.Config) *SettingsController {
	return &SettingsController{AIService: aiService, DatasetRepo: datasetRepo, Config: cfg}
}

// @Summary AI status
// @Description Reports whether a model key is configured and which model is used
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/admin/settings/ai [get]
func (c *SettingsController) AIStatus(ctx *gin.Context) {
	model := c.Config.AI.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	util.Success(ctx, gin.H{
		"available": c.AIService.Available(),
		"model":     model,
	})
}

// @Summary Set the AI key
// @Description Stores an API key for the session, used when neither config nor environment provide one
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/admin/settings/ai-key [put]
func (c *SettingsController) SetAIKey(ctx *gin.Context) {
	var req struct {
		Key string `json:"key" binding:"required,min=8"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "key is required")
		return
	}

	c.AIService.SetRuntimeKey(req.Key)
	util.Success(ctx, gin.H{"available": c.AIService.Available()})
}

// @Summary Clear the runtime AI key
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/admin/settings/ai-key [delete]
func (c *SettingsController) ClearAIKey(ctx *gin.Context) {
	c.AIService.ClearRuntimeKey()
	util.Success(ctx, gin.H{"available": c.AIService.Available()})
}

// @Summary Dataset status
// @Description Reports whether the performance dataset is loaded and how many rows it holds
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/admin/dataset [get]
func (c *SettingsController) DatasetStatus(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"loaded":   c.DatasetRepo.Loaded(),
		"rows":     c.DatasetRepo.Count(),
		"loadedAt": c.DatasetRepo.LoadedAt(),
	})
}

// @Summary Reload the dataset
// @Description Re-reads the assessment results file from disk
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/admin/dataset/reload [post]
func (c *SettingsController) ReloadDataset(ctx *gin.Context) {
	if err := c.DatasetRepo.Load(); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, gin.H{"rows": c.DatasetRepo.Count()})
}
