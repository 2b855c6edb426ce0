package controller

import (
	"aluno_ai_backend/internal/gamification"
	"aluno_ai_backend/internal/service"
	"aluno_ai_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	GamificationService *service.GamificationService
}

func NewProgressController(gamificationService *service.GamificationService) *ProgressController {
	return &ProgressController{GamificationService: gamificationService}
}

// actions a client may report directly; everything else is scored server-side
// by the feature that performs it.
var clientReportableActions = map[gamification.ActionKind]bool{
	gamification.ActionTabCompletion: true,
}

// @Summary Progression widget
// @Description Returns the student's level, points and unlocked achievements
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/progress [get]
func (c *ProgressController) GetWidget(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	widget, err := c.GamificationService.Widget(claims.RA)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, widget)
}

// @Summary Report a scored action
// @Description Records a client-side action such as completing a study tab
// @Tags progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/progress/actions [post]
func (c *ProgressController) RecordAction(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req struct {
		Action string `json:"action" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "action is required")
		return
	}

	kind := gamification.ActionKind(req.Action)
	if !clientReportableActions[kind] {
		util.BadRequest(ctx, "unknown or non-reportable action")
		return
	}

	points, err := c.GamificationService.RecordAction(claims.RA, kind)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	widget, err := c.GamificationService.Widget(claims.RA)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"points": points, "widget": widget})
}

// @Summary Re-evaluate achievements
// @Description Runs the achievement rules against the student's current results
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/progress/achievements/sync [post]
func (c *ProgressController) SyncAchievements(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	unlocked, err := c.GamificationService.SyncAchievements(claims.RA)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"newBadges": unlocked})
}
