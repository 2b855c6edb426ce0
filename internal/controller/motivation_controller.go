package controller

import (
	"strconv"

	"aluno_ai_backend/internal/service"
	"aluno_ai_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MotivationController struct {
	MotivationService *service.MotivationService
}

func NewMotivationController(motivationService *service.MotivationService) *MotivationController {
	return &MotivationController{MotivationService: motivationService}
}

// @Summary Current motivation quote
// @Description Returns the quote displayed on the dashboard, rotating every 12 hours
// @Tags motivation
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/motivation/current [get]
func (c *MotivationController) GetCurrent(ctx *gin.Context) {
	content, err := c.MotivationService.GetCurrentMotivation()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"content": content})
}

// @Summary List motivation quotes
// @Description Returns every quote, enabled or not (admin only)
// @Tags motivation
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/admin/motivations [get]
func (c *MotivationController) List(ctx *gin.Context) {
	motivations, err := c.MotivationService.GetAllMotivations()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, motivations)
}

// @Summary Create a motivation quote
// @Tags motivation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} util.Response
// @Router /api/admin/motivations [post]
func (c *MotivationController) Create(ctx *gin.Context) {
	var req struct {
		Content string `json:"content" binding:"required,min=1,max=500"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "content is required (max 500 characters)")
		return
	}

	if err := c.MotivationService.CreateMotivation(req.Content); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, nil)
}

// @Summary Update a motivation quote
// @Tags motivation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/admin/motivations/{id} [put]
func (c *MotivationController) Update(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid motivation id")
		return
	}

	var req struct {
		Content   string `json:"content" binding:"required,min=1,max=500"`
		IsEnabled *bool  `json:"isEnabled" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.MotivationService.UpdateMotivation(uint(id), req.Content, *req.IsEnabled); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, nil)
}

// @Summary Delete a motivation quote
// @Tags motivation
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/admin/motivations/{id} [delete]
func (c *MotivationController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid motivation id")
		return
	}

	if err := c.MotivationService.DeleteMotivation(uint(id)); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, nil)
}

// @Summary Switch the displayed quote
// @Description Forces a specific enabled quote to display now
// @Tags motivation
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/admin/motivations/{id}/switch [post]
func (c *MotivationController) Switch(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid motivation id")
		return
	}

	if err := c.MotivationService.SwitchToMotivation(uint(id)); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, nil)
}
