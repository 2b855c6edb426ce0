package controller

import (
	"errors"
	"net/http"

	"aluno_ai_backend/internal/service"
	"aluno_ai_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// @Summary Student dashboard
// @Description Returns the full dashboard payload: summary, progression widget, charts and the motivation quote
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	dashboard, err := c.DashboardService.Build(claims.RA)
	if err != nil {
		if errors.Is(err, util.ErrStudentNotFound) || errors.Is(err, util.ErrDatasetNotLoaded) {
			util.Error(ctx, http.StatusNotFound, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, dashboard)
}
