package controller

import (
	"errors"
	"net/http"
	"strconv"

	"aluno_ai_backend/internal/service"
	"aluno_ai_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StudyPlanController struct {
	StudyPlanService *service.StudyPlanService
}

func NewStudyPlanController(studyPlanService *service.StudyPlanService) *StudyPlanController {
	return &StudyPlanController{StudyPlanService: studyPlanService}
}

// @Summary Study plan overview
// @Description Returns the plan state, checkpoint milestones and study focus contents
// @Tags study-plan
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/study-plan [get]
func (c *StudyPlanController) GetOverview(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	overview, err := c.StudyPlanService.Overview(claims.RA)
	if err != nil {
		util.Error(ctx, http.StatusNotFound, err.Error())
		return
	}

	util.Success(ctx, overview)
}

// @Summary Create the study plan
// @Description Generates the student's 6-month study plan
// @Tags study-plan
// @Produce json
// @Security BearerAuth
// @Success 201 {object} util.Response
// @Router /api/study-plan [post]
func (c *StudyPlanController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	if err := c.StudyPlanService.Create(claims.RA); err != nil {
		if errors.Is(err, util.ErrPlanAlreadyExists) {
			util.Error(ctx, http.StatusConflict, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"status": "created"})
}

// @Summary Complete a checkpoint
// @Description Marks a milestone week done, awarding goal points the first time
// @Tags study-plan
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/study-plan/checkpoints/{week} [post]
func (c *StudyPlanController) CompleteCheckpoint(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	week, err := strconv.Atoi(ctx.Param("week"))
	if err != nil {
		util.BadRequest(ctx, "week must be an integer")
		return
	}

	first, err := c.StudyPlanService.CompleteCheckpoint(claims.RA, week)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUnknownCheckpoint):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrPlanNotCreated):
			util.Error(ctx, http.StatusConflict, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"firstCompletion": first})
}
