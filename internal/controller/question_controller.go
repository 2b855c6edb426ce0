package controller

import (
	"errors"
	"net/http"
	"strconv"

	"aluno_ai_backend/internal/gamification"
	"aluno_ai_backend/internal/service"
	"aluno_ai_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	StudentService      *service.StudentService
	ProfessorService    *service.ProfessorService
	GamificationService *service.GamificationService
}

func NewQuestionController(studentService *service.StudentService, professorService *service.ProfessorService, gamificationService *service.GamificationService) *QuestionController {
	return &QuestionController{
		StudentService:      studentService,
		ProfessorService:    professorService,
		GamificationService: gamificationService,
	}
}

func questionNumberParam(ctx *gin.Context) (int, bool) {
	n, err := strconv.Atoi(ctx.Param("number"))
	if err != nil || n < 1 {
		util.BadRequest(ctx, "question number must be a positive integer")
		return 0, false
	}
	return n, true
}

// @Summary Questions to review
// @Description Lists the student's wrongly answered questions per subject
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/questions [get]
func (c *QuestionController) ListReviews(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	summary, err := c.StudentService.Summary(claims.RA)
	if err != nil {
		util.Error(ctx, http.StatusNotFound, err.Error())
		return
	}

	util.Success(ctx, gin.H{
		"portuguese":  summary.PortugueseErrors,
		"mathematics": summary.MathematicsErrors,
	})
}

// @Summary Mark a question as reviewed
// @Description Records that the student reviewed a question and awards points
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/questions/{number}/review [post]
func (c *QuestionController) ReviewQuestion(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	number, ok := questionNumberParam(ctx)
	if !ok {
		return
	}

	var req struct {
		SubjectCode string `json:"subjectCode" binding:"required,oneof=PORT MAT"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "subjectCode must be PORT or MAT")
		return
	}

	if _, err := c.StudentService.Question(claims.RA, req.SubjectCode, number); err != nil {
		util.Error(ctx, http.StatusNotFound, err.Error())
		return
	}

	points, err := c.GamificationService.RecordAction(claims.RA, gamification.ActionQuestionReview)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"points": points})
}

// @Summary Ask the AI professor
// @Description Answers a question about one assessment question, grounded on its commented-answer document
// @Tags professor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/questions/{number}/professor [post]
func (c *QuestionController) AskProfessor(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	number, ok := questionNumberParam(ctx)
	if !ok {
		return
	}

	var req struct {
		SubjectCode string `json:"subjectCode" binding:"required,oneof=PORT MAT"`
		Question    string `json:"question" binding:"required,min=1,max=2000"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	sessionID := util.SessionIDFromContext(ctx)
	answer, err := c.ProfessorService.Ask(ctx.Request.Context(), claims.RA, sessionID, req.SubjectCode, number, req.Question)
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) || errors.Is(err, util.ErrStudentNotFound) {
			util.Error(ctx, http.StatusNotFound, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"answer": answer})
}

// @Summary Professor conversation for a question
// @Description Returns this session's professor exchanges about one question
// @Tags professor
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/questions/{number}/professor [get]
func (c *QuestionController) ProfessorHistory(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	number, ok := questionNumberParam(ctx)
	if !ok {
		return
	}

	turns, err := c.ProfessorService.History(claims.RA, util.SessionIDFromContext(ctx), number)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, turns)
}

// @Summary Professor conversation for the session
// @Description Returns the current session's professor exchanges, paginated, across questions
// @Tags professor
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} util.Response
// @Router /api/professor/history [get]
func (c *QuestionController) ProfessorSessionHistory(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	turns, total, err := c.ProfessorService.SessionHistory(claims.RA, util.SessionIDFromContext(ctx), page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  turns,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}
