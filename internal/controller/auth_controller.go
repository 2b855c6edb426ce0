package controller

import (
	"errors"
	"net/http"

	"aluno_ai_backend/internal/model"
	"aluno_ai_backend/internal/service"
	"aluno_ai_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// @Summary Student login by RA
// @Description Authenticates a student by registration number against the loaded dataset
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object true "RA"
// @Success 200 {object} util.Response
// @Router /api/auth/student-login [post]
func (c *AuthController) StudentLogin(ctx *gin.Context) {
	var req struct {
		RA int `json:"ra" binding:"required,min=1"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "a valid student registration number is required")
		return
	}

	result, err := c.AuthService.StudentLogin(req.RA)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrStudentNotFound):
			util.Error(ctx, http.StatusNotFound, "Student ID not found. Check the number and try again.")
		case errors.Is(err, util.ErrDatasetNotLoaded):
			util.Error(ctx, http.StatusServiceUnavailable, "Assessment data is not loaded yet")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}

// @Summary Staff login
// @Description Authenticates a teacher or admin by email and password
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/auth/login [post]
func (c *AuthController) StaffLogin(ctx *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := c.AuthService.StaffLogin(req.Email, req.Password)
	if err != nil {
		util.Unauthorized(ctx)
		return
	}

	util.Success(ctx, gin.H{"token": token})
}

// @Summary Register a staff account
// @Description Creates a teacher or admin account (admin only)
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} util.Response
// @Router /api/admin/users [post]
func (c *AuthController) RegisterStaff(ctx *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required,min=2,max=100"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
		Role     string `json:"role" binding:"omitempty,oneof=teacher admin"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	role := model.RoleTeacher
	if req.Role == "admin" {
		role = model.RoleAdmin
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
	}
	if err := c.AuthService.RegisterStaff(user); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Created(ctx, gin.H{"id": user.ID})
}

// @Summary Current session
// @Description Returns the identity behind the presented token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if claims.Role == model.RoleStudent {
		util.Success(ctx, gin.H{
			"ra":   claims.RA,
			"name": claims.Name,
			"role": claims.Role,
		})
		return
	}

	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, user)
}
