package controller

import (
	"net/http"

	"aluno_ai_backend/internal/service"
	"aluno_ai_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TutorController struct {
	TutorService *service.TutorService
}

func NewTutorController(tutorService *service.TutorService) *TutorController {
	return &TutorController{TutorService: tutorService}
}

// @Summary Tutor conversation history
// @Description Returns this session's LU conversation, opening it with the greeting on first access
// @Tags tutor
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/tutor/history [get]
func (c *TutorController) History(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	messages, err := c.TutorService.History(claims.RA, util.SessionIDFromContext(ctx))
	if err != nil {
		util.Error(ctx, http.StatusNotFound, err.Error())
		return
	}

	util.Success(ctx, messages)
}

// @Summary Chat with the LU tutor
// @Description Sends one message to LU and returns the full reply
// @Tags tutor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/tutor/chat [post]
func (c *TutorController) Chat(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req struct {
		Message string `json:"message" binding:"required,min=1,max=2000"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "message is required")
		return
	}

	answer, err := c.TutorService.Chat(ctx.Request.Context(), claims.RA, util.SessionIDFromContext(ctx), req.Message)
	if err != nil {
		util.Error(ctx, http.StatusNotFound, err.Error())
		return
	}

	util.Success(ctx, gin.H{"answer": answer})
}

// @Summary Chat with the LU tutor over SSE
// @Description Streams LU's reply as server-sent events. EventSource clients pass the JWT as a token query parameter.
// @Tags tutor
// @Produce text/event-stream
// @Security BearerAuth
// @Param message query string true "Student message"
// @Router /api/tutor/stream [get]
func (c *TutorController) ChatStream(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	message := ctx.Query("message")
	if message == "" {
		util.BadRequest(ctx, "message is required")
		return
	}

	stream, errChan, err := c.TutorService.ChatStream(ctx.Request.Context(), claims.RA, util.SessionIDFromContext(ctx), message)
	if err != nil {
		util.Error(ctx, http.StatusNotFound, err.Error())
		return
	}

	ctx.Header("Content-Type", "text/event-stream")
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")
	ctx.Header("Transfer-Encoding", "chunked")

	for chunk := range stream {
		ctx.SSEvent("message", chunk)
		ctx.Writer.Flush()
	}
	if err := <-errChan; err != nil {
		ctx.SSEvent("error", err.Error())
		ctx.Writer.Flush()
		return
	}

	ctx.SSEvent("end", "done")
	ctx.Writer.Flush()
}
