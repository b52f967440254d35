package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ogulcan/coursepilot/internal/app/models/dto"
	"github.com/ogulcan/coursepilot/internal/app/services"
	"github.com/ogulcan/coursepilot/internal/middleware"
)

// SessionController handles planning-session history operations
type SessionController struct {
	sessionService services.SessionService
}

// NewSessionController creates a new SessionController
func NewSessionController(sessionService services.SessionService) *SessionController {
	return &SessionController{
		sessionService: sessionService,
	}
}

// StartSession creates a new planning session
// @Summary Start a session
// @Description Creates a new planning session with an empty course history and returns its id
// @Tags sessions
// @Produce json
// @Success 201 {object} dto.APIResponse{data=dto.SessionHistoryResponse} "Session created"
// @Router /sessions [post]
func (c *SessionController) StartSession(ctx *gin.Context) {
	session, err := c.sessionService.StartSession(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(session))
}

// GetHistory retrieves a session's course history
// @Summary Get session history
// @Description Returns the ordered list of completed course ids stored on the session
// @Tags sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} dto.APIResponse{data=dto.SessionHistoryResponse} "Session history"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id}/history [get]
func (c *SessionController) GetHistory(ctx *gin.Context) {
	history, err := c.sessionService.GetHistory(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(history))
}

// ReplaceHistory overwrites a session's course history
// @Summary Replace session history
// @Description Replaces the session's entire course history with the provided list
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param request body dto.SessionHistoryRequest true "Course ids"
// @Success 200 {object} dto.APIResponse{data=dto.SessionHistoryResponse} "Updated history"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /sessions/{id}/history [put]
func (c *SessionController) ReplaceHistory(ctx *gin.Context) {
	var req dto.SessionHistoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid session history request")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	history, err := c.sessionService.ReplaceHistory(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(history))
}

// AppendHistory appends courses to a session's history
// @Summary Append to session history
// @Description Appends course ids to the session's history, skipping ids already present
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param request body dto.SessionHistoryRequest true "Course ids"
// @Success 200 {object} dto.APIResponse{data=dto.SessionHistoryResponse} "Updated history"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /sessions/{id}/history [post]
func (c *SessionController) AppendHistory(ctx *gin.Context) {
	var req dto.SessionHistoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid session history request")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	history, err := c.sessionService.AppendHistory(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(history))
}
