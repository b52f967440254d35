package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ogulcan/coursepilot/internal/app/models/dto"
	"github.com/ogulcan/coursepilot/internal/app/services"
	"github.com/ogulcan/coursepilot/internal/middleware"
)

// ScheduleController handles schedule assembly operations
type ScheduleController struct {
	scheduleService services.ScheduleService
}

// NewScheduleController creates a new ScheduleController
func NewScheduleController(scheduleService services.ScheduleService) *ScheduleController {
	return &ScheduleController{
		scheduleService: scheduleService,
	}
}

// AssembleSchedule builds a conflict-free weekly schedule
// @Summary Assemble a schedule
// @Description Builds a conflict-free weekly schedule from the requested courses, honoring standing, prerequisites and preferences. Courses that cannot be placed are reported with a reason instead of failing the request.
// @Tags schedules
// @Accept json
// @Produce json
// @Param request body dto.AssembleScheduleRequest true "Assembly request"
// @Success 200 {object} dto.APIResponse{data=dto.ScheduleResponse} "Assembled schedule"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 503 {object} dto.ErrorResponse "Catalog not loaded yet"
// @Router /schedules [post]
func (c *ScheduleController) AssembleSchedule(ctx *gin.Context) {
	var req dto.AssembleScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid schedule request")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	schedule, err := c.scheduleService.AssembleSchedule(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(schedule))
}
