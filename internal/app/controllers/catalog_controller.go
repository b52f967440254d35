package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ogulcan/coursepilot/internal/app/models/dto"
	"github.com/ogulcan/coursepilot/internal/app/services"
	"github.com/ogulcan/coursepilot/internal/middleware"
)

// CatalogController handles catalog browsing and refresh operations
type CatalogController struct {
	catalogService services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService services.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// GetCourse retrieves a course by id
// @Summary Get course details
// @Description Retrieves a course with its sections and normalized meeting times
// @Tags courses
// @Produce json
// @Param id path string true "Course id" example("198:111")
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Course retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 503 {object} dto.ErrorResponse "Catalog not loaded yet"
// @Router /courses/{id} [get]
func (c *CatalogController) GetCourse(ctx *gin.Context) {
	course, err := c.catalogService.GetCourse(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course))
}

// ListCourses lists the catalog
// @Summary List courses
// @Description Lists catalog courses, optionally filtered by subject code and core requirement tag
// @Tags courses
// @Produce json
// @Param subject query string false "Subject code" example("198")
// @Param core query string false "Core requirement tag" example("QR")
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse} "Courses retrieved successfully"
// @Failure 503 {object} dto.ErrorResponse "Catalog not loaded yet"
// @Router /courses [get]
func (c *CatalogController) ListCourses(ctx *gin.Context) {
	courses, err := c.catalogService.ListCourses(ctx, ctx.Query("subject"), ctx.Query("core"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses))
}

// EligibleCourses lists courses the described student may register for
// @Summary List eligible courses
// @Description Filters the catalog down to courses the student is eligible to take given standing and completed course history
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.EligibleCoursesRequest true "Eligibility filter"
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse} "Eligible courses"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 503 {object} dto.ErrorResponse "Catalog not loaded yet"
// @Router /courses/eligible [post]
func (c *CatalogController) EligibleCourses(ctx *gin.Context) {
	var req dto.EligibleCoursesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid eligibility request")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	courses, err := c.catalogService.EligibleCourses(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses))
}

// ListCoreTags lists core requirement tags
// @Summary List core requirement tags
// @Description Lists the core requirement tags present in the catalog with display names and course counts
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.CoreTagResponse} "Core tags"
// @Failure 503 {object} dto.ErrorResponse "Catalog not loaded yet"
// @Router /core-tags [get]
func (c *CatalogController) ListCoreTags(ctx *gin.Context) {
	tags, err := c.catalogService.ListCoreTags(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(tags))
}

// RefreshCatalog rebuilds the catalog from the configured source file
// @Summary Refresh the catalog
// @Description Reloads the catalog file, rebuilds indexes and swaps the new generation in atomically. In-flight requests keep the generation they started with.
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse "Catalog refreshed"
// @Failure 502 {object} dto.ErrorResponse "Catalog source invalid or unreadable"
// @Router /catalog/refresh [post]
func (c *CatalogController) RefreshCatalog(ctx *gin.Context) {
	size, err := c.catalogService.Refresh(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"courses": size}))
}

// Health reports service liveness
// @Summary Health check
// @Description Reports process liveness and whether a catalog generation is loaded
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service healthy"
// @Router /health [get]
func (c *CatalogController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.catalogService.Health())
}
