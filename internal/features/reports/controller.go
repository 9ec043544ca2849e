package reports

import (
	"net/http"

	"fieldtrack/internal/apperrors"
	users_middleware "fieldtrack/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	reportService *ReportService
}

func (c *ReportController) RegisterRoutes(router *gin.RouterGroup) {
	reportRoutes := router.Group("/reports")

	reportRoutes.GET("/dashboard", c.GetDashboardSummary)
	reportRoutes.GET("/projects/:projectId", c.GetProjectReport)
	reportRoutes.GET("/users/:userId", c.GetUserReport)
	reportRoutes.GET("/company", c.GetCompanyReport)
}

// GetDashboardSummary
// @Summary Company-wide work log totals for the dashboard
// @Tags reports
// @Security BearerAuth
// @Router /reports/dashboard [get]
func (c *ReportController) GetDashboardSummary(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user type in context"})
		return
	}

	summary, err := c.reportService.GetDashboardSummary(user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, summary)
}

// GetProjectReport
// @Summary Project report with tasks, work logs and summary
// @Tags reports
// @Security BearerAuth
// @Router /reports/projects/{projectId} [get]
func (c *ReportController) GetProjectReport(ctx *gin.Context) {
	report, err := c.reportService.GetProjectReport(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, report)
}

// GetUserReport
// @Summary Work log report for a single user
// @Tags reports
// @Security BearerAuth
// @Router /reports/users/{userId} [get]
func (c *ReportController) GetUserReport(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user type in context"})
		return
	}

	report, err := c.reportService.GetUserReport(ctx.Param("userId"), user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, report)
}

// GetCompanyReport
// @Summary Company report across all projects
// @Tags reports
// @Security BearerAuth
// @Router /reports/company [get]
func (c *ReportController) GetCompanyReport(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user type in context"})
		return
	}

	report, err := c.reportService.GetCompanyReport(user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, report)
}
