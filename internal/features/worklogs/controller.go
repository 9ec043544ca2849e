package worklogs

import (
	"net/http"

	"fieldtrack/internal/apperrors"
	users_middleware "fieldtrack/internal/features/users/middleware"
	users_models "fieldtrack/internal/features/users/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WorkLogController struct {
	workLogService *WorkLogService
}

func (c *WorkLogController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/tasks/:taskId/worklogs", c.GetTaskWorkLogs)

	workLogRoutes := router.Group("/worklogs")
	workLogRoutes.POST("", c.CreateWorkLog)
	workLogRoutes.GET("/pending", c.GetPendingWorkLogs)
	workLogRoutes.GET("/:workLogId", c.GetWorkLog)
	workLogRoutes.PATCH("/:workLogId", c.UpdateWorkLog)
	workLogRoutes.DELETE("/:workLogId", c.DeleteWorkLog)
	workLogRoutes.POST("/:workLogId/approve", c.ApproveWorkLog)
	workLogRoutes.POST("/:workLogId/reject", c.RejectWorkLog)
	workLogRoutes.GET("/:workLogId/approval", c.GetApproval)
}

// CreateWorkLog
// @Summary Record work against a task
// @Tags worklogs
// @Security BearerAuth
// @Router /worklogs [post]
func (c *WorkLogController) CreateWorkLog(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user type in context"})
		return
	}

	request := &CreateWorkLogRequestDTO{}
	if err := ctx.ShouldBindJSON(request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	workLog, err := c.workLogService.CreateWorkLog(request, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, workLog)
}

// GetTaskWorkLogs
// @Summary List work logs of a task
// @Tags worklogs
// @Security BearerAuth
// @Router /tasks/{taskId}/worklogs [get]
func (c *WorkLogController) GetTaskWorkLogs(ctx *gin.Context) {
	workLogs, err := c.workLogService.GetTaskWorkLogs(ctx.Param("taskId"))
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, workLogs)
}

// GetPendingWorkLogs
// @Summary List all pending work logs awaiting a decision
// @Tags worklogs
// @Security BearerAuth
// @Router /worklogs/pending [get]
func (c *WorkLogController) GetPendingWorkLogs(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user type in context"})
		return
	}

	workLogs, err := c.workLogService.GetPendingWorkLogs(user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, workLogs)
}

// GetWorkLog
// @Summary Get a work log by id
// @Tags worklogs
// @Security BearerAuth
// @Router /worklogs/{workLogId} [get]
func (c *WorkLogController) GetWorkLog(ctx *gin.Context) {
	workLogID, err := uuid.Parse(ctx.Param("workLogId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid work log ID"})
		return
	}

	workLog, err := c.workLogService.GetWorkLogByID(workLogID)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, workLog)
}

// UpdateWorkLog
// @Summary Update a pending work log
// @Tags worklogs
// @Security BearerAuth
// @Router /worklogs/{workLogId} [patch]
func (c *WorkLogController) UpdateWorkLog(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user type in context"})
		return
	}

	request := &UpdateWorkLogRequestDTO{}
	if err := ctx.ShouldBindJSON(request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	workLog, err := c.workLogService.UpdateWorkLog(ctx.Param("workLogId"), request, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, workLog)
}

// DeleteWorkLog
// @Summary Delete a pending work log
// @Tags worklogs
// @Security BearerAuth
// @Router /worklogs/{workLogId} [delete]
func (c *WorkLogController) DeleteWorkLog(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user type in context"})
		return
	}

	if err := c.workLogService.DeleteWorkLog(ctx.Param("workLogId"), user); err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Work log deleted"})
}

// ApproveWorkLog
// @Summary Approve a pending work log
// @Tags worklogs
// @Security BearerAuth
// @Router /worklogs/{workLogId}/approve [post]
func (c *WorkLogController) ApproveWorkLog(ctx *gin.Context) {
	c.resolveWorkLog(ctx, c.workLogService.ApproveWorkLog)
}

// RejectWorkLog
// @Summary Reject a pending work log with a mandatory note
// @Tags worklogs
// @Security BearerAuth
// @Router /worklogs/{workLogId}/reject [post]
func (c *WorkLogController) RejectWorkLog(ctx *gin.Context) {
	c.resolveWorkLog(ctx, c.workLogService.RejectWorkLog)
}

func (c *WorkLogController) resolveWorkLog(
	ctx *gin.Context,
	resolve func(string, *ResolveWorkLogRequestDTO, *users_models.User) (*Approval, error),
) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user type in context"})
		return
	}

	request := &ResolveWorkLogRequestDTO{}
	if err := ctx.ShouldBindJSON(request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	approval, err := resolve(ctx.Param("workLogId"), request, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, approval)
}

// GetApproval
// @Summary Get the approval record of a resolved work log
// @Tags worklogs
// @Security BearerAuth
// @Router /worklogs/{workLogId}/approval [get]
func (c *WorkLogController) GetApproval(ctx *gin.Context) {
	approval, err := c.workLogService.GetApproval(ctx.Param("workLogId"))
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, approval)
}
