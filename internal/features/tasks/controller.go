package tasks

import (
	"net/http"

	"fieldtrack/internal/apperrors"
	users_middleware "fieldtrack/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TaskController struct {
	taskService *TaskService
}

func (c *TaskController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/projects/:projectId/tasks", c.GetProjectTasks)
	router.POST("/projects/:projectId/tasks", c.CreateTask)

	taskRoutes := router.Group("/tasks")
	taskRoutes.GET("/:taskId", c.GetTask)
	taskRoutes.PATCH("/:taskId", c.UpdateTask)
	taskRoutes.POST("/:taskId/submit", c.SubmitTask)
	taskRoutes.POST("/:taskId/approve", c.ApproveTask)
	taskRoutes.DELETE("/:taskId", c.DeleteTask)
}

// CreateTask
// @Summary Create a task in a project
// @Tags tasks
// @Security BearerAuth
// @Router /projects/{projectId}/tasks [post]
func (c *TaskController) CreateTask(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user type in context"})
		return
	}

	request := &CreateTaskRequestDTO{}
	if err := ctx.ShouldBindJSON(request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	task, err := c.taskService.CreateTask(ctx.Param("projectId"), request, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, task)
}

// GetProjectTasks
// @Summary List tasks of a project
// @Tags tasks
// @Security BearerAuth
// @Router /projects/{projectId}/tasks [get]
func (c *TaskController) GetProjectTasks(ctx *gin.Context) {
	tasks, err := c.taskService.GetProjectTasks(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, tasks)
}

// GetTask
// @Summary Get a task by id
// @Tags tasks
// @Security BearerAuth
// @Router /tasks/{taskId} [get]
func (c *TaskController) GetTask(ctx *gin.Context) {
	taskID, err := uuid.Parse(ctx.Param("taskId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	task, err := c.taskService.GetTaskByID(taskID)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, task)
}

// UpdateTask
// @Summary Partially update a task
// @Tags tasks
// @Security BearerAuth
// @Router /tasks/{taskId} [patch]
func (c *TaskController) UpdateTask(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user type in context"})
		return
	}

	request := &UpdateTaskRequestDTO{}
	if err := ctx.ShouldBindJSON(request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	task, err := c.taskService.UpdateTask(ctx.Param("taskId"), request, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, task)
}

// SubmitTask
// @Summary Submit a task for approval
// @Tags tasks
// @Security BearerAuth
// @Router /tasks/{taskId}/submit [post]
func (c *TaskController) SubmitTask(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user type in context"})
		return
	}

	task, err := c.taskService.SubmitTask(ctx.Param("taskId"), user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, task)
}

// ApproveTask
// @Summary Approve a task
// @Tags tasks
// @Security BearerAuth
// @Router /tasks/{taskId}/approve [post]
func (c *TaskController) ApproveTask(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user type in context"})
		return
	}

	task, err := c.taskService.ApproveTask(ctx.Param("taskId"), user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, task)
}

// DeleteTask
// @Summary Delete a task
// @Tags tasks
// @Security BearerAuth
// @Router /tasks/{taskId} [delete]
func (c *TaskController) DeleteTask(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user type in context"})
		return
	}

	if err := c.taskService.DeleteTask(ctx.Param("taskId"), user); err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}
