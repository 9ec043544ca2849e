package tasks

import (
	audit_logs "fieldtrack/internal/features/audit_logs"
)

var taskRepository = &TaskRepository{}

var taskService = &TaskService{
	taskRepository:  taskRepository,
	auditLogService: audit_logs.GetAuditLogService(),
}

var taskController = &TaskController{
	taskService: taskService,
}

func GetTaskService() *TaskService {
	return taskService
}

func GetTaskController() *TaskController {
	return taskController
}
