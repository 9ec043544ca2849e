package worklogs

import (
	audit_logs "fieldtrack/internal/features/audit_logs"
	"fieldtrack/internal/features/tasks"
)

var workLogRepository = &WorkLogRepository{}

var workLogService = &WorkLogService{
	workLogRepository: workLogRepository,
	taskService:       tasks.GetTaskService(),
	auditLogService:   audit_logs.GetAuditLogService(),
}

var workLogController = &WorkLogController{
	workLogService: workLogService,
}

func GetWorkLogService() *WorkLogService {
	return workLogService
}

func GetWorkLogController() *WorkLogController {
	return workLogController
}
