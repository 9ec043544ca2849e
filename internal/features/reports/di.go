package reports

import (
	projects_services "fieldtrack/internal/features/projects/services"
	"fieldtrack/internal/features/tasks"
	"fieldtrack/internal/features/worklogs"
)

var reportService = &ReportService{
	workLogService: worklogs.GetWorkLogService(),
	projectService: projects_services.GetProjectService(),
	taskService:    tasks.GetTaskService(),
}

var reportController = &ReportController{
	reportService: reportService,
}

func GetReportService() *ReportService {
	return reportService
}

func GetReportController() *ReportController {
	return reportController
}
