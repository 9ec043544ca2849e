package reports

import (
	"fieldtrack/internal/apperrors"
	projects_models "fieldtrack/internal/features/projects/models"
	projects_services "fieldtrack/internal/features/projects/services"
	"fieldtrack/internal/features/tasks"
	users_enums "fieldtrack/internal/features/users/enums"
	users_models "fieldtrack/internal/features/users/models"
	"fieldtrack/internal/features/worklogs"
	"fieldtrack/internal/policy"
	"fieldtrack/internal/util/validate"

	"github.com/google/uuid"
)

type ReportService struct {
	workLogService *worklogs.WorkLogService
	projectService *projects_services.ProjectService
	taskService    *tasks.TaskService
}

type ProjectReportDTO struct {
	Project  *projects_models.Project `json:"project"`
	Tasks    []*tasks.Task            `json:"tasks"`
	WorkLogs []*worklogs.WorkLog      `json:"work_logs"`
	Summary  ReportSummary            `json:"summary"`
}

type UserReportDTO struct {
	WorkLogs []*worklogs.WorkLog `json:"work_logs"`
	Summary  ReportSummary       `json:"summary"`
}

type CompanyReportDTO struct {
	Projects []*projects_models.Project `json:"projects"`
	Summary  ReportSummary              `json:"summary"`
}

// GetDashboardSummary aggregates every work log across the actor's
// company projects into the widened dashboard shape.
func (s *ReportService) GetDashboardSummary(actor *users_models.User) (*DashboardSummary, error) {
	workLogs, err := s.companyWorkLogs(actor)
	if err != nil {
		return nil, err
	}

	summary := SummarizeDashboard(workLogs)

	return &summary, nil
}

func (s *ReportService) GetProjectReport(projectID string) (*ProjectReportDTO, error) {
	parsedProjectID, err := validate.RequireUUID(projectID, "projectId")
	if err != nil {
		return nil, err
	}

	project, err := s.projectService.GetProjectByID(parsedProjectID)
	if err != nil {
		return nil, err
	}

	projectTasks, err := s.taskService.GetProjectTasks(projectID)
	if err != nil {
		return nil, err
	}

	workLogs, err := s.workLogService.GetProjectWorkLogs(parsedProjectID)
	if err != nil {
		return nil, err
	}

	return &ProjectReportDTO{
		Project:  project,
		Tasks:    projectTasks,
		WorkLogs: workLogs,
		Summary:  Summarize(workLogs),
	}, nil
}

// GetUserReport covers a single user's logs. Members may only view
// their own report; managers and admins may view anyone's.
func (s *ReportService) GetUserReport(userID string, actor *users_models.User) (*UserReportDTO, error) {
	parsedUserID, err := validate.RequireUUID(userID, "userId")
	if err != nil {
		return nil, err
	}

	if parsedUserID != actor.ID {
		if err := policy.Require(actor.Role, users_enums.UserRoleManager); err != nil {
			return nil, err
		}
	}

	workLogs, err := s.workLogService.GetUserWorkLogs(parsedUserID)
	if err != nil {
		return nil, err
	}

	return &UserReportDTO{
		WorkLogs: workLogs,
		Summary:  Summarize(workLogs),
	}, nil
}

func (s *ReportService) GetCompanyReport(actor *users_models.User) (*CompanyReportDTO, error) {
	projects, err := s.projectService.GetCompanyProjects(actor)
	if err != nil {
		return nil, err
	}

	workLogs, err := s.companyProjectWorkLogs(projects)
	if err != nil {
		return nil, err
	}

	return &CompanyReportDTO{
		Projects: projects,
		Summary:  Summarize(workLogs),
	}, nil
}

func (s *ReportService) companyWorkLogs(actor *users_models.User) ([]*worklogs.WorkLog, error) {
	if !actor.HasCompany() {
		return nil, apperrors.Validation("user does not belong to a company")
	}

	projects, err := s.projectService.GetCompanyProjects(actor)
	if err != nil {
		return nil, err
	}

	return s.companyProjectWorkLogs(projects)
}

func (s *ReportService) companyProjectWorkLogs(projects []*projects_models.Project) ([]*worklogs.WorkLog, error) {
	projectIDs := make([]uuid.UUID, 0, len(projects))
	for _, project := range projects {
		projectIDs = append(projectIDs, project.ID)
	}

	return s.workLogService.GetWorkLogsForProjects(projectIDs)
}
