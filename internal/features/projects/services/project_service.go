package projects_services

import (
	"fmt"
	"time"

	"fieldtrack/internal/apperrors"
	audit_logs "fieldtrack/internal/features/audit_logs"
	projects_dto "fieldtrack/internal/features/projects/dto"
	projects_enums "fieldtrack/internal/features/projects/enums"
	projects_models "fieldtrack/internal/features/projects/models"
	projects_repositories "fieldtrack/internal/features/projects/repositories"
	users_enums "fieldtrack/internal/features/users/enums"
	users_models "fieldtrack/internal/features/users/models"
	"fieldtrack/internal/policy"
	"fieldtrack/internal/util/validate"

	"github.com/google/uuid"
)

type ProjectService struct {
	projectRepository *projects_repositories.ProjectRepository
	auditLogService   *audit_logs.AuditLogService
}

func (s *ProjectService) CreateProject(
	request *projects_dto.CreateProjectRequestDTO,
	creator *users_models.User,
) (*projects_models.Project, error) {
	if err := policy.Require(creator.Role, users_enums.UserRoleManager); err != nil {
		return nil, err
	}

	name, err := validate.RequireString(request.Name, "name")
	if err != nil {
		return nil, err
	}

	status, err := validate.RequireEnum(request.Status, projects_enums.ProjectStatuses, "status")
	if err != nil {
		return nil, err
	}

	startDate, err := validate.OptionalDate(request.StartDate, "start_date")
	if err != nil {
		return nil, err
	}

	endDate, err := validate.OptionalDate(request.EndDate, "end_date")
	if err != nil {
		return nil, err
	}

	if !creator.HasCompany() {
		return nil, apperrors.Validation("user is not assigned to a company")
	}

	project := &projects_models.Project{
		ID:        uuid.New(),
		CompanyID: *creator.CompanyID,
		Name:      name,
		Status:    status,
		StartDate: startDate,
		EndDate:   endDate,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.projectRepository.CreateProject(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Project created: %s", project.Name),
		&creator.ID,
		&project.ID,
	)

	return project, nil
}

func (s *ProjectService) UpdateProject(
	projectID uuid.UUID,
	request *projects_dto.UpdateProjectRequestDTO,
	actor *users_models.User,
) (*projects_models.Project, error) {
	if err := policy.Require(actor.Role, users_enums.UserRoleManager); err != nil {
		return nil, err
	}

	updates := map[string]any{}

	name, err := validate.OptionalString(request.Name, "name")
	if err != nil {
		return nil, err
	}
	if name != nil {
		updates["name"] = *name
	}

	status, err := validate.OptionalEnum(request.Status, projects_enums.ProjectStatuses, "status")
	if err != nil {
		return nil, err
	}
	if status != nil {
		updates["status"] = *status
	}

	startDate, err := validate.OptionalDate(request.StartDate, "start_date")
	if err != nil {
		return nil, err
	}
	if startDate != nil {
		updates["start_date"] = *startDate
	}

	endDate, err := validate.OptionalDate(request.EndDate, "end_date")
	if err != nil {
		return nil, err
	}
	if endDate != nil {
		updates["end_date"] = *endDate
	}

	if len(updates) == 0 {
		return nil, apperrors.Validation("no fields to update")
	}

	affected, err := s.projectRepository.UpdateProject(projectID, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	if affected == 0 {
		return nil, apperrors.NotFound("project not found")
	}

	return s.GetProjectByID(projectID)
}

func (s *ProjectService) DeleteProject(projectID uuid.UUID, actor *users_models.User) error {
	if err := policy.Require(actor.Role, users_enums.UserRoleAdmin); err != nil {
		return err
	}

	affected, err := s.projectRepository.DeleteProject(projectID)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	if affected == 0 {
		return apperrors.NotFound("project not found")
	}

	s.auditLogService.WriteAuditLog("Project deleted", &actor.ID, &projectID)

	return nil
}

func (s *ProjectService) GetProjectByID(projectID uuid.UUID) (*projects_models.Project, error) {
	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if project == nil {
		return nil, apperrors.NotFound("project not found")
	}

	return project, nil
}

func (s *ProjectService) GetCompanyProjects(actor *users_models.User) ([]*projects_models.Project, error) {
	if !actor.HasCompany() {
		return []*projects_models.Project{}, nil
	}

	return s.projectRepository.GetProjectsByCompany(*actor.CompanyID)
}
