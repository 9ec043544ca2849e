package projects_services

import (
	"fmt"

	"fieldtrack/internal/apperrors"
	audit_logs "fieldtrack/internal/features/audit_logs"
	projects_dto "fieldtrack/internal/features/projects/dto"
	projects_models "fieldtrack/internal/features/projects/models"
	projects_repositories "fieldtrack/internal/features/projects/repositories"
	users_enums "fieldtrack/internal/features/users/enums"
	users_models "fieldtrack/internal/features/users/models"
	"fieldtrack/internal/policy"
	"fieldtrack/internal/util/validate"
)

type MemberService struct {
	memberRepository *projects_repositories.MemberRepository
	projectService   *ProjectService
	auditLogService  *audit_logs.AuditLogService
}

func (s *MemberService) AddMember(
	projectID string,
	request *projects_dto.AddProjectMemberRequestDTO,
	addedBy *users_models.User,
) (*projects_models.ProjectMember, error) {
	if err := policy.Require(addedBy.Role, users_enums.UserRoleManager); err != nil {
		return nil, err
	}

	parsedProjectID, err := validate.RequireUUID(projectID, "projectId")
	if err != nil {
		return nil, err
	}

	rawUserID, err := validate.RequireString(request.UserID, "user_id")
	if err != nil {
		return nil, err
	}

	userID, err := validate.RequireUUID(rawUserID, "user_id")
	if err != nil {
		return nil, err
	}

	memberRole, err := validate.RequireString(request.MemberRole, "member_role")
	if err != nil {
		return nil, err
	}

	if _, err := s.projectService.GetProjectByID(parsedProjectID); err != nil {
		return nil, err
	}

	existing, err := s.memberRepository.GetMemberByUserAndProject(userID, parsedProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}

	if existing != nil {
		return nil, apperrors.Validation("user is already a member of this project")
	}

	member := &projects_models.ProjectMember{
		ProjectID:  parsedProjectID,
		UserID:     userID,
		MemberRole: memberRole,
	}

	if err := s.memberRepository.CreateMember(member); err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Member added to project as %s", member.MemberRole),
		&addedBy.ID,
		&parsedProjectID,
	)

	return member, nil
}

func (s *MemberService) GetMembers(
	projectID string,
) ([]*projects_models.ProjectMember, error) {
	parsedProjectID, err := validate.RequireUUID(projectID, "projectId")
	if err != nil {
		return nil, err
	}

	return s.memberRepository.GetProjectMembers(parsedProjectID)
}

func (s *MemberService) RemoveMember(
	projectID string,
	userID string,
	removedBy *users_models.User,
) error {
	if err := policy.Require(removedBy.Role, users_enums.UserRoleManager); err != nil {
		return err
	}

	parsedProjectID, err := validate.RequireUUID(projectID, "projectId")
	if err != nil {
		return err
	}

	parsedUserID, err := validate.RequireUUID(userID, "userId")
	if err != nil {
		return err
	}

	affected, err := s.memberRepository.RemoveMember(parsedUserID, parsedProjectID)
	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	if affected == 0 {
		return apperrors.NotFound("user is not a member of this project")
	}

	s.auditLogService.WriteAuditLog("Member removed from project", &removedBy.ID, &parsedProjectID)

	return nil
}
