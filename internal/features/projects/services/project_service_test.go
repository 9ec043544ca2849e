package projects_services

import (
	"testing"

	"fieldtrack/internal/apperrors"
	projects_dto "fieldtrack/internal/features/projects/dto"
	projects_enums "fieldtrack/internal/features/projects/enums"
	projects_models "fieldtrack/internal/features/projects/models"
	users_enums "fieldtrack/internal/features/users/enums"
	users_models "fieldtrack/internal/features/users/models"
	users_testing "fieldtrack/internal/features/users/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(value string) *string { return &value }

func createCompanyManager(t *testing.T) *users_models.User {
	t.Helper()

	companyID := uuid.New()
	return users_testing.CreateTestUserInCompany(users_enums.UserRoleManager, &companyID)
}

func createTestProject(t *testing.T, creator *users_models.User) *projects_models.Project {
	t.Helper()

	project, err := GetProjectService().CreateProject(&projects_dto.CreateProjectRequestDTO{
		Name:   strPtr("Riverside Plant"),
		Status: strPtr(string(projects_enums.ProjectStatusActive)),
	}, creator)
	require.NoError(t, err)

	return project
}

func Test_CreateProject_ByMember_ReturnsPermissionDenied(t *testing.T) {
	companyID := uuid.New()
	member := users_testing.CreateTestUserInCompany(users_enums.UserRoleMember, &companyID)

	_, err := GetProjectService().CreateProject(&projects_dto.CreateProjectRequestDTO{
		Name:   strPtr("Riverside Plant"),
		Status: strPtr(string(projects_enums.ProjectStatusActive)),
	}, member)

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindPermissionDenied))
}

func Test_CreateProject_WithoutCompany_ReturnsValidationError(t *testing.T) {
	manager := users_testing.CreateTestUser(users_enums.UserRoleManager)

	_, err := GetProjectService().CreateProject(&projects_dto.CreateProjectRequestDTO{
		Name:   strPtr("Riverside Plant"),
		Status: strPtr(string(projects_enums.ProjectStatusActive)),
	}, manager)

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func Test_CreateProject_ByManager_SucceedsWithinOwnCompany(t *testing.T) {
	manager := createCompanyManager(t)

	project := createTestProject(t, manager)

	assert.Equal(t, *manager.CompanyID, project.CompanyID)
	assert.Equal(t, projects_enums.ProjectStatusActive, project.Status)
}

func Test_UpdateProject_AppliesPartialChanges(t *testing.T) {
	manager := createCompanyManager(t)
	project := createTestProject(t, manager)

	updated, err := GetProjectService().UpdateProject(project.ID, &projects_dto.UpdateProjectRequestDTO{
		Status: strPtr(string(projects_enums.ProjectStatusCompleted)),
	}, manager)

	require.NoError(t, err)
	assert.Equal(t, projects_enums.ProjectStatusCompleted, updated.Status)
	assert.Equal(t, project.Name, updated.Name)
}

func Test_UpdateProject_WithoutFields_ReturnsValidationError(t *testing.T) {
	manager := createCompanyManager(t)
	project := createTestProject(t, manager)

	_, err := GetProjectService().UpdateProject(project.ID, &projects_dto.UpdateProjectRequestDTO{}, manager)

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func Test_UpdateProject_WithUnknownID_ReturnsNotFound(t *testing.T) {
	manager := createCompanyManager(t)

	_, err := GetProjectService().UpdateProject(uuid.New(), &projects_dto.UpdateProjectRequestDTO{
		Name: strPtr("Renamed"),
	}, manager)

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func Test_DeleteProject_ByManager_ReturnsPermissionDenied(t *testing.T) {
	manager := createCompanyManager(t)
	project := createTestProject(t, manager)

	err := GetProjectService().DeleteProject(project.ID, manager)

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindPermissionDenied))
}

func Test_DeleteProject_ByAdmin_RemovesProject(t *testing.T) {
	manager := createCompanyManager(t)
	admin := users_testing.CreateTestUserInCompany(users_enums.UserRoleAdmin, manager.CompanyID)
	project := createTestProject(t, manager)

	err := GetProjectService().DeleteProject(project.ID, admin)
	require.NoError(t, err)

	_, err = GetProjectService().GetProjectByID(project.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func Test_AddMember_ThenDuplicate_ReturnsValidationError(t *testing.T) {
	manager := createCompanyManager(t)
	project := createTestProject(t, manager)
	worker := users_testing.CreateTestUserInCompany(users_enums.UserRoleMember, manager.CompanyID)

	request := &projects_dto.AddProjectMemberRequestDTO{
		UserID:     strPtr(worker.ID.String()),
		MemberRole: strPtr("foreman"),
	}

	member, err := GetMemberService().AddMember(project.ID.String(), request, manager)
	require.NoError(t, err)
	assert.Equal(t, "foreman", member.MemberRole)

	_, err = GetMemberService().AddMember(project.ID.String(), request, manager)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func Test_AddMember_ByMember_ReturnsPermissionDenied(t *testing.T) {
	manager := createCompanyManager(t)
	project := createTestProject(t, manager)
	worker := users_testing.CreateTestUserInCompany(users_enums.UserRoleMember, manager.CompanyID)

	_, err := GetMemberService().AddMember(project.ID.String(), &projects_dto.AddProjectMemberRequestDTO{
		UserID:     strPtr(worker.ID.String()),
		MemberRole: strPtr("foreman"),
	}, worker)

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindPermissionDenied))
}

func Test_RemoveMember_WhenNotMember_ReturnsNotFound(t *testing.T) {
	manager := createCompanyManager(t)
	project := createTestProject(t, manager)

	err := GetMemberService().RemoveMember(project.ID.String(), uuid.New().String(), manager)

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func Test_RemoveMember_RemovesExistingMembership(t *testing.T) {
	manager := createCompanyManager(t)
	project := createTestProject(t, manager)
	worker := users_testing.CreateTestUserInCompany(users_enums.UserRoleMember, manager.CompanyID)

	_, err := GetMemberService().AddMember(project.ID.String(), &projects_dto.AddProjectMemberRequestDTO{
		UserID:     strPtr(worker.ID.String()),
		MemberRole: strPtr("operator"),
	}, manager)
	require.NoError(t, err)

	err = GetMemberService().RemoveMember(project.ID.String(), worker.ID.String(), manager)
	require.NoError(t, err)

	members, err := GetMemberService().GetMembers(project.ID.String())
	require.NoError(t, err)
	for _, m := range members {
		assert.NotEqual(t, worker.ID, m.UserID)
	}
}
