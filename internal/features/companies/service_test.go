package companies

import (
	"testing"

	"fieldtrack/internal/apperrors"
	users_enums "fieldtrack/internal/features/users/enums"
	users_services "fieldtrack/internal/features/users/services"
	users_testing "fieldtrack/internal/features/users/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(value string) *string { return &value }

func Test_CreateCompany_AttachesCreatorToCompany(t *testing.T) {
	creator := users_testing.CreateTestUser(users_enums.UserRoleAdmin)

	company, err := GetCompanyService().CreateCompany(&CreateCompanyRequestDTO{
		Name: strPtr("Northwind Construction"),
	}, creator)

	require.NoError(t, err)
	assert.Equal(t, "Northwind Construction", company.Name)

	updated, err := users_services.GetUserService().GetUserByID(creator.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.CompanyID)
	assert.Equal(t, company.ID, *updated.CompanyID)
}

func Test_CreateCompany_WhenCreatorHasCompany_ReturnsValidationError(t *testing.T) {
	companyID := uuid.New()
	creator := users_testing.CreateTestUserInCompany(users_enums.UserRoleAdmin, &companyID)

	_, err := GetCompanyService().CreateCompany(&CreateCompanyRequestDTO{
		Name: strPtr("Second Company"),
	}, creator)

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func Test_CreateCompany_WithoutName_ReturnsValidationError(t *testing.T) {
	creator := users_testing.CreateTestUser(users_enums.UserRoleAdmin)

	_, err := GetCompanyService().CreateCompany(&CreateCompanyRequestDTO{}, creator)

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func Test_GetCompanyByID_Unknown_ReturnsNotFound(t *testing.T) {
	_, err := GetCompanyService().GetCompanyByID(uuid.New())

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func Test_GetOwnCompany_WithoutCompany_ReturnsNotFound(t *testing.T) {
	user := users_testing.CreateTestUser(users_enums.UserRoleMember)

	_, err := GetCompanyService().GetOwnCompany(user)

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}
