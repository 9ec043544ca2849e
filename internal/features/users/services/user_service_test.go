package users_services

import (
	"fmt"
	"testing"
	"time"

	"fieldtrack/internal/apperrors"
	users_dto "fieldtrack/internal/features/users/dto"
	users_enums "fieldtrack/internal/features/users/enums"
	users_models "fieldtrack/internal/features/users/models"
	users_repositories "fieldtrack/internal/features/users/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniqueEmail() string {
	return fmt.Sprintf("user-%s@test.com", uuid.New().String()[:8])
}

func createUserWithRole(t *testing.T, role users_enums.UserRole) *users_models.User {
	t.Helper()

	hashedPassword := "$2a$10$test"
	user := &users_models.User{
		ID:             uuid.New(),
		Email:          uniqueEmail(),
		HashedPassword: &hashedPassword,
		Role:           role,
		Status:         users_enums.UserStatusActive,
		CreatedAt:      time.Now().UTC(),
	}

	repository := &users_repositories.UserRepository{}
	require.NoError(t, repository.CreateUser(user))

	return user
}

func Test_SignUp_CreatesMemberAccount(t *testing.T) {
	email := uniqueEmail()

	err := GetUserService().SignUp(&users_dto.SignUpRequestDTO{
		Email:    email,
		Password: "strong-password-1",
	})
	require.NoError(t, err)

	user, err := GetUserService().GetUserByEmail(email)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, users_enums.UserRoleMember, user.Role)
	assert.Equal(t, users_enums.UserStatusActive, user.Status)
	assert.Nil(t, user.CompanyID)
}

func Test_SignUp_DuplicateEmail_ReturnsValidationError(t *testing.T) {
	email := uniqueEmail()

	require.NoError(t, GetUserService().SignUp(&users_dto.SignUpRequestDTO{
		Email:    email,
		Password: "strong-password-1",
	}))

	err := GetUserService().SignUp(&users_dto.SignUpRequestDTO{
		Email:    email,
		Password: "another-password-2",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func Test_SignIn_WithCorrectPassword_ReturnsToken(t *testing.T) {
	email := uniqueEmail()

	require.NoError(t, GetUserService().SignUp(&users_dto.SignUpRequestDTO{
		Email:    email,
		Password: "strong-password-1",
	}))

	response, err := GetUserService().SignIn(&users_dto.SignInRequestDTO{
		Email:    email,
		Password: "strong-password-1",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, response.Token)
	assert.Equal(t, users_enums.UserRoleMember, response.Role)
	assert.Equal(t, email, response.Email)
}

func Test_SignIn_WithWrongPassword_Fails(t *testing.T) {
	email := uniqueEmail()

	require.NoError(t, GetUserService().SignUp(&users_dto.SignUpRequestDTO{
		Email:    email,
		Password: "strong-password-1",
	}))

	_, err := GetUserService().SignIn(&users_dto.SignInRequestDTO{
		Email:    email,
		Password: "wrong-password",
	})

	assert.Error(t, err)
}

func Test_GetUserFromToken_RoundTripsAuthenticatedUser(t *testing.T) {
	user := createUserWithRole(t, users_enums.UserRoleManager)

	signIn, err := GetUserService().GenerateAccessToken(user)
	require.NoError(t, err)

	resolved, err := GetUserService().GetUserFromToken(signIn.Token)

	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
	assert.Equal(t, users_enums.UserRoleManager, resolved.Role)
}

func Test_GetUserFromToken_WithGarbageToken_Fails(t *testing.T) {
	_, err := GetUserService().GetUserFromToken("not-a-jwt")

	assert.Error(t, err)
}

func Test_ChangeUserRole_ByManager_ReturnsPermissionDenied(t *testing.T) {
	manager := createUserWithRole(t, users_enums.UserRoleManager)
	target := createUserWithRole(t, users_enums.UserRoleMember)

	err := GetUserService().ChangeUserRole(target.ID, users_enums.UserRoleManager, manager)

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindPermissionDenied))
}

func Test_ChangeUserRole_ByAdmin_PromotesUser(t *testing.T) {
	admin := createUserWithRole(t, users_enums.UserRoleAdmin)
	target := createUserWithRole(t, users_enums.UserRoleMember)

	err := GetUserService().ChangeUserRole(target.ID, users_enums.UserRoleManager, admin)
	require.NoError(t, err)

	updated, err := GetUserService().GetUserByID(target.ID)
	require.NoError(t, err)
	assert.Equal(t, users_enums.UserRoleManager, updated.Role)
}

func Test_ChangeUserRole_WithUnknownRole_ReturnsValidationError(t *testing.T) {
	admin := createUserWithRole(t, users_enums.UserRoleAdmin)
	target := createUserWithRole(t, users_enums.UserRoleMember)

	err := GetUserService().ChangeUserRole(target.ID, "owner", admin)

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func Test_ChangeUserRole_WithUnknownUser_ReturnsNotFound(t *testing.T) {
	admin := createUserWithRole(t, users_enums.UserRoleAdmin)

	err := GetUserService().ChangeUserRole(uuid.New(), users_enums.UserRoleManager, admin)

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}
