package users_testing

import (
	"fmt"
	"strings"
	"time"

	users_dto "fieldtrack/internal/features/users/dto"
	users_enums "fieldtrack/internal/features/users/enums"
	users_models "fieldtrack/internal/features/users/models"
	users_repositories "fieldtrack/internal/features/users/repositories"
	users_services "fieldtrack/internal/features/users/services"

	"github.com/google/uuid"
)

func CreateTestUser(role users_enums.UserRole) *users_models.User {
	return CreateTestUserInCompany(role, nil)
}

func CreateTestUserInCompany(role users_enums.UserRole, companyID *uuid.UUID) *users_models.User {
	userID := uuid.New()
	email := fmt.Sprintf("%s-%s@test.com", strings.ToLower(string(role)), userID.String()[:8])

	hashedPassword := "$2a$10$test"
	user := &users_models.User{
		ID:             userID,
		Email:          email,
		HashedPassword: &hashedPassword,
		Role:           role,
		Status:         users_enums.UserStatusActive,
		CompanyID:      companyID,
		CreatedAt:      time.Now().UTC(),
	}

	userRepository := &users_repositories.UserRepository{}
	if err := userRepository.CreateUser(user); err != nil {
		panic(err)
	}

	return user
}

func CreateTestUserWithToken(role users_enums.UserRole) (*users_models.User, *users_dto.SignInResponseDTO) {
	user := CreateTestUser(role)

	response, err := users_services.GetUserService().GenerateAccessToken(user)
	if err != nil {
		panic(err)
	}

	response.Email = user.Email

	return user, response
}
