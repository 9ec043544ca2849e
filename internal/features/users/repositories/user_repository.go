package users_repositories

import (
	users_enums "fieldtrack/internal/features/users/enums"
	users_models "fieldtrack/internal/features/users/models"
	"fieldtrack/internal/storage"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func init() {
	storage.RegisterModel(&users_models.User{})
}

type UserRepository struct{}

func (r *UserRepository) CreateUser(user *users_models.User) error {
	return storage.GetDb().Create(user).Error
}

func (r *UserRepository) GetUserByEmail(email string) (*users_models.User, error) {
	var user users_models.User

	if err := storage.GetDb().Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) GetUserByID(userID uuid.UUID) (*users_models.User, error) {
	var user users_models.User

	if err := storage.GetDb().Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) GetUsersByCompany(companyID uuid.UUID) ([]*users_models.User, error) {
	var users []*users_models.User

	err := storage.GetDb().
		Where("company_id = ?", companyID).
		Order("created_at ASC").
		Find(&users).Error

	return users, err
}

func (r *UserRepository) UpdateUserRole(userID uuid.UUID, role users_enums.UserRole) error {
	return storage.GetDb().Model(&users_models.User{}).
		Where("id = ?", userID).
		Update("role", role).Error
}

func (r *UserRepository) UpdateUserCompany(userID uuid.UUID, companyID uuid.UUID) error {
	return storage.GetDb().Model(&users_models.User{}).
		Where("id = ?", userID).
		Update("company_id", companyID).Error
}

func (r *UserRepository) CreateInitialAdmin() error {
	admin, err := r.GetUserByEmail("admin")
	if err != nil {
		return err
	}

	if admin != nil {
		return nil
	}

	admin = &users_models.User{
		ID:        uuid.New(),
		Email:     "admin",
		Role:      users_enums.UserRoleAdmin,
		Status:    users_enums.UserStatusActive,
		CreatedAt: time.Now().UTC(),
	}

	return storage.GetDb().Create(admin).Error
}
