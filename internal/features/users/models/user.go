package users_models

import (
	users_enums "fieldtrack/internal/features/users/enums"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID              `json:"id"        gorm:"column:id;primaryKey"`
	Email          string                 `json:"email"     gorm:"column:email;uniqueIndex"`
	HashedPassword *string                `json:"-"         gorm:"column:hashed_password"`
	Role           users_enums.UserRole   `json:"role"      gorm:"column:role"`
	Status         users_enums.UserStatus `json:"status"    gorm:"column:status"`
	CompanyID      *uuid.UUID             `json:"companyId" gorm:"column:company_id"`
	CreatedAt      time.Time              `json:"createdAt" gorm:"column:created_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsActiveUser() bool {
	return u.Status == users_enums.UserStatusActive
}

func (u *User) HasCompany() bool {
	return u.CompanyID != nil && *u.CompanyID != uuid.Nil
}
