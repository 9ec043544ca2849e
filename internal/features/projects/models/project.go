package projects_models

import (
	"time"

	projects_enums "fieldtrack/internal/features/projects/enums"
	"fieldtrack/internal/storage"

	"github.com/google/uuid"
)

func init() {
	storage.RegisterModel(&Project{}, &ProjectMember{})
}

type Project struct {
	ID        uuid.UUID                    `json:"id"        gorm:"column:id;primaryKey"`
	CompanyID uuid.UUID                    `json:"companyId" gorm:"column:company_id;index"`
	Name      string                       `json:"name"      gorm:"column:name"`
	Status    projects_enums.ProjectStatus `json:"status"    gorm:"column:status"`
	StartDate *time.Time                   `json:"startDate" gorm:"column:start_date"`
	EndDate   *time.Time                   `json:"endDate"   gorm:"column:end_date"`
	CreatedAt time.Time                    `json:"createdAt" gorm:"column:created_at"`
}

func (Project) TableName() string {
	return "projects"
}
