package projects_models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectMember links a user to a project with a free-text,
// project-scoped role label ("Foreman", "Surveyor"). The label is
// descriptive only and carries no authorization weight; that is the
// global user role's job.
type ProjectMember struct {
	ID         uuid.UUID `json:"id"         gorm:"column:id;primaryKey"`
	ProjectID  uuid.UUID `json:"projectId"  gorm:"column:project_id;index"`
	UserID     uuid.UUID `json:"userId"     gorm:"column:user_id;index"`
	MemberRole string    `json:"memberRole" gorm:"column:member_role"`
	CreatedAt  time.Time `json:"createdAt"  gorm:"column:created_at"`
}

func (ProjectMember) TableName() string {
	return "project_members"
}
