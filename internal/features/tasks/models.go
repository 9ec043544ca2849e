package tasks

import (
	"fieldtrack/internal/storage"
	"time"

	"github.com/google/uuid"
)

func init() {
	storage.RegisterModel(&Task{})
}

type Task struct {
	ID             uuid.UUID       `json:"id"             gorm:"column:id;primaryKey"`
	ProjectID      uuid.UUID       `json:"projectId"      gorm:"column:project_id;index"`
	Title          string          `json:"title"          gorm:"column:title"`
	Unit           string          `json:"unit"           gorm:"column:unit"`
	PlannedQty     *float64        `json:"plannedQty"     gorm:"column:planned_qty"`
	PlannedHours   *float64        `json:"plannedHours"   gorm:"column:planned_hours"`
	StartDate      *time.Time      `json:"startDate"      gorm:"column:start_date"`
	EndDate        *time.Time      `json:"endDate"        gorm:"column:end_date"`
	Status         ExecutionStatus `json:"status"         gorm:"column:status"`
	ApprovalStatus ApprovalStatus  `json:"approvalStatus" gorm:"column:approval_status"`
	AssignedTo     *uuid.UUID      `json:"assignedTo"     gorm:"column:assigned_to"`
	CreatedAt      time.Time       `json:"createdAt"      gorm:"column:created_at"`
}

func (Task) TableName() string {
	return "tasks"
}
