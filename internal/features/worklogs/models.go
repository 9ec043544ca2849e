package worklogs

import (
	"fieldtrack/internal/storage"
	"time"

	"github.com/google/uuid"
)

func init() {
	storage.RegisterModel(&WorkLog{}, &Approval{})
}

// WorkLog denormalizes the parent task's project id so report queries
// never need to join through tasks.
type WorkLog struct {
	ID        uuid.UUID     `json:"id"        gorm:"column:id;primaryKey"`
	TaskID    uuid.UUID     `json:"taskId"    gorm:"column:task_id;index"`
	ProjectID uuid.UUID     `json:"projectId" gorm:"column:project_id;index"`
	UserID    uuid.UUID     `json:"userId"    gorm:"column:user_id;index"`
	LogDate   time.Time     `json:"logDate"   gorm:"column:log_date"`
	QtyDone   *float64      `json:"qtyDone"   gorm:"column:qty_done"`
	Hours     *float64      `json:"hours"     gorm:"column:hours"`
	Note      *string       `json:"note"      gorm:"column:note"`
	Status    WorkLogStatus `json:"status"    gorm:"column:status;index"`
	CreatedAt time.Time     `json:"createdAt" gorm:"column:created_at"`
}

func (WorkLog) TableName() string {
	return "work_logs"
}

// Approval is written exactly once, when its work log leaves pending.
// Rows are never updated or deleted afterwards; the unique index on
// work_log_id backs the at-most-one guarantee.
type Approval struct {
	ID         uuid.UUID     `json:"id"         gorm:"column:id;primaryKey"`
	WorkLogID  uuid.UUID     `json:"workLogId"  gorm:"column:work_log_id;uniqueIndex"`
	ApprovedBy uuid.UUID     `json:"approvedBy" gorm:"column:approved_by"`
	Status     WorkLogStatus `json:"status"     gorm:"column:status"`
	Note       *string       `json:"note"       gorm:"column:note"`
	ApprovedAt time.Time     `json:"approvedAt" gorm:"column:approved_at"`
}

func (Approval) TableName() string {
	return "approvals"
}
