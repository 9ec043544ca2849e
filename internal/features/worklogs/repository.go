package worklogs

import (
	"fieldtrack/internal/storage"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkLogRepository struct{}

func (r *WorkLogRepository) CreateWorkLog(workLog *WorkLog) error {
	if workLog.ID == uuid.Nil {
		workLog.ID = uuid.New()
	}
	if workLog.CreatedAt.IsZero() {
		workLog.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(workLog).Error
}

func (r *WorkLogRepository) GetWorkLogByID(workLogID uuid.UUID) (*WorkLog, error) {
	var workLog WorkLog

	if err := storage.GetDb().Where("id = ?", workLogID).First(&workLog).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &workLog, nil
}

func (r *WorkLogRepository) GetWorkLogsByTask(taskID uuid.UUID) ([]*WorkLog, error) {
	var workLogs []*WorkLog

	err := storage.GetDb().
		Where("task_id = ?", taskID).
		Order("log_date ASC").
		Find(&workLogs).Error

	return workLogs, err
}

func (r *WorkLogRepository) GetWorkLogsByProject(projectID uuid.UUID) ([]*WorkLog, error) {
	var workLogs []*WorkLog

	err := storage.GetDb().
		Where("project_id = ?", projectID).
		Order("log_date ASC").
		Find(&workLogs).Error

	return workLogs, err
}

func (r *WorkLogRepository) GetWorkLogsByProjects(projectIDs []uuid.UUID) ([]*WorkLog, error) {
	if len(projectIDs) == 0 {
		return []*WorkLog{}, nil
	}

	var workLogs []*WorkLog

	err := storage.GetDb().
		Where("project_id IN ?", projectIDs).
		Order("log_date ASC").
		Find(&workLogs).Error

	return workLogs, err
}

func (r *WorkLogRepository) GetWorkLogsByUser(userID uuid.UUID) ([]*WorkLog, error) {
	var workLogs []*WorkLog

	err := storage.GetDb().
		Where("user_id = ?", userID).
		Order("log_date ASC").
		Find(&workLogs).Error

	return workLogs, err
}

func (r *WorkLogRepository) GetPendingWorkLogs() ([]*WorkLog, error) {
	var workLogs []*WorkLog

	err := storage.GetDb().
		Where("status = ?", WorkLogStatusPending).
		Order("created_at ASC").
		Find(&workLogs).Error

	return workLogs, err
}

// UpdatePendingWorkLog mutates columns only while the row is still
// pending. The (id, status) predicate on the write is the serialization
// point; zero affected rows means the log was already resolved or never
// existed.
func (r *WorkLogRepository) UpdatePendingWorkLog(workLogID uuid.UUID, updates map[string]any) (int64, error) {
	result := storage.GetDb().Model(&WorkLog{}).
		Where("id = ? AND status = ?", workLogID, WorkLogStatusPending).
		Updates(updates)

	return result.RowsAffected, result.Error
}

func (r *WorkLogRepository) DeletePendingWorkLog(workLogID uuid.UUID) (int64, error) {
	result := storage.GetDb().
		Where("id = ? AND status = ?", workLogID, WorkLogStatusPending).
		Delete(&WorkLog{})

	return result.RowsAffected, result.Error
}

// ResolvePendingWorkLog finalizes a pending log and writes its Approval
// record in one transaction. The conditional status update decides the
// race: when it matches zero rows no Approval is inserted and the
// returned flag is false.
func (r *WorkLogRepository) ResolvePendingWorkLog(approval *Approval) (bool, error) {
	won := false

	err := storage.GetDb().Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&WorkLog{}).
			Where("id = ? AND status = ?", approval.WorkLogID, WorkLogStatusPending).
			Update("status", approval.Status)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return nil
		}

		won = true

		return tx.Create(approval).Error
	})

	return won, err
}

func (r *WorkLogRepository) GetApprovalByWorkLogID(workLogID uuid.UUID) (*Approval, error) {
	var approval Approval

	if err := storage.GetDb().Where("work_log_id = ?", workLogID).First(&approval).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &approval, nil
}
