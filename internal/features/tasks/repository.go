package tasks

import (
	"fieldtrack/internal/storage"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskRepository struct{}

func (r *TaskRepository) CreateTask(task *Task) error {
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(task).Error
}

func (r *TaskRepository) GetTaskByID(taskID uuid.UUID) (*Task, error) {
	var task Task

	if err := storage.GetDb().Where("id = ?", taskID).First(&task).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &task, nil
}

func (r *TaskRepository) GetTasksByProject(projectID uuid.UUID) ([]*Task, error) {
	var tasks []*Task

	err := storage.GetDb().
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&tasks).Error

	return tasks, err
}

// UpdateTask is a plain last-writer-wins column update. Task state has
// no conditional guard; concurrent updates are not detected.
func (r *TaskRepository) UpdateTask(taskID uuid.UUID, updates map[string]any) (int64, error) {
	result := storage.GetDb().Model(&Task{}).
		Where("id = ?", taskID).
		Updates(updates)

	return result.RowsAffected, result.Error
}

func (r *TaskRepository) DeleteTask(taskID uuid.UUID) (int64, error) {
	result := storage.GetDb().Where("id = ?", taskID).Delete(&Task{})

	return result.RowsAffected, result.Error
}
