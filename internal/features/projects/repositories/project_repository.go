package projects_repositories

import (
	"time"

	projects_models "fieldtrack/internal/features/projects/models"
	"fieldtrack/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepository struct{}

func (r *ProjectRepository) CreateProject(project *projects_models.Project) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(project).Error
}

func (r *ProjectRepository) GetProjectByID(projectID uuid.UUID) (*projects_models.Project, error) {
	var project projects_models.Project

	if err := storage.GetDb().Where("id = ?", projectID).First(&project).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &project, nil
}

// UpdateProject applies a partial column update and reports how many
// rows matched, so callers can distinguish a missing project.
func (r *ProjectRepository) UpdateProject(projectID uuid.UUID, updates map[string]any) (int64, error) {
	result := storage.GetDb().Model(&projects_models.Project{}).
		Where("id = ?", projectID).
		Updates(updates)

	return result.RowsAffected, result.Error
}

func (r *ProjectRepository) DeleteProject(projectID uuid.UUID) (int64, error) {
	result := storage.GetDb().Where("id = ?", projectID).Delete(&projects_models.Project{})

	return result.RowsAffected, result.Error
}

func (r *ProjectRepository) GetProjectsByCompany(companyID uuid.UUID) ([]*projects_models.Project, error) {
	var projects []*projects_models.Project

	err := storage.GetDb().
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&projects).Error

	return projects, err
}
