package projects_repositories

import (
	"time"

	projects_models "fieldtrack/internal/features/projects/models"
	"fieldtrack/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MemberRepository struct{}

func (r *MemberRepository) CreateMember(member *projects_models.ProjectMember) error {
	if member.ID == uuid.Nil {
		member.ID = uuid.New()
	}
	if member.CreatedAt.IsZero() {
		member.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(member).Error
}

func (r *MemberRepository) GetProjectMembers(projectID uuid.UUID) ([]*projects_models.ProjectMember, error) {
	var members []*projects_models.ProjectMember

	err := storage.GetDb().
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&members).Error

	return members, err
}

func (r *MemberRepository) GetMemberByUserAndProject(
	userID uuid.UUID,
	projectID uuid.UUID,
) (*projects_models.ProjectMember, error) {
	var member projects_models.ProjectMember

	err := storage.GetDb().
		Where("user_id = ? AND project_id = ?", userID, projectID).
		First(&member).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &member, nil
}

func (r *MemberRepository) RemoveMember(userID uuid.UUID, projectID uuid.UUID) (int64, error) {
	result := storage.GetDb().
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Delete(&projects_models.ProjectMember{})

	return result.RowsAffected, result.Error
}
