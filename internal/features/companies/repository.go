package companies

import (
	"fieldtrack/internal/storage"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CompanyRepository struct{}

func (r *CompanyRepository) CreateCompany(company *Company) error {
	if company.ID == uuid.Nil {
		company.ID = uuid.New()
	}
	if company.CreatedAt.IsZero() {
		company.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(company).Error
}

func (r *CompanyRepository) GetCompanyByID(companyID uuid.UUID) (*Company, error) {
	var company Company

	if err := storage.GetDb().Where("id = ?", companyID).First(&company).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &company, nil
}
