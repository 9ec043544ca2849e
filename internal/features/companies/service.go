package companies

import (
	"fmt"
	"time"

	"fieldtrack/internal/apperrors"
	audit_logs "fieldtrack/internal/features/audit_logs"
	users_models "fieldtrack/internal/features/users/models"
	users_services "fieldtrack/internal/features/users/services"
	"fieldtrack/internal/util/validate"

	"github.com/google/uuid"
)

type CompanyService struct {
	companyRepository *CompanyRepository
	userService       *users_services.UserService
	auditLogService   *audit_logs.AuditLogService
}

// CreateCompany provisions the tenant boundary. The creating user is
// attached to the new company; a user can belong to one company only.
func (s *CompanyService) CreateCompany(
	request *CreateCompanyRequestDTO,
	creator *users_models.User,
) (*Company, error) {
	name, err := validate.RequireString(request.Name, "name")
	if err != nil {
		return nil, err
	}

	if creator.HasCompany() {
		return nil, apperrors.Validation("user already belongs to a company")
	}

	company := &Company{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.companyRepository.CreateCompany(company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	if err := s.userService.AssignUserCompany(creator.ID, company.ID); err != nil {
		return nil, err
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Company created: %s", company.Name),
		&creator.ID,
		nil,
	)

	return company, nil
}

func (s *CompanyService) GetCompanyByID(companyID uuid.UUID) (*Company, error) {
	company, err := s.companyRepository.GetCompanyByID(companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	if company == nil {
		return nil, apperrors.NotFound("company not found")
	}

	return company, nil
}

// GetOwnCompany resolves the company of the authenticated user.
func (s *CompanyService) GetOwnCompany(user *users_models.User) (*Company, error) {
	if !user.HasCompany() {
		return nil, apperrors.NotFound("user is not assigned to a company")
	}

	return s.GetCompanyByID(*user.CompanyID)
}
