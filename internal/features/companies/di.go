package companies

import (
	audit_logs "fieldtrack/internal/features/audit_logs"
	users_services "fieldtrack/internal/features/users/services"
)

var companyRepository = &CompanyRepository{}

var companyService = &CompanyService{
	companyRepository: companyRepository,
	userService:       users_services.GetUserService(),
	auditLogService:   audit_logs.GetAuditLogService(),
}

var companyController = &CompanyController{
	companyService: companyService,
}

func GetCompanyService() *CompanyService {
	return companyService
}

func GetCompanyController() *CompanyController {
	return companyController
}
