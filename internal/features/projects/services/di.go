package projects_services

import (
	audit_logs "fieldtrack/internal/features/audit_logs"
	projects_repositories "fieldtrack/internal/features/projects/repositories"
)

var projectRepository = &projects_repositories.ProjectRepository{}
var memberRepository = &projects_repositories.MemberRepository{}

var projectService = &ProjectService{
	projectRepository: projectRepository,
	auditLogService:   audit_logs.GetAuditLogService(),
}

var memberService = &MemberService{
	memberRepository: memberRepository,
	projectService:   projectService,
	auditLogService:  audit_logs.GetAuditLogService(),
}

func GetProjectService() *ProjectService {
	return projectService
}

func GetMemberService() *MemberService {
	return memberService
}
