package projects_controllers

import (
	projects_services "fieldtrack/internal/features/projects/services"
)

var projectController = &ProjectController{
	projectService: projects_services.GetProjectService(),
}

var memberController = &MemberController{
	memberService: projects_services.GetMemberService(),
}

func GetProjectController() *ProjectController {
	return projectController
}

func GetMemberController() *MemberController {
	return memberController
}
