package projects_dto

// Raw request shapes. Pointer fields distinguish absent from present;
// validation happens in the services, not at bind time.

type CreateProjectRequestDTO struct {
	Name      *string `json:"name"`
	Status    *string `json:"status"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

type UpdateProjectRequestDTO struct {
	Name      *string `json:"name"`
	Status    *string `json:"status"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

type AddProjectMemberRequestDTO struct {
	UserID     *string `json:"user_id"`
	MemberRole *string `json:"member_role"`
}
