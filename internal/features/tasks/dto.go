package tasks

// Raw request shapes. Pointer fields distinguish absent from present;
// the service validates and normalizes every field before state logic.

type CreateTaskRequestDTO struct {
	Title          *string  `json:"title"`
	Unit           *string  `json:"unit"`
	PlannedQty     *float64 `json:"planned_qty"`
	PlannedHours   *float64 `json:"planned_hours"`
	StartDate      *string  `json:"start_date"`
	EndDate        *string  `json:"end_date"`
	Status         *string  `json:"status"`
	AssignedTo     *string  `json:"assigned_to"`
	ApprovalStatus *string  `json:"approval_status"`
}

type UpdateTaskRequestDTO struct {
	Title          *string  `json:"title"`
	Unit           *string  `json:"unit"`
	PlannedQty     *float64 `json:"planned_qty"`
	PlannedHours   *float64 `json:"planned_hours"`
	StartDate      *string  `json:"start_date"`
	EndDate        *string  `json:"end_date"`
	Status         *string  `json:"status"`
	AssignedTo     *string  `json:"assigned_to"`
	ApprovalStatus *string  `json:"approval_status"`
}
