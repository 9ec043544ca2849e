package worklogs

type CreateWorkLogRequestDTO struct {
	TaskID  *string  `json:"task_id"`
	LogDate *string  `json:"log_date"`
	QtyDone *float64 `json:"qty_done"`
	Hours   *float64 `json:"hours"`
	Note    *string  `json:"note"`
}

type UpdateWorkLogRequestDTO struct {
	LogDate *string  `json:"log_date"`
	QtyDone *float64 `json:"qty_done"`
	Hours   *float64 `json:"hours"`
	Note    *string  `json:"note"`
}

type ResolveWorkLogRequestDTO struct {
	Note *string `json:"note"`
}
