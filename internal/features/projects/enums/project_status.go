package projects_enums

type ProjectStatus string

const (
	ProjectStatusPlanned   ProjectStatus = "planned"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusCancelled ProjectStatus = "cancelled"
)

var ProjectStatuses = []ProjectStatus{
	ProjectStatusPlanned,
	ProjectStatusActive,
	ProjectStatusCompleted,
	ProjectStatusCancelled,
}

func (s ProjectStatus) IsValid() bool {
	for _, status := range ProjectStatuses {
		if s == status {
			return true
		}
	}
	return false
}
