package worklogs

// WorkLogStatus is monotone: pending moves to approved or rejected
// exactly once and never reverts. Approval records reuse the same type
// but only ever carry the two terminal values.
type WorkLogStatus string

const (
	WorkLogStatusPending  WorkLogStatus = "pending"
	WorkLogStatusApproved WorkLogStatus = "approved"
	WorkLogStatusRejected WorkLogStatus = "rejected"
)

var WorkLogStatuses = []WorkLogStatus{
	WorkLogStatusPending,
	WorkLogStatusApproved,
	WorkLogStatusRejected,
}

func (s WorkLogStatus) IsValid() bool {
	for _, status := range WorkLogStatuses {
		if s == status {
			return true
		}
	}
	return false
}
