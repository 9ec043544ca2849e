package tasks

// A task carries two independent status axes. Execution status is
// free-form progress tracking anyone on the task can move; approval
// status is the governance axis and is role-gated. Keeping them
// orthogonal lets field crews log day-to-day progress without waiting
// on sign-off.

type ExecutionStatus string

const (
	ExecutionStatusTodo       ExecutionStatus = "todo"
	ExecutionStatusInProgress ExecutionStatus = "in_progress"
	ExecutionStatusBlocked    ExecutionStatus = "blocked"
	ExecutionStatusDone       ExecutionStatus = "done"
)

var ExecutionStatuses = []ExecutionStatus{
	ExecutionStatusTodo,
	ExecutionStatusInProgress,
	ExecutionStatusBlocked,
	ExecutionStatusDone,
}

type ApprovalStatus string

const (
	ApprovalStatusDraft    ApprovalStatus = "draft"
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
)

var ApprovalStatuses = []ApprovalStatus{
	ApprovalStatusDraft,
	ApprovalStatusPending,
	ApprovalStatusApproved,
}
