package worklogs

import (
	"fmt"
	"time"

	"fieldtrack/internal/apperrors"
	audit_logs "fieldtrack/internal/features/audit_logs"
	"fieldtrack/internal/features/tasks"
	users_enums "fieldtrack/internal/features/users/enums"
	users_models "fieldtrack/internal/features/users/models"
	"fieldtrack/internal/policy"
	"fieldtrack/internal/util/logger"
	"fieldtrack/internal/util/validate"

	"github.com/google/uuid"
)

type WorkLogService struct {
	workLogRepository *WorkLogRepository
	taskService       *tasks.TaskService
	auditLogService   *audit_logs.AuditLogService
}

// CreateWorkLog records work against a task. Logs always start as
// pending. The owning project id is resolved from the parent task and
// never taken from the caller, so a log cannot be forged into another
// project.
func (s *WorkLogService) CreateWorkLog(
	request *CreateWorkLogRequestDTO,
	actor *users_models.User,
) (*WorkLog, error) {
	if err := policy.Require(actor.Role, users_enums.UserRoleMember); err != nil {
		return nil, err
	}

	taskIDValue, err := validate.RequireString(request.TaskID, "task_id")
	if err != nil {
		return nil, err
	}

	taskID, err := validate.RequireUUID(taskIDValue, "task_id")
	if err != nil {
		return nil, err
	}

	logDate, err := validate.RequireDate(request.LogDate, "log_date")
	if err != nil {
		return nil, err
	}

	qtyDone, err := validate.OptionalNumber(request.QtyDone, "qty_done")
	if err != nil {
		return nil, err
	}

	hours, err := validate.OptionalNumber(request.Hours, "hours")
	if err != nil {
		return nil, err
	}

	task, err := s.taskService.GetTaskByID(taskID)
	if err != nil {
		return nil, err
	}

	workLog := &WorkLog{
		ID:        uuid.New(),
		TaskID:    task.ID,
		ProjectID: task.ProjectID,
		UserID:    actor.ID,
		LogDate:   logDate,
		QtyDone:   qtyDone,
		Hours:     hours,
		Note:      request.Note,
		Status:    WorkLogStatusPending,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.workLogRepository.CreateWorkLog(workLog); err != nil {
		return nil, fmt.Errorf("failed to create work log: %w", err)
	}

	return workLog, nil
}

// UpdateWorkLog mutates a log only while it is still pending. The write
// itself carries the pending predicate; when it matches nothing we read
// the row once more only to tell "never existed" from "already
// resolved" for the caller and the logs.
func (s *WorkLogService) UpdateWorkLog(
	workLogID string,
	request *UpdateWorkLogRequestDTO,
	actor *users_models.User,
) (*WorkLog, error) {
	if err := policy.Require(actor.Role, users_enums.UserRoleMember); err != nil {
		return nil, err
	}

	parsedWorkLogID, err := validate.RequireUUID(workLogID, "id")
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}

	logDate, err := validate.OptionalDate(request.LogDate, "log_date")
	if err != nil {
		return nil, err
	}
	if logDate != nil {
		updates["log_date"] = *logDate
	}

	qtyDone, err := validate.OptionalNumber(request.QtyDone, "qty_done")
	if err != nil {
		return nil, err
	}
	if qtyDone != nil {
		updates["qty_done"] = *qtyDone
	}

	hours, err := validate.OptionalNumber(request.Hours, "hours")
	if err != nil {
		return nil, err
	}
	if hours != nil {
		updates["hours"] = *hours
	}

	if request.Note != nil {
		updates["note"] = *request.Note
	}

	if len(updates) == 0 {
		return nil, apperrors.Validation("no fields to update")
	}

	affected, err := s.workLogRepository.UpdatePendingWorkLog(parsedWorkLogID, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update work log: %w", err)
	}

	if affected == 0 {
		return nil, s.pendingGuardFailure(parsedWorkLogID, "update")
	}

	return s.GetWorkLogByID(parsedWorkLogID)
}

// DeleteWorkLog removes a log under the same pending guard as update.
func (s *WorkLogService) DeleteWorkLog(workLogID string, actor *users_models.User) error {
	if err := policy.Require(actor.Role, users_enums.UserRoleMember); err != nil {
		return err
	}

	parsedWorkLogID, err := validate.RequireUUID(workLogID, "id")
	if err != nil {
		return err
	}

	affected, err := s.workLogRepository.DeletePendingWorkLog(parsedWorkLogID)
	if err != nil {
		return fmt.Errorf("failed to delete work log: %w", err)
	}

	if affected == 0 {
		return s.pendingGuardFailure(parsedWorkLogID, "delete")
	}

	return nil
}

// ApproveWorkLog finalizes a pending log as approved. The note is
// optional. The caller that wins the conditional transition is the one
// whose Approval record gets written; everyone else gets Conflict.
func (s *WorkLogService) ApproveWorkLog(
	workLogID string,
	request *ResolveWorkLogRequestDTO,
	actor *users_models.User,
) (*Approval, error) {
	return s.resolveWorkLog(workLogID, WorkLogStatusApproved, request.Note, actor)
}

// RejectWorkLog finalizes a pending log as rejected. A non-empty note
// is mandatory and is checked before any state is touched.
func (s *WorkLogService) RejectWorkLog(
	workLogID string,
	request *ResolveWorkLogRequestDTO,
	actor *users_models.User,
) (*Approval, error) {
	if _, err := validate.RequireString(request.Note, "note"); err != nil {
		return nil, err
	}

	return s.resolveWorkLog(workLogID, WorkLogStatusRejected, request.Note, actor)
}

func (s *WorkLogService) resolveWorkLog(
	workLogID string,
	status WorkLogStatus,
	note *string,
	actor *users_models.User,
) (*Approval, error) {
	if err := policy.Require(actor.Role, users_enums.UserRoleManager); err != nil {
		return nil, err
	}

	parsedWorkLogID, err := validate.RequireUUID(workLogID, "id")
	if err != nil {
		return nil, err
	}

	approval := &Approval{
		ID:         uuid.New(),
		WorkLogID:  parsedWorkLogID,
		ApprovedBy: actor.ID,
		Status:     status,
		Note:       note,
		ApprovedAt: time.Now().UTC(),
	}

	won, err := s.workLogRepository.ResolvePendingWorkLog(approval)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve work log: %w", err)
	}

	if !won {
		return nil, s.pendingGuardFailure(parsedWorkLogID, string(status))
	}

	workLog, err := s.workLogRepository.GetWorkLogByID(parsedWorkLogID)
	if err == nil && workLog != nil {
		s.auditLogService.WriteAuditLog(
			fmt.Sprintf("Work log %s: %s", status, workLog.ID),
			&actor.ID,
			&workLog.ProjectID,
		)
	}

	return approval, nil
}

// pendingGuardFailure classifies a zero-row conditional write. Both
// outcomes surface as 404 to HTTP callers, but they are logged apart so
// lost races stay visible in operation logs.
func (s *WorkLogService) pendingGuardFailure(workLogID uuid.UUID, operation string) error {
	workLog, err := s.workLogRepository.GetWorkLogByID(workLogID)
	if err != nil || workLog == nil {
		logger.GetLogger().Info(
			"work log operation hit missing row",
			"operation", operation,
			"workLogId", workLogID.String(),
		)

		return apperrors.NotFound("work log not found")
	}

	logger.GetLogger().Info(
		"work log operation lost pending race",
		"operation", operation,
		"workLogId", workLogID.String(),
		"status", string(workLog.Status),
	)

	return apperrors.Conflict(fmt.Sprintf("work log is already %s", workLog.Status))
}

// GetApproval fails with NotFound while the log is still pending.
func (s *WorkLogService) GetApproval(workLogID string) (*Approval, error) {
	parsedWorkLogID, err := validate.RequireUUID(workLogID, "id")
	if err != nil {
		return nil, err
	}

	approval, err := s.workLogRepository.GetApprovalByWorkLogID(parsedWorkLogID)
	if err != nil {
		return nil, fmt.Errorf("failed to get approval: %w", err)
	}

	if approval == nil {
		return nil, apperrors.NotFound("approval not found")
	}

	return approval, nil
}

func (s *WorkLogService) GetWorkLogByID(workLogID uuid.UUID) (*WorkLog, error) {
	workLog, err := s.workLogRepository.GetWorkLogByID(workLogID)
	if err != nil {
		return nil, fmt.Errorf("failed to get work log: %w", err)
	}

	if workLog == nil {
		return nil, apperrors.NotFound("work log not found")
	}

	return workLog, nil
}

func (s *WorkLogService) GetTaskWorkLogs(taskID string) ([]*WorkLog, error) {
	parsedTaskID, err := validate.RequireUUID(taskID, "taskId")
	if err != nil {
		return nil, err
	}

	return s.workLogRepository.GetWorkLogsByTask(parsedTaskID)
}

func (s *WorkLogService) GetProjectWorkLogs(projectID uuid.UUID) ([]*WorkLog, error) {
	return s.workLogRepository.GetWorkLogsByProject(projectID)
}

func (s *WorkLogService) GetUserWorkLogs(userID uuid.UUID) ([]*WorkLog, error) {
	return s.workLogRepository.GetWorkLogsByUser(userID)
}

func (s *WorkLogService) GetWorkLogsForProjects(projectIDs []uuid.UUID) ([]*WorkLog, error) {
	return s.workLogRepository.GetWorkLogsByProjects(projectIDs)
}

// GetPendingWorkLogs backs the approvals queue and is manager-only.
func (s *WorkLogService) GetPendingWorkLogs(actor *users_models.User) ([]*WorkLog, error) {
	if err := policy.Require(actor.Role, users_enums.UserRoleManager); err != nil {
		return nil, err
	}

	return s.workLogRepository.GetPendingWorkLogs()
}
