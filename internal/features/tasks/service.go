package tasks

import (
	"fmt"
	"time"

	"fieldtrack/internal/apperrors"
	audit_logs "fieldtrack/internal/features/audit_logs"
	users_enums "fieldtrack/internal/features/users/enums"
	users_models "fieldtrack/internal/features/users/models"
	"fieldtrack/internal/policy"
	"fieldtrack/internal/util/validate"

	"github.com/google/uuid"
)

type TaskService struct {
	taskRepository  *TaskRepository
	auditLogService *audit_logs.AuditLogService
}

// CreateTask applies the role-gated approval rules:
//   - members always create tasks assigned to themselves, with approval
//     status taken from the request but restricted to draft or pending
//     (default draft); requesting "approved" is an invalid transition;
//   - managers and admins may assign anyone and the task is
//     auto-approved regardless of the requested approval status.
func (s *TaskService) CreateTask(
	projectID string,
	request *CreateTaskRequestDTO,
	actor *users_models.User,
) (*Task, error) {
	if err := policy.Require(actor.Role, users_enums.UserRoleMember); err != nil {
		return nil, err
	}

	parsedProjectID, err := validate.RequireUUID(projectID, "projectId")
	if err != nil {
		return nil, err
	}

	title, err := validate.RequireString(request.Title, "title")
	if err != nil {
		return nil, err
	}

	unit, err := validate.RequireString(request.Unit, "unit")
	if err != nil {
		return nil, err
	}

	status, err := validate.RequireEnum(request.Status, ExecutionStatuses, "status")
	if err != nil {
		return nil, err
	}

	plannedQty, err := validate.OptionalNumber(request.PlannedQty, "planned_qty")
	if err != nil {
		return nil, err
	}

	plannedHours, err := validate.OptionalNumber(request.PlannedHours, "planned_hours")
	if err != nil {
		return nil, err
	}

	startDate, err := validate.OptionalDate(request.StartDate, "start_date")
	if err != nil {
		return nil, err
	}

	endDate, err := validate.OptionalDate(request.EndDate, "end_date")
	if err != nil {
		return nil, err
	}

	requestedApproval, err := validate.OptionalEnum(request.ApprovalStatus, ApprovalStatuses, "approval_status")
	if err != nil {
		return nil, err
	}

	isMember := actor.Role == users_enums.UserRoleMember

	var assignedTo *uuid.UUID
	if isMember {
		// Members cannot create tasks on others' behalf.
		actorID := actor.ID
		assignedTo = &actorID
	} else if request.AssignedTo != nil {
		assigneeID, err := validate.RequireUUID(*request.AssignedTo, "assigned_to")
		if err != nil {
			return nil, err
		}
		assignedTo = &assigneeID
	}

	approvalStatus := ApprovalStatusApproved
	if isMember {
		approvalStatus = ApprovalStatusDraft
		if requestedApproval != nil {
			approvalStatus = *requestedApproval
		}

		if approvalStatus == ApprovalStatusApproved {
			return nil, apperrors.InvalidTransition("members can only create draft or pending tasks")
		}
	}

	task := &Task{
		ID:             uuid.New(),
		ProjectID:      parsedProjectID,
		Title:          title,
		Unit:           unit,
		PlannedQty:     plannedQty,
		PlannedHours:   plannedHours,
		StartDate:      startDate,
		EndDate:        endDate,
		Status:         status,
		ApprovalStatus: approvalStatus,
		AssignedTo:     assignedTo,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.taskRepository.CreateTask(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// UpdateTask applies a partial update. Reassignment and moving the
// approval status to "approved" are both closed to members; execution
// status is open to everyone. Task updates carry no concurrency guard,
// the last writer wins.
func (s *TaskService) UpdateTask(
	taskID string,
	request *UpdateTaskRequestDTO,
	actor *users_models.User,
) (*Task, error) {
	if err := policy.Require(actor.Role, users_enums.UserRoleMember); err != nil {
		return nil, err
	}

	parsedTaskID, err := validate.RequireUUID(taskID, "id")
	if err != nil {
		return nil, err
	}

	isMember := actor.Role == users_enums.UserRoleMember
	updates := map[string]any{}

	if request.Title != nil {
		updates["title"] = *request.Title
	}

	if request.Unit != nil {
		updates["unit"] = *request.Unit
	}

	plannedQty, err := validate.OptionalNumber(request.PlannedQty, "planned_qty")
	if err != nil {
		return nil, err
	}
	if plannedQty != nil {
		updates["planned_qty"] = *plannedQty
	}

	plannedHours, err := validate.OptionalNumber(request.PlannedHours, "planned_hours")
	if err != nil {
		return nil, err
	}
	if plannedHours != nil {
		updates["planned_hours"] = *plannedHours
	}

	startDate, err := validate.OptionalDate(request.StartDate, "start_date")
	if err != nil {
		return nil, err
	}
	if startDate != nil {
		updates["start_date"] = *startDate
	}

	endDate, err := validate.OptionalDate(request.EndDate, "end_date")
	if err != nil {
		return nil, err
	}
	if endDate != nil {
		updates["end_date"] = *endDate
	}

	status, err := validate.OptionalEnum(request.Status, ExecutionStatuses, "status")
	if err != nil {
		return nil, err
	}
	if status != nil {
		updates["status"] = *status
	}

	if request.AssignedTo != nil {
		if isMember {
			return nil, apperrors.InvalidTransition("members cannot reassign tasks")
		}

		assigneeID, err := validate.RequireUUID(*request.AssignedTo, "assigned_to")
		if err != nil {
			return nil, err
		}
		updates["assigned_to"] = assigneeID
	}

	approvalStatus, err := validate.OptionalEnum(request.ApprovalStatus, ApprovalStatuses, "approval_status")
	if err != nil {
		return nil, err
	}
	if approvalStatus != nil {
		if isMember && *approvalStatus == ApprovalStatusApproved {
			return nil, apperrors.InvalidTransition("members can only move tasks to draft or pending")
		}
		updates["approval_status"] = *approvalStatus
	}

	if len(updates) == 0 {
		return nil, apperrors.Validation("no fields to update")
	}

	affected, err := s.taskRepository.UpdateTask(parsedTaskID, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	if affected == 0 {
		return nil, apperrors.NotFound("task not found")
	}

	return s.GetTaskByID(parsedTaskID)
}

// SubmitTask is the assignee's shortcut for requesting sign-off: it
// moves the approval status to pending from any state.
func (s *TaskService) SubmitTask(taskID string, actor *users_models.User) (*Task, error) {
	parsedTaskID, err := validate.RequireUUID(taskID, "id")
	if err != nil {
		return nil, err
	}

	task, err := s.GetTaskByID(parsedTaskID)
	if err != nil {
		return nil, err
	}

	isAssignee := task.AssignedTo != nil && *task.AssignedTo == actor.ID
	if !isAssignee {
		if err := policy.Require(actor.Role, users_enums.UserRoleManager); err != nil {
			if apperrors.IsKind(err, apperrors.KindPolicy) {
				return nil, err
			}

			return nil, apperrors.PermissionDenied("only the task assignee can submit it for approval")
		}
	}

	affected, err := s.taskRepository.UpdateTask(parsedTaskID, map[string]any{
		"approval_status": ApprovalStatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to submit task: %w", err)
	}

	if affected == 0 {
		return nil, apperrors.NotFound("task not found")
	}

	return s.GetTaskByID(parsedTaskID)
}

// ApproveTask force-approves regardless of the current approval status.
// There is deliberately no precondition and no concurrency guard here:
// approval is idempotent, so concurrent manager approvals all converge
// on the same state.
func (s *TaskService) ApproveTask(taskID string, actor *users_models.User) (*Task, error) {
	if err := policy.Require(actor.Role, users_enums.UserRoleManager); err != nil {
		return nil, err
	}

	parsedTaskID, err := validate.RequireUUID(taskID, "id")
	if err != nil {
		return nil, err
	}

	affected, err := s.taskRepository.UpdateTask(parsedTaskID, map[string]any{
		"approval_status": ApprovalStatusApproved,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to approve task: %w", err)
	}

	if affected == 0 {
		return nil, apperrors.NotFound("task not found")
	}

	task, err := s.GetTaskByID(parsedTaskID)
	if err != nil {
		return nil, err
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Task approved: %s", task.Title),
		&actor.ID,
		&task.ProjectID,
	)

	return task, nil
}

func (s *TaskService) DeleteTask(taskID string, actor *users_models.User) error {
	if err := policy.Require(actor.Role, users_enums.UserRoleManager); err != nil {
		return err
	}

	parsedTaskID, err := validate.RequireUUID(taskID, "id")
	if err != nil {
		return err
	}

	task, err := s.GetTaskByID(parsedTaskID)
	if err != nil {
		return err
	}

	affected, err := s.taskRepository.DeleteTask(parsedTaskID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	if affected == 0 {
		return apperrors.NotFound("task not found")
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Task deleted: %s", task.Title),
		&actor.ID,
		&task.ProjectID,
	)

	return nil
}

func (s *TaskService) GetTaskByID(taskID uuid.UUID) (*Task, error) {
	task, err := s.taskRepository.GetTaskByID(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	if task == nil {
		return nil, apperrors.NotFound("task not found")
	}

	return task, nil
}

func (s *TaskService) GetProjectTasks(projectID string) ([]*Task, error) {
	parsedProjectID, err := validate.RequireUUID(projectID, "projectId")
	if err != nil {
		return nil, err
	}

	return s.taskRepository.GetTasksByProject(parsedProjectID)
}
