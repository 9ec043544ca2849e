package worklogs

import (
	"sync"
	"testing"

	"fieldtrack/internal/apperrors"
	"fieldtrack/internal/features/tasks"
	users_enums "fieldtrack/internal/features/users/enums"
	users_models "fieldtrack/internal/features/users/models"
	users_testing "fieldtrack/internal/features/users/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(value string) *string   { return &value }
func f64Ptr(value float64) *float64 { return &value }

func createPendingWorkLog(t *testing.T, author *users_models.User) *WorkLog {
	t.Helper()

	task, err := tasks.GetTaskService().CreateTask(uuid.New().String(), &tasks.CreateTaskRequestDTO{
		Title:  strPtr("Excavate trench"),
		Unit:   strPtr("m"),
		Status: strPtr(string(tasks.ExecutionStatusInProgress)),
	}, author)
	require.NoError(t, err)

	workLog, err := GetWorkLogService().CreateWorkLog(&CreateWorkLogRequestDTO{
		TaskID:  strPtr(task.ID.String()),
		LogDate: strPtr("2026-03-14"),
		QtyDone: f64Ptr(4),
		Hours:   f64Ptr(6.5),
	}, author)
	require.NoError(t, err)

	return workLog
}

func Test_CreateWorkLog_StartsPendingWithProjectFromTask(t *testing.T) {
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)
	manager := users_testing.CreateTestUser(users_enums.UserRoleManager)

	task, err := tasks.GetTaskService().CreateTask(uuid.New().String(), &tasks.CreateTaskRequestDTO{
		Title:      strPtr("Lay pipe"),
		Unit:       strPtr("m"),
		Status:     strPtr(string(tasks.ExecutionStatusTodo)),
		AssignedTo: strPtr(member.ID.String()),
	}, manager)
	require.NoError(t, err)

	workLog, err := GetWorkLogService().CreateWorkLog(&CreateWorkLogRequestDTO{
		TaskID:  strPtr(task.ID.String()),
		LogDate: strPtr("2026-03-14"),
		Hours:   f64Ptr(8),
	}, member)

	require.NoError(t, err)
	assert.Equal(t, WorkLogStatusPending, workLog.Status)
	assert.Equal(t, task.ProjectID, workLog.ProjectID)
	assert.Equal(t, member.ID, workLog.UserID)
}

func Test_CreateWorkLog_WithoutLogDate_ReturnsValidationError(t *testing.T) {
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)

	_, err := GetWorkLogService().CreateWorkLog(&CreateWorkLogRequestDTO{
		TaskID: strPtr(uuid.New().String()),
		Hours:  f64Ptr(8),
	}, member)

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func Test_CreateWorkLog_WithUnknownTask_ReturnsNotFound(t *testing.T) {
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)

	_, err := GetWorkLogService().CreateWorkLog(&CreateWorkLogRequestDTO{
		TaskID:  strPtr(uuid.New().String()),
		LogDate: strPtr("2026-03-14"),
	}, member)

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func Test_UpdateWorkLog_WhilePending_Succeeds(t *testing.T) {
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)
	workLog := createPendingWorkLog(t, member)

	updated, err := GetWorkLogService().UpdateWorkLog(workLog.ID.String(), &UpdateWorkLogRequestDTO{
		Hours: f64Ptr(7),
		Note:  strPtr("corrected hours"),
	}, member)

	require.NoError(t, err)
	require.NotNil(t, updated.Hours)
	assert.Equal(t, 7.0, *updated.Hours)
	require.NotNil(t, updated.Note)
	assert.Equal(t, "corrected hours", *updated.Note)
	assert.Equal(t, WorkLogStatusPending, updated.Status)
}

func Test_UpdateWorkLog_AfterApproval_ReturnsConflict(t *testing.T) {
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)
	manager := users_testing.CreateTestUser(users_enums.UserRoleManager)
	workLog := createPendingWorkLog(t, member)

	_, err := GetWorkLogService().ApproveWorkLog(workLog.ID.String(), &ResolveWorkLogRequestDTO{}, manager)
	require.NoError(t, err)

	_, err = GetWorkLogService().UpdateWorkLog(workLog.ID.String(), &UpdateWorkLogRequestDTO{
		Hours: f64Ptr(1),
	}, member)

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
}

func Test_UpdateWorkLog_WithUnknownID_ReturnsNotFound(t *testing.T) {
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)

	_, err := GetWorkLogService().UpdateWorkLog(uuid.New().String(), &UpdateWorkLogRequestDTO{
		Hours: f64Ptr(1),
	}, member)

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func Test_DeleteWorkLog_WhilePending_Succeeds(t *testing.T) {
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)
	workLog := createPendingWorkLog(t, member)

	err := GetWorkLogService().DeleteWorkLog(workLog.ID.String(), member)
	require.NoError(t, err)

	_, err = GetWorkLogService().GetWorkLogByID(workLog.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func Test_DeleteWorkLog_AfterRejection_ReturnsConflict(t *testing.T) {
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)
	manager := users_testing.CreateTestUser(users_enums.UserRoleManager)
	workLog := createPendingWorkLog(t, member)

	_, err := GetWorkLogService().RejectWorkLog(workLog.ID.String(), &ResolveWorkLogRequestDTO{
		Note: strPtr("wrong task"),
	}, manager)
	require.NoError(t, err)

	err = GetWorkLogService().DeleteWorkLog(workLog.ID.String(), member)

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
}

func Test_ApproveWorkLog_ByMember_ReturnsPermissionDenied(t *testing.T) {
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)
	workLog := createPendingWorkLog(t, member)

	_, err := GetWorkLogService().ApproveWorkLog(workLog.ID.String(), &ResolveWorkLogRequestDTO{}, member)

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindPermissionDenied))
}

func Test_ApproveWorkLog_ByManager_CreatesApprovalRecord(t *testing.T) {
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)
	manager := users_testing.CreateTestUser(users_enums.UserRoleManager)
	workLog := createPendingWorkLog(t, member)

	approval, err := GetWorkLogService().ApproveWorkLog(workLog.ID.String(), &ResolveWorkLogRequestDTO{}, manager)

	require.NoError(t, err)
	assert.Equal(t, workLog.ID, approval.WorkLogID)
	assert.Equal(t, manager.ID, approval.ApprovedBy)
	assert.Equal(t, WorkLogStatusApproved, approval.Status)
	assert.Nil(t, approval.Note)

	resolved, err := GetWorkLogService().GetWorkLogByID(workLog.ID)
	require.NoError(t, err)
	assert.Equal(t, WorkLogStatusApproved, resolved.Status)

	stored, err := GetWorkLogService().GetApproval(workLog.ID.String())
	require.NoError(t, err)
	assert.Equal(t, approval.ID, stored.ID)
}

func Test_RejectWorkLog_WithEmptyNote_FailsBeforeAnyMutation(t *testing.T) {
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)
	manager := users_testing.CreateTestUser(users_enums.UserRoleManager)
	workLog := createPendingWorkLog(t, member)

	_, err := GetWorkLogService().RejectWorkLog(workLog.ID.String(), &ResolveWorkLogRequestDTO{
		Note: strPtr("   "),
	}, manager)

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	untouched, err := GetWorkLogService().GetWorkLogByID(workLog.ID)
	require.NoError(t, err)
	assert.Equal(t, WorkLogStatusPending, untouched.Status)

	_, err = GetWorkLogService().GetApproval(workLog.ID.String())
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func Test_RejectWorkLog_WithNote_CreatesRejectionRecord(t *testing.T) {
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)
	manager := users_testing.CreateTestUser(users_enums.UserRoleManager)
	workLog := createPendingWorkLog(t, member)

	approval, err := GetWorkLogService().RejectWorkLog(workLog.ID.String(), &ResolveWorkLogRequestDTO{
		Note: strPtr("quantity does not match the site report"),
	}, manager)

	require.NoError(t, err)
	assert.Equal(t, WorkLogStatusRejected, approval.Status)
	require.NotNil(t, approval.Note)
	assert.Equal(t, "quantity does not match the site report", *approval.Note)

	resolved, err := GetWorkLogService().GetWorkLogByID(workLog.ID)
	require.NoError(t, err)
	assert.Equal(t, WorkLogStatusRejected, resolved.Status)
}

func Test_ApproveWorkLog_AfterRejection_ReturnsConflictAndKeepsSingleApproval(t *testing.T) {
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)
	manager := users_testing.CreateTestUser(users_enums.UserRoleManager)
	workLog := createPendingWorkLog(t, member)

	rejection, err := GetWorkLogService().RejectWorkLog(workLog.ID.String(), &ResolveWorkLogRequestDTO{
		Note: strPtr("incomplete"),
	}, manager)
	require.NoError(t, err)

	_, err = GetWorkLogService().ApproveWorkLog(workLog.ID.String(), &ResolveWorkLogRequestDTO{}, manager)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))

	stored, err := GetWorkLogService().GetApproval(workLog.ID.String())
	require.NoError(t, err)
	assert.Equal(t, rejection.ID, stored.ID)
	assert.Equal(t, WorkLogStatusRejected, stored.Status)
}

func Test_ApproveWorkLog_ConcurrentManagers_ExactlyOneWins(t *testing.T) {
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)
	firstManager := users_testing.CreateTestUser(users_enums.UserRoleManager)
	secondManager := users_testing.CreateTestUser(users_enums.UserRoleManager)
	workLog := createPendingWorkLog(t, member)

	var waitGroup sync.WaitGroup
	errs := make([]error, 2)

	for i, manager := range []*users_models.User{firstManager, secondManager} {
		waitGroup.Add(1)
		go func(index int, actor *users_models.User) {
			defer waitGroup.Done()
			_, errs[index] = GetWorkLogService().ApproveWorkLog(
				workLog.ID.String(),
				&ResolveWorkLogRequestDTO{},
				actor,
			)
		}(i, manager)
	}
	waitGroup.Wait()

	succeeded := 0
	conflicted := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else if apperrors.IsKind(err, apperrors.KindConflict) {
			conflicted++
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, conflicted)

	resolved, err := GetWorkLogService().GetWorkLogByID(workLog.ID)
	require.NoError(t, err)
	assert.Equal(t, WorkLogStatusApproved, resolved.Status)

	stored, err := GetWorkLogService().GetApproval(workLog.ID.String())
	require.NoError(t, err)
	assert.Equal(t, WorkLogStatusApproved, stored.Status)
}

func Test_GetApproval_WhilePending_ReturnsNotFound(t *testing.T) {
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)
	workLog := createPendingWorkLog(t, member)

	_, err := GetWorkLogService().GetApproval(workLog.ID.String())

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func Test_GetPendingWorkLogs_ByMember_ReturnsPermissionDenied(t *testing.T) {
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)

	_, err := GetWorkLogService().GetPendingWorkLogs(member)

	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindPermissionDenied))
}

func Test_GetPendingWorkLogs_ByManager_IncludesPendingLog(t *testing.T) {
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)
	manager := users_testing.CreateTestUser(users_enums.UserRoleManager)
	workLog := createPendingWorkLog(t, member)

	pending, err := GetWorkLogService().GetPendingWorkLogs(manager)
	require.NoError(t, err)

	found := false
	for _, log := range pending {
		if log.ID == workLog.ID {
			found = true
			break
		}
	}
	assert.True(t, found)
}
