package reports

import (
	"testing"

	"fieldtrack/internal/features/worklogs"

	"github.com/stretchr/testify/assert"
)

func f64Ptr(value float64) *float64 { return &value }

func workLogWith(status worklogs.WorkLogStatus, hours *float64, qty *float64) *worklogs.WorkLog {
	return &worklogs.WorkLog{
		Status:  status,
		Hours:   hours,
		QtyDone: qty,
	}
}

func Test_Summarize_EmptyInput_ReturnsZeroValue(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, ReportSummary{}, summary)
}

func Test_Summarize_SumsHoursAndQtyTreatingMissingAsZero(t *testing.T) {
	logs := []*worklogs.WorkLog{
		workLogWith(worklogs.WorkLogStatusPending, f64Ptr(2.5), f64Ptr(10)),
		workLogWith(worklogs.WorkLogStatusApproved, nil, f64Ptr(4)),
		workLogWith(worklogs.WorkLogStatusRejected, f64Ptr(1.5), nil),
	}

	summary := Summarize(logs)

	assert.Equal(t, 4.0, summary.TotalHours)
	assert.Equal(t, 14.0, summary.TotalQty)
}

func Test_Summarize_CountsEachLogInExactlyOneBucket(t *testing.T) {
	logs := []*worklogs.WorkLog{
		workLogWith(worklogs.WorkLogStatusPending, nil, nil),
		workLogWith(worklogs.WorkLogStatusPending, nil, nil),
		workLogWith(worklogs.WorkLogStatusApproved, nil, nil),
		workLogWith(worklogs.WorkLogStatusRejected, nil, nil),
	}

	summary := Summarize(logs)

	assert.Equal(t, 2, summary.Pending)
	assert.Equal(t, 1, summary.Approved)
	assert.Equal(t, 1, summary.Rejected)
	assert.Equal(t, len(logs), summary.Pending+summary.Approved+summary.Rejected)
}

func Test_Summarize_UnknownStatus_CountsInNoBucketButKeepsSums(t *testing.T) {
	logs := []*worklogs.WorkLog{
		workLogWith(worklogs.WorkLogStatusApproved, f64Ptr(3), nil),
		workLogWith(worklogs.WorkLogStatus("archived"), f64Ptr(5), f64Ptr(2)),
	}

	summary := Summarize(logs)

	assert.Equal(t, 8.0, summary.TotalHours)
	assert.Equal(t, 2.0, summary.TotalQty)
	assert.Equal(t, 1, summary.Approved)
	assert.Equal(t, 0, summary.Pending)
	assert.Equal(t, 0, summary.Rejected)
}

func Test_Summarize_ResultIsOrderIndependent(t *testing.T) {
	logs := []*worklogs.WorkLog{
		workLogWith(worklogs.WorkLogStatusPending, f64Ptr(1), f64Ptr(2)),
		workLogWith(worklogs.WorkLogStatusApproved, f64Ptr(3), f64Ptr(4)),
		workLogWith(worklogs.WorkLogStatusRejected, f64Ptr(5), f64Ptr(6)),
	}
	reversed := []*worklogs.WorkLog{logs[2], logs[1], logs[0]}

	assert.Equal(t, Summarize(logs), Summarize(reversed))
}

func Test_SummarizeDashboard_BreaksOutApprovedWork(t *testing.T) {
	logs := []*worklogs.WorkLog{
		workLogWith(worklogs.WorkLogStatusPending, f64Ptr(2), f64Ptr(1)),
		workLogWith(worklogs.WorkLogStatusApproved, f64Ptr(3), f64Ptr(7)),
		workLogWith(worklogs.WorkLogStatusApproved, f64Ptr(4), nil),
		workLogWith(worklogs.WorkLogStatusRejected, f64Ptr(1), f64Ptr(2)),
	}

	summary := SummarizeDashboard(logs)

	assert.Equal(t, 10.0, summary.TotalHours)
	assert.Equal(t, 10.0, summary.TotalQty)
	assert.Equal(t, 1, summary.PendingApprovals)
	assert.Equal(t, 7.0, summary.ApprovedHours)
	assert.Equal(t, 7.0, summary.ApprovedQty)
	assert.Equal(t, 1, summary.RejectedCount)
}
