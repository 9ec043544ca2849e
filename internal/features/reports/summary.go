package reports

import (
	"fieldtrack/internal/features/worklogs"
)

// ReportSummary is a derived value, never persisted. The same fold
// backs the dashboard, project, user, and company views.
type ReportSummary struct {
	TotalHours float64 `json:"total_hours"`
	TotalQty   float64 `json:"total_qty"`
	Pending    int     `json:"pending"`
	Approved   int     `json:"approved"`
	Rejected   int     `json:"rejected"`
}

// Summarize folds a set of work logs into totals and per-status counts.
// The result is order-independent. Logs carrying a status outside the
// three known values contribute to the sums but to none of the
// counters; unknown statuses are forward-compatible, not an error.
func Summarize(workLogs []*worklogs.WorkLog) ReportSummary {
	summary := ReportSummary{}

	for _, workLog := range workLogs {
		if workLog.Hours != nil {
			summary.TotalHours += *workLog.Hours
		}
		if workLog.QtyDone != nil {
			summary.TotalQty += *workLog.QtyDone
		}

		switch workLog.Status {
		case worklogs.WorkLogStatusPending:
			summary.Pending++
		case worklogs.WorkLogStatusApproved:
			summary.Approved++
		case worklogs.WorkLogStatusRejected:
			summary.Rejected++
		}
	}

	return summary
}

// DashboardSummary is the widened variant shown on the landing page:
// approved work is additionally broken out by hours and quantity.
type DashboardSummary struct {
	TotalHours       float64 `json:"total_hours"`
	TotalQty         float64 `json:"total_qty"`
	PendingApprovals int     `json:"pending_approvals"`
	ApprovedHours    float64 `json:"approved_hours"`
	ApprovedQty      float64 `json:"approved_qty"`
	RejectedCount    int     `json:"rejected_count"`
}

func SummarizeDashboard(workLogs []*worklogs.WorkLog) DashboardSummary {
	summary := DashboardSummary{}

	for _, workLog := range workLogs {
		hours := 0.0
		if workLog.Hours != nil {
			hours = *workLog.Hours
		}
		qty := 0.0
		if workLog.QtyDone != nil {
			qty = *workLog.QtyDone
		}

		summary.TotalHours += hours
		summary.TotalQty += qty

		switch workLog.Status {
		case worklogs.WorkLogStatusPending:
			summary.PendingApprovals++
		case worklogs.WorkLogStatusApproved:
			summary.ApprovedHours += hours
			summary.ApprovedQty += qty
		case worklogs.WorkLogStatusRejected:
			summary.RejectedCount++
		}
	}

	return summary
}
