// Package report holds the pure aggregation and calendar projection logic
// behind the dashboard and calendar endpoints. Functions here never touch
// storage and never fail for well-typed input; unknown status values fall
// into the totals (or the default color) instead of erroring.
package report

import "happenly/internal/domain"

// RSVPCounts counts guests by RSVP status. Guests with a status outside
// the three known values count toward Total only.
func RSVPCounts(guests []*domain.Guest) domain.RSVPBreakdown {
	var b domain.RSVPBreakdown
	for _, g := range guests {
		switch g.RSVPStatus {
		case domain.RSVPAccepted:
			b.Accepted++
		case domain.RSVPPending:
			b.Pending++
		case domain.RSVPDeclined:
			b.Declined++
		}
		b.Total++
	}
	return b
}

// BudgetSummary sums vendor costs against the event budget. A nil vendor
// cost counts as zero. Remaining is not clamped and goes negative on
// overspend.
func BudgetSummary(budget float64, vendors []*domain.Vendor) domain.BudgetSummary {
	var spend float64
	for _, v := range vendors {
		if v.Cost != nil {
			spend += *v.Cost
		}
	}
	return domain.BudgetSummary{
		Budget:    budget,
		Spend:     spend,
		Remaining: budget - spend,
	}
}

// TaskCounts counts tasks by status. Tasks with a status outside the three
// known values count toward Total only.
func TaskCounts(tasks []*domain.Task) domain.TaskBreakdown {
	var b domain.TaskBreakdown
	for _, t := range tasks {
		switch t.Status {
		case domain.TaskCompleted:
			b.Completed++
		case domain.TaskInProgress:
			b.InProgress++
		case domain.TaskNotStarted:
			b.NotStarted++
		}
		b.Total++
	}
	return b
}
