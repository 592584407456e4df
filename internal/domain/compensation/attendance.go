package compensation

import "github.com/shopspring/decimal"

var oneHalf = decimal.NewFromFloat(0.5)

// AggregateAttendance reduces one employee's attendance rows for a month into
// present/absent/leave counts and the list of late/early violations. Half days
// contribute 0.5 to the present count. Approved leave counts as present only
// when the organization's includeLeaves setting is on. Pending and not-marked
// rows never count as present.
func AggregateAttendance(days []AttendanceDay, includeLeaves bool) AttendanceSummary {
	summary := AttendanceSummary{PresentDays: decimal.Zero}
	for _, day := range days {
		switch day.Status {
		case AttendancePresent:
			summary.PresentDays = summary.PresentDays.Add(decimal.NewFromInt(1))
		case AttendanceHalfDay:
			summary.HalfDays++
			summary.PresentDays = summary.PresentDays.Add(oneHalf)
		case AttendanceAbsent:
			summary.AbsentDays++
		case AttendanceOnLeave:
			summary.LeaveDays++
			if includeLeaves && day.LeaveApproved {
				summary.PresentDays = summary.PresentDays.Add(decimal.NewFromInt(1))
			}
		}

		if day.LateMinutes > 0 || day.EarlyMinutes > 0 {
			summary.Violations = append(summary.Violations, Violation{
				Date:         day.Date,
				LateMinutes:  day.LateMinutes,
				EarlyMinutes: day.EarlyMinutes,
			})
		}
	}
	return summary
}
