package compensation

import "time"

// CalculateWorkingDays derives the working-days summary for a month from the
// weekly-off policy and the organization holiday list. Holidays that fall on a
// weekend are not subtracted a second time. The summary is always recomputed,
// never persisted.
func CalculateWorkingDays(year int, month time.Month, policy WeeklyOffPolicy, holidays []Holiday) (WorkingDaysSummary, error) {
	weekends, err := WeekendDates(year, month, policy)
	if err != nil {
		return WorkingDaysSummary{}, err
	}

	summary := WorkingDaysSummary{
		TotalDays:    DaysInMonth(year, month),
		WeekendCount: len(weekends),
	}

	seen := make(map[int]bool)
	for _, holiday := range holidays {
		if holiday.Date.Year() != year || holiday.Date.Month() != month {
			continue
		}
		day := holiday.Date.Day()
		if seen[day] || weekends[day] {
			continue
		}
		seen[day] = true
		summary.HolidayCount++
	}

	summary.WorkingDays = summary.TotalDays - summary.WeekendCount - summary.HolidayCount
	if summary.WorkingDays < 0 {
		summary.WorkingDays = 0
		summary.Warnings = append(summary.Warnings, WarningNegativeWorkingDays)
	}
	return summary, nil
}
