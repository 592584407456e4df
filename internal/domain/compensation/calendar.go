package compensation

import "time"

// WeekendDates returns the day-of-month numbers classified as weekend for the
// given month under the weekly-off policy.
func WeekendDates(year int, month time.Month, policy WeeklyOffPolicy) (map[int]bool, error) {
	if year < 1900 || year > 2200 || month < time.January || month > time.December {
		return nil, ErrInvalidMonth
	}

	weekends := make(map[int]bool)
	total := DaysInMonth(year, month)
	for day := 1; day <= total; day++ {
		weekday := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Weekday()
		switch policy.Kind {
		case WeeklyOffOddEvenSaturday:
			if weekday == time.Sunday {
				weekends[day] = true
			}
			if weekday == time.Saturday && saturdayParityMatches(day, policy.SaturdayParity) {
				weekends[day] = true
			}
		case WeeklyOffCustomDays:
			for _, off := range policy.CustomDays {
				if weekday == off {
					weekends[day] = true
				}
			}
		default:
			if weekday == time.Saturday || weekday == time.Sunday {
				weekends[day] = true
			}
		}
	}
	return weekends, nil
}

// DaysInMonth returns the calendar length of the month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// saturdayParityMatches reports whether the Saturday falling on the given day
// of month belongs to the configured parity. Ordinal is 1+((day-1)/7), so the
// 1st/3rd/5th Saturdays are odd. Parity defaults to odd when unset.
func saturdayParityMatches(day int, parity string) bool {
	ordinal := 1 + (day-1)/7
	if parity == SaturdayParityEven {
		return ordinal%2 == 0
	}
	return ordinal%2 == 1
}
