package schedule

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-WashService/internal/domain"
)

// ValidationResult результат проверки недельного минимума часов
type ValidationResult struct {
	OK       bool
	Failures []domain.WeeklyHoursFailure
}

var minutesPerHour = decimal.NewFromInt(60)

// ValidateWeeklyHours группирует дни по неделям (неделя начинается в воскресенье)
// и помечает недели, в которых сумма часов меньше minHours.
// Суммируются минуты, до 2 знаков округляются только часы в отчете.
func ValidateWeeklyHours(days []domain.EffectiveDay, minHours float64) ValidationResult {
	totals := make(map[time.Time]decimal.Decimal)
	for _, day := range days {
		key := WeekStart(day.Date)
		totals[key] = totals[key].Add(dayMinutes(day))
	}

	weeks := make([]time.Time, 0, len(totals))
	for week := range totals {
		weeks = append(weeks, week)
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].Before(weeks[j]) })

	minimum := decimal.NewFromFloat(minHours).Mul(minutesPerHour)
	result := ValidationResult{OK: true}

	for _, week := range weeks {
		total := totals[week]
		if total.LessThan(minimum) {
			hours, _ := total.Div(minutesPerHour).Round(2).Float64()
			result.Failures = append(result.Failures, domain.WeeklyHoursFailure{
				WeekStart: week,
				Hours:     hours,
			})
		}
	}
	result.OK = len(result.Failures) == 0

	return result
}

// dayMinutes считает минуты по окну дня, а без окна берет Hours
func dayMinutes(day domain.EffectiveDay) decimal.Decimal {
	if day.StartTime != nil && day.EndTime != nil {
		return decimal.NewFromInt(int64(MinutesBetween(day.StartTime, day.EndTime)))
	}
	return decimal.NewFromFloat(day.Hours).Mul(minutesPerHour)
}
