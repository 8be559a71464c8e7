package schedule

import (
	"time"

	"github.com/m04kA/SMC-WashService/internal/domain"
	"github.com/m04kA/SMC-WashService/pkg/types"
)

// ResolveMonth накладывает исключения на недельный шаблон и возвращает
// итоговое расписание на каждый день в [monthStart, monthEnd].
// Функция чистая: одинаковые входы дают одинаковый результат.
func ResolveMonth(
	template []domain.WeeklyTemplateRow,
	exceptions []domain.ScheduleException,
	monthStart, monthEnd time.Time,
	defaultZip string,
) []domain.EffectiveDay {
	byWeekday := make(map[time.Weekday]domain.WeeklyTemplateRow, len(template))
	for _, row := range template {
		byWeekday[row.Weekday] = row
	}

	byDate := make(map[time.Time]domain.ScheduleException, len(exceptions))
	for _, ex := range exceptions {
		byDate[domain.CivilDate(ex.ServiceDate)] = ex
	}

	dates := DaysIn(monthStart, monthEnd)
	days := make([]domain.EffectiveDay, 0, len(dates))

	for _, date := range dates {
		day := domain.EffectiveDay{
			Date:    date,
			Weekday: date.Weekday(),
			Zip:     defaultZip,
		}

		base, hasBase := byWeekday[day.Weekday]
		if hasBase {
			day.IsWorking = base.IsWorking
			day.StartTime = copyTime(base.StartTime)
			day.EndTime = copyTime(base.EndTime)
			if base.Zip != "" {
				day.Zip = base.Zip
			}
		}
		if ex, ok := byDate[date]; ok && ex.Applies() {
			if ex.Zip != nil && *ex.Zip != "" {
				day.Zip = *ex.Zip
			}

			if ex.IsDayOff {
				day.IsWorking = false
				day.StartTime = nil
				day.EndTime = nil
			} else {
				day.IsWorking = true
				if ex.StartTime != nil {
					day.StartTime = copyTime(ex.StartTime)
				}
				if ex.EndTime != nil {
					day.EndTime = copyTime(ex.EndTime)
				}
			}
		}

		if !day.IsWorking {
			day.StartTime = nil
			day.EndTime = nil
		}
		day.Hours = HoursBetween(day.StartTime, day.EndTime)

		days = append(days, day)
	}

	return days
}

// HoursBetween возвращает длительность интервала в часах без округления.
// Пустой или отрицательный интервал дает 0.
func HoursBetween(start, end *types.TimeString) float64 {
	return float64(MinutesBetween(start, end)) / 60
}

// MinutesBetween возвращает длительность интервала в минутах
func MinutesBetween(start, end *types.TimeString) int {
	if start == nil || end == nil {
		return 0
	}
	return start.MinutesUntil(*end)
}

func copyTime(t *types.TimeString) *types.TimeString {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
