package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-WashService/internal/domain"
)

// ErrInvalidMonth возвращается, когда месяц не в формате YYYY-MM
var ErrInvalidMonth = errors.New("schedule: invalid month, expected YYYY-MM")

// ParseMonth возвращает первый и последний день месяца (полночь UTC)
func ParseMonth(month string) (time.Time, time.Time, error) {
	first, err := time.Parse(domain.MonthFormat, strings.TrimSpace(month))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidMonth, month)
	}
	last := first.AddDate(0, 1, -1)
	return first, last, nil
}

// WeekStart возвращает воскресенье недели, в которую попадает дата
func WeekStart(date time.Time) time.Time {
	day := domain.CivilDate(date)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// MonthBounds возвращает полуоткрытый интервал [первое число месяца, первое число следующего)
// в UTC для месяца, содержащего дату
func MonthBounds(date time.Time) (time.Time, time.Time) {
	y, m, _ := date.Date()
	from := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

// DaysIn возвращает все календарные даты в [from, to] включительно
func DaysIn(from, to time.Time) []time.Time {
	from, to = domain.CivilDate(from), domain.CivilDate(to)
	if to.Before(from) {
		return nil
	}

	days := make([]time.Time, 0, int(to.Sub(from).Hours()/24)+1)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
