package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

const timeLayout = "15:04:05"

// ErrInvalidTimeString возвращается, когда строка не является временем суток
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString время суток в нормализованном формате HH:MM:SS.
// Нормализованные значения можно сравнивать лексикографически.
type TimeString string

// NewTimeString создает TimeString из time.Time (берется только время суток)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString парсит "HH:MM" или "HH:MM:SS" и нормализует к "HH:MM:SS"
func NewTimeStringFromString(s string) (TimeString, error) {
	s = strings.TrimSpace(s)
	if len(s) == len("15:04") {
		s += ":00"
	}

	parsed, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	return NewTimeString(parsed), nil
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// IsZero проверяет, что время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат времени
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// Seconds возвращает количество секунд от начала суток
func (t TimeString) Seconds() (int, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*3600 + parsed.Minute()*60 + parsed.Second(), nil
}

// AddMinutes сдвигает время на указанное количество минут в пределах суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	secs, err := t.Seconds()
	if err != nil {
		return "", err
	}

	total := secs + minutes*60
	if total < 0 || total >= 24*3600 {
		return "", fmt.Errorf("%w: %s%+dm leaves the day", ErrInvalidTimeString, t, minutes)
	}

	return TimeString(fmt.Sprintf("%02d:%02d:%02d", total/3600, total%3600/60, total%60)), nil
}

// IsBefore проверяет, что t раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t < other
}

// IsAfter проверяет, что t позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t > other
}

// MinutesUntil возвращает количество минут от t до end. Отрицательный интервал дает 0.
func (t TimeString) MinutesUntil(end TimeString) int {
	from, err := t.Seconds()
	if err != nil {
		return 0
	}
	to, err := end.Seconds()
	if err != nil {
		return 0
	}
	if to <= from {
		return 0
	}
	return (to - from) / 60
}

// OnDate возвращает момент времени t в указанную дату и часовой пояс
func (t TimeString) OnDate(date time.Time, loc *time.Location) (time.Time, error) {
	secs, err := t.Seconds()
	if err != nil {
		return time.Time{}, err
	}
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, secs/3600, secs%3600/60, secs%60, 0, loc), nil
}

// HHMM возвращает время в коротком формате HH:MM
func (t TimeString) HHMM() string {
	if len(t) < 5 {
		return string(t)
	}
	return string(t[:5])
}

// Scan реализует sql.Scanner для колонок типа TIME
func (t *TimeString) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidTimeString, src)
	}
}

func (t *TimeString) scanString(s string) error {
	// PostgreSQL может вернуть дробные секунды: 10:00:00.000000
	if idx := strings.IndexByte(s, '.'); idx > 0 {
		s = s[:idx]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}
