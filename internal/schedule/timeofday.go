package schedule

import (
	"fmt"
	"time"
)

// TimeOfDay — время суток в минутах от полуночи.
// Сравнение значений совпадает с хронологическим порядком.
type TimeOfDay int

const minutesPerDay = 24 * 60

// ParseTimeOfDay разбирает строку вида "HH:MM" (24-часовой формат).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("parse time of day %q: %w", s, err)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

// String возвращает каноническую метку "HH:MM" с ведущими нулями,
// поэтому лексикографический порядок меток совпадает с хронологическим.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Valid проверяет, что значение попадает в сутки.
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < minutesPerDay
}
