package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

var (
	ErrBadDate        = errors.New("date must be in YYYY-MM-DD format")
	ErrDateNotAllowed = errors.New("date is not open for booking")
	ErrDayClosed      = errors.New("day is closed")
)

// Override — отклонение от дневных настроек по умолчанию для конкретной даты.
// Нулевые указатели означают «без изменений».
type Override struct {
	// День полностью закрыт для записи.
	Closed bool
	// Укороченный день: более ранний конец рабочего окна.
	End *TimeOfDay
	// Сдвинутый перерыв.
	BlackoutStart *TimeOfDay
	BlackoutEnd   *TimeOfDay
}

// OverrideSource отдаёт отклонение для даты или nil, если его нет.
type OverrideSource interface {
	OverrideFor(ctx context.Context, date string) (*Override, error)
}

// Rules вычисляет конфигурацию дня для даты: настройки по умолчанию плюс
// таблица отклонений и необязательный закрытый список разрешённых дат.
// Конфигурация дня нигде не хранится — всегда выводится заново.
type Rules struct {
	Defaults DayConfig
	// Отсортированные ISO-даты; пустой срез — ограничения нет.
	Allowed   []string
	Overrides OverrideSource
}

// AllowedDates возвращает копию списка разрешённых дат.
func (r *Rules) AllowedDates() []string {
	out := make([]string, len(r.Allowed))
	copy(out, r.Allowed)
	return out
}

// DateAllowed проверяет дату против закрытого списка, если он задан.
func (r *Rules) DateAllowed(date string) bool {
	if len(r.Allowed) == 0 {
		return true
	}
	for _, d := range r.Allowed {
		if d == date {
			return true
		}
	}
	return false
}

// ConfigFor возвращает эффективную конфигурацию дня для даты.
// Ошибки конфигурации (недопустимая дата, закрытый день, пустое окно)
// возвращаются до какой-либо генерации слотов.
func (r *Rules) ConfigFor(ctx context.Context, date string) (DayConfig, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return DayConfig{}, ErrBadDate
	}
	if !r.DateAllowed(date) {
		return DayConfig{}, ErrDateNotAllowed
	}

	cfg := r.Defaults

	if r.Overrides != nil {
		ov, err := r.Overrides.OverrideFor(ctx, date)
		if err != nil {
			return DayConfig{}, fmt.Errorf("load day override: %w", err)
		}
		if ov != nil {
			if ov.Closed {
				return DayConfig{}, ErrDayClosed
			}
			// Укороченный день имеет приоритет над концом по умолчанию;
			// перерыв применяется независимо от него.
			if ov.End != nil {
				cfg.End = *ov.End
			}
			if ov.BlackoutStart != nil {
				cfg.BlackoutStart = *ov.BlackoutStart
			}
			if ov.BlackoutEnd != nil {
				cfg.BlackoutEnd = *ov.BlackoutEnd
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return DayConfig{}, err
	}
	return cfg, nil
}
