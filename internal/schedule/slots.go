package schedule

import "errors"

var (
	ErrInvalidWindow = errors.New("invalid day window")
	ErrGranularity   = errors.New("slot granularity must be positive")
)

// DayConfig описывает рабочее окно одного дня.
// Окно [Start, End] с включённой верхней границей: слот ровно в End
// генерируется. Перерыв — полуоткрытый интервал [BlackoutStart, BlackoutEnd).
type DayConfig struct {
	Start         TimeOfDay
	End           TimeOfDay
	BlackoutStart TimeOfDay
	BlackoutEnd   TimeOfDay
	// Шаг сетки в минутах.
	Granularity int
}

// Validate делает простую проверку конфигурации дня.
func (c DayConfig) Validate() error {
	if c.Granularity <= 0 {
		return ErrGranularity
	}
	if !c.Start.Valid() || !c.End.Valid() || c.End < c.Start {
		return ErrInvalidWindow
	}
	return nil
}

// SlotsFor генерирует упорядоченный список меток слотов для конфигурации дня.
// Чистая функция: одинаковый вход — одинаковый выход, без побочных эффектов.
//   - курсор идёт от Start с шагом Granularity, пока не превысит End
//     (слот ровно в End сохраняется);
//   - слоты, чьё начало попадает в [BlackoutStart, BlackoutEnd), отбрасываются.
func SlotsFor(c DayConfig) ([]string, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	slots := make([]string, 0, (int(c.End-c.Start)/c.Granularity)+1)
	for cur := c.Start; cur <= c.End; cur += TimeOfDay(c.Granularity) {
		if cur >= c.BlackoutStart && cur < c.BlackoutEnd {
			continue
		}
		slots = append(slots, cur.String())
	}
	return slots, nil
}
