package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// day_overrides — отклонения от дневных настроек по умолчанию.
// Конфигурация дня не хранится целиком: хранится только отличие
// (укороченный день, закрытый день, сдвинутый перерыв).
type DayOverride struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	// Чистая дата без времени — datatypes.Date.
	Date datatypes.Date `gorm:"type:date;not null;uniqueIndex"`

	// Более ранний конец рабочего окна, "HH:MM". nil — без изменения.
	DayEnd *string `gorm:"type:varchar(5)"`

	// Дата полностью закрыта для записи.
	Closed bool `gorm:"not null;default:false"`

	Reason string `gorm:"type:text"`

	// Дополнительные правила в JSON, например сдвинутый перерыв:
	// {"blackout_start":"12:30","blackout_end":"13:30"}.
	Rules datatypes.JSON `gorm:"type:json"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// OverrideRules — разобранное содержимое DayOverride.Rules.
type OverrideRules struct {
	BlackoutStart string `json:"blackout_start,omitempty"`
	BlackoutEnd   string `json:"blackout_end,omitempty"`
}
