package model

import (
	"time"

	"github.com/google/uuid"
)

// reservations — подтверждённые брони.
// Составной уникальный индекс (date, slot) — единственный механизм защиты
// от двойного бронирования: вставка и проверка занятости выполняются базой
// как одна атомарная операция.
type Reservation struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	// ISO-дата yyyy-mm-dd.
	Date string `gorm:"type:varchar(10);not null;uniqueIndex:ux_reservations_date_slot,priority:1" json:"date"`
	// Метка слота HH:MM.
	Slot string `gorm:"type:varchar(5);not null;uniqueIndex:ux_reservations_date_slot,priority:2" json:"slot"`

	// Имя и фамилия того, кто бронирует. Обязательное поле.
	HolderName string `gorm:"type:varchar(255);not null" json:"holder_name"`

	// Необязательные контакт и комментарий; сохраняются как есть.
	Contact string `gorm:"type:varchar(255)" json:"contact,omitempty"`
	Note    string `gorm:"type:text" json:"note,omitempty"`

	// Проставляется хранилищем в момент коммита, далее неизменно.
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
