package model

import (
	"time"

	"github.com/google/uuid"
)

// Тип события аудита.
type EventType string

const (
	EventTypeReservationCreated  EventType = "reservation_created"
	EventTypeReservationConflict EventType = "reservation_conflict"
	EventTypeDatePurged          EventType = "date_purged"
)

// events — события аудита
type Event struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	EventType EventType `gorm:"type:varchar(64);not null;index"`

	CreatedAt time.Time `gorm:"not null;index"`

	ReservationID *uuid.UUID `gorm:"type:uuid;index"`

	// Дата, к которой относится событие (конфликт, чистка дня).
	Date string `gorm:"type:varchar(10);index"`

	Details string `gorm:"type:text"`
}
