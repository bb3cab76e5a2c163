package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/reserva-core/internal/model"
)

// EventRepository пишет события аудита. Журнал только дописывается.
type EventRepository interface {
	Append(ctx context.Context, ev *model.Event) error
	ListForDate(ctx context.Context, date string) ([]model.Event, error)
}

type GormEventRepository struct {
	db *gorm.DB
}

func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

func (r *GormEventRepository) Append(ctx context.Context, ev *model.Event) error {
	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Create(ev).Error
}

func (r *GormEventRepository) ListForDate(ctx context.Context, date string) ([]model.Event, error) {
	var out []model.Event
	err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("created_at ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
