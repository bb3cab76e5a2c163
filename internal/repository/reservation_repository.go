package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/reserva-core/internal/model"
)

// ErrSlotTaken возвращается, когда пара (date, slot) уже занята.
var ErrSlotTaken = errors.New("slot already taken")

type ReservationRepository interface {
	// Атомарно занять слот: вставка либо ErrSlotTaken, никакого
	// check-then-act на стороне приложения.
	InsertIfAbsent(ctx context.Context, r *model.Reservation) error
	// Брони одной даты, отсортированные по слоту.
	ListForDate(ctx context.Context, date string) ([]model.Reservation, error)
	// Все брони, отсортированные по (date, slot).
	ListAll(ctx context.Context) ([]model.Reservation, error)
	// Административная чистка даты. Возвращает число удалённых записей.
	DeleteForDate(ctx context.Context, date string) (int64, error)
}

// Реализация на GORM.
type GormReservationRepository struct {
	db *gorm.DB
}

func NewGormReservationRepository(db *gorm.DB) *GormReservationRepository {
	return &GormReservationRepository{db: db}
}

// InsertIfAbsent полагается на составной уникальный индекс (date, slot):
// проверка занятости и запись выполняются базой как одна операция.
// created_at проставляется здесь, с точностью до секунды.
func (r *GormReservationRepository) InsertIfAbsent(ctx context.Context, res *model.Reservation) error {
	if res.ID == uuid.Nil {
		res.ID = uuid.New()
	}
	res.CreatedAt = time.Now().UTC().Truncate(time.Second)

	if err := r.db.WithContext(ctx).Create(res).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrSlotTaken
		}
		return err
	}
	return nil
}

func (r *GormReservationRepository) ListForDate(ctx context.Context, date string) ([]model.Reservation, error) {
	var out []model.Reservation
	err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("slot ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormReservationRepository) ListAll(ctx context.Context) ([]model.Reservation, error) {
	var out []model.Reservation
	err := r.db.WithContext(ctx).
		Order("date ASC, slot ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormReservationRepository) DeleteForDate(ctx context.Context, date string) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Reservation{}, "date = ?", date)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
