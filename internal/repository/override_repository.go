package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Leganyst/reserva-core/internal/model"
	"github.com/Leganyst/reserva-core/internal/schedule"
)

type OverrideRepository interface {
	// schedule.OverrideSource: отклонение для даты или nil.
	OverrideFor(ctx context.Context, date string) (*schedule.Override, error)
	// Создать или обновить отклонение по дате.
	Upsert(ctx context.Context, ov *model.DayOverride) error
	List(ctx context.Context) ([]model.DayOverride, error)
}

type GormOverrideRepository struct {
	db *gorm.DB
}

func NewGormOverrideRepository(db *gorm.DB) *GormOverrideRepository {
	return &GormOverrideRepository{db: db}
}

func (r *GormOverrideRepository) OverrideFor(ctx context.Context, date string) (*schedule.Override, error) {
	day, err := time.Parse(schedule.DateLayout, date)
	if err != nil {
		return nil, schedule.ErrBadDate
	}

	var row model.DayOverride
	err = r.db.WithContext(ctx).
		First(&row, "date = ?", datatypes.Date(day)).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toScheduleOverride(&row)
}

func toScheduleOverride(row *model.DayOverride) (*schedule.Override, error) {
	ov := &schedule.Override{Closed: row.Closed}

	if row.DayEnd != nil {
		end, err := schedule.ParseTimeOfDay(*row.DayEnd)
		if err != nil {
			return nil, fmt.Errorf("day override %s: %w", row.ID, err)
		}
		ov.End = &end
	}

	if len(row.Rules) > 0 {
		var rules model.OverrideRules
		if err := json.Unmarshal(row.Rules, &rules); err != nil {
			return nil, fmt.Errorf("day override %s: rules: %w", row.ID, err)
		}
		if rules.BlackoutStart != "" {
			t, err := schedule.ParseTimeOfDay(rules.BlackoutStart)
			if err != nil {
				return nil, fmt.Errorf("day override %s: %w", row.ID, err)
			}
			ov.BlackoutStart = &t
		}
		if rules.BlackoutEnd != "" {
			t, err := schedule.ParseTimeOfDay(rules.BlackoutEnd)
			if err != nil {
				return nil, fmt.Errorf("day override %s: %w", row.ID, err)
			}
			ov.BlackoutEnd = &t
		}
	}

	return ov, nil
}

func (r *GormOverrideRepository) Upsert(ctx context.Context, ov *model.DayOverride) error {
	if ov.ID == uuid.Nil {
		ov.ID = uuid.New()
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"day_end", "closed", "reason", "rules", "updated_at"}),
		}).
		Create(ov).Error
}

func (r *GormOverrideRepository) List(ctx context.Context) ([]model.DayOverride, error) {
	var out []model.DayOverride
	if err := r.db.WithContext(ctx).Order("date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
