package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Leganyst/reserva-core/internal/model"
	"github.com/Leganyst/reserva-core/internal/repository"
	"github.com/Leganyst/reserva-core/internal/schedule"
)

// Ошибки валидации входа. Отличаются от repository.ErrSlotTaken:
// это ошибки пользовательского ввода, до обращения к хранилищу.
var (
	ErrHolderNameRequired = errors.New("holder name is required")
	ErrSlotRequired       = errors.New("no slot selected")
	ErrSlotUnavailable    = errors.New("slot is not available")
)

// BookingRequest — одна попытка бронирования.
type BookingRequest struct {
	Date       string `json:"date"`
	Slot       string `json:"slot"`
	HolderName string `json:"holder_name"`
	Contact    string `json:"contact"`
	Note       string `json:"note"`
}

// BookingService прогоняет попытку через конвейер
// валидация → коммит → Confirmed | Rejected.
type BookingService struct {
	avail  *AvailabilityService
	repo   repository.ReservationRepository
	events repository.EventRepository
	log    zerolog.Logger
}

func NewBookingService(
	avail *AvailabilityService,
	repo repository.ReservationRepository,
	events repository.EventRepository,
	log zerolog.Logger,
) *BookingService {
	return &BookingService{
		avail:  avail,
		repo:   repo,
		events: events,
		log:    log,
	}
}

// Book выполняет одну попытку бронирования.
//
// Валидация: слот выбран, имя непустое после trim, слот присутствует в
// актуальном списке свободных (повторная проверка в момент коммита — список,
// показанный пользователю, мог устареть). Эта проверка — только префильтр;
// решает исход атомарная вставка в хранилище: при гонке ровно один вызов
// получает запись, остальные — repository.ErrSlotTaken.
// Автоматических повторов нет, пользователь выбирает другой слот сам.
func (s *BookingService) Book(ctx context.Context, req BookingRequest) (*model.Reservation, error) {
	name := strings.TrimSpace(req.HolderName)
	slot := strings.TrimSpace(req.Slot)

	if slot == "" {
		return nil, ErrSlotRequired
	}
	if name == "" {
		return nil, ErrHolderNameRequired
	}

	av, err := s.avail.ForDate(ctx, req.Date)
	if err != nil {
		return nil, err
	}
	if !contains(av.Available, slot) {
		return nil, ErrSlotUnavailable
	}

	res := &model.Reservation{
		Date:       req.Date,
		Slot:       slot,
		HolderName: name,
		Contact:    strings.TrimSpace(req.Contact),
		Note:       strings.TrimSpace(req.Note),
	}

	if err := s.repo.InsertIfAbsent(ctx, res); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			// Проигранная гонка: слот забрали между чтением и коммитом.
			s.appendEvent(ctx, &model.Event{
				EventType: model.EventTypeReservationConflict,
				Date:      req.Date,
				Details:   fmt.Sprintf("slot %s lost to a concurrent booking", slot),
			})
			s.avail.Invalidate(req.Date)
			return nil, repository.ErrSlotTaken
		}
		return nil, fmt.Errorf("commit reservation: %w", err)
	}

	// Сброс кэша до следующего чтения: занятый слот обязан исчезнуть
	// из available немедленно.
	s.avail.Invalidate(req.Date)

	s.appendEvent(ctx, &model.Event{
		EventType:     model.EventTypeReservationCreated,
		ReservationID: &res.ID,
		Date:          res.Date,
		Details:       fmt.Sprintf("slot %s booked by %s", res.Slot, res.HolderName),
	})

	s.log.Info().
		Str("date", res.Date).
		Str("slot", res.Slot).
		Msg("reservation confirmed")

	return res, nil
}

// PurgeDate — административная чистка всех броней даты.
// Возвращает число удалённых записей; кэш даты сбрасывается синхронно.
func (s *BookingService) PurgeDate(ctx context.Context, date string) (int64, error) {
	if _, err := time.Parse(schedule.DateLayout, date); err != nil {
		return 0, schedule.ErrBadDate
	}

	count, err := s.repo.DeleteForDate(ctx, date)
	if err != nil {
		return 0, fmt.Errorf("delete reservations: %w", err)
	}

	s.avail.Invalidate(date)

	if count > 0 {
		s.appendEvent(ctx, &model.Event{
			EventType: model.EventTypeDatePurged,
			Date:      date,
			Details:   fmt.Sprintf("%d reservations removed", count),
		})
	}

	s.log.Info().Str("date", date).Int64("deleted", count).Msg("date purged")
	return count, nil
}

// appendEvent пишет событие аудита. Сбой журнала не роняет операцию.
func (s *BookingService) appendEvent(ctx context.Context, ev *model.Event) {
	if s.events == nil {
		return
	}
	if err := s.events.Append(ctx, ev); err != nil {
		s.log.Warn().Err(err).Str("type", string(ev.EventType)).Msg("append audit event")
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
