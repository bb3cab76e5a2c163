package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Leganyst/reserva-core/internal/repository"
	"github.com/Leganyst/reserva-core/internal/schedule"
)

// Availability — разбиение слотов даты на свободные и занятые.
// Инварианты: available ∪ taken = все сгенерированные слоты даты,
// available ∩ taken = ∅, порядок available — порядок генератора.
type Availability struct {
	Date      string   `json:"date"`
	Available []string `json:"available"`
	Taken     []string `json:"taken"`
}

// AvailabilityService считает разбиение по дате поверх генератора слотов
// и хранилища броней. Держит кэш по датам; кэш — только оптимизация
// задержки, корректность обеспечивает уникальный индекс хранилища.
type AvailabilityService struct {
	rules *schedule.Rules
	repo  repository.ReservationRepository
	log   zerolog.Logger

	mu    sync.Mutex
	cache map[string]*Availability
	// Поколение даты; растёт при каждой инвалидации. Снимок, начатый до
	// инвалидации, не имеет права попасть в кэш после неё.
	gen map[string]uint64
}

func NewAvailabilityService(
	rules *schedule.Rules,
	repo repository.ReservationRepository,
	log zerolog.Logger,
) *AvailabilityService {
	return &AvailabilityService{
		rules: rules,
		repo:  repo,
		log:   log,
		cache: make(map[string]*Availability),
		gen:   make(map[string]uint64),
	}
}

// Rules отдаёт правила календаря (для списка разрешённых дат и валидации).
func (s *AvailabilityService) Rules() *schedule.Rules {
	return s.rules
}

// ForDate возвращает разбиение {available, taken} для даты.
// Ошибки конфигурации (дата вне списка, закрытый день) приходят
// до обращения к хранилищу.
func (s *AvailabilityService) ForDate(ctx context.Context, date string) (*Availability, error) {
	s.mu.Lock()
	if cached, ok := s.cache[date]; ok {
		s.mu.Unlock()
		return cached, nil
	}
	gen := s.gen[date]
	s.mu.Unlock()

	av, err := s.compute(ctx, date)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	// Дату могли инвалидировать, пока снимок считался: кэшировать такой
	// снимок нельзя, следующий читатель пересчитает заново.
	if s.gen[date] == gen {
		s.cache[date] = av
	}
	s.mu.Unlock()
	return av, nil
}

func (s *AvailabilityService) compute(ctx context.Context, date string) (*Availability, error) {
	cfg, err := s.rules.ConfigFor(ctx, date)
	if err != nil {
		return nil, err
	}

	slots, err := schedule.SlotsFor(cfg)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.ListForDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	taken := make(map[string]struct{}, len(records))
	takenList := make([]string, 0, len(records))
	for _, r := range records {
		taken[r.Slot] = struct{}{}
		takenList = append(takenList, r.Slot)
	}

	available := make([]string, 0, len(slots))
	for _, slot := range slots {
		if _, ok := taken[slot]; !ok {
			available = append(available, slot)
		}
	}

	return &Availability{Date: date, Available: available, Taken: takenList}, nil
}

// Invalidate синхронно сбрасывает кэш даты. Вызывается каждой успешной
// записью, затрагивающей дату, до того как будет обслужено следующее чтение.
func (s *AvailabilityService) Invalidate(date string) {
	s.mu.Lock()
	delete(s.cache, date)
	s.gen[date]++
	s.mu.Unlock()
	s.log.Debug().Str("date", date).Msg("availability cache invalidated")
}
