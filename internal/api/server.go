package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/Leganyst/reserva-core/internal/auth"
	"github.com/Leganyst/reserva-core/internal/repository"
	"github.com/Leganyst/reserva-core/internal/service"
)

// Server — HTTP-поверхность ядра бронирования.
// Публичная часть: список дат, доступность, создание брони.
// Админ-часть за гейтом: список броней, экспорт, чистка даты.
type Server struct {
	avail   *service.AvailabilityService
	booking *service.BookingService
	repo    repository.ReservationRepository
	gate    *auth.Gate
	log     zerolog.Logger
}

func NewServer(
	avail *service.AvailabilityService,
	booking *service.BookingService,
	repo repository.ReservationRepository,
	gate *auth.Gate,
	log zerolog.Logger,
) *Server {
	return &Server{
		avail:   avail,
		booking: booking,
		repo:    repo,
		gate:    gate,
		log:     log,
	}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/dates", s.handleListDates)
		r.Get("/availability/{date}", s.handleAvailability)
		r.Post("/reservations", s.handleCreateReservation)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Post("/login", s.handleAdminLogin)
		r.Post("/logout", s.handleAdminLogout)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAdmin)
			r.Get("/reservations", s.handleAdminList)
			r.Get("/export", s.handleAdminExport)
			r.Delete("/reservations/{date}", s.handleAdminPurge)
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("http request")
	})
}

func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.gate.Authorized(r) {
			writeUnauthorized(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}
