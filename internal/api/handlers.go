package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Leganyst/reserva-core/internal/service"
)

// GET /api/dates — даты, открытые для записи.
// Пустой список разрешённых дат означает запись без ограничения по датам.
func (s *Server) handleListDates(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"dates":      s.avail.Rules().AllowedDates(),
		"restricted": len(s.avail.Rules().AllowedDates()) > 0,
	})
}

// GET /api/availability/{date} — разбиение слотов даты на свободные и занятые.
func (s *Server) handleAvailability(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	av, err := s.avail.ForDate(r.Context(), date)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, av)
}

// POST /api/reservations — попытка занять слот.
// 201 с записью при успехе, 409 при проигранной гонке, 400 при ошибке ввода.
func (s *Server) handleCreateReservation(w http.ResponseWriter, r *http.Request) {
	var req service.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errBody("input_validation", "malformed request body"))
		return
	}

	res, err := s.booking.Book(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}
