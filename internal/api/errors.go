package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Leganyst/reserva-core/internal/repository"
	"github.com/Leganyst/reserva-core/internal/schedule"
	"github.com/Leganyst/reserva-core/internal/service"
)

// writeJSON пишет JSON-ответ с заданным кодом.
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeUnauthorized(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, errBody("unauthorized", "unauthorized"))
}

func errBody(code, msg string) map[string]string {
	return map[string]string{"code": code, "error": msg}
}

// writeError отображает таксономию ошибок ядра на HTTP-коды.
// Каждый исход различим по полю code: валидация ввода, конфликт слота,
// ошибка конфигурации даты и сбой хранилища не смешиваются.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrHolderNameRequired),
		errors.Is(err, service.ErrSlotRequired),
		errors.Is(err, service.ErrSlotUnavailable):
		writeJSON(w, http.StatusBadRequest, errBody("input_validation", err.Error()))

	case errors.Is(err, repository.ErrSlotTaken):
		// Проигранная гонка — отдельный исход, не ошибка ввода.
		writeJSON(w, http.StatusConflict, errBody("slot_conflict", "slot was just taken by someone else"))

	case errors.Is(err, schedule.ErrBadDate):
		writeJSON(w, http.StatusBadRequest, errBody("configuration", err.Error()))

	case errors.Is(err, schedule.ErrDateNotAllowed),
		errors.Is(err, schedule.ErrDayClosed):
		writeJSON(w, http.StatusNotFound, errBody("configuration", err.Error()))

	case errors.Is(err, schedule.ErrInvalidWindow),
		errors.Is(err, schedule.ErrGranularity):
		writeJSON(w, http.StatusInternalServerError, errBody("configuration", err.Error()))

	default:
		writeJSON(w, http.StatusInternalServerError, errBody("storage", "storage unavailable"))
	}
}
