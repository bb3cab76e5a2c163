package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Leganyst/reserva-core/internal/export"
	"github.com/Leganyst/reserva-core/internal/model"
	"github.com/Leganyst/reserva-core/internal/paging"
)

// POST /admin/login — вход по общей фразе доступа.
func (s *Server) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Phrase string `json:"phrase"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errBody("input_validation", "malformed request body"))
		return
	}

	if !s.gate.Check(req.Phrase) {
		s.log.Warn().Msg("admin login rejected")
		writeUnauthorized(w)
		return
	}
	if err := s.gate.Grant(w); err != nil {
		s.log.Error().Err(err).Msg("issue admin session")
		writeJSON(w, http.StatusInternalServerError, errBody("storage", "could not issue session"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// POST /admin/logout
func (s *Server) handleAdminLogout(w http.ResponseWriter, _ *http.Request) {
	s.gate.Revoke(w)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GET /admin/reservations?date=&page=&page_size= — брони с пагинацией.
// Без date отдаются все записи в порядке (date, slot).
func (s *Server) handleAdminList(w http.ResponseWriter, r *http.Request) {
	var (
		records []model.Reservation
		err     error
	)

	if date := r.URL.Query().Get("date"); date != "" {
		records, err = s.repo.ListForDate(r.Context(), date)
	} else {
		records, err = s.repo.ListAll(r.Context())
	}
	if err != nil {
		writeError(w, err)
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))

	writeJSON(w, http.StatusOK, paging.Paginate(records, page, pageSize))
}

// GET /admin/export?format=xlsx|csv — выгрузка всех броней файлом.
func (s *Server) handleAdminExport(w http.ResponseWriter, r *http.Request) {
	records, err := s.repo.ListAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "xlsx"
	}

	switch format {
	case "xlsx":
		w.Header().Set("Content-Type",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="reservations.xlsx"`)
		if err := export.WriteWorkbook(w, records, "Reservations (all dates)"); err != nil {
			s.log.Error().Err(err).Msg("write workbook")
		}
	case "csv":
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="reservations.csv"`)
		if err := export.WriteCSV(w, records); err != nil {
			s.log.Error().Err(err).Msg("write csv")
		}
	default:
		writeJSON(w, http.StatusBadRequest, errBody("input_validation", "unknown export format"))
	}
}

// DELETE /admin/reservations/{date} — чистка даты.
func (s *Server) handleAdminPurge(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	count, err := s.booking.PurgeDate(r.Context(), date)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": count})
}
