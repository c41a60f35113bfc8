package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/viola-academy/academy_app/internal/model"
)

type markRequest struct {
	StudentID string `json:"student_id" validate:"required"`
	Status    string `json:"status" validate:"required"`
}

type markAllRequest struct {
	Class  string `json:"class" validate:"required"`
	Status string `json:"status" validate:"required"`
}

func (s *Server) handleAttendanceForDate(w http.ResponseWriter, r *http.Request) {
	record, err := s.attendance.ForDate(r.Context(), chi.URLParam(r, "date"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleSaveAttendance(w http.ResponseWriter, r *http.Request) {
	var record model.AttendanceRecord
	if err := decodeJSON(r, &record); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	if err := s.attendance.Save(r.Context(), chi.URLParam(r, "date"), record); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMarkAttendance(w http.ResponseWriter, r *http.Request) {
	var req markRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "missing_fields")
		return
	}
	err := s.attendance.Mark(r.Context(), chi.URLParam(r, "date"), req.StudentID, model.AttendanceStatus(req.Status))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMarkAllAttendance(w http.ResponseWriter, r *http.Request) {
	var req markAllRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "missing_fields")
		return
	}
	record, err := s.attendance.MarkAll(r.Context(), chi.URLParam(r, "date"), req.Class, model.AttendanceStatus(req.Status))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleAttendanceStats(w http.ResponseWriter, r *http.Request) {
	class := r.URL.Query().Get("class")
	if class == "" {
		writeError(w, http.StatusBadRequest, "missing_fields")
		return
	}
	stats, err := s.attendance.Stats(r.Context(), chi.URLParam(r, "date"), class)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
