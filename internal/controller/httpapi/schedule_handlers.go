package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/viola-academy/academy_app/internal/render"
)

type slotRequest struct {
	Day     int    `json:"day"`
	Time    string `json:"time" validate:"required"`
	Subject string `json:"subject"`
	Teacher string `json:"teacher"`
}

func (s *Server) handleFullSchedule(w http.ResponseWriter, r *http.Request) {
	schedule, err := s.schedule.Full(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, schedule)
}

func (s *Server) handleClassTimetable(w http.ResponseWriter, r *http.Request) {
	entries, err := s.schedule.ClassTimetable(r.Context(), chi.URLParam(r, "class"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// handleTimetableImage отдаёт недельную сетку класса картинкой
func (s *Server) handleTimetableImage(w http.ResponseWriter, r *http.Request) {
	class := chi.URLParam(r, "class")
	entries, err := s.schedule.ClassTimetable(r.Context(), class)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	png, err := render.Timetable(class, entries)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "render_failed")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

func (s *Server) handleTeacherAssignments(w http.ResponseWriter, r *http.Request) {
	entries, err := s.schedule.TeacherAssignments(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleSetSlot(w http.ResponseWriter, r *http.Request) {
	var req slotRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "missing_fields")
		return
	}
	err := s.schedule.SetSlot(r.Context(), chi.URLParam(r, "class"), req.Day, req.Time, req.Subject, req.Teacher)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRemoveSlot(w http.ResponseWriter, r *http.Request) {
	day, err := strconv.Atoi(r.URL.Query().Get("day"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_day")
		return
	}
	at := r.URL.Query().Get("time")
	if at == "" {
		writeError(w, http.StatusBadRequest, "missing_fields")
		return
	}
	if err := s.schedule.RemoveSlot(r.Context(), chi.URLParam(r, "class"), day, at); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
