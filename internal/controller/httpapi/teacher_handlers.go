package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/viola-academy/academy_app/internal/model"
)

func (s *Server) handleListTeachers(w http.ResponseWriter, r *http.Request) {
	teachers, err := s.teachers.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, teachers)
}

func (s *Server) handleCreateTeacher(w http.ResponseWriter, r *http.Request) {
	var teacher model.Teacher
	if err := decodeJSON(r, &teacher); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	created, err := s.teachers.Create(r.Context(), teacher)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateTeacher(w http.ResponseWriter, r *http.Request) {
	var teacher model.Teacher
	if err := decodeJSON(r, &teacher); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	teacher.ID = chi.URLParam(r, "id")
	updated, err := s.teachers.Update(r.Context(), teacher)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteTeacher(w http.ResponseWriter, r *http.Request) {
	if err := s.teachers.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
