package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/viola-academy/academy_app/internal/model"
)

func (s *Server) handleListHomework(w http.ResponseWriter, r *http.Request) {
	var (
		items []model.Homework
		err   error
	)
	if class := r.URL.Query().Get("class"); class != "" {
		items, err = s.homework.ForClass(r.Context(), class)
	} else {
		items, err = s.homework.All(r.Context())
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handlePostHomework(w http.ResponseWriter, r *http.Request) {
	var hw model.Homework
	if err := decodeJSON(r, &hw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	posted, err := s.homework.Post(r.Context(), hw)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, posted)
}

func (s *Server) handleDeleteHomework(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id")
		return
	}
	if err := s.homework.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
