package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/viola-academy/academy_app/internal/model"
)

type amountRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type photoRequest struct {
	Photo string `json:"photo" validate:"required"`
}

func (s *Server) handleListStudents(w http.ResponseWriter, r *http.Request) {
	var (
		students []model.Student
		err      error
	)
	switch {
	case r.URL.Query().Get("q") != "":
		students, err = s.students.Search(r.Context(), r.URL.Query().Get("q"))
	case r.URL.Query().Get("class") != "":
		students, err = s.students.ByClass(r.Context(), r.URL.Query().Get("class"))
	default:
		students, err = s.students.List(r.Context())
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, students)
}

func (s *Server) handleGetStudent(w http.ResponseWriter, r *http.Request) {
	student, err := s.students.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, student)
}

func (s *Server) handleCreateStudent(w http.ResponseWriter, r *http.Request) {
	var student model.Student
	if err := decodeJSON(r, &student); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	created, err := s.students.Create(r.Context(), student)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateStudent(w http.ResponseWriter, r *http.Request) {
	var student model.Student
	if err := decodeJSON(r, &student); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	student.ID = chi.URLParam(r, "id")
	updated, err := s.students.Update(r.Context(), student)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteStudent(w http.ResponseWriter, r *http.Request) {
	if err := s.students.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRecordPayment(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "missing_fields")
		return
	}
	student, err := s.students.RecordPayment(r.Context(), chi.URLParam(r, "id"), req.Amount)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, student)
}

func (s *Server) handleTopUpWallet(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "missing_fields")
		return
	}
	student, err := s.students.TopUpWallet(r.Context(), chi.URLParam(r, "id"), req.Amount)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, student)
}

func (s *Server) handleUpdatePhoto(w http.ResponseWriter, r *http.Request) {
	var req photoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "missing_fields")
		return
	}
	student, err := s.students.UpdatePhoto(r.Context(), chi.URLParam(r, "id"), req.Photo)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, student)
}
