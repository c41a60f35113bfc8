package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/viola-academy/academy_app/internal/model"
)

type addSubjectRequest struct {
	Name string `json:"name" validate:"required"`
}

type setScoreRequest struct {
	StudentID string `json:"student_id" validate:"required"`
	SubjectID string `json:"subject_id" validate:"required"`
	Score     string `json:"score"`
}

// parseTerm семестр из пути, всё кроме "second" считается первым
func parseTerm(r *http.Request) model.Term {
	if chi.URLParam(r, "term") == string(model.TermSecond) {
		return model.TermSecond
	}
	return model.TermFirst
}

func (s *Server) handleListSubjects(w http.ResponseWriter, r *http.Request) {
	subjects, err := s.grades.Subjects(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, subjects)
}

func (s *Server) handleAddSubject(w http.ResponseWriter, r *http.Request) {
	var req addSubjectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "missing_fields")
		return
	}
	subject, err := s.grades.AddSubject(r.Context(), req.Name)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, subject)
}

func (s *Server) handleRemoveSubject(w http.ResponseWriter, r *http.Request) {
	if err := s.grades.RemoveSubject(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGradebook(w http.ResponseWriter, r *http.Request) {
	book, err := s.grades.Gradebook(r.Context(), parseTerm(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, book)
}

func (s *Server) handleStudentGrades(w http.ResponseWriter, r *http.Request) {
	row, err := s.grades.StudentGrades(r.Context(), parseTerm(r), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func (s *Server) handleSetScore(w http.ResponseWriter, r *http.Request) {
	var req setScoreRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "missing_fields")
		return
	}
	if err := s.grades.SetScore(r.Context(), parseTerm(r), req.StudentID, req.SubjectID, req.Score); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
