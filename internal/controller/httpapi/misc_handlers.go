package httpapi

import (
	"net/http"

	"github.com/viola-academy/academy_app/internal/model"
)

type busLocationRequest struct {
	Stop int `json:"stop" validate:"gte=-1"`
}

type languageRequest struct {
	Language string `json:"language" validate:"required"`
}

func (s *Server) handleBusRoute(w http.ResponseWriter, r *http.Request) {
	route, err := s.bus.Route(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, route)
}

func (s *Server) handleSaveBusRoute(w http.ResponseWriter, r *http.Request) {
	var route model.BusRoute
	if err := decodeJSON(r, &route); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	if err := s.bus.SaveRoute(r.Context(), route); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMorningTimeline(w http.ResponseWriter, r *http.Request) {
	stops, err := s.bus.MorningTimeline(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stops)
}

func (s *Server) handleEveningTimeline(w http.ResponseWriter, r *http.Request) {
	stops, err := s.bus.EveningTimeline(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stops)
}

func (s *Server) handleBusLocation(w http.ResponseWriter, r *http.Request) {
	var req busLocationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	if err := s.bus.UpdateLocation(r.Context(), req.Stop); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHomeContent(w http.ResponseWriter, r *http.Request) {
	content, err := s.content.Home(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, content)
}

func (s *Server) handleSaveHomeContent(w http.ResponseWriter, r *http.Request) {
	var content model.HomeContent
	if err := decodeJSON(r, &content); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	if err := s.content.SaveHome(r.Context(), content); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetLanguage(w http.ResponseWriter, r *http.Request) {
	lang, err := s.content.Language(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"language": lang})
}

func (s *Server) handleSetLanguage(w http.ResponseWriter, r *http.Request) {
	var req languageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "missing_fields")
		return
	}
	if err := s.content.SetLanguage(r.Context(), req.Language); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if err := s.content.Reset(r.Context()); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
