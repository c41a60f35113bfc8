package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/viola-academy/academy_app/internal/model"
)

func (s *Server) handleListAnnouncements(w http.ResponseWriter, r *http.Request) {
	msgs, err := s.broadcasts.All(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

func (s *Server) handleStudentFeed(w http.ResponseWriter, r *http.Request) {
	msgs, err := s.broadcasts.ForStudent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

func (s *Server) handlePublishAnnouncement(w http.ResponseWriter, r *http.Request) {
	var msg model.Announcement
	if err := decodeJSON(r, &msg); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	published, err := s.broadcasts.Publish(r.Context(), msg)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, published)
}

func (s *Server) handleDeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	if err := s.broadcasts.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListGallery(w http.ResponseWriter, r *http.Request) {
	var (
		photos []model.GalleryPhoto
		err    error
	)
	if class := r.URL.Query().Get("class"); class != "" {
		photos, err = s.gallery.ForClass(r.Context(), class)
	} else {
		photos, err = s.gallery.All(r.Context())
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, photos)
}

func (s *Server) handleAddPhoto(w http.ResponseWriter, r *http.Request) {
	var photo model.GalleryPhoto
	if err := decodeJSON(r, &photo); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	added, err := s.gallery.Add(r.Context(), photo)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, added)
}

func (s *Server) handleDeletePhoto(w http.ResponseWriter, r *http.Request) {
	if err := s.gallery.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
