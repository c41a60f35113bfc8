package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/viola-academy/academy_app/internal/model"
	"github.com/viola-academy/academy_app/internal/repository"
	"go.uber.org/zap"
)

type GalleryService struct {
	galleryRepo *repository.GalleryRepository
	logger      *zap.Logger
}

func NewGalleryService(galleryRepo *repository.GalleryRepository, logger *zap.Logger) *GalleryService {
	return &GalleryService{galleryRepo: galleryRepo, logger: logger}
}

// All вся галерея
func (s *GalleryService) All(ctx context.Context) ([]model.GalleryPhoto, error) {
	return s.galleryRepo.All(ctx)
}

// ForClass фотографии, видимые классу: общие плюс адресованные классу
func (s *GalleryService) ForClass(ctx context.Context, class string) ([]model.GalleryPhoto, error) {
	photos, err := s.galleryRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.GalleryPhoto, 0, len(photos))
	for _, p := range photos {
		if p.TargetClass == "" || p.TargetClass == class {
			out = append(out, p)
		}
	}
	return out, nil
}

// Add добавляет фотографию, новая встаёт в начало
func (s *GalleryService) Add(ctx context.Context, photo model.GalleryPhoto) (*model.GalleryPhoto, error) {
	if photo.URL == "" {
		return nil, ErrMissingFields
	}
	photos, err := s.galleryRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("add photo: %w", err)
	}
	photo.ID = uuid.NewString()
	photos = append([]model.GalleryPhoto{photo}, photos...)
	if err := s.galleryRepo.Save(ctx, photos); err != nil {
		return nil, fmt.Errorf("add photo: %w", err)
	}
	s.logger.Info("gallery photo added", zap.String("caption", photo.Caption))
	return &photo, nil
}

// Delete удаляет фотографию
func (s *GalleryService) Delete(ctx context.Context, id string) error {
	photos, err := s.galleryRepo.All(ctx)
	if err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}
	out := make([]model.GalleryPhoto, 0, len(photos))
	found := false
	for _, p := range photos {
		if p.ID == id {
			found = true
			continue
		}
		out = append(out, p)
	}
	if !found {
		return ErrNotFound
	}
	if err := s.galleryRepo.Save(ctx, out); err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}
	return nil
}
