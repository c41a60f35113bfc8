package service

import (
	"context"
	"fmt"

	"github.com/viola-academy/academy_app/internal/model"
	"github.com/viola-academy/academy_app/internal/repository"
	"go.uber.org/zap"
)

// ContentService главная страница, язык интерфейса и сброс данных
type ContentService struct {
	contentRepo *repository.ContentRepository
	logger      *zap.Logger
}

func NewContentService(contentRepo *repository.ContentRepository, logger *zap.Logger) *ContentService {
	return &ContentService{contentRepo: contentRepo, logger: logger}
}

// Home наполнение главной страницы
func (s *ContentService) Home(ctx context.Context) (model.HomeContent, error) {
	return s.contentRepo.Home(ctx)
}

// SaveHome перезаписывает наполнение главной страницы
func (s *ContentService) SaveHome(ctx context.Context, content model.HomeContent) error {
	if err := s.contentRepo.SaveHome(ctx, content); err != nil {
		return fmt.Errorf("save home content: %w", err)
	}
	s.logger.Info("home content updated")
	return nil
}

// Language текущий язык интерфейса
func (s *ContentService) Language(ctx context.Context) (string, error) {
	return s.contentRepo.Language(ctx)
}

// SetLanguage сохраняет язык, поддерживаются "en" и "ar"
func (s *ContentService) SetLanguage(ctx context.Context, lang string) error {
	if lang != "en" && lang != "ar" {
		return ErrMissingFields
	}
	return s.contentRepo.SetLanguage(ctx, lang)
}

// Reset стирает все данные приложения. Демо-данные вернутся при
// первом чтении соответствующих разделов.
func (s *ContentService) Reset(ctx context.Context) error {
	if err := s.contentRepo.Reset(ctx); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	s.logger.Warn("all application data cleared")
	return nil
}
