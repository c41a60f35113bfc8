package service

import (
	"context"
	"fmt"
	"time"

	"github.com/viola-academy/academy_app/internal/model"
	"github.com/viola-academy/academy_app/internal/repository"
	"go.uber.org/zap"
)

type HomeworkService struct {
	homeworkRepo *repository.HomeworkRepository
	logger       *zap.Logger
	now          func() time.Time
}

func NewHomeworkService(homeworkRepo *repository.HomeworkRepository, logger *zap.Logger) *HomeworkService {
	return &HomeworkService{homeworkRepo: homeworkRepo, logger: logger, now: time.Now}
}

// ForClass задания класса, новые первыми
func (s *HomeworkService) ForClass(ctx context.Context, class string) ([]model.Homework, error) {
	return s.homeworkRepo.ByClass(ctx, class)
}

// All все задания
func (s *HomeworkService) All(ctx context.Context) ([]model.Homework, error) {
	return s.homeworkRepo.All(ctx)
}

// Post публикует задание. Идентификатор это момент создания в миллисекундах,
// новое задание встаёт в начало списка.
func (s *HomeworkService) Post(ctx context.Context, hw model.Homework) (*model.Homework, error) {
	if hw.Class == "" || hw.Subject == "" || hw.Description == "" || hw.DueDate == "" {
		return nil, ErrMissingFields
	}
	items, err := s.homeworkRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("post homework: %w", err)
	}
	hw.ID = s.now().UnixMilli()
	items = append([]model.Homework{hw}, items...)
	if err := s.homeworkRepo.Save(ctx, items); err != nil {
		return nil, fmt.Errorf("post homework: %w", err)
	}
	s.logger.Info("homework posted",
		zap.String("class", hw.Class),
		zap.String("subject", hw.Subject),
		zap.Int64("id", hw.ID))
	return &hw, nil
}

// Delete удаляет задание по точному совпадению идентификатора
func (s *HomeworkService) Delete(ctx context.Context, id int64) error {
	items, err := s.homeworkRepo.All(ctx)
	if err != nil {
		return fmt.Errorf("delete homework: %w", err)
	}
	out := make([]model.Homework, 0, len(items))
	found := false
	for _, hw := range items {
		if hw.ID == id {
			found = true
			continue
		}
		out = append(out, hw)
	}
	if !found {
		return ErrNotFound
	}
	if err := s.homeworkRepo.Save(ctx, out); err != nil {
		return fmt.Errorf("delete homework: %w", err)
	}
	return nil
}
