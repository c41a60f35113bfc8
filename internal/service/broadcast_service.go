package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/viola-academy/academy_app/internal/model"
	"github.com/viola-academy/academy_app/internal/repository"
	"go.uber.org/zap"
)

// BroadcastService рассылки учителя и администратора
type BroadcastService struct {
	announcementRepo *repository.AnnouncementRepository
	studentRepo      *repository.StudentRepository
	logger           *zap.Logger
	now              func() time.Time
}

func NewBroadcastService(
	announcementRepo *repository.AnnouncementRepository,
	studentRepo *repository.StudentRepository,
	logger *zap.Logger,
) *BroadcastService {
	return &BroadcastService{
		announcementRepo: announcementRepo,
		studentRepo:      studentRepo,
		logger:           logger,
		now:              time.Now,
	}
}

// Publish публикует сообщение, новое встаёт в начало ленты.
// Личное сообщение требует адресата.
func (s *BroadcastService) Publish(ctx context.Context, msg model.Announcement) (*model.Announcement, error) {
	if msg.Title == "" || msg.Body == "" {
		return nil, ErrMissingFields
	}
	if msg.IsPrivate && msg.TargetStudentID == "" {
		return nil, ErrMissingFields
	}
	msgs, err := s.announcementRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("publish: %w", err)
	}
	msg.ID = uuid.NewString()
	if msg.Date == "" {
		msg.Date = s.now().Format("2006-01-02")
	}
	msgs = append([]model.Announcement{msg}, msgs...)
	if err := s.announcementRepo.Save(ctx, msgs); err != nil {
		return nil, fmt.Errorf("publish: %w", err)
	}
	s.logger.Info("announcement published",
		zap.String("title", msg.Title),
		zap.String("class", msg.TargetClass),
		zap.Bool("private", msg.IsPrivate))
	return &msg, nil
}

// All вся лента, для админа и учителя
func (s *BroadcastService) All(ctx context.Context) ([]model.Announcement, error) {
	return s.announcementRepo.All(ctx)
}

// ForStudent лента, видимая ученику: фильтр по классу и адресату
func (s *BroadcastService) ForStudent(ctx context.Context, studentID string) ([]model.Announcement, error) {
	student, err := s.studentRepo.ByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("feed for student: %w", err)
	}
	if student == nil {
		return nil, ErrNotFound
	}
	msgs, err := s.announcementRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("feed for student: %w", err)
	}
	out := make([]model.Announcement, 0, len(msgs))
	for i := range msgs {
		if msgs[i].VisibleTo(student.Grade, student.ID) {
			out = append(out, msgs[i])
		}
	}
	return out, nil
}

// Delete удаляет сообщение из ленты
func (s *BroadcastService) Delete(ctx context.Context, id string) error {
	msgs, err := s.announcementRepo.All(ctx)
	if err != nil {
		return fmt.Errorf("delete announcement: %w", err)
	}
	out := make([]model.Announcement, 0, len(msgs))
	found := false
	for _, m := range msgs {
		if m.ID == id {
			found = true
			continue
		}
		out = append(out, m)
	}
	if !found {
		return ErrNotFound
	}
	if err := s.announcementRepo.Save(ctx, out); err != nil {
		return fmt.Errorf("delete announcement: %w", err)
	}
	return nil
}
