package repository

import (
	"context"

	"github.com/viola-academy/academy_app/internal/kvstore"
	"github.com/viola-academy/academy_app/internal/model"
	"github.com/viola-academy/academy_app/internal/repository/base"
)

type AnnouncementRepository struct {
	base *base.Repository
}

func NewAnnouncementRepository(store kvstore.Store) *AnnouncementRepository {
	return &AnnouncementRepository{base: base.NewRepository(store)}
}

// All загружает рассылки. Основной ключ viola_announcements; если он пуст,
// один раз читается устаревший viola_notifications, чтобы не потерять
// сообщения, записанные старым экраном учителя.
func (r *AnnouncementRepository) All(ctx context.Context) ([]model.Announcement, error) {
	var msgs []model.Announcement
	ok, err := r.base.LoadJSON(ctx, KeyAnnouncements, &msgs)
	if err != nil {
		return nil, err
	}
	if ok {
		return msgs, nil
	}
	if _, err := r.base.LoadJSON(ctx, keyNotificationsLegacy, &msgs); err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []model.Announcement{}
	}
	return msgs, nil
}

// Save записывает рассылки под основным ключом
func (r *AnnouncementRepository) Save(ctx context.Context, msgs []model.Announcement) error {
	return r.base.SaveJSON(ctx, KeyAnnouncements, msgs)
}
