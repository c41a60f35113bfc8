package repository

import (
	"context"

	"github.com/viola-academy/academy_app/internal/kvstore"
	"github.com/viola-academy/academy_app/internal/model"
	"github.com/viola-academy/academy_app/internal/repository/base"
)

type GalleryRepository struct {
	base *base.Repository
}

func NewGalleryRepository(store kvstore.Store) *GalleryRepository {
	return &GalleryRepository{base: base.NewRepository(store)}
}

// All загружает галерею, при пустом хранилище возвращает демо-фотографии
func (r *GalleryRepository) All(ctx context.Context) ([]model.GalleryPhoto, error) {
	var photos []model.GalleryPhoto
	ok, err := r.base.LoadJSON(ctx, KeyGallery, &photos)
	if err != nil {
		return nil, err
	}
	if !ok {
		return DefaultGallery(), nil
	}
	return photos, nil
}

// Save записывает галерею целиком
func (r *GalleryRepository) Save(ctx context.Context, photos []model.GalleryPhoto) error {
	return r.base.SaveJSON(ctx, KeyGallery, photos)
}
