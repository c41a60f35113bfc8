package repository

import (
	"context"

	"github.com/viola-academy/academy_app/internal/kvstore"
	"github.com/viola-academy/academy_app/internal/model"
	"github.com/viola-academy/academy_app/internal/repository/base"
)

// ContentRepository хранит наполнение главной страницы и язык интерфейса
type ContentRepository struct {
	store kvstore.Store
	base  *base.Repository
}

func NewContentRepository(store kvstore.Store) *ContentRepository {
	return &ContentRepository{store: store, base: base.NewRepository(store)}
}

// Home загружает наполнение главной страницы, при отсутствии отдаёт демо-наполнение
func (r *ContentRepository) Home(ctx context.Context) (model.HomeContent, error) {
	var content model.HomeContent
	ok, err := r.base.LoadJSON(ctx, KeyHomeData, &content)
	if err != nil {
		return model.HomeContent{}, err
	}
	if !ok {
		return DefaultHomeContent(), nil
	}
	return content, nil
}

// SaveHome записывает наполнение главной страницы
func (r *ContentRepository) SaveHome(ctx context.Context, content model.HomeContent) error {
	return r.base.SaveJSON(ctx, KeyHomeData, content)
}

// Language возвращает сохранённый язык интерфейса, по умолчанию "en"
func (r *ContentRepository) Language(ctx context.Context) (string, error) {
	lang, ok, err := r.store.Get(ctx, KeyLanguage)
	if err != nil {
		return "", err
	}
	if !ok || lang == "" {
		return "en", nil
	}
	return lang, nil
}

// SetLanguage сохраняет язык интерфейса
func (r *ContentRepository) SetLanguage(ctx context.Context, lang string) error {
	return r.store.Set(ctx, KeyLanguage, lang)
}

// Reset стирает все данные приложения из хранилища
func (r *ContentRepository) Reset(ctx context.Context) error {
	return r.store.Clear(ctx)
}
