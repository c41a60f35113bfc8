package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/viola-academy/academy_app/internal/kvstore"
	"github.com/viola-academy/academy_app/internal/repository"
)

func newContentService(t *testing.T) (*ContentService, kvstore.Store) {
	t.Helper()
	store := kvstore.NewMemoryStore()
	return NewContentService(repository.NewContentRepository(store), zap.NewNop()), store
}

func TestLanguage(t *testing.T) {
	ctx := context.Background()
	svc, _ := newContentService(t)

	lang, err := svc.Language(ctx)
	require.NoError(t, err)
	require.Equal(t, "en", lang)

	require.NoError(t, svc.SetLanguage(ctx, "ar"))
	lang, err = svc.Language(ctx)
	require.NoError(t, err)
	require.Equal(t, "ar", lang)

	require.ErrorIs(t, svc.SetLanguage(ctx, "fr"), ErrMissingFields)
}

func TestHomeContentDefaultsAndSave(t *testing.T) {
	ctx := context.Background()
	svc, _ := newContentService(t)

	content, err := svc.Home(ctx)
	require.NoError(t, err)
	require.Equal(t, "About Us", content.About.Title)

	content.About.Title = "Who We Are"
	require.NoError(t, svc.SaveHome(ctx, content))

	content, err = svc.Home(ctx)
	require.NoError(t, err)
	require.Equal(t, "Who We Are", content.About.Title)
}

// Сброс стирает хранилище, разделы возвращаются к демо-данным
func TestReset(t *testing.T) {
	ctx := context.Background()
	svc, store := newContentService(t)

	require.NoError(t, svc.SetLanguage(ctx, "ar"))
	require.NoError(t, svc.Reset(ctx))

	_, ok, err := store.Get(ctx, repository.KeyLanguage)
	require.NoError(t, err)
	require.False(t, ok)

	lang, err := svc.Language(ctx)
	require.NoError(t, err)
	require.Equal(t, "en", lang)
}
