package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/viola-academy/academy_app/internal/config"
	"github.com/viola-academy/academy_app/internal/controller/httpapi"
	"github.com/viola-academy/academy_app/internal/kvstore"
	"github.com/viola-academy/academy_app/internal/repository"
	"github.com/viola-academy/academy_app/internal/service"
)

// Run собирает приложение и держит HTTP-сервер до сигнала остановки
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := kvstore.NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer store.Close()
	logger.Info("connected to redis", zap.String("addr", cfg.RedisAddr))

	if err := NewSeeder(store, logger).Run(ctx); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	server := httpapi.NewServer(
		service.NewSessionService(
			repository.NewSessionRepository(store),
			repository.NewStudentRepository(store),
			logger,
		),
		service.NewStudentService(repository.NewStudentRepository(store), logger),
		service.NewTeacherService(repository.NewTeacherRepository(store), logger),
		service.NewScheduleService(repository.NewScheduleRepository(store), logger),
		service.NewAttendanceService(
			repository.NewAttendanceRepository(store),
			repository.NewStudentRepository(store),
			logger,
		),
		service.NewGradeService(repository.NewGradeRepository(store), logger),
		service.NewHomeworkService(repository.NewHomeworkRepository(store), logger),
		service.NewBroadcastService(
			repository.NewAnnouncementRepository(store),
			repository.NewStudentRepository(store),
			logger,
		),
		service.NewGalleryService(repository.NewGalleryRepository(store), logger),
		service.NewShopService(
			store,
			repository.NewOrderRepository(store),
			repository.NewStudentRepository(store),
			logger,
		),
		service.NewBusService(repository.NewBusRepository(store), logger),
		service.NewContentService(repository.NewContentRepository(store), logger),
		logger,
	)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
