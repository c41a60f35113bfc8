package service

import (
	"context"
	"fmt"
	"time"

	"github.com/viola-academy/academy_app/internal/model"
	"github.com/viola-academy/academy_app/internal/repository"
	"go.uber.org/zap"
)

type BusService struct {
	busRepo *repository.BusRepository
	logger  *zap.Logger
	now     func() time.Time
}

func NewBusService(busRepo *repository.BusRepository, logger *zap.Logger) *BusService {
	return &BusService{busRepo: busRepo, logger: logger, now: time.Now}
}

// Route маршрут целиком, с телефоном водителя
func (s *BusService) Route(ctx context.Context) (model.BusRoute, error) {
	return s.busRepo.Route(ctx)
}

// SaveRoute перезаписывает маршрут
func (s *BusService) SaveRoute(ctx context.Context, route model.BusRoute) error {
	if err := s.busRepo.Save(ctx, route); err != nil {
		return fmt.Errorf("save bus route: %w", err)
	}
	s.logger.Info("bus route updated",
		zap.Int("morning_stops", len(route.Morning)),
		zap.Int("evening_stops", len(route.Evening)))
	return nil
}

// MorningTimeline утренний маршрут с отметками "уже проехали". Если админ
// вёл автобус вручную, пройденность берётся из его отметки, иначе
// сравнивается время остановки с текущим временем.
func (s *BusService) MorningTimeline(ctx context.Context) ([]model.TimelineStop, error) {
	route, err := s.busRepo.Route(ctx)
	if err != nil {
		return nil, fmt.Errorf("bus timeline: %w", err)
	}
	return s.timeline(route.Morning, route.CurrentStop), nil
}

// EveningTimeline вечерний маршрут, пройденность только по времени
func (s *BusService) EveningTimeline(ctx context.Context) ([]model.TimelineStop, error) {
	route, err := s.busRepo.Route(ctx)
	if err != nil {
		return nil, fmt.Errorf("bus timeline: %w", err)
	}
	return s.timeline(route.Evening, -1), nil
}

func (s *BusService) timeline(stops []model.BusStop, currentStop int) []model.TimelineStop {
	nowHM := s.now().Format("15:04")
	out := make([]model.TimelineStop, 0, len(stops))
	for i, stop := range stops {
		completed := false
		if currentStop >= 0 {
			completed = i <= currentStop
		} else {
			// время остановок хранится как "HH:MM", строки сравнимы
			completed = stop.Time <= nowHM
		}
		out = append(out, model.TimelineStop{BusStop: stop, Completed: completed})
	}
	return out
}

// UpdateLocation вручную отмечает, до какой утренней остановки доехал
// автобус; -1 сбрасывает отметку и возвращает расчёт по времени
func (s *BusService) UpdateLocation(ctx context.Context, stopIndex int) error {
	route, err := s.busRepo.Route(ctx)
	if err != nil {
		return fmt.Errorf("update bus location: %w", err)
	}
	if stopIndex < -1 || stopIndex >= len(route.Morning) {
		return ErrNotFound
	}
	route.CurrentStop = stopIndex
	if err := s.busRepo.Save(ctx, route); err != nil {
		return fmt.Errorf("update bus location: %w", err)
	}
	s.logger.Info("bus location updated", zap.Int("stop", stopIndex))
	return nil
}
