package service

import (
	"context"
	"fmt"

	"github.com/viola-academy/academy_app/internal/model"
	"github.com/viola-academy/academy_app/internal/repository"
	"go.uber.org/zap"
)

type AttendanceService struct {
	attendanceRepo *repository.AttendanceRepository
	studentRepo    *repository.StudentRepository
	logger         *zap.Logger
}

func NewAttendanceService(
	attendanceRepo *repository.AttendanceRepository,
	studentRepo *repository.StudentRepository,
	logger *zap.Logger,
) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		studentRepo:    studentRepo,
		logger:         logger,
	}
}

// ForDate отметки за дату
func (s *AttendanceService) ForDate(ctx context.Context, date string) (model.AttendanceRecord, error) {
	if date == "" {
		return nil, ErrMissingFields
	}
	return s.attendanceRepo.Load(ctx, date)
}

// Mark ставит одну отметку, остальные отметки дня сохраняются
func (s *AttendanceService) Mark(ctx context.Context, date, studentID string, status model.AttendanceStatus) error {
	if date == "" || studentID == "" {
		return ErrMissingFields
	}
	if !model.ValidAttendanceStatus(status) {
		return ErrInvalidStatus
	}
	record, err := s.attendanceRepo.Load(ctx, date)
	if err != nil {
		return fmt.Errorf("mark attendance: %w", err)
	}
	record[studentID] = status
	if err := s.attendanceRepo.Save(ctx, date, record); err != nil {
		return fmt.Errorf("mark attendance: %w", err)
	}
	return nil
}

// MarkAll ставит один статус всем ученикам класса за дату
func (s *AttendanceService) MarkAll(ctx context.Context, date, class string, status model.AttendanceStatus) (model.AttendanceRecord, error) {
	if date == "" || class == "" {
		return nil, ErrMissingFields
	}
	if !model.ValidAttendanceStatus(status) {
		return nil, ErrInvalidStatus
	}
	students, err := s.studentRepo.ByClass(ctx, class)
	if err != nil {
		return nil, fmt.Errorf("mark all: %w", err)
	}
	record, err := s.attendanceRepo.Load(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("mark all: %w", err)
	}
	for _, st := range students {
		record[st.ID] = status
	}
	if err := s.attendanceRepo.Save(ctx, date, record); err != nil {
		return nil, fmt.Errorf("mark all: %w", err)
	}
	s.logger.Info("attendance marked for class",
		zap.String("date", date),
		zap.String("class", class),
		zap.String("status", string(status)))
	return record, nil
}

// Save перезаписывает отметки за дату целиком. Повторное сохранение
// того же набора даёт тот же результат.
func (s *AttendanceService) Save(ctx context.Context, date string, record model.AttendanceRecord) error {
	if date == "" {
		return ErrMissingFields
	}
	for _, status := range record {
		if !model.ValidAttendanceStatus(status) {
			return ErrInvalidStatus
		}
	}
	if err := s.attendanceRepo.Save(ctx, date, record); err != nil {
		return fmt.Errorf("save attendance: %w", err)
	}
	return nil
}

// AttendanceStats сводка дня для дашборда учителя
type AttendanceStats struct {
	Date    string `json:"date"`
	Class   string `json:"class"`
	Present int    `json:"present"`
	Total   int    `json:"total"`
}

// Stats считает "N из M" по классу за дату, опоздавшие считаются пришедшими
func (s *AttendanceService) Stats(ctx context.Context, date, class string) (AttendanceStats, error) {
	students, err := s.studentRepo.ByClass(ctx, class)
	if err != nil {
		return AttendanceStats{}, fmt.Errorf("attendance stats: %w", err)
	}
	record, err := s.attendanceRepo.Load(ctx, date)
	if err != nil {
		return AttendanceStats{}, fmt.Errorf("attendance stats: %w", err)
	}
	present := 0
	for _, st := range students {
		switch record[st.ID] {
		case model.AttendancePresent, model.AttendanceLate:
			present++
		}
	}
	return AttendanceStats{Date: date, Class: class, Present: present, Total: len(students)}, nil
}
