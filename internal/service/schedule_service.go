package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/viola-academy/academy_app/internal/model"
	"github.com/viola-academy/academy_app/internal/repository"
	"go.uber.org/zap"
)

type ScheduleService struct {
	scheduleRepo *repository.ScheduleRepository
	logger       *zap.Logger
}

func NewScheduleService(scheduleRepo *repository.ScheduleRepository, logger *zap.Logger) *ScheduleService {
	return &ScheduleService{scheduleRepo: scheduleRepo, logger: logger}
}

// NormalizeTime приводит время урока к виду "HH:MM". Исторические данные
// содержат записи вида "8:0", "8:00" и "08:00", все они один и тот же слот.
func NormalizeTime(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	hour, minute := raw, ""
	if i := strings.IndexByte(raw, ':'); i >= 0 {
		hour, minute = raw[:i], raw[i+1:]
	}
	if len(hour) == 1 {
		hour = "0" + hour
	}
	switch len(minute) {
	case 0:
		minute = "00"
	case 1:
		minute = "0" + minute
	}
	return hour + ":" + minute
}

// Full расписания всех классов как они лежат в хранилище
func (s *ScheduleService) Full(ctx context.Context) (model.ClassSchedule, error) {
	return s.scheduleRepo.Load(ctx)
}

// normalizeDay сворачивает сырые ключи дня к нормализованному времени.
// При дублях ("8:0" и "08:00" в одном дне) побеждает первый сырой ключ
// в лексикографическом порядке.
func normalizeDay(day model.DaySchedule) map[string]model.Slot {
	rawKeys := make([]string, 0, len(day))
	for k := range day {
		rawKeys = append(rawKeys, k)
	}
	sort.Strings(rawKeys)
	out := make(map[string]model.Slot, len(day))
	for _, k := range rawKeys {
		norm := NormalizeTime(k)
		if _, ok := out[norm]; !ok {
			out[norm] = day[k]
		}
	}
	return out
}

// ClassTimetable разворачивает расписание класса в плоский список строк,
// отсортированный по дню недели и нормализованному времени
func (s *ScheduleService) ClassTimetable(ctx context.Context, class string) ([]model.TimetableEntry, error) {
	schedule, err := s.scheduleRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("class timetable: %w", err)
	}
	days := schedule[class]
	var entries []model.TimetableEntry
	for dayIdx := 0; dayIdx < len(model.WeekdayNames); dayIdx++ {
		day := normalizeDay(days[strconv.Itoa(dayIdx)])
		times := make([]string, 0, len(day))
		for t := range day {
			times = append(times, t)
		}
		sort.Strings(times)
		for _, t := range times {
			slot := day[t]
			entries = append(entries, model.TimetableEntry{
				DayIdx:  dayIdx,
				DayName: model.WeekdayNames[dayIdx],
				Time:    t,
				Class:   class,
				Subject: slot.Subject,
				Teacher: slot.Teacher,
			})
		}
	}
	return entries, nil
}

// TeacherAssignments уроки учителя по всем классам. Ячейки хранят короткое
// имя, поэтому сопоставление идёт по первому слову полного имени.
func (s *ScheduleService) TeacherAssignments(ctx context.Context, teacherName string) ([]model.TimetableEntry, error) {
	schedule, err := s.scheduleRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("teacher assignments: %w", err)
	}
	first := firstName(teacherName)
	classes := make([]string, 0, len(schedule))
	for class := range schedule {
		classes = append(classes, class)
	}
	sort.Strings(classes)

	var entries []model.TimetableEntry
	for _, class := range classes {
		for dayIdx := 0; dayIdx < len(model.WeekdayNames); dayIdx++ {
			day := normalizeDay(schedule[class][strconv.Itoa(dayIdx)])
			times := make([]string, 0, len(day))
			for t := range day {
				times = append(times, t)
			}
			sort.Strings(times)
			for _, t := range times {
				slot := day[t]
				if !teacherMatches(slot.Teacher, first) {
					continue
				}
				entries = append(entries, model.TimetableEntry{
					DayIdx:  dayIdx,
					DayName: model.WeekdayNames[dayIdx],
					Time:    t,
					Class:   class,
					Subject: slot.Subject,
					Teacher: slot.Teacher,
				})
			}
		}
	}
	return entries, nil
}

// SetSlot ставит урок в ячейку. Время записывается в каноническом виде,
// сырые дубли той же ячейки удаляются.
func (s *ScheduleService) SetSlot(ctx context.Context, class string, dayIdx int, at, subject, teacher string) error {
	if class == "" || subject == "" {
		return ErrMissingFields
	}
	if dayIdx < 0 || dayIdx >= len(model.WeekdayNames) {
		return ErrMissingFields
	}
	norm := NormalizeTime(at)
	if norm == "" {
		return ErrMissingFields
	}

	schedule, err := s.scheduleRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("set slot: %w", err)
	}
	days := schedule[class]
	if days == nil {
		days = model.ClassDays{}
		schedule[class] = days
	}
	dayKey := strconv.Itoa(dayIdx)
	day := days[dayKey]
	if day == nil {
		day = model.DaySchedule{}
		days[dayKey] = day
	}
	for raw := range day {
		if NormalizeTime(raw) == norm {
			delete(day, raw)
		}
	}
	day[norm] = model.Slot{Subject: subject, Teacher: teacher}

	if err := s.scheduleRepo.Save(ctx, schedule); err != nil {
		return fmt.Errorf("set slot: %w", err)
	}
	s.logger.Info("schedule slot set",
		zap.String("class", class),
		zap.Int("day", dayIdx),
		zap.String("time", norm),
		zap.String("subject", subject))
	return nil
}

// RemoveSlot убирает урок из ячейки вместе со всеми сырыми дублями времени
func (s *ScheduleService) RemoveSlot(ctx context.Context, class string, dayIdx int, at string) error {
	norm := NormalizeTime(at)
	schedule, err := s.scheduleRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("remove slot: %w", err)
	}
	day := schedule[class][strconv.Itoa(dayIdx)]
	removed := false
	for raw := range day {
		if NormalizeTime(raw) == norm {
			delete(day, raw)
			removed = true
		}
	}
	if !removed {
		return ErrNotFound
	}
	if err := s.scheduleRepo.Save(ctx, schedule); err != nil {
		return fmt.Errorf("remove slot: %w", err)
	}
	return nil
}

func firstName(full string) string {
	full = strings.TrimSpace(full)
	if i := strings.IndexByte(full, ' '); i >= 0 {
		return full[:i]
	}
	return full
}

// teacherMatches ячейка хранит имя свободным текстом, сравниваем без регистра
func teacherMatches(cell, first string) bool {
	if first == "" {
		return false
	}
	return strings.Contains(strings.ToLower(cell), strings.ToLower(first))
}
