package model

// Slot одна ячейка расписания: предмет и учитель
type Slot struct {
	Subject string `json:"sub"`
	Teacher string `json:"teach"`
}

// DaySchedule время урока (сырой ключ вида "8:00" или "08:00") -> ячейка
type DaySchedule map[string]Slot

// ClassDays день недели ("0".."4", воскресенье-четверг) -> расписание дня
type ClassDays map[string]DaySchedule

// ClassSchedule все расписания, хранятся одним документом под viola_schedule_v2
type ClassSchedule map[string]ClassDays

// TimetableEntry строка развёрнутого расписания для отображения
type TimetableEntry struct {
	DayIdx  int    `json:"day_idx"`
	DayName string `json:"day_name"`
	Time    string `json:"time"` // нормализованное "HH:MM"
	Class   string `json:"class"`
	Subject string `json:"subject"`
	Teacher string `json:"teacher"`
}

// WeekdayNames учебная неделя воскресенье-четверг
var WeekdayNames = [5]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday"}
