package model

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceAbsent  AttendanceStatus = "absent"
)

// ValidAttendanceStatus проверяет, что статус один из трёх допустимых
func ValidAttendanceStatus(s AttendanceStatus) bool {
	switch s {
	case AttendancePresent, AttendanceLate, AttendanceAbsent:
		return true
	}
	return false
}

// AttendanceRecord отметки за один календарный день: id ученика -> статус
type AttendanceRecord map[string]AttendanceStatus

// PresentCount присутствующие (включая опоздавших) для сводки "N/M"
func (r AttendanceRecord) PresentCount() int {
	n := 0
	for _, st := range r {
		if st == AttendancePresent || st == AttendanceLate {
			n++
		}
	}
	return n
}
