package repository

// Имена ключей хранилища. Это внешний контракт совместимости:
// под теми же ключами держит данные мобильное приложение.
const (
	KeyCurrentUser      = "viola_current_user"
	KeyCurrentStudentID = "viola_current_student_id"
	KeyCurrentTeacher   = "viola_current_teacher_email"
	KeyPreviewStudentID = "viola_preview_student_id"
	KeyPreviewTeacher   = "viola_preview_teacher"

	KeyStudents      = "viola_students"
	KeyTeachers      = "viola_teachers"
	KeySchedule      = "viola_schedule_v2"
	KeyHomework      = "viola_homework"
	KeyGradesFirst   = "viola_grades"
	KeyGradesSecond  = "viola_grades_term2"
	KeySubjects      = "viola_subjects"
	KeyCart          = "viola_cart"
	KeyOrders        = "viola_orders"
	KeyGallery       = "viola_gallery"
	KeyAnnouncements = "viola_announcements"
	KeyLanguage      = "viola_language"
	KeyBusData       = "viola_bus_data"
	KeyHomeData      = "viola_home_data"

	// устаревший ключ рассылок, читается только как fallback
	keyNotificationsLegacy = "viola_notifications"

	attendanceKeyPrefix = "viola_attendance_"
)

// AttendanceKey ключ отметок за календарную дату "YYYY-MM-DD"
func AttendanceKey(date string) string {
	return attendanceKeyPrefix + date
}
