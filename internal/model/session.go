package model

type Role string

const (
	RolePublic  Role = "public"
	RoleParent  Role = "parent"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// Session результат разрешения текущей роли: кто вошёл и чей дашборд показывать
type Session struct {
	Role         Role   `json:"role"`
	StudentID    string `json:"student_id,omitempty"`
	TeacherName  string `json:"teacher_name,omitempty"`
	TeacherClass string `json:"teacher_class,omitempty"`
	AdminPreview bool   `json:"admin_preview"` // админ смотрит чужой дашборд
}

// CurrentUser общий маркер сессии, хранится под viola_current_user
type CurrentUser struct {
	Role  string `json:"role"`
	Name  string `json:"name"`
	Class string `json:"class"`
}

// PreviewTeacher маркер админского предпросмотра учителя
type PreviewTeacher struct {
	Name  string `json:"name"`
	Class string `json:"class"`
}
