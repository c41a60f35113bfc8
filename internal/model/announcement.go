package model

// Announcement широковещательное сообщение учителя или админа.
// Если TargetStudentID задан, сообщение личное и видно только этому ученику.
type Announcement struct {
	ID              string `json:"id"`
	Date            string `json:"date"`
	Sender          string `json:"sender"`
	Title           string `json:"title"`
	Body            string `json:"body"`
	TargetClass     string `json:"targetClass"`
	TargetStudentID string `json:"targetStudentId,omitempty"`
	IsPrivate       bool   `json:"isPrivate"`
}

// VisibleTo видно ли сообщение ученику класса class с идентификатором studentID
func (a *Announcement) VisibleTo(class, studentID string) bool {
	if a.TargetClass != "" && a.TargetClass != class {
		return false
	}
	if a.IsPrivate {
		return a.TargetStudentID == studentID
	}
	return true
}
