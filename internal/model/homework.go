package model

// Homework задание; ID это unix-время создания в миллисекундах,
// по нему же выполняется удаление
type Homework struct {
	ID          int64  `json:"id"`
	Class       string `json:"class"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"` // "YYYY-MM-DD"
}
