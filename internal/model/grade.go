package model

type Term string

const (
	TermFirst  Term = "first"
	TermSecond Term = "second"
)

// Subject предмет с постоянным идентификатором, выдаётся при создании
type Subject struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Gradebook оценки семестра: id ученика -> id предмета -> балл строкой
type Gradebook map[string]map[string]string

// Score возвращает оценку или пустую строку, если её нет
func (g Gradebook) Score(studentID, subjectID string) string {
	if row, ok := g[studentID]; ok {
		return row[subjectID]
	}
	return ""
}

// SetScore проставляет оценку, создавая строку ученика при необходимости
func (g Gradebook) SetScore(studentID, subjectID, score string) {
	row, ok := g[studentID]
	if !ok {
		row = make(map[string]string)
		g[studentID] = row
	}
	row[subjectID] = score
}
