package model

type Student struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Grade    string  `json:"grade"` // класс, например "KG1 A"
	Fee      float64 `json:"fee"`
	Paid     float64 `json:"paid"`
	Credit   float64 `json:"credit"` // баланс кошелька
	Photo    string  `json:"photo,omitempty"`
	Password string  `json:"password,omitempty"`
}

// Due сколько осталось доплатить за обучение
func (s *Student) Due() float64 {
	due := s.Fee - s.Paid
	if due < 0 {
		return 0
	}
	return due
}
