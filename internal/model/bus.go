package model

// BusStop остановка маршрута: время "HH:MM" и место
type BusStop struct {
	Time string `json:"time"`
	Loc  string `json:"loc"`
}

// BusRoute утренний и вечерний маршруты плюс текущая остановка,
// которую админ обновляет вручную
type BusRoute struct {
	Morning     []BusStop `json:"morning"`
	Evening     []BusStop `json:"evening"`
	CurrentStop int       `json:"current_stop"` // индекс в Morning, -1 если не задан
	DriverPhone string    `json:"driver_phone,omitempty"`
}

// TimelineStop остановка с признаком "автобус уже проехал"
type TimelineStop struct {
	BusStop
	Completed bool `json:"completed"`
}
