package domain

// Itinerary - распарсенный маршрут, который вернула LLM
type Itinerary struct {
	City string         `json:"city"`
	Days []ItineraryDay `json:"days"`
}

// ItineraryDay - план на один день поездки
type ItineraryDay struct {
	Day    int                 `json:"day"`
	Theme  string              `json:"theme,omitempty"`
	Visits []ItineraryActivity `json:"visits"`
}

// ItineraryActivity - одна активность в плане дня
type ItineraryActivity struct {
	Place    string `json:"place"`
	Time     string `json:"time,omitempty"`
	Notes    string `json:"notes,omitempty"`
	Duration string `json:"duration,omitempty"`
}

// ItineraryResult - типизированный результат генерации: либо распарсенный
// маршрут, либо сырой вывод модели, если JSON не разобрался. Ошибка парсинга
// не проглатывается - сырой текст доносится до вызывающего.
type ItineraryResult struct {
	Itinerary *Itinerary `json:"itinerary,omitempty"`
	RawOutput string     `json:"raw_output,omitempty"`
	Parsed    bool       `json:"parsed"`
}
