package domain

import "github.com/google/uuid"

// Stream names (должны совпадать с потребителями на стороне backend)
const (
	StreamItineraryGenerate = "stream:itinerary:generate"
	StreamItineraryDone     = "stream:itinerary:done"
)

// StreamMessage - сырое сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}

// ItineraryGenerateEvent - входящее событие на генерацию маршрута
type ItineraryGenerateEvent struct {
	RequestID      uuid.UUID `json:"request_id"`
	City           string    `json:"city"`
	TripDays       int       `json:"trip_days"`
	ArrivalInfo    string    `json:"arrival_info,omitempty"`
	PreferredTypes []string  `json:"preferred_types,omitempty"`
	Group          string    `json:"group,omitempty"`
	Pace           string    `json:"pace,omitempty"`
}

// ItineraryDoneEvent - результат генерации маршрута
type ItineraryDoneEvent struct {
	RequestID uuid.UUID  `json:"request_id"`
	Itinerary *Itinerary `json:"itinerary,omitempty"`
	RawOutput string     `json:"raw_output,omitempty"`
	Error     string     `json:"error,omitempty"`
}
