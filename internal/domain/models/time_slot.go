package models

// TimeSlot is a fixed departure/arrival pair shared across schedules.
// Both values are HH:MM wall-clock strings; arrival is strictly after
// departure on the same day.
type TimeSlot struct {
	ID            int64  `json:"id"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
}
