package models

// TripSchedule mirrors the trip_schedules schema. EndDate is derived from
// StartDate plus one recurrence unit, inclusive. RecurrenceDays is the
// stored comma form of the weekday set and is populated only when
// RecurrenceType is "week".
type TripSchedule struct {
	ID             int64   `json:"id"`
	PickupCityID   int64   `json:"pickup_city_id"`
	DropoffCityID  int64   `json:"dropoff_city_id"`
	VehicleTypeID  int64   `json:"vehicle_type_id"`
	VehicleID      int64   `json:"vehicle_id"`
	TimeSlotID     int64   `json:"time_slot_id"`
	Price          float64 `json:"price"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	RecurrenceType string  `json:"recurrence_type"`
	RecurrenceDays string  `json:"recurrence_days,omitempty"`
}

// TripScheduleDetail joins the reference rows a schedule points at, for
// listings and the printable schedule sheet.
type TripScheduleDetail struct {
	TripSchedule
	PickupCity    string `json:"pickup_city"`
	DropoffCity   string `json:"dropoff_city"`
	VehicleType   string `json:"vehicle_type"`
	VehicleNumber string `json:"vehicle_number"`
	DriverName    string `json:"driver_name"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
}
