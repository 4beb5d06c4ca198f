package models

// VehicleType labels a class of vehicle (e.g. minibus, coach).
type VehicleType struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// Vehicle mirrors the vehicles schema.
type Vehicle struct {
	ID            int64  `json:"id"`
	VehicleNumber string `json:"vehicle_number"`
	DriverName    string `json:"driver_name"`
}
