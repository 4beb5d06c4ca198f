package models

// City is a pickup/dropoff reference row. Name is unique ignoring case.
type City struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
