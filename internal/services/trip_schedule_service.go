package services

import (
	"strconv"
	"strings"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"
)

// TripInput carries the raw trip-schedule form fields.
type TripInput struct {
	PickupCityID   int64    `json:"pickup_city_id"`
	DropoffCityID  int64    `json:"dropoff_city_id"`
	VehicleTypeID  int64    `json:"vehicle_type_id"`
	VehicleID      int64    `json:"vehicle_id"`
	TimeSlotID     int64    `json:"time_slot_id"`
	Price          float64  `json:"price"`
	StartDate      string   `json:"start_date"`
	RecurrenceType string   `json:"recurrence_type"`
	RecurrenceDays []string `json:"recurrence_days"`
}

// ValidatedTrip is the checked form of TripInput with parsed values.
type ValidatedTrip struct {
	TripInput
	Start time.Time
	Kind  domain.RecurrenceKind
}

// ValidateTripInput checks every field and reports all violations together
// so the admin form can redisplay them at once. It performs no store access.
func ValidateTripInput(in TripInput) (ValidatedTrip, error) {
	fields := []domain.FieldError{}

	for _, ref := range []struct {
		name string
		id   int64
	}{
		{"pickup_city_id", in.PickupCityID},
		{"dropoff_city_id", in.DropoffCityID},
		{"vehicle_type_id", in.VehicleTypeID},
		{"vehicle_id", in.VehicleID},
		{"time_slot_id", in.TimeSlotID},
	} {
		if ref.id <= 0 {
			fields = append(fields, domain.FieldError{Field: ref.name, Msg: "must be a positive id"})
		}
	}

	if in.PickupCityID > 0 && in.PickupCityID == in.DropoffCityID {
		fields = append(fields, domain.FieldError{Field: "dropoff_city_id", Msg: "must differ from pickup_city_id"})
	}

	if in.Price <= 0 {
		fields = append(fields, domain.FieldError{Field: "price", Msg: "must be greater than zero"})
	}

	out := ValidatedTrip{TripInput: in}

	start, err := utils.ParseDate(in.StartDate)
	if err != nil {
		fields = append(fields, domain.FieldError{Field: "start_date", Msg: "must be a YYYY-MM-DD date"})
	} else {
		out.Start = start
	}

	kind, err := domain.ParseRecurrenceKind(in.RecurrenceType)
	if err != nil {
		fields = append(fields, domain.FieldError{Field: "recurrence_type", Msg: "must be one of day, week, month, year"})
	} else {
		out.Kind = kind
	}

	if len(fields) > 0 {
		return ValidatedTrip{}, domain.ValidationError{Fields: fields}
	}

	// recurrence_days is opaque payload, meaningful only for weekly schedules.
	if out.Kind == domain.RecurWeek {
		out.RecurrenceDays = utils.SplitDayList(strings.Join(in.RecurrenceDays, ","))
	} else {
		out.RecurrenceDays = nil
	}
	return out, nil
}

// TripScheduleService composes validation, the recurrence calculator and the
// foreign-key existence checks around the trip_schedules table.
type TripScheduleService struct {
	Repo         repositories.TripScheduleRepository
	CityRepo     repositories.CityRepository
	VehicleTypes repositories.VehicleTypeRepository
	Vehicles     repositories.VehicleRepository
	TimeSlots    repositories.TimeSlotRepository
	RequestID    string
}

func (s TripScheduleService) List() ([]models.TripScheduleDetail, error) {
	list, err := s.Repo.List()
	return list, storeError(err)
}

func (s TripScheduleService) Get(id int64) (models.TripScheduleDetail, error) {
	det, err := s.Repo.GetDetail(id)
	return det, storeError(err)
}

// Create validates the input, verifies every referenced row exists, derives
// the inclusive end date and inserts the schedule.
func (s TripScheduleService) Create(in TripInput) (models.TripSchedule, error) {
	v, err := ValidateTripInput(in)
	if err != nil {
		return models.TripSchedule{}, err
	}

	if err := s.checkReferences(v); err != nil {
		return models.TripSchedule{}, err
	}

	end, err := domain.ComputeEndDate(v.Start, v.Kind)
	if err != nil {
		return models.TripSchedule{}, err
	}

	ts := models.TripSchedule{
		PickupCityID:   v.PickupCityID,
		DropoffCityID:  v.DropoffCityID,
		VehicleTypeID:  v.VehicleTypeID,
		VehicleID:      v.VehicleID,
		TimeSlotID:     v.TimeSlotID,
		Price:          v.Price,
		StartDate:      utils.FormatDate(v.Start),
		EndDate:        utils.FormatDate(end),
		RecurrenceType: string(v.Kind),
		RecurrenceDays: utils.JoinDayList(v.RecurrenceDays),
	}

	created, err := s.Repo.Insert(ts)
	if err != nil {
		return models.TripSchedule{}, storeError(err)
	}
	utils.LogEvent(s.RequestID, "schedule", "create", "id="+strconv.FormatInt(created.ID, 10))
	return created, nil
}

func (s TripScheduleService) Delete(id int64) error {
	if err := s.Repo.Delete(id); err != nil {
		return storeError(err)
	}
	utils.LogEvent(s.RequestID, "schedule", "delete", "id="+strconv.FormatInt(id, 10))
	return nil
}

func (s TripScheduleService) checkReferences(v ValidatedTrip) error {
	for _, ref := range []struct {
		resource string
		exists   func(int64) (bool, error)
		id       int64
	}{
		{"pickup city", s.CityRepo.Exists, v.PickupCityID},
		{"dropoff city", s.CityRepo.Exists, v.DropoffCityID},
		{"vehicle type", s.VehicleTypes.Exists, v.VehicleTypeID},
		{"vehicle", s.Vehicles.Exists, v.VehicleID},
		{"time slot", s.TimeSlots.Exists, v.TimeSlotID},
	} {
		ok, err := ref.exists(ref.id)
		if err != nil {
			return storeError(err)
		}
		if !ok {
			return domain.NotFoundError{Resource: ref.resource}
		}
	}
	return nil
}
