package services

import (
	"strconv"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"
)

type TimeSlotService struct {
	Repo      repositories.TimeSlotRepository
	RequestID string
}

// ValidateTimeSlotInput checks both values against the 24-hour HH:MM format,
// then requires arrival strictly after departure. Same-day comparison only;
// overnight slots are not supported. Returned values are normalized HH:MM.
func ValidateTimeSlotInput(departure, arrival string) (string, string, error) {
	fields := []domain.FieldError{}

	dep, depErr := utils.ParseClock(departure)
	if depErr != nil {
		fields = append(fields, domain.FieldError{Field: "departure_time", Msg: "must be a 24-hour HH:MM time"})
	}
	arr, arrErr := utils.ParseClock(arrival)
	if arrErr != nil {
		fields = append(fields, domain.FieldError{Field: "arrival_time", Msg: "must be a 24-hour HH:MM time"})
	}
	if len(fields) > 0 {
		return "", "", domain.ValidationError{Fields: fields}
	}

	if !arr.After(dep) {
		return "", "", domain.NewValidationError("arrival_time", "must be after departure_time")
	}
	return utils.FormatClock(dep), utils.FormatClock(arr), nil
}

func (s TimeSlotService) List() ([]models.TimeSlot, error) {
	slots, err := s.Repo.List()
	return slots, storeError(err)
}

func (s TimeSlotService) Create(departure, arrival string) (models.TimeSlot, error) {
	dep, arr, err := ValidateTimeSlotInput(departure, arrival)
	if err != nil {
		return models.TimeSlot{}, err
	}

	slot, err := s.Repo.Create(dep, arr)
	if err != nil {
		return models.TimeSlot{}, storeError(err)
	}
	utils.LogEvent(s.RequestID, "timeslot", "create", "id="+strconv.FormatInt(slot.ID, 10))
	return slot, nil
}

// Delete is guarded against trip schedules referencing the slot.
func (s TimeSlotService) Delete(id int64) error {
	if err := s.Repo.DeleteGuarded(id); err != nil {
		return storeError(err)
	}
	utils.LogEvent(s.RequestID, "timeslot", "delete", "id="+strconv.FormatInt(id, 10))
	return nil
}
