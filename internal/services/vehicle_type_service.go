package services

import (
	"strconv"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"
)

type VehicleTypeService struct {
	Repo      repositories.VehicleTypeRepository
	RequestID string
}

func (s VehicleTypeService) List() ([]models.VehicleType, error) {
	types, err := s.Repo.List()
	return types, storeError(err)
}

func (s VehicleTypeService) Create(label string) (models.VehicleType, error) {
	label = utils.NormalizeSpace(label)
	if label == "" {
		return models.VehicleType{}, domain.NewValidationError("type", "must not be empty")
	}

	t, err := s.Repo.Create(label)
	if err != nil {
		return models.VehicleType{}, storeError(err)
	}
	utils.LogEvent(s.RequestID, "vehicletype", "create", "id="+strconv.FormatInt(t.ID, 10))
	return t, nil
}

func (s VehicleTypeService) Update(id int64, label string) (models.VehicleType, error) {
	label = utils.NormalizeSpace(label)
	if label == "" {
		return models.VehicleType{}, domain.NewValidationError("type", "must not be empty")
	}

	ok, err := s.Repo.Exists(id)
	if err != nil {
		return models.VehicleType{}, storeError(err)
	}
	if !ok {
		return models.VehicleType{}, domain.NotFoundError{Resource: "vehicle type"}
	}

	if err := s.Repo.Update(id, label); err != nil {
		return models.VehicleType{}, storeError(err)
	}
	utils.LogEvent(s.RequestID, "vehicletype", "update", "id="+strconv.FormatInt(id, 10))
	return models.VehicleType{ID: id, Type: label}, nil
}

func (s VehicleTypeService) Delete(id int64) error {
	if err := s.Repo.DeleteGuarded(id); err != nil {
		return storeError(err)
	}
	utils.LogEvent(s.RequestID, "vehicletype", "delete", "id="+strconv.FormatInt(id, 10))
	return nil
}
