package services

import (
	"strconv"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"
)

type VehicleService struct {
	Repo      repositories.VehicleRepository
	RequestID string
}

func validateVehicleInput(vehicleNumber, driverName string) (string, string, error) {
	vehicleNumber = utils.NormalizeSpace(vehicleNumber)
	driverName = utils.NormalizeSpace(driverName)

	fields := []domain.FieldError{}
	if vehicleNumber == "" {
		fields = append(fields, domain.FieldError{Field: "vehicle_number", Msg: "must not be empty"})
	}
	if driverName == "" {
		fields = append(fields, domain.FieldError{Field: "driver_name", Msg: "must not be empty"})
	}
	if len(fields) > 0 {
		return "", "", domain.ValidationError{Fields: fields}
	}
	return vehicleNumber, driverName, nil
}

func (s VehicleService) List() ([]models.Vehicle, error) {
	vehicles, err := s.Repo.List()
	return vehicles, storeError(err)
}

func (s VehicleService) Create(vehicleNumber, driverName string) (models.Vehicle, error) {
	number, driver, err := validateVehicleInput(vehicleNumber, driverName)
	if err != nil {
		return models.Vehicle{}, err
	}

	v, err := s.Repo.Create(number, driver)
	if err != nil {
		return models.Vehicle{}, storeError(err)
	}
	utils.LogEvent(s.RequestID, "vehicle", "create", "id="+strconv.FormatInt(v.ID, 10))
	return v, nil
}

func (s VehicleService) Update(id int64, vehicleNumber, driverName string) (models.Vehicle, error) {
	number, driver, err := validateVehicleInput(vehicleNumber, driverName)
	if err != nil {
		return models.Vehicle{}, err
	}

	ok, err := s.Repo.Exists(id)
	if err != nil {
		return models.Vehicle{}, storeError(err)
	}
	if !ok {
		return models.Vehicle{}, domain.NotFoundError{Resource: "vehicle"}
	}

	if err := s.Repo.Update(id, number, driver); err != nil {
		return models.Vehicle{}, storeError(err)
	}
	utils.LogEvent(s.RequestID, "vehicle", "update", "id="+strconv.FormatInt(id, 10))
	return models.Vehicle{ID: id, VehicleNumber: number, DriverName: driver}, nil
}

func (s VehicleService) Delete(id int64) error {
	if err := s.Repo.DeleteGuarded(id); err != nil {
		return storeError(err)
	}
	utils.LogEvent(s.RequestID, "vehicle", "delete", "id="+strconv.FormatInt(id, 10))
	return nil
}
