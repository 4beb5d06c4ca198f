package services

import (
	"strconv"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"
)

// CityService owns the city registry: uniqueness on create/update and the
// referential guard on delete.
type CityService struct {
	Repo      repositories.CityRepository
	RequestID string
}

func (s CityService) List() ([]models.City, error) {
	cities, err := s.Repo.List()
	return cities, storeError(err)
}

func (s CityService) Create(name string) (models.City, error) {
	name = utils.NormalizeSpace(name)
	if name == "" {
		return models.City{}, domain.NewValidationError("name", "must not be empty")
	}

	// Friendly pre-check; the unique index on cities.name stays authoritative
	// when two creates race.
	n, err := s.Repo.CountByName(name, 0)
	if err != nil {
		return models.City{}, storeError(err)
	}
	if n > 0 {
		return models.City{}, domain.ConflictError{Resource: "city", Msg: "name already exists"}
	}

	city, err := s.Repo.Create(name)
	if err != nil {
		return models.City{}, storeError(err)
	}
	utils.LogEvent(s.RequestID, "city", "create", "id="+strconv.FormatInt(city.ID, 10))
	return city, nil
}

func (s CityService) Update(id int64, name string) (models.City, error) {
	name = utils.NormalizeSpace(name)
	if name == "" {
		return models.City{}, domain.NewValidationError("name", "must not be empty")
	}

	if _, err := s.Repo.GetByID(id); err != nil {
		return models.City{}, storeError(err)
	}

	n, err := s.Repo.CountByName(name, id)
	if err != nil {
		return models.City{}, storeError(err)
	}
	if n > 0 {
		return models.City{}, domain.ConflictError{Resource: "city", Msg: "name already exists"}
	}

	if err := s.Repo.Update(id, name); err != nil {
		return models.City{}, storeError(err)
	}
	utils.LogEvent(s.RequestID, "city", "update", "id="+strconv.FormatInt(id, 10))
	return models.City{ID: id, Name: name}, nil
}

// Delete removes a city when no trip schedule references it; the guard and
// the delete share one transaction in the repository.
func (s CityService) Delete(id int64) error {
	if err := s.Repo.DeleteGuarded(id); err != nil {
		return storeError(err)
	}
	utils.LogEvent(s.RequestID, "city", "delete", "id="+strconv.FormatInt(id, 10))
	return nil
}
