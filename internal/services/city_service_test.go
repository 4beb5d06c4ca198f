package services

import (
	"testing"

	"backoffice/internal/domain"
	"backoffice/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func newCityService(t *testing.T) (CityService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := CityService{Repo: repositories.CityRepository{DB: db}}
	return svc, mock, func() { db.Close() }
}

func TestCityCreateRejectsEmptyName(t *testing.T) {
	svc, mock, closeDB := newCityService(t)
	defer closeDB()

	_, err := svc.Create("   ")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no queries should run for invalid input: %v", err)
	}
}

func TestCityCreateDuplicateNameIgnoresCase(t *testing.T) {
	svc, mock, closeDB := newCityService(t)
	defer closeDB()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM cities").
		WithArgs("lagos", 0).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(1))

	_, err := svc.Create("lagos")
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCityCreateReturnsAssignedID(t *testing.T) {
	svc, mock, closeDB := newCityService(t)
	defer closeDB()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM cities").
		WithArgs("Lagos", 0).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))
	mock.ExpectExec("INSERT INTO cities").
		WithArgs("Lagos").
		WillReturnResult(sqlmock.NewResult(7, 1))

	city, err := svc.Create(" Lagos ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if city.ID != 7 || city.Name != "Lagos" {
		t.Fatalf("unexpected city %+v", city)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCityUpdateNotFound(t *testing.T) {
	svc, mock, closeDB := newCityService(t)
	defer closeDB()

	mock.ExpectQuery("SELECT id, name FROM cities").
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	_, err := svc.Update(99, "Abuja")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestCityUpdateExcludesSelfFromUniquenessCheck(t *testing.T) {
	svc, mock, closeDB := newCityService(t)
	defer closeDB()

	mock.ExpectQuery("SELECT id, name FROM cities").
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(3, "Lagos"))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM cities").
		WithArgs("Lagos", 3).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))
	mock.ExpectExec("UPDATE cities").
		WithArgs("Lagos", 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	city, err := svc.Update(3, "Lagos")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if city.ID != 3 || city.Name != "Lagos" {
		t.Fatalf("unexpected city %+v", city)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCityDeleteBlockedWhenReferenced(t *testing.T) {
	svc, mock, closeDB := newCityService(t)
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM trip_schedules").
		WithArgs(5, 5).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(2))
	mock.ExpectRollback()

	err := svc.Delete(5)
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCityDeleteSucceedsWhenUnreferenced(t *testing.T) {
	svc, mock, closeDB := newCityService(t)
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM trip_schedules").
		WithArgs(5, 5).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))
	mock.ExpectExec("DELETE FROM cities").
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := svc.Delete(5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCityDeleteNotFound(t *testing.T) {
	svc, mock, closeDB := newCityService(t)
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM trip_schedules").
		WithArgs(42, 42).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))
	mock.ExpectExec("DELETE FROM cities").
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := svc.Delete(42)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
