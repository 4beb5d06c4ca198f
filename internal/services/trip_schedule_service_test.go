package services

import (
	"errors"
	"testing"

	"backoffice/internal/domain"
	"backoffice/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func validTripInput() TripInput {
	return TripInput{
		PickupCityID:   1,
		DropoffCityID:  2,
		VehicleTypeID:  3,
		VehicleID:      4,
		TimeSlotID:     5,
		Price:          150000,
		StartDate:      "2024-01-01",
		RecurrenceType: "week",
		RecurrenceDays: []string{"Monday", "Friday", "Monday"},
	}
}

func TestValidateTripInputReportsEveryViolation(t *testing.T) {
	in := TripInput{
		PickupCityID:   0,
		DropoffCityID:  -1,
		VehicleTypeID:  0,
		VehicleID:      0,
		TimeSlotID:     0,
		Price:          -5,
		StartDate:      "01/02/2024",
		RecurrenceType: "fortnight",
	}
	_, err := ValidateTripInput(in)
	var verr domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, field := range []string{
		"pickup_city_id", "dropoff_city_id", "vehicle_type_id", "vehicle_id",
		"time_slot_id", "price", "start_date", "recurrence_type",
	} {
		if !verr.HasField(field) {
			t.Fatalf("field %s missing from %v", field, verr.Fields)
		}
	}
}

func TestValidateTripInputRejectsSameCities(t *testing.T) {
	in := validTripInput()
	in.DropoffCityID = in.PickupCityID
	_, err := ValidateTripInput(in)
	var verr domain.ValidationError
	if !errors.As(err, &verr) || !verr.HasField("dropoff_city_id") {
		t.Fatalf("expected dropoff_city_id violation, got %v", err)
	}
}

func TestValidateTripInputNormalizesWeekDays(t *testing.T) {
	v, err := ValidateTripInput(validTripInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(v.RecurrenceDays) != 2 || v.RecurrenceDays[0] != "Monday" || v.RecurrenceDays[1] != "Friday" {
		t.Fatalf("days not deduplicated: %v", v.RecurrenceDays)
	}
	if v.Kind != domain.RecurWeek {
		t.Fatalf("unexpected kind %v", v.Kind)
	}
}

func TestValidateTripInputDropsDaysForNonWeekKinds(t *testing.T) {
	in := validTripInput()
	in.RecurrenceType = "month"
	v, err := ValidateTripInput(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(v.RecurrenceDays) != 0 {
		t.Fatalf("recurrence_days should be absent for month kind, got %v", v.RecurrenceDays)
	}
}

func newTripScheduleService(t *testing.T) (TripScheduleService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := TripScheduleService{
		Repo:         repositories.TripScheduleRepository{DB: db},
		CityRepo:     repositories.CityRepository{DB: db},
		VehicleTypes: repositories.VehicleTypeRepository{DB: db},
		Vehicles:     repositories.VehicleRepository{DB: db},
		TimeSlots:    repositories.TimeSlotRepository{DB: db},
	}
	return svc, mock, func() { db.Close() }
}

func expectReferenceChecks(mock sqlmock.Sqlmock) {
	mock.ExpectQuery("SELECT 1 FROM cities").WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectQuery("SELECT 1 FROM cities").WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectQuery("SELECT 1 FROM vehicle_types").WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectQuery("SELECT 1 FROM vehicles").WithArgs(4).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectQuery("SELECT 1 FROM time_slots").WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
}

func TestTripScheduleCreateDerivesEndDate(t *testing.T) {
	svc, mock, closeDB := newTripScheduleService(t)
	defer closeDB()

	expectReferenceChecks(mock)
	mock.ExpectExec("INSERT INTO trip_schedules").
		WithArgs(1, 2, 3, 4, 5, 150000.0, "2024-01-01", "2024-01-07", "week", "Monday,Friday").
		WillReturnResult(sqlmock.NewResult(11, 1))

	ts, err := svc.Create(validTripInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ts.ID != 11 {
		t.Fatalf("unexpected id %d", ts.ID)
	}
	if ts.EndDate != "2024-01-07" {
		t.Fatalf("end date got %s want 2024-01-07", ts.EndDate)
	}
	if ts.RecurrenceDays != "Monday,Friday" {
		t.Fatalf("unexpected recurrence days %q", ts.RecurrenceDays)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTripScheduleCreateNonPositivePriceInsertsNothing(t *testing.T) {
	svc, mock, closeDB := newTripScheduleService(t)
	defer closeDB()

	for _, price := range []float64{0, -5} {
		in := validTripInput()
		in.Price = price
		_, err := svc.Create(in)
		var verr domain.ValidationError
		if !errors.As(err, &verr) || !verr.HasField("price") {
			t.Fatalf("price=%v: expected price violation, got %v", price, err)
		}
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no row should be inserted for invalid price: %v", err)
	}
}

func TestTripScheduleCreateUnknownReference(t *testing.T) {
	svc, mock, closeDB := newTripScheduleService(t)
	defer closeDB()

	mock.ExpectQuery("SELECT 1 FROM cities").WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	_, err := svc.Create(validTripInput())
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTripScheduleDelete(t *testing.T) {
	svc, mock, closeDB := newTripScheduleService(t)
	defer closeDB()

	mock.ExpectExec("DELETE FROM trip_schedules").
		WithArgs(11).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := svc.Delete(11); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec("DELETE FROM trip_schedules").
		WithArgs(12).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := svc.Delete(12); !domain.IsNotFound(err) {
		t.Fatalf("expected not found error, got %v", err)
	}
}
