package repositories

import (
	"database/sql"
	"errors"

	intconfig "backoffice/internal/config"
	intdb "backoffice/internal/db"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

type TripScheduleRepository struct {
	DB *sql.DB
}

func (r TripScheduleRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const tripScheduleDetailSelect = `
	SELECT ts.id,
		   ts.pickup_city_id,
		   ts.dropoff_city_id,
		   ts.vehicle_type_id,
		   ts.vehicle_id,
		   ts.time_slot_id,
		   ts.price,
		   DATE_FORMAT(ts.start_date, '%Y-%m-%d'),
		   DATE_FORMAT(ts.end_date, '%Y-%m-%d'),
		   ts.recurrence_type,
		   COALESCE(ts.recurrence_days, ''),
		   pc.name,
		   dc.name,
		   vt.type,
		   v.vehicle_number,
		   v.driver_name,
		   TIME_FORMAT(sl.departure_time, '%H:%i'),
		   TIME_FORMAT(sl.arrival_time, '%H:%i')
	FROM trip_schedules ts
	JOIN cities pc ON pc.id = ts.pickup_city_id
	JOIN cities dc ON dc.id = ts.dropoff_city_id
	JOIN vehicle_types vt ON vt.id = ts.vehicle_type_id
	JOIN vehicles v ON v.id = ts.vehicle_id
	JOIN time_slots sl ON sl.id = ts.time_slot_id
`

// Insert stores a validated schedule and returns it with the assigned id.
// recurrence_days is stored as NULL unless the week kind populated it.
func (r TripScheduleRepository) Insert(ts models.TripSchedule) (models.TripSchedule, error) {
	res, err := r.db().Exec(`
		INSERT INTO trip_schedules
			(pickup_city_id, dropoff_city_id, vehicle_type_id, vehicle_id, time_slot_id,
			 price, start_date, end_date, recurrence_type, recurrence_days)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ts.PickupCityID,
		ts.DropoffCityID,
		ts.VehicleTypeID,
		ts.VehicleID,
		ts.TimeSlotID,
		ts.Price,
		ts.StartDate,
		ts.EndDate,
		ts.RecurrenceType,
		intdb.NullIfEmpty(ts.RecurrenceDays),
	)
	if err != nil {
		return models.TripSchedule{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.TripSchedule{}, err
	}
	ts.ID = id
	return ts, nil
}

// List returns all schedules with their reference rows joined in, newest first.
func (r TripScheduleRepository) List() ([]models.TripScheduleDetail, error) {
	rows, err := r.db().Query(tripScheduleDetailSelect + ` ORDER BY ts.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.TripScheduleDetail{}
	for rows.Next() {
		det, err := scanTripScheduleDetail(rows)
		if err != nil {
			return out, err
		}
		out = append(out, det)
	}
	return out, rows.Err()
}

// GetDetail fetches one schedule with joined reference rows.
func (r TripScheduleRepository) GetDetail(id int64) (models.TripScheduleDetail, error) {
	rows, err := r.db().Query(tripScheduleDetailSelect+` WHERE ts.id = ?`, id)
	if err != nil {
		return models.TripScheduleDetail{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return models.TripScheduleDetail{}, err
		}
		return models.TripScheduleDetail{}, domain.NotFoundError{Resource: "trip schedule", Err: sql.ErrNoRows}
	}
	return scanTripScheduleDetail(rows)
}

func (r TripScheduleRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM trip_schedules WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "trip schedule", Err: errors.New("no rows deleted")}
	}
	return nil
}

func scanTripScheduleDetail(rows *sql.Rows) (models.TripScheduleDetail, error) {
	var det models.TripScheduleDetail
	err := rows.Scan(
		&det.ID,
		&det.PickupCityID,
		&det.DropoffCityID,
		&det.VehicleTypeID,
		&det.VehicleID,
		&det.TimeSlotID,
		&det.Price,
		&det.StartDate,
		&det.EndDate,
		&det.RecurrenceType,
		&det.RecurrenceDays,
		&det.PickupCity,
		&det.DropoffCity,
		&det.VehicleType,
		&det.VehicleNumber,
		&det.DriverName,
		&det.DepartureTime,
		&det.ArrivalTime,
	)
	return det, err
}
