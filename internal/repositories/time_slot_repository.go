package repositories

import (
	"database/sql"
	"errors"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

type TimeSlotRepository struct {
	DB *sql.DB
}

func (r TimeSlotRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// List returns all slots ordered by departure time ascending.
func (r TimeSlotRepository) List() ([]models.TimeSlot, error) {
	rows, err := r.db().Query(
		`SELECT id, TIME_FORMAT(departure_time, '%H:%i'), TIME_FORMAT(arrival_time, '%H:%i')
		 FROM time_slots ORDER BY departure_time ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.TimeSlot{}
	for rows.Next() {
		var s models.TimeSlot
		if err := rows.Scan(&s.ID, &s.DepartureTime, &s.ArrivalTime); err != nil {
			return out, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r TimeSlotRepository) Exists(id int64) (bool, error) {
	var one int
	err := r.db().QueryRow(`SELECT 1 FROM time_slots WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r TimeSlotRepository) Create(departure, arrival string) (models.TimeSlot, error) {
	res, err := r.db().Exec(
		`INSERT INTO time_slots (departure_time, arrival_time) VALUES (?, ?)`,
		departure, arrival,
	)
	if err != nil {
		return models.TimeSlot{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.TimeSlot{}, err
	}
	return models.TimeSlot{ID: id, DepartureTime: departure, ArrivalTime: arrival}, nil
}

// DeleteGuarded removes a slot unless trip schedules still reference it.
// The original admin panel deleted slots unconditionally; that left dangling
// time_slot_id references, so deletes are guarded here like cities.
func (r TimeSlotRepository) DeleteGuarded(id int64) error {
	tx, err := r.db().Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var refs int
	err = tx.QueryRow(
		`SELECT COUNT(*) FROM trip_schedules WHERE time_slot_id = ? FOR UPDATE`, id,
	).Scan(&refs)
	if err != nil {
		return err
	}
	if refs > 0 {
		return domain.ConflictError{Resource: "time slot", Msg: "still referenced by trip schedules"}
	}

	res, err := tx.Exec(`DELETE FROM time_slots WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "time slot"}
	}
	return tx.Commit()
}
