package repositories

import (
	"database/sql"
	"errors"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

type VehicleRepository struct {
	DB *sql.DB
}

func (r VehicleRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// List returns all vehicles ordered by vehicle number ascending.
func (r VehicleRepository) List() ([]models.Vehicle, error) {
	rows, err := r.db().Query(
		`SELECT id, vehicle_number, driver_name FROM vehicles ORDER BY vehicle_number ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Vehicle{}
	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(&v.ID, &v.VehicleNumber, &v.DriverName); err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r VehicleRepository) Exists(id int64) (bool, error) {
	var one int
	err := r.db().QueryRow(`SELECT 1 FROM vehicles WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r VehicleRepository) Create(vehicleNumber, driverName string) (models.Vehicle, error) {
	res, err := r.db().Exec(
		`INSERT INTO vehicles (vehicle_number, driver_name) VALUES (?, ?)`,
		vehicleNumber, driverName,
	)
	if err != nil {
		if isDuplicateKey(err) {
			return models.Vehicle{}, domain.ConflictError{Resource: "vehicle", Msg: "vehicle number already exists", Err: err}
		}
		return models.Vehicle{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Vehicle{}, err
	}
	return models.Vehicle{ID: id, VehicleNumber: vehicleNumber, DriverName: driverName}, nil
}

func (r VehicleRepository) Update(id int64, vehicleNumber, driverName string) error {
	_, err := r.db().Exec(
		`UPDATE vehicles SET vehicle_number = ?, driver_name = ? WHERE id = ?`,
		vehicleNumber, driverName, id,
	)
	if isDuplicateKey(err) {
		return domain.ConflictError{Resource: "vehicle", Msg: "vehicle number already exists", Err: err}
	}
	return err
}

// DeleteGuarded removes a vehicle unless trip schedules still reference it.
func (r VehicleRepository) DeleteGuarded(id int64) error {
	tx, err := r.db().Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var refs int
	err = tx.QueryRow(
		`SELECT COUNT(*) FROM trip_schedules WHERE vehicle_id = ? FOR UPDATE`, id,
	).Scan(&refs)
	if err != nil {
		return err
	}
	if refs > 0 {
		return domain.ConflictError{Resource: "vehicle", Msg: "still referenced by trip schedules"}
	}

	res, err := tx.Exec(`DELETE FROM vehicles WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "vehicle"}
	}
	return tx.Commit()
}
