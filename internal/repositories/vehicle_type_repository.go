package repositories

import (
	"database/sql"
	"errors"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

type VehicleTypeRepository struct {
	DB *sql.DB
}

func (r VehicleTypeRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r VehicleTypeRepository) List() ([]models.VehicleType, error) {
	rows, err := r.db().Query(`SELECT id, type FROM vehicle_types ORDER BY type ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.VehicleType{}
	for rows.Next() {
		var t models.VehicleType
		if err := rows.Scan(&t.ID, &t.Type); err != nil {
			return out, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r VehicleTypeRepository) Exists(id int64) (bool, error) {
	var one int
	err := r.db().QueryRow(`SELECT 1 FROM vehicle_types WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r VehicleTypeRepository) Create(label string) (models.VehicleType, error) {
	res, err := r.db().Exec(`INSERT INTO vehicle_types (type) VALUES (?)`, label)
	if err != nil {
		return models.VehicleType{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.VehicleType{}, err
	}
	return models.VehicleType{ID: id, Type: label}, nil
}

func (r VehicleTypeRepository) Update(id int64, label string) error {
	_, err := r.db().Exec(`UPDATE vehicle_types SET type = ? WHERE id = ?`, label, id)
	return err
}

// DeleteGuarded removes a type unless trip schedules still reference it.
func (r VehicleTypeRepository) DeleteGuarded(id int64) error {
	tx, err := r.db().Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var refs int
	err = tx.QueryRow(
		`SELECT COUNT(*) FROM trip_schedules WHERE vehicle_type_id = ? FOR UPDATE`, id,
	).Scan(&refs)
	if err != nil {
		return err
	}
	if refs > 0 {
		return domain.ConflictError{Resource: "vehicle type", Msg: "still referenced by trip schedules"}
	}

	res, err := tx.Exec(`DELETE FROM vehicle_types WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "vehicle type"}
	}
	return tx.Commit()
}
