package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"

	"github.com/go-sql-driver/mysql"
)

type CityRepository struct {
	DB *sql.DB
}

func (r CityRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// List returns all cities ordered by name ascending.
func (r CityRepository) List() ([]models.City, error) {
	rows, err := r.db().Query(`SELECT id, name FROM cities ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.City{}
	for rows.Next() {
		var c models.City
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return out, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r CityRepository) GetByID(id int64) (models.City, error) {
	var c models.City
	err := r.db().QueryRow(`SELECT id, name FROM cities WHERE id = ?`, id).
		Scan(&c.ID, &c.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return models.City{}, domain.NotFoundError{Resource: "city", Err: err}
	}
	return c, err
}

func (r CityRepository) Exists(id int64) (bool, error) {
	var one int
	err := r.db().QueryRow(`SELECT 1 FROM cities WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CountByName counts cities matching name ignoring case, excluding excludeID
// (pass 0 when creating).
func (r CityRepository) CountByName(name string, excludeID int64) (int, error) {
	var n int
	err := r.db().QueryRow(
		`SELECT COUNT(*) FROM cities WHERE LOWER(name) = LOWER(?) AND id <> ?`,
		strings.TrimSpace(name), excludeID,
	).Scan(&n)
	return n, err
}

// Create inserts a city. The cities.name unique index is the authoritative
// duplicate check; a 1062 from MySQL maps to the conflict error family so a
// race with a concurrent insert still comes back as a duplicate, not a 500.
func (r CityRepository) Create(name string) (models.City, error) {
	res, err := r.db().Exec(`INSERT INTO cities (name) VALUES (?)`, name)
	if err != nil {
		if isDuplicateKey(err) {
			return models.City{}, domain.ConflictError{Resource: "city", Msg: "name already exists", Err: err}
		}
		return models.City{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.City{}, err
	}
	return models.City{ID: id, Name: name}, nil
}

func (r CityRepository) Update(id int64, name string) error {
	_, err := r.db().Exec(`UPDATE cities SET name = ? WHERE id = ?`, name, id)
	if isDuplicateKey(err) {
		return domain.ConflictError{Resource: "city", Msg: "name already exists", Err: err}
	}
	return err
}

// DeleteGuarded removes a city unless trip schedules still reference it as
// pickup or dropoff. The count and the delete run in one transaction so a
// dependent row cannot slip in between them.
func (r CityRepository) DeleteGuarded(id int64) error {
	tx, err := r.db().Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var refs int
	err = tx.QueryRow(
		`SELECT COUNT(*) FROM trip_schedules WHERE pickup_city_id = ? OR dropoff_city_id = ? FOR UPDATE`,
		id, id,
	).Scan(&refs)
	if err != nil {
		return err
	}
	if refs > 0 {
		return domain.ConflictError{Resource: "city", Msg: "still referenced by trip schedules"}
	}

	res, err := tx.Exec(`DELETE FROM cities WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "city"}
	}
	return tx.Commit()
}

func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
