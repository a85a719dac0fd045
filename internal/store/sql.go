package store

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/i474232898/weather-records/internal/weather"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

var schemas = map[string]string{
	DriverSQLite: `
CREATE TABLE IF NOT EXISTS weather (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	location TEXT NOT NULL,
	temperature REAL,
	description TEXT,
	date TEXT
)`,
	DriverPostgres: `
CREATE TABLE IF NOT EXISTS weather (
	id BIGSERIAL PRIMARY KEY,
	location TEXT NOT NULL,
	temperature DOUBLE PRECISION,
	description TEXT,
	date TEXT
)`,
}

const columns = `id, location, temperature, description, date`

// SQLStore persists observations in the weather table.
// Errors keep the engine's message unchanged so it can be shown to callers.
type SQLStore struct {
	db *sqlx.DB
}

// Open connects to the database and creates the weather table if absent.
func Open(ctx context.Context, driver, dsn string) (*SQLStore, error) {
	schema, ok := schemas[driver]
	if !ok {
		return nil, errors.Errorf("unsupported database driver %q", driver)
	}

	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to %s database", driver)
	}

	// SQLite allows a single writer; one connection also keeps ":memory:" to one database.
	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to create weather table")
	}

	return &SQLStore{db: db}, nil
}

func (s *SQLStore) Insert(ctx context.Context, in weather.ObservationInput) (int64, error) {
	query := s.db.Rebind(`
		INSERT INTO weather (location, temperature, description, date)
		VALUES (?, ?, ?, ?)
		RETURNING id`)

	var id int64
	err := s.db.QueryRowxContext(ctx, query, in.Location, in.Temperature, in.Description, in.Date).Scan(&id)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return id, nil
}

func (s *SQLStore) List(ctx context.Context) ([]weather.Observation, error) {
	rows := []weather.Observation{}
	if err := s.db.SelectContext(ctx, &rows, `SELECT `+columns+` FROM weather ORDER BY id`); err != nil {
		return nil, errors.WithStack(err)
	}
	return rows, nil
}

func (s *SQLStore) Get(ctx context.Context, id int64) (weather.Observation, error) {
	var obs weather.Observation
	query := s.db.Rebind(`SELECT ` + columns + ` FROM weather WHERE id = ?`)
	if err := s.db.GetContext(ctx, &obs, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return weather.Observation{}, ErrNotFound
		}
		return weather.Observation{}, errors.WithStack(err)
	}
	return obs, nil
}

func (s *SQLStore) Update(ctx context.Context, id int64, in weather.ObservationInput) (int64, error) {
	query := s.db.Rebind(`
		UPDATE weather
		SET location = ?, temperature = ?, description = ?, date = ?
		WHERE id = ?`)

	result, err := s.db.ExecContext(ctx, query, in.Location, in.Temperature, in.Description, in.Date, id)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return rowsAffected(result)
}

func (s *SQLStore) Delete(ctx context.Context, id int64) (int64, error) {
	result, err := s.db.ExecContext(ctx, s.db.Rebind(`DELETE FROM weather WHERE id = ?`), id)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return rowsAffected(result)
}

func (s *SQLStore) Health(ctx context.Context) error {
	return errors.WithStack(s.db.PingContext(ctx))
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

func rowsAffected(result sql.Result) (int64, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "failed to check rows affected")
	}
	return n, nil
}
