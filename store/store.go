// Package store persists build records and energy spectra in sqlite.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"qmodels"
)

const (
	tableBuild    = "build"
	tableSpectrum = "spectrum"

	queryTimeout = 3 * time.Second
)

type Store struct {
	Path string

	db *sql.DB
}

// Open opens the store at dbPath, creating it if absent.
func Open(dbPath string) (*Store, error) {
	s := &Store{Path: dbPath}
	var err error
	s.db, err = sql.Open("sqlite3", fmt.Sprintf("file:%s", dbPath))
	if err != nil {
		return nil, errors.Wrap(err, "")
	}

	if err := prepareDB(s.db); err != nil {
		s.db.Close()
		return nil, errors.Wrap(err, "")
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveBuild stores a build record and its spectrum, replacing any previous
// build of the same model.
func (s *Store) SaveBuild(rec qmodels.Record, energies []float64) error {
	params, err := json.Marshal(rec.Parameters)
	if err != nil {
		return errors.Wrap(err, "")
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	sqlStr := fmt.Sprintf(`INSERT OR REPLACE INTO %s (name, params, rows, cols, hermitian) VALUES (?, ?, ?, ?, ?)`, tableBuild)
	hermitian := 0
	if rec.IsHermitian {
		hermitian = 1
	}
	if _, err := s.db.ExecContext(ctx, sqlStr, rec.ModelName, string(params), rec.MatrixShape[0], rec.MatrixShape[1], hermitian); err != nil {
		return errors.Wrap(err, "")
	}

	sqlStr = fmt.Sprintf(`DELETE FROM %s WHERE name=?`, tableSpectrum)
	if _, err := s.db.ExecContext(ctx, sqlStr, rec.ModelName); err != nil {
		return errors.Wrap(err, "")
	}
	sqlStr = fmt.Sprintf(`INSERT INTO %s (name, idx, energy) VALUES (?, ?, ?)`, tableSpectrum)
	for i, e := range energies {
		if _, err := s.db.ExecContext(ctx, sqlStr, rec.ModelName, i, e); err != nil {
			return errors.Wrap(err, "")
		}
	}
	return nil
}

// Record returns the stored build record of a model.
func (s *Store) Record(name string) (qmodels.Record, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	sqlStr := fmt.Sprintf(`SELECT params, rows, cols, hermitian FROM %s WHERE name=?`, tableBuild)
	var params string
	var rows, cols, hermitian int
	if err := s.db.QueryRowContext(ctx, sqlStr, name).Scan(&params, &rows, &cols, &hermitian); err != nil {
		return qmodels.Record{}, errors.Wrap(err, name)
	}

	rec := qmodels.Record{
		ModelName:   name,
		MatrixShape: [2]int{rows, cols},
		IsHermitian: hermitian == 1,
	}
	if err := json.Unmarshal([]byte(params), &rec.Parameters); err != nil {
		return qmodels.Record{}, errors.Wrap(err, name)
	}
	return rec, nil
}

// Spectrum returns the stored energies of a model in ascending index order.
func (s *Store) Spectrum(name string) ([]float64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	sqlStr := fmt.Sprintf(`SELECT energy FROM %s WHERE name=? ORDER BY idx`, tableSpectrum)
	rows, err := s.db.QueryContext(ctx, sqlStr, name)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	defer rows.Close()

	energies := make([]float64, 0)
	for rows.Next() {
		var e float64
		if err := rows.Scan(&e); err != nil {
			return nil, errors.Wrap(err, "")
		}
		energies = append(energies, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "")
	}
	return energies, nil
}

// Names returns the models with a stored build.
func (s *Store) Names() ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	sqlStr := fmt.Sprintf(`SELECT name FROM %s ORDER BY name`, tableBuild)
	rows, err := s.db.QueryContext(ctx, sqlStr)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, errors.Wrap(err, "")
		}
		names = append(names, n)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "")
	}
	return names, nil
}

func prepareDB(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	sqlStr := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (name TEXT PRIMARY KEY, params TEXT, rows INTEGER, cols INTEGER, hermitian INTEGER) STRICT`, tableBuild)
	if _, err := db.ExecContext(ctx, sqlStr); err != nil {
		return errors.Wrap(err, "")
	}
	sqlStr = fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (name TEXT, idx INTEGER, energy REAL, PRIMARY KEY (name, idx)) STRICT`, tableSpectrum)
	if _, err := db.ExecContext(ctx, sqlStr); err != nil {
		return errors.Wrap(err, "")
	}
	return nil
}
