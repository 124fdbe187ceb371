// Package dbtest provides an in-memory copy of the climate dataset schema for tests.
package dbtest

import (
	"database/sql"
	"path/filepath"
	"testing"

	"climate-server/internal/modules/climate/types"

	_ "github.com/mattn/go-sqlite3"
)

// Schema mirrors the hawaii.sqlite measurement and station tables.
const Schema = `
CREATE TABLE measurement (
  id      INTEGER PRIMARY KEY,
  station TEXT,
  date    TEXT,
  prcp    FLOAT,
  tobs    FLOAT
);

CREATE TABLE station (
  id        INTEGER PRIMARY KEY,
  station   TEXT,
  name      TEXT,
  latitude  FLOAT,
  longitude FLOAT,
  elevation FLOAT
);
`

// Open returns a single-connection in-memory database with Schema applied.
// The pool is capped at one connection so every sql.Conn sees the same data.
func Open(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	if _, err := db.Exec(Schema); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			t.Fatalf("close db: %v", closeErr)
		}
		t.Fatalf("exec schema: %v", err)
	}
	t.Cleanup(func() {
		if closeErr := db.Close(); closeErr != nil {
			t.Errorf("close db: %v", closeErr)
		}
	})
	return db
}

// WriteDataset creates a file-backed dataset under t.TempDir() holding rows
// and returns its path. The file is closed before returning.
func WriteDataset(t *testing.T, rows ...types.Measurement) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hawaii.sqlite")
	db, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		t.Fatalf("open dataset: %v", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			t.Fatalf("close dataset: %v", closeErr)
		}
	}()
	if _, err := db.Exec(Schema); err != nil {
		t.Fatalf("exec schema: %v", err)
	}
	InsertMeasurements(t, db, rows...)
	return path
}

// InsertMeasurements inserts rows in order; ID is ignored.
func InsertMeasurements(t *testing.T, db *sql.DB, rows ...types.Measurement) {
	t.Helper()
	for _, m := range rows {
		_, err := db.Exec(
			`INSERT INTO measurement (station, date, prcp, tobs) VALUES (?, ?, ?, ?)`,
			m.Station, m.Date, nullable(m.Prcp), nullable(m.Tobs),
		)
		if err != nil {
			t.Fatalf("insert measurement %+v: %v", m, err)
		}
	}
}

func InsertStations(t *testing.T, db *sql.DB, rows ...types.Station) {
	t.Helper()
	for _, s := range rows {
		_, err := db.Exec(
			`INSERT INTO station (station, name, latitude, longitude, elevation) VALUES (?, ?, ?, ?, ?)`,
			s.Station, s.Name, nullable(s.Latitude), nullable(s.Longitude), nullable(s.Elevation),
		)
		if err != nil {
			t.Fatalf("insert station %+v: %v", s, err)
		}
	}
}

// F returns a pointer to v, for building nullable readings inline.
func F(v float64) *float64 {
	return &v
}

func nullable(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
