package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"climate-server/internal/db"
	"climate-server/internal/modules/climate/types"
)

//go:embed sql/get-precipitation.sql
var getPrecipitationSQL string

//go:embed sql/get-distinct-stations.sql
var getDistinctStationsSQL string

//go:embed sql/get-last-date.sql
var getLastDateSQL string

//go:embed sql/get-temperatures-since.sql
var getTemperaturesSinceSQL string

//go:embed sql/get-summary-from.sql
var getSummaryFromSQL string

//go:embed sql/get-summary-between.sql
var getSummaryBetweenSQL string

var (
	// ErrDataSource wraps any failure to reach or query the dataset.
	ErrDataSource = errors.New("data source unavailable")
	// ErrEmptyDataset means there are no measurement rows, so the latest date is undefined.
	ErrEmptyDataset = errors.New("dataset has no measurements")
)

type ClimateRepository interface {
	// GetPrecipitation returns every (date, prcp) row ordered by date.
	GetPrecipitation(ctx context.Context) ([]types.DatedValue, error)
	// GetStationIDs returns distinct station ids that have measurements.
	GetStationIDs(ctx context.Context) ([]string, error)
	// GetRecentTemperatures returns (date, tobs) rows within days of the latest measurement date.
	GetRecentTemperatures(ctx context.Context, days int) ([]types.DatedValue, error)
	// GetTemperatureSummaries returns per-date min/avg/max of tobs for date >= start,
	// and date <= end when end is not empty.
	GetTemperatureSummaries(ctx context.Context, start string, end string) ([]types.DailySummary, error)
}

type repositoryImpl struct {
	db     *sql.DB
	driver string
}

func NewRepository(conn *sql.DB, driver string) ClimateRepository {
	return &repositoryImpl{db: conn, driver: driver}
}

// withConn runs fn on a connection reserved for this call and releases it on
// every return path.
func (r *repositoryImpl) withConn(ctx context.Context, fn func(conn *sql.Conn) error) error {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("%w: acquire connection: %w", ErrDataSource, err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			slog.Error("release connection", "error", err)
		}
	}()
	return fn(conn)
}

func (r *repositoryImpl) GetPrecipitation(ctx context.Context) ([]types.DatedValue, error) {
	var out []types.DatedValue
	err := r.withConn(ctx, func(conn *sql.Conn) error {
		var err error
		out, err = queryDatedValues(ctx, conn, r.rebind(getPrecipitationSQL))
		if err != nil {
			return fmt.Errorf("%w: precipitation: %w", ErrDataSource, err)
		}
		return nil
	})
	return out, err
}

func (r *repositoryImpl) GetStationIDs(ctx context.Context) ([]string, error) {
	out := []string{}
	err := r.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, r.rebind(getDistinctStationsSQL))
		if err != nil {
			return fmt.Errorf("%w: stations: %w", ErrDataSource, err)
		}
		defer func() {
			if err := rows.Close(); err != nil {
				slog.Error("close stations rows", "error", err)
			}
		}()
		for rows.Next() {
			var id string
			if err := rows.Scan(&id); err != nil {
				return fmt.Errorf("%w: scan station: %w", ErrDataSource, err)
			}
			out = append(out, id)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("%w: stations: %w", ErrDataSource, err)
		}
		return nil
	})
	return out, err
}

func (r *repositoryImpl) GetRecentTemperatures(ctx context.Context, days int) ([]types.DatedValue, error) {
	var out []types.DatedValue
	err := r.withConn(ctx, func(conn *sql.Conn) error {
		var last sql.NullString
		if err := conn.QueryRowContext(ctx, r.rebind(getLastDateSQL)).Scan(&last); err != nil {
			return fmt.Errorf("%w: last date: %w", ErrDataSource, err)
		}
		if !last.Valid {
			return ErrEmptyDataset
		}

		cutoff, err := CutoffDate(last.String, days)
		if err != nil {
			return err
		}
		slog.Debug("recent temperatures window", "last_date", last.String, "cutoff_date", cutoff)

		out, err = queryDatedValues(ctx, conn, r.rebind(getTemperaturesSinceSQL), cutoff)
		if err != nil {
			return fmt.Errorf("%w: temperatures since %s: %w", ErrDataSource, cutoff, err)
		}
		return nil
	})
	return out, err
}

func (r *repositoryImpl) GetTemperatureSummaries(ctx context.Context, start string, end string) ([]types.DailySummary, error) {
	query, args := getSummaryFromSQL, []any{start}
	if end != "" {
		query, args = getSummaryBetweenSQL, []any{start, end}
	}

	out := []types.DailySummary{}
	err := r.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, r.rebind(query), args...)
		if err != nil {
			return fmt.Errorf("%w: temperature summary: %w", ErrDataSource, err)
		}
		defer func() {
			if err := rows.Close(); err != nil {
				slog.Error("close summary rows", "error", err)
			}
		}()
		for rows.Next() {
			var (
				s             types.DailySummary
				lo, avg, high sql.NullFloat64
			)
			if err := rows.Scan(&s.Date, &lo, &avg, &high); err != nil {
				return fmt.Errorf("%w: scan summary: %w", ErrDataSource, err)
			}
			s.Min, s.Avg, s.Max = floatPtr(lo), floatPtr(avg), floatPtr(high)
			out = append(out, s)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("%w: temperature summary: %w", ErrDataSource, err)
		}
		return nil
	})
	return out, err
}

// CutoffDate subtracts days calendar days from an ISO-8601 date.
func CutoffDate(last string, days int) (string, error) {
	t, err := time.Parse(time.DateOnly, last)
	if err != nil {
		return "", fmt.Errorf("parse last date %q: %w", last, err)
	}
	return t.AddDate(0, 0, -days).Format(time.DateOnly), nil
}

func (r *repositoryImpl) rebind(query string) string {
	return db.Rebind(r.driver, query)
}

func queryDatedValues(ctx context.Context, conn *sql.Conn, query string, args ...any) ([]types.DatedValue, error) {
	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("close dated rows", "error", err)
		}
	}()

	var out []types.DatedValue
	for rows.Next() {
		var (
			rec types.DatedValue
			v   sql.NullFloat64
		)
		if err := rows.Scan(&rec.Date, &v); err != nil {
			return nil, err
		}
		rec.Value = floatPtr(v)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
