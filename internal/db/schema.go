package db

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"

	"climate-server/internal/config"
)

// Table describes a relation the service reads and the columns it requires.
type Table struct {
	Name    string
	Columns []string
}

const (
	sqliteColumnsSQL   = `SELECT name FROM pragma_table_info(?)`
	postgresColumnsSQL = `SELECT column_name FROM information_schema.columns WHERE table_schema = current_schema() AND table_name = ?`
)

// VerifySchema checks that every table exists and carries the listed columns.
// It runs once at startup so a mismatched dataset fails before serving.
func VerifySchema(ctx context.Context, db *sql.DB, driver string, tables ...Table) error {
	query := sqliteColumnsSQL
	if driver == config.DriverPostgres {
		query = postgresColumnsSQL
	}
	query = Rebind(driver, query)

	for _, table := range tables {
		cols, err := tableColumns(ctx, db, query, table.Name)
		if err != nil {
			return fmt.Errorf("inspect table %s: %w", table.Name, err)
		}
		if len(cols) == 0 {
			return fmt.Errorf("table %s not found", table.Name)
		}
		var missing []string
		for _, c := range table.Columns {
			if !slices.Contains(cols, strings.ToLower(c)) {
				missing = append(missing, c)
			}
		}
		if len(missing) > 0 {
			return fmt.Errorf("table %s: missing columns %s", table.Name, strings.Join(missing, ", "))
		}
	}
	return nil
}

func tableColumns(ctx context.Context, db *sql.DB, query string, table string) ([]string, error) {
	rows, err := db.QueryContext(ctx, query, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, strings.ToLower(name))
	}
	return out, rows.Err()
}

// Rebind rewrites '?' placeholders to the driver's bind style.
// Queries are written for sqlite3; postgres needs $1, $2, ...
func Rebind(driver string, query string) string {
	if driver != config.DriverPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	inQuote := false
	for _, r := range query {
		switch {
		case r == '\'':
			inQuote = !inQuote
		case r == '?' && !inQuote:
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
