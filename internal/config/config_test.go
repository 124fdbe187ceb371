package config

import (
	"log/slog"
	"testing"
	"time"
)

var envKeys = []string{
	"APP_ENV",
	"LOG_LEVEL",
	"HTTP_ADDR",
	"HTTP_READ_HEADER_TIMEOUT",
	"SHUTDOWN_TIMEOUT",
	"DB_DRIVER",
	"DB_DSN",
	"SQLITE_PATH",
	"DB_MAX_OPEN_CONNS",
	"DB_MAX_IDLE_CONNS",
	"DB_CONN_MAX_LIFETIME",
	"DB_LOG_SQL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	got, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v, want nil", err)
	}

	if got.AppEnv != "dev" {
		t.Errorf("AppEnv = %q, want %q", got.AppEnv, "dev")
	}
	if got.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want %v", got.LogLevel, slog.LevelInfo)
	}
	if got.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q, want %q", got.HTTPAddr, ":8080")
	}
	if got.HTTPReadHeaderTimeout != 5*time.Second {
		t.Errorf("HTTPReadHeaderTimeout = %v, want 5s", got.HTTPReadHeaderTimeout)
	}
	if got.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 10s", got.ShutdownTimeout)
	}
	if got.Driver != DriverSQLite {
		t.Errorf("Driver = %q, want %q", got.Driver, DriverSQLite)
	}
	if got.SQLitePath != "Resources/hawaii.sqlite" {
		t.Errorf("SQLitePath = %q, want %q", got.SQLitePath, "Resources/hawaii.sqlite")
	}
	if got.MaxOpenConns != 4 || got.MaxIdleConns != 4 {
		t.Errorf("MaxOpenConns/MaxIdleConns = %d/%d, want 4/4", got.MaxOpenConns, got.MaxIdleConns)
	}
	if got.ConnMaxLifetime != 0 {
		t.Errorf("ConnMaxLifetime = %v, want 0", got.ConnMaxLifetime)
	}
	if got.LogSQL {
		t.Error("LogSQL = true, want false")
	}
}

func TestLoadFromEnv_AppEnv_Valid(t *testing.T) {
	tests := []struct {
		name   string
		appEnv string
		want   string
	}{
		{name: "dev", appEnv: "dev", want: "dev"},
		{name: "prod", appEnv: "prod", want: "prod"},
		{name: "prod with whitespace", appEnv: "\nprod\t", want: "prod"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("APP_ENV", tt.appEnv)

			got, err := LoadFromEnv()
			if err != nil {
				t.Fatalf("LoadFromEnv() error = %v, want nil", err)
			}
			if got.AppEnv != tt.want {
				t.Errorf("AppEnv = %q, want %q", got.AppEnv, tt.want)
			}
		})
	}
}

func TestLoadFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "app env", key: "APP_ENV", val: "staging"},
		{name: "app env is case sensitive", key: "APP_ENV", val: "DEV"},
		{name: "log level", key: "LOG_LEVEL", val: "loud"},
		{name: "driver", key: "DB_DRIVER", val: "mysql"},
		{name: "max open conns", key: "DB_MAX_OPEN_CONNS", val: "many"},
		{name: "max idle conns", key: "DB_MAX_IDLE_CONNS", val: "1.5"},
		{name: "conn lifetime", key: "DB_CONN_MAX_LIFETIME", val: "forever"},
		{name: "negative shutdown timeout", key: "SHUTDOWN_TIMEOUT", val: "-1s"},
		{name: "read header timeout", key: "HTTP_READ_HEADER_TIMEOUT", val: "5"},
		{name: "log sql", key: "DB_LOG_SQL", val: "sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)

			if _, err := LoadFromEnv(); err == nil {
				t.Fatalf("LoadFromEnv() with %s=%q error = nil, want non-nil", tt.key, tt.val)
			}
		})
	}
}

func TestLoadFromEnv_Postgres(t *testing.T) {
	t.Run("requires DB_DSN", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DB_DRIVER", "postgres")

		if _, err := LoadFromEnv(); err == nil {
			t.Fatal("LoadFromEnv() error = nil, want error for missing DB_DSN")
		}
	})

	t.Run("accepts DSN", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DB_DRIVER", "postgres")
		t.Setenv("DB_DSN", " postgres://climate@localhost:5432/climate?sslmode=disable ")

		got, err := LoadFromEnv()
		if err != nil {
			t.Fatalf("LoadFromEnv() error = %v, want nil", err)
		}
		if got.Driver != DriverPostgres {
			t.Errorf("Driver = %q, want %q", got.Driver, DriverPostgres)
		}
		if got.DSN != "postgres://climate@localhost:5432/climate?sslmode=disable" {
			t.Errorf("DSN = %q, want trimmed DSN", got.DSN)
		}
	})
}

func TestLoadFromEnv_DatabaseOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SQLITE_PATH", "/data/hawaii.sqlite")
	t.Setenv("DB_MAX_OPEN_CONNS", "8")
	t.Setenv("DB_MAX_IDLE_CONNS", "2")
	t.Setenv("DB_CONN_MAX_LIFETIME", "30m")
	t.Setenv("DB_LOG_SQL", "true")

	got, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v, want nil", err)
	}
	if got.SQLitePath != "/data/hawaii.sqlite" {
		t.Errorf("SQLitePath = %q", got.SQLitePath)
	}
	if got.MaxOpenConns != 8 || got.MaxIdleConns != 2 {
		t.Errorf("MaxOpenConns/MaxIdleConns = %d/%d, want 8/2", got.MaxOpenConns, got.MaxIdleConns)
	}
	if got.ConnMaxLifetime != 30*time.Minute {
		t.Errorf("ConnMaxLifetime = %v, want 30m", got.ConnMaxLifetime)
	}
	if !got.LogSQL {
		t.Error("LogSQL = false, want true")
	}
}

func TestLoadFromEnv_HTTPAddr(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "default when empty", in: "", want: ":8080"},
		{name: "trims whitespace", in: "  :9090  ", want: ":9090"},
		{name: "host:port", in: "127.0.0.1:8081", want: "127.0.0.1:8081"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("HTTP_ADDR", tt.in)

			got, err := LoadFromEnv()
			if err != nil {
				t.Fatalf("LoadFromEnv() error = %v, want nil", err)
			}
			if got.HTTPAddr != tt.want {
				t.Errorf("HTTPAddr = %q, want %q", got.HTTPAddr, tt.want)
			}
		})
	}
}

func TestParseLogLevel_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want slog.Level
	}{
		{name: "debug", in: "debug", want: slog.LevelDebug},
		{name: "info", in: "info", want: slog.LevelInfo},
		{name: "warn", in: "warn", want: slog.LevelWarn},
		{name: "warning", in: "warning", want: slog.LevelWarn},
		{name: "error", in: "error", want: slog.LevelError},
		{name: "case insensitive", in: "DeBuG", want: slog.LevelDebug},
		{name: "trims whitespace", in: "  warn \n", want: slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if err != nil {
				t.Fatalf("parseLogLevel(%q) error = %v, want nil", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("parseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseLogLevel_Invalid(t *testing.T) {
	for _, in := range []string{"", "nope", "warns", "1"} {
		got, err := parseLogLevel(in)
		if err == nil {
			t.Fatalf("parseLogLevel(%q) error = nil, want non-nil", in)
		}
		if got != slog.LevelInfo {
			t.Errorf("parseLogLevel(%q) = %v, want %v on error", in, got, slog.LevelInfo)
		}
	}
}
