package config

import (
	"os"
	"path/filepath"
)

// Config holds environment-driven configuration. The backend is fixed for
// the process lifetime: a MySQL DSN selects the remote backend, otherwise
// the local diskv store is used.
type Config struct {
	MySQL struct {
		DSN string // e.g., user:pass@tcp(host:3306)/dbname?parseTime=true&multiStatements=true
	}
	Local struct {
		Dir string // data directory for the diskv backend
	}
	HTTP struct {
		Addr string // listen address for the serve command
	}
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	var cfg Config

	cfg.MySQL.DSN = os.Getenv("TIMEGRID_MYSQL_DSN")

	cfg.Local.Dir = os.Getenv("TIMEGRID_DATA_DIR")
	if cfg.Local.Dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, err
		}
		cfg.Local.Dir = filepath.Join(home, ".timegrid")
	}

	cfg.HTTP.Addr = os.Getenv("TIMEGRID_HTTP_ADDR")
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = ":8787"
	}

	return cfg, nil
}

// RemoteEnabled reports whether the remote backend was selected.
func (c Config) RemoteEnabled() bool { return c.MySQL.DSN != "" }
