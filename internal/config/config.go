// Package config holds the runtime settings of the clinic console.
// Values come from defaults, then an optional JSON file, then flags;
// later sources win.
package config

import "path/filepath"

// Config holds runtime settings.
//
// Fields:
//   - StorageDir: directory holding the local SQLite database file.
//   - DatabaseDSN: when set to a postgres:// URL, accounts live in a shared
//     Postgres database instead of the local file.
//   - SettingsFile: JSON file carrying the last-login marker.
//   - ExportDir: target directory for CSV exports.
type Config struct {
	StorageDir   string
	DatabaseDSN  string
	SettingsFile string
	ExportDir    string
}

// LoadDefaults populates c with the single-seat desktop layout: everything
// under the working directory, local SQLite storage.
func (c *Config) LoadDefaults() {
	c.StorageDir = "storage"
	c.DatabaseDSN = ""
	c.SettingsFile = filepath.Join("config", "settings.json")
	c.ExportDir = "exports"
}

// SQLitePath returns the local database file used when no DSN is set.
func (c *Config) SQLitePath() string {
	return filepath.Join(c.StorageDir, "users.db")
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
