package config

import (
	"encoding/json"
	"os"

	"github.com/dkorsakov/clinickeeper/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Empty fields
// leave the current Config value in place.
type JsonConfig struct {
	StorageDir   string `json:"storage_dir"`
	DatabaseDSN  string `json:"database_dsn"`
	SettingsFile string `json:"settings_file"`
	ExportDir    string `json:"export_dir"`
}

// parseJson overlays cfg with values from the JSON file named by the
// -c/-config flag. With no flag, nothing is loaded. Read or unmarshal
// errors panic: a config file that exists but cannot be used is a startup
// failure, not something to silently skip.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.StorageDir != "" {
		cfg.StorageDir = jc.StorageDir
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.SettingsFile != "" {
		cfg.SettingsFile = jc.SettingsFile
	}
	if jc.ExportDir != "" {
		cfg.ExportDir = jc.ExportDir
	}
}
