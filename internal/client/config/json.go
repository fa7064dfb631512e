package config

import (
	"encoding/json"
	"os"

	"soukclient/internal/flagx"
	"soukclient/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the splash duration either as a string
// like "2s" or as integer nanoseconds.
type JsonConfig struct {
	ServerBaseURL     string         `json:"server_base_url"`
	DatabaseDSN       string         `json:"database_dsn"`
	Language          string         `json:"language"`
	SplashMinDuration timex.Duration `json:"splash_min_duration"`
}

// parseJson overlays Config with values loaded from a JSON file whose path
// comes from the -c/-config flags. When no path is given, nothing happens.
// Empty JSON fields keep the value from the previous layer.
//
// Read or unmarshal errors panic; the config layers run before anything
// else and a broken config file should stop the program immediately.
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

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.Language != "" {
		cfg.Language = jc.Language
	}
	if jc.SplashMinDuration.Duration != 0 {
		cfg.SplashMinDuration = jc.SplashMinDuration.Duration
	}
}
