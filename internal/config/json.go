package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/huellitas-app/huellitas/internal/flagx"
	"github.com/huellitas-app/huellitas/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify the timeout either as a
// string like "10s" or as integer nanoseconds. After parsing, values are
// copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	DataDir        string         `json:"data_dir"`
	DatabaseFile   string         `json:"database_file"`
	NewsEndpoint   string         `json:"news_endpoint"`
	NewsAPIKey     string         `json:"news_api_key"`
	NewsQuery      string         `json:"news_query"`
	NewsLanguage   string         `json:"news_language"`
	GeoEndpoint    string         `json:"geo_endpoint"`
	HTTPTimeout    timex.Duration `json:"http_timeout"`
	Validation     string         `json:"validation"`
	PasswordScheme string         `json:"password_scheme"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Only fields present in the file override the current Config. Intended
// usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
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

	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.DatabaseFile != "" {
		cfg.DatabaseFile = jc.DatabaseFile
	}
	if jc.NewsEndpoint != "" {
		cfg.NewsEndpoint = jc.NewsEndpoint
	}
	if jc.NewsAPIKey != "" {
		cfg.NewsAPIKey = jc.NewsAPIKey
	}
	if jc.NewsQuery != "" {
		cfg.NewsQuery = jc.NewsQuery
	}
	if jc.NewsLanguage != "" {
		cfg.NewsLanguage = jc.NewsLanguage
	}
	if jc.GeoEndpoint != "" {
		cfg.GeoEndpoint = jc.GeoEndpoint
	}
	if jc.HTTPTimeout.Duration != 0 {
		cfg.HTTPTimeout = time.Duration(jc.HTTPTimeout.Duration)
	}
	if jc.Validation != "" {
		cfg.Validation = jc.Validation
	}
	if jc.PasswordScheme != "" {
		cfg.PasswordScheme = jc.PasswordScheme
	}
}
