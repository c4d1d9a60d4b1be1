package config

import "time"

// Validation strictness levels for the registration flow.
const (
	ValidationFull  = "full"
	ValidationBasic = "basic"
)

// Credential storage schemes.
const (
	SchemePlain  = "plain"
	SchemeBcrypt = "bcrypt"
)

// Config holds runtime settings for the huellitas client.
//
// Fields:
//   - DataDir: directory holding the database, session marker and secret.
//   - DatabaseFile: sqlite file name inside DataDir.
//   - NewsEndpoint/NewsAPIKey/NewsQuery/NewsLanguage: announcements feed.
//   - GeoEndpoint: opaque geolocation collaborator returning {latitude, longitude}.
//   - HTTPTimeout: per-request timeout for outbound HTTP calls.
//   - Validation: registration strictness, ValidationFull or ValidationBasic.
//   - PasswordScheme: SchemePlain (verbatim storage) or SchemeBcrypt.
type Config struct {
	DataDir        string
	DatabaseFile   string
	NewsEndpoint   string
	NewsAPIKey     string
	NewsQuery      string
	NewsLanguage   string
	GeoEndpoint    string
	HTTPTimeout    time.Duration
	Validation     string
	PasswordScheme string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = ".huellitas"
	c.DatabaseFile = "huellitas.db"
	c.NewsEndpoint = "https://newsapi.org/v2/everything"
	c.NewsQuery = "mascotas perdidas"
	c.NewsLanguage = "es"
	c.GeoEndpoint = "https://geolocation-db.com/json/"
	c.HTTPTimeout = 10 * time.Second
	c.Validation = ValidationFull
	c.PasswordScheme = SchemePlain
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
