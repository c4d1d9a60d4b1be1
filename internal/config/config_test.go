package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ".huellitas", c.DataDir)
	assert.Equal(t, "huellitas.db", c.DatabaseFile)
	assert.Equal(t, "https://newsapi.org/v2/everything", c.NewsEndpoint)
	assert.Equal(t, "es", c.NewsLanguage)
	assert.Equal(t, 10*time.Second, c.HTTPTimeout)
	assert.Equal(t, ValidationFull, c.Validation)
	assert.Equal(t, SchemePlain, c.PasswordScheme)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "huellitas.db", cfg.DatabaseFile)
	assert.Equal(t, ValidationFull, cfg.Validation)
}
