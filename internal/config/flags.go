package config

import (
	"flag"
	"os"
	"time"

	"github.com/huellitas-app/huellitas/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   data directory (default from Config)
//	-k string   news feed API key
//	-q string   news feed search term
//	-l string   news feed language
//	-t int      HTTP timeout in seconds (default from Config)
//	-s string   password scheme: plain or bcrypt
//	-v string   registration validation: full or basic
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-k", "-q", "-l", "-t", "-s", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.NewsAPIKey, "k", cfg.NewsAPIKey, "news feed API key")
	fs.StringVar(&cfg.NewsQuery, "q", cfg.NewsQuery, "news feed search term")
	fs.StringVar(&cfg.NewsLanguage, "l", cfg.NewsLanguage, "news feed language")
	httpTimeout := fs.Int("t", int(cfg.HTTPTimeout.Seconds()), "HTTP timeout (in seconds)")
	fs.StringVar(&cfg.PasswordScheme, "s", cfg.PasswordScheme, "password scheme (plain or bcrypt)")
	fs.StringVar(&cfg.Validation, "v", cfg.Validation, "registration validation (full or basic)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.HTTPTimeout = time.Duration(*httpTimeout) * time.Second
}
