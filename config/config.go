package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
)

type Config struct {
	Database pg.Options
	App      struct {
		Host       string
		Port       int
		LogQueries bool
	}
	Session Session
	Quotes  Quotes
}

// Session configures the read-later store. An empty RedisAddr keeps sessions
// in memory.
type Session struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CookieName    string
	CookieSecure  bool
	TTL           time.Duration
}

type Quotes struct {
	ExchangeRateURL string
	StockDayURL     string
	Timeout         time.Duration
}

// Load decodes the TOML file at path on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("decode %s: %w", path, err)
	}

	return cfg, nil
}

func Default() Config {
	var cfg Config
	cfg.Database = pg.Options{
		Addr:       "localhost:5432",
		User:       "postgres",
		Database:   "my_site",
		MaxRetries: 3,
		PoolSize:   5,
	}
	cfg.App.Host = "0.0.0.0"
	cfg.App.Port = 8000
	cfg.Session.CookieName = "sessionid"
	cfg.Session.TTL = 14 * 24 * time.Hour
	cfg.Quotes.Timeout = 5 * time.Second

	return cfg
}
