package config

import (
	"log"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port      string `env:"PORT" envDefault:"3000"`
	DBDSN     string `env:"DB_DSN" envDefault:"familiar.db"`
	StaticDir string `env:"STATIC_DIR" envDefault:"./web/static"`
	LogFile   string `env:"LOG_FILE" envDefault:"./familiar.log"`
	JWTSecret string `env:"JWT_SECRET" envDefault:"dev-only-secret-change-me"`
}

func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("[config] parse env: %v", err)
	}
	log.Printf("[config] PORT=%s DB_DSN=%s STATIC_DIR=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.StaticDir, cfg.LogFile)
	return cfg
}
