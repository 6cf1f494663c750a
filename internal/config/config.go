package config

import "github.com/caarlos0/env/v11"

type Config struct {
	Env         string `env:"APP_ENV" envDefault:"dev"`
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080"`
	WorkerCount int    `env:"WORKER_COUNT" envDefault:"4"`
}

func Load() (Config, error) {
	var cfg Config
	err := env.Parse(&cfg)
	return cfg, err
}
