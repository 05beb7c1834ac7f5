package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

//nolint:gochecknoglobals // skip
var validate = validator.New(validator.WithRequiredStructEnabled())

type Config struct {
	App     App
	Log     Log
	Scanner Scanner
	Ops     Ops
}

// Load читает .env (если есть), затем переменные окружения, и проверяет результат.
func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := validate.Struct(config); err != nil {
		return Config{}, fmt.Errorf("validate.Struct: %w", err)
	}

	return config, nil
}
