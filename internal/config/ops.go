package config

import "time"

type Ops struct {
	ListenAddress   string        `env:"OPS_LISTEN_ADDRESS" envDefault:":8080" validate:"required"`
	ShutdownTimeout time.Duration `env:"OPS_SHUTDOWN_TIMEOUT" envDefault:"5s" validate:"gt=0"`
}
