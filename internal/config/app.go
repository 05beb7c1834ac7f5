package config

type App struct {
	Name    string `env:"APP_NAME" envDefault:"bankocr" validate:"required"`
	Version string `env:"APP_VERSION" envDefault:"dev" validate:"required"`
}
