package config

type Log struct {
	Level        string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	MaskAccounts bool   `env:"LOG_MASK_ACCOUNTS" envDefault:"true"`
	NoColor      bool   `env:"LOG_NO_COLOR" envDefault:"false"`
}
