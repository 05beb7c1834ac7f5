package config

import "time"

type Scanner struct {
	InboxDir     string        `env:"SCANNER_INBOX_DIR" envDefault:"./inbox" validate:"required"`
	OutputDir    string        `env:"SCANNER_OUTPUT_DIR" envDefault:"./out" validate:"required"`
	ProcessedDir string        `env:"SCANNER_PROCESSED_DIR" envDefault:"./processed" validate:"required,nefield=InboxDir"`
	Interval     time.Duration `env:"SCANNER_INTERVAL" envDefault:"5s" validate:"gt=0"`
	Mode         string        `env:"SCANNER_MODE" envDefault:"repair" validate:"oneof=decode validate repair"`
	// 0 означает число процессоров.
	Workers int `env:"SCANNER_WORKERS" envDefault:"0" validate:"gte=0"`
	// 0 выключает кэш исправлений.
	CacheTTL      time.Duration `env:"SCANNER_CACHE_TTL" envDefault:"10m" validate:"gte=0"`
	TopBarRemoval bool          `env:"SCANNER_TOP_BAR_REMOVAL" envDefault:"false"`
}
