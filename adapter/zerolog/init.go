package zerolog

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"github.com/trickstertwo/logport"
)

// Env:
//
//	LOGPORT_ZEROLOG_LEVEL    : trace|debug|info|warn|error|fatal (default info)
//	LOGPORT_ZEROLOG_CONSOLE=1: pretty console output instead of JSON
type envConfig struct {
	Level   string `env:"LOGPORT_ZEROLOG_LEVEL" envDefault:"info"`
	Console bool   `env:"LOGPORT_ZEROLOG_CONSOLE"`
}

// Importing this package appends a zerolog backend to the default resolver's
// candidate list. Compile-time presence is availability: the probe is
// unconditionally true, and priority places it between the dynamic zap
// backend and the console fallback.
func init() {
	logport.Register(logport.Entry{
		Name:      "zerolog",
		Priority:  50,
		Available: func() bool { return true },
		New: func() logport.Provider {
			var ec envConfig
			_ = env.Parse(&ec)
			min, _ := logport.ParseLevel(ec.Level)

			var zl zerolog.Logger
			if ec.Console {
				zl = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
			} else {
				zl = zerolog.New(os.Stdout)
			}
			zl = zl.With().Timestamp().Logger().Level(mapLevel(min))
			return New(zl)
		},
	})
}
