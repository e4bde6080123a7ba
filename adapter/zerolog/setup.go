package zerolog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/logport"
)

// Config is an explicit, code-first configuration for zerolog + logport.
// No envs, no hidden init, one call to Use.
type Config struct {
	Writer            io.Writer // default: os.Stdout
	MinLevel          logport.Level
	Console           bool   // pretty console output instead of JSON
	ConsoleTimeFormat string // only used if Console==true; default time.RFC3339Nano
}

// Use builds a zerolog-backed Backend from Config and installs it as the
// explicit provider override on the default resolver.
func Use(cfg Config) *Backend {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}

	var zl zerolog.Logger
	if cfg.Console {
		cw := zerolog.ConsoleWriter{Out: w}
		if cfg.ConsoleTimeFormat == "" {
			cw.TimeFormat = time.RFC3339Nano
		} else {
			cw.TimeFormat = cfg.ConsoleTimeFormat
		}
		zl = zerolog.New(cw)
	} else {
		zl = zerolog.New(w)
	}
	zl = zl.With().Timestamp().Logger().Level(mapLevel(cfg.MinLevel))

	b := New(zl)
	logport.SetProvider(b)
	return b
}
