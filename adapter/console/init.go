package console

import (
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/trickstertwo/logport"
)

// Env:
//
//	LOGPORT_CONSOLE_NOCOLOR=1 : disable ANSI color framing
type envConfig struct {
	NoColor bool `env:"LOGPORT_CONSOLE_NOCOLOR"`
}

// Importing this package appends the console backend to the default
// resolver's candidate list as the lowest-priority fallback. It is always
// available; auto-detection picks it only when nothing else is.
func init() {
	logport.Register(logport.Entry{
		Name:      "console",
		Priority:  100,
		Available: func() bool { return true },
		New: func() logport.Provider {
			var cfg envConfig
			_ = env.Parse(&cfg)
			return New(NewSink(os.Stdout, !cfg.NoColor))
		},
	})
}
