package zap

import (
	"github.com/caarlos0/env/v11"

	"github.com/trickstertwo/logport"
	"github.com/trickstertwo/logport/adapter/dynamic"
)

// Env:
//
//	LOGPORT_ZAP_LEVEL    : trace|debug|info|warn|error|fatal (default info)
//	LOGPORT_ZAP_CONSOLE=1: console encoder instead of JSON
//	LOGPORT_ZAP_CALLER=1 : include caller in logs
type envConfig struct {
	Level   string `env:"LOGPORT_ZAP_LEVEL" envDefault:"info"`
	Console bool   `env:"LOGPORT_ZAP_CONSOLE"`
	Caller  bool   `env:"LOGPORT_ZAP_CALLER"`
}

// Importing this package makes the zap backend discoverable: an
// env-configured SugaredLogger lands in the dynamic target slot, and the
// dynamic-binding entry joins the default resolver's candidate list ahead
// of the console fallback.
func init() {
	var ec envConfig
	_ = env.Parse(&ec)
	min, _ := logport.ParseLevel(ec.Level)

	dynamic.SetTarget(NewSugared(Config{
		MinLevel: min,
		Console:  ec.Console,
		Caller:   ec.Caller,
	}))

	logport.Register(logport.Entry{
		Name:      "zap",
		Priority:  10,
		Available: func() bool { return dynamic.Available(TypeName) },
		New:       func() logport.Provider { return dynamic.New() },
	})
}
