package console

import (
	"io"
	"os"

	"github.com/trickstertwo/logport"
)

// Config is an explicit, code-first configuration for the console backend.
// No envs, no hidden init, one call to Use.
type Config struct {
	Writer  io.Writer // default: os.Stdout
	NoColor bool      // disable ANSI color framing
}

// Use builds a console Backend from Config and installs it as the explicit
// provider override on the default resolver. The returned Backend's Sink
// should be Closed on shutdown to drain queued lines.
func Use(cfg Config) *Backend {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	b := New(NewSink(w, !cfg.NoColor))
	logport.SetProvider(b)
	return b
}
