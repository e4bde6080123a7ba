package console

import (
	"fmt"
	"time"

	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/logport"
)

// Backend is the built-in fallback Provider: pipe-delimited lines through a
// serialized Sink. It has no enablement gating; presence of a thunk is
// treated as "please log".
type Backend struct {
	sink *Sink
}

// New wraps an already-running Sink.
func New(sink *Sink) *Backend {
	return &Backend{sink: sink}
}

// Sink exposes the backend's sink, e.g. to Close it on shutdown.
func (b *Backend) Sink() *Sink { return b.sink }

// GetLogger returns a LogFunc with name bound.
//
// Line contract:
//
//	{UTC RFC3339Nano ts} | {Level} | {name} | {message}[ | {error}]
//
// where {message} is the template with positional {0}, {1}, ... placeholders
// substituted (see logport.Format). A nil thunk reports true unconditionally.
func (b *Backend) GetLogger(name string) logport.LogFunc {
	return func(level logport.Level, msg logport.MessageThunk, err error, args ...any) bool {
		if msg == nil {
			return true
		}
		text := logport.Format(msg(), args...)
		if err != nil {
			text += " | " + err.Error()
		}
		line := fmt.Sprintf("%s | %s | %s | %s",
			xclock.Now().UTC().Format(time.RFC3339Nano), level, name, text)
		b.sink.Submit(levelColor(level), line)
		return true
	}
}

// OpenNestedContext is not implemented; it fails loudly rather than silently
// dropping diagnostic context.
func (b *Backend) OpenNestedContext(name string) logport.Scope {
	panic("logport/console: nested logging context is not implemented")
}

// OpenMappedContext is not implemented; same fail-loud contract as
// OpenNestedContext.
func (b *Backend) OpenMappedContext(key string, value any, destructure bool) logport.Scope {
	panic("logport/console: mapped logging context is not implemented")
}

func levelColor(l logport.Level) Color {
	switch l {
	case logport.LevelFatal:
		return ColorDarkRed
	case logport.LevelError:
		return ColorRed
	case logport.LevelWarn:
		return ColorYellow
	case logport.LevelInfo:
		return ColorNone
	case logport.LevelDebug:
		return ColorGray
	case logport.LevelTrace:
		return ColorDarkGray
	default:
		// Unknown severity keeps the current foreground.
		return ColorNone
	}
}
