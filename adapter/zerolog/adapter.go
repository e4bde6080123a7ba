package zerolog

import (
	"github.com/rs/zerolog"

	"github.com/trickstertwo/logport"
)

// Backend implements the provider contract directly against rs/zerolog as a
// compile-time optional dependency: no reflection, the real API throughout.
//
// Optimizations:
//   - GetLogger binds the name onto a child zerolog.Logger once, not per call.
//   - Fast pre-check using GetLevel() to avoid allocating zerolog.Event when
//     the level is disabled.
//   - Uses Logger.WithLevel(...) to avoid a level switch at call sites.
type Backend struct {
	l zerolog.Logger
}

func New(l zerolog.Logger) *Backend {
	return &Backend{l: l}
}

// GetLogger binds name as the "logger" field of a child logger and closes
// over it.
func (b *Backend) GetLogger(name string) logport.LogFunc {
	zl := b.l.With().Str("logger", name).Logger()
	return func(level logport.Level, msg logport.MessageThunk, err error, args ...any) bool {
		zlvl := mapLevel(level)
		enabled := zlvl >= zl.GetLevel() && zl.GetLevel() != zerolog.Disabled
		if msg == nil {
			return enabled
		}
		if !enabled {
			// Lazy-evaluation contract: the thunk is never paid for a
			// message that would be discarded.
			return false
		}
		ev := zl.WithLevel(zlvl)
		if err != nil {
			ev = ev.Err(err)
		}
		ev.Msg(logport.Format(msg(), args...))
		return true
	}
}

// OpenNestedContext is not implemented; it fails loudly rather than silently
// dropping diagnostic context.
func (b *Backend) OpenNestedContext(name string) logport.Scope {
	panic("logport/zerolog: nested logging context is not implemented")
}

// OpenMappedContext is not implemented; same fail-loud contract as
// OpenNestedContext.
func (b *Backend) OpenMappedContext(key string, value any, destructure bool) logport.Scope {
	panic("logport/zerolog: mapped logging context is not implemented")
}

// mapLevel converts logport.Level to zerolog.Level.
// LevelFatal is mapped to Error to avoid zerolog.Fatal() semantics
// (which would exit the process).
func mapLevel(l logport.Level) zerolog.Level {
	switch {
	case l <= logport.LevelTrace:
		return zerolog.TraceLevel
	case l <= logport.LevelDebug:
		return zerolog.DebugLevel
	case l <= logport.LevelInfo:
		return zerolog.InfoLevel
	case l <= logport.LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
