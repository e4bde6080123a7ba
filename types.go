// Package logport is a logging facade with runtime backend resolution.
//
// Application code obtains a Logger without a compile-time dependency on any
// concrete logging backend. Backends register themselves into an ordered
// candidate list (usually from init() of a blank-imported package); at first
// use the resolver picks the highest-priority available backend exactly once
// for the whole process, or degrades to a no-op when none is present.
//
// Every backend satisfies a single call contract, LogFunc, which doubles as
// probe and emit: a nil message thunk asks "would this severity be emitted?"
// while a non-nil thunk requests emission, with the thunk evaluated at most
// once and only when the message will actually be written.
package logport

// MessageThunk defers production of the raw message template until it is
// known the message will be emitted. A nil thunk means probe-only.
type MessageThunk func() string

// LogFunc is the single contract every backend and consumer agree on.
//
// The returned boolean is not an I/O result: it reports whether a message at
// this severity was (or would have been) emitted. The template dialect is the
// backend's own; the built-in console backend substitutes positional {0},
// {1}, ... placeholders (see Format).
type LogFunc func(level Level, msg MessageThunk, err error, args ...any) bool

// Logger wraps exactly one LogFunc. Immutable once constructed.
type Logger struct {
	log LogFunc
}

// NewLogger wraps fn. A nil fn yields an inert logger that reports false.
func NewLogger(fn LogFunc) Logger {
	if fn == nil {
		fn = nopLog
	}
	return Logger{log: fn}
}

// Log forwards to the wrapped LogFunc.
func (l Logger) Log(level Level, msg MessageThunk, err error, args ...any) bool {
	return l.log(level, msg, err, args...)
}

// Enabled probes whether level would be emitted, without formatting cost.
func (l Logger) Enabled(level Level) bool {
	return l.log(level, nil, nil)
}

func nopLog(Level, MessageThunk, error, ...any) bool { return false }

// Scope is the handle returned by the context-scoping operations.
type Scope interface {
	Close() error
}

// Provider is the backend Strategy: a concrete logging destination.
//
// OpenNestedContext and OpenMappedContext are part of the contract but the
// built-in backends do not implement them; they panic with a descriptive
// message rather than silently dropping diagnostic context.
type Provider interface {
	GetLogger(name string) LogFunc
	OpenNestedContext(name string) Scope
	OpenMappedContext(key string, value any, destructure bool) Scope
}
