package dynamic

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/trickstertwo/logport"
)

// Backend bridges to an external logging library the facade never references
// statically. Every binding into the library is built from runtime type
// metadata, paid once: the scoped-logger binding at construction, the rest
// of the gateway lazily on first use. Per log call only level translation
// and dispatch remain.
type Backend struct {
	named      func(name string) reflect.Value
	loggerType reflect.Type

	once sync.Once
	gw   *gateway
}

// New binds against the registered Target; it panics when none is set.
func New() *Backend {
	root, ok := Target()
	if !ok {
		panic("logport/dynamic: no backend target registered")
	}
	return NewFor(root)
}

// NewFor binds against an explicit backend root. The root must expose
// Named(string) returning the backend's logger type; Level, Logf, With and
// optionally Enabled are resolved from that type on first use.
func NewFor(root any) *Backend {
	rv := reflect.ValueOf(root)
	rt := rv.Type()
	m, ok := rt.MethodByName("Named")
	if !ok || m.Type.NumIn() != 2 || m.Type.In(1).Kind() != reflect.String || m.Type.NumOut() != 1 {
		panic(fmt.Sprintf("logport/dynamic: %s has no Named(string) method; cannot bind the scoped-logger operation", rt))
	}
	fn := m.Func
	return &Backend{
		named: func(name string) reflect.Value {
			return fn.Call([]reflect.Value{rv, reflect.ValueOf(name)})[0]
		},
		loggerType: m.Type.Out(0),
	}
}

func (b *Backend) gateway() *gateway {
	b.once.Do(func() { b.gw = buildGateway(b.loggerType) })
	return b.gw
}

// GetLogger obtains the scoped backend logger for name once, then returns a
// closure over it.
//
// A nil thunk is a pure enablement probe. When the level is disabled the
// thunk is never evaluated and no write binding runs; the call reports
// false.
func (b *Backend) GetLogger(name string) logport.LogFunc {
	gw := b.gateway()
	logger := b.named(name)
	return func(level logport.Level, msg logport.MessageThunk, err error, args ...any) bool {
		lvl := gw.level(level)
		if msg == nil {
			return gw.enabled(logger, lvl)
		}
		if !gw.enabled(logger, lvl) {
			return false
		}
		tpl := msg()
		if err != nil {
			gw.writeErr(logger, lvl, err, tpl, args)
		} else {
			gw.write(logger, lvl, tpl, args)
		}
		return true
	}
}

// OpenNestedContext is not implemented; it fails loudly rather than silently
// dropping diagnostic context.
func (b *Backend) OpenNestedContext(name string) logport.Scope {
	panic("logport/dynamic: nested logging context is not implemented")
}

// OpenMappedContext is not implemented; same fail-loud contract as
// OpenNestedContext.
func (b *Backend) OpenMappedContext(key string, value any, destructure bool) logport.Scope {
	panic("logport/dynamic: mapped logging context is not implemented")
}
