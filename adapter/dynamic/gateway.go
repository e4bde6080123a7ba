package dynamic

import (
	"encoding"
	"fmt"
	"reflect"

	"github.com/trickstertwo/logport"
)

// The gateway is the bound API surface of the external backend: one
// translated level value per logport.Level plus three callables built from
// method metadata. Construction happens once; the method lookups are never
// repeated on the log path.
type gateway struct {
	levels   map[logport.Level]reflect.Value
	enabled  func(logger, lvl reflect.Value) bool
	write    func(logger, lvl reflect.Value, tpl string, args []any)
	writeErr func(logger, lvl reflect.Value, err error, tpl string, args []any)
}

// levelNames maps internal severities to the bound library's level
// vocabulary. The names are fed to the backend level type's UnmarshalText.
var levelNames = map[logport.Level]string{
	logport.LevelFatal: "fatal",
	logport.LevelError: "error",
	logport.LevelWarn:  "warn",
	logport.LevelInfo:  "info",
	logport.LevelDebug: "debug",
	logport.LevelTrace: "debug", // most structured backends have no trace
}

// fallbackLevelName covers any internal level missing from levelNames.
const fallbackLevelName = "debug"

// level translates an internal severity, falling back to the debug mapping
// for unknown inputs.
func (g *gateway) level(l logport.Level) reflect.Value {
	if v, ok := g.levels[l]; ok {
		return v
	}
	return g.levels[logport.LevelDebug]
}

// buildGateway constructs the full binding set against loggerType.
// A missing type or member is a deployment mismatch, not a runtime
// condition: it panics with a message naming what could not be found.
func buildGateway(loggerType reflect.Type) *gateway {
	mLevel, ok := loggerType.MethodByName("Level")
	if !ok || mLevel.Type.NumIn() != 1 || mLevel.Type.NumOut() != 1 {
		panic(fmt.Sprintf("logport/dynamic: %s has no Level() method; cannot locate the backend level type", loggerType))
	}
	levelType := mLevel.Type.Out(0)

	g := &gateway{levels: make(map[logport.Level]reflect.Value, len(levelNames))}
	for lvl := logport.LevelTrace; lvl <= logport.LevelFatal; lvl++ {
		name, ok := levelNames[lvl]
		if !ok {
			name = fallbackLevelName
		}
		v, err := levelValue(levelType, name)
		if err != nil {
			panic(fmt.Sprintf("logport/dynamic: resolving backend level %q on %s: %v", name, levelType, err))
		}
		g.levels[lvl] = v
	}

	g.enabled = bindEnabled(loggerType, levelType, mLevel)
	g.write = bindWrite(loggerType, levelType)
	g.writeErr = bindWriteWithError(loggerType, g.write)
	return g
}

// levelValue materializes one member of the backend's level type by name.
func levelValue(levelType reflect.Type, name string) (reflect.Value, error) {
	pv := reflect.New(levelType)
	u, ok := pv.Interface().(encoding.TextUnmarshaler)
	if !ok {
		return reflect.Value{}, fmt.Errorf("level type does not implement encoding.TextUnmarshaler")
	}
	if err := u.UnmarshalText([]byte(name)); err != nil {
		return reflect.Value{}, err
	}
	return pv.Elem(), nil
}

// bindEnabled prefers an Enabled/IsEnabled(level) bool method; when the
// backend has none (zap's SugaredLogger does not), enablement falls back to
// comparing against the threshold reported by Level().
func bindEnabled(loggerType, levelType reflect.Type, mLevel reflect.Method) func(logger, lvl reflect.Value) bool {
	for _, name := range []string{"Enabled", "IsEnabled"} {
		m, ok := loggerType.MethodByName(name)
		if !ok {
			continue
		}
		t := m.Type
		if t.NumIn() != 2 || t.In(1) != levelType || t.NumOut() != 1 || t.Out(0).Kind() != reflect.Bool {
			continue
		}
		fn := m.Func
		return func(logger, lvl reflect.Value) bool {
			return fn.Call([]reflect.Value{logger, lvl})[0].Bool()
		}
	}

	levelFn := mLevel.Func
	switch levelType.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(logger, lvl reflect.Value) bool {
			return lvl.Int() >= levelFn.Call([]reflect.Value{logger})[0].Int()
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return func(logger, lvl reflect.Value) bool {
			return lvl.Uint() >= levelFn.Call([]reflect.Value{logger})[0].Uint()
		}
	default:
		panic(fmt.Sprintf("logport/dynamic: %s has neither an Enabled(%s) method nor an ordered level type; cannot bind the enablement operation", loggerType, levelType))
	}
}

// bindWrite binds Logf(level, template, args...).
func bindWrite(loggerType, levelType reflect.Type) func(logger, lvl reflect.Value, tpl string, args []any) {
	m, ok := loggerType.MethodByName("Logf")
	if !ok {
		panic(fmt.Sprintf("logport/dynamic: %s has no Logf method; cannot bind the write operation", loggerType))
	}
	t := m.Type
	if !t.IsVariadic() || t.NumIn() != 4 || t.In(1) != levelType || t.In(2).Kind() != reflect.String {
		panic(fmt.Sprintf("logport/dynamic: %s.Logf has unsupported shape %s", loggerType, t))
	}
	fn := m.Func
	return func(logger, lvl reflect.Value, tpl string, args []any) {
		if args == nil {
			args = []any{}
		}
		fn.CallSlice([]reflect.Value{logger, lvl, reflect.ValueOf(tpl), reflect.ValueOf(args)})
	}
}

// bindWriteWithError composes With("error", err) with the write binding, so
// the error rides along as a structured field of the scoped logger.
func bindWriteWithError(loggerType reflect.Type, write func(logger, lvl reflect.Value, tpl string, args []any)) func(logger, lvl reflect.Value, err error, tpl string, args []any) {
	m, ok := loggerType.MethodByName("With")
	if !ok {
		panic(fmt.Sprintf("logport/dynamic: %s has no With method; cannot bind the write-with-error operation", loggerType))
	}
	t := m.Type
	if !t.IsVariadic() || t.NumIn() != 2 || t.NumOut() != 1 {
		panic(fmt.Sprintf("logport/dynamic: %s.With has unsupported shape %s", loggerType, t))
	}
	fn := m.Func
	return func(logger, lvl reflect.Value, err error, tpl string, args []any) {
		scoped := fn.CallSlice([]reflect.Value{logger, reflect.ValueOf([]any{"error", err})})[0]
		write(scoped, lvl, tpl, args)
	}
}
