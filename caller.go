package logport

import (
	"runtime"
	"strings"
)

// callerName produces a stable, human-readable component name for the
// function 'skip' frames above: the caller's package and function with the
// module path prefix stripped, e.g. "billing.ChargeCard".
func callerName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	name := fn.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
