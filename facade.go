package logport

// Facade helpers using the process-wide default Resolver.
// Backends self-register here from init() of a blank-imported package.

var defaultResolver = NewResolver()

// Default returns the process-wide Resolver.
func Default() *Resolver { return defaultResolver }

// Register appends a backend candidate to the default Resolver.
func Register(e Entry) { defaultResolver.Register(e) }

// SetProvider installs an explicit override on the default Resolver.
func SetProvider(p Provider) { defaultResolver.SetProvider(p) }

// GetLogger returns a Logger bound to name from the default Resolver.
func GetLogger(name string) Logger { return defaultResolver.Logger(name) }

// CurrentLogger returns a Logger named after the calling function.
func CurrentLogger() Logger { return defaultResolver.Logger(callerName(2)) }
