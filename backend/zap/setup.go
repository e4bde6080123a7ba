package zap

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/logport"
	"github.com/trickstertwo/logport/adapter/dynamic"
)

// TypeName is the fully qualified name the dynamic adapter probes for.
const TypeName = "*zap.SugaredLogger"

// Config is an explicit, code-first configuration for a zap-backed dynamic
// target. No envs, no hidden init, one call to Use.
type Config struct {
	Writer     io.Writer // default: os.Stdout
	MinLevel   logport.Level
	Console    bool // console encoder instead of JSON
	Caller     bool // include caller in logs
	CallerSkip int  // frames to skip when resolving caller; default 2
}

// Use builds a zap SugaredLogger from Config, registers it as the dynamic
// discovery target and installs a dynamically bound Backend as the provider
// override on the default resolver.
func Use(cfg Config) *dynamic.Backend {
	dynamic.SetTarget(NewSugared(cfg))
	b := dynamic.New()
	logport.SetProvider(b)
	return b
}

// NewSugared builds the *zap.SugaredLogger the dynamic gateway binds to.
// Fatal stays a log level rather than an exit: the facade's Fatal translates
// to zap's fatal level, and library code must not terminate the process.
func NewSugared(cfg Config) *zap.SugaredLogger {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	if cfg.Caller && cfg.CallerSkip <= 0 {
		cfg.CallerSkip = 2
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		MessageKey:     "message",
		NameKey:        "logger",
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		CallerKey:      "caller",
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var enc zapcore.Encoder
	if cfg.Console {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	al := zap.NewAtomicLevelAt(toZapLevel(cfg.MinLevel))
	core := zapcore.NewCore(enc, zapcore.AddSync(w), al)

	opts := []zap.Option{
		zap.AddStacktrace(zapcore.FatalLevel + 1), // effectively off
		zap.WithFatalHook(zapcore.WriteThenNoop),
	}
	if cfg.Caller {
		opts = append(opts, zap.AddCaller(), zap.AddCallerSkip(cfg.CallerSkip))
	}

	return zap.New(core, opts...).Sugar()
}

func toZapLevel(l logport.Level) zapcore.Level {
	switch {
	case l <= logport.LevelDebug:
		return zapcore.DebugLevel // zap has no trace; map to debug
	case l <= logport.LevelInfo:
		return zapcore.InfoLevel
	case l <= logport.LevelWarn:
		return zapcore.WarnLevel
	case l <= logport.LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.FatalLevel
	}
}
