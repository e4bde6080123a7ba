package logport

import "testing"

func TestLevelOrderAndNames(t *testing.T) {
	t.Parallel()

	if !(LevelTrace < LevelDebug && LevelDebug < LevelInfo && LevelInfo < LevelWarn &&
		LevelWarn < LevelError && LevelError < LevelFatal) {
		t.Fatalf("level ordering broken")
	}

	names := map[Level]string{
		LevelTrace: "Trace",
		LevelDebug: "Debug",
		LevelInfo:  "Info",
		LevelWarn:  "Warn",
		LevelError: "Error",
		LevelFatal: "Fatal",
	}
	for lvl, want := range names {
		if got := lvl.String(); got != want {
			t.Fatalf("String(%d) = %q, want %q", int(lvl), got, want)
		}
	}
	if got := Level(42).String(); got != "Level(42)" {
		t.Fatalf("unknown level String = %q", got)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]Level{
		"trace":       LevelTrace,
		"Verbose":     LevelTrace,
		"debug":       LevelDebug,
		"INFO":        LevelInfo,
		"Information": LevelInfo,
		" warn ":      LevelWarn,
		"warning":     LevelWarn,
		"error":       LevelError,
		"fatal":       LevelFatal,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level name")
	}
}
