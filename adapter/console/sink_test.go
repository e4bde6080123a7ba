package console

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
)

// lockedBuffer serializes writes; the sink's consumer is single-goroutine,
// but tests read the buffer after Close, so plain bytes.Buffer would do.
// Kept locked anyway so misuse in a future test cannot race.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSinkFIFOOrder(t *testing.T) {
	t.Parallel()

	var buf lockedBuffer
	s := NewSink(&buf, false)

	// N producers, submissions externally sequenced: each goroutine waits
	// for its predecessor before submitting, so submission order is known.
	const n = 64
	gates := make([]chan struct{}, n+1)
	for i := range gates {
		gates[i] = make(chan struct{})
	}
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-gates[i]
			s.Submit(ColorNone, fmt.Sprintf("line-%03d", i))
			close(gates[i+1])
		}(i)
	}
	close(gates[0])
	wg.Wait()
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != n {
		t.Fatalf("expected %d lines, got %d", n, len(lines))
	}
	for i, line := range lines {
		if want := fmt.Sprintf("line-%03d", i); line != want {
			t.Fatalf("output order broken at %d: got %q want %q", i, line, want)
		}
	}
}

func TestSinkColorFraming(t *testing.T) {
	t.Parallel()

	var buf lockedBuffer
	s := NewSink(&buf, true)
	s.Submit(ColorRed, "alarm")
	s.Submit(ColorNone, "plain")
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	want := "\x1b[91m" + "alarm" + "\x1b[39m" + "\n" + "plain\n"
	if got := buf.String(); got != want {
		t.Fatalf("framing mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestSinkColorDisabled(t *testing.T) {
	t.Parallel()

	var buf lockedBuffer
	s := NewSink(&buf, false)
	s.Submit(ColorRed, "alarm")
	_ = s.Close()

	if got := buf.String(); got != "alarm\n" {
		t.Fatalf("expected no escapes, got %q", got)
	}
}

// flakyWriter fails any write whose payload contains "bad" and records the
// rest.
type flakyWriter struct {
	mu  sync.Mutex
	got []string
}

func (w *flakyWriter) Write(p []byte) (int, error) {
	if bytes.Contains(p, []byte("bad")) {
		return 0, errors.New("stream closed")
	}
	w.mu.Lock()
	w.got = append(w.got, string(p))
	w.mu.Unlock()
	return len(p), nil
}

func TestSinkWriteFailureDoesNotStopConsumer(t *testing.T) {
	t.Parallel()

	w := &flakyWriter{}
	s := NewSink(w, true)
	s.Submit(ColorRed, "bad item")
	s.Submit(ColorNone, "good item")
	_ = s.Close()

	w.mu.Lock()
	defer w.mu.Unlock()
	joined := strings.Join(w.got, "")
	if !strings.Contains(joined, "good item\n") {
		t.Fatalf("consumer stopped after a failed write: %q", joined)
	}
	// The restore escape of the failed item must still have been written.
	if !strings.Contains(joined, colorResetSeq) {
		t.Fatalf("color restore skipped on failed write: %q", joined)
	}
}

// panickyWriter panics on payloads containing "explode".
type panickyWriter struct {
	mu  sync.Mutex
	got []string
}

func (w *panickyWriter) Write(p []byte) (int, error) {
	if bytes.Contains(p, []byte("explode")) {
		panic("writer gone")
	}
	w.mu.Lock()
	w.got = append(w.got, string(p))
	w.mu.Unlock()
	return len(p), nil
}

func TestSinkPanickingWriterContained(t *testing.T) {
	t.Parallel()

	w := &panickyWriter{}
	s := NewSink(w, false)
	s.Submit(ColorNone, "explode now")
	s.Submit(ColorNone, "still alive")
	_ = s.Close()

	w.mu.Lock()
	defer w.mu.Unlock()
	if !strings.Contains(strings.Join(w.got, ""), "still alive\n") {
		t.Fatalf("consumer did not survive a panicking writer: %v", w.got)
	}
}

func TestSinkSubmitAfterCloseDropped(t *testing.T) {
	t.Parallel()

	var buf lockedBuffer
	s := NewSink(&buf, false)
	s.Submit(ColorNone, "before")
	_ = s.Close()
	s.Submit(ColorNone, "after")
	_ = s.Close()

	if got := buf.String(); got != "before\n" {
		t.Fatalf("expected only pre-close output, got %q", got)
	}
}
