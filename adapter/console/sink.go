package console

import (
	"io"
	"sync"
)

// Color is the ANSI foreground escape applied around one line.
type Color string

const (
	ColorNone     Color = ""
	ColorDarkRed  Color = "\x1b[31m"
	ColorRed      Color = "\x1b[91m"
	ColorYellow   Color = "\x1b[93m"
	ColorGray     Color = "\x1b[37m"
	ColorDarkGray Color = "\x1b[90m"
)

// colorResetSeq restores the default foreground only, leaving any other
// attributes of the surrounding terminal state alone.
const colorResetSeq = "\x1b[39m"

// Sink serializes colored lines onto a shared writer.
//
// Any number of producers may call Submit concurrently; a single consumer
// goroutine drains the queue in FIFO order, so no two lines interleave and
// a color change is never separated from its text. Submit never blocks on
// I/O; the intake queue is unbounded.
type Sink struct {
	w     io.Writer
	color bool

	mu     sync.Mutex
	queue  []item
	closed bool

	wake chan struct{} // 1-slot, coalesced wakeups
	done chan struct{} // closed when the consumer exits
}

type item struct {
	color Color
	text  string
}

// NewSink starts the consumer goroutine for w. When color is false the
// escape framing is omitted entirely; ordering guarantees are unchanged.
func NewSink(w io.Writer, color bool) *Sink {
	s := &Sink{
		w:     w,
		color: color,
		wake:  make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
	go s.run()
	return s
}

// Submit enqueues one (color, text) pair and returns immediately.
// Submissions after Close are dropped.
func (s *Sink) Submit(c Color, text string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.queue = append(s.queue, item{color: c, text: text})
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Close stops intake, drains everything already queued and waits for the
// consumer to finish. Safe to call more than once.
func (s *Sink) Close() error {
	s.mu.Lock()
	already := s.closed
	s.closed = true
	s.mu.Unlock()

	if !already {
		select {
		case s.wake <- struct{}{}:
		default:
		}
	}
	<-s.done
	return nil
}

func (s *Sink) run() {
	defer close(s.done)
	for {
		s.mu.Lock()
		batch := s.queue
		s.queue = nil
		closed := s.closed
		s.mu.Unlock()

		for i := range batch {
			s.emit(&batch[i])
		}
		if closed {
			return
		}
		if len(batch) == 0 {
			<-s.wake
		}
	}
}

// emit writes one item. Write failures never stop the consumer.
func (s *Sink) emit(it *item) {
	defer func() { _ = recover() }()
	s.writeColored(it)
	_, _ = io.WriteString(s.w, "\n")
}

// writeColored frames the text in its color escape. The restore runs on
// every exit path once the color was set, including failed writes.
func (s *Sink) writeColored(it *item) {
	if s.color && it.color != ColorNone {
		_, _ = io.WriteString(s.w, string(it.color))
		defer func() { _, _ = io.WriteString(s.w, colorResetSeq) }()
	}
	_, _ = io.WriteString(s.w, it.text)
}
