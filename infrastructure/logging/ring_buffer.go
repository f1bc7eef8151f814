package logging

import (
	"io"
	"log"
	"strings"
	"sync"
)

const defaultCapacity = 256

// Feed exposes the newest captured log lines.
type Feed interface {
	Tail(limit int) []string
	Changes() <-chan struct{}
}

// RingBuffer is an io.Writer keeping the last capacity complete lines.
type RingBuffer struct {
	mu       sync.Mutex
	capacity int
	lines    []string // allocated at full capacity
	head     int      // next write position
	count    int
	partial  string
	changes  chan struct{}
}

func NewRingBuffer(capacity int) *RingBuffer {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &RingBuffer{
		capacity: capacity,
		lines:    make([]string, capacity),
		changes:  make(chan struct{}, 1),
	}
}

func (b *RingBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	chunk := string(p)
	for len(chunk) > 0 {
		line, rest, found := strings.Cut(chunk, "\n")
		if !found {
			b.partial += chunk
			break
		}
		b.append(strings.TrimRight(b.partial+line, "\r"))
		b.partial = ""
		chunk = rest
	}
	return len(p), nil
}

// Tail returns up to limit lines, oldest first.
func (b *RingBuffer) Tail(limit int) []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	if limit <= 0 || b.count == 0 {
		return nil
	}
	n := min(b.count, limit)
	out := make([]string, n)
	start := (b.head - n + b.capacity) % b.capacity
	for i := range out {
		out[i] = b.lines[(start+i)%b.capacity]
	}
	return out
}

// Changes is signalled, without blocking, after each appended line.
func (b *RingBuffer) Changes() <-chan struct{} {
	return b.changes
}

func (b *RingBuffer) append(line string) {
	if line == "" {
		return
	}
	b.lines[b.head] = line
	b.head = (b.head + 1) % b.capacity
	if b.count < b.capacity {
		b.count++
	}
	select {
	case b.changes <- struct{}{}:
	default:
	}
}

// RedirectStandardLogger sends the standard logger into buffer and returns
// a function restoring the previous writer.
func RedirectStandardLogger(buffer *RingBuffer) func() {
	if buffer == nil {
		return func() {}
	}
	previous := log.Writer()
	log.SetOutput(io.Writer(buffer))
	return func() {
		log.SetOutput(previous)
	}
}
