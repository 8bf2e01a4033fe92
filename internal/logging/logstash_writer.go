package logging

import (
	"errors"
	"io"
	"net"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

type dialFunc func(network, addr string, timeout time.Duration) (net.Conn, error)

// LogstashConfig configures the TCP sink. Zero durations fall back to the
// defaults noted on each field.
type LogstashConfig struct {
	Addr string
	// DialTimeout defaults to 2s.
	DialTimeout time.Duration
	// WriteTimeout defaults to 1s. Negative disables the deadline.
	WriteTimeout time.Duration
	// Backoff is how long the sink stays down after a failure. Defaults to 5s.
	Backoff time.Duration

	dial dialFunc
}

// LogstashWriter ships newline-delimited JSON entries to a Logstash TCP
// input over a single lazily opened connection. Entries written while
// Logstash is unreachable are counted and discarded so a slow or missing
// collector never stalls an import.
type LogstashWriter struct {
	cfg LogstashConfig

	mu        sync.Mutex
	conn      net.Conn
	downUntil time.Time
	closed    bool

	dropped atomic.Int64
}

func NewLogstashWriter(cfg LogstashConfig) (*LogstashWriter, error) {
	cfg.Addr = strings.TrimSpace(cfg.Addr)
	if cfg.Addr == "" {
		return nil, errors.New("logstash: empty address")
	}
	if cfg.DialTimeout == 0 {
		cfg.DialTimeout = 2 * time.Second
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = time.Second
	}
	if cfg.Backoff == 0 {
		cfg.Backoff = 5 * time.Second
	}
	if cfg.dial == nil {
		cfg.dial = net.DialTimeout
	}
	return &LogstashWriter{cfg: cfg}, nil
}

// Write reports the whole payload as consumed even when it was dropped, so
// zap never surfaces collector outages as logging errors.
func (w *LogstashWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	line := make([]byte, 0, len(p)+1)
	line = append(line, p...)
	if line[len(line)-1] != '\n' {
		line = append(line, '\n')
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return 0, io.ErrClosedPipe
	}

	conn := w.connLocked()
	if conn == nil {
		w.dropped.Add(1)
		return len(p), nil
	}
	if w.cfg.WriteTimeout > 0 {
		_ = conn.SetWriteDeadline(time.Now().Add(w.cfg.WriteTimeout))
	}
	if _, err := conn.Write(line); err != nil {
		w.dropped.Add(1)
		w.markDownLocked()
	}
	return len(p), nil
}

// Sync satisfies zapcore.WriteSyncer; writes are not buffered.
func (w *LogstashWriter) Sync() error {
	return nil
}

// Dropped reports how many entries were discarded while Logstash was down.
func (w *LogstashWriter) Dropped() int64 {
	return w.dropped.Load()
}

func (w *LogstashWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	if w.conn == nil {
		return nil
	}
	err := w.conn.Close()
	w.conn = nil
	return err
}

// connLocked returns the open connection, dialing when the backoff window
// has passed. It returns nil while the sink is down.
func (w *LogstashWriter) connLocked() net.Conn {
	if w.conn != nil {
		return w.conn
	}
	if time.Now().Before(w.downUntil) {
		return nil
	}
	conn, err := w.cfg.dial("tcp", w.cfg.Addr, w.cfg.DialTimeout)
	if err != nil {
		w.downUntil = time.Now().Add(w.cfg.Backoff)
		return nil
	}
	w.conn = conn
	return conn
}

func (w *LogstashWriter) markDownLocked() {
	if w.conn != nil {
		_ = w.conn.Close()
		w.conn = nil
	}
	w.downUntil = time.Now().Add(w.cfg.Backoff)
}
