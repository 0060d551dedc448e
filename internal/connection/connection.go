// Package connection implements the client side of the game's remote-control
// socket: one TCP stream carrying strictly alternating request and reply
// lines.
package connection

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-metrics"

	"github.com/d2verb/mcpi/internal/protocol"
)

// Default timeouts.
const (
	DefaultConnectTimeout = 10 * time.Second
	DefaultReadTimeout    = 60 * time.Second
)

// Config describes how to reach the game and how the channel behaves once
// connected.
type Config struct {
	Host string
	Port int

	// ConnectTimeout bounds the initial dial.
	ConnectTimeout time.Duration
	// ReadTimeout bounds every write and every reply read.
	ReadTimeout time.Duration

	// Debug logs drained stray bytes and every exchange at debug level.
	Debug bool

	Logger *slog.Logger

	// MetricSink receives request counters and latencies.
	// A blackhole sink is used when nil.
	MetricSink   metrics.MetricSink
	MetricLabels []metrics.Label
}

// Address returns host:port.
func (c Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

type state int

const (
	stateConnected state = iota
	stateFailed
	stateClosed
)

// Connection is a live channel to the game. All exchanges are serialized, so
// a Connection may be shared between goroutines, but replies are only
// correlated with requests by order.
type Connection struct {
	mu sync.Mutex

	nc     net.Conn
	reader *bufio.Reader
	// scratch receives drained bytes.
	scratch []byte

	readTimeout time.Duration
	debug       bool
	logger      *slog.Logger
	msink       metrics.MetricSink
	mlabels     []metrics.Label

	state    state
	err      error
	lastSent string
}

// Dial connects to cfg.Address(), giving up after cfg.ConnectTimeout or when
// ctx is done.
func Dial(ctx context.Context, cfg Config) (*Connection, error) {
	cfg = withDefaults(cfg)
	addr := cfg.Address()

	d := net.Dialer{Timeout: cfg.ConnectTimeout}
	nc, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		cfg.MetricSink.IncrCounterWithLabels(MetricConnectErrorCount, 1, cfg.MetricLabels)
		cfg.Logger.Warn("connect failed", LabelAddr.L(addr), LabelError.L(err))
		return nil, &ConnectError{Addr: addr, Err: err}
	}

	cfg.MetricSink.IncrCounterWithLabels(MetricConnectCount, 1, cfg.MetricLabels)
	cfg.Logger.Info("connected", LabelAddr.L(addr))
	return New(nc, cfg), nil
}

// New wraps an established connection.
func New(nc net.Conn, cfg Config) *Connection {
	cfg = withDefaults(cfg)
	return &Connection{
		nc:          nc,
		reader:      bufio.NewReader(nc),
		scratch:     make([]byte, 1500),
		readTimeout: cfg.ReadTimeout,
		debug:       cfg.Debug,
		logger:      cfg.Logger,
		msink:       cfg.MetricSink,
		mlabels:     cfg.MetricLabels,
	}
}

func withDefaults(cfg Config) Config {
	if cfg.Host == "" {
		cfg.Host = "localhost"
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = DefaultConnectTimeout
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.MetricSink == nil {
		cfg.MetricSink = &metrics.BlackholeSink{}
	}
	return cfg
}

// Send writes a request without waiting for a reply.
func (c *Connection) Send(command string, args ...any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.send(command, args)
}

// SendReceive writes a request and returns its reply line without the
// trailing newline. A reply equal to the failure sentinel is returned as a
// *RequestError.
func (c *Connection) SendReceive(command string, args ...any) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	start := time.Now()
	if err := c.send(command, args); err != nil {
		return "", err
	}
	line, err := c.receive()
	if err != nil {
		return "", err
	}
	c.msink.AddSampleWithLabels(MetricRequestLatency,
		float32(time.Since(start).Seconds()*1e3), c.labels(command))

	if line == protocol.FailureSentinel {
		c.msink.IncrCounterWithLabels(MetricRequestFailedCount, 1, c.labels(command))
		c.logger.Warn("request failed", LabelRequest.L(c.lastSent))
		return "", &RequestError{Request: c.lastSent}
	}
	return line, nil
}

// Drain discards any bytes that already arrived but were never read. It
// never waits for data.
func (c *Connection) Drain() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.usable(); err != nil {
		return err
	}
	return c.drain()
}

// LastSent returns the most recent request frame without its newline.
func (c *Connection) LastSent() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastSent
}

// Err returns the error that moved the connection out of the connected
// state, or nil.
func (c *Connection) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.usable()
}

// RemoteAddr returns the game's address. nc is never reassigned after New,
// so no lock is needed.
func (c *Connection) RemoteAddr() net.Addr {
	return c.nc.RemoteAddr()
}

// Close closes the socket. Later operations return ErrClosed, except on a
// failed connection, which keeps reporting its failure.
func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	// A failed connection already closed its socket.
	if c.state != stateConnected {
		return nil
	}
	c.state = stateClosed
	return c.nc.Close()
}

func (c *Connection) send(command string, args []any) error {
	if err := c.usable(); err != nil {
		return err
	}

	frame := protocol.Encode(command, args...)
	if err := c.drain(); err != nil {
		return err
	}
	c.lastSent = strings.TrimSuffix(string(frame), "\n")

	if err := c.nc.SetWriteDeadline(time.Now().Add(c.readTimeout)); err != nil {
		return c.fail(OpWrite, err)
	}
	if _, err := c.nc.Write(frame); err != nil {
		return c.fail(OpWrite, err)
	}

	c.msink.IncrCounterWithLabels(MetricRequestCount, 1, c.labels(command))
	c.msink.IncrCounterWithLabels(MetricBytesOut, float32(len(frame)), c.mlabels)
	if c.debug {
		c.logger.Debug("sent", LabelRequest.L(c.lastSent))
	}
	return nil
}

func (c *Connection) receive() (string, error) {
	if err := c.nc.SetReadDeadline(time.Now().Add(c.readTimeout)); err != nil {
		return "", c.fail(OpRead, err)
	}
	line, err := c.reader.ReadString('\n')
	if err != nil {
		return "", c.fail(OpRead, err)
	}

	c.msink.IncrCounterWithLabels(MetricBytesIn, float32(len(line)), c.mlabels)
	line = strings.TrimSuffix(line, "\n")
	if c.debug {
		c.logger.Debug("received", LabelRequest.L(c.lastSent), LabelReply.L(line))
	}
	return line, nil
}

func (c *Connection) drain() error {
	if n := c.reader.Buffered(); n > 0 {
		stale, _ := c.reader.Peek(n)
		c.logDrained(stale)
		_, _ = c.reader.Discard(n)
	}

	// Reads must not be cut short by the deadline of a previous exchange.
	if err := c.nc.SetReadDeadline(time.Time{}); err != nil {
		return c.fail(OpDrain, err)
	}
	for {
		n, err := pollRead(c.nc, c.scratch)
		if err != nil {
			return c.fail(OpDrain, err)
		}
		if n == 0 {
			return nil
		}
		c.logDrained(c.scratch[:n])
	}
}

func (c *Connection) logDrained(data []byte) {
	c.msink.IncrCounterWithLabels(MetricDrainedBytes, float32(len(data)), c.mlabels)
	if c.debug {
		c.logger.Debug("drained stale data",
			LabelDrained.L(strings.TrimSpace(string(data))),
			LabelRequest.L(c.lastSent))
	}
}

func (c *Connection) usable() error {
	switch c.state {
	case stateClosed:
		return ErrClosed
	case stateFailed:
		return fmt.Errorf("%w: %w", ErrFailed, c.err)
	}
	return nil
}

func (c *Connection) fail(op Op, err error) error {
	terr := &TransportError{Op: op, Err: err}
	c.state = stateFailed
	c.err = terr
	c.msink.IncrCounterWithLabels(MetricTransportErrorCount, 1, c.withLabel(LabelOp.M(string(op))))
	c.logger.Error("transport failure", LabelOp.L(op), LabelError.L(err),
		LabelRequest.L(c.lastSent))
	_ = c.nc.Close()
	return terr
}

func (c *Connection) labels(command string) []metrics.Label {
	return c.withLabel(LabelCommand.M(command))
}

func (c *Connection) withLabel(l metrics.Label) []metrics.Label {
	return append(c.mlabels[:len(c.mlabels):len(c.mlabels)], l)
}
