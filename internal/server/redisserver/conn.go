package redisserver

import (
	"bufio"
	"context"
	"crypto/rand"
	"errors"
	"io"
	"net"
	"sync/atomic"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/time/rate"

	"github.com/yndnr/respkv-go/internal/core/domain"
	"github.com/yndnr/respkv-go/internal/telemetry/logger"
	"github.com/yndnr/respkv-go/pkg/resp"
)

// Conn is one client connection and the decoder state it owns.
type Conn struct {
	id      string
	netConn net.Conn
	bw      *bufio.Writer
	dec     *resp.Decoder
	limiter *rate.Limiter

	closed atomic.Bool
}

func newConn(nc net.Conn, rateLimit float64) *Conn {
	c := &Conn{
		id:      newConnID(),
		netConn: nc,
		bw:      bufio.NewWriter(nc),
		dec:     resp.NewDecoder(),
	}
	if rateLimit > 0 {
		burst := int(rateLimit)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rateLimit), burst)
	}
	return c
}

func newConnID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "conn-unknown"
	}
	return id.String()
}

// ID returns the connection id.
func (c *Conn) ID() string {
	return c.id
}

// Close closes the underlying socket once.
func (c *Conn) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	return c.netConn.Close()
}

// RemoteAddr returns the peer address.
func (c *Conn) RemoteAddr() net.Addr {
	return c.netConn.RemoteAddr()
}

// serveConn runs the read, drain, flush loop until the peer goes away,
// a framing error occurs or the server shuts down.
func (s *Server) serveConn(ctx context.Context, c *Conn) {
	defer c.Close()

	ctx = logger.WithConnID(ctx, c.id)
	ctx = logger.WithLogger(ctx, s.logger.With("remote", c.RemoteAddr().String()))
	log := logger.L(ctx)
	log.Debug("connection accepted")

	buf := make([]byte, s.cfg.ReadBufferSize)
	for {
		if s.cfg.IdleTimeout > 0 {
			if err := c.netConn.SetReadDeadline(time.Now().Add(s.cfg.IdleTimeout)); err != nil {
				return
			}
		}

		n, readErr := c.netConn.Read(buf)
		if n > 0 {
			c.dec.Feed(buf[:n])
			if err := s.drain(ctx, c); err != nil {
				s.closeOnError(ctx, c, err)
				return
			}
			if err := s.flush(c); err != nil {
				log.Debug("write failed", "error", err)
				return
			}
		}

		if readErr != nil {
			s.logReadError(ctx, readErr)
			return
		}
		if n == 0 {
			log.Debug("zero-byte read, closing")
			return
		}
	}
}

// drain executes every value the decoder can finish from the buffered bytes.
func (s *Server) drain(ctx context.Context, c *Conn) error {
	for {
		v, ok, err := c.dec.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := s.handle(ctx, c, v); err != nil {
			return err
		}
	}
}

// handle decodes v into a command and executes it. Command errors become
// the generic invalid reply and never end the connection.
func (s *Server) handle(ctx context.Context, c *Conn, v resp.Value) error {
	cmd, err := domain.ParseCommand(v, s.exec.Now())
	if err != nil {
		s.metrics.RecordCommandError(domain.GetErrorCode(err))
		logger.L(ctx).Debug("invalid command", "error", err)
		cmd = domain.InvalidCommand(err)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	start := time.Now()
	err = s.exec.Execute(c.bw, cmd)
	s.metrics.RecordCommand(cmd.Name(), time.Since(start))
	return err
}

func (s *Server) flush(c *Conn) error {
	if c.bw.Buffered() == 0 {
		return nil
	}
	if s.cfg.WriteTimeout > 0 {
		if err := c.netConn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout)); err != nil {
			return err
		}
	}
	return c.bw.Flush()
}

// closeOnError handles a drain failure. For a framing error, the replies
// already produced and the invalid reply are flushed best effort.
func (s *Server) closeOnError(ctx context.Context, c *Conn, err error) {
	log := logger.L(ctx)

	var decErr *resp.Error
	if !errors.As(err, &decErr) {
		if !errors.Is(err, context.Canceled) {
			log.Warn("connection aborted", "error", err)
		}
		return
	}

	s.metrics.RecordDecodeError(decErr.Kind.String())
	log.Warn("framing error, closing connection", "kind", decErr.Kind.String(), "error", err)

	_, _ = c.bw.WriteString(domain.InvalidCommandReply)
	_ = s.flush(c)
}

func (s *Server) logReadError(ctx context.Context, err error) {
	log := logger.L(ctx)
	var netErr net.Error
	switch {
	case errors.Is(err, io.EOF):
		log.Debug("connection closed by peer")
	case errors.Is(err, net.ErrClosed):
		log.Debug("connection closed")
	case errors.As(err, &netErr) && netErr.Timeout():
		log.Debug("connection idle timeout")
	default:
		log.Warn("connection read error", "error", err)
	}
}
