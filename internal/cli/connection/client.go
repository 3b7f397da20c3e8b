package connection

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/yndnr/respkv-go/pkg/resp"
)

// DefaultTimeout bounds dial and per-command I/O.
const DefaultTimeout = 5 * time.Second

// ErrInvalidCommand is returned when the server answers with its generic
// rejection reply.
var ErrInvalidCommand = errors.New("server rejected command")

// Reply is a decoded server reply.
type Reply struct {
	// Status holds a simple string reply such as PONG or OK.
	Status string
	// Bulk holds a bulk string reply.
	Bulk string
	// Null is set for a null bulk reply.
	Null bool
	// IsBulk distinguishes an empty bulk string from a status reply.
	IsBulk bool
}

// String renders the reply the way redis-cli does.
func (r Reply) String() string {
	switch {
	case r.Null:
		return "(nil)"
	case r.IsBulk:
		return strconv.Quote(r.Bulk)
	default:
		return r.Status
	}
}

// Client is a single RESP connection.
type Client struct {
	addr    string
	timeout time.Duration
	conn    net.Conn
	br      *bufio.Reader
	bw      *bufio.Writer
}

// Dial connects to addr.
func Dial(addr string, timeout time.Duration) (*Client, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	return &Client{
		addr:    addr,
		timeout: timeout,
		conn:    conn,
		br:      bufio.NewReader(conn),
		bw:      bufio.NewWriter(conn),
	}, nil
}

// Addr returns the server address.
func (c *Client) Addr() string { return c.addr }

// Close closes the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Do sends one command and reads its reply.
func (c *Client) Do(args ...string) (Reply, error) {
	if err := c.conn.SetDeadline(time.Now().Add(c.timeout)); err != nil {
		return Reply{}, err
	}
	if err := resp.WriteCommand(c.bw, args...); err != nil {
		return Reply{}, err
	}
	if err := c.bw.Flush(); err != nil {
		return Reply{}, err
	}
	return readReply(c.br)
}

// Ping sends PING.
func (c *Client) Ping() error {
	r, err := c.Do("PING")
	if err != nil {
		return err
	}
	if r.Status != "PONG" {
		return fmt.Errorf("unexpected PING reply %q", r.String())
	}
	return nil
}

// Get returns the value for key and whether it exists.
func (c *Client) Get(key string) (string, bool, error) {
	r, err := c.Do("GET", key)
	if err != nil {
		return "", false, err
	}
	if r.Null {
		return "", false, nil
	}
	return r.Bulk, true, nil
}

// Set stores key. A positive px sets a relative expiry in milliseconds.
func (c *Client) Set(key, value string, px int64) error {
	args := []string{"SET", key, value}
	if px > 0 {
		args = append(args, "PX", strconv.FormatInt(px, 10))
	}
	r, err := c.Do(args...)
	if err != nil {
		return err
	}
	if r.Status != "OK" {
		return fmt.Errorf("unexpected SET reply %q", r.String())
	}
	return nil
}

// readReply reads the reply subset the server emits: simple strings,
// bulk strings and the null bulk.
func readReply(br *bufio.Reader) (Reply, error) {
	line, err := readLine(br)
	if err != nil {
		return Reply{}, err
	}
	if line == "" {
		return Reply{}, errors.New("empty reply line")
	}

	switch line[0] {
	case '+':
		status := line[1:]
		if status == "Invalid Command" {
			return Reply{Status: status}, ErrInvalidCommand
		}
		return Reply{Status: status}, nil
	case '-':
		return Reply{}, errors.New(line[1:])
	case '$':
		n, err := strconv.Atoi(line[1:])
		if err != nil {
			return Reply{}, fmt.Errorf("bad bulk length %q", line[1:])
		}
		if n < 0 {
			return Reply{Null: true}, nil
		}
		buf := make([]byte, n+2)
		if _, err := io.ReadFull(br, buf); err != nil {
			return Reply{}, err
		}
		return Reply{Bulk: string(buf[:n]), IsBulk: true}, nil
	default:
		return Reply{}, fmt.Errorf("unexpected reply %q", line)
	}
}

func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), nil
}
