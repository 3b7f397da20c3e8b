package domain

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/yndnr/respkv-go/pkg/resp"
)

// InvalidCommandReply is the single reply sent for every rejected request.
// It deliberately uses status syntax rather than RESP error syntax.
const InvalidCommandReply = "+Invalid Command\r\n"

// Command is a decoded client request: Ping, Echo, Get, Set or Invalid.
type Command interface {
	// Name is the lower-case command name, used for logs and metrics.
	Name() string
}

// Ping asks for a PONG.
type Ping struct{}

// Echo asks for Message to be sent back.
type Echo struct {
	Message string
}

// Get reads Key.
type Get struct {
	Key string
}

// Set writes Value under Key. ExpiresAt is an absolute instant computed
// when the command was decoded; zero means no expiry.
type Set struct {
	Key       string
	Value     string
	ExpiresAt time.Time
}

// Invalid carries a pre-rendered reply for a request that could not be
// decoded into a command. Err records why.
type Invalid struct {
	Reply []byte
	Err   error
}

func (Ping) Name() string    { return "ping" }
func (Echo) Name() string    { return "echo" }
func (Get) Name() string     { return "get" }
func (Set) Name() string     { return "set" }
func (Invalid) Name() string { return "invalid" }

// InvalidCommand wraps err into the command that replies with InvalidCommandReply.
func InvalidCommand(err error) Invalid {
	return Invalid{Reply: []byte(InvalidCommandReply), Err: err}
}

// maxExpiryMillis keeps now+PX within time.Duration's range.
const maxExpiryMillis = math.MaxInt64 / int64(time.Millisecond)

// ParseCommand maps a finished RESP value onto a Command.
//
// The value must be a non-empty array of bulk strings whose first element
// is the command name, matched case-insensitively. A PX expiry is resolved
// against now into an absolute instant.
func ParseCommand(v resp.Value, now time.Time) (Command, error) {
	if v.Kind != resp.KindArray {
		return nil, ErrUnknownCommand.WithDetails("request is a " + v.Kind.String() + ", not an array")
	}
	if len(v.Array) == 0 {
		return nil, ErrUnknownCommand.WithDetails("empty request")
	}

	args := make([]string, len(v.Array))
	for i, item := range v.Array {
		if item.Kind != resp.KindBulkString {
			return nil, ErrUnknownCommand.WithDetails("argument " + strconv.Itoa(i) + " is a " + item.Kind.String())
		}
		args[i] = item.Str
	}

	name := strings.ToLower(args[0])
	switch name {
	case "ping":
		if len(args) != 1 {
			return nil, arityError(name, len(args))
		}
		return Ping{}, nil
	case "echo":
		if len(args) != 2 {
			return nil, arityError(name, len(args))
		}
		return Echo{Message: args[1]}, nil
	case "get":
		if len(args) != 2 {
			return nil, arityError(name, len(args))
		}
		return Get{Key: args[1]}, nil
	case "set":
		return parseSet(args, now)
	default:
		return nil, ErrUnknownCommand.WithDetails(strconv.Quote(args[0]))
	}
}

// parseSet handles SET key value [PX milliseconds].
func parseSet(args []string, now time.Time) (Command, error) {
	switch len(args) {
	case 3:
		return Set{Key: args[1], Value: args[2]}, nil
	case 5:
		if !strings.EqualFold(args[3], "px") {
			return nil, ErrBadArity.WithDetails("set: unsupported option " + strconv.Quote(args[3]))
		}
		ms, err := strconv.ParseInt(args[4], 10, 64)
		if err != nil {
			return nil, ErrBadExpiryValue.WithDetails(strconv.Quote(args[4])).WithCause(err)
		}
		if ms < 0 || ms > maxExpiryMillis {
			return nil, ErrBadExpiryValue.WithDetails(strconv.Quote(args[4]))
		}
		return Set{
			Key:       args[1],
			Value:     args[2],
			ExpiresAt: now.Add(time.Duration(ms) * time.Millisecond),
		}, nil
	default:
		return nil, arityError("set", len(args))
	}
}

func arityError(name string, n int) *DomainError {
	return ErrBadArity.WithDetails(name + ": got " + strconv.Itoa(n) + " elements")
}
