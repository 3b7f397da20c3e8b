package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/yndnr/respkv-go/pkg/resp"
)

func bulkArray(args ...string) resp.Value {
	items := make([]resp.Value, len(args))
	for i, a := range args {
		items[i] = resp.BulkValue(a)
	}
	return resp.ArrayValue(items...)
}

func TestParseCommand(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value resp.Value
		want  Command
	}{
		{"ping", bulkArray("PING"), Ping{}},
		{"ping lower case", bulkArray("ping"), Ping{}},
		{"echo", bulkArray("ECHO", "hey"), Echo{Message: "hey"}},
		{"echo mixed case", bulkArray("eChO", "x y"), Echo{Message: "x y"}},
		{"get", bulkArray("GET", "foo"), Get{Key: "foo"}},
		{"set", bulkArray("SET", "foo", "bar"), Set{Key: "foo", Value: "bar"}},
		{
			"set px",
			bulkArray("SET", "foo", "bar", "PX", "100"),
			Set{Key: "foo", Value: "bar", ExpiresAt: now.Add(100 * time.Millisecond)},
		},
		{
			"set px lower case",
			bulkArray("set", "foo", "bar", "px", "0"),
			Set{Key: "foo", Value: "bar", ExpiresAt: now},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCommand(tt.value, now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParseCommand_Errors(t *testing.T) {
	tests := []struct {
		name  string
		value resp.Value
		want  error
	}{
		{"not an array", resp.BulkValue("PING"), ErrUnknownCommand},
		{"integer request", resp.IntegerValue(1), ErrUnknownCommand},
		{"empty array", resp.ArrayValue(), ErrUnknownCommand},
		{"name not a bulk string", resp.ArrayValue(resp.IntegerValue(1)), ErrUnknownCommand},
		{"argument not a bulk string", resp.ArrayValue(resp.BulkValue("GET"), resp.IntegerValue(1)), ErrUnknownCommand},
		{"unknown name", bulkArray("DEL", "foo"), ErrUnknownCommand},
		{"ping with argument", bulkArray("PING", "x"), ErrBadArity},
		{"echo without argument", bulkArray("ECHO"), ErrBadArity},
		{"get without key", bulkArray("GET"), ErrBadArity},
		{"get with two keys", bulkArray("GET", "a", "b"), ErrBadArity},
		{"set without value", bulkArray("SET", "foo"), ErrBadArity},
		{"set without key", bulkArray("SET"), ErrBadArity},
		{"set with dangling option", bulkArray("SET", "foo", "bar", "PX"), ErrBadArity},
		{"set with unknown option", bulkArray("SET", "foo", "bar", "EX", "10"), ErrBadArity},
		{"set with too many arguments", bulkArray("SET", "foo", "bar", "PX", "10", "NX"), ErrBadArity},
		{"set with non-integer px", bulkArray("SET", "foo", "bar", "PX", "soon"), ErrBadExpiryValue},
		{"set with negative px", bulkArray("SET", "foo", "bar", "PX", "-5"), ErrBadExpiryValue},
		{"set with overflowing px", bulkArray("SET", "foo", "bar", "PX", "9223372036854775807"), ErrBadExpiryValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.value, time.Now())
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
			if cmd != nil {
				t.Errorf("command = %#v, want nil", cmd)
			}
		})
	}
}

func TestParseCommand_ExpiryIsAbsolute(t *testing.T) {
	v := bulkArray("SET", "k", "v", "PX", "100")
	t0 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	t1 := t0.Add(3 * time.Second)

	c0, err := ParseCommand(v, t0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c1, err := ParseCommand(v, t1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e0, e1 := c0.(Set).ExpiresAt, c1.(Set).ExpiresAt
	if e0.Equal(e1) {
		t.Error("the same PX decoded at different instants must give different expiries")
	}
	if d := e1.Sub(e0); d != 3*time.Second {
		t.Errorf("expiry difference = %v, want 3s", d)
	}
}

func TestInvalidCommand(t *testing.T) {
	cmd := InvalidCommand(ErrBadArity)
	if string(cmd.Reply) != "+Invalid Command\r\n" {
		t.Errorf("Reply = %q", cmd.Reply)
	}
	if !errors.Is(cmd.Err, ErrBadArity) {
		t.Errorf("Err = %v, want bad arity", cmd.Err)
	}
	if cmd.Name() != "invalid" {
		t.Errorf("Name() = %q", cmd.Name())
	}
}
