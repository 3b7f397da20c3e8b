package resp

import "fmt"

// ErrorKind classifies a decode failure.
type ErrorKind int

const (
	UnknownTypeMarker ErrorKind = iota + 1
	IntegerParseFailure
	BadBulkStringLength
	StringDecodeFailure
	BadArrayLength
)

// String returns a snake_case name, suitable as a metric label.
func (k ErrorKind) String() string {
	switch k {
	case UnknownTypeMarker:
		return "unknown_type_marker"
	case IntegerParseFailure:
		return "integer_parse_failure"
	case BadBulkStringLength:
		return "bad_bulk_string_length"
	case StringDecodeFailure:
		return "string_decode_failure"
	case BadArrayLength:
		return "bad_array_length"
	default:
		return "unknown"
	}
}

// Error is a decode failure. Once one is returned the stream's framing
// is lost and no later command boundary can be trusted.
type Error struct {
	Kind   ErrorKind
	Detail string
}

func (e *Error) Error() string {
	msg := "resp: " + kindMessage[e.Kind]
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Is matches any *Error of the same Kind, so the sentinels below work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

var kindMessage = map[ErrorKind]string{
	UnknownTypeMarker:   "unknown type marker",
	IntegerParseFailure: "invalid integer",
	BadBulkStringLength: "bad bulk string length",
	StringDecodeFailure: "bulk string is not valid UTF-8",
	BadArrayLength:      "bad array length",
}

var (
	ErrUnknownTypeMarker   = &Error{Kind: UnknownTypeMarker}
	ErrIntegerParseFailure = &Error{Kind: IntegerParseFailure}
	ErrBadBulkStringLength = &Error{Kind: BadBulkStringLength}
	ErrStringDecodeFailure = &Error{Kind: StringDecodeFailure}
	ErrBadArrayLength      = &Error{Kind: BadArrayLength}
)

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}
