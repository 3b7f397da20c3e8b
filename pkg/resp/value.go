package resp

import (
	"strconv"
	"strings"
)

// Kind identifies the type of a RESP value by its wire marker.
type Kind byte

const (
	KindArray      Kind = '*'
	KindInteger    Kind = ':'
	KindBulkString Kind = '$'
)

func (k Kind) String() string {
	switch k {
	case KindArray:
		return "array"
	case KindInteger:
		return "integer"
	case KindBulkString:
		return "bulk_string"
	default:
		return "unknown"
	}
}

// Value is a fully decoded RESP value.
// Only the field matching Kind is meaningful.
type Value struct {
	Kind  Kind
	Int   int64
	Str   string
	Array []Value
}

// ArrayValue builds an array value.
func ArrayValue(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{Kind: KindArray, Array: items}
}

// IntegerValue builds an integer value.
func IntegerValue(n int64) Value {
	return Value{Kind: KindInteger, Int: n}
}

// BulkValue builds a bulk string value.
func BulkValue(s string) Value {
	return Value{Kind: KindBulkString, Str: s}
}

// IsZero reports whether v is the zero Value, i.e. no value was decoded.
func (v Value) IsZero() bool {
	return v.Kind == 0
}

// Equal reports whether v and o hold the same value.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindInteger:
		return v.Int == o.Int
	case KindBulkString:
		return v.Str == o.Str
	case KindArray:
		if len(v.Array) != len(o.Array) {
			return false
		}
		for i := range v.Array {
			if !v.Array[i].Equal(o.Array[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// String renders v in a compact, human-readable form for logs and test output.
func (v Value) String() string {
	switch v.Kind {
	case KindInteger:
		return strconv.FormatInt(v.Int, 10)
	case KindBulkString:
		return strconv.Quote(v.Str)
	case KindArray:
		parts := make([]string, len(v.Array))
		for i, item := range v.Array {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, " ") + "]"
	default:
		return "<none>"
	}
}
