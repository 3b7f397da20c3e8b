package resp

import (
	"bytes"
	"strconv"
)

// IntegerPartial holds the digits of an integer whose terminator has not
// arrived yet.
type IntegerPartial struct {
	digits []byte
}

// Kind implements Continuation.
func (*IntegerPartial) Kind() Kind { return KindInteger }

// DecodeInteger decodes a signed base-10 integer terminated by CRLF.
//
// Digits carried in prior are prepended to the new token. Nothing is parsed
// until the terminator is seen; until then a longer IntegerPartial is returned.
func DecodeInteger(buf *bytes.Buffer, prior *IntegerPartial) (int64, *IntegerPartial, error) {
	n, next, _, err := decodeInteger(buf, prior)
	return n, next, err
}

// decodeInteger also reports whether the terminating '\r' was the last
// buffered byte, leaving its '\n' still to arrive.
func decodeInteger(buf *bytes.Buffer, prior *IntegerPartial) (n int64, next *IntegerPartial, owesLF bool, err error) {
	var digits []byte
	if prior != nil {
		digits = prior.digits
	}
	if len(digits) == 0 {
		skipLF(buf)
	}

	tok, complete, owesLF := nextToken(buf)
	digits = append(digits, tok...)
	if !complete {
		return 0, &IntegerPartial{digits: digits}, false, nil
	}

	n, err = strconv.ParseInt(string(digits), 10, 64)
	if err != nil {
		return 0, nil, false, newError(IntegerParseFailure, "%q", digits)
	}
	return n, nil, owesLF, nil
}

// lengthPrefix is a length or count header that may still be arriving.
type lengthPrefix struct {
	partial *IntegerPartial // non-nil until the header is fully decoded
	n       int64
	owesLF  bool // the header's '\n' has not been consumed yet
}

func unresolvedLength() lengthPrefix {
	return lengthPrefix{partial: &IntegerPartial{}}
}

// resolve feeds buf to the header decoder. It reports true once n is known.
func (p *lengthPrefix) resolve(buf *bytes.Buffer) (bool, error) {
	if p.partial == nil {
		return true, nil
	}
	n, next, owesLF, err := decodeInteger(buf, p.partial)
	if err != nil {
		return false, err
	}
	if next != nil {
		p.partial = next
		return false, nil
	}
	p.partial, p.n, p.owesLF = nil, n, owesLF
	return true, nil
}
