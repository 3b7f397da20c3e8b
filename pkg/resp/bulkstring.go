package resp

import (
	"bytes"
	"unicode/utf8"
)

// MaxBulkLen is the largest declared bulk string length accepted (512 MiB).
const MaxBulkLen = 512 * 1024 * 1024

// BulkStringPartial is a bulk string whose length header or payload is
// still arriving.
type BulkStringPartial struct {
	length lengthPrefix
	data   []byte
}

// Kind implements Continuation.
func (*BulkStringPartial) Kind() Kind { return KindBulkString }

// DecodeBulkString decodes the remainder of a bulk string after its '$' marker.
//
// The payload is accumulated token by token until its terminator is seen,
// and must then be exactly as long as declared. A '\n' inside the payload,
// leading or not, is data.
func DecodeBulkString(buf *bytes.Buffer, prior *BulkStringPartial) (string, *BulkStringPartial, error) {
	p := prior
	if p == nil {
		p = &BulkStringPartial{length: unresolvedLength()}
	}

	done, err := p.length.resolve(buf)
	if err != nil {
		return "", nil, err
	}
	if !done {
		return "", p, nil
	}

	want := p.length.n
	if want < 0 || want > MaxBulkLen {
		return "", nil, newError(BadBulkStringLength, "declared %d", want)
	}

	// The header's '\r' ended the previous read; its terminator byte is
	// the first byte here and is not payload.
	if p.length.owesLF {
		if buf.Len() == 0 {
			return "", p, nil
		}
		buf.Next(1)
		p.length.owesLF = false
	}

	tok, complete, _ := nextToken(buf)
	p.data = append(p.data, tok...)
	if int64(len(p.data)) > want {
		return "", nil, newError(BadBulkStringLength, "declared %d, got at least %d", want, len(p.data))
	}
	if !complete {
		return "", p, nil
	}
	if int64(len(p.data)) != want {
		return "", nil, newError(BadBulkStringLength, "declared %d, got %d", want, len(p.data))
	}
	if !utf8.Valid(p.data) {
		return "", nil, newError(StringDecodeFailure, "%d bytes", len(p.data))
	}
	return string(p.data), nil, nil
}
