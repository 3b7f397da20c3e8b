package resp

import (
	"bytes"
	"fmt"
)

// Continuation is saved decoder progress: one of *ArrayPartial,
// *IntegerPartial or *BulkStringPartial. It owns every byte consumed from
// the wire that has not yet been attributed to a finished value.
type Continuation interface {
	Kind() Kind
}

// Decode decodes one value from the front of buf.
//
// With a nil prior, one marker byte is consumed and selects the decoder;
// leading '\n' bytes are skipped. With a non-nil prior, decoding resumes
// with the decoder matching the continuation's type.
//
// Exactly one of the following holds on a nil error:
//   - the returned Value is finished and the Continuation is nil
//   - the returned Continuation is non-nil and buf has been drained
//   - both are zero: buf held no bytes of a new value
func Decode(buf *bytes.Buffer, prior Continuation) (Value, Continuation, error) {
	switch c := prior.(type) {
	case nil:
		return decodeNew(buf)
	case *ArrayPartial:
		return arrayResult(DecodeArray(buf, c))
	case *IntegerPartial:
		return integerResult(DecodeInteger(buf, c))
	case *BulkStringPartial:
		return bulkStringResult(DecodeBulkString(buf, c))
	default:
		panic(fmt.Sprintf("resp: unexpected continuation %T", prior))
	}
}

func decodeNew(buf *bytes.Buffer) (Value, Continuation, error) {
	for {
		marker, err := buf.ReadByte()
		if err != nil {
			return Value{}, nil, nil
		}

		switch Kind(marker) {
		case KindArray:
			return arrayResult(DecodeArray(buf, nil))
		case KindInteger:
			return integerResult(DecodeInteger(buf, nil))
		case KindBulkString:
			return bulkStringResult(DecodeBulkString(buf, nil))
		}
		// a '\n' owed by a '\r' that ended the previous read, or a blank line
		if marker == '\n' {
			continue
		}
		return Value{}, nil, newError(UnknownTypeMarker, "%q", marker)
	}
}

func arrayResult(items []Value, next *ArrayPartial, err error) (Value, Continuation, error) {
	switch {
	case err != nil:
		return Value{}, nil, err
	case next != nil:
		return Value{}, next, nil
	}
	return Value{Kind: KindArray, Array: items}, nil, nil
}

func integerResult(n int64, next *IntegerPartial, err error) (Value, Continuation, error) {
	switch {
	case err != nil:
		return Value{}, nil, err
	case next != nil:
		return Value{}, next, nil
	}
	return Value{Kind: KindInteger, Int: n}, nil, nil
}

func bulkStringResult(s string, next *BulkStringPartial, err error) (Value, Continuation, error) {
	switch {
	case err != nil:
		return Value{}, nil, err
	case next != nil:
		return Value{}, next, nil
	}
	return Value{Kind: KindBulkString, Str: s}, nil, nil
}

// Decoder is the per-connection decoding state: the bytes received but not
// yet consumed, and the single live continuation. It is not safe for
// concurrent use.
type Decoder struct {
	buf  bytes.Buffer
	cont Continuation
	err  error
}

// NewDecoder returns an empty Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Feed appends newly received bytes.
func (d *Decoder) Feed(p []byte) {
	if d.err != nil {
		return
	}
	d.buf.Write(p)
}

// Next returns the next finished value. ok is false when more bytes are
// needed. After a decode error every later call returns the same error.
func (d *Decoder) Next() (v Value, ok bool, err error) {
	if d.err != nil {
		return Value{}, false, d.err
	}
	if d.buf.Len() == 0 {
		return Value{}, false, nil
	}

	v, next, err := Decode(&d.buf, d.cont)
	d.cont = next
	if err != nil {
		d.err = err
		d.buf.Reset()
		return Value{}, false, err
	}
	if next != nil || v.IsZero() {
		return Value{}, false, nil
	}
	return v, true, nil
}

// Pending reports whether a partially decoded value is being held.
func (d *Decoder) Pending() bool {
	return d.cont != nil
}

// Buffered returns the number of received bytes not yet consumed.
func (d *Decoder) Buffered() int {
	return d.buf.Len()
}

// Reset discards all buffered bytes, the continuation and any error.
func (d *Decoder) Reset() {
	d.buf.Reset()
	d.cont = nil
	d.err = nil
}
