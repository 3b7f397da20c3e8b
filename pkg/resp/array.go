package resp

import "bytes"

// MaxArrayLen is the largest declared array count accepted.
const MaxArrayLen = 1024 * 1024

// maxPrealloc bounds the item capacity reserved from a declared count.
const maxPrealloc = 64

// ArrayPartial is an array whose count header or items are still arriving.
// item holds the continuation of the element being decoded when the input
// ran out, so a nested partial survives across reads.
type ArrayPartial struct {
	count lengthPrefix
	items []Value
	item  Continuation
}

// Kind implements Continuation.
func (*ArrayPartial) Kind() Kind { return KindArray }

// DecodeArray decodes the remainder of an array after its '*' marker.
//
// Items complete strictly in order. A saved in-progress item is resumed
// before any new item is started.
func DecodeArray(buf *bytes.Buffer, prior *ArrayPartial) ([]Value, *ArrayPartial, error) {
	p := prior
	if p == nil {
		p = &ArrayPartial{count: unresolvedLength()}
	}

	done, err := p.count.resolve(buf)
	if err != nil {
		return nil, nil, err
	}
	if !done {
		return nil, p, nil
	}

	if p.count.n < 0 || p.count.n > MaxArrayLen {
		return nil, nil, newError(BadArrayLength, "declared %d", p.count.n)
	}
	n := int(p.count.n)
	if p.items == nil {
		p.items = make([]Value, 0, min(n, maxPrealloc))
	}

	if p.item != nil {
		v, next, err := Decode(buf, p.item)
		if err != nil {
			return nil, nil, err
		}
		if next != nil {
			p.item = next
			return nil, p, nil
		}
		p.item = nil
		p.items = append(p.items, v)
	}

	for len(p.items) < n && buf.Len() > 0 {
		v, next, err := Decode(buf, nil)
		if err != nil {
			return nil, nil, err
		}
		if next != nil {
			p.item = next
			return nil, p, nil
		}
		if v.IsZero() {
			// only stray line feeds were left
			break
		}
		p.items = append(p.items, v)
	}

	if len(p.items) < n {
		return nil, p, nil
	}
	return p.items, nil, nil
}
