package resp

import "bytes"

// nextToken extracts one CRLF-terminated token from the front of buf.
// Leading bytes are never skipped; a '\n' at the front is token data.
//
// complete is true when a '\r' was found; buf is then advanced past the
// terminator. If the '\r' is the very last buffered byte the token is still
// complete, buf is drained and owesLF is set: the byte after the '\r'
// belongs to a later read and the caller must discard it.
//
// complete is false when buf holds no '\r'. All remaining bytes are returned
// and buf is left empty; the caller carries them in its continuation.
func nextToken(buf *bytes.Buffer) (tok []byte, complete, owesLF bool) {
	b := buf.Bytes()
	i := bytes.IndexByte(b, '\r')
	if i < 0 {
		tok = append([]byte(nil), b...)
		buf.Reset()
		return tok, false, false
	}

	tok = append([]byte(nil), b[:i]...)
	if i == len(b)-1 {
		buf.Reset()
		return tok, true, true
	}
	buf.Next(i + 2)
	return tok, true, false
}

// skipLF drops leading '\n' bytes. It is only used where no token data can
// start with one: a value's marker position and the first byte of a length.
func skipLF(buf *bytes.Buffer) {
	for buf.Len() > 0 && buf.Bytes()[0] == '\n' {
		buf.Next(1)
	}
}
