package resp

import (
	"bufio"
	"strconv"
)

// WriteSimpleString writes a status reply: +s\r\n.
func WriteSimpleString(w *bufio.Writer, s string) error {
	_, err := w.WriteString("+" + s + "\r\n")
	return err
}

// WriteInteger writes :n\r\n.
func WriteInteger(w *bufio.Writer, n int64) error {
	_, err := w.WriteString(":" + strconv.FormatInt(n, 10) + "\r\n")
	return err
}

// WriteNullBulk writes the null bulk string $-1\r\n.
func WriteNullBulk(w *bufio.Writer) error {
	_, err := w.WriteString("$-1\r\n")
	return err
}

// WriteBulkString writes $len\r\ns\r\n.
func WriteBulkString(w *bufio.Writer, s string) error {
	if _, err := w.WriteString("$" + strconv.Itoa(len(s)) + "\r\n"); err != nil {
		return err
	}
	if _, err := w.WriteString(s); err != nil {
		return err
	}
	_, err := w.WriteString("\r\n")
	return err
}

// WriteArrayHeader writes *n\r\n. The caller writes the n elements.
func WriteArrayHeader(w *bufio.Writer, n int) error {
	_, err := w.WriteString("*" + strconv.Itoa(n) + "\r\n")
	return err
}

// WriteCommand writes args as an array of bulk strings, the form clients
// use to send commands.
func WriteCommand(w *bufio.Writer, args ...string) error {
	if err := WriteArrayHeader(w, len(args)); err != nil {
		return err
	}
	for _, a := range args {
		if err := WriteBulkString(w, a); err != nil {
			return err
		}
	}
	return nil
}

// Write encodes v.
func Write(w *bufio.Writer, v Value) error {
	switch v.Kind {
	case KindInteger:
		return WriteInteger(w, v.Int)
	case KindBulkString:
		return WriteBulkString(w, v.Str)
	case KindArray:
		if err := WriteArrayHeader(w, len(v.Array)); err != nil {
			return err
		}
		for _, item := range v.Array {
			if err := Write(w, item); err != nil {
				return err
			}
		}
		return nil
	default:
		return newError(UnknownTypeMarker, "cannot encode %s", v.Kind)
	}
}
