package logger

import (
	"log/slog"
	"strconv"
)

// MaxAttrLen is the longest string attribute written verbatim.
const MaxAttrLen = 256

// clipAttr shortens string attributes longer than MaxAttrLen.
func clipAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() != slog.KindString {
		return a
	}
	return slog.String(a.Key, Clip(a.Value.String()))
}

// Clip returns s unchanged if it fits in MaxAttrLen bytes, otherwise its
// prefix followed by the number of bytes dropped.
func Clip(s string) string {
	if len(s) <= MaxAttrLen {
		return s
	}
	return s[:MaxAttrLen] + "...(" + strconv.Itoa(len(s)-MaxAttrLen) + " more bytes)"
}
