// Package resp implements an incremental decoder for the RESP wire protocol.
//
// The decoder never blocks and never re-reads input. When the bytes it has
// been given end in the middle of a value, it returns a Continuation that
// holds everything consumed so far. Passing that Continuation back together
// with the next chunk produces exactly the result a single pass over the
// concatenated input would have produced.
//
// Layers, leaves first:
//
//   - tokenizer.go: CRLF-delimited tokens
//   - integer.go: signed decimal integers (also used for length headers)
//   - bulkstring.go: length-prefixed strings
//   - array.go: length-prefixed sequences of nested values
//   - decode.go: marker dispatch and the per-connection stream Decoder
//   - writer.go: reply encoding
//
// Supported input types are arrays (*), integers (:) and bulk strings ($).
// Simple strings and the null bulk string are only ever written.
package resp
