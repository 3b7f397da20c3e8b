// Package redisserver serves the RESP protocol over TCP.
//
// Each accepted connection gets one goroutine that reads into an
// incremental resp.Decoder. After every read the driver drains all
// finished values in arrival order, executes them, and flushes the
// replies once before reading again. Values split across reads are
// carried in the decoder's continuation.
//
// A framing error closes the connection after a best-effort
// "+Invalid Command" reply. A command error only produces that reply.
package redisserver
