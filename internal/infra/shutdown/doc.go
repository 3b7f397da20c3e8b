// Package shutdown coordinates graceful process shutdown.
//
// Hooks registered with OnShutdown run in reverse registration order once
// SIGINT or SIGTERM arrives or Trigger is called. They share one context
// bounded by the handler's timeout.
//
// Usage:
//
//	h := shutdown.NewHandler(30 * time.Second)
//	h.OnShutdown(srv.Shutdown)
//	if err := h.Wait(); err != nil {
//		// at least one hook failed
//	}
package shutdown
