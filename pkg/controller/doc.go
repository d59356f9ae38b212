// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Provided middlewares:
//   - WithCORS: Adds CORS headers for the configured origins and handles OPTIONS preflight.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context, logs access info
//     and observes request latency.
//
// Provided helpers:
//   - RegisterPprof: Mounts net/http/pprof handlers under /debug/pprof/.
package controller
