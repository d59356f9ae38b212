package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofPrefix is the path under which RegisterPprof mounts the profiling handlers.
const PprofPrefix = "/debug/pprof/"

// RegisterPprof mounts the net/http/pprof handlers on mux under PprofPrefix.
// pprof.Index resolves named profiles (heap, goroutine, ...) relative to that
// exact prefix, so it cannot be moved.
func RegisterPprof(mux *http.ServeMux) {
	mux.HandleFunc("GET "+PprofPrefix, pprof.Index)
	mux.HandleFunc("GET "+PprofPrefix+"cmdline", pprof.Cmdline)
	mux.HandleFunc("GET "+PprofPrefix+"profile", pprof.Profile)
	mux.HandleFunc("GET "+PprofPrefix+"symbol", pprof.Symbol)
	mux.HandleFunc("POST "+PprofPrefix+"symbol", pprof.Symbol)
	mux.HandleFunc("GET "+PprofPrefix+"trace", pprof.Trace)
}
