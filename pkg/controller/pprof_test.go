package controller_test

import (
	"genericurl/pkg/controller"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newPprofMux() *http.ServeMux {
	mux := http.NewServeMux()
	controller.RegisterPprof(mux)

	return mux
}

func TestRegisterPprof_Index(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://pprof.local/debug/pprof/", nil)
	rec := httptest.NewRecorder()
	newPprofMux().ServeHTTP(rec, req)

	res := rec.Result()
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NotEmpty(t, res.Header.Get("Content-Type"))
}

func TestRegisterPprof_NamedProfile(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://pprof.local/debug/pprof/goroutine?debug=1", nil)
	rec := httptest.NewRecorder()
	newPprofMux().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Result().StatusCode)
}

func TestRegisterPprof_Cmdline_OK(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://pprof.local/debug/pprof/cmdline", nil)
	rec := httptest.NewRecorder()
	newPprofMux().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Result().StatusCode)
}

func TestRegisterPprof_MethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "http://pprof.local/debug/pprof/cmdline", nil)
	rec := httptest.NewRecorder()
	newPprofMux().ServeHTTP(rec, req)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Result().StatusCode)
}
