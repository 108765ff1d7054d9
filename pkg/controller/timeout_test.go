package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"internist/pkg/controller"

	"github.com/stretchr/testify/require"
)

func TestWithTimeout_Expired(t *testing.T) {
	cancelled := make(chan struct{})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
		close(cancelled)
	})

	rec := httptest.NewRecorder()
	controller.WithTimeout(next, 20*time.Millisecond).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/internist/example.com", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, controller.TimeoutBody, rec.Body.String())

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("handler context was not cancelled")
	}
}

func TestWithTimeout_InTime(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("done"))
	})

	rec := httptest.NewRecorder()
	controller.WithTimeout(next, time.Second).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	require.Equal(t, "done", rec.Body.String())
}

func TestWithTimeout_Disabled(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasDeadline := r.Context().Deadline()
		require.False(t, hasDeadline)
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	controller.WithTimeout(next, 0).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)
}
