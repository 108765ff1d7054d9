package controller

import (
	"net/http"
	"time"
)

// TimeoutBody is written with 503 when a request exceeds its deadline.
const TimeoutBody = `{"error":"request timed out"}`

// WithTimeout bounds the handling of every request with http.TimeoutHandler.
// The request context is cancelled at the deadline, so outbound work started
// by the handler is abandoned too. A non-positive timeout disables the bound.
func WithTimeout(next http.Handler, timeout time.Duration) http.Handler {
	if timeout <= 0 {
		return next
	}

	th := http.TimeoutHandler(next, timeout, TimeoutBody)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// handlers that finish in time overwrite this with their own header
		w.Header().Set("Content-Type", "application/json")
		th.ServeHTTP(w, r)
	})
}
