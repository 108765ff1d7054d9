package controller

import (
	"net/http"
	"runtime/debug"

	"internist/pkg/domain"
	"internist/pkg/logger"
	"internist/pkg/serrors"

	"go.uber.org/zap"
)

// WithRecover returns a middleware that recovers from a panicking handler,
// logs it with the stack and answers 500 with the generic error body.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func WithRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			if p == http.ErrAbortHandler { //nolint: errorlint
				panic(p)
			}

			logger.Error(r.Context(), "recovered from panic in handler",
				zap.Any("panic", p),
				zap.ByteString("stack", debug.Stack()))

			WriteJSON(w, http.StatusInternalServerError, domain.ErrorResponse{Error: serrors.InternalMessage})
		}()

		next.ServeHTTP(w, r)
	})
}
