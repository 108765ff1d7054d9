// Package v1handler implements the HTTP handlers of the v1 API.
package v1handler

import (
	"context"
	"net/http"
	"net/url"

	"internist/internal/internist"
	"internist/pkg/controller"
	"internist/pkg/domain"
	"internist/pkg/logger"
	"internist/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// DomainParam is the name of the path parameter holding the domain.
const DomainParam = "domain"

// Deps are the collaborators of the handlers.
type Deps struct {
	Internist internist.Internist
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// NewError converts err into a status code and the body shown to the caller.
// Errors without a client-facing kind are logged with their full detail and
// reported with the generic message only.
func (h Handler) NewError(ctx context.Context, err error) (int, domain.ErrorResponse) {
	status := serrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "could not process request", zap.Error(err))
	}

	return status, domain.ErrorResponse{Error: serrors.PublicMessage(err)}
}

// GetDomain serves GET /internist/{domain}.
func (h Handler) GetDomain(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := h.deps.Internist.Lookup(ctx, DomainFromRequest(r))
	if err != nil {
		status, body := h.NewError(ctx, err)
		controller.WriteJSON(w, status, body)

		return
	}
	if res == nil {
		status, body := h.NewError(ctx, serrors.With(serrors.ErrInternal, "lookup returned no response"))
		controller.WriteJSON(w, status, body)

		return
	}

	controller.WriteJSON(w, http.StatusOK, res)
}

// DomainFromRequest returns the domain path parameter decoded exactly once.
// chi matches against RawPath when net/http kept one and against the already
// decoded Path otherwise, so only the former still needs unescaping. A value
// that cannot be decoded is returned as received.
func DomainFromRequest(r *http.Request) string {
	param := chi.URLParam(r, DomainParam)
	if r.URL.RawPath == "" {
		return param
	}
	if decoded, err := url.PathUnescape(param); err == nil {
		return decoded
	}

	return param
}

// Health serves a liveness probe.
func (h Handler) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
