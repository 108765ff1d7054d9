package v1handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"internist/internal/api/handler/v1handler"
	"internist/internal/internist"
	mockinternist "internist/internal/internist/mock"
	"internist/pkg/domain"
	"internist/pkg/logger"
	"internist/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	// initialize logger to get output during tests
	_ = logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func ptr(s string) *string { return &s }

func newRouter(h *v1handler.Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/internist/{domain}", h.GetDomain)
	r.Get("/internist/", h.GetDomain)

	return r
}

func serve(t *testing.T, r http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error
}

func TestNewError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "bad request",
			err:     serrors.With(serrors.ErrBadRequest, internist.MissingDomainMessage),
			status:  http.StatusBadRequest,
			message: "Missing domain parameter",
		},
		{
			name:    "not found",
			err:     serrors.With(serrors.ErrNotFound, internist.NotFoundMessageFormat, "x.example"),
			status:  http.StatusNotFound,
			message: "No URLs found for domain: x.example",
		},
		{
			name:    "plain error is internal",
			err:     errors.New("boom"),
			status:  http.StatusInternalServerError,
			message: "An error occurred while processing the request",
		},
		{
			name:    "internal kind hides its message",
			err:     serrors.With(serrors.ErrInternal, "secret detail"),
			status:  http.StatusInternalServerError,
			message: "An error occurred while processing the request",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := h.NewError(ctx, tc.err)
			require.Equal(t, tc.status, status)
			require.Equal(t, tc.message, body.Error)
		})
	}
}

func TestGetDomain_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mockinternist.NewMockInternist(ctrl)
	m.EXPECT().Lookup(gomock.Any(), "example.com").Return(&domain.DomainResponse{
		Domain: "example.com",
		Results: []domain.FetchResult{
			domain.NewFetchSuccess("https://example.com/page1", domain.PageMetadata{Title: ptr("Example")}),
			domain.NewFetchFailure("https://example.com/page2"),
		},
	}, nil)

	rec := serve(t, newRouter(v1handler.New(v1handler.Deps{Internist: m})), "/internist/example.com")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `{
		"domain": "example.com",
		"results": [
			{"url": "https://example.com/page1", "title": "Example"},
			{"url": "https://example.com/page2", "error": "Failed to fetch metadata"}
		]
	}`, rec.Body.String())
}

func TestGetDomain_MissingDomain(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mockinternist.NewMockInternist(ctrl)
	m.EXPECT().Lookup(gomock.Any(), "").
		Return(nil, serrors.With(serrors.ErrBadRequest, internist.MissingDomainMessage))

	rec := serve(t, newRouter(v1handler.New(v1handler.Deps{Internist: m})), "/internist/")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error":"Missing domain parameter"}`, rec.Body.String())
}

func TestGetDomain_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mockinternist.NewMockInternist(ctrl)
	m.EXPECT().Lookup(gomock.Any(), "unknown.example").
		Return(nil, serrors.With(serrors.ErrNotFound, internist.NotFoundMessageFormat, "unknown.example"))

	rec := serve(t, newRouter(v1handler.New(v1handler.Deps{Internist: m})), "/internist/unknown.example")

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"No URLs found for domain: unknown.example"}`, rec.Body.String())
}

func TestGetDomain_UnexpectedError(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mockinternist.NewMockInternist(ctrl)
	m.EXPECT().Lookup(gomock.Any(), "example.com").Return(nil, errors.New("aggregation defect"))

	rec := serve(t, newRouter(v1handler.New(v1handler.Deps{Internist: m})), "/internist/example.com")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"An error occurred while processing the request"}`, rec.Body.String())
}

func TestGetDomain_NilResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mockinternist.NewMockInternist(ctrl)
	m.EXPECT().Lookup(gomock.Any(), "example.com").Return(nil, nil)

	rec := serve(t, newRouter(v1handler.New(v1handler.Deps{Internist: m})), "/internist/example.com")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"An error occurred while processing the request"}`, rec.Body.String())
}

func TestGetDomain_DecodesPathParameter(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/internist/my%20site.example", "my site.example"},
		{"/internist/a%2Fb.example", "a/b.example"},
		// decoded once: the escaped percent stays a literal percent
		{"/internist/a%2541", "a%41"},
		{"/internist/100%2525", "100%25"},
		{"/internist/example.com", "example.com"},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := mockinternist.NewMockInternist(ctrl)
			m.EXPECT().Lookup(gomock.Any(), tc.want).
				Return(nil, serrors.With(serrors.ErrNotFound, internist.NotFoundMessageFormat, tc.want))

			rec := serve(t, newRouter(v1handler.New(v1handler.Deps{Internist: m})), tc.path)

			require.Equal(t, http.StatusNotFound, rec.Code)
			require.Equal(t, "No URLs found for domain: "+tc.want, decodeError(t, rec))
		})
	}
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	v1handler.New(v1handler.Deps{}).Health(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}
