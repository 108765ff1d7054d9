package serrors_test

import (
	"context"
	"errors"
	"fmt"
	"internist/pkg/serrors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrBadRequest,
		serrors.ErrNotFound,
		serrors.ErrInternal,
		serrors.ErrTimeout,
		serrors.ErrUnavailable,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("connection refused")

	e1 := serrors.With(serrors.ErrNotFound, "No URLs found for domain: %s", "a.example")
	require.Equal(t, "No URLs found for domain: a.example", e1.Error())

	e2 := serrors.Wrap(serrors.ErrUnavailable, base, "fetching page")
	require.Equal(t, "fetching page: connection refused", e2.Error())

	e3 := serrors.With(serrors.ErrNotFound, "")
	require.Equal(t, "NOT_FOUND", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrTimeout, base, "fetching")

	require.ErrorIs(t, e, serrors.ErrTimeout)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrNotFound)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrBadRequest, base, "bad input")
	require.Equal(t, serrors.ErrBadRequest, e.Kind())
	require.Equal(t, "bad input", e.Message())
	require.Equal(t, base, errors.Unwrap(e))
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"bad request", serrors.With(serrors.ErrBadRequest, "Missing domain parameter"), http.StatusBadRequest},
		{"not found wrapped", fmt.Errorf("lookup: %w", serrors.With(serrors.ErrNotFound, "")), http.StatusNotFound},
		{"timeout", serrors.Wrap(serrors.ErrTimeout, context.DeadlineExceeded, "fetch"), http.StatusGatewayTimeout},
		{"unavailable", serrors.With(serrors.ErrUnavailable, ""), http.StatusServiceUnavailable},
		{"internal", serrors.With(serrors.ErrInternal, ""), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, serrors.HTTPStatus(tc.err))
		})
	}
}

func TestPublicMessage(t *testing.T) {
	require.Equal(t, "Missing domain parameter",
		serrors.PublicMessage(serrors.With(serrors.ErrBadRequest, "Missing domain parameter")))
	require.Equal(t, "No URLs found for domain: x",
		serrors.PublicMessage(fmt.Errorf("wrapped: %w", serrors.With(serrors.ErrNotFound, "No URLs found for domain: x"))))

	// internal details never leak
	require.Equal(t, serrors.InternalMessage,
		serrors.PublicMessage(serrors.With(serrors.ErrInternal, "nil pointer in aggregation")))
	require.Equal(t, serrors.InternalMessage, serrors.PublicMessage(errors.New("boom")))
	require.Equal(t, serrors.InternalMessage, serrors.PublicMessage(serrors.With(serrors.ErrNotFound, "")))
}
