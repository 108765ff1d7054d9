// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the internist service.
package api

import (
	_ "embed"
	"errors"
	"net/http"
	"time"

	"internist/internal/api/handler/v1handler"
	"internist/internal/config"
	"internist/pkg/controller"
	"internist/pkg/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server.
// It is typically created from a config.Config via NewOptions.
// Zero durations leave the corresponding net/http default in place.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout bounds the handling of every request, fan-out included.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
	}
}

type Deps struct {
	v1handler.Deps

	// Metrics is served on Options.MetricsPath.
	Metrics *metrics.Provider
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - the lookup endpoint under /internist
// - Prometheus metrics endpoint (MetricsPath)
// - Embedded OpenAPI v1 spec and Swagger UI
// - pprof endpoints for profiling
// - a liveness probe
// It wraps the router with recover, CORS and logging middlewares and applies a request timeout.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	if deps.Internist == nil {
		return nil, errors.New("internist is required")
	}
	if deps.Metrics == nil {
		return nil, errors.New("metrics provider is required")
	}

	h := v1handler.New(deps.Deps)
	r := chi.NewRouter()

	// api
	r.Get("/internist/{"+v1handler.DomainParam+"}", h.GetDomain)
	// no domain segment at all: answered by the handler with 400
	r.Get("/internist/", h.GetDomain)
	r.Get("/internist", h.GetDomain)

	// prometheus metrics
	if opts.MetricsPath != "" {
		r.Handle(opts.MetricsPath, deps.Metrics.Handler())
	}

	// v1 specs file
	r.Get("/specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	r.Handle("/v1/docs/*", v5emb.New(
		"Internist",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	// pprof
	r.Handle("/debug/pprof/*", http.StripPrefix("/debug/pprof", controller.PprofMux()))

	r.Get("/healthz", h.Health)

	// recover sits inside the timeout handler, which runs the router on its own goroutine
	handler := controller.WithRecover(r)

	// cors
	handler = controller.WithCORS(handler)

	// logger
	handler = controller.WithLogger(handler)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           controller.WithTimeout(handler, opts.RequestTimeout),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
