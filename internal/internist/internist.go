package internist

import (
	"context"
	"fmt"
	"time"

	"internist/internal/config"
	"internist/pkg/domain"
	"internist/pkg/logger"
	"internist/pkg/metafetch"
	"internist/pkg/metrics"
	"internist/pkg/registry"
	"internist/pkg/serrors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// MissingDomainMessage is returned when the request carries no domain.
	MissingDomainMessage = "Missing domain parameter"
	// NotFoundMessageFormat is returned when the registry has no URLs for a domain.
	NotFoundMessageFormat = "No URLs found for domain: %s"
)

var (
	outcomeSuccess  = metric.WithAttributes(attribute.String(metrics.OutcomeKey, "success"))
	outcomeFailure  = metric.WithAttributes(attribute.String(metrics.OutcomeKey, "failure"))
	outcomeInvalid  = metric.WithAttributes(attribute.String(metrics.OutcomeKey, "invalid"))
	outcomeNotFound = metric.WithAttributes(attribute.String(metrics.OutcomeKey, "not_found"))
)

// Options configure the fan-out of a lookup.
type Options struct {
	// FetchTimeout bounds each page fetch. Zero leaves only the caller's deadline.
	FetchTimeout time.Duration
	// MaxConcurrency caps how many pages of one domain are fetched at once.
	// Zero or less means no cap.
	MaxConcurrency int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		FetchTimeout:   cfg.Fetcher.Timeout,
		MaxConcurrency: cfg.Fetcher.MaxConcurrency,
	}
}

// Deps are the collaborators of the service.
type Deps struct {
	Registry registry.Registry
	Fetcher  metafetch.Fetcher
	Meter    metric.Meter
}

type internist struct {
	options  Options
	registry registry.Registry
	fetcher  metafetch.Fetcher

	fetches       metric.Int64Counter
	fetchDuration metric.Float64Histogram
	lookups       metric.Int64Counter
}

// New creates an Internist over deps.
func New(deps Deps, options Options) (Internist, error) {
	fetches, err := deps.Meter.Int64Counter(metrics.FetchesCounter,
		metric.WithDescription("Number of page metadata fetches"))
	if err != nil {
		return nil, fmt.Errorf("could not create fetches counter: %w", err)
	}
	fetchDuration, err := deps.Meter.Float64Histogram(metrics.FetchDurationHistogram,
		metric.WithDescription("Duration of a single page metadata fetch"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create fetch duration histogram: %w", err)
	}
	lookups, err := deps.Meter.Int64Counter(metrics.LookupsCounter,
		metric.WithDescription("Number of domain lookups"))
	if err != nil {
		return nil, fmt.Errorf("could not create lookups counter: %w", err)
	}

	return &internist{
		options:       options,
		registry:      deps.Registry,
		fetcher:       deps.Fetcher,
		fetches:       fetches,
		fetchDuration: fetchDuration,
		lookups:       lookups,
	}, nil
}

// Lookup implements Internist.
func (s *internist) Lookup(ctx context.Context, domainName string) (*domain.DomainResponse, error) {
	if domainName == "" {
		s.lookups.Add(ctx, 1, outcomeInvalid)

		return nil, serrors.With(serrors.ErrBadRequest, MissingDomainMessage)
	}

	urls, ok := s.registry.Lookup(domainName)
	if !ok {
		s.lookups.Add(ctx, 1, outcomeNotFound)

		return nil, serrors.With(serrors.ErrNotFound, NotFoundMessageFormat, domainName)
	}

	ctx = logger.WithFields(ctx, zap.String("domain", domainName))

	results := make([]domain.FetchResult, len(urls))

	var g errgroup.Group
	if s.options.MaxConcurrency > 0 {
		g.SetLimit(s.options.MaxConcurrency)
	}
	for i, URL := range urls {
		i, URL := i, URL
		g.Go(func() error {
			// each slot is written by exactly one goroutine
			results[i] = s.fetch(ctx, URL)

			return nil
		})
	}
	// tasks never fail: every error has already become a failure result
	_ = g.Wait()

	s.lookups.Add(ctx, 1, outcomeSuccess)

	return &domain.DomainResponse{Domain: domainName, Results: results}, nil
}

// fetch runs one page fetch and turns any failure, panics included, into a
// failure-shaped result.
func (s *internist) fetch(ctx context.Context, URL string) (res domain.FetchResult) {
	ctx = logger.WithFields(ctx, zap.String("url", URL))

	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "panic while fetching metadata", zap.Any("panic", p))
			res = domain.NewFetchFailure(URL)
		}

		s.fetchDuration.Record(ctx, time.Since(start).Seconds())
		if res.Failed {
			s.fetches.Add(ctx, 1, outcomeFailure)
		} else {
			s.fetches.Add(ctx, 1, outcomeSuccess)
		}
	}()

	if s.options.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.options.FetchTimeout)
		defer cancel()
	}

	meta, err := s.fetcher.Fetch(ctx, URL)
	if err != nil {
		logger.Error(ctx, "could not fetch metadata", zap.Error(err))

		return domain.NewFetchFailure(URL)
	}

	logger.Debug(ctx, "fetched metadata")

	return domain.NewFetchSuccess(URL, meta)
}
