// Package metrics holds the names and shared settings of the instruments the
// service records through OpenTelemetry, and the Provider exposing them to
// Prometheus.
package metrics

const (
	// MeterName is the instrumentation scope of every instrument in the service.
	MeterName = "internist"

	// FetchesCounter counts outbound metadata fetches, labeled by OutcomeKey.
	FetchesCounter = "internist.fetches"
	// FetchDurationHistogram records the latency of a single metadata fetch in seconds.
	FetchDurationHistogram = "internist.fetch.duration"
	// LookupsCounter counts domain lookups, labeled by OutcomeKey.
	LookupsCounter = "internist.lookups"

	// OutcomeKey is the attribute key used to split counters by result.
	OutcomeKey = "outcome"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals
