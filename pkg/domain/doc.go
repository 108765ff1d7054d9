// Package domain contains the core entities returned by the service: the
// per-URL fetch outcome, the aggregated per-domain response and the error
// body. They are free of infrastructure concerns so they can be shared by the
// HTTP layer, the CLI and the fetchers.
package domain
