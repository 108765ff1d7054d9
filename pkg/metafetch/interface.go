// Package metafetch defines how the service obtains metadata for a single
// page. Implementations perform the network call and the markup parsing.
package metafetch

import (
	"context"
	"internist/pkg/domain"
)

// Fetcher retrieves the metadata of one URL.
//
//go:generate mockgen -package mockmetafetch -source=interface.go -destination=mock/mockmetafetch.go *
type Fetcher interface {
	// Fetch issues a single GET for URL and extracts the page metadata.
	// Missing fields are not an error; transport failures, non-2xx responses
	// and unparseable bodies are.
	Fetch(ctx context.Context, URL string) (domain.PageMetadata, error)
}
