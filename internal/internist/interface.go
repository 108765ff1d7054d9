package internist

import (
	"context"
	"internist/pkg/domain"
)

// Internist resolves a domain to the metadata of all of its registered pages.
//
//go:generate mockgen -package mockinternist -source=interface.go -destination=mock/mockinternist.go *
type Internist interface {
	// Lookup validates domainName, resolves it through the registry and fetches
	// every URL concurrently. Per-URL failures are reported inside the response;
	// only an invalid or unknown domain is returned as an error.
	Lookup(ctx context.Context, domainName string) (*domain.DomainResponse, error)
}
