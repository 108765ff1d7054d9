// Package registry maps domain names to the ordered list of URLs the service
// inspects for them. A registry is built once at startup and never changes.
//
//go:generate mockgen -package mockregistry -source=registry.go -destination=mock/mockregistry.go *
package registry

import (
	"fmt"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Registry resolves a domain to its URLs.
type Registry interface {
	// Lookup returns the URLs registered for domain, in registration order.
	// The second value is false if the domain is unknown or has no URLs.
	Lookup(domain string) ([]string, bool)
	// Domains returns all registered domain keys in lexical order.
	Domains() []string
}

// Static is an immutable in-memory Registry. Keys are opaque: no case folding
// or "www." stripping is applied. It is safe for concurrent use.
type Static struct {
	entries map[string][]string
}

// Ensure Static conforms to the Registry interface at compile time.
var _ Registry = (*Static)(nil)

// New builds a Static registry from a copy of entries.
func New(entries map[string][]string) *Static {
	s := &Static{entries: make(map[string][]string, len(entries))}
	for domain, urls := range entries {
		s.entries[domain] = append([]string(nil), urls...)
	}

	return s
}

// Default returns the built-in table.
func Default() *Static {
	return New(map[string][]string{
		"example.com": {
			"https://example.com/page1",
			"https://example.com/page2",
		},
		"nextjs.org": {
			"https://nextjs.org/docs",
			"https://nextjs.org/blog",
		},
		"simplewebsolutions.gr": {
			"https://www.simplewebsolutions.gr/dhmiourgia-istoselidwn",
			"https://www.simplewebsolutions.gr/kataskevi-eshop",
			"https://www.simplewebsolutions.gr/anaptyksi-web-efarmogon",
		},
	})
}

// file is the on-disk layout read by Load. Keys must be non-empty and every
// URL must be an absolute http(s) URL.
type file struct {
	Domains map[string][]string `yaml:"domains" validate:"dive,keys,required,endkeys,dive,http_url"`
}

var validate = validator.New(validator.WithRequiredStructEnabled()) //nolint: gochecknoglobals

// Load reads a YAML registry file of the form:
//
//	domains:
//	  example.com:
//	    - https://example.com/page1
//
// An empty path returns Default().
func Load(path string) (*Static, error) {
	if path == "" {
		return Default(), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read registry file: %w", err)
	}

	return Parse(b)
}

// Parse decodes a YAML registry document.
func Parse(b []byte) (*Static, error) {
	var f file
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("could not decode registry: %w", err)
	}
	if err := validate.Struct(f); err != nil {
		return nil, fmt.Errorf("invalid registry: %w", err)
	}

	return New(f.Domains), nil
}

// Lookup implements Registry. The returned slice is a copy.
func (s *Static) Lookup(domain string) ([]string, bool) {
	urls := s.entries[domain]
	if len(urls) == 0 {
		return nil, false
	}

	return append([]string(nil), urls...), true
}

// Domains implements Registry.
func (s *Static) Domains() []string {
	out := make([]string, 0, len(s.entries))
	for domain := range s.entries {
		out = append(out, domain)
	}
	sort.Strings(out)

	return out
}
