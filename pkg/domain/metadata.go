package domain

import (
	"github.com/go-faster/jx"
)

// FetchFailedMessage is the fixed error text attached to a failed FetchResult.
const FetchFailedMessage = "Failed to fetch metadata"

// PageMetadata holds the fields extracted from a single HTML page.
// A nil field means the page did not provide it; an empty string is a value.
type PageMetadata struct {
	Title       *string
	Description *string
}

// FetchResult is the outcome of fetching one URL. Exactly one of the success
// fields (Title, Description) or Error is meaningful, depending on Failed.
type FetchResult struct {
	// URL is the fetched URL, always equal to the registry entry.
	URL string
	// Title is the page title, if any.
	Title *string
	// Description is the page meta description, if any.
	Description *string
	// Error is set only on failed fetches.
	Error string
	// Failed reports whether this result has the failure shape.
	Failed bool
}

// NewFetchSuccess builds a success-shaped result.
func NewFetchSuccess(url string, meta PageMetadata) FetchResult {
	return FetchResult{
		URL:         url,
		Title:       meta.Title,
		Description: meta.Description,
	}
}

// NewFetchFailure builds a failure-shaped result carrying FetchFailedMessage.
func NewFetchFailure(url string) FetchResult {
	return FetchResult{
		URL:    url,
		Error:  FetchFailedMessage,
		Failed: true,
	}
}

// Encode writes the result as {url, title?, description?} or {url, error}.
func (r FetchResult) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("url")
	e.Str(r.URL)
	if r.Failed {
		e.FieldStart("error")
		e.Str(r.Error)
		e.ObjEnd()

		return
	}
	if r.Title != nil {
		e.FieldStart("title")
		e.Str(*r.Title)
	}
	if r.Description != nil {
		e.FieldStart("description")
		e.Str(*r.Description)
	}
	e.ObjEnd()
}

// MarshalJSON implements json.Marshaler.
func (r FetchResult) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	r.Encode(&e)

	return e.Bytes(), nil
}

// DomainResponse is the aggregated answer for one domain. Results follow the
// registry order of the domain's URLs.
type DomainResponse struct {
	Domain  string
	Results []FetchResult
}

// Encode writes the response as {domain, results: [...]}.
func (d DomainResponse) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("domain")
	e.Str(d.Domain)
	e.FieldStart("results")
	e.ArrStart()
	for _, r := range d.Results {
		r.Encode(e)
	}
	e.ArrEnd()
	e.ObjEnd()
}

// MarshalJSON implements json.Marshaler.
func (d DomainResponse) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	d.Encode(&e)

	return e.Bytes(), nil
}

// Failures returns how many results have the failure shape.
func (d DomainResponse) Failures() int {
	n := 0
	for _, r := range d.Results {
		if r.Failed {
			n++
		}
	}

	return n
}

// ErrorResponse is the body of every non-200 answer.
type ErrorResponse struct {
	Error string
}

// Encode writes the response as {error}.
func (r ErrorResponse) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("error")
	e.Str(r.Error)
	e.ObjEnd()
}

// MarshalJSON implements json.Marshaler.
func (r ErrorResponse) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	r.Encode(&e)

	return e.Bytes(), nil
}
