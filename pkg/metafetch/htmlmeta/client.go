// Package htmlmeta provides a metafetch.Fetcher that downloads a page over
// HTTP and reads its title and description from the HTML markup.
package htmlmeta

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"internist/pkg/domain"
	"internist/pkg/metafetch"
	"internist/pkg/serrors"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
)

// DefaultUserAgent is sent when Options.UserAgent is empty.
const DefaultUserAgent = "internist/1.0 (+metadata fetcher)"

// Options configure a Client.
type Options struct {
	// UserAgent is the User-Agent header sent with every request.
	UserAgent string
	// MaxBodyBytes caps how much of a response body is parsed. Zero means no cap.
	MaxBodyBytes int64
}

// Client fetches pages with an http.Client and extracts metadata with
// goquery. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	options    Options
}

// Ensure Client conforms to the metafetch.Fetcher interface at compile time.
var _ metafetch.Fetcher = (*Client)(nil)

// New constructs a Client using httpClient for transport.
func New(httpClient *http.Client, options Options) *Client {
	if options.UserAgent == "" {
		options.UserAgent = DefaultUserAgent
	}

	return &Client{
		httpClient: httpClient,
		options:    options,
	}
}

// Fetch issues a GET for URL and extracts the page metadata. Any status
// outside 2xx is reported as an error.
func (c *Client) Fetch(ctx context.Context, URL string) (domain.PageMetadata, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, URL, nil)
	if err != nil {
		return domain.PageMetadata{}, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("User-Agent", c.options.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return domain.PageMetadata{}, serrors.Wrap(serrors.ErrTimeout, err, "request timed out")
		}

		return domain.PageMetadata{}, serrors.Wrap(serrors.ErrUnavailable, err, "could not send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// drain a little so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))

		return domain.PageMetadata{}, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	var body io.Reader = resp.Body
	if c.options.MaxBodyBytes > 0 {
		body = io.LimitReader(resp.Body, c.options.MaxBodyBytes)
	}
	// goquery expects UTF-8; pages in legacy encodings are transcoded first
	if utf8Body, err := charset.NewReader(body, resp.Header.Get("Content-Type")); err == nil {
		body = utf8Body
	}

	meta, err := Extract(body)
	if err != nil {
		return domain.PageMetadata{}, fmt.Errorf("could not extract metadata: %w", err)
	}

	return meta, nil
}

// Extract parses HTML from r and returns its metadata.
//
// Title is the text of head > title; when that is empty it falls back to the
// content attribute of meta[name="title"]. Description is the content
// attribute of meta[name="description"]. A field is nil when the document does
// not provide it.
func Extract(r io.Reader) (domain.PageMetadata, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return domain.PageMetadata{}, fmt.Errorf("could not parse html: %w", err)
	}

	var meta domain.PageMetadata

	if title := doc.Find("head > title").Text(); title != "" {
		meta.Title = &title
	} else if content, ok := doc.Find(`meta[name="title"]`).Attr("content"); ok {
		meta.Title = &content
	}

	if content, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
		meta.Description = &content
	}

	return meta, nil
}
