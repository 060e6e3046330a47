package particledocs

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch performs a single GET against the URL and returns the
	// response body. A transport error or non-2xx status is an error;
	// the context bounds the request alongside the fetcher's own timeout.
	Fetch(ctx context.Context, url string) (html string, err error)
}
