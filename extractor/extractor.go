// Package extractor defines the contract between the CLI and an extraction engine:
// the service and downloader interfaces, and the read-only domain objects a service returns.
package extractor

import (
	"context"
	"errors"
	"fmt"
)

// Service resolves identifiers and queries of one platform into domain objects.
type Service interface {
	// ID is the position of the service in the registry.
	ID() int

	// Name is the human readable platform name.
	Name() string

	// BaseURL is the platform's canonical origin.
	BaseURL() string

	// ContentFilters lists the filter names Search accepts.
	ContentFilters() []string

	// SortFilters lists the sort names Search accepts.
	SortFilters() []string

	// StreamInfo resolves a video identifier or URL.
	StreamInfo(ctx context.Context, idOrURL string) (*StreamInfo, error)

	// Search runs a query. Only the first page of results is returned.
	Search(ctx context.Context, query string, contentFilters []string, sortFilter string) ([]InfoItem, error)
}

// Downloader is the networking capability a service is initialized with.
type Downloader interface {
	Execute(ctx context.Context, req *Request) (*Response, error)
}

var (
	// ErrContentNotAvailable is returned when the platform refuses to serve an item.
	ErrContentNotAvailable = errors.New("content not available")

	// ErrUnsupportedFilter is returned for content or sort filters a service does not know.
	ErrUnsupportedFilter = errors.New("unsupported filter")
)

// ReCaptchaError signals an anti-automation challenge.
// Callers branch on it with errors.As, separately from ordinary transport failures.
type ReCaptchaError struct {
	URL string
}

func (e *ReCaptchaError) Error() string {
	return fmt.Sprintf("reCaptcha challenge requested for %s", e.URL)
}

// ParsingError reports a response that did not have the expected shape.
type ParsingError struct {
	What string
	Err  error
}

func (e *ParsingError) Error() string {
	if e.Err == nil {
		return "could not parse " + e.What
	}
	return fmt.Sprintf("could not parse %s: %v", e.What, e.Err)
}

func (e *ParsingError) Unwrap() error {
	return e.Err
}
