// Package downloader bridges the engine's Downloader contract to an *http.Client.
package downloader

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/KRTirtho/NewPipeCLI/extractor"
	"github.com/KRTirtho/NewPipeCLI/log"
)

const (
	// DefaultContentType is used for request bodies whose headers do not name a type.
	DefaultContentType = "application/x-www-form-urlencoded"

	// reCaptchaMarker identifies a challenge page in a 429 response body.
	reCaptchaMarker = "https://www.google.com/recaptcha"
)

// Downloader executes engine requests with a general-purpose HTTP client.
type Downloader struct {
	client    *http.Client
	userAgent string
}

// New returns a Downloader using client. userAgent is only sent when a request
// does not carry its own User-Agent; an empty value sends nothing extra.
func New(client *http.Client, userAgent string) *Downloader {
	return &Downloader{
		client:    client,
		userAgent: userAgent,
	}
}

// Execute sends req and returns the response as-is, except for rate-limit challenges,
// which fail with *extractor.ReCaptchaError.
func (d *Downloader) Execute(ctx context.Context, req *extractor.Request) (*extractor.Response, error) {
	httpReq, err := newHTTPRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	if d.userAgent != "" && httpReq.Header.Get("User-Agent") == "" {
		httpReq.Header.Set("User-Agent", d.userAgent)
	}

	log.Debugf("%s %s", req.Method, req.URL)

	resp, err := d.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body of %s: %w", req.URL, err)
	}

	log.Debugf("%s %s -> %d (%d bytes)", req.Method, req.URL, resp.StatusCode, len(body))

	if resp.StatusCode == http.StatusTooManyRequests && bytes.Contains(body, []byte(reCaptchaMarker)) {
		log.Warnf("reCaptcha challenge from %s", req.URL)
		return nil, &extractor.ReCaptchaError{URL: req.URL}
	}

	return &extractor.Response{
		StatusCode:    resp.StatusCode,
		StatusMessage: statusMessage(resp),
		Headers:       resp.Header,
		Body:          string(body),
		LatestURL:     resp.Request.URL.String(),
	}, nil
}

func newHTTPRequest(ctx context.Context, req *extractor.Request) (*http.Request, error) {
	var body io.Reader
	if len(req.Data) > 0 {
		body = bytes.NewReader(req.Data)
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", req.URL, err)
	}

	for name, values := range req.Headers {
		for _, value := range values {
			httpReq.Header.Add(name, value)
		}
	}

	if body != nil {
		httpReq.Header.Set("Content-Type", contentType(req.Headers))
	}

	return httpReq, nil
}

// contentType looks the header up case-insensitively, since engine code may build
// the multimap by hand without canonical keys.
func contentType(headers http.Header) string {
	for name, values := range headers {
		if strings.EqualFold(name, "Content-Type") && len(values) > 0 && values[0] != "" {
			return values[0]
		}
	}
	return DefaultContentType
}

// statusMessage strips the numeric code from "404 Not Found".
func statusMessage(resp *http.Response) string {
	if _, text, ok := strings.Cut(resp.Status, " "); ok {
		return text
	}
	return http.StatusText(resp.StatusCode)
}
