package extractor

import (
	"net/http"
)

// Request is what a service asks the downloader to send.
// Headers is a multimap; repeated values are sent as repeated header lines.
type Request struct {
	Method  string
	URL     string
	Headers http.Header
	Data    []byte
}

// NewRequest returns a request with an initialized header map.
func NewRequest(method, url string, data []byte) *Request {
	return &Request{
		Method:  method,
		URL:     url,
		Headers: make(http.Header),
		Data:    data,
	}
}

// Response is what the downloader hands back.
// Non-2xx statuses are ordinary responses; interpreting them is up to the service.
type Response struct {
	StatusCode    int
	StatusMessage string
	Headers       http.Header
	Body          string
	LatestURL     string
}

// Header returns the first value of the named header.
func (r *Response) Header(name string) string {
	return r.Headers.Get(name)
}
