package youtube

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/KRTirtho/NewPipeCLI/extractor"
)

// bridgeTransport hands the player client's requests to the downloader,
// so they share its user agent, TLS settings and challenge detection.
type bridgeTransport struct {
	downloader extractor.Downloader
}

func (t *bridgeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var data []byte
	if req.Body != nil {
		var err error
		data, err = io.ReadAll(req.Body)
		_ = req.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("read request body: %w", err)
		}
	}

	resp, err := t.downloader.Execute(req.Context(), &extractor.Request{
		Method:  req.Method,
		URL:     req.URL.String(),
		Headers: req.Header.Clone(),
		Data:    data,
	})
	if err != nil {
		var challenge *extractor.ReCaptchaError
		if errors.As(err, &challenge) {
			if slot, ok := req.Context().Value(challengeKey{}).(*challengeSlot); ok {
				slot.err = challenge
			}
		}
		return nil, err
	}

	header := resp.Headers
	if header == nil {
		header = make(http.Header)
	}

	return &http.Response{
		Status:        fmt.Sprintf("%d %s", resp.StatusCode, resp.StatusMessage),
		StatusCode:    resp.StatusCode,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(strings.NewReader(resp.Body)),
		ContentLength: int64(len(resp.Body)),
		Request:       req,
	}, nil
}

type challengeKey struct{}

// challengeSlot remembers a reCaptcha raised below the player client,
// whose own errors do not always wrap the transport error.
type challengeSlot struct {
	err *extractor.ReCaptchaError
}

func withChallengeSlot(ctx context.Context) (context.Context, *challengeSlot) {
	slot := &challengeSlot{}
	return context.WithValue(ctx, challengeKey{}, slot), slot
}

// or prefers the recorded challenge over err.
func (s *challengeSlot) or(err error) error {
	if s.err != nil {
		return s.err
	}
	return err
}
