// Package network builds the HTTP client the downloader delegates to.
package network

import (
	"net/http"
	"time"

	"github.com/KRTirtho/NewPipeCLI/key"
	"github.com/spf13/viper"
)

// Options configures New. Zero values mean "use the Go defaults".
type Options struct {
	Timeout        time.Duration
	TLSFingerprint bool
}

// OptionsFromConfig reads the network.* keys.
func OptionsFromConfig() Options {
	return Options{
		Timeout:        time.Duration(viper.GetInt(key.NetworkTimeout)) * time.Second,
		TLSFingerprint: viper.GetBool(key.NetworkTLSFingerprint),
	}
}

// New returns a client following redirects with pooled connections.
// The timeout is passed through to the transport unchanged.
func New(options Options) *http.Client {
	var transport http.RoundTripper = newTransport()
	if options.TLSFingerprint {
		transport = newFingerprintTransport()
	}

	return &http.Client{
		Timeout:   options.Timeout,
		Transport: transport,
	}
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 30 * time.Second
	return t
}
