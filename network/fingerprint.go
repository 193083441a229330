package network

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/KRTirtho/NewPipeCLI/log"
	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

const dialTimeout = 30 * time.Second

// fingerprintTransport mimics Chrome's Client Hello.
// It tries HTTP/2 first and falls back to an HTTP/1.1-only connection when h2 fails,
// which also covers plain http:// targets.
type fingerprintTransport struct {
	h2 http.RoundTripper
	h1 http.RoundTripper
}

func newFingerprintTransport() *fingerprintTransport {
	return &fingerprintTransport{
		h2: &http2.Transport{
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				return dialTLS(ctx, network, addr, nil)
			},
		},
		h1: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				return dialTLS(ctx, network, addr, []string{"http/1.1"})
			},
		},
	}
}

func (t *fingerprintTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme == "https" {
		resp, err := t.h2.RoundTrip(req)
		if err == nil {
			return resp, nil
		}

		hasBody := req.Body != nil && req.Body != http.NoBody
		if hasBody && req.GetBody == nil {
			// The body was consumed by the failed attempt and cannot be replayed.
			return nil, err
		}

		log.Debugf("h2 round trip to %s failed, retrying over http/1.1: %v", req.URL.Host, err)
		if hasBody {
			body, bodyErr := req.GetBody()
			if bodyErr != nil {
				return nil, fmt.Errorf("rewind request body: %w", bodyErr)
			}
			req = req.Clone(req.Context())
			req.Body = body
		}
	}

	return t.h1.RoundTrip(req)
}

// dialTLS opens a uTLS connection with the Chrome 120 fingerprint.
// A nil nextProtos keeps Chrome's own ALPN list (h2 and http/1.1).
func dialTLS(ctx context.Context, network, addr string, nextProtos []string) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	dialer := &net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
		NextProtos: nextProtos,
	}, utls.HelloChrome_120)

	if err := tlsConn.HandshakeContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("tls handshake: %w", err)
	}

	return tlsConn, nil
}
