package downloader

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/KRTirtho/NewPipeCLI/extractor"
	. "github.com/smartystreets/goconvey/convey"
)

type captured struct {
	method      string
	body        string
	contentType string
	userAgent   string
	multi       []string
	hasBody     bool
}

func newServer(seen *captured) *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/echo", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		*seen = captured{
			method:      r.Method,
			body:        string(body),
			contentType: r.Header.Get("Content-Type"),
			userAgent:   r.Header.Get("User-Agent"),
			multi:       r.Header.Values("X-Multi"),
			hasBody:     r.ContentLength > 0,
		}
		w.Header().Add("Set-Cookie", "a=1")
		w.Header().Add("Set-Cookie", "b=2")
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/challenge", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`<html><script src="https://www.google.com/recaptcha/api.js"></script></html>`))
	})

	mux.HandleFunc("/throttled", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("slow down"))
	})

	mux.HandleFunc("/missing", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nothing here", http.StatusNotFound)
	})

	mux.HandleFunc("/redirect", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/echo", http.StatusFound)
	})

	return httptest.NewServer(mux)
}

func TestExecute(t *testing.T) {
	Convey("Given a downloader pointed at a test server", t, func() {
		var seen captured
		server := newServer(&seen)
		defer server.Close()

		d := New(server.Client(), "newpipe-test")
		ctx := context.Background()

		Convey("When sending a GET without payload", func() {
			req := extractor.NewRequest(http.MethodGet, server.URL+"/echo", nil)
			req.Headers.Add("X-Multi", "one")
			req.Headers.Add("X-Multi", "two")

			resp, err := d.Execute(ctx, req)
			So(err, ShouldBeNil)

			Convey("Then no body and no content type are sent", func() {
				So(seen.method, ShouldEqual, http.MethodGet)
				So(seen.hasBody, ShouldBeFalse)
				So(seen.contentType, ShouldBeEmpty)
			})

			Convey("Then repeated header values are all sent", func() {
				So(seen.multi, ShouldResemble, []string{"one", "two"})
			})

			Convey("Then the default user agent is applied", func() {
				So(seen.userAgent, ShouldEqual, "newpipe-test")
			})

			Convey("Then the response multimap keeps repeated values", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(resp.StatusMessage, ShouldEqual, "OK")
				So(resp.Body, ShouldEqual, "ok")
				So(resp.Headers.Values("Set-Cookie"), ShouldResemble, []string{"a=1", "b=2"})
			})
		})

		Convey("When posting a payload without a content type", func() {
			req := extractor.NewRequest(http.MethodPost, server.URL+"/echo", []byte("a=b"))
			_, err := d.Execute(ctx, req)
			So(err, ShouldBeNil)

			Convey("Then the form-encoded default is used", func() {
				So(seen.body, ShouldEqual, "a=b")
				So(seen.contentType, ShouldEqual, DefaultContentType)
			})
		})

		Convey("When posting a payload with a caller supplied content type", func() {
			req := extractor.NewRequest(http.MethodPost, server.URL+"/echo", []byte(`{"q":1}`))
			req.Headers["content-type"] = []string{"application/json"}
			req.Headers.Set("User-Agent", "custom-agent")
			_, err := d.Execute(ctx, req)
			So(err, ShouldBeNil)

			Convey("Then the caller's type and user agent win", func() {
				So(seen.contentType, ShouldEqual, "application/json")
				So(seen.userAgent, ShouldEqual, "custom-agent")
			})
		})

		Convey("When the server answers 429 with a reCaptcha page", func() {
			_, err := d.Execute(ctx, extractor.NewRequest(http.MethodGet, server.URL+"/challenge", nil))

			Convey("Then a ReCaptchaError is returned", func() {
				var captcha *extractor.ReCaptchaError
				So(errors.As(err, &captcha), ShouldBeTrue)
				So(captcha.URL, ShouldEqual, server.URL+"/challenge")
			})
		})

		Convey("When the server answers 429 with an unrelated body", func() {
			resp, err := d.Execute(ctx, extractor.NewRequest(http.MethodGet, server.URL+"/throttled", nil))

			Convey("Then an ordinary response is returned", func() {
				So(err, ShouldBeNil)
				So(resp.StatusCode, ShouldEqual, http.StatusTooManyRequests)
				So(resp.Body, ShouldEqual, "slow down")
			})
		})

		Convey("When the server answers 404", func() {
			resp, err := d.Execute(ctx, extractor.NewRequest(http.MethodGet, server.URL+"/missing", nil))

			Convey("Then the status and body are passed through", func() {
				So(err, ShouldBeNil)
				So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
				So(resp.StatusMessage, ShouldEqual, "Not Found")
				So(resp.Body, ShouldContainSubstring, "nothing here")
			})
		})

		Convey("When following a redirect", func() {
			resp, err := d.Execute(ctx, extractor.NewRequest(http.MethodGet, server.URL+"/redirect", nil))

			Convey("Then the latest URL is the redirect target", func() {
				So(err, ShouldBeNil)
				So(resp.LatestURL, ShouldEqual, server.URL+"/echo")
			})
		})
	})

	Convey("Given a server that is gone", t, func() {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		_, err := New(http.DefaultClient, "").Execute(context.Background(), extractor.NewRequest(http.MethodGet, url, nil))

		Convey("Then a transport error that is not a challenge is returned", func() {
			So(err, ShouldNotBeNil)
			var captcha *extractor.ReCaptchaError
			So(errors.As(err, &captcha), ShouldBeFalse)
		})
	})
}
