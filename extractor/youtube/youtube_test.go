package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/KRTirtho/NewPipeCLI/extractor"
	"github.com/kkdai/youtube/v2"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type fakeDownloader struct {
	requests []*extractor.Request
	handle   func(req *extractor.Request) (*extractor.Response, error)
}

func (f *fakeDownloader) Execute(_ context.Context, req *extractor.Request) (*extractor.Response, error) {
	f.requests = append(f.requests, req)
	return f.handle(req)
}

func fixture(name string) *extractor.Response {
	body := lo.Must(os.ReadFile("testdata/" + name))
	return &extractor.Response{
		StatusCode:    http.StatusOK,
		StatusMessage: "OK",
		Headers:       http.Header{"Content-Type": {"application/json; charset=UTF-8"}},
		Body:          string(body),
	}
}

func newTestService(handle func(req *extractor.Request) (*extractor.Response, error)) (*Service, *fakeDownloader) {
	d := &fakeDownloader{handle: handle}
	return New(0, d, Options{Country: "GB", Now: func() time.Time { return now }}), d
}

func TestSearchParams(t *testing.T) {
	Convey("Search params", t, func() {
		Convey("Relevance over everything needs no params", func() {
			params, err := searchParams(nil, "")
			So(err, ShouldBeNil)
			So(params, ShouldBeEmpty)

			params, err = searchParams([]string{FilterAll}, SortRelevance)
			So(err, ShouldBeNil)
			So(params, ShouldBeEmpty)
		})

		Convey("Content filters select the result type", func() {
			So(lo.Must(searchParams([]string{FilterVideos}, "")), ShouldEqual, "EgIQAQ==")
			So(lo.Must(searchParams([]string{FilterChannels}, "")), ShouldEqual, "EgIQAg==")
			So(lo.Must(searchParams([]string{FilterPlaylists}, "")), ShouldEqual, "EgIQAw==")
		})

		Convey("Only the first content filter is applied", func() {
			So(lo.Must(searchParams([]string{FilterVideos, FilterChannels}, "")), ShouldEqual, "EgIQAQ==")
		})

		Convey("Sort and type combine", func() {
			So(lo.Must(searchParams(nil, SortUploadDate)), ShouldEqual, "CAI=")
			So(lo.Must(searchParams([]string{FilterVideos}, SortUploadDate)), ShouldEqual, "CAISAhAB")
			So(lo.Must(searchParams([]string{FilterChannels}, SortViewCount)), ShouldEqual, "CAMSAhAC")
		})

		Convey("Unknown filters are rejected", func() {
			_, err := searchParams([]string{FilterVideos, "music_songs"}, "")
			So(errors.Is(err, extractor.ErrUnsupportedFilter), ShouldBeTrue)

			_, err = searchParams(nil, "oldest")
			So(errors.Is(err, extractor.ErrUnsupportedFilter), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "oldest")
		})
	})
}

func TestParsing(t *testing.T) {
	Convey("Textual counters", t, func() {
		So(parseCount("1,234 views"), ShouldEqual, 1234)
		So(parseCount("1.2M subscribers"), ShouldEqual, 1_200_000)
		So(parseCount("14.8M subscribers"), ShouldEqual, 14_800_000)
		So(parseCount("987K"), ShouldEqual, 987_000)
		So(parseCount("No views"), ShouldEqual, 0)
		So(parseCount("@LofiGirl"), ShouldEqual, extractor.Unknown)
		So(parseCount(""), ShouldEqual, extractor.Unknown)
	})

	Convey("Clock durations", t, func() {
		So(parseDuration("1:02:03"), ShouldEqual, 3723)
		So(parseDuration("3:45"), ShouldEqual, 225)
		So(parseDuration("42"), ShouldEqual, 42)
		So(parseDuration(""), ShouldEqual, extractor.Unknown)
		So(parseDuration("LIVE"), ShouldEqual, extractor.Unknown)
	})

	Convey("Relative dates are approximate", t, func() {
		date := parseRelativeDate("3 years ago", now)
		So(date, ShouldNotBeNil)
		So(date.Approximation, ShouldBeTrue)
		So(date.Time, ShouldEqual, now.AddDate(-3, 0, 0))

		So(parseRelativeDate("Streamed 2 weeks ago", now).Time, ShouldEqual, now.AddDate(0, 0, -14))
		So(parseRelativeDate("1 hour ago", now).Time, ShouldEqual, now.Add(-time.Hour))
		So(parseRelativeDate("Jan 5, 2020", now), ShouldBeNil)
		So(parseRelativeDate("99999999999999999999999 years ago", now), ShouldBeNil)
	})

	Convey("Start positions", t, func() {
		So(startPosition("https://youtu.be/dQw4w9WgXcQ?t=43"), ShouldEqual, 43)
		So(startPosition("https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=1m30s"), ShouldEqual, 90)
		So(startPosition("https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=1h2s"), ShouldEqual, 3602)
		So(startPosition("dQw4w9WgXcQ"), ShouldEqual, 0)
		So(startPosition("https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=soon"), ShouldEqual, 0)
	})

	Convey("Thumbnails", t, func() {
		var raw any
		So(json.Unmarshal([]byte(`[{"url":"//yt3.ggpht.com/a"},{"url":""},{"url":"https://i.ytimg.com/b","width":320,"height":180}]`), &raw), ShouldBeNil)
		list := images(raw)
		So(list, ShouldHaveLength, 2)
		So(list[0], ShouldResemble, extractor.Image{URL: "https://yt3.ggpht.com/a", Width: -1, Height: -1})
		So(list[1].Width, ShouldEqual, 320)
		So(images(nil), ShouldNotBeNil)
	})
}

func TestSearch(t *testing.T) {
	Convey("Given a search response", t, func() {
		service, downloader := newTestService(func(req *extractor.Request) (*extractor.Response, error) {
			return fixture("search.json"), nil
		})

		items, err := service.Search(context.Background(), "lofi", []string{FilterAll}, SortRelevance)
		So(err, ShouldBeNil)

		Convey("The innertube request carries query and client context", func() {
			So(downloader.requests, ShouldHaveLength, 1)
			req := downloader.requests[0]
			So(req.Method, ShouldEqual, http.MethodPost)
			So(req.URL, ShouldStartWith, "https://www.youtube.com/youtubei/v1/search")
			So(req.Headers.Get("Content-Type"), ShouldEqual, "application/json")

			var body map[string]any
			So(json.Unmarshal(req.Data, &body), ShouldBeNil)
			So(body["query"], ShouldEqual, "lofi")
			So(body, ShouldNotContainKey, "params")
			So(dig(body, "context", "client", "gl"), ShouldEqual, "GB")
			So(dig(body, "context", "client", "hl"), ShouldEqual, "en")
			So(dig(body, "context", "client", "clientName"), ShouldEqual, "WEB")
		})

		Convey("Known renderers become items, others are skipped", func() {
			So(items, ShouldHaveLength, 5)
			So(items[0].Info().InfoType, ShouldEqual, extractor.InfoTypeChannel)
			So(items[1].Info().InfoType, ShouldEqual, extractor.InfoTypeStream)
			So(items[4].Info().InfoType, ShouldEqual, extractor.InfoTypePlaylist)
		})

		Convey("Channel renderer", func() {
			channel := items[0].(*extractor.ChannelInfoItem)
			So(channel.URL, ShouldEqual, "https://www.youtube.com/channel/UCSJ4gkVC6NrvII8umztf0Ow")
			So(channel.Name, ShouldEqual, "Lofi Girl")
			So(channel.Description, ShouldEqual, "Welcome to lofi radio")
			So(channel.SubscriberCount, ShouldEqual, 14_800_000)
			So(channel.StreamCount, ShouldEqual, extractor.Unknown)
			So(channel.Verified, ShouldBeTrue)
			So(channel.Thumbnails[0].URL, ShouldEqual, "https://yt3.ggpht.com/lofi=s88")
		})

		Convey("Live video renderer", func() {
			live := items[1].(*extractor.StreamInfoItem)
			So(*live.StreamType, ShouldEqual, extractor.LiveStream)
			So(live.ViewCount, ShouldEqual, 31245)
			So(live.Duration, ShouldEqual, extractor.Unknown)
			So(live.UploadDate, ShouldBeNil)
			So(live.UploaderURL, ShouldEqual, "https://www.youtube.com/channel/UCSJ4gkVC6NrvII8umztf0Ow")
			So(live.UploaderAvatars, ShouldHaveLength, 1)
			So(live.UploaderVerified, ShouldBeTrue)
			So(live.ShortDescription, ShouldEqual, "Listen on Spotify")
		})

		Convey("Regular video renderer", func() {
			video := items[2].(*extractor.StreamInfoItem)
			So(video.URL, ShouldEqual, "https://www.youtube.com/watch?v=lTRiuFIWV54")
			So(*video.StreamType, ShouldEqual, extractor.VideoStreamType)
			So(video.UploaderName, ShouldEqual, "Lofi Girl")
			So(video.Duration, ShouldEqual, 3675)
			So(video.ViewCount, ShouldEqual, 87_654_321)
			So(video.TextualUploadDate, ShouldEqual, "5 years ago")
			So(video.UploadDate.Time, ShouldEqual, now.AddDate(-5, 0, 0))
			So(video.UploadDate.Approximation, ShouldBeTrue)
			So(video.ShortDescription, ShouldEqual, "study beats")
			So(video.Thumbnails[0].Width, ShouldEqual, extractor.ImageSizeUnknown)
		})

		Convey("Playlist renderers", func() {
			playlist := items[3].(*extractor.PlaylistInfoItem)
			So(playlist.URL, ShouldEqual, "https://www.youtube.com/playlist?list=PLofht4PTcKYnaH8w5olJCI-wUVxuoMHqM")
			So(playlist.StreamCount, ShouldEqual, 112)
			So(*playlist.PlaylistType, ShouldEqual, extractor.PlaylistNormal)
			So(playlist.UploaderName, ShouldEqual, "Lofi Girl")

			mix := items[4].(*extractor.PlaylistInfoItem)
			So(mix.Name, ShouldEqual, "Chill Mix")
			So(mix.UploaderName, ShouldEqual, "YouTube Music")
			So(mix.StreamCount, ShouldEqual, 50)
			So(*mix.PlaylistType, ShouldEqual, extractor.PlaylistMixMusic)
			So(mix.Thumbnails, ShouldHaveLength, 1)
		})
	})

	Convey("Search filters", t, func() {
		service, downloader := newTestService(func(req *extractor.Request) (*extractor.Response, error) {
			return fixture("search.json"), nil
		})

		Convey("Are sent as params", func() {
			_, err := service.Search(context.Background(), "lofi", []string{FilterVideos}, "")
			So(err, ShouldBeNil)

			var body map[string]any
			So(json.Unmarshal(downloader.requests[0].Data, &body), ShouldBeNil)
			So(body["params"], ShouldEqual, "EgIQAQ==")
		})

		Convey("Unknown ones fail before any request", func() {
			_, err := service.Search(context.Background(), "lofi", []string{"shorts"}, "")
			So(errors.Is(err, extractor.ErrUnsupportedFilter), ShouldBeTrue)
			So(downloader.requests, ShouldBeEmpty)
		})
	})

	Convey("Search failures", t, func() {
		Convey("A challenge propagates unchanged", func() {
			service, _ := newTestService(func(req *extractor.Request) (*extractor.Response, error) {
				return nil, &extractor.ReCaptchaError{URL: req.URL}
			})
			_, err := service.Search(context.Background(), "lofi", nil, "")
			var challenge *extractor.ReCaptchaError
			So(errors.As(err, &challenge), ShouldBeTrue)
		})

		Convey("A non-200 status is an error", func() {
			service, _ := newTestService(func(req *extractor.Request) (*extractor.Response, error) {
				return &extractor.Response{StatusCode: 400, StatusMessage: "Bad Request", Body: "{}"}, nil
			})
			_, err := service.Search(context.Background(), "lofi", nil, "")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "400")
		})

		Convey("Malformed JSON is a parsing error", func() {
			service, _ := newTestService(func(req *extractor.Request) (*extractor.Response, error) {
				return &extractor.Response{StatusCode: 200, Body: "<html>"}, nil
			})
			_, err := service.Search(context.Background(), "lofi", nil, "")
			var parsing *extractor.ParsingError
			So(errors.As(err, &parsing), ShouldBeTrue)
		})

		Convey("A response without results is a parsing error", func() {
			service, _ := newTestService(func(req *extractor.Request) (*extractor.Response, error) {
				return &extractor.Response{StatusCode: 200, Body: `{"contents":{}}`}, nil
			})
			_, err := service.Search(context.Background(), "lofi", nil, "")
			var parsing *extractor.ParsingError
			So(errors.As(err, &parsing), ShouldBeTrue)
			So(parsing.What, ShouldEqual, "search results")
		})
	})
}

func TestWatchNext(t *testing.T) {
	Convey("Given a watch-next response", t, func() {
		service, downloader := newTestService(func(req *extractor.Request) (*extractor.Response, error) {
			return fixture("next.json"), nil
		})

		next, err := service.watchNext(context.Background(), "dQw4w9WgXcQ")
		So(err, ShouldBeNil)

		Convey("The video id is sent", func() {
			So(downloader.requests[0].URL, ShouldStartWith, "https://www.youtube.com/youtubei/v1/next")
			So(string(downloader.requests[0].Data), ShouldContainSubstring, `"videoId":"dQw4w9WgXcQ"`)
		})

		Convey("Owner and engagement are read", func() {
			So(next.likes, ShouldEqual, 18_234_567)
			So(next.subscribers, ShouldEqual, 4_200_000)
			So(next.verified, ShouldBeTrue)
			So(next.avatars, ShouldHaveLength, 2)
		})

		Convey("Related items include nested sections", func() {
			So(next.related, ShouldHaveLength, 2)

			video := next.related[0].(*extractor.StreamInfoItem)
			So(video.Name, ShouldEqual, "Rick Astley - Together Forever")
			So(video.Duration, ShouldEqual, 205)

			mix := next.related[1].(*extractor.PlaylistInfoItem)
			So(*mix.PlaylistType, ShouldEqual, extractor.PlaylistMixStream)
			So(mix.StreamCount, ShouldEqual, 50)
		})

		Convey("Applying fills the stream info", func() {
			info := &extractor.StreamInfo{LikeCount: extractor.Unknown}
			next.apply(info)
			So(info.LikeCount, ShouldEqual, 18_234_567)
			So(info.UploaderSubscriberCount, ShouldEqual, 4_200_000)
			So(info.RelatedItems, ShouldHaveLength, 2)
		})
	})

	Convey("A response without watch-next contents is a parsing error", t, func() {
		service, _ := newTestService(func(req *extractor.Request) (*extractor.Response, error) {
			return &extractor.Response{StatusCode: 200, Body: `{}`}, nil
		})
		_, err := service.watchNext(context.Background(), "dQw4w9WgXcQ")
		var parsing *extractor.ParsingError
		So(errors.As(err, &parsing), ShouldBeTrue)
	})
}

func TestStreamInfo(t *testing.T) {
	Convey("An unusable identifier fails without network", t, func() {
		service, downloader := newTestService(func(req *extractor.Request) (*extractor.Response, error) {
			return nil, errors.New("unexpected request")
		})
		_, err := service.StreamInfo(context.Background(), "/watch?v=abc")
		var parsing *extractor.ParsingError
		So(errors.As(err, &parsing), ShouldBeTrue)
		So(downloader.requests, ShouldBeEmpty)
	})

	Convey("A challenge raised under the player client surfaces as such", t, func() {
		service, _ := newTestService(func(req *extractor.Request) (*extractor.Response, error) {
			return nil, &extractor.ReCaptchaError{URL: req.URL}
		})
		_, err := service.StreamInfo(context.Background(), "dQw4w9WgXcQ")
		var challenge *extractor.ReCaptchaError
		So(errors.As(err, &challenge), ShouldBeTrue)
	})
}

func TestFormats(t *testing.T) {
	Convey("Given player formats", t, func() {
		muxed := &youtube.Format{
			ItagNo:        18,
			MimeType:      `video/mp4; codecs="avc1.42001E, mp4a.40.2"`,
			Quality:       "medium",
			QualityLabel:  "360p",
			Bitrate:       503000,
			Width:         640,
			Height:        360,
			FPS:           25,
			AudioQuality:  "AUDIO_QUALITY_LOW",
			AudioChannels: 2,
		}
		videoOnly := &youtube.Format{
			ItagNo:       137,
			MimeType:     `video/mp4; codecs="avc1.640028"`,
			QualityLabel: "1080p",
			Width:        1920,
			Height:       1080,
			FPS:          25,
		}
		audio := &youtube.Format{
			ItagNo:           251,
			MimeType:         `audio/webm; codecs="opus"`,
			Quality:          "tiny",
			Bitrate:          140000,
			AverageBitrate:   129000,
			AudioSampleRate:  "48000",
			AudioChannels:    2,
			ApproxDurationMs: "212061",
			ContentLength:    3437753,
		}

		Convey("They are classified by what they carry", func() {
			So(itagType(muxed), ShouldEqual, extractor.ItagVideo)
			So(itagType(videoOnly), ShouldEqual, extractor.ItagVideoOnly)
			So(itagType(audio), ShouldEqual, extractor.ItagAudio)
		})

		Convey("Video streams keep resolution and codec", func() {
			stream := videoStream(muxed, "https://rr1.example/videoplayback?itag=18", extractor.ItagVideo)
			So(stream.ID, ShouldEqual, "18")
			So(stream.Format.String(), ShouldEqual, "MPEG_4")
			So(stream.IsURL, ShouldBeTrue)
			So(stream.IsVideoOnly, ShouldBeFalse)
			So(stream.Resolution, ShouldEqual, "360p")
			So(*stream.Codec, ShouldEqual, "avc1.42001E, mp4a.40.2")
			So(stream.InitStart, ShouldEqual, extractor.Unknown)
			So(*stream.ItagItem.Width, ShouldEqual, 640)
			So(stream.ItagItem.SampleRate, ShouldBeNil)

			So(videoStream(videoOnly, "u", extractor.ItagVideoOnly).IsVideoOnly, ShouldBeTrue)
		})

		Convey("Audio streams keep their technical profile", func() {
			stream := audioStream(audio, "https://rr1.example/videoplayback?itag=251")
			So(*stream.Format, ShouldEqual, extractor.WEBMOpus)
			So(stream.AverageBitrate, ShouldEqual, 129)
			So(*stream.Quality, ShouldEqual, "tiny")
			So(*stream.ItagItem.SampleRate, ShouldEqual, 48000)
			So(*stream.ItagItem.ApproxDurationMs, ShouldEqual, int64(212061))
			So(*stream.ItagItem.ContentLength, ShouldEqual, int64(3437753))
			So(stream.ItagItem.Width, ShouldBeNil)
			So(stream.AudioLocale, ShouldBeNil)
			So(stream.AudioTrackID, ShouldBeNil)
			So(stream.AudioTrackType, ShouldBeNil)
		})

		Convey("Audio tracks of multi-language videos are kept", func() {
			var dubbed youtube.Format
			So(json.Unmarshal([]byte(`{
				"itag": 251,
				"mimeType": "audio/webm; codecs=\"opus\"",
				"bitrate": 140000,
				"audioTrack": {"displayName": "German (dubbed)", "id": "de.3", "audioIsDefault": false}
			}`), &dubbed), ShouldBeNil)

			stream := audioStream(&dubbed, "https://rr1.example/videoplayback?itag=251")
			So(*stream.AudioTrackID, ShouldEqual, "de.3")
			So(*stream.AudioTrackName, ShouldEqual, "German (dubbed)")
			So(*stream.AudioLocale, ShouldEqual, "de")
			So(*stream.AudioTrackType, ShouldEqual, extractor.AudioTrackDubbed)
			So(*stream.ItagItem.AudioLocale, ShouldEqual, "de")
			So(*stream.ItagItem.AudioTrackID, ShouldEqual, "de.3")

			dubbed.AudioTrack.AudioIsDefault = true
			dubbed.AudioTrack.DisplayName = "English"
			dubbed.AudioTrack.ID = "en.4"
			original := audioStream(&dubbed, "u")
			So(*original.AudioTrackType, ShouldEqual, extractor.AudioTrackOriginal)
			So(*original.AudioLocale, ShouldEqual, "en")

			dubbed.AudioTrack.AudioIsDefault = false
			So(audioStream(&dubbed, "u").AudioTrackType, ShouldBeNil)
		})
	})
}

func TestBridgeTransport(t *testing.T) {
	Convey("The player client transport", t, func() {
		var seen *extractor.Request
		transport := &bridgeTransport{downloader: &fakeDownloader{handle: func(req *extractor.Request) (*extractor.Response, error) {
			seen = req
			if strings.Contains(req.URL, "sorry") {
				return nil, &extractor.ReCaptchaError{URL: req.URL}
			}
			return &extractor.Response{StatusCode: 200, StatusMessage: "OK", Body: `{"ok":true}`}, nil
		}}}

		Convey("Forwards method, headers and body", func() {
			req := lo.Must(http.NewRequest(http.MethodPost, "https://www.youtube.com/youtubei/v1/player", strings.NewReader(`{"videoId":"x"}`)))
			req.Header.Set("Content-Type", "application/json")

			resp, err := transport.RoundTrip(req)
			So(err, ShouldBeNil)
			So(seen.Method, ShouldEqual, http.MethodPost)
			So(string(seen.Data), ShouldEqual, `{"videoId":"x"}`)
			So(seen.Headers.Get("Content-Type"), ShouldEqual, "application/json")

			So(resp.StatusCode, ShouldEqual, 200)
			So(resp.Status, ShouldEqual, "200 OK")
			So(string(lo.Must(io.ReadAll(resp.Body))), ShouldEqual, `{"ok":true}`)
		})

		Convey("Sends no body for a bodiless request", func() {
			req := lo.Must(http.NewRequest(http.MethodGet, "https://www.youtube.com/watch?v=x", nil))
			_, err := transport.RoundTrip(req)
			So(err, ShouldBeNil)
			So(seen.Data, ShouldBeNil)
		})

		Convey("Records a challenge in the slot", func() {
			ctx, slot := withChallengeSlot(context.Background())
			req := lo.Must(http.NewRequestWithContext(ctx, http.MethodGet, "https://www.google.com/sorry/index", nil))
			_, err := transport.RoundTrip(req)
			So(err, ShouldNotBeNil)
			So(slot.err, ShouldNotBeNil)
			So(slot.or(errors.New("wrapped elsewhere")), ShouldEqual, slot.err)
		})
	})
}
