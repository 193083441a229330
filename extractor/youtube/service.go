// Package youtube is the YouTube extraction service.
//
// Player data and stream formats come from github.com/kkdai/youtube/v2, search and
// watch-next data from the innertube JSON API. Every request goes through the
// extractor.Downloader the service was created with.
package youtube

import (
	"net/http"
	"time"

	"github.com/KRTirtho/NewPipeCLI/extractor"
	"github.com/KRTirtho/NewPipeCLI/key"
	"github.com/kkdai/youtube/v2"
	"github.com/spf13/viper"
)

const (
	Name    = "YouTube"
	BaseURL = "https://www.youtube.com"

	innertubeURL     = BaseURL + "/youtubei/v1/"
	webClientName    = "WEB"
	webClientID      = "1"
	webClientVersion = "2.20240726.00.00"

	// interfaceLanguage is fixed: view counts, subscriber counts and relative
	// dates are parsed from English text.
	interfaceLanguage = "en"
)

// Options tune the innertube context of every request.
type Options struct {
	// Country is the content region, sent as gl.
	Country string

	// Now is the clock relative upload dates are resolved against.
	Now func() time.Time
}

// OptionsFromConfig reads the extractor.* keys.
func OptionsFromConfig() Options {
	return Options{
		Country: viper.GetString(key.ExtractorCountry),
	}
}

// Service implements extractor.Service for YouTube.
type Service struct {
	id         int
	downloader extractor.Downloader
	client     *youtube.Client
	options    Options
}

// New returns the service registered under id.
func New(id int, downloader extractor.Downloader, options Options) *Service {
	if options.Country == "" {
		options.Country = "US"
	}
	if options.Now == nil {
		options.Now = time.Now
	}

	return &Service{
		id:         id,
		downloader: downloader,
		client: &youtube.Client{
			HTTPClient: &http.Client{Transport: &bridgeTransport{downloader: downloader}},
		},
		options: options,
	}
}

func (s *Service) ID() int { return s.id }

func (s *Service) Name() string { return Name }

func (s *Service) BaseURL() string { return BaseURL }

func (s *Service) ContentFilters() []string {
	return []string{FilterAll, FilterVideos, FilterChannels, FilterPlaylists}
}

func (s *Service) SortFilters() []string {
	return []string{SortRelevance, SortRating, SortUploadDate, SortViewCount}
}

var _ extractor.Service = (*Service)(nil)
