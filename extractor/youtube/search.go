package youtube

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/KRTirtho/NewPipeCLI/extractor"
	"github.com/KRTirtho/NewPipeCLI/log"
	"google.golang.org/protobuf/encoding/protowire"
)

// Content filters.
const (
	FilterAll       = "all"
	FilterVideos    = "videos"
	FilterChannels  = "channels"
	FilterPlaylists = "playlists"
)

// Sort filters.
const (
	SortRelevance  = "relevance"
	SortRating     = "rating"
	SortUploadDate = "upload_date"
	SortViewCount  = "view_count"
)

var contentFilterTypes = map[string]uint64{
	FilterAll:       0,
	FilterVideos:    1,
	FilterChannels:  2,
	FilterPlaylists: 3,
}

var sortFilterOrders = map[string]uint64{
	SortRelevance:  0,
	SortRating:     1,
	SortUploadDate: 2,
	SortViewCount:  3,
}

// Search runs query and returns the first page of results.
// Only the first content filter is applied; all of them must be known.
func (s *Service) Search(ctx context.Context, query string, contentFilters []string, sortFilter string) ([]extractor.InfoItem, error) {
	params, err := searchParams(contentFilters, sortFilter)
	if err != nil {
		return nil, err
	}

	body := map[string]any{"query": query}
	if params != "" {
		body["params"] = params
	}

	decoded, err := s.innertube(ctx, "search", body)
	if err != nil {
		return nil, err
	}

	sections := digList(decoded, "contents", "twoColumnSearchResultsRenderer", "primaryContents", "sectionListRenderer", "contents")
	if sections == nil {
		return nil, &extractor.ParsingError{What: "search results"}
	}

	items := []extractor.InfoItem{}
	for _, section := range sections {
		for _, entry := range digList(section, "itemSectionRenderer", "contents") {
			if item := s.renderer(entry); item != nil {
				items = append(items, item)
			}
		}
	}

	log.Debugf("search %q: %d items", query, len(items))
	return items, nil
}

// searchParams encodes the filter message YouTube expects in the params field:
// sort order in field 1, and a nested message with the result type in field 2.
func searchParams(contentFilters []string, sortFilter string) (string, error) {
	var kind uint64
	for i, filter := range contentFilters {
		value, ok := contentFilterTypes[filter]
		if !ok {
			return "", fmt.Errorf("%w: content filter %q", extractor.ErrUnsupportedFilter, filter)
		}
		if i == 0 {
			kind = value
		}
	}

	var order uint64
	if sortFilter != "" {
		value, ok := sortFilterOrders[sortFilter]
		if !ok {
			return "", fmt.Errorf("%w: sort filter %q", extractor.ErrUnsupportedFilter, sortFilter)
		}
		order = value
	}

	var b []byte
	if order != 0 {
		b = protowire.AppendTag(b, 1, protowire.VarintType)
		b = protowire.AppendVarint(b, order)
	}
	if kind != 0 {
		var filters []byte
		filters = protowire.AppendTag(filters, 2, protowire.VarintType)
		filters = protowire.AppendVarint(filters, kind)

		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, filters)
	}

	if len(b) == 0 {
		return "", nil
	}
	return base64.StdEncoding.EncodeToString(b), nil
}
