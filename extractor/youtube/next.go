package youtube

import (
	"context"
	"strings"

	"github.com/KRTirtho/NewPipeCLI/extractor"
)

// nextData is what the watch page adds on top of the player response.
type nextData struct {
	likes       int64
	avatars     []extractor.Image
	verified    bool
	subscribers int64
	related     []extractor.InfoItem
}

func (n *nextData) apply(info *extractor.StreamInfo) {
	info.LikeCount = n.likes
	info.UploaderAvatars = n.avatars
	info.UploaderVerified = n.verified
	info.UploaderSubscriberCount = n.subscribers
	info.RelatedItems = n.related
}

func (s *Service) watchNext(ctx context.Context, id string) (*nextData, error) {
	decoded, err := s.innertube(ctx, "next", map[string]any{"videoId": id})
	if err != nil {
		return nil, err
	}

	results := dig(decoded, "contents", "twoColumnWatchNextResults")
	if results == nil {
		return nil, &extractor.ParsingError{What: "watch-next contents"}
	}

	next := &nextData{
		likes:       extractor.Unknown,
		subscribers: extractor.Unknown,
		avatars:     []extractor.Image{},
		related:     []extractor.InfoItem{},
	}

	for _, content := range digList(results, "results", "results", "contents") {
		if primary := dig(content, "videoPrimaryInfoRenderer"); primary != nil {
			next.likes = likeCount(primary)
		}
		if owner := dig(content, "videoSecondaryInfoRenderer", "owner", "videoOwnerRenderer"); owner != nil {
			next.avatars = images(dig(owner, "thumbnail", "thumbnails"))
			next.verified = verified(dig(owner, "badges"))
			if subscribers := text(dig(owner, "subscriberCountText")); subscribers != "" {
				next.subscribers = parseCount(subscribers)
			}
		}
	}

	next.related = s.relatedItems(digList(results, "secondaryResults", "secondaryResults", "results"))
	return next, nil
}

// likeCount reads the accessibility label of the like button,
// e.g. "like this video along with 1,234 other people".
func likeCount(primary any) int64 {
	label, _ := find(dig(primary, "videoActions"), "likeButtonViewModel", "accessibilityText").(string)
	if label == "" {
		return extractor.Unknown
	}
	return parseCount(label)
}

// find searches depth-first for the first object under container, then returns its key.
func find(node any, container, key string) any {
	switch typed := node.(type) {
	case map[string]any:
		if inner, ok := typed[container]; ok {
			if v := findKey(inner, key); v != nil {
				return v
			}
		}
		for _, v := range typed {
			if found := find(v, container, key); found != nil {
				return found
			}
		}
	case []any:
		for _, v := range typed {
			if found := find(v, container, key); found != nil {
				return found
			}
		}
	}
	return nil
}

func findKey(node any, key string) any {
	switch typed := node.(type) {
	case map[string]any:
		if v, ok := typed[key]; ok {
			return v
		}
		for _, v := range typed {
			if found := findKey(v, key); found != nil {
				return found
			}
		}
	case []any:
		for _, v := range typed {
			if found := findKey(v, key); found != nil {
				return found
			}
		}
	}
	return nil
}

func (s *Service) relatedItems(results []any) []extractor.InfoItem {
	items := []extractor.InfoItem{}
	for _, result := range results {
		if section := digList(result, "itemSectionRenderer", "contents"); section != nil {
			items = append(items, s.relatedItems(section)...)
			continue
		}
		if item := s.renderer(result); item != nil {
			items = append(items, item)
		}
	}
	return items
}

// renderer maps one search or watch-next entry; unknown renderers yield nil.
func (s *Service) renderer(entry any) extractor.InfoItem {
	m, _ := entry.(map[string]any)
	for name, data := range m {
		switch name {
		case "videoRenderer", "compactVideoRenderer":
			return s.streamItem(data)
		case "channelRenderer":
			return s.channelItem(data)
		case "playlistRenderer", "compactPlaylistRenderer", "radioRenderer", "compactRadioRenderer":
			return s.playlistItem(data)
		case "lockupViewModel":
			return s.lockupItem(data)
		}
	}
	return nil
}

func isShort(data any) bool {
	if dig(data, "navigationEndpoint", "reelWatchEndpoint") != nil {
		return true
	}
	return strings.HasPrefix(digString(data, "navigationEndpoint", "commandMetadata", "webCommandMetadata", "url"), "/shorts/")
}
