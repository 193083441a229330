package youtube

import (
	"strings"

	"github.com/KRTirtho/NewPipeCLI/extractor"
	"github.com/samber/lo"
)

// firstOf returns the first of the given keys present in data.
func firstOf(data any, keys ...string) any {
	for _, k := range keys {
		if v := dig(data, k); v != nil {
			return v
		}
	}
	return nil
}

func ownerChannelURL(owner any) string {
	return channelURL(digString(owner, "runs", 0, "navigationEndpoint", "browseEndpoint", "browseId"))
}

func isLive(data any) bool {
	return lo.SomeBy(digList(data, "badges"), func(badge any) bool {
		return digString(badge, "metadataBadgeRenderer", "style") == "BADGE_STYLE_TYPE_LIVE_NOW"
	})
}

func (s *Service) streamItem(data any) extractor.InfoItem {
	id := digString(data, "videoId")
	if id == "" {
		return nil
	}

	owner := firstOf(data, "ownerText", "longBylineText", "shortBylineText")
	textualDate := text(dig(data, "publishedTimeText"))

	avatars := dig(data, "channelThumbnailSupportedRenderers", "channelThumbnailWithLinkRenderer", "thumbnail", "thumbnails")
	if avatars == nil {
		avatars = dig(data, "channelThumbnail", "thumbnails")
	}

	description := text(dig(data, "detailedMetadataSnippets", 0, "snippetText"))
	if description == "" {
		description = text(dig(data, "descriptionSnippet"))
	}

	item := &extractor.StreamInfoItem{
		InfoItemBase: extractor.InfoItemBase{
			InfoType:   extractor.InfoTypeStream,
			ServiceID:  s.id,
			URL:        watchURL(id),
			Name:       text(dig(data, "title")),
			Thumbnails: images(dig(data, "thumbnail", "thumbnails")),
		},
		StreamType:        lo.ToPtr(extractor.VideoStreamType),
		UploaderName:      text(owner),
		UploaderURL:       ownerChannelURL(owner),
		UploaderAvatars:   images(avatars),
		UploaderVerified:  verified(dig(data, "ownerBadges")),
		ShortDescription:  description,
		TextualUploadDate: textualDate,
		UploadDate:        parseRelativeDate(textualDate, s.options.Now()),
		ViewCount:         extractor.Unknown,
		Duration:          parseDuration(text(dig(data, "lengthText"))),
		ShortFormContent:  isShort(data),
	}

	if isLive(data) {
		item.StreamType = lo.ToPtr(extractor.LiveStream)
	}
	if views := text(dig(data, "viewCountText")); views != "" {
		item.ViewCount = parseCount(views)
	}

	return item
}

func (s *Service) channelItem(data any) extractor.InfoItem {
	id := digString(data, "channelId")
	if id == "" {
		return nil
	}

	item := &extractor.ChannelInfoItem{
		InfoItemBase: extractor.InfoItemBase{
			InfoType:   extractor.InfoTypeChannel,
			ServiceID:  s.id,
			URL:        channelURL(id),
			Name:       text(dig(data, "title")),
			Thumbnails: images(dig(data, "thumbnail", "thumbnails")),
		},
		Description:     text(dig(data, "descriptionSnippet")),
		SubscriberCount: extractor.Unknown,
		StreamCount:     extractor.Unknown,
		Verified:        verified(dig(data, "ownerBadges")),
	}

	// Handle-based channels report subscribers in videoCountText.
	for _, field := range []string{"subscriberCountText", "videoCountText"} {
		value := text(dig(data, field))
		switch lower := strings.ToLower(value); {
		case strings.Contains(lower, "subscriber"):
			item.SubscriberCount = parseCount(value)
		case strings.Contains(lower, "video"):
			item.StreamCount = parseCount(value)
		}
	}

	return item
}

func (s *Service) playlistItem(data any) extractor.InfoItem {
	id := digString(data, "playlistId")
	if id == "" {
		return nil
	}

	thumbs := images(dig(data, "thumbnails", 0, "thumbnails"))
	if len(thumbs) == 0 {
		thumbs = images(dig(data, "thumbnail", "thumbnails"))
	}

	owner := firstOf(data, "longBylineText", "shortBylineText")

	count := int64(extractor.Unknown)
	if videos := digString(data, "videoCount"); videos != "" {
		count = parseCount(videos)
	} else if videos := text(dig(data, "videoCountText")); videos != "" {
		count = parseCount(videos)
	}

	return &extractor.PlaylistInfoItem{
		InfoItemBase: extractor.InfoItemBase{
			InfoType:   extractor.InfoTypePlaylist,
			ServiceID:  s.id,
			URL:        playlistURL(id),
			Name:       text(dig(data, "title")),
			Thumbnails: thumbs,
		},
		UploaderName:     text(owner),
		UploaderURL:      ownerChannelURL(owner),
		UploaderVerified: verified(dig(data, "ownerBadges")),
		StreamCount:      count,
		PlaylistType:     lo.ToPtr(playlistType(id)),
	}
}

// lockupItem maps the view-model layout YouTube uses for some playlists and related videos.
func (s *Service) lockupItem(data any) extractor.InfoItem {
	id := digString(data, "contentId")
	if id == "" {
		return nil
	}

	base := extractor.InfoItemBase{
		ServiceID: s.id,
		Name:      digString(data, "metadata", "lockupMetadataViewModel", "title", "content"),
	}
	base.Thumbnails = images(findKey(dig(data, "contentImage"), "sources"))

	uploader := digString(data, "metadata", "lockupMetadataViewModel", "metadata", "contentMetadataViewModel",
		"metadataRows", 0, "metadataParts", 0, "text", "content")

	switch digString(data, "contentType") {
	case "LOCKUP_CONTENT_TYPE_VIDEO":
		base.InfoType = extractor.InfoTypeStream
		base.URL = watchURL(id)
		return &extractor.StreamInfoItem{
			InfoItemBase:    base,
			StreamType:      lo.ToPtr(extractor.VideoStreamType),
			UploaderName:    uploader,
			UploaderAvatars: []extractor.Image{},
			ViewCount:       extractor.Unknown,
			Duration:        extractor.Unknown,
		}
	case "LOCKUP_CONTENT_TYPE_PLAYLIST", "LOCKUP_CONTENT_TYPE_PODCAST":
		base.InfoType = extractor.InfoTypePlaylist
		base.URL = playlistURL(id)

		count := int64(extractor.Unknown)
		if badge, ok := findKey(dig(data, "contentImage"), "thumbnailBadges").([]any); ok {
			count = parseCount(digString(badge, 0, "thumbnailBadgeViewModel", "text"))
		}

		return &extractor.PlaylistInfoItem{
			InfoItemBase: base,
			UploaderName: uploader,
			StreamCount:  count,
			PlaylistType: lo.ToPtr(playlistType(id)),
		}
	default:
		return nil
	}
}

func playlistType(id string) extractor.PlaylistType {
	switch {
	case strings.HasPrefix(id, "RDAMVM"), strings.HasPrefix(id, "RDCLAK"):
		return extractor.PlaylistMixMusic
	case strings.HasPrefix(id, "RDCM"):
		return extractor.PlaylistMixChannel
	case strings.HasPrefix(id, "RDGMEM"):
		return extractor.PlaylistMixGenre
	case strings.HasPrefix(id, "RD"):
		return extractor.PlaylistMixStream
	default:
		return extractor.PlaylistNormal
	}
}
