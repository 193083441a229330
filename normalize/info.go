package normalize

import (
	"github.com/KRTirtho/NewPipeCLI/extractor"
)

// StreamInfo maps a full stream record. Related items only carry the base item fields.
func StreamInfo(info *extractor.StreamInfo) Record {
	r := newRecord()
	r.Set("id", info.ID)
	r.Set("url", info.URL)
	r.Set("originalUrl", info.OriginalURL)
	r.Set("name", info.Name)
	r.Set("streamType", name(info.StreamType))
	r.Set("thumbnails", Thumbnails(info.Thumbnails))
	r.Set("textualUploadDate", info.TextualUploadDate)
	r.Set("uploadDate", optionalDate(info.UploadDate))
	r.Set("duration", info.Duration)
	r.Set("ageLimit", info.AgeLimit)
	r.Set("description", optionalDescription(info.Description))
	r.Set("viewCount", info.ViewCount)
	r.Set("likeCount", info.LikeCount)
	r.Set("dislikeCount", info.DislikeCount)
	r.Set("uploaderName", info.UploaderName)
	r.Set("uploaderUrl", info.UploaderURL)
	r.Set("uploaderAvatars", Thumbnails(info.UploaderAvatars))
	r.Set("uploaderVerified", info.UploaderVerified)
	r.Set("uploaderSubscriberCount", info.UploaderSubscriberCount)
	r.Set("subChannelName", info.SubChannelName)
	r.Set("subChannelUrl", info.SubChannelURL)
	r.Set("subChannelAvatars", Thumbnails(info.SubChannelAvatars))
	r.Set("videoStreams", mapAll(info.VideoStreams, VideoStream))
	r.Set("audioStreams", mapAll(info.AudioStreams, AudioStream))
	r.Set("videoOnlyStreams", mapAll(info.VideoOnlyStreams, VideoStream))
	r.Set("dashMpdUrl", info.DashMpdURL)
	r.Set("hlsUrl", info.HlsURL)
	r.Set("relatedItems", mapAll(info.RelatedItems, baseItem))
	r.Set("startPosition", info.StartPosition)
	r.Set("host", info.Host)
	r.Set("category", info.Category)
	r.Set("licence", info.Licence)
	r.Set("supportInfo", info.SupportInfo)
	r.Set("language", deref(info.Language))
	r.Set("tags", orEmpty(info.Tags))
	r.Set("shortFormContent", info.ShortFormContent)
	return r
}

// InfoItem dispatches on the item variant. Unknown variants degrade to the base fields.
func InfoItem(item extractor.InfoItem) Record {
	switch v := item.(type) {
	case *extractor.PlaylistInfoItem:
		return PlaylistInfoItem(v)
	case *extractor.StreamInfoItem:
		return StreamInfoItem(v)
	case *extractor.ChannelInfoItem:
		return ChannelInfoItem(v)
	default:
		return baseItem(item)
	}
}

// InfoItems maps a result list through InfoItem.
func InfoItems(items []extractor.InfoItem) []Record {
	return mapAll(items, InfoItem)
}

func baseItem(item extractor.InfoItem) Record {
	base := item.Info()
	r := newRecord()
	r.Set("infoType", base.InfoType.String())
	r.Set("url", base.URL)
	r.Set("name", base.Name)
	r.Set("thumbnails", Thumbnails(base.Thumbnails))
	return r
}

// PlaylistInfoItem maps a playlist summary.
func PlaylistInfoItem(v *extractor.PlaylistInfoItem) Record {
	r := extend(baseItem(v))
	r.Set("uploaderName", v.UploaderName)
	r.Set("uploaderUrl", v.UploaderURL)
	r.Set("uploaderVerified", v.UploaderVerified)
	r.Set("streamCount", v.StreamCount)
	r.Set("description", optionalDescription(v.Description))
	r.Set("playlistType", name(v.PlaylistType))
	return r
}

// StreamInfoItem maps a video summary.
func StreamInfoItem(v *extractor.StreamInfoItem) Record {
	r := extend(baseItem(v))
	r.Set("streamType", name(v.StreamType))
	r.Set("uploaderName", v.UploaderName)
	r.Set("shortDescription", v.ShortDescription)
	r.Set("textualUploadDate", v.TextualUploadDate)
	r.Set("uploadDate", optionalDate(v.UploadDate))
	r.Set("viewCount", v.ViewCount)
	r.Set("duration", v.Duration)
	r.Set("uploaderUrl", v.UploaderURL)
	r.Set("uploaderAvatars", Thumbnails(v.UploaderAvatars))
	r.Set("uploaderVerified", v.UploaderVerified)
	r.Set("shortFormContent", v.ShortFormContent)
	return r
}

// ChannelInfoItem maps a channel summary.
func ChannelInfoItem(v *extractor.ChannelInfoItem) Record {
	r := extend(baseItem(v))
	r.Set("description", v.Description)
	r.Set("subscriberCount", v.SubscriberCount)
	r.Set("streamCount", v.StreamCount)
	r.Set("verified", v.Verified)
	return r
}
