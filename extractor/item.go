package extractor

// InfoItem is a lightweight summary returned in list contexts such as search results.
//
// The known variants are *StreamInfoItem, *PlaylistInfoItem and *ChannelInfoItem.
// Anything else embedding InfoItemBase is treated as an opaque item carrying only base fields.
type InfoItem interface {
	Info() *InfoItemBase
	infoItem()
}

// InfoItemBase holds the fields every variant shares.
type InfoItemBase struct {
	InfoType   InfoType
	ServiceID  int
	URL        string
	Name       string
	Thumbnails []Image
}

func (b *InfoItemBase) Info() *InfoItemBase { return b }

func (*InfoItemBase) infoItem() {}

// StreamInfoItem summarizes a video.
type StreamInfoItem struct {
	InfoItemBase
	StreamType        *StreamType
	UploaderName      string
	UploaderURL       string
	UploaderAvatars   []Image
	UploaderVerified  bool
	ShortDescription  string
	TextualUploadDate string
	UploadDate        *DateWrapper
	ViewCount         int64
	Duration          int64
	ShortFormContent  bool
}

// PlaylistInfoItem summarizes a playlist or a generated mix.
type PlaylistInfoItem struct {
	InfoItemBase
	UploaderName     string
	UploaderURL      string
	UploaderVerified bool
	StreamCount      int64
	Description      *Description
	PlaylistType     *PlaylistType
}

// ChannelInfoItem summarizes a channel.
type ChannelInfoItem struct {
	InfoItemBase
	Description     string
	SubscriberCount int64
	StreamCount     int64
	Verified        bool
}

// CommentsInfoItem is a comment entry. No list context of the CLI returns one with
// variant-specific fields, so it carries only the base.
type CommentsInfoItem struct {
	InfoItemBase
}
