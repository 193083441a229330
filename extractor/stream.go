package extractor

// ItagItem is the technical profile of one stream variant.
// Every field is optional; nil means the profile did not report it.
type ItagItem struct {
	ID                int
	ItagType          *ItagType
	MediaFormat       *MediaFormat
	AverageBitrate    *int
	SampleRate        *int
	AudioChannels     *int
	ResolutionString  *string
	FPS               *int
	Bitrate           *int
	Width             *int
	Height            *int
	InitStart         *int
	InitEnd           *int
	IndexStart        *int
	IndexEnd          *int
	Quality           *string
	Codec             *string
	TargetDurationSec *int
	ApproxDurationMs  *int64
	ContentLength     *int64
	AudioTrackID      *string
	AudioTrackName    *string
	AudioTrackType    *AudioTrackType
	AudioLocale       *string
}

// Stream holds the fields shared by every stream kind.
// Content is a URL when IsURL is set and inline data (e.g. a manifest) otherwise.
type Stream struct {
	ID             string
	Format         *MediaFormat
	Content        string
	IsURL          bool
	DeliveryMethod DeliveryMethod
	ManifestURL    *string
}

// VideoStream is a muxed or video-only rendition.
type VideoStream struct {
	Stream
	Resolution  string
	IsVideoOnly bool
	Itag        int
	Bitrate     int
	InitStart   int
	InitEnd     int
	IndexStart  int
	IndexEnd    int
	Width       int
	Height      int
	FPS         int
	Quality     string
	Codec       *string
	ItagItem    *ItagItem
}

// AudioStream is an audio-only rendition.
type AudioStream struct {
	Stream
	Itag           int
	AverageBitrate int
	Bitrate        int
	InitStart      int
	InitEnd        int
	IndexStart     int
	IndexEnd       int
	Quality        *string
	Codec          *string
	AudioTrackID   *string
	AudioTrackName *string
	AudioLocale    *string
	AudioTrackType *AudioTrackType
	ItagItem       *ItagItem
}

// StreamInfo is the full metadata record of one playable item.
type StreamInfo struct {
	ServiceID   int
	ID          string
	URL         string
	OriginalURL string
	Name        string
	StreamType  *StreamType
	Thumbnails  []Image

	UploadDate        *DateWrapper
	TextualUploadDate string
	Duration          int64
	AgeLimit          int
	Description       *Description

	ViewCount    int64
	LikeCount    int64
	DislikeCount int64

	UploaderName            string
	UploaderURL             string
	UploaderAvatars         []Image
	UploaderVerified        bool
	UploaderSubscriberCount int64

	SubChannelName    string
	SubChannelURL     string
	SubChannelAvatars []Image

	VideoStreams     []*VideoStream
	AudioStreams     []*AudioStream
	VideoOnlyStreams []*VideoStream

	DashMpdURL    string
	HlsURL        string
	RelatedItems  []InfoItem
	StartPosition int64

	Host        string
	Category    string
	Licence     string
	SupportInfo string
	Language    *string
	Tags        []string

	ShortFormContent bool
}
