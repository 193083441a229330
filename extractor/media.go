package extractor

import "strings"

// MediaFormat is a container format.
type MediaFormat int

const (
	MPEG4 MediaFormat = iota
	V3GPP
	WEBM
	M4A
	WEBMA
	MP3
	MP2
	OPUS
	OGG
	WEBMOpus
	AIFF
	WAV
	FLAC
	ALAC
)

type mediaFormatInfo struct {
	name   string
	suffix string
	mime   string
	audio  bool
}

var mediaFormats = map[MediaFormat]mediaFormatInfo{
	MPEG4:    {"MPEG_4", "mp4", "video/mp4", false},
	V3GPP:    {"v3GPP", "3gp", "video/3gpp", false},
	WEBM:     {"WEBM", "webm", "video/webm", false},
	M4A:      {"M4A", "m4a", "audio/mp4", true},
	WEBMA:    {"WEBMA", "webm", "audio/webm", true},
	MP3:      {"MP3", "mp3", "audio/mpeg", true},
	MP2:      {"MP2", "mp2", "audio/mpeg", true},
	OPUS:     {"OPUS", "opus", "audio/opus", true},
	OGG:      {"OGG", "ogg", "audio/ogg", true},
	WEBMOpus: {"WEBMA_OPUS", "webm", "audio/webm", true},
	AIFF:     {"AIFF", "aiff", "audio/aiff", true},
	WAV:      {"WAV", "wav", "audio/wav", true},
	FLAC:     {"FLAC", "flac", "audio/flac", true},
	ALAC:     {"ALAC", "m4a", "audio/mp4", true},
}

func (f MediaFormat) String() string {
	return mediaFormats[f].name
}

// Suffix is the usual file extension.
func (f MediaFormat) Suffix() string {
	return mediaFormats[f].suffix
}

// MimeType is the container MIME type without codec parameters.
func (f MediaFormat) MimeType() string {
	return mediaFormats[f].mime
}

// MediaFormatFromMime maps a MIME type such as `audio/webm; codecs="opus"` to a format.
// It returns nil for unknown types.
func MediaFormatFromMime(mime string) *MediaFormat {
	base, params, _ := strings.Cut(mime, ";")
	base = strings.TrimSpace(strings.ToLower(base))

	var format MediaFormat
	switch base {
	case "video/mp4":
		format = MPEG4
	case "video/3gpp":
		format = V3GPP
	case "video/webm":
		format = WEBM
	case "audio/mp4":
		format = M4A
	case "audio/webm":
		format = WEBMA
		if strings.Contains(params, "opus") {
			format = WEBMOpus
		}
	case "audio/mpeg":
		format = MP3
	case "audio/ogg":
		format = OGG
	case "audio/flac":
		format = FLAC
	case "audio/wav":
		format = WAV
	default:
		return nil
	}
	return &format
}

// DeliveryMethod is how a stream's content is delivered.
type DeliveryMethod int

const (
	ProgressiveHTTP DeliveryMethod = iota
	DASH
	HLS
	SS
	Torrent
)

func (d DeliveryMethod) String() string {
	return [...]string{"PROGRESSIVE_HTTP", "DASH", "HLS", "SS", "TORRENT"}[d]
}

// StreamType classifies a playable item.
type StreamType int

const (
	NoStream StreamType = iota
	VideoStreamType
	AudioStreamType
	LiveStream
	AudioLiveStream
	PostLiveStream
	PostLiveAudioStream
)

func (s StreamType) String() string {
	return [...]string{
		"NONE",
		"VIDEO_STREAM",
		"AUDIO_STREAM",
		"LIVE_STREAM",
		"AUDIO_LIVE_STREAM",
		"POST_LIVE_STREAM",
		"POST_LIVE_AUDIO_STREAM",
	}[s]
}

// ItagType tells whether an itag carries audio, muxed video or video only.
type ItagType int

const (
	ItagAudio ItagType = iota
	ItagVideo
	ItagVideoOnly
)

func (t ItagType) String() string {
	return [...]string{"AUDIO", "VIDEO", "VIDEO_ONLY"}[t]
}

// AudioTrackType describes the role of an audio track.
type AudioTrackType int

const (
	AudioTrackOriginal AudioTrackType = iota
	AudioTrackDubbed
	AudioTrackDescriptive
	AudioTrackSecondary
)

func (t AudioTrackType) String() string {
	return [...]string{"ORIGINAL", "DUBBED", "DESCRIPTIVE", "SECONDARY"}[t]
}

// DescriptionType is the markup a Description is written in.
type DescriptionType int

const (
	DescriptionHTML DescriptionType = iota + 1
	DescriptionMarkdown
	DescriptionPlainText
)

func (t DescriptionType) String() string {
	switch t {
	case DescriptionHTML:
		return "HTML"
	case DescriptionMarkdown:
		return "MARKDOWN"
	case DescriptionPlainText:
		return "PLAIN_TEXT"
	default:
		return "UNKNOWN"
	}
}

// InfoType tags the variant of an InfoItem.
type InfoType int

const (
	InfoTypeStream InfoType = iota
	InfoTypePlaylist
	InfoTypeChannel
	InfoTypeComment
)

func (t InfoType) String() string {
	return [...]string{"STREAM", "PLAYLIST", "CHANNEL", "COMMENT"}[t]
}

// PlaylistType distinguishes curated playlists from generated mixes.
type PlaylistType int

const (
	PlaylistNormal PlaylistType = iota
	PlaylistMixStream
	PlaylistMixMusic
	PlaylistMixChannel
	PlaylistMixGenre
)

func (t PlaylistType) String() string {
	return [...]string{"NORMAL", "MIX_STREAM", "MIX_MUSIC", "MIX_CHANNEL", "MIX_GENRE"}[t]
}
