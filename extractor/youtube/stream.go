package youtube

import (
	"context"
	"fmt"
	"mime"
	"net/url"
	"strconv"
	"strings"

	"github.com/KRTirtho/NewPipeCLI/extractor"
	"github.com/KRTirtho/NewPipeCLI/log"
	"github.com/kkdai/youtube/v2"
	"github.com/samber/lo"
)

// StreamInfo resolves a video id or any watch, share or shorts URL.
func (s *Service) StreamInfo(ctx context.Context, idOrURL string) (*extractor.StreamInfo, error) {
	id, err := youtube.ExtractVideoID(idOrURL)
	if err != nil {
		return nil, &extractor.ParsingError{What: "video id from " + strconv.Quote(idOrURL), Err: err}
	}

	ctx, challenge := withChallengeSlot(ctx)

	video, err := s.client.GetVideoContext(ctx, id)
	if err != nil {
		return nil, challenge.or(fmt.Errorf("get video %s: %w", id, err))
	}

	info := &extractor.StreamInfo{
		ServiceID:    s.id,
		ID:           video.ID,
		URL:          watchURL(video.ID),
		OriginalURL:  idOrURL,
		Name:         video.Title,
		StreamType:   lo.ToPtr(streamType(video)),
		Thumbnails:   thumbnails(video.Thumbnails),
		Duration:     int64(video.Duration.Seconds()),
		Description:  &extractor.Description{Content: video.Description, Type: extractor.DescriptionPlainText},
		ViewCount:    int64(video.Views),
		LikeCount:    extractor.Unknown,
		DislikeCount: extractor.Unknown,
		UploaderName: video.Author,
		UploaderURL:  channelURL(video.ChannelID),

		UploaderSubscriberCount: extractor.Unknown,

		DashMpdURL:    video.DASHManifestURL,
		HlsURL:        video.HLSManifestURL,
		StartPosition: startPosition(idOrURL),
		Tags:          []string{},
	}

	if !video.PublishDate.IsZero() {
		info.UploadDate = &extractor.DateWrapper{Time: video.PublishDate}
		info.TextualUploadDate = video.PublishDate.Format("2006-01-02")
	}

	if err := s.collectStreams(ctx, video, info); err != nil {
		return nil, challenge.or(err)
	}

	if next, err := s.watchNext(ctx, video.ID); err != nil {
		if challenge.err != nil {
			return nil, challenge.err
		}
		log.Warnf("watch-next for %s: %v", video.ID, err)
	} else {
		next.apply(info)
	}

	return info, nil
}

func streamType(video *youtube.Video) extractor.StreamType {
	if video.HLSManifestURL != "" && video.Duration == 0 {
		return extractor.LiveStream
	}
	return extractor.VideoStreamType
}

func thumbnails(list youtube.Thumbnails) []extractor.Image {
	out := make([]extractor.Image, 0, len(list))
	for _, t := range list {
		out = append(out, extractor.Image{URL: t.URL, Width: int(t.Width), Height: int(t.Height)})
	}
	return out
}

func startPosition(idOrURL string) int64 {
	u, err := url.Parse(idOrURL)
	if err != nil {
		return 0
	}
	return parseStartPosition(u.Query().Get("t"))
}

// collectStreams sorts formats into muxed, video-only and audio streams.
// Formats whose URL cannot be resolved are skipped.
func (s *Service) collectStreams(ctx context.Context, video *youtube.Video, info *extractor.StreamInfo) error {
	info.VideoStreams = []*extractor.VideoStream{}
	info.VideoOnlyStreams = []*extractor.VideoStream{}
	info.AudioStreams = []*extractor.AudioStream{}

	for i := range video.Formats {
		format := &video.Formats[i]

		streamURL, err := s.client.GetStreamURLContext(ctx, video, format)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Warnf("resolve itag %d of %s: %v", format.ItagNo, video.ID, err)
			continue
		}

		switch kind := itagType(format); kind {
		case extractor.ItagAudio:
			info.AudioStreams = append(info.AudioStreams, audioStream(format, streamURL))
		case extractor.ItagVideoOnly:
			info.VideoOnlyStreams = append(info.VideoOnlyStreams, videoStream(format, streamURL, kind))
		default:
			info.VideoStreams = append(info.VideoStreams, videoStream(format, streamURL, kind))
		}
	}

	return nil
}

func itagType(format *youtube.Format) extractor.ItagType {
	switch {
	case strings.HasPrefix(format.MimeType, "audio/"):
		return extractor.ItagAudio
	case format.AudioChannels > 0 || format.AudioQuality != "":
		return extractor.ItagVideo
	default:
		return extractor.ItagVideoOnly
	}
}

func baseStream(format *youtube.Format, streamURL string) extractor.Stream {
	return extractor.Stream{
		ID:             strconv.Itoa(format.ItagNo),
		Format:         extractor.MediaFormatFromMime(format.MimeType),
		Content:        streamURL,
		IsURL:          true,
		DeliveryMethod: extractor.ProgressiveHTTP,
	}
}

func videoStream(format *youtube.Format, streamURL string, kind extractor.ItagType) *extractor.VideoStream {
	item := itagItem(format, kind)
	return &extractor.VideoStream{
		Stream:      baseStream(format, streamURL),
		Resolution:  format.QualityLabel,
		IsVideoOnly: kind == extractor.ItagVideoOnly,
		Itag:        format.ItagNo,
		Bitrate:     format.Bitrate,
		InitStart:   valueOr(item.InitStart),
		InitEnd:     valueOr(item.InitEnd),
		IndexStart:  valueOr(item.IndexStart),
		IndexEnd:    valueOr(item.IndexEnd),
		Width:       format.Width,
		Height:      format.Height,
		FPS:         format.FPS,
		Quality:     format.Quality,
		Codec:       item.Codec,
		ItagItem:    item,
	}
}

func audioStream(format *youtube.Format, streamURL string) *extractor.AudioStream {
	item := itagItem(format, extractor.ItagAudio)
	return &extractor.AudioStream{
		Stream:         baseStream(format, streamURL),
		Itag:           format.ItagNo,
		AverageBitrate: valueOr(item.AverageBitrate),
		Bitrate:        format.Bitrate,
		InitStart:      valueOr(item.InitStart),
		InitEnd:        valueOr(item.InitEnd),
		IndexStart:     valueOr(item.IndexStart),
		IndexEnd:       valueOr(item.IndexEnd),
		Quality:        item.Quality,
		Codec:          item.Codec,
		AudioTrackID:   item.AudioTrackID,
		AudioTrackName: item.AudioTrackName,
		AudioLocale:    item.AudioLocale,
		AudioTrackType: item.AudioTrackType,
		ItagItem:       item,
	}
}

// itagItem builds the technical profile. Fields the format does not report stay nil.
func itagItem(format *youtube.Format, kind extractor.ItagType) *extractor.ItagItem {
	item := &extractor.ItagItem{
		ID:             format.ItagNo,
		ItagType:       lo.ToPtr(kind),
		MediaFormat:    extractor.MediaFormatFromMime(format.MimeType),
		Bitrate:        positive(format.Bitrate),
		AverageBitrate: positive(format.AverageBitrate / 1000),
		Quality:        nonEmpty(format.Quality),
		Codec:          codec(format.MimeType),
		ContentLength:  positive(format.ContentLength),
	}

	if ms, err := strconv.ParseInt(format.ApproxDurationMs, 10, 64); err == nil {
		item.ApproxDurationMs = &ms
	}

	if kind == extractor.ItagAudio {
		if rate, err := strconv.Atoi(format.AudioSampleRate); err == nil {
			item.SampleRate = &rate
		}
		item.AudioChannels = positive(format.AudioChannels)
		applyAudioTrack(item, format)
	} else {
		item.ResolutionString = nonEmpty(format.QualityLabel)
		item.Width = positive(format.Width)
		item.Height = positive(format.Height)
		item.FPS = positive(format.FPS)
	}

	if format.InitRange != nil {
		item.InitStart = atoi(format.InitRange.Start)
		item.InitEnd = atoi(format.InitRange.End)
	}
	if format.IndexRange != nil {
		item.IndexStart = atoi(format.IndexRange.Start)
		item.IndexEnd = atoi(format.IndexRange.End)
	}

	return item
}

// applyAudioTrack fills the track fields of videos with several audio languages.
// Track ids look like "de.3": the language, then the variant.
func applyAudioTrack(item *extractor.ItagItem, format *youtube.Format) {
	track := format.AudioTrack
	if track == nil || track.ID == "" {
		return
	}

	item.AudioTrackID = nonEmpty(track.ID)
	item.AudioTrackName = nonEmpty(track.DisplayName)
	if language, _, _ := strings.Cut(track.ID, "."); language != "" {
		item.AudioLocale = &language
	}
	item.AudioTrackType = audioTrackType(track.AudioIsDefault, track.DisplayName)
}

// audioTrackType is nil when neither the default flag nor the display name tell.
func audioTrackType(isDefault bool, displayName string) *extractor.AudioTrackType {
	name := strings.ToLower(displayName)
	switch {
	case isDefault, strings.Contains(name, "original"):
		return lo.ToPtr(extractor.AudioTrackOriginal)
	case strings.Contains(name, "dubbed"):
		return lo.ToPtr(extractor.AudioTrackDubbed)
	case strings.Contains(name, "descriptive"):
		return lo.ToPtr(extractor.AudioTrackDescriptive)
	default:
		return nil
	}
}

// codec extracts the codecs parameter of `video/mp4; codecs="avc1.4d401e"`.
func codec(mimeType string) *string {
	_, params, err := mime.ParseMediaType(mimeType)
	if err != nil {
		return nil
	}
	return nonEmpty(params["codecs"])
}

func positive[T int | int64](v T) *T {
	if v <= 0 {
		return nil
	}
	return &v
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func atoi(s string) *int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func valueOr(v *int) int {
	if v == nil {
		return extractor.Unknown
	}
	return *v
}
